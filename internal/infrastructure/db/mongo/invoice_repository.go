package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/cogip/cogip-api/internal/core/domain"
)

const invoicesCollection = "invoices"

type InvoiceRepository struct {
	db   *mongo.Database
	coll *mongo.Collection
}

func NewInvoiceRepository(db *mongo.Database) *InvoiceRepository {
	return &InvoiceRepository{db: db, coll: db.Collection(invoicesCollection)}
}

type mongoInvoice struct {
	ID        int64     `bson:"_id"`
	Reference string    `bson:"reference"`
	CompanyID int64     `bson:"company_id"`
	Amount    float64   `bson:"amount"`
	DueDate   time.Time `bson:"due_date"`
	CreatedAt int64     `bson:"created_at"`
}

func (r *InvoiceRepository) Create(ctx context.Context, invoice *domain.Invoice) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := nextID(ctx, r.db, invoicesCollection)
	if err != nil {
		return err
	}
	doc := mongoInvoice{
		ID:        id,
		Reference: invoice.Reference,
		CompanyID: invoice.CompanyID,
		Amount:    invoice.Amount,
		DueDate:   invoice.DueDate.UTC(),
		CreatedAt: invoice.CreatedAt.Unix(),
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert invoice: %w", err)
	}
	invoice.ID = id
	return nil
}

func (r *InvoiceRepository) List(ctx context.Context) ([]*domain.Invoice, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	docs, err := decodeAll[mongoInvoice](ctx, cur)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	out := make([]*domain.Invoice, len(docs))
	for i, d := range docs {
		out[i] = &domain.Invoice{
			ID:        d.ID,
			Reference: d.Reference,
			CompanyID: d.CompanyID,
			Amount:    d.Amount,
			DueDate:   d.DueDate.UTC(),
			CreatedAt: unixToTime(d.CreatedAt),
		}
	}
	return out, nil
}
