package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/cogip/cogip-api/internal/core/domain"
)

const companiesCollection = "companies"

type CompanyRepository struct {
	db   *mongo.Database
	coll *mongo.Collection
}

func NewCompanyRepository(db *mongo.Database) *CompanyRepository {
	return &CompanyRepository{db: db, coll: db.Collection(companiesCollection)}
}

type mongoCompany struct {
	ID        int64  `bson:"_id"`
	Name      string `bson:"name"`
	Country   string `bson:"country"`
	VAT       string `bson:"vat"`
	Type      string `bson:"type"`
	CreatedAt int64  `bson:"created_at"`
}

func (r *CompanyRepository) Create(ctx context.Context, company *domain.Company) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := nextID(ctx, r.db, companiesCollection)
	if err != nil {
		return err
	}
	doc := mongoCompany{
		ID:        id,
		Name:      company.Name,
		Country:   company.Country,
		VAT:       company.VAT,
		Type:      company.Type,
		CreatedAt: company.CreatedAt.Unix(),
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert company: %w", err)
	}
	company.ID = id
	return nil
}

func (r *CompanyRepository) List(ctx context.Context) ([]*domain.Company, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	docs, err := decodeAll[mongoCompany](ctx, cur)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	out := make([]*domain.Company, len(docs))
	for i, d := range docs {
		out[i] = &domain.Company{
			ID:        d.ID,
			Name:      d.Name,
			Country:   d.Country,
			VAT:       d.VAT,
			Type:      d.Type,
			CreatedAt: unixToTime(d.CreatedAt),
		}
	}
	return out, nil
}
