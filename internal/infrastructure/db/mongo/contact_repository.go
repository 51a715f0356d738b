package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/cogip/cogip-api/internal/core/domain"
)

const contactsCollection = "contacts"

type ContactRepository struct {
	db   *mongo.Database
	coll *mongo.Collection
}

func NewContactRepository(db *mongo.Database) *ContactRepository {
	return &ContactRepository{db: db, coll: db.Collection(contactsCollection)}
}

type mongoContact struct {
	ID        int64  `bson:"_id"`
	Name      string `bson:"name"`
	Email     string `bson:"email"`
	Phone     string `bson:"phone"`
	CompanyID int64  `bson:"company_id"`
	CreatedAt int64  `bson:"created_at"`
}

func (r *ContactRepository) Create(ctx context.Context, contact *domain.Contact) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := nextID(ctx, r.db, contactsCollection)
	if err != nil {
		return err
	}
	doc := mongoContact{
		ID:        id,
		Name:      contact.Name,
		Email:     contact.Email,
		Phone:     contact.Phone,
		CompanyID: contact.CompanyID,
		CreatedAt: contact.CreatedAt.Unix(),
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert contact: %w", err)
	}
	contact.ID = id
	return nil
}

func (r *ContactRepository) List(ctx context.Context) ([]*domain.Contact, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	docs, err := decodeAll[mongoContact](ctx, cur)
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	out := make([]*domain.Contact, len(docs))
	for i, d := range docs {
		out[i] = &domain.Contact{
			ID:        d.ID,
			Name:      d.Name,
			Email:     d.Email,
			Phone:     d.Phone,
			CompanyID: d.CompanyID,
			CreatedAt: unixToTime(d.CreatedAt),
		}
	}
	return out, nil
}
