package databases

// go generate: mockery --name InvestigatorDatabase

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/brentis/investigator-api/models"
)

const investigatorCollectionName = "investigators"

// InvestigatorDatabase contains the methods to use with the investigator
// collection. Consumed by the auth middleware only.
type InvestigatorDatabase interface {
	FindOne(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) (*models.Investigator, error)
	Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.Investigator, error)
}

type investigatorDatabase struct {
	db DatabaseHelper
}

// NewInvestigatorDatabase initializes a new instance of investigator database with the provided db connection
func NewInvestigatorDatabase(db DatabaseHelper) InvestigatorDatabase {
	return &investigatorDatabase{
		db: db,
	}
}

func (d *investigatorDatabase) FindOne(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) (*models.Investigator, error) {
	inv := &models.Investigator{}
	err := d.db.Collection(investigatorCollectionName).FindOne(ctx, filter, opts...).Decode(inv)
	if err != nil {
		return nil, err
	}
	return inv, nil
}

func (d *investigatorDatabase) Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.Investigator, error) {
	var invs []models.Investigator
	err := d.db.Collection(investigatorCollectionName).Find(ctx, filter, opts...).Decode(&invs)
	if err != nil {
		return nil, err
	}
	return invs, nil
}
