package databases

// go generate: mockery --name CaseDatabase

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/brentis/investigator-api/models"
)

const caseCollectionName = "cases"

// CaseDatabase contains the methods to use with the case collection. The
// analytics layer fetches the whole collection in one Find and works on the
// in-memory snapshot; there is no pagination or sync token.
type CaseDatabase interface {
	FindOne(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) (*models.Case, error)
	Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.Case, error)
	UpsertOne(ctx context.Context, filter interface{}, c models.Case) error
	DeleteOne(ctx context.Context, filter interface{}, opts ...*options.DeleteOptions) error
	CountDocuments(ctx context.Context, filter interface{}, opts ...*options.CountOptions) (int64, error)
}

type caseDatabase struct {
	db DatabaseHelper
}

// NewCaseDatabase initializes a new instance of case database with the provided db connection
func NewCaseDatabase(db DatabaseHelper) CaseDatabase {
	return &caseDatabase{
		db: db,
	}
}

func (d *caseDatabase) FindOne(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) (*models.Case, error) {
	investigation := &models.Case{}
	err := d.db.Collection(caseCollectionName).FindOne(ctx, filter, opts...).Decode(investigation)
	if err != nil {
		return nil, err
	}
	investigation.Normalize()
	return investigation, nil
}

func (d *caseDatabase) Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.Case, error) {
	var cases []models.Case
	err := d.db.Collection(caseCollectionName).Find(ctx, filter, opts...).Decode(&cases)
	if err != nil {
		return nil, err
	}
	// normalize once at snapshot-load time so the engine never re-defaults
	for i := range cases {
		cases[i].Normalize()
	}
	return cases, nil
}

func (d *caseDatabase) UpsertOne(ctx context.Context, filter interface{}, c models.Case) error {
	upsert := true
	return d.db.Collection(caseCollectionName).ReplaceOne(ctx, filter, c, &options.ReplaceOptions{Upsert: &upsert})
}

func (d *caseDatabase) DeleteOne(ctx context.Context, filter interface{}, opts ...*options.DeleteOptions) error {
	return d.db.Collection(caseCollectionName).DeleteOne(ctx, filter, opts...)
}

func (d *caseDatabase) CountDocuments(ctx context.Context, filter interface{}, opts ...*options.CountOptions) (int64, error) {
	return d.db.Collection(caseCollectionName).CountDocuments(ctx, filter, opts...)
}
