package databases

// go generate: mockery --name GlobalTaskDatabase

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/brentis/investigator-api/models"
)

const taskCollectionName = "global_tasks"

// GlobalTaskDatabase contains the methods to use with the global task collection
type GlobalTaskDatabase interface {
	FindOne(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) (*models.GlobalTask, error)
	Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.GlobalTask, error)
	UpsertOne(ctx context.Context, filter interface{}, t models.GlobalTask) error
	DeleteOne(ctx context.Context, filter interface{}, opts ...*options.DeleteOptions) error
}

type globalTaskDatabase struct {
	db DatabaseHelper
}

// NewGlobalTaskDatabase initializes a new instance of global task database with the provided db connection
func NewGlobalTaskDatabase(db DatabaseHelper) GlobalTaskDatabase {
	return &globalTaskDatabase{
		db: db,
	}
}

func (d *globalTaskDatabase) FindOne(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) (*models.GlobalTask, error) {
	task := &models.GlobalTask{}
	err := d.db.Collection(taskCollectionName).FindOne(ctx, filter, opts...).Decode(task)
	if err != nil {
		return nil, err
	}
	return task, nil
}

func (d *globalTaskDatabase) Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.GlobalTask, error) {
	var tasks []models.GlobalTask
	err := d.db.Collection(taskCollectionName).Find(ctx, filter, opts...).Decode(&tasks)
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

func (d *globalTaskDatabase) UpsertOne(ctx context.Context, filter interface{}, t models.GlobalTask) error {
	upsert := true
	return d.db.Collection(taskCollectionName).ReplaceOne(ctx, filter, t, &options.ReplaceOptions{Upsert: &upsert})
}

func (d *globalTaskDatabase) DeleteOne(ctx context.Context, filter interface{}, opts ...*options.DeleteOptions) error {
	return d.db.Collection(taskCollectionName).DeleteOne(ctx, filter, opts...)
}
