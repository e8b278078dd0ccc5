package databases_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/brentis/investigator-api/databases"
	"github.com/brentis/investigator-api/databases/mocks"
	"github.com/brentis/investigator-api/models"
)

func TestCaseDatabase_FindOne(t *testing.T) {
	var dbHelper databases.DatabaseHelper
	var collectionHelper databases.CollectionHelper
	var srHelperErr databases.SingleResultHelper
	var srHelperCorrect databases.SingleResultHelper

	dbHelper = &mocks.DatabaseHelper{}
	collectionHelper = &mocks.CollectionHelper{}
	srHelperErr = &mocks.SingleResultHelper{}
	srHelperCorrect = &mocks.SingleResultHelper{}

	srHelperErr.(*mocks.SingleResultHelper).
		On("Decode", mock.Anything).
		Return(errors.New("mocked-error"))

	srHelperCorrect.(*mocks.SingleResultHelper).
		On("Decode", mock.Anything).
		Return(nil).Run(func(args mock.Arguments) {
		arg := args.Get(0).(*models.Case)
		arg.ID = "mocked-case"
		arg.Status = "closed"
	})

	collectionHelper.(*mocks.CollectionHelper).
		On("FindOne", context.Background(), bson.M{"error": true}).
		Return(srHelperErr)

	collectionHelper.(*mocks.CollectionHelper).
		On("FindOne", context.Background(), bson.M{"error": false}).
		Return(srHelperCorrect)

	dbHelper.(*mocks.DatabaseHelper).
		On("Collection", "cases").Return(collectionHelper)

	caseDba := databases.NewCaseDatabase(dbHelper)

	c, err := caseDba.FindOne(context.Background(), bson.M{"error": true})

	assert.Empty(t, c)
	assert.EqualError(t, err, "mocked-error")

	c, err = caseDba.FindOne(context.Background(), bson.M{"error": false})

	assert.NoError(t, err)
	assert.Equal(t, "mocked-case", c.ID)
	// FindOne normalizes on the way out
	assert.Equal(t, models.CaseStatusClosed, c.Status)
	assert.Equal(t, models.VoucherMissing, c.VoucherStatus)
	assert.NotNil(t, c.Activities)
}

func TestCaseDatabase_Find(t *testing.T) {
	var dbHelper databases.DatabaseHelper
	var collectionHelper databases.CollectionHelper
	var crHelperErr databases.CursorHelper
	var crHelperCorrect databases.CursorHelper

	dbHelper = &mocks.DatabaseHelper{}
	collectionHelper = &mocks.CollectionHelper{}
	crHelperErr = &mocks.CursorHelper{}
	crHelperCorrect = &mocks.CursorHelper{}

	crHelperErr.(*mocks.CursorHelper).
		On("Decode", mock.Anything).
		Return(errors.New("mocked-error"))

	crHelperCorrect.(*mocks.CursorHelper).
		On("Decode", mock.Anything).
		Return(nil).Run(func(args mock.Arguments) {
		arg := args.Get(0).(*[]models.Case)
		*arg = []models.Case{{ID: "mocked-case", Activities: []models.Activity{{ID: "a1", Hours: -2}}}}
	})

	collectionHelper.(*mocks.CollectionHelper).
		On("Find", context.Background(), bson.M{"error": true}).
		Return(crHelperErr)

	collectionHelper.(*mocks.CollectionHelper).
		On("Find", context.Background(), bson.M{"error": false}).
		Return(crHelperCorrect)

	dbHelper.(*mocks.DatabaseHelper).
		On("Collection", "cases").Return(collectionHelper)

	caseDba := databases.NewCaseDatabase(dbHelper)

	cases, err := caseDba.Find(context.Background(), bson.M{"error": true})

	assert.Empty(t, cases)
	assert.EqualError(t, err, "mocked-error")

	cases, err = caseDba.Find(context.Background(), bson.M{"error": false})

	assert.NoError(t, err)
	assert.Len(t, cases, 1)
	assert.Equal(t, "mocked-case", cases[0].ID)
	// negative hours are coerced by the load-time normalization
	assert.Zero(t, cases[0].Activities[0].Hours)
	assert.Equal(t, "mocked-case", cases[0].Activities[0].CaseID)
}

func TestCaseDatabase_UpsertOne(t *testing.T) {
	var dbHelper databases.DatabaseHelper
	var collectionHelper databases.CollectionHelper

	dbHelper = &mocks.DatabaseHelper{}
	collectionHelper = &mocks.CollectionHelper{}

	collectionHelper.(*mocks.CollectionHelper).
		On("ReplaceOne", context.Background(), bson.M{"_id": "c1"}, mock.Anything, mock.Anything).
		Return(nil)

	dbHelper.(*mocks.DatabaseHelper).
		On("Collection", "cases").Return(collectionHelper)

	caseDba := databases.NewCaseDatabase(dbHelper)

	err := caseDba.UpsertOne(context.Background(), bson.M{"_id": "c1"}, models.Case{ID: "c1"})
	assert.NoError(t, err)
}
