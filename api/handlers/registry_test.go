package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/brentis/investigator-api/api/handlers"
	"github.com/brentis/investigator-api/databases"
	mocksdb "github.com/brentis/investigator-api/databases/mocks"
	"github.com/brentis/investigator-api/models"
)

func registryCaseMocks(cases []models.Case) databases.DatabaseHelper {
	var db databases.DatabaseHelper
	db = &mocksdb.DatabaseHelper{}

	conn := &mocksdb.CollectionHelper{}
	cursor := &mocksdb.CursorHelper{}
	cursor.On("Decode", mock.Anything).Return(nil).Run(func(args mock.Arguments) {
		arg := args.Get(0).(*[]models.Case)
		*arg = cases
	})
	conn.On("Find", mock.Anything, mock.Anything).Return(cursor)
	db.(*mocksdb.DatabaseHelper).On("Collection", "cases").Return(conn)
	return db
}

func TestRegistry_RegistryHandlerOrdersNeedsIntakeFirst(t *testing.T) {
	cases := []models.Case{
		{ID: "c1", DefendantLastName: "Adams", DefendantFirstName: "Ben", Status: "Open"},
		{ID: "c2", DefendantLastName: "Zamora", DefendantFirstName: "Luz", Status: "Open", NeedsIntake: true},
		{ID: "c3", DefendantLastName: "NEW CASE", Status: "Open"},
	}

	reg := handlers.Registry{DB: databases.NewCaseDatabase(registryCaseMocks(cases))}

	req, err := http.NewRequest("GET", "/api/v1/registry?sort=Defendant", nil)
	if err != nil {
		t.Fatal(err)
	}
	rr := httptest.NewRecorder()
	http.HandlerFunc(reg.RegistryHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp handlers.RegistryResponse
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Len(t, resp.Cases, 3)
	// needs-intake beats the alphabetical key, placeholder goes last
	assert.Equal(t, "c2", resp.Cases[0].ID)
	assert.Equal(t, "c1", resp.Cases[1].ID)
	assert.Equal(t, "c3", resp.Cases[2].ID)
	assert.Equal(t, 3, resp.Counts.Active)
}

func TestRegistry_RegistryHandlerSearchAndLifecycle(t *testing.T) {
	cases := []models.Case{
		{ID: "c1", DefendantLastName: "Reyes", DefendantFirstName: "Ana", Status: "Open"},
		{ID: "c2", DefendantLastName: "Reyes", DefendantFirstName: "Tomas", Status: "Closed"},
		{ID: "c3", DefendantLastName: "Okafor", DefendantFirstName: "Chidi", Status: "Open"},
	}

	reg := handlers.Registry{DB: databases.NewCaseDatabase(registryCaseMocks(cases))}

	req, err := http.NewRequest("GET", "/api/v1/registry?search=reyes&lifecycle=Active", nil)
	if err != nil {
		t.Fatal(err)
	}
	rr := httptest.NewRecorder()
	http.HandlerFunc(reg.RegistryHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp handlers.RegistryResponse
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Len(t, resp.Cases, 1)
	assert.Equal(t, "c1", resp.Cases[0].ID)
	// counts cover the whole collection, not the filtered view
	assert.Equal(t, 2, resp.Counts.Active)
	assert.Equal(t, 1, resp.Counts.Archive)
}
