package handlers_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/brentis/investigator-api/api/handlers"
	"github.com/brentis/investigator-api/databases"
	mocksdb "github.com/brentis/investigator-api/databases/mocks"
	"github.com/brentis/investigator-api/models"
)

func caseCollectionMocks() (databases.DatabaseHelper, *mocksdb.CollectionHelper) {
	var db databases.DatabaseHelper
	db = &mocksdb.DatabaseHelper{}
	conn := &mocksdb.CollectionHelper{}
	db.(*mocksdb.DatabaseHelper).On("Collection", "cases").Return(conn)
	return db, conn
}

func TestCase_CaseByIDHandlerNotFound(t *testing.T) {
	req, err := http.NewRequest("GET", "/api/v1/case/c1", nil)
	if err != nil {
		t.Fatal(err)
	}
	req = mux.SetURLVars(req, map[string]string{"case_id": "c1"})

	db, conn := caseCollectionMocks()
	singleResultHelper := &mocksdb.SingleResultHelper{}
	singleResultHelper.On("Decode", mock.Anything).Return(errors.New("mocked-error"))
	conn.On("FindOne", mock.Anything, mock.Anything).Return(singleResultHelper)

	c := handlers.Case{DB: databases.NewCaseDatabase(db)}

	rr := httptest.NewRecorder()
	http.HandlerFunc(c.CaseByIDHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, rr.Body.String(), "failed to get case by ID")
}

func TestCase_CaseByIDHandlerSuccess(t *testing.T) {
	req, err := http.NewRequest("GET", "/api/v1/case/c1", nil)
	if err != nil {
		t.Fatal(err)
	}
	req = mux.SetURLVars(req, map[string]string{"case_id": "c1"})

	db, conn := caseCollectionMocks()
	singleResultHelper := &mocksdb.SingleResultHelper{}
	singleResultHelper.On("Decode", mock.Anything).Return(nil).Run(func(args mock.Arguments) {
		arg := args.Get(0).(*models.Case)
		arg.ID = "c1"
		arg.DefendantLastName = "Reyes"
		arg.DefendantFirstName = "Ana"
	})
	conn.On("FindOne", mock.Anything, mock.Anything).Return(singleResultHelper)

	c := handlers.Case{DB: databases.NewCaseDatabase(db)}

	rr := httptest.NewRecorder()
	http.HandlerFunc(c.CaseByIDHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"Reyes"`)
}

func TestCase_CreateCaseHandlerRejectsMalformedDate(t *testing.T) {
	body := strings.NewReader(`{"defendantLastName":"Reyes","defendantFirstName":"Ana","dateOpened":"05/01/2024"}`)
	req, err := http.NewRequest("POST", "/api/v1/case", body)
	if err != nil {
		t.Fatal(err)
	}

	db, _ := caseCollectionMocks()
	c := handlers.Case{DB: databases.NewCaseDatabase(db)}

	rr := httptest.NewRecorder()
	http.HandlerFunc(c.CreateCaseHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "invalid case")
}

func TestCase_CreateCaseHandlerSuccess(t *testing.T) {
	body := strings.NewReader(`{"defendantLastName":"Reyes","defendantFirstName":"Ana","dateOpened":"2024-05-01","status":"open"}`)
	req, err := http.NewRequest("POST", "/api/v1/case", body)
	if err != nil {
		t.Fatal(err)
	}

	db, conn := caseCollectionMocks()
	conn.On("ReplaceOne", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

	c := handlers.Case{DB: databases.NewCaseDatabase(db)}

	rr := httptest.NewRecorder()
	http.HandlerFunc(c.CreateCaseHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Contains(t, rr.Body.String(), "case created successfully")
}

func TestCase_AddActivityHandlerAppendsToLedger(t *testing.T) {
	body := strings.NewReader(`{"date":"2024-05-02","code":"SV","description":"Served subpoena","hours":1.5}`)
	req, err := http.NewRequest("POST", "/api/v1/case/c1/activities", body)
	if err != nil {
		t.Fatal(err)
	}
	req = mux.SetURLVars(req, map[string]string{"case_id": "c1"})

	db, conn := caseCollectionMocks()
	singleResultHelper := &mocksdb.SingleResultHelper{}
	singleResultHelper.On("Decode", mock.Anything).Return(nil).Run(func(args mock.Arguments) {
		arg := args.Get(0).(*models.Case)
		arg.ID = "c1"
		arg.DefendantLastName = "Reyes"
		arg.DefendantFirstName = "Ana"
	})
	conn.On("FindOne", mock.Anything, mock.Anything).Return(singleResultHelper)

	var stored models.Case
	conn.On("ReplaceOne", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil).Run(func(args mock.Arguments) {
		stored = args.Get(2).(models.Case)
	})

	c := handlers.Case{DB: databases.NewCaseDatabase(db)}

	rr := httptest.NewRecorder()
	http.HandlerFunc(c.AddActivityHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Len(t, stored.Activities, 1)
	assert.Equal(t, "c1", stored.Activities[0].CaseID)
	assert.Equal(t, 1.5, stored.Activities[0].Hours)
	assert.NotEmpty(t, stored.Activities[0].ID)
}

func TestCase_DeleteCaseHandler(t *testing.T) {
	req, err := http.NewRequest("DELETE", "/api/v1/case/c1", nil)
	if err != nil {
		t.Fatal(err)
	}
	req = mux.SetURLVars(req, map[string]string{"case_id": "c1"})

	db, conn := caseCollectionMocks()
	conn.On("DeleteOne", mock.Anything, mock.Anything).Return(nil)

	c := handlers.Case{DB: databases.NewCaseDatabase(db)}

	rr := httptest.NewRecorder()
	http.HandlerFunc(c.DeleteCaseHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "case deleted successfully")
}
