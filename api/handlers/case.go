package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/brentis/investigator-api/api"
	"github.com/brentis/investigator-api/config"
	"github.com/brentis/investigator-api/databases"
	"github.com/brentis/investigator-api/models"
)

// Case exported for testing purposes
type Case struct {
	DB databases.CaseDatabase
}

// CaseByIDHandler returns a case given a case_id
func (c Case) CaseByIDHandler(w http.ResponseWriter, r *http.Request) {
	caseID := mux.Vars(r)["case_id"]

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	dbResp, err := c.DB.FindOne(ctx, bson.M{"_id": caseID})
	if err != nil {
		config.ErrorStatus("failed to get case by ID", http.StatusNotFound, w, err)
		return
	}

	b, err := json.Marshal(dbResp)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// CasesHandler returns the whole case collection
func (c Case) CasesHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	dbResp, err := c.DB.Find(ctx, bson.M{})
	if err != nil {
		config.ErrorStatus("failed to get cases", http.StatusNotFound, w, err)
		return
	}

	// If the database returns nothing then we will return an empty array
	if dbResp == nil {
		dbResp = []models.Case{}
	}

	b, err := json.Marshal(dbResp)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// CreateCaseHandler creates a new case
func (c Case) CreateCaseHandler(w http.ResponseWriter, r *http.Request) {
	var form caseForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}
	if err := form.Validate(); err != nil {
		config.ErrorStatus("invalid case", http.StatusBadRequest, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	newCase := form.toCase(uuid.New().String())
	if err := c.DB.UpsertOne(ctx, bson.M{"_id": newCase.ID}, newCase); err != nil {
		config.ErrorStatus("failed to create new case", http.StatusInternalServerError, w, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"message": "case created successfully",
		"id":      newCase.ID,
	})
}

// UpdateCaseHandler replaces an existing case with the supplied document
func (c Case) UpdateCaseHandler(w http.ResponseWriter, r *http.Request) {
	caseID := mux.Vars(r)["case_id"]

	var form caseForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}
	if err := form.Validate(); err != nil {
		config.ErrorStatus("invalid case", http.StatusBadRequest, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	updated := form.toCase(caseID)
	if err := c.DB.UpsertOne(ctx, bson.M{"_id": caseID}, updated); err != nil {
		config.ErrorStatus("failed to update case", http.StatusInternalServerError, w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"message": "case updated successfully"}`))
}

// DeleteCaseHandler deletes an existing case
func (c Case) DeleteCaseHandler(w http.ResponseWriter, r *http.Request) {
	caseID := mux.Vars(r)["case_id"]

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	if err := c.DB.DeleteOne(ctx, bson.M{"_id": caseID}); err != nil {
		config.ErrorStatus("failed to delete case", http.StatusInternalServerError, w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"message": "case deleted successfully"}`))
}

// AddActivityHandler appends an activity ledger line to a case
func (c Case) AddActivityHandler(w http.ResponseWriter, r *http.Request) {
	caseID := mux.Vars(r)["case_id"]

	var form activityForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}
	if err := form.Validate(); err != nil {
		config.ErrorStatus("invalid activity", http.StatusBadRequest, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	existing, err := c.DB.FindOne(ctx, bson.M{"_id": caseID})
	if err != nil {
		config.ErrorStatus("failed to get case by ID", http.StatusNotFound, w, err)
		return
	}

	activity := models.Activity{
		ID:          uuid.New().String(),
		CaseID:      caseID,
		Date:        form.Date,
		Code:        form.Code,
		Description: form.Description,
		Hours:       form.Hours,
	}
	existing.Activities = append(existing.Activities, activity)

	if err := c.DB.UpsertOne(ctx, bson.M{"_id": caseID}, *existing); err != nil {
		config.ErrorStatus("failed to add activity", http.StatusInternalServerError, w, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"message": "activity added successfully",
		"id":      activity.ID,
	})
}

// AddEvidenceHandler appends an evidence request line to a case
func (c Case) AddEvidenceHandler(w http.ResponseWriter, r *http.Request) {
	caseID := mux.Vars(r)["case_id"]

	var form evidenceForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}
	if err := form.Validate(); err != nil {
		config.ErrorStatus("invalid evidence item", http.StatusBadRequest, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	existing, err := c.DB.FindOne(ctx, bson.M{"_id": caseID})
	if err != nil {
		config.ErrorStatus("failed to get case by ID", http.StatusNotFound, w, err)
		return
	}

	item := models.EvidenceItem{
		ID:            uuid.New().String(),
		Description:   form.Description,
		DateRequested: form.DateRequested,
		RequestedFrom: form.RequestedFrom,
		DateReceived:  form.DateReceived,
		Notes:         form.Notes,
	}
	existing.EvidenceItems = append(existing.EvidenceItems, item)

	if err := c.DB.UpsertOne(ctx, bson.M{"_id": caseID}, *existing); err != nil {
		config.ErrorStatus("failed to add evidence item", http.StatusInternalServerError, w, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"message": "evidence item added successfully",
		"id":      item.ID,
	})
}

// AddCommunicationHandler appends a communication log line to a case
func (c Case) AddCommunicationHandler(w http.ResponseWriter, r *http.Request) {
	caseID := mux.Vars(r)["case_id"]

	var form communicationForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}
	if err := form.Validate(); err != nil {
		config.ErrorStatus("invalid communication", http.StatusBadRequest, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	existing, err := c.DB.FindOne(ctx, bson.M{"_id": caseID})
	if err != nil {
		config.ErrorStatus("failed to get case by ID", http.StatusNotFound, w, err)
		return
	}

	comm := models.Communication{
		ID:        uuid.New().String(),
		Date:      form.Date,
		Type:      form.Type,
		Content:   form.Content,
		Recipient: form.Recipient,
	}
	existing.Communications = append(existing.Communications, comm)

	if err := c.DB.UpsertOne(ctx, bson.M{"_id": caseID}, *existing); err != nil {
		config.ErrorStatus("failed to add communication", http.StatusInternalServerError, w, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"message": "communication added successfully",
		"id":      comm.ID,
	})
}
