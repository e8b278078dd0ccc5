package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/brentis/investigator-api/analytics"
	"github.com/brentis/investigator-api/api"
	"github.com/brentis/investigator-api/config"
	"github.com/brentis/investigator-api/databases"
	"github.com/brentis/investigator-api/models"
)

// Task exported for testing purposes
type Task struct {
	DB  databases.GlobalTaskDatabase
	CDB databases.CaseDatabase
}

// TaskByIDHandler returns a global task given a task_id
func (t Task) TaskByIDHandler(w http.ResponseWriter, r *http.Request) {
	taskID := mux.Vars(r)["task_id"]

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	dbResp, err := t.DB.FindOne(ctx, bson.M{"_id": taskID})
	if err != nil {
		config.ErrorStatus("failed to get task by ID", http.StatusNotFound, w, err)
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

// TasksHandler returns all global tasks ordered by due date, undated last
func (t Task) TasksHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	dbResp, err := t.DB.Find(ctx, bson.M{})
	if err != nil {
		config.ErrorStatus("failed to get tasks", http.StatusNotFound, w, err)
		return
	}

	sorted := analytics.SortTasksByDue(dbResp)
	if sorted == nil {
		sorted = []models.GlobalTask{}
	}

	b, err := json.Marshal(sorted)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// TasksByCaseIDHandler returns the tasks scoped to one case, dropping tasks
// whose caseId no longer resolves
func (t Task) TasksByCaseIDHandler(w http.ResponseWriter, r *http.Request) {
	caseID := mux.Vars(r)["case_id"]

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	tasks, err := t.DB.Find(ctx, bson.M{"caseId": caseID})
	if err != nil {
		config.ErrorStatus("failed to get tasks", http.StatusNotFound, w, err)
		return
	}

	cases, err := t.CDB.Find(ctx, bson.M{})
	if err != nil {
		config.ErrorStatus("failed to get cases", http.StatusNotFound, w, err)
		return
	}

	scoped := analytics.TasksForCase(tasks, cases, caseID)
	if scoped == nil {
		scoped = []models.GlobalTask{}
	}

	b, err := json.Marshal(scoped)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// CreateTaskHandler creates a new global task
func (t Task) CreateTaskHandler(w http.ResponseWriter, r *http.Request) {
	var form taskForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}
	if err := form.Validate(); err != nil {
		config.ErrorStatus("invalid task", http.StatusBadRequest, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	newTask := form.toTask(uuid.New().String())
	if err := t.DB.UpsertOne(ctx, bson.M{"_id": newTask.ID}, newTask); err != nil {
		config.ErrorStatus("failed to create new task", http.StatusInternalServerError, w, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"message": "task created successfully",
		"id":      newTask.ID,
	})
}

// UpdateTaskHandler replaces an existing task with the supplied document
func (t Task) UpdateTaskHandler(w http.ResponseWriter, r *http.Request) {
	taskID := mux.Vars(r)["task_id"]

	var form taskForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}
	if err := form.Validate(); err != nil {
		config.ErrorStatus("invalid task", http.StatusBadRequest, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	updated := form.toTask(taskID)
	if err := t.DB.UpsertOne(ctx, bson.M{"_id": taskID}, updated); err != nil {
		config.ErrorStatus("failed to update task", http.StatusInternalServerError, w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"message": "task updated successfully"}`))
}

// DeleteTaskHandler deletes an existing task
func (t Task) DeleteTaskHandler(w http.ResponseWriter, r *http.Request) {
	taskID := mux.Vars(r)["task_id"]

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	if err := t.DB.DeleteOne(ctx, bson.M{"_id": taskID}); err != nil {
		config.ErrorStatus("failed to delete task", http.StatusInternalServerError, w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"message": "task deleted successfully"}`))
}
