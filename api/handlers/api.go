package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/brentis/investigator-api/api"
	"github.com/brentis/investigator-api/config"
	"github.com/brentis/investigator-api/databases"
	"github.com/brentis/investigator-api/models"
)

// App stores the router and db connection, so it can be reused
type App struct {
	Router   *mux.Router
	Config   config.Config
	dbHelper databases.DatabaseHelper
}

// New creates a new mux router and all the routes
func (a *App) New() *mux.Router {
	// setup go-guardian for middleware
	m := api.MiddlewareDB{DB: databases.NewInvestigatorDatabase(a.dbHelper)}
	m.SetupGoGuardian()

	r := mux.NewRouter()
	r.Use(api.TimeoutMiddleware(30 * time.Second))

	caseDB := databases.NewCaseDatabase(a.dbHelper)
	taskDB := databases.NewGlobalTaskDatabase(a.dbHelper)

	c := Case{DB: caseDB}
	task := Task{DB: taskDB, CDB: caseDB}
	d := Dashboard{CDB: caseDB, TDB: taskDB, HourlyRate: a.Config.HourlyRate}
	reg := Registry{DB: caseDB}
	wl := Workload{DB: caseDB}
	v := Voucher{DB: caseDB, HourlyRate: a.Config.HourlyRate}
	uploads := UploadHandler{}
	export := Export{JWTSecret: a.Config.JWTSecret}

	// healthchex
	r.HandleFunc("/health", healthCheckHandler)

	apiCreate := r.PathPrefix("/api/v1").Subrouter()

	apiCreate.Handle("/auth/token", api.Middleware(http.HandlerFunc(m.CreateToken))).Methods("POST")
	apiCreate.Handle("/auth/logout", api.Middleware(http.HandlerFunc(api.RevokeToken))).Methods("DELETE")

	apiCreate.Handle("/dashboard", api.Middleware(http.HandlerFunc(d.DashboardHandler))).Methods("GET")
	apiCreate.Handle("/registry", api.Middleware(http.HandlerFunc(reg.RegistryHandler))).Methods("GET")
	apiCreate.Handle("/workload", api.Middleware(http.HandlerFunc(wl.WorkloadCalendarHandler))).Methods("GET")
	apiCreate.Handle("/vouchers", api.Middleware(http.HandlerFunc(v.VoucherHubHandler))).Methods("GET")

	apiCreate.Handle("/case", api.Middleware(http.HandlerFunc(c.CreateCaseHandler))).Methods("POST")
	apiCreate.Handle("/case/{case_id}", api.Middleware(http.HandlerFunc(c.CaseByIDHandler))).Methods("GET")
	apiCreate.Handle("/case/{case_id}", api.Middleware(http.HandlerFunc(c.UpdateCaseHandler))).Methods("PUT")
	apiCreate.Handle("/case/{case_id}", api.Middleware(http.HandlerFunc(c.DeleteCaseHandler))).Methods("DELETE")
	apiCreate.Handle("/case/{case_id}/activities", api.Middleware(http.HandlerFunc(c.AddActivityHandler))).Methods("POST")
	apiCreate.Handle("/case/{case_id}/evidence", api.Middleware(http.HandlerFunc(c.AddEvidenceHandler))).Methods("POST")
	apiCreate.Handle("/case/{case_id}/communications", api.Middleware(http.HandlerFunc(c.AddCommunicationHandler))).Methods("POST")
	apiCreate.Handle("/case/{case_id}/tasks", api.Middleware(http.HandlerFunc(task.TasksByCaseIDHandler))).Methods("GET")
	apiCreate.Handle("/cases", api.Middleware(http.HandlerFunc(c.CasesHandler))).Methods("GET")

	apiCreate.Handle("/task", api.Middleware(http.HandlerFunc(task.CreateTaskHandler))).Methods("POST")
	apiCreate.Handle("/task/{task_id}", api.Middleware(http.HandlerFunc(task.TaskByIDHandler))).Methods("GET")
	apiCreate.Handle("/task/{task_id}", api.Middleware(http.HandlerFunc(task.UpdateTaskHandler))).Methods("PUT")
	apiCreate.Handle("/task/{task_id}", api.Middleware(http.HandlerFunc(task.DeleteTaskHandler))).Methods("DELETE")
	apiCreate.Handle("/tasks", api.Middleware(http.HandlerFunc(task.TasksHandler))).Methods("GET")

	apiCreate.Handle("/generate-signature", api.Middleware(http.HandlerFunc(uploads.GenerateSignature))).Methods("POST")
	apiCreate.Handle("/export/token", api.Middleware(http.HandlerFunc(export.ExportTokenHandler))).Methods("POST")

	return r
}

// Initialize is invoked by main to connect with the database and create a router
func (a *App) Initialize() error {

	client, err := databases.NewClient(&a.Config)
	if err != nil {
		// if we fail to create a new database client, then kill the pod
		zap.S().With(err).Error("failed to create new client")
		return err
	}

	a.dbHelper = databases.NewDatabase(&a.Config, client)
	err = client.Connect()
	if err != nil {
		// if we fail to connect to the database, then kill the pod
		zap.S().With(err).Error("failed to connect to database")
		return err
	}
	zap.S().Info("investigator-api has connected to the database")

	// initialize api router
	a.initializeRoutes()
	return nil

}

func (a *App) initializeRoutes() {
	a.Router = a.New()
}

// DB exposes the connected database helper so main can hand it to the scheduler
func (a *App) DB() databases.DatabaseHelper {
	return a.dbHelper
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	b, _ := json.Marshal(models.HealthCheckResponse{
		Alive: true,
	})
	_, _ = io.WriteString(w, string(b))
}
