package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"

	"github.com/brentis/investigator-api/api/handlers"
	"github.com/brentis/investigator-api/api/scheduler"
	"github.com/brentis/investigator-api/config"
	"github.com/brentis/investigator-api/databases"
)

func main() {
	a := handlers.App{}
	a.Config = *config.New()

	if err := a.Initialize(); err != nil { //initialize database and router
		log.Fatal(err)
	}

	// start the daily risk digest job
	s := scheduler.NewScheduler(
		databases.NewCaseDatabase(a.DB()),
		databases.NewGlobalTaskDatabase(a.DB()),
		&a.Config,
	)
	s.Start()
	defer s.Stop()

	port := os.Getenv("PORT")
	baseURL := os.Getenv("BASE_URL")
	zap.S().Infow("investigator-api is up and running",
		"port", port,
		"url", baseURL,
	)
	log.Fatal(http.ListenAndServe(fmt.Sprintf(":%v", port), a.Router))
}
