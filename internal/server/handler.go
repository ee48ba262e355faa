package server

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

type handlers struct {
	logger  Logger
	trigger ReconcileTriggerer
	finder  RecordFinder
	zone    string
	name    string
}

func newHandler(rootURL string, logger Logger, trigger ReconcileTriggerer,
	finder RecordFinder, zone, name string) http.Handler {
	handlers := &handlers{
		logger:  logger,
		trigger: trigger,
		finder:  finder,
		zone:    zone,
		name:    name,
	}

	rootURL = strings.TrimSuffix(rootURL, "/")

	router := chi.NewRouter()
	router.Use(middleware.Logger, middleware.CleanPath)

	router.Get(rootURL+"/api/v1/record", handlers.getRecord)
	router.Post(rootURL+"/api/v1/reconcile", handlers.reconcile)

	return router
}
