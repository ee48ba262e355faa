// Package server provides the serve mode HTTP API to inspect
// and trigger the reconciliation.
package server

import (
	"github.com/qdm12/goservices/httpserver"
)

type Settings struct {
	Address string
	RootURL string
	Logger  Logger
	// Trigger runs a reconciliation on demand.
	Trigger ReconcileTriggerer
	// Finder reads the current server side record.
	Finder RecordFinder
	Zone   string
	Name   string
}

func New(settings Settings) (server *httpserver.Server, err error) {
	handler := newHandler(settings.RootURL, settings.Logger,
		settings.Trigger, settings.Finder, settings.Zone, settings.Name)
	name := "http server"
	return httpserver.New(httpserver.Settings{
		Handler: handler,
		Name:    &name,
		Address: &settings.Address,
		Logger:  settings.Logger,
	})
}
