package health

import (
	"github.com/qdm12/goservices/httpserver"
)

type Logger interface {
	Info(s string)
	Warn(s string)
	Error(s string)
}

func NewServer(address string, logger Logger, healthcheck func() error) (
	server *httpserver.Server, err error) {
	name := "health"
	return httpserver.New(httpserver.Settings{
		Handler: newHandler(healthcheck),
		Name:    &name,
		Address: &address,
		Logger:  logger,
	})
}

// MakeIsHealthy reports the failure of the last reconciliation,
// if any.
func MakeIsHealthy(lastErrorer interface{ LastError() error }) func() error {
	return func() error {
		return lastErrorer.LastError()
	}
}
