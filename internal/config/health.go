package config

import (
	"fmt"
	"net"

	"github.com/qdm12/gosettings"
	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gotree"
)

type Health struct {
	ServerAddress *string
}

// Read is exported since the healthcheck subcommand reads the
// health settings on their own.
func (h *Health) Read(reader *reader.Reader) {
	h.ServerAddress = reader.Get("HEALTH_SERVER_ADDRESS")
}

func (h *Health) SetDefaults() {
	h.ServerAddress = gosettings.DefaultPointer(h.ServerAddress, "127.0.0.1:9999")
}

func (h Health) Validate() (err error) {
	_, _, err = net.SplitHostPort(*h.ServerAddress)
	if err != nil {
		return fmt.Errorf("server address: %w", err)
	}
	return nil
}

func (h Health) String() string {
	return h.toLinesNode().String()
}

func (h Health) toLinesNode() *gotree.Node {
	node := gotree.New("Health")
	node.Appendf("Server address: %s", *h.ServerAddress)
	return node
}
