package config

import (
	"time"

	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gotree"
)

// Update configures the periodic reconciliation of serve mode.
// A zero period disables periodic runs, leaving only the HTTP
// trigger.
type Update struct {
	Period time.Duration
}

func (u *Update) setDefaults() {}

func (u Update) Validate() (err error) {
	return nil
}

func (u Update) String() string {
	return u.toLinesNode().String()
}

func (u Update) toLinesNode() *gotree.Node {
	if u.Period == 0 {
		return gotree.New("Periodic reconcile: disabled")
	}
	node := gotree.New("Periodic reconcile")
	node.Appendf("Period: %s", u.Period)
	return node
}

func (u *Update) read(reader *reader.Reader) (err error) {
	u.Period, err = reader.Duration("PERIOD")
	return err
}
