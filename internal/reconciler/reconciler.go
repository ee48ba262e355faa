// Package reconciler converges the server side DNS record to
// the desired state with at most one mutating API call.
package reconciler

import (
	"context"
	"fmt"
	"sync"

	"github.com/qdm12/ipa-dnsrecord/internal/dnsrecord"
)

type Reconciler struct {
	client    Client
	logger    Logger
	checkMode bool
	// mutex serializes reconciliations so two concurrent runs
	// cannot interleave their find-then-act steps and lose an
	// update against the same zone and record name.
	mutex sync.Mutex
}

func New(client Client, logger Logger, checkMode bool) *Reconciler {
	return &Reconciler{
		client:    client,
		logger:    logger,
		checkMode: checkMode,
	}
}

// Result is the outcome of one reconciliation.
type Result struct {
	// Changed is true if a mutating call was issued, or would
	// have been issued when running in check mode.
	Changed bool `json:"changed"`
	// Found is true if the record exists on the server after
	// reconciling.
	Found bool `json:"found"`
	// Record is the authoritative server side record, nil when
	// Found is false.
	Record dnsrecord.Record `json:"record"`
}

// Reconcile finds the current record, decides on the transition
// to reach the desired state and applies it, then finds the record
// again to report the authoritative final state. In check mode the
// decision is computed identically but no mutating call is issued
// and the pre-mutation find result is returned.
func (r *Reconciler) Reconcile(ctx context.Context, desired dnsrecord.Desired,
	state dnsrecord.State) (result Result, err error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	current, found, err := r.client.FindRecord(ctx, desired.Zone, desired.Name)
	if err != nil {
		return result, err
	}

	switch state {
	case dnsrecord.Present:
		result.Changed, err = r.ensurePresent(ctx, desired, current, found)
	case dnsrecord.Absent:
		result.Changed, err = r.ensureAbsent(ctx, desired, found)
	default:
		return result, fmt.Errorf("%w: %q", dnsrecord.ErrStateUnknown, state)
	}
	if err != nil {
		return Result{}, err
	}

	result.Record, result.Found = current, found
	if result.Changed && !r.checkMode {
		result.Record, result.Found, err = r.client.FindRecord(ctx,
			desired.Zone, desired.Name)
		if err != nil {
			return Result{}, err
		}
	}

	return result, nil
}

func (r *Reconciler) ensurePresent(ctx context.Context, desired dnsrecord.Desired,
	current dnsrecord.Record, found bool) (changed bool, err error) {
	if !found {
		r.logger.Info("record " + desired.Name + " in zone " + desired.Zone +
			" is missing, creating it")
		if r.checkMode {
			return true, nil
		}
		_, err = r.client.AddRecord(ctx, desired.Zone, desired.Name,
			dnsrecord.AddFields(desired))
		return true, err
	}

	diff := dnsrecord.Diff(current, found, desired)
	if len(diff) == 0 {
		r.logger.Debug("record " + desired.Name + " in zone " + desired.Zone +
			" matches the desired state")
		return false, nil
	}

	r.logger.Info("record " + desired.Name + " in zone " + desired.Zone +
		" differs, modifying it")
	if r.checkMode {
		return true, nil
	}
	_, err = r.client.ModRecord(ctx, desired.Zone, desired.Name,
		dnsrecord.StorageFields(desired))
	return true, err
}

func (r *Reconciler) ensureAbsent(ctx context.Context, desired dnsrecord.Desired,
	found bool) (changed bool, err error) {
	if !found {
		r.logger.Debug("record " + desired.Name + " in zone " + desired.Zone +
			" is already absent")
		return false, nil
	}

	r.logger.Info("record " + desired.Name + " in zone " + desired.Zone +
		" exists, deleting it")
	if r.checkMode {
		return true, nil
	}
	_, err = r.client.DelRecord(ctx, desired.Zone, desired.Name,
		dnsrecord.StorageFields(desired))
	return true, err
}
