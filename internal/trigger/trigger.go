// Package trigger runs reconciliations in serve mode, either
// periodically or on demand, and tracks the last outcome for
// the healthcheck server.
package trigger

import (
	"context"
	"sync"
	"time"

	"github.com/qdm12/ipa-dnsrecord/internal/dnsrecord"
	"github.com/qdm12/ipa-dnsrecord/internal/reconciler"
)

type Service struct {
	desired    dnsrecord.Desired
	state      dnsrecord.State
	period     time.Duration
	reconciler Reconciler
	verifier   Verifier
	notifier   Notifier
	logger     Logger

	lastErrorMutex sync.RWMutex
	lastError      error

	cancel context.CancelFunc
	done   chan struct{}
}

type Settings struct {
	Desired dnsrecord.Desired
	State   dnsrecord.State
	// Period between reconciliations, zero to only reconcile
	// on demand.
	Period     time.Duration
	Reconciler Reconciler
	// Verifier can be nil to skip DNS verification.
	Verifier Verifier
	Notifier Notifier
	Logger   Logger
}

func New(settings Settings) *Service {
	return &Service{
		desired:    settings.Desired,
		state:      settings.State,
		period:     settings.Period,
		reconciler: settings.Reconciler,
		verifier:   settings.Verifier,
		notifier:   settings.Notifier,
		logger:     settings.Logger,
	}
}

func (s *Service) String() string {
	return "reconcile trigger"
}

func (s *Service) Start(_ context.Context) (runError <-chan error, startErr error) {
	runErrorCh := make(chan error)
	runCtx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.done = make(chan struct{})
	go s.run(runCtx)
	return runErrorCh, nil
}

func (s *Service) Stop() (err error) {
	s.cancel()
	<-s.done
	return nil
}

// run reconciles periodically. Reconciliation failures are
// logged and notified but do not crash the service, so the
// run error channel never fires.
func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	if s.period == 0 {
		<-ctx.Done()
		return
	}

	ticker := time.NewTicker(s.period)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			_, _ = s.ReconcileNow(ctx)
		}
	}
}

// ReconcileNow reconciles the record immediately and records the
// outcome. It is also called by the HTTP server trigger route.
func (s *Service) ReconcileNow(ctx context.Context) (
	result reconciler.Result, err error) {
	result, err = s.reconcile(ctx)
	s.setLastError(err)
	if err != nil {
		s.logger.Error(err.Error())
		s.notifier.Notify(err.Error())
		return result, err
	}

	if result.Changed {
		s.notifier.Notify("record " + s.desired.Name + " in zone " +
			s.desired.Zone + " reconciled to state " + string(s.state))
	}
	return result, nil
}

func (s *Service) reconcile(ctx context.Context) (
	result reconciler.Result, err error) {
	result, err = s.reconciler.Reconcile(ctx, s.desired, s.state)
	if err != nil {
		return result, err
	}

	if s.verifier != nil {
		err = s.verifier.Verify(ctx, s.desired, s.state)
		if err != nil {
			return result, err
		}
	}

	return result, nil
}

// LastError returns the error of the last reconciliation,
// or nil if it succeeded or none ran yet.
func (s *Service) LastError() error {
	s.lastErrorMutex.RLock()
	defer s.lastErrorMutex.RUnlock()
	return s.lastError
}

func (s *Service) setLastError(err error) {
	s.lastErrorMutex.Lock()
	defer s.lastErrorMutex.Unlock()
	s.lastError = err
}
