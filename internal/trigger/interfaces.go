package trigger

import (
	"context"

	"github.com/qdm12/ipa-dnsrecord/internal/dnsrecord"
	"github.com/qdm12/ipa-dnsrecord/internal/reconciler"
)

type Reconciler interface {
	Reconcile(ctx context.Context, desired dnsrecord.Desired,
		state dnsrecord.State) (result reconciler.Result, err error)
}

type Verifier interface {
	Verify(ctx context.Context, desired dnsrecord.Desired,
		state dnsrecord.State) (err error)
}

type Notifier interface {
	Notify(message string)
}

type Logger interface {
	Info(s string)
	Error(s string)
}
