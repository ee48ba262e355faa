package server

import (
	"context"

	"github.com/qdm12/ipa-dnsrecord/internal/dnsrecord"
	"github.com/qdm12/ipa-dnsrecord/internal/reconciler"
)

type ReconcileTriggerer interface {
	ReconcileNow(ctx context.Context) (result reconciler.Result, err error)
}

type RecordFinder interface {
	FindRecord(ctx context.Context, zone, name string) (
		record dnsrecord.Record, found bool, err error)
}

type Logger interface {
	Info(s string)
	Warn(s string)
	Error(s string)
}
