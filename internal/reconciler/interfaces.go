package reconciler

import (
	"context"

	"github.com/qdm12/ipa-dnsrecord/internal/dnsrecord"
)

//go:generate mockgen -destination=mock_client_test.go -package=$GOPACKAGE . Client

type Client interface {
	FindRecord(ctx context.Context, zone, name string) (
		record dnsrecord.Record, found bool, err error)
	AddRecord(ctx context.Context, zone, name string,
		fields map[string]string) (record dnsrecord.Record, err error)
	ModRecord(ctx context.Context, zone, name string,
		fields map[string]string) (record dnsrecord.Record, err error)
	DelRecord(ctx context.Context, zone, name string,
		fields map[string]string) (record dnsrecord.Record, err error)
}

type Logger interface {
	Debug(s string)
	Info(s string)
}
