// Package verify checks a reconciled record against a live DNS
// query to the zone's DNS server.
package verify

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/miekg/dns"
	"github.com/qdm12/ipa-dnsrecord/internal/dnsrecord"
)

type Exchanger interface {
	ExchangeContext(ctx context.Context, m *dns.Msg, address string) (
		r *dns.Msg, rtt time.Duration, err error)
}

type Verifier struct {
	exchanger Exchanger
	address   string
}

type Settings struct {
	// Address is the host:port of the DNS server to query.
	Address string
	Timeout time.Duration
}

func New(settings Settings) *Verifier {
	return &Verifier{
		exchanger: &dns.Client{Timeout: settings.Timeout},
		address:   settings.Address,
	}
}

var (
	ErrAnswerMismatch = errors.New("DNS answer does not match the desired address")
	ErrAnswerMissing  = errors.New("no DNS answer for the record")
	ErrAnswerPresent  = errors.New("DNS answer still present for the record")
)

// Verify queries the DNS server for the record and checks the
// answer against the desired state. Note a caching or secondary
// resolver can lag behind the authoritative server, so the
// configured resolver should be the FreeIPA server itself.
func (v *Verifier) Verify(ctx context.Context, desired dnsrecord.Desired,
	state dnsrecord.State) (err error) {
	question := new(dns.Msg)
	fqdn := dns.Fqdn(desired.Name + "." + desired.Zone)
	qType := dns.TypeA
	if desired.Type == dnsrecord.AAAA {
		qType = dns.TypeAAAA
	}
	question.SetQuestion(fqdn, qType)

	response, _, err := v.exchanger.ExchangeContext(ctx, question, v.address)
	if err != nil {
		return fmt.Errorf("exchanging DNS message with %s: %w", v.address, err)
	}

	answered, matching := inspectAnswers(response.Answer, desired)

	switch state {
	case dnsrecord.Present:
		if !answered {
			return fmt.Errorf("%w: %s %s from %s",
				ErrAnswerMissing, fqdn, desired.Type, v.address)
		} else if !matching {
			return fmt.Errorf("%w: for %s %s from %s",
				ErrAnswerMismatch, fqdn, desired.Type, v.address)
		}
	case dnsrecord.Absent:
		if answered {
			return fmt.Errorf("%w: %s %s from %s",
				ErrAnswerPresent, fqdn, desired.Type, v.address)
		}
	}

	return nil
}

func inspectAnswers(answers []dns.RR, desired dnsrecord.Desired) (
	answered, matching bool) {
	desiredIP := net.IP(desired.IP.AsSlice())
	for _, answer := range answers {
		var answerIP net.IP
		switch rr := answer.(type) {
		case *dns.A:
			answerIP = rr.A
		case *dns.AAAA:
			answerIP = rr.AAAA
		default:
			continue
		}
		answered = true
		if answerIP.Equal(desiredIP) {
			matching = true
		}
	}
	return answered, matching
}
