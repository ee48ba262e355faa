package config

import (
	"errors"
	"fmt"
	"net/netip"

	"github.com/qdm12/gosettings"
	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gotree"
	"github.com/qdm12/ipa-dnsrecord/internal/dnsrecord"
)

type Record struct {
	Zone      string
	Name      string
	Type      string
	IP        string
	State     string
	CheckMode *bool
	Verify    *bool
}

func (r *Record) setDefaults() {
	r.Type = gosettings.DefaultComparable(r.Type, string(dnsrecord.A))
	r.State = gosettings.DefaultComparable(r.State, string(dnsrecord.Present))
	r.CheckMode = gosettings.DefaultPointer(r.CheckMode, false)
	r.Verify = gosettings.DefaultPointer(r.Verify, false)
}

var (
	ErrZoneNameNotSet   = errors.New("zone name is not set")
	ErrRecordNameNotSet = errors.New("record name is not set")
	ErrRecordIPNotSet   = errors.New("record IP address is not set")
	ErrRecordIPMismatch = errors.New("record IP address does not match the record type")
)

func (r Record) Validate() (err error) {
	switch {
	case r.Zone == "":
		return fmt.Errorf("%w", ErrZoneNameNotSet)
	case r.Name == "":
		return fmt.Errorf("%w", ErrRecordNameNotSet)
	case r.IP == "":
		return fmt.Errorf("%w", ErrRecordIPNotSet)
	}

	recordType, err := dnsrecord.ParseType(r.Type)
	if err != nil {
		return err
	}

	_, err = dnsrecord.ParseState(r.State)
	if err != nil {
		return err
	}

	ip, err := netip.ParseAddr(r.IP)
	if err != nil {
		return fmt.Errorf("parsing record IP address: %w", err)
	}

	// The server would accept a mismatching literal and store a
	// malformed record, so enforce the type here.
	isIPv4 := ip.Is4() || ip.Is4In6()
	switch {
	case recordType == dnsrecord.A && !isIPv4:
		return fmt.Errorf("%w: %s is not an IPv4 address", ErrRecordIPMismatch, r.IP)
	case recordType == dnsrecord.AAAA && isIPv4:
		return fmt.Errorf("%w: %s is not an IPv6 address", ErrRecordIPMismatch, r.IP)
	}

	return nil
}

// Desired converts the validated settings to the desired record
// and state.
func (r Record) Desired() (desired dnsrecord.Desired,
	state dnsrecord.State, err error) {
	desired.Zone = r.Zone
	desired.Name = r.Name

	desired.Type, err = dnsrecord.ParseType(r.Type)
	if err != nil {
		return desired, state, err
	}

	desired.IP, err = netip.ParseAddr(r.IP)
	if err != nil {
		return desired, state, fmt.Errorf("parsing record IP address: %w", err)
	}

	state, err = dnsrecord.ParseState(r.State)
	if err != nil {
		return desired, state, err
	}

	return desired, state, nil
}

func (r Record) String() string {
	return r.toLinesNode().String()
}

func (r Record) toLinesNode() *gotree.Node {
	node := gotree.New("Record")
	node.Appendf("Zone: %s", r.Zone)
	node.Appendf("Name: %s", r.Name)
	node.Appendf("Type: %s", r.Type)
	node.Appendf("IP address: %s", r.IP)
	node.Appendf("State: %s", r.State)
	node.Appendf("Check mode: %t", *r.CheckMode)
	node.Appendf("Verify with DNS query: %t", *r.Verify)
	return node
}

func (r *Record) read(reader *reader.Reader, warner Warner) (err error) {
	r.Zone = reader.String("ZONE_NAME")

	r.Name = reader.String("RECORD_NAME")
	if r.Name == "" {
		// Retro-compatibility with the NAME alias
		name := reader.Get("NAME")
		if name != nil {
			handleDeprecated(warner, "NAME", "RECORD_NAME")
			r.Name = *name
		}
	}

	r.Type = reader.String("RECORD_TYPE")
	r.IP = reader.String("RECORD_IP")
	r.State = reader.String("STATE")

	r.CheckMode, err = reader.BoolPtr("CHECK_MODE")
	if err != nil {
		return err
	}

	r.Verify, err = reader.BoolPtr("VERIFY")
	return err
}
