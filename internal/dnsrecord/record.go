package dnsrecord

import (
	"errors"
	"fmt"
	"net/netip"
	"strings"
)

// Type is a DNS address record type.
type Type string

const (
	A    Type = "A"
	AAAA Type = "AAAA"
)

var ErrTypeUnknown = errors.New("record type is unknown")

func ParseType(s string) (recordType Type, err error) {
	switch strings.ToUpper(s) {
	case string(A):
		return A, nil
	case string(AAAA):
		return AAAA, nil
	default:
		return "", fmt.Errorf("%w: %q can be one of A or AAAA",
			ErrTypeUnknown, s)
	}
}

// State is the desired existence state of a record.
type State string

const (
	Present State = "present"
	Absent  State = "absent"
)

var ErrStateUnknown = errors.New("state is unknown")

func ParseState(s string) (state State, err error) {
	switch strings.ToLower(s) {
	case string(Present):
		return Present, nil
	case string(Absent):
		return Absent, nil
	default:
		return "", fmt.Errorf("%w: %q can be one of present or absent",
			ErrStateUnknown, s)
	}
}

// Desired is the desired state of a single DNS record,
// built once from configuration and never mutated.
type Desired struct {
	Zone string
	Name string
	Type Type
	IP   netip.Addr
}

// Record is a server side record as decoded from the API JSON,
// mapping field names to values. A value can be a scalar or a
// list of values.
type Record map[string]any

// Name returns the record name, usually under the idnsname field.
func (r Record) Name() (name string, ok bool) {
	return firstString(r["idnsname"])
}
