package config

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/qdm12/gosettings"
	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gotree"
)

type IPA struct {
	Host          string
	Port          *uint16
	Protocol      string
	Username      string
	Password      string
	ValidateCerts *bool
}

func (i *IPA) setDefaults() {
	i.Host = gosettings.DefaultComparable(i.Host, "ipa.example.com")
	const defaultPort = 443
	i.Port = gosettings.DefaultPointer(i.Port, defaultPort)
	i.Protocol = gosettings.DefaultComparable(i.Protocol, "https")
	i.Username = gosettings.DefaultComparable(i.Username, "admin")
	i.ValidateCerts = gosettings.DefaultPointer(i.ValidateCerts, true)
}

var (
	ErrHostNotSet       = errors.New("host is not set")
	ErrPasswordNotSet   = errors.New("password is not set")
	ErrProtocolNotValid = errors.New("protocol is not valid")
)

func (i IPA) Validate() (err error) {
	switch {
	case i.Host == "":
		return fmt.Errorf("%w", ErrHostNotSet)
	case i.Password == "":
		return fmt.Errorf("%w: set IPA_PASS", ErrPasswordNotSet)
	case i.Protocol != "http" && i.Protocol != "https":
		return fmt.Errorf("%w: %q can be one of http or https",
			ErrProtocolNotValid, i.Protocol)
	}
	return nil
}

// BaseURL is the server base URL without trailing slash.
func (i IPA) BaseURL() string {
	return i.Protocol + "://" + i.Host + ":" + strconv.Itoa(int(*i.Port))
}

func (i IPA) String() string {
	return i.toLinesNode().String()
}

func (i IPA) toLinesNode() *gotree.Node {
	node := gotree.New("FreeIPA server")
	node.Appendf("Host: %s", i.Host)
	node.Appendf("Port: %d", *i.Port)
	node.Appendf("Protocol: %s", i.Protocol)
	node.Appendf("Username: %s", i.Username)
	password := "[not set]"
	if i.Password != "" {
		password = "[set]"
	}
	node.Appendf("Password: %s", password)
	node.Appendf("Validate certificates: %t", *i.ValidateCerts)
	return node
}

func (i *IPA) read(r *reader.Reader) (err error) {
	i.Host = r.String("IPA_HOST")

	i.Port, err = r.Uint16Ptr("IPA_PORT")
	if err != nil {
		return err
	}

	i.Protocol = r.String("IPA_PROT")
	i.Username = r.String("IPA_USER")
	i.Password = r.String("IPA_PASS", reader.ForceLowercase(false))

	i.ValidateCerts, err = r.BoolPtr("VALIDATE_CERTS")
	return err
}
