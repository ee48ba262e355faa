// Package config reads, defaults and validates all settings
// from environment variables.
package config

import (
	"fmt"

	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gotree"
)

type Config struct {
	Record   Record
	IPA      IPA
	Client   Client
	Logger   Logger
	Server   Server
	Health   Health
	Resolver Resolver
	Shoutrrr Shoutrrr
	Update   Update
}

func (c *Config) SetDefaults() {
	c.Record.setDefaults()
	c.IPA.setDefaults()
	c.Client.setDefaults()
	c.Logger.setDefaults()
	c.Server.setDefaults()
	c.Health.SetDefaults()
	c.Resolver.setDefaults()
	c.Shoutrrr.setDefaults()
	c.Update.setDefaults()
}

func (c Config) Validate() (err error) {
	type validator interface {
		Validate() (err error)
	}
	toValidate := map[string]validator{
		"record":   &c.Record,
		"ipa":      &c.IPA,
		"client":   &c.Client,
		"logger":   &c.Logger,
		"server":   &c.Server,
		"health":   &c.Health,
		"resolver": &c.Resolver,
		"shoutrrr": &c.Shoutrrr,
		"update":   &c.Update,
	}

	for name, v := range toValidate {
		err = v.Validate()
		if err != nil {
			return fmt.Errorf("%s settings: %w", name, err)
		}
	}

	return nil
}

func (c Config) String() string {
	return c.toLinesNode().String()
}

func (c Config) toLinesNode() *gotree.Node {
	node := gotree.New("Settings summary:")
	node.AppendNode(c.Record.toLinesNode())
	node.AppendNode(c.IPA.toLinesNode())
	node.AppendNode(c.Client.toLinesNode())
	node.AppendNode(c.Logger.toLinesNode())
	node.AppendNode(c.Server.toLinesNode())
	node.AppendNode(c.Health.toLinesNode())
	node.AppendNode(c.Resolver.ToLinesNode())
	node.AppendNode(c.Shoutrrr.ToLinesNode())
	node.AppendNode(c.Update.toLinesNode())
	return node
}

func (c *Config) Read(reader *reader.Reader, warner Warner) (err error) {
	err = c.Record.read(reader, warner)
	if err != nil {
		return fmt.Errorf("reading record settings: %w", err)
	}

	err = c.IPA.read(reader)
	if err != nil {
		return fmt.Errorf("reading ipa settings: %w", err)
	}

	err = c.Client.read(reader)
	if err != nil {
		return fmt.Errorf("reading client settings: %w", err)
	}

	err = c.Logger.read(reader)
	if err != nil {
		return fmt.Errorf("reading logger settings: %w", err)
	}

	err = c.Server.read(reader)
	if err != nil {
		return fmt.Errorf("reading server settings: %w", err)
	}

	c.Health.Read(reader)

	err = c.Resolver.read(reader)
	if err != nil {
		return fmt.Errorf("reading resolver settings: %w", err)
	}

	c.Shoutrrr.read(reader)

	err = c.Update.read(reader)
	if err != nil {
		return fmt.Errorf("reading update settings: %w", err)
	}

	return nil
}
