// Package ipa implements a minimal client for the FreeIPA
// administrative JSON-RPC API, covering session authentication
// and the four DNS record operations.
package ipa

import (
	"net/http"
)

type Client struct {
	baseURL    string // {protocol}://{host}:{port}
	httpClient *http.Client
	logger     DebugLogger
	// session is the ipa_session cookie value, set by a
	// successful Login and required by all record operations.
	session string
}

type DebugLogger interface {
	Debug(s string)
}

type Settings struct {
	// BaseURL is the server base URL, for example
	// https://ipa.example.com:443 without trailing slash.
	BaseURL    string
	HTTPClient *http.Client
	Logger     DebugLogger
}

func New(settings Settings) (client *Client) {
	return &Client{
		baseURL:    settings.BaseURL,
		httpClient: settings.HTTPClient,
		logger:     settings.Logger,
	}
}

// checkSession panics if Login has not succeeded, since issuing
// a record operation without a session is a programming error.
func (c *Client) checkSession() {
	if c.session == "" {
		panic("ipa: record operation called before successful Login")
	}
}
