package ipa

import "errors"

var (
	ErrAuth                 = errors.New("bad authentication")
	ErrAPI                  = errors.New("API error received")
	ErrBadHTTPStatus        = errors.New("bad HTTP status")
	ErrRequestEncode        = errors.New("cannot encode request")
	ErrResponseDecode       = errors.New("cannot decode response")
	ErrSessionCookieMissing = errors.New("session cookie missing from response")
	ErrUnsuccessfulResponse = errors.New("unsuccessful response")
)
