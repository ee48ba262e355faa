package server

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/qdm12/ipa-dnsrecord/internal/dnsrecord"
	"github.com/qdm12/ipa-dnsrecord/internal/reconciler"
	"github.com/stretchr/testify/assert"
)

type fakeLogger struct{}

func (l fakeLogger) Info(_ string)  {}
func (l fakeLogger) Warn(_ string)  {}
func (l fakeLogger) Error(_ string) {}

type fakeFinder struct {
	record dnsrecord.Record
	found  bool
	err    error
}

func (f *fakeFinder) FindRecord(_ context.Context, _, _ string) (
	record dnsrecord.Record, found bool, err error) {
	return f.record, f.found, f.err
}

type fakeTrigger struct {
	result reconciler.Result
	err    error
}

func (f *fakeTrigger) ReconcileNow(_ context.Context) (
	result reconciler.Result, err error) {
	return f.result, f.err
}

func Test_handlers_getRecord(t *testing.T) {
	t.Parallel()

	finder := &fakeFinder{
		record: dnsrecord.Record{"aaaarecord": []any{"::1"}},
		found:  true,
	}
	handler := newHandler("/", fakeLogger{}, &fakeTrigger{}, finder,
		"example.com", "vm-001")

	request := httptest.NewRequest(http.MethodGet, "/api/v1/record", nil)
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{
		"zone": "example.com",
		"name": "vm-001",
		"found": true,
		"record": {"aaaarecord": ["::1"]}
	}`, recorder.Body.String())
}

func Test_handlers_getRecord_error(t *testing.T) {
	t.Parallel()

	finder := &fakeFinder{err: errors.New("dummy")}
	handler := newHandler("/", fakeLogger{}, &fakeTrigger{}, finder,
		"example.com", "vm-001")

	request := httptest.NewRequest(http.MethodGet, "/api/v1/record", nil)
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusBadGateway, recorder.Code)
}

func Test_handlers_reconcile(t *testing.T) {
	t.Parallel()

	trigger := &fakeTrigger{
		result: reconciler.Result{
			Changed: true,
			Found:   true,
			Record:  dnsrecord.Record{"arecord": []any{"1.2.3.4"}},
		},
	}
	handler := newHandler("/", fakeLogger{}, trigger, &fakeFinder{},
		"example.com", "host01")

	request := httptest.NewRequest(http.MethodPost, "/api/v1/reconcile", nil)
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{
		"changed": true,
		"found": true,
		"record": {"arecord": ["1.2.3.4"]}
	}`, recorder.Body.String())
}
