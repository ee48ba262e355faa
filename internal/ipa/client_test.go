package ipa

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type noopDebugLogger struct{}

func (l noopDebugLogger) Debug(_ string) {}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return New(Settings{
		BaseURL:    server.URL,
		HTTPClient: &http.Client{Timeout: time.Second},
		Logger:     noopDebugLogger{},
	})
}

func Test_Client_Login(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/ipa/session/login_password", r.URL.Path)
		assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "admin", r.PostForm.Get("user"))
		assert.Equal(t, "Passw0rd!", r.PostForm.Get("password"))
		http.SetCookie(w, &http.Cookie{Name: "ipa_session", Value: "abcdef"})
		w.WriteHeader(http.StatusOK)
	})

	err := client.Login(context.Background(), "admin", "Passw0rd!")

	require.NoError(t, err)
	assert.Equal(t, "abcdef", client.session)
}

func Test_Client_Login_rejected(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-IPA-Rejection-Reason", "invalid-password")
		w.WriteHeader(http.StatusUnauthorized)
	})

	err := client.Login(context.Background(), "admin", "wrong")

	assert.ErrorIs(t, err, ErrAuth)
	assert.EqualError(t, err, "bad authentication: invalid-password")
}

func Test_Client_Login_noCookie(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	err := client.Login(context.Background(), "admin", "Passw0rd!")

	assert.ErrorIs(t, err, ErrSessionCookieMissing)
}

func decodeRequest(t *testing.T, body io.Reader) (
	method string, positional []string, keywords map[string]any) {
	t.Helper()
	var request struct {
		Method string            `json:"method"`
		Params [2]json.RawMessage `json:"params"`
	}
	require.NoError(t, json.NewDecoder(body).Decode(&request))
	require.NoError(t, json.Unmarshal(request.Params[0], &positional))
	require.NoError(t, json.Unmarshal(request.Params[1], &keywords))
	return request.Method, positional, keywords
}

func Test_Client_FindRecord(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/ipa/session/json", r.URL.Path)
		cookie, err := r.Cookie("ipa_session")
		require.NoError(t, err)
		assert.Equal(t, "abcdef", cookie.Value)

		method, positional, keywords := decodeRequest(t, r.Body)
		assert.Equal(t, "dnsrecord_find", method)
		assert.Equal(t, []string{"example.com"}, positional)
		assert.Equal(t, map[string]any{"idnsname": "vm-001", "all": true}, keywords)

		response := `{"result": {"count": 1, "result": [
			{"idnsname": ["vm-001"], "aaaarecord": ["::1"]}
		]}, "error": null}`
		_, _ = w.Write([]byte(response))
	})
	client.session = "abcdef"

	record, found, err := client.FindRecord(context.Background(), "example.com", "vm-001")

	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []any{"::1"}, record["aaaarecord"])
}

func Test_Client_FindRecord_notFound(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"result": {"count": 0, "result": []}, "error": null}`))
	})
	client.session = "abcdef"

	record, found, err := client.FindRecord(context.Background(), "example.com", "vm-001")

	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, record)
}

func Test_Client_AddRecord(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		method, positional, keywords := decodeRequest(t, r.Body)
		assert.Equal(t, "dnsrecord_add", method)
		assert.Equal(t, []string{"example.com"}, positional)
		assert.Equal(t, map[string]any{
			"idnsname":             "vm-001",
			"aaaa_part_ip_address": "::1",
		}, keywords)
		_, _ = w.Write([]byte(`{"result": {"result":
			{"idnsname": ["vm-001"], "aaaarecord": ["::1"]}
		}, "error": null}`))
	})
	client.session = "abcdef"

	record, err := client.AddRecord(context.Background(), "example.com", "vm-001",
		map[string]string{"aaaa_part_ip_address": "::1"})

	require.NoError(t, err)
	assert.Equal(t, []any{"vm-001"}, record["idnsname"])
}

func Test_Client_DelRecord_apiError(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		method, _, keywords := decodeRequest(t, r.Body)
		assert.Equal(t, "dnsrecord_del", method)
		assert.Equal(t, map[string]any{
			"idnsname":   "host01",
			"aaaarecord": "::1",
		}, keywords)
		_, _ = w.Write([]byte(`{"result": null, "error":
			{"code": 4001, "message": "host01: DNS resource record not found", "name": "NotFound"}}`))
	})
	client.session = "abcdef"

	_, err := client.DelRecord(context.Background(), "example.com", "host01",
		map[string]string{"aaaarecord": "::1"})

	assert.ErrorIs(t, err, ErrAPI)
	assert.EqualError(t, err, "deleting record: API error received: "+
		"dnsrecord_del: host01: DNS resource record not found (code 4001)")
}

func Test_Client_recordOperationWithoutLogin(t *testing.T) {
	t.Parallel()

	client := New(Settings{
		BaseURL:    "https://ipa.example.com:443",
		HTTPClient: &http.Client{},
		Logger:     noopDebugLogger{},
	})

	assert.PanicsWithValue(t,
		"ipa: record operation called before successful Login",
		func() {
			_, _, _ = client.FindRecord(context.Background(), "example.com", "vm-001")
		})
}
