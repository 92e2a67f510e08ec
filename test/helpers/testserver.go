package helpers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"travel_backend/internal/app"
	"travel_backend/internal/cache"
	"travel_backend/internal/email"
	"travel_backend/internal/testutil"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// TestServer is the full HTTP stack on a private in-memory database.
type TestServer struct {
	Server *httptest.Server
	DB     *gorm.DB
	Mail   *email.MemoryProvider
}

// Option adjusts the router dependencies before the server starts.
type Option func(*app.Deps)

func WithPageCache(c cache.PageCache) Option {
	return func(d *app.Deps) { d.PageCache = c }
}

func NewTestServer(t *testing.T, opts ...Option) *TestServer {
	t.Helper()

	cfg := testutil.Config()
	cfg.Email.NotifyTo = "desk@example.com"
	db := testutil.NewDB(t)
	mail := &email.MemoryProvider{}

	deps := app.Deps{Config: cfg, DB: db, Mailer: mail}
	for _, opt := range opts {
		opt(&deps)
	}

	server := httptest.NewServer(app.SetupRouter(deps))
	t.Cleanup(server.Close)

	return &TestServer{Server: server, DB: db, Mail: mail}
}

// SendRequest sends body as JSON and returns the response with its body read.
func (ts *TestServer) SendRequest(t *testing.T, method, path, token string, body interface{}) (*http.Response, string) {
	t.Helper()

	var reqBody io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err, "encode request body")
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, ts.Server.URL+path, reqBody)
	require.NoError(t, err)

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := ts.Server.Client().Do(req)
	require.NoError(t, err, "send %s %s", method, path)
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	require.NoError(t, err, "read response body")

	return res, string(raw)
}

// DecodeJSON unmarshals a response body into out.
func DecodeJSON(t *testing.T, body string, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal([]byte(body), out), "decode: %s", body)
}
