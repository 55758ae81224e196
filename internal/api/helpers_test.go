package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"testing"

	"beneficiary_registry/internal/auth"
	"beneficiary_registry/internal/db"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// testRecoveryKey matches the config default used by the deployed system
const testRecoveryKey = "admin_recovery_2024"

// testEnv bundles the router and its backing database for one test
type testEnv struct {
	Router *gin.Engine
	DB     *gorm.DB
}

// newTestEnv builds a router over a private in-memory database with the
// default configuration: split credential store, plaintext verification,
// no Redis, no token layer.
func newTestEnv(t *testing.T, name string) testEnv {
	t.Helper()
	return newTestEnvWith(t, name, "split", nil, "")
}

// newTestEnvWith builds a router with an explicit auth mode, cache client
// and token secret.
func newTestEnvWith(t *testing.T, name, authMode string, rdb *redis.Client, tokenSecret string) testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	d, err := db.Open("file:" + name + "?mode=memory&cache=shared")
	require.NoError(t, err)
	sqlDB, err := d.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, db.Migrate(d))

	verifier := auth.NewVerifier("plain")
	store := auth.NewStore(authMode, d, verifier)

	r := gin.New()
	RegisterRoutes(r, RouterConfig{
		DB:          d,
		Redis:       rdb,
		Store:       store,
		Verifier:    verifier,
		TokenSecret: tokenSecret,
		RecoveryKey: testRecoveryKey,
	})
	return testEnv{Router: r, DB: d}
}

// do performs one JSON request against the router and returns the recorder
func (e testEnv) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	e.Router.ServeHTTP(w, req)
	return w
}

// doWithToken performs one JSON request carrying a bearer token
func (e testEnv) doWithToken(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	e.Router.ServeHTTP(w, req)
	return w
}

// login authenticates through the API and returns the response body
func (e testEnv) login(t *testing.T, username, password, role string) map[string]any {
	t.Helper()
	w := e.do(t, http.MethodPost, "/api/login", map[string]any{
		"username": username, "password": password, "role": role,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	return decode(t, w)
}

// decode unmarshals a JSON response body into a generic map
func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

// itoa renders a numeric id decoded from a JSON body as a path segment
func itoa(id float64) string {
	return strconv.Itoa(int(id))
}

// escape query-escapes a filter value (the reference names are Arabic)
func escape(v string) string {
	return url.QueryEscape(v)
}

// postRecord inserts one record through the API and fails the test on error
func (e testEnv) postRecord(t *testing.T, fields map[string]any) {
	t.Helper()
	w := e.do(t, http.MethodPost, "/api/records", fields)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
}
