package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/projectstage/config-backend/config"
	"github.com/projectstage/config-backend/internal/bootstrap"
)

func setupTestServer(t *testing.T, strict bool) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	cfg := &config.Config{
		Server:  config.ServerConfig{Port: "0"},
		Staging: config.StagingConfig{Dir: filepath.Join(t.TempDir(), "uploads")},
		RateLimit: config.RateLimitConfig{
			Requests: 1000,
			Window:   time.Second,
		},
		App: config.AppConfig{
			Environment:       "test",
			Version:           "test",
			StrictTransitions: strict,
		},
	}

	r, _ := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName: "config-backend-test",
		Cfg:         cfg,
		Store:       client,
	})
	return r
}

func do(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func TestUploadStatusUpdateLifecycle(t *testing.T) {
	r := setupTestServer(t, false)

	// Upload a project configuration.
	rr := do(t, r, http.MethodPost, "/api/v1/upload", map[string]string{
		"data": `{"id":"proj-42","name":"Integration","status":"active"}`,
	})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	// Ingestion ran synchronously; status is readable immediately.
	rr = do(t, r, http.MethodGet, "/api/v1/status/proj-42", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var statusResp struct {
		Status string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &statusResp))
	assert.Equal(t, "active", statusResp.Status)

	// Archive it and read the new status back.
	rr = do(t, r, http.MethodPatch, "/api/v1/update-status", map[string]string{
		"projectId": "proj-42",
		"newStatus": "archived",
	})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	rr = do(t, r, http.MethodGet, "/api/v1/status/proj-42", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &statusResp))
	assert.Equal(t, "archived", statusResp.Status)
}

func TestUnknownProjectIs404(t *testing.T) {
	r := setupTestServer(t, false)

	rr := do(t, r, http.MethodGet, "/api/v1/status/unknown-id", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = do(t, r, http.MethodPatch, "/api/v1/update-status", map[string]string{
		"projectId": "unknown-id",
		"newStatus": "archived",
	})
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestStrictTransitionsOverHTTP(t *testing.T) {
	r := setupTestServer(t, true)

	rr := do(t, r, http.MethodPost, "/api/v1/upload", map[string]string{
		"data": `{"id":"proj-1","name":"Strict","status":"deleted"}`,
	})
	require.Equal(t, http.StatusOK, rr.Code)

	rr = do(t, r, http.MethodPatch, "/api/v1/update-status", map[string]string{
		"projectId": "proj-1",
		"newStatus": "active",
	})
	assert.Equal(t, http.StatusConflict, rr.Code)
}

func TestHealthReportsStoreUp(t *testing.T) {
	r := setupTestServer(t, false)

	rr := do(t, r, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		Status  string `json:"status"`
		Store   string `json:"store"`
		AuditDB string `json:"audit_db"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp.Status)
	assert.Equal(t, "up", resp.Store)
	assert.Equal(t, "disabled", resp.AuditDB)
}
