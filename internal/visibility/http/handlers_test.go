package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/samridhagrawal-cpu/radius-backend/internal/visibility/repository"
	"github.com/samridhagrawal-cpu/radius-backend/internal/visibility/service"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log := logrus.New()
	log.SetOutput(io.Discard)

	orchestrator := service.NewOrchestrator(nil, repository.NewMemory(), nil, log)
	r := gin.New()
	NewHandler(orchestrator).Register(r.Group("/api/v1/visibility"))
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func analyzeDemo(t *testing.T, r *gin.Engine) map[string]any {
	t.Helper()

	w := doJSON(t, r, http.MethodPost, "/api/v1/visibility/analyze", map[string]any{
		"brand":       "Acme",
		"industry":    "CRM",
		"competitors": []string{"Rival"},
		"mode":        "demo",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestAnalyze(t *testing.T) {
	r := setupRouter(t)

	t.Run("malformed body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/visibility/analyze", bytes.NewBufferString("{not json"))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("missing brand", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/v1/visibility/analyze", map[string]any{
			"competitors": []string{"Rival"},
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("missing competitors", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/v1/visibility/analyze", map[string]any{
			"brand": "Acme",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "competitors")
	})

	t.Run("demo run succeeds", func(t *testing.T) {
		out := analyzeDemo(t, r)

		run, ok := out["run"].(map[string]any)
		require.True(t, ok)
		assert.NotEmpty(t, run["run_id"])
		assert.Equal(t, true, out["persisted"])

		snapshot, ok := out["snapshot"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "Acme", snapshot["brand"])
	})
}

func TestHistory(t *testing.T) {
	r := setupRouter(t)

	t.Run("invalid limit", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, "/api/v1/visibility/history/Acme?limit=abc", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("negative limit", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, "/api/v1/visibility/history/Acme?limit=-1", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("empty history", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, "/api/v1/visibility/history/Nobody", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var out struct {
			Brand string           `json:"brand"`
			Runs  []map[string]any `json:"runs"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
		assert.Equal(t, "Nobody", out.Brand)
		assert.Empty(t, out.Runs)
	})

	t.Run("after a run", func(t *testing.T) {
		analyzeDemo(t, r)

		w := doJSON(t, r, http.MethodGet, "/api/v1/visibility/history/Acme", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var out struct {
			Runs []map[string]any `json:"runs"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
		assert.Len(t, out.Runs, 1)
	})
}

func TestRunByID(t *testing.T) {
	r := setupRouter(t)

	t.Run("not found", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, "/api/v1/visibility/runs/does-not-exist", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("found", func(t *testing.T) {
		out := analyzeDemo(t, r)
		runID := out["run"].(map[string]any)["run_id"].(string)

		w := doJSON(t, r, http.MethodGet, "/api/v1/visibility/runs/"+runID, nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), runID)
	})
}

func TestSnapshot(t *testing.T) {
	r := setupRouter(t)

	t.Run("no runs", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, "/api/v1/visibility/snapshot/Nobody", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("latest run", func(t *testing.T) {
		analyzeDemo(t, r)

		w := doJSON(t, r, http.MethodGet, "/api/v1/visibility/snapshot/Acme", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var snap map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &snap))
		assert.Equal(t, "Acme", snap["brand"])
		assert.Contains(t, snap, "overview")
	})
}
