package api

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tato14/Ped-eeg-position/pkg/config"
	"github.com/Tato14/Ped-eeg-position/pkg/layout"
	"github.com/Tato14/Ped-eeg-position/pkg/pipeline"
)

func testServer(t *testing.T) *Server {
	t.Helper()
	return testServerWithConfig(t, config.Default())
}

func testServerWithConfig(t *testing.T, cfg config.Config) *Server {
	t.Helper()
	logger := log.NewWithOptions(io.Discard, log.Options{})
	runner := pipeline.NewRunner(nil, nil, logger)
	return New(runner, logger, cfg)
}

func doRequest(t *testing.T, s *Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)
	return rec
}

func TestHealthz(t *testing.T) {
	rec := doRequest(t, testServer(t), "/healthz")

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
	assert.NotEmpty(t, body["version"])
}

func TestLayoutEndpoint(t *testing.T) {
	rec := doRequest(t, testServer(t), "/v1/layout?age=120&sex=male&ni=35&pa=30")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	doc, err := layout.Unmarshal(rec.Body.Bytes())
	require.NoError(t, err)
	assert.Len(t, doc.Electrodes, 21)

	cz, ok := doc.Position("Cz")
	require.True(t, ok)
	assert.Equal(t, 0.0, cz.X)
	assert.Equal(t, -17.5, cz.Y)
}

func TestLayoutEndpointValidation(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		wantCode string
	}{
		{"missing age", "/v1/layout?sex=male&ni=35&pa=30", "INVALID_INPUT"},
		{"non-numeric ni", "/v1/layout?age=12&sex=male&ni=abc&pa=30", "INVALID_INPUT"},
		{"bad sex", "/v1/layout?age=12&sex=robot&ni=35&pa=30", "INVALID_SEX"},
		{"negative age", "/v1/layout?age=-1&sex=male&ni=35&pa=30", "INVALID_AGE"},
		{"zero distance", "/v1/layout?age=12&sex=male&ni=0&pa=30", "INVALID_DISTANCE"},
	}

	s := testServer(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, s, tt.path)
			require.Equal(t, http.StatusBadRequest, rec.Code)

			var body struct {
				Error string `json:"error"`
				Code  string `json:"code"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantCode, body.Code)
			assert.NotEmpty(t, body.Error)
		})
	}
}

func TestRenderEndpointSVG(t *testing.T) {
	rec := doRequest(t, testServer(t), "/v1/render?age=120&sex=male&ni=35&pa=30")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/svg+xml", rec.Header().Get("Content-Type"))
	assert.True(t, strings.HasPrefix(rec.Body.String(), "<svg"))
	assert.NotEmpty(t, rec.Header().Get("X-Layout-Hash"))
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestRenderEndpointConfigDefaults(t *testing.T) {
	cfg := config.Default()
	cfg.Render.Style = "print"
	cfg.Render.Labels = false
	s := testServerWithConfig(t, cfg)

	rec := doRequest(t, s, "/v1/render?age=120&sex=male&ni=35&pa=30")
	require.Equal(t, http.StatusOK, rec.Code)

	// Print style is monochrome and labels are off by config.
	body := rec.Body.String()
	assert.NotContains(t, body, "#1f6feb")
	assert.NotContains(t, body, `class="electrode-label"`)

	// Query parameters still override the configured defaults.
	rec = doRequest(t, s, "/v1/render?age=120&sex=male&ni=35&pa=30&style=clinical&labels=true")
	require.Equal(t, http.StatusOK, rec.Code)
	body = rec.Body.String()
	assert.Contains(t, body, "#1f6feb")
	assert.Contains(t, body, `class="electrode-label"`)
}

func TestRenderEndpointChainDOT(t *testing.T) {
	rec := doRequest(t, testServer(t), "/v1/render?age=120&sex=male&ni=35&pa=30&viz=chain&format=dot")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/vnd.graphviz", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), "graph montage")
}

func TestRenderEndpointInvalidFormat(t *testing.T) {
	rec := doRequest(t, testServer(t), "/v1/render?age=120&sex=male&ni=35&pa=30&format=bmp")

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body struct {
		Code string `json:"code"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "INVALID_FORMAT", body.Code)
}

func TestRequestIDPreserved(t *testing.T) {
	s := testServer(t)
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("X-Request-ID", "client-supplied")
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)

	assert.Equal(t, "client-supplied", rec.Header().Get("X-Request-ID"))
}
