package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"google.golang.org/genai"

	"marketing-poster-server/modules/caption"
	"marketing-poster-server/modules/common/config"
	"marketing-poster-server/modules/common/stats"
	"marketing-poster-server/modules/health"
	"marketing-poster-server/modules/poster"
)

type textModels struct{ text string }

func (m textModels) GenerateContent(context.Context, string, []*genai.Content, *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{Content: &genai.Content{Parts: []*genai.Part{genai.NewPartFromText(m.text)}}}},
	}, nil
}

func testRouter() http.Handler {
	return testRouterWithLog(zerolog.Nop())
}

func testRouterWithLog(log zerolog.Logger) http.Handler {
	recorder := stats.NewMemoryRecorder()
	models := textModels{text: "Meet the Wireless Mouse: $19.99 of quiet comfort."}
	return newRouter(log,
		health.NewHandler(recorder, log),
		poster.NewHandler(poster.NewService(models, "poster-model", log), recorder, log),
		caption.NewHandler(caption.NewService(models, "caption-model", log), recorder, log),
	)
}

func TestRouterPreflight(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/generate-poster", nil)
	testRouter().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status=%d", rec.Code)
	}
	if rec.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Fatalf("missing CORS headers: %v", rec.Header())
	}
	if rec.Header().Get("X-Request-ID") == "" {
		t.Fatalf("missing request id header")
	}
}

func TestRouterEndToEnd(t *testing.T) {
	router := testRouter()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/generate-caption",
		strings.NewReader(`{"product_name":"Wireless Mouse","price":"$19.99"}`)))
	if rec.Code != http.StatusOK {
		t.Fatalf("caption status=%d body=%s", rec.Code, rec.Body.String())
	}

	// the fake model only answers with text, so posters fail
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/generate-poster",
		strings.NewReader(`{"product_name":"Wireless Mouse","product_image_base64":"iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR4nGP4z8DwHwAFAAH/iZk9HQAAAABJRU5ErkJggg=="}`)))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("poster status=%d body=%s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), poster.MessageNoImage) {
		t.Fatalf("poster body=%s", rec.Body.String())
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	var metrics health.MetricsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &metrics); err != nil {
		t.Fatalf("metrics: %v", err)
	}
	if metrics.Routes["caption"].Success != 1 || metrics.Routes["poster"].Failure != 1 {
		t.Fatalf("routes=%+v", metrics.Routes)
	}
}

func TestNewRecorderWithoutRedis(t *testing.T) {
	rec := newRecorder(context.Background(), &config.Config{}, zerolog.Nop())
	if _, ok := rec.(*stats.MemoryRecorder); !ok {
		t.Fatalf("expected in-memory recorder, got %T", rec)
	}
}

func TestRouterUnmatchedRequestsAreLogged(t *testing.T) {
	cases := []struct {
		method string
		path   string
		status int
	}{
		{http.MethodGet, "/does-not-exist", http.StatusNotFound},
		{http.MethodGet, "/generate-poster", http.StatusMethodNotAllowed},
		{http.MethodPut, "/generate-caption", http.StatusMethodNotAllowed},
	}

	for _, tc := range cases {
		var buf bytes.Buffer
		router := testRouterWithLog(zerolog.New(&buf))

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(tc.method, tc.path, nil))

		if rec.Code != tc.status {
			t.Fatalf("%s %s: status=%d", tc.method, tc.path, rec.Code)
		}
		id := rec.Header().Get("X-Request-ID")
		if id == "" {
			t.Fatalf("%s %s: missing request id header", tc.method, tc.path)
		}
		if rec.Header().Get("Access-Control-Allow-Origin") != "*" {
			t.Fatalf("%s %s: missing CORS headers", tc.method, tc.path)
		}

		var line struct {
			RequestID string `json:"request_id"`
			Method    string `json:"method"`
			Path      string `json:"path"`
			Status    int    `json:"status"`
			Message   string `json:"message"`
		}
		if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
			t.Fatalf("%s %s: access log is not one JSON line: %v (%q)", tc.method, tc.path, err, buf.String())
		}
		if line.Message != "request" || line.Status != tc.status || line.RequestID != id ||
			line.Method != tc.method || line.Path != tc.path {
			t.Fatalf("%s %s: unexpected access log %+v", tc.method, tc.path, line)
		}
	}
}

func TestRouterPreflightIsLogged(t *testing.T) {
	var buf bytes.Buffer
	router := testRouterWithLog(zerolog.New(&buf))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/generate-caption", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status=%d", rec.Code)
	}
	if !strings.Contains(buf.String(), `"status":200`) || !strings.Contains(buf.String(), `"method":"OPTIONS"`) {
		t.Fatalf("preflight not logged: %q", buf.String())
	}
}
