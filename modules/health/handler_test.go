package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"marketing-poster-server/modules/common/stats"
)

type brokenRecorder struct{}

func (brokenRecorder) Record(context.Context, string, bool) error { return nil }
func (brokenRecorder) Snapshot(context.Context) (map[string]stats.Counts, error) {
	return nil, errors.New("redis down")
}

func serve(h *Handler, method, path string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	h.RegisterRoutes(r)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(method, path, nil))
	return rec
}

func TestHealthCheck(t *testing.T) {
	h := NewHandler(stats.NewMemoryRecorder(), zerolog.Nop())
	for _, path := range []string{"/", "/health"} {
		rec := serve(h, http.MethodGet, path)
		if rec.Code != http.StatusOK {
			t.Fatalf("%s: status=%d", path, rec.Code)
		}
		var body map[string]string
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("%s: %v", path, err)
		}
		if body["status"] != "healthy" || body["service"] != ServiceName {
			t.Fatalf("%s: body=%v", path, body)
		}
	}
}

func TestMetrics(t *testing.T) {
	recorder := stats.NewMemoryRecorder()
	ctx := context.Background()
	_ = recorder.Record(ctx, "poster", true)
	_ = recorder.Record(ctx, "poster", false)
	_ = recorder.Record(ctx, "caption", true)

	rec := serve(NewHandler(recorder, zerolog.Nop()), http.MethodGet, "/metrics")
	if rec.Code != http.StatusOK {
		t.Fatalf("status=%d", rec.Code)
	}
	var body MetricsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Routes["poster"] != (stats.Counts{Success: 1, Failure: 1}) || body.Routes["caption"] != (stats.Counts{Success: 1}) {
		t.Fatalf("routes=%+v", body.Routes)
	}
	if body.Uptime == "" || body.StartTime.IsZero() {
		t.Fatalf("missing uptime: %+v", body)
	}
}

func TestMetricsUnavailable(t *testing.T) {
	rec := serve(NewHandler(brokenRecorder{}, zerolog.Nop()), http.MethodGet, "/metrics")
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status=%d", rec.Code)
	}
}
