package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Maxime-Guy/twigane/internal/model"
	"github.com/Maxime-Guy/twigane/internal/service"
	"github.com/Maxime-Guy/twigane/internal/transport/rest/middleware"
)

func TestHealth(t *testing.T) {
	t.Parallel()

	caps := model.Capabilities{
		Retrieval: model.CapabilityFull,
		Audio:     model.CapabilityFull,
		Quiz:      model.CapabilityFull,
		Analytics: model.CapabilityDegraded,
	}
	h := NewHealthHandler(caps, service.NewAnalyticsService(nil, nil))
	rec := httptest.NewRecorder()
	h.Health(rec, httptest.NewRequest("GET", "/health", nil))

	var body struct {
		Status     string `json:"status"`
		Persistent bool   `json:"persistent_analytics"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Status != "ok" {
		t.Errorf("status = %q, want ok", body.Status)
	}
	if body.Persistent {
		t.Error("persistent_analytics = true without an activity archive")
	}
}

func TestHealth_DegradedWithoutRetrieval(t *testing.T) {
	t.Parallel()

	caps := model.Capabilities{Retrieval: model.CapabilityUnavailable}
	h := NewHealthHandler(caps, service.NewAnalyticsService(nil, nil))
	rec := httptest.NewRecorder()
	h.Health(rec, httptest.NewRequest("GET", "/health", nil))

	var body map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["status"] != "degraded" {
		t.Errorf("status = %v, want degraded", body["status"])
	}
}

// The overview names the admin whose validated identity the middleware put
// into the request context.
func TestAnalytics_ReportsGeneratedBy(t *testing.T) {
	t.Parallel()

	h := NewAdminHandler(service.NewAnalyticsService(nil, nil), nil)
	mw := middleware.NewAdminMiddleware("admin@twigane.rw")
	chain := mw.RequireAdmin(http.HandlerFunc(h.Analytics))

	req := httptest.NewRequest("GET", "/v1/admin/analytics", nil)
	req.Header.Set("X-User-Email", "admin@twigane.rw")
	rec := httptest.NewRecorder()
	chain.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var body map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["generated_by"] != "admin@twigane.rw" {
		t.Errorf("generated_by = %v, want the admin email", body["generated_by"])
	}
}
