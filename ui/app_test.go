package ui

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	app, err := NewApp(Config{Port: "0"})
	if err != nil {
		t.Fatalf("NewApp failed: %v", err)
	}
	return app
}

func TestApp_HealthEndpoint(t *testing.T) {
	app := newTestApp(t)

	rec := httptest.NewRecorder()
	app.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusOK {
		t.Errorf("Expected 200, got %d", rec.Code)
	}
}

func TestApp_SeedsSampleAnalyses(t *testing.T) {
	app := newTestApp(t)

	rec := httptest.NewRecorder()
	app.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/analyses", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}

	var body struct {
		Count int `json:"count"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if body.Count != 3 {
		t.Errorf("Expected 3 seeded analyses, got %d", body.Count)
	}
}

func TestApp_AnalyzeEndpoint(t *testing.T) {
	app := newTestApp(t)

	payload := `{"document_name":"test policy","text":"Students must disclose AI usage and acknowledge all AI-generated content.","classification":"Moderate"}`
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/analyze", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	app.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var result struct {
		ID              string                 `json:"id"`
		Coverage        map[string]interface{} `json:"coverage"`
		Recommendations []interface{}          `json:"recommendations"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if result.ID == "" {
		t.Error("Expected a result ID")
	}
	if len(result.Coverage) != 4 {
		t.Errorf("Expected 4 coverage dimensions, got %d", len(result.Coverage))
	}
	if len(result.Recommendations) == 0 {
		t.Error("Expected at least one recommendation")
	}

	// The stored result is retrievable afterwards
	getRec := httptest.NewRecorder()
	app.Router().ServeHTTP(getRec, httptest.NewRequest(http.MethodGet, "/api/analyses/"+result.ID, nil))
	if getRec.Code != http.StatusOK {
		t.Errorf("Expected stored analysis to be retrievable, got %d", getRec.Code)
	}
}

func TestApp_AnalyzeRequiresText(t *testing.T) {
	app := newTestApp(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/analyze", strings.NewReader(`{"document_name":"empty"}`))
	req.Header.Set("Content-Type", "application/json")
	app.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for missing text, got %d", rec.Code)
	}
}

func TestApp_UnknownAnalysisReturns404(t *testing.T) {
	app := newTestApp(t)

	rec := httptest.NewRecorder()
	app.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/analyses/does-not-exist", nil))

	if rec.Code != http.StatusNotFound {
		t.Errorf("Expected 404, got %d", rec.Code)
	}
}

func TestApp_PortfolioSummary(t *testing.T) {
	app := newTestApp(t)

	rec := httptest.NewRecorder()
	app.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/portfolio", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}

	var summary struct {
		TotalAnalyses    int            `json:"total_analyses"`
		ByClassification map[string]int `json:"by_classification"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &summary); err != nil {
		t.Fatalf("Failed to decode summary: %v", err)
	}
	if summary.TotalAnalyses != 3 {
		t.Errorf("Expected 3 analyses in portfolio, got %d", summary.TotalAnalyses)
	}
	for _, label := range []string{"Restrictive", "Moderate", "Permissive"} {
		if summary.ByClassification[label] != 1 {
			t.Errorf("Expected one %s analysis, got %d", label, summary.ByClassification[label])
		}
	}
}
