package ui

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"policycraft/domain/policy"
	"policycraft/internal/analysis"
	"policycraft/internal/engine"
	"policycraft/internal/testkit"
)

// App is the standalone demo workbench: a read-mostly surface backed by the
// in-memory test kit, useful for trying the analyzer without a database.
type App struct {
	router *chi.Mux
	kit    *testkit.TestKit

	mu      sync.RWMutex
	results map[string]*policy.AnalysisResult
	order   []string
}

// Config holds workbench configuration
type Config struct {
	Port string
}

// NewApp creates the workbench and pre-analyzes the sample policies so the
// browsing endpoints have data on first load
func NewApp(cfg Config) (*App, error) {
	kit := testkit.NewTestKit()

	app := &App{
		router:  chi.NewRouter(),
		kit:     kit,
		results: make(map[string]*policy.AnalysisResult),
	}

	if err := app.seedSampleAnalyses(); err != nil {
		return nil, fmt.Errorf("failed to seed sample analyses: %w", err)
	}

	app.setupMiddleware()
	app.setupRoutes()
	return app, nil
}

// Start runs the workbench HTTP server
func (a *App) Start(addr string) error {
	return http.ListenAndServe(addr, a.router)
}

// Router exposes the underlying router for tests
func (a *App) Router() http.Handler {
	return a.router
}

func (a *App) seedSampleAnalyses() error {
	samples := testkit.SamplePolicies()
	names := make([]string, 0, len(samples))
	for name := range samples {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		result := a.kit.Engine.Analyze(context.Background(), engine.AnalysisRequest{
			DocumentName:   name + " sample policy",
			Text:           samples[name],
			Classification: name,
		})
		a.results[result.ID] = result
		a.order = append(a.order, result.ID)
	}
	return nil
}

func (a *App) setupMiddleware() {
	a.router.Use(middleware.Logger)
	a.router.Use(middleware.Recoverer)
	a.router.Use(middleware.Compress(5))
}

func (a *App) setupRoutes() {
	a.router.Get("/health", a.handleHealth)
	a.router.Get("/api/analyses", a.handleList)
	a.router.Get("/api/analyses/{id}", a.handleGet)
	a.router.Post("/api/analyze", a.handleAnalyze)
	a.router.Get("/api/portfolio", a.handlePortfolio)
}

func (a *App) handleHealth(w http.ResponseWriter, r *http.Request) {
	a.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (a *App) handleList(w http.ResponseWriter, r *http.Request) {
	a.mu.RLock()
	out := make([]*policy.AnalysisResult, 0, len(a.order))
	for _, id := range a.order {
		out = append(out, a.results[id])
	}
	a.mu.RUnlock()

	a.writeJSON(w, http.StatusOK, map[string]interface{}{"analyses": out, "count": len(out)})
}

func (a *App) handleGet(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	a.mu.RLock()
	result, ok := a.results[id]
	a.mu.RUnlock()

	if !ok {
		a.writeJSON(w, http.StatusNotFound, map[string]string{"error": "analysis not found"})
		return
	}
	a.writeJSON(w, http.StatusOK, result)
}

func (a *App) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req struct {
		DocumentName   string         `json:"document_name"`
		Text           string         `json:"text"`
		Themes         []policy.Theme `json:"themes"`
		Classification interface{}    `json:"classification"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Text == "" {
		a.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "text is required"})
		return
	}

	result := a.kit.Engine.Analyze(r.Context(), engine.AnalysisRequest{
		DocumentName:   req.DocumentName,
		Text:           req.Text,
		Themes:         req.Themes,
		Classification: req.Classification,
	})

	a.mu.Lock()
	a.results[result.ID] = result
	a.order = append(a.order, result.ID)
	a.mu.Unlock()

	a.writeJSON(w, http.StatusOK, result)
}

func (a *App) handlePortfolio(w http.ResponseWriter, r *http.Request) {
	a.mu.RLock()
	out := make([]*policy.AnalysisResult, 0, len(a.order))
	for _, id := range a.order {
		out = append(out, a.results[id])
	}
	a.mu.RUnlock()

	a.writeJSON(w, http.StatusOK, analysis.BuildPortfolioSummary(out))
}

func (a *App) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
