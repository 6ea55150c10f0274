package ui

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"policycraft/adapters/excel"
	"policycraft/domain/policy"
	"policycraft/internal"
	"policycraft/internal/analysis"
	"policycraft/internal/engine"
	"policycraft/internal/errors"
	"policycraft/ports"
)

// Server is the main PolicyCraft web surface: analysis submission, stored
// result browsing, Excel export and the HTML report.
type Server struct {
	router     *gin.Engine
	engine     *engine.Engine
	analyses   ports.AnalysisRepository
	literature ports.LiteratureRepository
	writer     *excel.ReportWriter
	exportDir  string
	logger     *internal.Logger
}

// ServerConfig holds server construction options
type ServerConfig struct {
	GinMode   string
	ExportDir string
}

// analyzeRequest is the JSON payload for POST /api/analyze. Classification
// stays loosely typed here and is normalized at the engine boundary.
type analyzeRequest struct {
	DocumentName   string         `json:"document_name"`
	Text           string         `json:"text" binding:"required"`
	Themes         []policy.Theme `json:"themes"`
	Classification interface{}    `json:"classification"`
}

// NewServer creates the web server and registers all routes
func NewServer(cfg ServerConfig, eng *engine.Engine, analyses ports.AnalysisRepository, literature ports.LiteratureRepository) *Server {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	s := &Server{
		router:     gin.Default(),
		engine:     eng,
		analyses:   analyses,
		literature: literature,
		writer:     excel.NewReportWriter(),
		exportDir:  cfg.ExportDir,
		logger:     internal.DefaultLogger.Named("server"),
	}
	s.registerRoutes()
	return s
}

// Start runs the HTTP server on addr
func (s *Server) Start(addr string) error {
	return s.router.Run(addr)
}

// Router exposes the underlying router for tests
func (s *Server) Router() http.Handler {
	return s.router
}

func (s *Server) registerRoutes() {
	s.router.GET("/health", s.handleHealth)

	api := s.router.Group("/api")
	{
		api.POST("/analyze", s.handleAnalyze)
		api.GET("/analyses", s.handleListAnalyses)
		api.GET("/analyses/:id", s.handleGetAnalysis)
		api.GET("/analyses/:id/export", s.handleExportAnalysis)
		api.GET("/portfolio", s.handlePortfolio)
		api.POST("/literature/refresh", s.handleLiteratureRefresh)
	}

	s.router.GET("/analyses/:id/report", s.handleReport)
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// handleAnalyze runs the full analysis pipeline and persists the result
func (s *Server) handleAnalyze(c *gin.Context) {
	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "text is required"})
		return
	}

	result := s.engine.Analyze(c.Request.Context(), engine.AnalysisRequest{
		DocumentName:   req.DocumentName,
		Text:           req.Text,
		Themes:         req.Themes,
		Classification: req.Classification,
	})

	if s.analyses != nil {
		if err := s.analyses.StoreAnalysis(c.Request.Context(), result); err != nil {
			// Analysis itself succeeded; report it but flag the storage failure
			s.logger.Error("failed to store analysis %s: %v", result.ID, err)
			c.JSON(http.StatusOK, gin.H{"result": result, "stored": false})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"result": result, "stored": s.analyses != nil})
}

func (s *Server) handleListAnalyses(c *gin.Context) {
	if s.analyses == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "analysis storage not configured"})
		return
	}

	filters := ports.AnalysisFilters{Limit: 50}
	if label := c.Query("classification"); label != "" {
		normalized := policy.NormalizeClassification(label).Label
		filters.Classification = &normalized
	}

	results, err := s.analyses.ListAnalyses(c.Request.Context(), filters)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list analyses"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"analyses": results, "count": len(results)})
}

func (s *Server) handleGetAnalysis(c *gin.Context) {
	result, ok := s.loadAnalysis(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, result)
}

// handleExportAnalysis writes the stored analysis to an Excel workbook and
// serves it as a download
func (s *Server) handleExportAnalysis(c *gin.Context) {
	result, ok := s.loadAnalysis(c)
	if !ok {
		return
	}

	if err := os.MkdirAll(s.exportDir, 0o755); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "export directory unavailable"})
		return
	}

	path := filepath.Join(s.exportDir, result.ID+".xlsx")
	if err := s.writer.WriteWorkbook(path, result); err != nil {
		s.logger.Error("export failed for analysis %s: %v", result.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "export failed"})
		return
	}

	c.FileAttachment(path, "policycraft-analysis.xlsx")
}

func (s *Server) handlePortfolio(c *gin.Context) {
	if s.analyses == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "analysis storage not configured"})
		return
	}

	results, err := s.analyses.ListAnalyses(c.Request.Context(), ports.AnalysisFilters{Limit: 500})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load analyses"})
		return
	}
	c.JSON(http.StatusOK, analysis.BuildPortfolioSummary(results))
}

// handleLiteratureRefresh triggers an explicit corpus reload; the repository
// debounces calls inside its refresh interval
func (s *Server) handleLiteratureRefresh(c *gin.Context) {
	if s.literature == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "literature repository not configured"})
		return
	}
	if err := s.literature.Refresh(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "refresh failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "refreshed"})
}

// loadAnalysis fetches the analysis named by the :id parameter, writing the
// error response itself when the lookup fails
func (s *Server) loadAnalysis(c *gin.Context) (*policy.AnalysisResult, bool) {
	if s.analyses == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "analysis storage not configured"})
		return nil, false
	}

	result, err := s.analyses.GetAnalysis(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.GetCode(err) == errors.CodeNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "analysis not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load analysis"})
		}
		return nil, false
	}
	return result, true
}
