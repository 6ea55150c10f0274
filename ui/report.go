package ui

import (
	"embed"
	"html/template"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gomarkdown/markdown"
	mdhtml "github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"

	"policycraft/domain/policy"
)

//go:embed templates/*.html
var embeddedTemplates embed.FS

var reportTemplates = template.Must(template.New("").Funcs(template.FuncMap{
	"renderMarkdown": renderMarkdown,
	"title":          titleCase,
	"pct":            formatScore,
}).ParseFS(embeddedTemplates, "templates/*.html"))

// reportView is the data passed to the report template
type reportView struct {
	Result    *policy.AnalysisResult
	Coverage  []coverageRow
	Generated string
}

type coverageRow struct {
	Dimension policy.Dimension
	Result    policy.CoverageResult
}

// handleReport renders a stored analysis as a standalone HTML report
func (s *Server) handleReport(c *gin.Context) {
	result, ok := s.loadAnalysis(c)
	if !ok {
		return
	}

	view := reportView{
		Result:    result,
		Generated: result.AnalyzedAt.Format("2 January 2006"),
	}
	for _, dim := range policy.AllDimensions() {
		view.Coverage = append(view.Coverage, coverageRow{Dimension: dim, Result: result.Coverage[dim]})
	}

	c.Status(http.StatusOK)
	c.Header("Content-Type", "text/html; charset=utf-8")
	if err := reportTemplates.ExecuteTemplate(c.Writer, "report.html", view); err != nil {
		s.logger.Error("report rendering failed for analysis %s: %v", result.ID, err)
	}
}

// renderMarkdown converts recommendation descriptions, which carry light
// markdown emphasis, into HTML for the report
func renderMarkdown(text string) template.HTML {
	p := parser.NewWithExtensions(parser.CommonExtensions)
	renderer := mdhtml.NewRenderer(mdhtml.RendererOptions{Flags: mdhtml.CommonFlags | mdhtml.SkipHTML})
	out := markdown.ToHTML([]byte(text), p, renderer)
	return template.HTML(out)
}

func titleCase(s string) string {
	words := strings.Split(strings.ReplaceAll(s, "_", " "), " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// formatScore prints a percentage with at most one decimal place
func formatScore(v float64) string {
	s := strconv.FormatFloat(v, 'f', 1, 64)
	s = strings.TrimSuffix(s, ".0")
	return s
}
