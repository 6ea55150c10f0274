package excel

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"policycraft/domain/policy"
	"policycraft/internal/errors"
)

// ReportWriter exports an analysis result as an Excel workbook with
// Recommendations, Coverage and Confidence sheets.
type ReportWriter struct{}

// NewReportWriter creates an Excel report writer
func NewReportWriter() *ReportWriter {
	return &ReportWriter{}
}

// WriteWorkbook renders the analysis into a new workbook at path
func (w *ReportWriter) WriteWorkbook(path string, result *policy.AnalysisResult) error {
	if result == nil {
		return errors.InvalidInput("analysis result is required")
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := w.writeRecommendations(f, result); err != nil {
		return errors.ExportError("failed to write recommendations sheet", err)
	}
	if err := w.writeCoverage(f, result); err != nil {
		return errors.ExportError("failed to write coverage sheet", err)
	}
	if err := w.writeConfidence(f, result); err != nil {
		return errors.ExportError("failed to write confidence sheet", err)
	}

	// Drop the default sheet excelize creates
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return errors.ExportError("failed to remove default sheet", err)
	}

	if err := f.SaveAs(path); err != nil {
		return errors.ExportError(fmt.Sprintf("failed to save workbook to %s", path), err)
	}
	return nil
}

func (w *ReportWriter) writeRecommendations(f *excelize.File, result *policy.AnalysisResult) error {
	const sheet = "Recommendations"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	headers := []string{"Priority", "Title", "Dimension", "Type", "Description", "Steps", "Timeframe", "Sources"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return err
		}
	}

	for rowIdx, rec := range result.Recommendations {
		values := []interface{}{
			string(rec.Priority),
			rec.Title,
			string(rec.Dimension),
			string(rec.ImplementationType),
			rec.Description,
			strings.Join(rec.ImplementationSteps, "; "),
			rec.Timeframe,
			strings.Join(rec.Sources, "; "),
		}
		for colIdx, value := range values {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return err
			}
		}
	}
	return nil
}

func (w *ReportWriter) writeCoverage(f *excelize.File, result *policy.AnalysisResult) error {
	const sheet = "Coverage"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	headers := []string{"Dimension", "Score", "Status", "Matched Items"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return err
		}
	}

	row := 2
	for _, dim := range policy.AllDimensions() {
		coverage, ok := result.Coverage[dim]
		if !ok {
			continue
		}
		values := []interface{}{
			string(dim),
			coverage.Score,
			string(coverage.Status),
			strings.Join(coverage.MatchedItems, ", "),
		}
		for colIdx, value := range values {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, row)
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return err
			}
		}
		row++
	}
	return nil
}

func (w *ReportWriter) writeConfidence(f *excelize.File, result *policy.AnalysisResult) error {
	const sheet = "Confidence"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	rows := [][]interface{}{
		{"Overall Confidence (%)", result.Confidence.OverallPct},
		{"Average Theme Support", result.Confidence.Factors.AvgThemeSupport},
		{"Classification Confidence", result.Confidence.Factors.ClassificationConf},
		{"Text Quality", result.Confidence.Factors.TextQuality},
		{"Evidence Diversity", result.Confidence.Factors.EvidenceDiversity},
		{"Unique Sources", result.Confidence.Factors.UniqueSources},
		{"Classification", string(result.Classification.Label)},
		{"Institution Context", string(result.Institution)},
	}
	for rowIdx, pair := range rows {
		for colIdx, value := range pair {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+1)
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return err
			}
		}
	}
	return nil
}
