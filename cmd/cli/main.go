package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"policycraft/adapters/excel"
	"policycraft/domain/policy"
	"policycraft/internal/engine"
	"policycraft/internal/testkit"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "policycraft",
		Short: "PolicyCraft CLI for analyzing institutional AI policies",
	}

	rootCmd.AddCommand(
		newAnalyzeCmd(),
		newBatchCmd(),
		newSamplesCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newAnalyzeCmd() *cobra.Command {
	var classification string
	var exportPath string

	cmd := &cobra.Command{
		Use:   "analyze [policy-file]",
		Short: "Analyze a single policy document",
		Long: `Analyze a policy text file for coverage, gaps and recommendations.

Example: policycraft analyze policy.txt --classification Moderate --export report.xlsx`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read policy file: %w", err)
			}

			result := runAnalysis(cmd.Context(), filepath.Base(args[0]), string(text), classification)
			if exportPath != "" {
				if err := excel.NewReportWriter().WriteWorkbook(exportPath, result); err != nil {
					return fmt.Errorf("export failed: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Workbook written to %s\n", exportPath)
			}
			return printJSON(cmd, result)
		},
	}

	cmd.Flags().StringVar(&classification, "classification", "Moderate", "Policy classification (Restrictive, Moderate, Permissive)")
	cmd.Flags().StringVar(&exportPath, "export", "", "Optional path for an Excel workbook export")

	return cmd
}

func newBatchCmd() *cobra.Command {
	var classification string

	cmd := &cobra.Command{
		Use:   "batch [policy-dir]",
		Short: "Analyze every .txt and .md policy in a directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := os.ReadDir(args[0])
			if err != nil {
				return fmt.Errorf("failed to read policy directory: %w", err)
			}

			kit := testkit.NewTestKit()
			var requests []engine.AnalysisRequest
			for _, entry := range entries {
				if entry.IsDir() {
					continue
				}
				ext := strings.ToLower(filepath.Ext(entry.Name()))
				if ext != ".txt" && ext != ".md" {
					continue
				}
				text, err := os.ReadFile(filepath.Join(args[0], entry.Name()))
				if err != nil {
					return fmt.Errorf("failed to read %s: %w", entry.Name(), err)
				}
				requests = append(requests, engine.AnalysisRequest{
					DocumentName:   entry.Name(),
					Text:           string(text),
					Classification: classification,
				})
			}
			if len(requests) == 0 {
				return fmt.Errorf("no .txt or .md policy files found in %s", args[0])
			}

			results, err := kit.Engine.AnalyzeBatch(cmd.Context(), requests)
			if err != nil {
				return err
			}
			for _, result := range results {
				fmt.Fprintf(cmd.OutOrStdout(), "%-40s %-12s confidence %5.1f%%  gaps %d  recommendations %d\n",
					result.DocumentName, result.Classification.Label,
					result.Confidence.OverallPct, len(result.Gaps), len(result.Recommendations))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&classification, "classification", "Moderate", "Classification applied to every document")

	return cmd
}

func newSamplesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "samples",
		Short: "Analyze the built-in sample policies",
		RunE: func(cmd *cobra.Command, args []string) error {
			kit := testkit.NewTestKit()
			for name, text := range testkit.SamplePolicies() {
				result := kit.Engine.Analyze(cmd.Context(), engine.AnalysisRequest{
					DocumentName:   name,
					Text:           text,
					Classification: name,
				})
				fmt.Fprintf(cmd.OutOrStdout(), "\n=== %s ===\n", name)
				for _, dim := range policy.AllDimensions() {
					cov := result.Coverage[dim]
					fmt.Fprintf(cmd.OutOrStdout(), "  %-16s %5.1f%% (%s)\n", dim, cov.Score, cov.Status)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "  confidence %.1f%%, %d gaps, %d recommendations\n",
					result.Confidence.OverallPct, len(result.Gaps), len(result.Recommendations))
			}
			return nil
		},
	}
}

func runAnalysis(ctx context.Context, name, text, classification string) *policy.AnalysisResult {
	kit := testkit.NewTestKit()
	return kit.Engine.Analyze(ctx, engine.AnalysisRequest{
		DocumentName:   name,
		Text:           text,
		Classification: classification,
	})
}

func printJSON(cmd *cobra.Command, v interface{}) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}
