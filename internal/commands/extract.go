package commands

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/0xjaydeep/debrokly/internal/domain/extract"
	"github.com/0xjaydeep/debrokly/internal/domain/statement"
	"github.com/0xjaydeep/debrokly/internal/export"
	"github.com/0xjaydeep/debrokly/pkg/config"
)

func newExtractCommand() *cobra.Command {
	var (
		output    string
		format    string
		organized bool
		summary   string
		period    string
	)

	cmd := &cobra.Command{
		Use:   "extract <document.json>",
		Short: "Extract transactions from a parsed statement document",
		Long: `Extract reads a parsed statement document (the JSON form produced by
a document reader: per-page text, tables, optional OCR text), detects
the issuing bank, extracts and normalizes transactions, and writes them
to a tabular file.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if format == "" {
				format = cfg.Format
			}

			logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: cfg.SlogLevel(),
			}))

			doc, err := statement.ReadFile(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			svc := extract.NewService(
				extract.NewDetector(cfg.BankMarkers),
				extract.DefaultRegistry(cfg.HeaderMarkers),
				logger,
			)
			txns := svc.Run(doc)
			if len(txns) == 0 {
				return fmt.Errorf("no transactions found in %s", args[0])
			}

			writer := export.NewWriter(cfg.OutputDir)
			var outPath string
			if organized {
				outPath, err = writer.ExportOrganized(txns, format, "", period)
			} else {
				outPath = output
				if outPath == "" {
					outPath = defaultOutputPath(args[0], format)
				}
				err = writer.Export(txns, outPath, format)
			}
			if err != nil {
				return err
			}

			if summary != "" {
				if err := writer.WriteSummary(txns, summary); err != nil {
					return err
				}
			}

			cmd.Printf("Extracted %d transactions to %s\n", len(txns), outPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file path")
	cmd.Flags().StringVarP(&format, "format", "f", "", "output format: csv or excel")
	cmd.Flags().BoolVar(&organized, "organized", false, "write under <outputDir>/<bank>/<period>/")
	cmd.Flags().StringVar(&period, "period", "", "statement period (YYYY-MM) for organized output")
	cmd.Flags().StringVar(&summary, "summary", "", "also write a text summary report to this path")

	return cmd
}

// defaultOutputPath derives the output file name from the input
// document name.
func defaultOutputPath(inputPath, format string) string {
	base := strings.TrimSuffix(inputPath, ".json")
	if strings.EqualFold(format, export.FormatExcel) || strings.EqualFold(format, "xlsx") {
		return base + ".xlsx"
	}
	return base + ".csv"
}
