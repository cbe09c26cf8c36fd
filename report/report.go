// Package report serializes averaged station metrics to the comma- and
// tab-separated summary tables.
package report

import (
	"encoding/csv"
	"errors"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"flowstats/flow"
)

// One averaged annual row per station
type AnnualSummary struct {
	Station string `csv:"Station"`
	flow.AnnualMetrics
}

// One averaged row per station per calendar month
type MonthlySummary struct {
	Station string `csv:"Station"`
	Month   int    `csv:"Month"`
	flow.MonthlyMetrics
}

const (
	ANNUAL_CSV  = "Average_Annual_Metrics.csv"
	ANNUAL_TSV  = "Average_Annual_Metrics.txt"
	MONTHLY_CSV = "Average_Monthly_Metrics.csv"
	MONTHLY_TSV = "Average_Monthly_Metrics.txt"
)

// WriteAnnual writes the stacked annual summaries, comma-separated to
// ANNUAL_CSV and tab-separated to ANNUAL_TSV, in the given directory
func WriteAnnual(summaries []*AnnualSummary, dir string) error {
	return errors.Join(
		writeCSV(summaries, dir, ANNUAL_CSV, ','),
		writeCSV(summaries, dir, ANNUAL_TSV, '\t'),
	)
}

// WriteMonthly writes the stacked monthly summaries, comma-separated to
// MONTHLY_CSV and tab-separated to MONTHLY_TSV, in the given directory
func WriteMonthly(summaries []*MonthlySummary, dir string) error {
	return errors.Join(
		writeCSV(summaries, dir, MONTHLY_CSV, ','),
		writeCSV(summaries, dir, MONTHLY_TSV, '\t'),
	)
}

func writeCSV[T any](rows []*T, dir, filename string, sep rune) error {
	file, err := os.Create(filepath.Join(dir, filename))
	if err != nil {
		slog.Error(err.Error())
		return err
	}

	writer := csv.NewWriter(file)
	writer.Comma = sep

	err = gocsv.MarshalCSV(rows, gocsv.NewSafeCSVWriter(writer))
	if closeErr := file.Close(); closeErr != nil {
		err = errors.Join(err, closeErr)
	}
	if err != nil {
		slog.Error(err.Error())
	}
	return err
}
