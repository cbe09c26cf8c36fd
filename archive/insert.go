package archive

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"flowstats/report"
)

// NaN metrics survive the round trip: the columns are double precision,
// which Postgres lets hold 'NaN'
const SCHEMA = `
CREATE TABLE IF NOT EXISTS annual_metrics (
    station TEXT NOT NULL,
    mean_flow DOUBLE PRECISION,
    peak_flow DOUBLE PRECISION,
    median_flow DOUBLE PRECISION,
    coeff_var DOUBLE PRECISION,
    skew DOUBLE PRECISION,
    tqmean DOUBLE PRECISION,
    rb_index DOUBLE PRECISION,
    seven_q DOUBLE PRECISION,
    exceed_3x_median DOUBLE PRECISION
);
CREATE TABLE IF NOT EXISTS monthly_metrics (
    station TEXT NOT NULL,
    month INT NOT NULL,
    mean_flow DOUBLE PRECISION,
    coeff_var DOUBLE PRECISION,
    tqmean DOUBLE PRECISION,
    rb_index DOUBLE PRECISION
);`

func createTables(pool *pgxpool.Pool) error {
	_, err := pool.Exec(context.TODO(), SCHEMA)
	return err
}

// Loads a summary CSV file where records (lines) are described by type T
func readSummaryCSV[T any](dir, filename string) ([]*T, error) {
	file, err := os.Open(filepath.Join(dir, filename))
	if err != nil {
		slog.Error(err.Error())
		return nil, err
	}
	defer file.Close()

	var rows []*T
	if err := gocsv.UnmarshalFile(file, &rows); err != nil {
		slog.Error(err.Error())
		return nil, err
	}

	return rows, nil
}

func annualRow(s *report.AnnualSummary) []any {
	return []any{s.Station, s.Mean, s.Peak, s.Median, s.CoeffVar, s.Skew,
		s.Tqmean, s.RBIndex, s.SevenQ, s.Exceed3xMedian}
}

func monthlyRow(s *report.MonthlySummary) []any {
	return []any{s.Station, s.Month, s.Mean, s.CoeffVar, s.Tqmean, s.RBIndex}
}

func InsertAnnual(rows []*report.AnnualSummary, pool *pgxpool.Pool) (int64, error) {
	size := len(rows)
	count, err := pool.CopyFrom(
		context.TODO(),
		pgx.Identifier{"annual_metrics"},
		[]string{"station", "mean_flow", "peak_flow", "median_flow", "coeff_var",
			"skew", "tqmean", "rb_index", "seven_q", "exceed_3x_median"},
		pgx.CopyFromSlice(size, func(i int) ([]any, error) {
			return annualRow(rows[i]), nil
		}),
	)
	if err != nil {
		return count, err
	}

	logStr := fmt.Sprintf("%v/%v annual rows inserted", count, size)
	if int(count) != size {
		slog.Warn(logStr)
	} else {
		slog.Info(logStr)
	}
	return count, nil
}

func InsertMonthly(rows []*report.MonthlySummary, pool *pgxpool.Pool) (int64, error) {
	size := len(rows)
	count, err := pool.CopyFrom(
		context.TODO(),
		pgx.Identifier{"monthly_metrics"},
		[]string{"station", "month", "mean_flow", "coeff_var", "tqmean", "rb_index"},
		pgx.CopyFromSlice(size, func(i int) ([]any, error) {
			return monthlyRow(rows[i]), nil
		}),
	)
	if err != nil {
		return count, err
	}

	logStr := fmt.Sprintf("%v/%v monthly rows inserted", count, size)
	if int(count) != size {
		slog.Warn(logStr)
	} else {
		slog.Info(logStr)
	}
	return count, nil
}
