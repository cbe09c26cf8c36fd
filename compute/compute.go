package compute

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"flowstats/flow"
	"flowstats/usgs"
	"flowstats/utils"
)

// Averaged metrics of a single station
type Result struct {
	Station       string
	SiteNumber    string
	MissingValues int
	Annual        flow.AnnualMetrics
	Monthly       []flow.MonthlyAverage
}

// Runs the full pipeline for one station: read the daily-value file, clip to
// the analysis window, compute per-period metrics, and average them
func computeStation(station *usgs.Station, dataDir string, span utils.TimeSpan, startMonth time.Month) (*Result, error) {
	table, err := usgs.ReadFile(filepath.Join(dataDir, station.Path))
	if err != nil {
		return nil, err
	}

	series, missing := flow.Clip(table, span)
	slog.Info(fmt.Sprintf("%s - %s: %v records in window, %v missing or excluded",
		station.Name, station.SiteNumber, series.Len(), missing))

	annualRows := flow.AnnualStats(series, startMonth)
	monthlyRows := flow.MonthlyStats(series)

	return &Result{
		Station:       station.Name,
		SiteNumber:    station.SiteNumber,
		MissingValues: missing,
		Annual:        flow.AnnualAverages(annualRows),
		Monthly:       flow.MonthlyAverages(monthlyRows),
	}, nil
}
