// Package flow computes descriptive streamflow statistics over daily
// discharge series: clipping to an analysis window, water-year and monthly
// aggregation, and the standard variability/flashiness/low-flow indices.
package flow

import (
	"math"
	"time"

	"flowstats/usgs"
	"flowstats/utils"
)

// An ordered (date, discharge) series with no duplicate dates.
// Missing observations are carried as NaN values until Valid is called
type Series struct {
	Dates  []time.Time
	Values []float64
}

func (s *Series) Len() int {
	return len(s.Values)
}

// Returns the discharge values with NaN entries removed. Metric functions
// must only ever see the output of this: NaN propagates through every mean
// and sum and would corrupt the indices
func (s *Series) Valid() []float64 {
	valid := make([]float64, 0, len(s.Values))
	for _, v := range s.Values {
		if !math.IsNaN(v) {
			valid = append(valid, v)
		}
	}
	return valid
}

// Restricts the table to the inclusive analysis window and returns it as a
// Series along with the updated missing-value count. Records outside the
// window are unusable for the analysis, so they are added to the same tally
// as the in-window missing discharges. An empty span excludes everything
func Clip(table *usgs.Table, span utils.TimeSpan) (*Series, int) {
	missing := table.MissingValues

	series := Series{}
	for _, record := range table.Records {
		if !span.Contains(record.Date) {
			missing++
			continue
		}
		series.Dates = append(series.Dates, record.Date)
		series.Values = append(series.Values, record.Discharge)
	}

	return &series, missing
}
