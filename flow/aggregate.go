package flow

import (
	"math"
	"time"

	"gonum.org/v1/gonum/stat"
)

// The nine water-year metrics. The csv tags double as the column headers of
// the annual output table
type AnnualMetrics struct {
	Mean           float64 `csv:"Mean Flow"`
	Peak           float64 `csv:"Peak Flow"`
	Median         float64 `csv:"Median Flow"`
	CoeffVar       float64 `csv:"Coeff Var"`
	Skew           float64 `csv:"Skew"`
	Tqmean         float64 `csv:"Tqmean"`
	RBIndex        float64 `csv:"R-B Index"`
	SevenQ         float64 `csv:"7Q"`
	Exceed3xMedian float64 `csv:"3xMedian"`
}

// Metrics of a single water year, labeled by the bucket's start date
type AnnualRow struct {
	WaterYear time.Time
	AnnualMetrics
}

// The four monthly metrics
type MonthlyMetrics struct {
	Mean     float64 `csv:"Mean Flow"`
	CoeffVar float64 `csv:"Coeff Var"`
	Tqmean   float64 `csv:"Tqmean"`
	RBIndex  float64 `csv:"R-B Index"`
}

// Metrics of a single month instance (e.g. one specific January)
type MonthlyRow struct {
	Month time.Time
	MonthlyMetrics
}

// Start of the water-year bucket the given date falls in. A water year runs
// from startMonth 1st of one year to the day before startMonth 1st of the
// next, and is labeled by its start date
func waterYearStart(date time.Time, startMonth time.Month) time.Time {
	year := date.Year()
	if date.Month() < startMonth {
		year--
	}
	return time.Date(year, startMonth, 1, 0, 0, 0, 0, time.UTC)
}

func monthStart(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// Collects the valid (non-NaN) values of every bucket between the first and
// last observation. next returns the start of the bucket following the given
// one; buckets with no valid observations are kept as empty slices so that
// the period grid stays regular
func bucketValues(s *Series, start func(time.Time) time.Time, next func(time.Time) time.Time) ([]time.Time, [][]float64) {
	if s.Len() == 0 {
		return nil, nil
	}

	var labels []time.Time
	var buckets [][]float64

	end := next(start(s.Dates[s.Len()-1]))
	i := 0
	for label := start(s.Dates[0]); label.Before(end); label = next(label) {
		bucket := []float64{}
		for ; i < s.Len() && s.Dates[i].Before(next(label)); i++ {
			if !math.IsNaN(s.Values[i]) {
				bucket = append(bucket, s.Values[i])
			}
		}
		labels = append(labels, label)
		buckets = append(buckets, bucket)
	}

	return labels, buckets
}

// AnnualStats partitions the series into water years starting on the 1st of
// startMonth and computes the nine annual metrics for each. Water years with
// no valid observations appear with all-NaN metrics
func AnnualStats(s *Series, startMonth time.Month) []AnnualRow {
	labels, buckets := bucketValues(s,
		func(t time.Time) time.Time { return waterYearStart(t, startMonth) },
		func(t time.Time) time.Time { return t.AddDate(1, 0, 0) },
	)

	rows := make([]AnnualRow, len(labels))
	for i, values := range buckets {
		rows[i] = AnnualRow{WaterYear: labels[i], AnnualMetrics: annualMetrics(values)}
	}
	return rows
}

func annualMetrics(values []float64) AnnualMetrics {
	if len(values) == 0 {
		return AnnualMetrics{
			Mean:           math.NaN(),
			Peak:           math.NaN(),
			Median:         math.NaN(),
			CoeffVar:       math.NaN(),
			Skew:           math.NaN(),
			Tqmean:         math.NaN(),
			RBIndex:        math.NaN(),
			SevenQ:         math.NaN(),
			Exceed3xMedian: math.NaN(),
		}
	}
	return AnnualMetrics{
		Mean:           stat.Mean(values, nil),
		Peak:           Peak(values),
		Median:         Median(values),
		CoeffVar:       CoeffVar(values),
		Skew:           Skew(values),
		Tqmean:         Tqmean(values),
		RBIndex:        RBIndex(values),
		SevenQ:         SevenDayLowFlow(values),
		Exceed3xMedian: float64(ExceedCountTimesMedian(values, 3)),
	}
}

// MonthlyStats partitions the series into calendar months and computes the
// four monthly metrics for each. Months with no valid observations appear
// with all-NaN metrics
func MonthlyStats(s *Series) []MonthlyRow {
	labels, buckets := bucketValues(s,
		monthStart,
		func(t time.Time) time.Time { return t.AddDate(0, 1, 0) },
	)

	rows := make([]MonthlyRow, len(labels))
	for i, values := range buckets {
		rows[i] = MonthlyRow{Month: labels[i], MonthlyMetrics: monthlyMetrics(values)}
	}
	return rows
}

func monthlyMetrics(values []float64) MonthlyMetrics {
	if len(values) == 0 {
		return MonthlyMetrics{
			Mean:     math.NaN(),
			CoeffVar: math.NaN(),
			Tqmean:   math.NaN(),
			RBIndex:  math.NaN(),
		}
	}
	return MonthlyMetrics{
		Mean:     stat.Mean(values, nil),
		CoeffVar: CoeffVar(values),
		Tqmean:   Tqmean(values),
		RBIndex:  RBIndex(values),
	}
}

// AnnualAverages reduces the per-water-year table to a single mean per
// metric, skipping NaN years
func AnnualAverages(rows []AnnualRow) AnnualMetrics {
	columns := make([][]float64, 9)
	for _, row := range rows {
		for i, v := range []float64{
			row.Mean, row.Peak, row.Median, row.CoeffVar, row.Skew,
			row.Tqmean, row.RBIndex, row.SevenQ, row.Exceed3xMedian,
		} {
			columns[i] = append(columns[i], v)
		}
	}

	return AnnualMetrics{
		Mean:           nanMean(columns[0]),
		Peak:           nanMean(columns[1]),
		Median:         nanMean(columns[2]),
		CoeffVar:       nanMean(columns[3]),
		Skew:           nanMean(columns[4]),
		Tqmean:         nanMean(columns[5]),
		RBIndex:        nanMean(columns[6]),
		SevenQ:         nanMean(columns[7]),
		Exceed3xMedian: nanMean(columns[8]),
	}
}

// One row of the monthly summary: metrics averaged over every instance of
// the given calendar month
type MonthlyAverage struct {
	Month time.Month
	MonthlyMetrics
}

// MonthlyAverages groups the month rows by calendar month and averages each
// metric within the group, skipping NaN months. The result always has
// exactly 12 rows, January through December
func MonthlyAverages(rows []MonthlyRow) []MonthlyAverage {
	groups := make(map[time.Month][]MonthlyRow)
	for _, row := range rows {
		m := row.Month.Month()
		groups[m] = append(groups[m], row)
	}

	averages := make([]MonthlyAverage, 12)
	for i := range averages {
		month := time.Month(i + 1)

		var mean, coeffVar, tqmean, rbIndex []float64
		for _, row := range groups[month] {
			mean = append(mean, row.Mean)
			coeffVar = append(coeffVar, row.CoeffVar)
			tqmean = append(tqmean, row.Tqmean)
			rbIndex = append(rbIndex, row.RBIndex)
		}

		averages[i] = MonthlyAverage{
			Month: month,
			MonthlyMetrics: MonthlyMetrics{
				Mean:     nanMean(mean),
				CoeffVar: nanMean(coeffVar),
				Tqmean:   nanMean(tqmean),
				RBIndex:  nanMean(rbIndex),
			},
		}
	}
	return averages
}

// Arithmetic mean that skips NaN entries, NaN if nothing remains
func nanMean(values []float64) float64 {
	sum, count := 0.0, 0
	for _, v := range values {
		if !math.IsNaN(v) {
			sum += v
			count++
		}
	}
	if count == 0 {
		return math.NaN()
	}
	return sum / float64(count)
}
