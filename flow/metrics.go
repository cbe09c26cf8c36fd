package flow

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Tqmean is the fraction of time that daily streamflow exceeds the mean
// streamflow of the series. It measures flow variability by duration rather
// than volume. Returns NaN for an empty series
func Tqmean(values []float64) float64 {
	if len(values) == 0 {
		return math.NaN()
	}

	mean := stat.Mean(values, nil)
	count := 0
	for _, v := range values {
		if v > mean {
			count++
		}
	}
	return float64(count) / float64(len(values))
}

// RBIndex is the Richards-Baker flashiness index: the sum of absolute
// day-to-day changes in discharge (pathlength) divided by the total
// discharge. A series with fewer than two points has no day-to-day changes,
// so its pathlength is zero and the index is 0
func RBIndex(values []float64) float64 {
	pathlength := 0.0
	total := 0.0
	for i, v := range values {
		if i > 0 {
			pathlength += math.Abs(v - values[i-1])
		}
		total += v
	}
	return pathlength / total
}

// SevenDayLowFlow (7Q) is the minimum 7-day moving average discharge.
// Windows shorter than seven observations are undefined, so a series with
// fewer than seven valid points yields NaN
func SevenDayLowFlow(values []float64) float64 {
	const window = 7

	low := math.NaN()
	sum := 0.0
	for i, v := range values {
		sum += v
		if i >= window {
			sum -= values[i-window]
		}
		if i >= window-1 {
			avg := sum / window
			if math.IsNaN(low) || avg < low {
				low = avg
			}
		}
	}
	return low
}

// ExceedCountTimesMedian counts the observations strictly greater than
// mult times the median discharge. The median of an empty series is NaN and
// nothing compares greater than NaN, so the count is 0
func ExceedCountTimesMedian(values []float64, mult float64) int {
	threshold := mult * Median(values)

	count := 0
	for _, v := range values {
		if v > threshold {
			count++
		}
	}
	return count
}

// Median with the middle-pair average for even-length series
func Median(values []float64) float64 {
	if len(values) == 0 {
		return math.NaN()
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	n := len(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return sorted[n/2]
}

// Peak is the maximum discharge of the series, NaN when empty
func Peak(values []float64) float64 {
	peak := math.NaN()
	for _, v := range values {
		if math.IsNaN(peak) || v > peak {
			peak = v
		}
	}
	return peak
}

// CoeffVar is the coefficient of variation in percent,
// i.e. 100 * sample standard deviation / mean
func CoeffVar(values []float64) float64 {
	if len(values) == 0 {
		return math.NaN()
	}
	return 100 * stat.StdDev(values, nil) / stat.Mean(values, nil)
}

// Skew is the standardized third-moment skewness of the series
func Skew(values []float64) float64 {
	if len(values) < 3 {
		return math.NaN()
	}
	return stat.Skew(values, nil)
}
