package flow

import (
	"math"
	"testing"
)

func TestTqmean(t *testing.T) {
	cases := []struct {
		tag      string
		values   []float64
		expected float64
	}{
		{"empty series", nil, math.NaN()},
		{"constant series, nothing exceeds the mean", constants(10, 5), 0},
		{"one of four above the mean", []float64{1, 1, 1, 9}, 0.25},
		{"half above the mean", []float64{0, 0, 10, 10}, 0.5},
	}

	for _, c := range cases {
		got := Tqmean(c.values)
		if math.IsNaN(c.expected) {
			if !math.IsNaN(got) {
				t.Errorf("%s: got %v, wanted NaN", c.tag, got)
			}
			continue
		}
		if got != c.expected {
			t.Errorf("%s: got %v, wanted %v", c.tag, got, c.expected)
		}
		if got < 0 || got > 1 {
			t.Errorf("%s: Tqmean %v outside [0,1]", c.tag, got)
		}
	}
}

func TestRBIndex(t *testing.T) {
	cases := []struct {
		tag      string
		values   []float64
		expected float64
	}{
		{"single point has no day-to-day change", []float64{42}, 0},
		{"constant series", constants(30, 7), 0},
		{"alternating flow", []float64{1, 3, 1, 3}, 6.0 / 8.0},
	}

	for _, c := range cases {
		if got := RBIndex(c.values); got != c.expected {
			t.Errorf("%s: got %v, wanted %v", c.tag, got, c.expected)
		}
	}

	if got := RBIndex([]float64{5, 2, 8, 1}); got < 0 {
		t.Errorf("R-B index must be non-negative, got %v", got)
	}
}

func TestSevenDayLowFlow(t *testing.T) {
	if got := SevenDayLowFlow(constants(6, 10)); !math.IsNaN(got) {
		t.Errorf("Fewer than 7 observations should yield NaN, got %v", got)
	}

	if got := SevenDayLowFlow(constants(20, 10)); got != 10 {
		t.Errorf("Got %v for a constant series, wanted 10", got)
	}

	// Low week is days 3-9 with average (5*2+2*9)/7
	values := []float64{9, 9, 9, 2, 2, 2, 2, 2, 9, 9, 9, 9, 9, 9}
	expected := (5.0*2 + 2.0*9) / 7
	if got := SevenDayLowFlow(values); math.Abs(got-expected) > 1e-12 {
		t.Errorf("Got %v, wanted %v", got, expected)
	}

	// 7Q can never exceed the series maximum
	ramp := []float64{1, 4, 2, 8, 5, 7, 3, 6, 9, 2}
	if got := SevenDayLowFlow(ramp); got > Peak(ramp) {
		t.Errorf("7Q %v exceeds series maximum %v", got, Peak(ramp))
	}
}

func TestExceedCountTimesMedian(t *testing.T) {
	values := []float64{1, 1, 1, 1, 2, 5, 10, 40}

	// Median is 1.5, so the 3x threshold is 4.5
	if got := ExceedCountTimesMedian(values, 3); got != 3 {
		t.Errorf("Got %v exceedances of 3x median, wanted 3", got)
	}

	// Counts are non-increasing as the multiplier grows
	prev := math.MaxInt
	for _, mult := range []float64{1, 2, 3, 5, 10, 100} {
		count := ExceedCountTimesMedian(values, mult)
		if count > prev {
			t.Errorf("Count %v for multiplier %v exceeds count %v for a smaller multiplier", count, mult, prev)
		}
		prev = count
	}

	if got := ExceedCountTimesMedian(nil, 3); got != 0 {
		t.Errorf("Empty series should count 0 exceedances, got %v", got)
	}
}

func TestMedian(t *testing.T) {
	cases := []struct {
		tag      string
		values   []float64
		expected float64
	}{
		{"odd length", []float64{5, 1, 9}, 5},
		{"even length averages the middle pair", []float64{1, 2, 3, 10}, 2.5},
		{"single value", []float64{7}, 7},
	}

	for _, c := range cases {
		if got := Median(c.values); got != c.expected {
			t.Errorf("%s: got %v, wanted %v", c.tag, got, c.expected)
		}
	}

	if got := Median(nil); !math.IsNaN(got) {
		t.Errorf("Median of an empty series should be NaN, got %v", got)
	}
}

func TestReductions(t *testing.T) {
	constant := constants(30, 10)

	if got := Peak(constant); got != 10 {
		t.Errorf("Got peak %v, wanted 10", got)
	}
	if got := CoeffVar(constant); got != 0 {
		t.Errorf("Got coefficient of variation %v for a constant series, wanted 0", got)
	}

	// Sample standard deviation of {2,4,4,4,5,5,7,9} is ~2.138, mean is 5
	values := []float64{2, 4, 4, 4, 5, 5, 7, 9}
	if got := CoeffVar(values); math.Abs(got-42.761798705987904) > 1e-9 {
		t.Errorf("Got coefficient of variation %v, wanted ~42.76", got)
	}

	if got := Peak(nil); !math.IsNaN(got) {
		t.Errorf("Peak of an empty series should be NaN, got %v", got)
	}
}
