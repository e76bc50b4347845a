// Package metrics provides forecast accuracy measures over aligned slices of
// actual and predicted values. Every function returns NaN when the inputs are
// empty or differ in length.
package metrics

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// RMSE returns the root mean squared error.
func RMSE(actual, predicted []float64) float64 {
	if invalid(actual, predicted) {
		return math.NaN()
	}
	return floats.Distance(actual, predicted, 2) / math.Sqrt(float64(len(actual)))
}

// MAE returns the mean absolute error.
func MAE(actual, predicted []float64) float64 {
	if invalid(actual, predicted) {
		return math.NaN()
	}
	return floats.Distance(actual, predicted, 1) / float64(len(actual))
}

// MAPE returns the mean absolute percentage error. Observations with a zero
// actual value are skipped; if every actual is zero the result is NaN.
func MAPE(actual, predicted []float64) float64 {
	if invalid(actual, predicted) {
		return math.NaN()
	}
	sum := 0.0
	count := 0
	for i := range actual {
		if actual[i] == 0 {
			continue
		}
		sum += math.Abs(actual[i]-predicted[i]) / math.Abs(actual[i]) * 100
		count++
	}
	if count == 0 {
		return math.NaN()
	}
	return sum / float64(count)
}

// ME returns the mean error (actual minus predicted). Positive values mean
// the forecast runs low.
func ME(actual, predicted []float64) float64 {
	if invalid(actual, predicted) {
		return math.NaN()
	}
	diff := make([]float64, len(actual))
	floats.SubTo(diff, actual, predicted)
	return stat.Mean(diff, nil)
}

// R2 returns the coefficient of determination. A constant actual series has
// no variance to explain and yields NaN.
func R2(actual, predicted []float64) float64 {
	if invalid(actual, predicted) {
		return math.NaN()
	}

	mean := stat.Mean(actual, nil)
	ssTot := 0.0
	for _, a := range actual {
		d := a - mean
		ssTot += d * d
	}
	if ssTot == 0 {
		return math.NaN()
	}

	d := floats.Distance(actual, predicted, 2)
	return 1 - d*d/ssTot
}

func invalid(actual, predicted []float64) bool {
	return len(actual) == 0 || len(actual) != len(predicted)
}
