package regression

import (
	"fmt"
	"time"

	"gonum.org/v1/gonum/mat"

	"github.com/sartorproj/goregress/timeseries"
)

// builder turns target and exogenous series into the flat feature table the
// estimator consumes. The column layout is fixed at construction time:
// target lags in configured order, then each exogenous column in series
// order expanded by the exogenous lag set.
type builder struct {
	target   string
	lags     []int
	exogCols []string
	exogLags []int
	maxLag   int
}

func newBuilder(target string, lags []int, exogCols []string, exogLags []int) *builder {
	maxLag := 0
	for _, lag := range lags {
		if lag > maxLag {
			maxLag = lag
		}
	}
	for _, lag := range exogLags {
		if lag > maxLag {
			maxLag = lag
		}
	}
	return &builder{
		target:   target,
		lags:     lags,
		exogCols: exogCols,
		exogLags: exogLags,
		maxLag:   maxLag,
	}
}

// width returns the number of feature columns.
func (b *builder) width() int {
	return len(b.lags) + len(b.exogCols)*len(b.exogLags)
}

// columns returns the feature column names in table order, formatted as
// <variable>_lag<offset>.
func (b *builder) columns() []string {
	out := make([]string, 0, b.width())
	for _, lag := range b.lags {
		out = append(out, fmt.Sprintf("%s_lag%d", b.target, lag))
	}
	for _, col := range b.exogCols {
		for _, lag := range b.exogLags {
			out = append(out, fmt.Sprintf("%s_lag%d", col, lag))
		}
	}
	return out
}

// featureTable holds the training-side output: one feature row per retained
// timestamp, plus the target positions those rows came from so labels can
// be aligned. data is nil when no rows survive.
type featureTable struct {
	times   []time.Time
	columns []string
	data    *mat.Dense
	rows    []int
}

// table builds the training feature table. A row is kept only when every
// configured lag is defined at its timestamp; all other rows are dropped
// silently. Exogenous membership is decided by timestamp equality, so a
// shifted or differently spaced exogenous series contributes nothing rather
// than wrong rows.
func (b *builder) table(target, exog *timeseries.Series) (*featureTable, error) {
	if target.Width() != 1 {
		return nil, fmt.Errorf("%w: target series must be univariate; pass additional variables through the exogenous series", ErrConfiguration)
	}

	maxTargetLag := 0
	for _, lag := range b.lags {
		if lag > maxTargetLag {
			maxTargetLag = lag
		}
	}
	maxExogLag := 0
	for _, lag := range b.exogLags {
		if lag > maxExogLag {
			maxExogLag = lag
		}
	}

	width := b.width()
	var flat []float64
	var times []time.Time
	var rows []int

	for i := maxTargetLag; i < target.Len(); i++ {
		tau := target.Timestamps[i]

		pos := -1
		if len(b.exogLags) > 0 {
			pos = exog.IndexOf(tau)
			if pos < maxExogLag {
				continue
			}
		}

		for _, lag := range b.lags {
			flat = append(flat, target.Values[i-lag][0])
		}
		for c := range b.exogCols {
			for _, lag := range b.exogLags {
				flat = append(flat, exog.Values[pos-lag][c])
			}
		}
		times = append(times, tau)
		rows = append(rows, i)
	}

	tbl := &featureTable{
		times:   times,
		columns: b.columns(),
		rows:    rows,
	}
	if len(rows) > 0 {
		tbl.data = mat.NewDense(len(rows), width, flat)
	}
	return tbl, nil
}

// row builds a single feature row from the prediction window, in table
// column order.
func (b *builder) row(w *window) []float64 {
	out := make([]float64, 0, b.width())
	for _, lag := range b.lags {
		out = append(out, w.at(lag)[0])
	}
	for c := range b.exogCols {
		for _, lag := range b.exogLags {
			out = append(out, w.at(lag)[1+c])
		}
	}
	return out
}
