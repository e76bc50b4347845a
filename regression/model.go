// Package regression implements lagged-feature regression forecasting.
package regression

import (
	"errors"
	"fmt"
	"time"

	"gonum.org/v1/gonum/mat"

	"github.com/sartorproj/goregress/linear"
	"github.com/sartorproj/goregress/timeseries"
)

var (
	// ErrConfiguration reports options or inputs that contradict the model
	// configuration. Every validation failure wraps it.
	ErrConfiguration = errors.New("invalid configuration")
	// ErrNotFitted reports use of a model before a successful Fit.
	ErrNotFitted = errors.New("model is not fitted")
)

// reservedTargetName is the physical column name the target falls back to
// when an exogenous column shadows its own. Callers never see it in outputs.
const reservedTargetName = "_target"

// Estimator is the capability a regression backend must provide. Train fits
// on a feature matrix with one label per row. Infer returns exactly one
// prediction per row of x; the forecaster feeds it one-row matrices while
// rolling forward. Errors from either method are returned to the caller
// unchanged.
type Estimator interface {
	Train(x mat.Matrix, y []float64) error
	Infer(x mat.Matrix) ([]float64, error)
}

var (
	_ Estimator = (*linear.LeastSquares)(nil)
	_ Estimator = (*linear.GradientDescent)(nil)
)

// Options configure a Model.
type Options struct {
	// Lags selects the target offsets. Offsets are strictly positive: the
	// value being predicted is never its own feature.
	Lags LagSpec
	// ExogLags selects the exogenous offsets, 0 allowed. Setting it commits
	// the model to an exogenous series at both fit and predict time.
	ExogLags LagSpec
	// Model is the estimator to train. Defaults to ordinary least squares
	// without an intercept.
	Model Estimator
}

// Model forecasts a univariate target series from lagged features, rolling
// the estimator forward one step at a time. Models are not safe for
// concurrent use.
type Model struct {
	lags      []int
	exogLags  []int
	hasLag0   bool
	estimator Estimator
	state     *fitState
}

// fitState is everything a successful Fit produces. It is staged locally
// and swapped in whole, so a failed Fit leaves the previous state intact.
type fitState struct {
	build     *builder
	alias     aliasTable
	exogNames []string
	features  []string
	seed      [][]float64
	trainEnd  time.Time
	freq      time.Duration
	residuals []float64
	fitted    []float64
}

// aliasTable maps logical column names to the physical names used inside
// feature tables. It is resolved once at fit time and reversed on every
// caller-visible output.
type aliasTable map[string]string

// physical returns the feature-table name for a logical column.
func (a aliasTable) physical(name string) string {
	if p, ok := a[name]; ok {
		return p
	}
	return name
}

// logical returns the caller-visible name for a feature-table column.
func (a aliasTable) logical(physical string) string {
	for l, p := range a {
		if p == physical {
			return l
		}
	}
	return physical
}

// New validates the options and returns an unfitted model.
func New(opts *Options) (*Model, error) {
	if opts == nil {
		opts = &Options{}
	}
	if opts.Lags.IsZero() && opts.ExogLags.IsZero() {
		return nil, fmt.Errorf("%w: at least one of Lags or ExogLags must be set", ErrConfiguration)
	}

	lags, err := opts.Lags.resolveTarget()
	if err != nil {
		return nil, err
	}
	exogLags, err := opts.ExogLags.resolveExog(lags)
	if err != nil {
		return nil, err
	}

	hasLag0 := false
	for _, lag := range exogLags {
		if lag == 0 {
			hasLag0 = true
		}
	}

	estimator := opts.Model
	if estimator == nil {
		estimator = linear.NewLeastSquares()
	}

	return &Model{
		lags:      lags,
		exogLags:  exogLags,
		hasLag0:   hasLag0,
		estimator: estimator,
	}, nil
}

// Fit builds the lagged feature table from target (and exog when exogenous
// lags are configured) and trains the estimator on it. A failed Fit leaves
// the model in its previous state; a second successful Fit replaces it.
func (m *Model) Fit(target, exog *timeseries.Series) error {
	if target == nil || target.Len() == 0 {
		return fmt.Errorf("%w: target series is required", ErrConfiguration)
	}
	if exog != nil && len(m.exogLags) == 0 {
		return fmt.Errorf("%w: exogenous series given but no exogenous lags configured", ErrConfiguration)
	}
	if exog == nil && len(m.exogLags) > 0 {
		return fmt.Errorf("%w: exogenous lags configured but no exogenous series given", ErrConfiguration)
	}
	if target.Len() < 2 {
		return fmt.Errorf("%w: target series needs at least two rows to derive a frequency", ErrConfiguration)
	}

	freq := target.Freq()
	if exog != nil && exog.Len() >= 2 && exog.Freq() != freq {
		return fmt.Errorf("%w: exogenous frequency %v does not match target frequency %v", ErrConfiguration, exog.Freq(), freq)
	}

	// On a column name collision the target moves to a reserved physical
	// name for the whole pipeline; outputs translate back.
	alias := aliasTable{}
	work := target
	if target.Width() == 1 && exog != nil && exog.HasColumn(target.Names[0]) {
		alias[target.Names[0]] = reservedTargetName
		renamed, err := target.Rename(target.Names[0], alias.physical(target.Names[0]))
		if err != nil {
			return fmt.Errorf("%w: %v", ErrConfiguration, err)
		}
		work = renamed
	}

	var exogNames []string
	if exog != nil {
		exogNames = exog.Columns()
	}

	build := newBuilder(work.Names[0], m.lags, exogNames, m.exogLags)
	tbl, err := build.table(work, exog)
	if err != nil {
		return err
	}
	if len(tbl.rows) == 0 {
		return fmt.Errorf("%w: insufficient overlapping history for the configured lags", ErrConfiguration)
	}

	targetValues, err := work.ColumnValues(work.Names[0])
	if err != nil {
		return err
	}
	labels := make([]float64, len(tbl.rows))
	for k, i := range tbl.rows {
		labels[k] = targetValues[i]
	}

	if err := m.estimator.Train(tbl.data, labels); err != nil {
		return err
	}

	// In-sample diagnostics from one pass over the training table
	fitted, err := m.estimator.Infer(tbl.data)
	if err != nil {
		return err
	}
	if len(fitted) != len(labels) {
		return fmt.Errorf("estimator returned %d in-sample predictions for %d rows", len(fitted), len(labels))
	}
	residuals := make([]float64, len(labels))
	for i := range labels {
		residuals[i] = labels[i] - fitted[i]
	}

	seed, err := buildSeed(work, exog, build.maxLag)
	if err != nil {
		return err
	}

	m.state = &fitState{
		build:     build,
		alias:     alias,
		exogNames: exogNames,
		features:  tbl.columns,
		seed:      seed,
		trainEnd:  work.EndTime(),
		freq:      freq,
		residuals: residuals,
		fitted:    fitted,
	}
	return nil
}

// buildSeed captures the last maxLag observation rows, target first then
// exogenous columns, as the starting window for prediction.
func buildSeed(work, exog *timeseries.Series, maxLag int) ([][]float64, error) {
	if maxLag == 0 {
		return [][]float64{}, nil
	}

	src := work
	if exog != nil {
		stacked, err := work.Stack(exog)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrConfiguration, err)
		}
		src = stacked
	}

	tail := src.Tail(maxLag)
	if tail.Len() < maxLag || !tail.EndTime().Equal(work.EndTime()) {
		return nil, fmt.Errorf("%w: insufficient training history to seed the prediction window: need the last %d aligned rows", ErrConfiguration, maxLag)
	}

	seed := make([][]float64, tail.Len())
	for i := range seed {
		seed[i] = tail.Row(i)
	}
	return seed, nil
}

// Predict forecasts n steps past the end of the training series. When
// exogenous lags are configured, exog must carry the future values: it
// starts exactly one step after the training series ends, runs at the
// training frequency with the training columns, and covers at least n rows.
// Predict never mutates fitted state, so repeated calls yield identical
// forecasts.
func (m *Model) Predict(n int, exog *timeseries.Series) (*timeseries.Series, error) {
	st := m.state
	if st == nil {
		return nil, fmt.Errorf("%w: call Fit before Predict", ErrNotFitted)
	}
	if n < 0 {
		return nil, fmt.Errorf("%w: n must be non-negative, got %d", ErrConfiguration, n)
	}
	if exog != nil && len(m.exogLags) == 0 {
		return nil, fmt.Errorf("%w: exogenous series given but the model was fitted without exogenous lags", ErrConfiguration)
	}
	if exog == nil && len(m.exogLags) > 0 {
		return nil, fmt.Errorf("%w: exogenous lags configured but no exogenous series given for prediction", ErrConfiguration)
	}

	start := st.trainEnd.Add(st.freq)
	outputName := st.alias.logical(st.build.target)

	if exog != nil {
		if exog.Len() == 0 {
			return nil, fmt.Errorf("%w: exogenous series for prediction is empty", ErrConfiguration)
		}
		if !exog.StartTime().Equal(start) {
			return nil, fmt.Errorf("%w: exogenous series must start at %s, one step after the end of the training series; got %s",
				ErrConfiguration, start.Format(time.RFC3339), exog.StartTime().Format(time.RFC3339))
		}
		if exog.Len() < n {
			return nil, fmt.Errorf("%w: exogenous series has %d rows, forecasting %d steps requires at least %d", ErrConfiguration, exog.Len(), n, n)
		}
		if exog.Len() >= 2 && exog.Freq() != st.freq {
			return nil, fmt.Errorf("%w: exogenous frequency %v does not match training frequency %v", ErrConfiguration, exog.Freq(), st.freq)
		}
		if err := matchColumns(st.exogNames, exog.Names); err != nil {
			return nil, err
		}
	}

	if n == 0 {
		return timeseries.NewAt(outputName, start, st.freq, []float64{}), nil
	}

	w := newWindow(st.seed, 1+len(st.exogNames))
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		// Lag-0 features read the step's exogenous values before the
		// prediction exists, so they are staged into the placeholder first.
		if m.hasLag0 {
			w.stageExog(exog.Values[i])
		}

		features := st.build.row(w)
		preds, err := m.estimator.Infer(mat.NewDense(1, len(features), features))
		if err != nil {
			return nil, err
		}
		if len(preds) != 1 {
			return nil, fmt.Errorf("estimator returned %d predictions for a single feature row", len(preds))
		}

		var exogRow []float64
		if exog != nil {
			exogRow = exog.Values[i]
		}
		w.commit(preds[0], exogRow)
		out[i] = preds[0]
	}

	return timeseries.NewAt(outputName, start, st.freq, out), nil
}

// matchColumns checks that the prediction exogenous columns are the
// training ones, in the same order.
func matchColumns(want, got []string) error {
	match := len(want) == len(got)
	if match {
		for i := range want {
			if want[i] != got[i] {
				match = false
				break
			}
		}
	}
	if !match {
		return fmt.Errorf("%w: exogenous columns %v do not match the training columns %v", ErrConfiguration, got, want)
	}
	return nil
}

// FeatureNames returns the feature-table column names in training order, or
// nil before the model is fitted.
func (m *Model) FeatureNames() []string {
	if m.state == nil {
		return nil
	}
	out := make([]string, len(m.state.features))
	copy(out, m.state.features)
	return out
}

// TargetLags returns the resolved target lag offsets.
func (m *Model) TargetLags() []int {
	out := make([]int, len(m.lags))
	copy(out, m.lags)
	return out
}

// ExogenousLags returns the resolved exogenous lag offsets.
func (m *Model) ExogenousLags() []int {
	out := make([]int, len(m.exogLags))
	copy(out, m.exogLags)
	return out
}

// MaxLag returns the largest configured offset.
func (m *Model) MaxLag() int {
	maxLag := 0
	for _, lag := range m.lags {
		if lag > maxLag {
			maxLag = lag
		}
	}
	for _, lag := range m.exogLags {
		if lag > maxLag {
			maxLag = lag
		}
	}
	return maxLag
}

// Residuals returns the in-sample one-step errors (label minus fitted) over
// the training table, or nil before the model is fitted.
func (m *Model) Residuals() []float64 {
	if m.state == nil {
		return nil
	}
	out := make([]float64, len(m.state.residuals))
	copy(out, m.state.residuals)
	return out
}

// FittedValues returns the in-sample predictions over the training table,
// or nil before the model is fitted.
func (m *Model) FittedValues() []float64 {
	if m.state == nil {
		return nil
	}
	out := make([]float64, len(m.state.fitted))
	copy(out, m.state.fitted)
	return out
}
