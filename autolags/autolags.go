// Package autolags implements automatic lag selection for regression models.
package autolags

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/sartorproj/goregress/regression"
	"github.com/sartorproj/goregress/stats"
	"github.com/sartorproj/goregress/timeseries"
)

// Config holds configuration for the lag search.
type Config struct {
	MaxLag       int                         // Largest target lag to consider (default: 8)
	Criterion    string                      // Information criterion: "aic", "aicc" or "bic" (default: "aicc")
	Stepwise     bool                        // Use stepwise search instead of exhaustive
	Seasonal     bool                        // Add seasonal lag candidates
	SeasonalM    int                         // Seasonal period (required if Seasonal=true)
	ExogLags     regression.LagSpec          // Exogenous lags applied to every candidate
	NewEstimator func() regression.Estimator // Fresh estimator per candidate; nil uses least squares
	Trace        bool                        // Print each evaluated candidate
}

// DefaultConfig returns the default lag search configuration.
func DefaultConfig() *Config {
	return &Config{
		MaxLag:    8,
		Criterion: "aicc",
		Stepwise:  true,
	}
}

// Result represents the outcome of a lag search.
type Result struct {
	// Model is the fitted model for the winning lag set, ready to predict.
	Model *regression.Model

	// Best lag sets found. SeasonalLags is the seasonal part of Lags, empty
	// when the winner carries no seasonal block.
	Lags         []int
	SeasonalLags []int
	ExogLags     []int

	// Model metrics
	AIC       float64
	AICc      float64
	BIC       float64
	LogLik    float64
	Criterion float64

	// Search information
	ModelsEvaluated int
	SuggestedLags   []int
	Elapsed         time.Duration
}

// Search selects the target lag set that minimizes the configured information
// criterion. Candidates are contiguous sets {1..k}, optionally extended with
// seasonal lags at the period and twice the period, plus one set suggested by
// the significant partial autocorrelations of the target. When exogenous lags
// are configured, exog must be given and is applied to every candidate.
func Search(target, exog *timeseries.Series, config *Config) (*Result, error) {
	if config == nil {
		config = DefaultConfig()
	}
	if target == nil || target.Len() == 0 {
		return nil, fmt.Errorf("%w: target series is required", regression.ErrConfiguration)
	}

	start := time.Now()
	maxLag := config.MaxLag
	if maxLag < 1 {
		maxLag = 8
	}
	seasonal := config.Seasonal && config.SeasonalM >= 2

	type lagSpec struct {
		k        int
		seasonal bool
	}

	lagsFor := func(spec lagSpec) (lags, seasonalBlock []int) {
		lags = make([]int, 0, spec.k+2)
		for l := 1; l <= spec.k; l++ {
			lags = append(lags, l)
		}
		if spec.seasonal {
			m := config.SeasonalM
			if m > spec.k {
				seasonalBlock = append(seasonalBlock, m)
			}
			if 2*m > spec.k {
				seasonalBlock = append(seasonalBlock, 2*m)
			}
			lags = append(lags, seasonalBlock...)
		}
		return lags, seasonalBlock
	}

	criterionOf := func(aic, aicc, bic float64) float64 {
		switch config.Criterion {
		case "aic":
			return aic
		case "bic":
			return bic
		default:
			return aicc
		}
	}

	best := &Result{Criterion: math.Inf(1)}
	modelsEvaluated := 0
	tried := make(map[string]float64)

	evaluate := func(lags, seasonalLags []int) float64 {
		if len(lags) == 0 {
			return math.Inf(1)
		}
		key := fmt.Sprint(lags)
		if crit, ok := tried[key]; ok {
			return crit
		}
		tried[key] = math.Inf(1)

		opts := &regression.Options{
			Lags:     regression.Lags(lags...),
			ExogLags: config.ExogLags,
		}
		if config.NewEstimator != nil {
			opts.Model = config.NewEstimator()
		}

		model, err := regression.New(opts)
		if err != nil {
			return math.Inf(1)
		}
		if err := model.Fit(target, exog); err != nil {
			return math.Inf(1)
		}
		modelsEvaluated++

		loglik, aic, aicc, bic := informationCriteria(model.Residuals(), len(model.FeatureNames()))
		criterion := criterionOf(aic, aicc, bic)
		tried[key] = criterion

		if config.Trace {
			fmt.Printf("lags=%v %s=%.4f\n", lags, criterionName(config.Criterion), criterion)
		}

		if criterion < best.Criterion {
			best = &Result{
				Model:        model,
				Lags:         model.TargetLags(),
				SeasonalLags: seasonalLags,
				ExogLags:     model.ExogenousLags(),
				AIC:          aic,
				AICc:         aicc,
				BIC:          bic,
				LogLik:       loglik,
				Criterion:    criterion,
			}
		}
		return criterion
	}

	bestSpec := lagSpec{1, false}
	bestSpecCrit := math.Inf(1)

	try := func(spec lagSpec) {
		if spec.k < 1 || spec.k > maxLag {
			return
		}
		if spec.seasonal && !seasonal {
			return
		}
		lags, block := lagsFor(spec)
		crit := evaluate(lags, block)
		if crit < bestSpecCrit {
			bestSpecCrit = crit
			bestSpec = spec
		}
	}

	// One candidate straight from the partial autocorrelations
	var suggested []int
	if target.Width() == 1 {
		if values, err := target.ColumnValues(target.Names[0]); err == nil {
			if pacf := stats.PACFWithConfidence(values, maxLag); pacf != nil {
				suggested = stats.SignificantLags(pacf.Values, pacf.ConfBounds)
				evaluate(suggested, nil)
			}
		}
	}

	if config.Stepwise {
		startSpecs := []lagSpec{{1, false}, {2, false}, {4, false}, {maxLag, false}}
		if seasonal {
			startSpecs = append(startSpecs, lagSpec{1, true}, lagSpec{maxLag, true})
		}
		for _, spec := range startSpecs {
			try(spec)
		}

		// Stepwise refinement around the best contiguous candidate
		improved := true
		for improved {
			improved = false
			prev := bestSpecCrit

			neighbors := []lagSpec{
				{bestSpec.k + 1, bestSpec.seasonal},
				{bestSpec.k - 1, bestSpec.seasonal},
				{bestSpec.k, !bestSpec.seasonal},
			}
			for _, spec := range neighbors {
				try(spec)
			}

			if bestSpecCrit < prev {
				improved = true
			}
		}
	} else {
		// Exhaustive search over the contiguous lattice
		for k := 1; k <= maxLag; k++ {
			try(lagSpec{k, false})
			if seasonal {
				try(lagSpec{k, true})
			}
		}
	}

	if best.Model == nil {
		return nil, errors.New("no lag candidate produced a fitted model")
	}
	best.ModelsEvaluated = modelsEvaluated
	best.SuggestedLags = suggested
	best.Elapsed = time.Since(start)
	return best, nil
}

func criterionName(criterion string) string {
	switch criterion {
	case "aic", "bic":
		return criterion
	default:
		return "aicc"
	}
}

// informationCriteria calculates the Gaussian log-likelihood of the residuals
// and the derived information criteria for a model with k parameters.
func informationCriteria(residuals []float64, k int) (loglik, aic, aicc, bic float64) {
	n := len(residuals)

	sse := 0.0
	for _, r := range residuals {
		sse += r * r
	}
	variance := sse / float64(n)

	if variance > 0 {
		loglik = -float64(n)/2*math.Log(2*math.Pi) - float64(n)/2*math.Log(variance) - sse/(2*variance)
	} else {
		loglik = math.Inf(-1)
	}

	// AIC = -2*loglik + 2*k
	aic = -2*loglik + 2*float64(k)

	// AICc = AIC + 2*k*(k+1)/(n-k-1) - corrected AIC for small sample sizes
	kf := float64(k)
	nf := float64(n)
	if nf-kf-1 > 0 {
		aicc = aic + 2*kf*(kf+1)/(nf-kf-1)
	} else {
		aicc = math.Inf(1)
	}

	// BIC = -2*loglik + k*log(n)
	bic = -2*loglik + kf*math.Log(nf)

	return loglik, aic, aicc, bic
}

// Predict forecasts with the winning model.
func (r *Result) Predict(n int, exog *timeseries.Series) (*timeseries.Series, error) {
	if r.Model == nil {
		return nil, errors.New("no model was selected")
	}
	return r.Model.Predict(n, exog)
}

// Residuals returns the winning model's in-sample residuals.
func (r *Result) Residuals() []float64 {
	if r.Model == nil {
		return nil
	}
	return r.Model.Residuals()
}
