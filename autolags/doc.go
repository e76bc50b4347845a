// Package autolags implements automatic lag selection for regression models.
//
// Search fits one regression model per candidate lag set and keeps the one
// that minimizes an information criterion. Candidates are contiguous sets
// {1..k} up to MaxLag, optionally extended with seasonal lags, plus one set
// suggested by the significant partial autocorrelations of the target.
//
// # Basic Usage
//
// Automatic lag selection:
//
//	config := autolags.DefaultConfig()
//	result, err := autolags.Search(series, nil, config)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Printf("Best lags: %v\n", result.Lags)
//	fmt.Printf("AICc: %.2f, Models evaluated: %d\n",
//	    result.Criterion, result.ModelsEvaluated)
//
//	forecast, _ := result.Predict(10, nil)
//
// # Seasonal Candidates
//
// For seasonal data, add lag candidates at the period and twice the period:
//
//	config := autolags.DefaultConfig()
//	config.Seasonal = true
//	config.SeasonalM = 12 // Monthly data with yearly seasonality
//
//	result, _ := autolags.Search(series, nil, config)
//
// # Exogenous Variables
//
// Exogenous lags apply to every candidate; only the target lag set is
// searched:
//
//	config := autolags.DefaultConfig()
//	config.ExogLags = regression.CurrentOnly()
//
//	result, _ := autolags.Search(series, exog, config)
//	forecast, _ := result.Predict(10, futureExog)
//
// # Search Methods
//
// Two search methods are available:
//   - Stepwise (default): evaluates a handful of starting sets, then walks
//     to neighboring sets while the criterion improves
//   - Exhaustive: evaluates every contiguous set up to MaxLag
//     (set Stepwise=false)
package autolags
