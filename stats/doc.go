// Package stats provides autocorrelation analysis and diagnostic tests for
// time series values.
//
// Functions take plain float64 slices, so they work directly on model
// residuals as well as raw observations.
//
// # Autocorrelation Functions
//
// Analyze autocorrelation patterns:
//
//	// Autocorrelation Function
//	acf := stats.ACF(values, 20)
//
//	// Partial Autocorrelation Function
//	pacf := stats.PACF(values, 20)
//
//	// ACF with confidence bounds
//	acfResult := stats.ACFWithConfidence(values, 20)
//	significant := stats.SignificantLags(acfResult.Values, acfResult.ConfBounds)
//
// # Residual Diagnostics
//
// Test residuals for leftover autocorrelation:
//
//	// Ljung-Box test
//	lb := stats.LjungBox(model.Residuals(), 10, len(model.FeatureNames()))
//	if lb.PValue > 0.05 {
//	    // Residuals are white noise (good)
//	}
//
//	// Box-Pierce test
//	bp := stats.BoxPierce(model.Residuals(), 10, len(model.FeatureNames()))
//
//	// Durbin-Watson test
//	dw := stats.DurbinWatson(model.Residuals())
package stats
