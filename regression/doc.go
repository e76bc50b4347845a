// Package regression implements lagged-feature regression forecasting.
//
// A Model wraps a pointwise estimator and turns it into a time series
// forecaster. At fit time, lagged copies of the target series (and
// optionally of exogenous series) become the columns of a flat feature
// table; rows where any configured lag is undefined are dropped. At predict
// time the fitted estimator is rolled forward autoregressively: each
// prediction is appended to a window of recent values and becomes a feature
// for the following step.
//
// # Fitting and Forecasting
//
// Predict the next values of a series from its own recent past:
//
//	model, err := regression.New(&regression.Options{
//	    Lags: regression.Lags(1, 2, 7),
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := model.Fit(series, nil); err != nil {
//	    log.Fatal(err)
//	}
//	forecast, err := model.Predict(14, nil)
//
// The forecast is a univariate series named after the target, starting one
// frequency step after the training series ends.
//
// # Exogenous Variables
//
// Known covariates enter through a second, possibly multivariate series.
// Their offsets may include 0, the value at the step being predicted:
//
//	model, _ := regression.New(&regression.Options{
//	    Lags:     regression.Lags(1, 2),
//	    ExogLags: regression.Lags(0, 1),
//	})
//	model.Fit(sales, weather)
//
//	// Future exogenous values must start right after the training data
//	forecast, err := model.Predict(7, weatherForecast)
//
// # Estimators
//
// Any type with Train and Infer can drive the forecaster; the default is
// ordinary least squares without an intercept:
//
//	model, _ := regression.New(&regression.Options{
//	    Lags:  regression.LagsUpTo(4),
//	    Model: linear.NewGradientDescent(),
//	})
//
// # Errors
//
// Validation failures wrap ErrConfiguration and using an unfitted model
// wraps ErrNotFitted, both matchable with errors.Is. Errors returned by the
// estimator itself pass through unchanged.
package regression
