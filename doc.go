// Package goregress provides lagged-feature regression forecasting for time series.
//
// GoRegress turns any pointwise regression estimator into a time series
// forecaster. Lagged copies of the target series, and optionally of exogenous
// series, become the columns of a flat feature table; the estimator is trained
// on that table and then rolled forward autoregressively, feeding each
// prediction back into the lag window to produce the next one.
//
// # Features
//
//   - Tabularization of time series into lagged feature matrices
//   - Autoregressive multi-step forecasting with any estimator
//   - Exogenous variables with arbitrary non-negative lags, including lag 0
//   - Ordinary least squares and gradient descent estimators
//   - Automatic lag selection using information criteria
//   - Residual diagnostics (ACF, PACF, Ljung-Box, Durbin-Watson)
//   - Forecast accuracy metrics (RMSE, MAE, MAPE, R-squared)
//
// # Quick Start
//
// Fit a regression forecaster on lags 1 and 2 of the target:
//
//	series := timeseries.New("sales", values)
//	model, _ := regression.New(&regression.Options{Lags: regression.Lags(1, 2)})
//	model.Fit(series, nil)
//	forecast, _ := model.Predict(10, nil)
//
// Let the library choose the lag set:
//
//	config := autolags.DefaultConfig()
//	result, _ := autolags.Search(series, nil, config)
//	forecast, _ := result.Model.Predict(10, nil)
//
// # Packages
//
// The library is organized into the following packages:
//
//   - regression: Lag-feature building and autoregressive forecasting
//   - linear: Least squares and gradient descent estimators
//   - autolags: Automatic lag selection
//   - stats: Autocorrelation analysis and residual diagnostics
//   - metrics: Forecast accuracy metrics
//   - timeseries: Time series data structures and utilities
//
// # References
//
//   - Hyndman, R.J., & Athanasopoulos, G. (2021). Forecasting: Principles and Practice
//   - Hamilton, J. D. (1994). Time Series Analysis
package goregress
