// Package timeseries provides time series data structures and utilities.
//
// This package includes the Series type for representing evenly spaced,
// possibly multivariate time series data, along with functions for data
// loading and manipulation.
//
// # Creating a Series
//
// Create a univariate series from a slice:
//
//	values := []float64{100, 102, 105, 103, 108, 110}
//	series := timeseries.New("price", values)
//
// Control the time axis explicitly:
//
//	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
//	series := timeseries.NewAt("price", start, 24*time.Hour, values)
//
// Build a multivariate series:
//
//	series, err := timeseries.NewMulti(timestamps,
//	    []string{"price", "volume"},
//	    [][]float64{{100, 2000}, {102, 2400}, {105, 1800}},
//	)
//
// # Loading from CSV
//
// Load time series data from CSV files:
//
//	// All columns, time column auto-detected
//	series, err := timeseries.LoadCSV("data.csv", nil)
//
//	// Specific columns
//	opts := timeseries.DefaultCSVOptions()
//	opts.TimeColumn = "date"
//	opts.ValueColumns = []string{"sales", "temperature"}
//	series, err := timeseries.LoadCSV("data.csv", opts)
//
// # Columns
//
// Access columns by name:
//
//	prices, err := series.ColumnValues("price")
//	sub, err := series.Column("price")
//
// # Slicing and Combining
//
// Work with subsets and combinations:
//
//	train := series.Slice(0, 100)
//	recent := series.Tail(30)
//	window := series.SliceTime(from, to)
//
//	// Side-by-side join on shared timestamps
//	joined, err := target.Stack(exog)
//
//	// Extend at the series frequency
//	longer, err := series.AppendValues(111, 113)
package timeseries
