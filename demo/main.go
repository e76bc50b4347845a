// Package main demonstrates lagged regression forecasting on synthetic data.
package main

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"strings"
	"time"

	"github.com/sartorproj/goregress/autolags"
	"github.com/sartorproj/goregress/linear"
	"github.com/sartorproj/goregress/metrics"
	"github.com/sartorproj/goregress/regression"
	"github.com/sartorproj/goregress/stats"
	"github.com/sartorproj/goregress/timeseries"
)

// Dataset defines a synthetic series to analyze
type Dataset struct {
	Name        string // Display name
	Description string // Brief description
	Period      int    // Seasonal period (0 = non-seasonal)
	N           int    // Number of observations
	Generate    func(n int) (target, exog *timeseries.Series)
}

// ForecastResult holds model results for JSON export
type ForecastResult struct {
	ModelName       string    `json:"model_name"`
	Lags            string    `json:"lags"`
	RMSE            float64   `json:"rmse"`
	MAE             float64   `json:"mae"`
	MAPE            float64   `json:"mape"`
	R2              float64   `json:"r2"`
	AICc            float64   `json:"aicc,omitempty"`
	Forecasts       []float64 `json:"forecasts"`
	ModelsEvaluated int       `json:"models_evaluated,omitempty"`
	SuggestedLags   []int     `json:"suggested_lags,omitempty"`
}

// DatasetResult holds analysis results for a dataset
type DatasetResult struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	NObs        int                    `json:"n_obs"`
	TrainData   []float64              `json:"train_data"`
	TestData    []float64              `json:"test_data"`
	Models      []ForecastResult       `json:"models"`
	ACF         []float64              `json:"acf"`
	PACF        []float64              `json:"pacf"`
	Diagnostics map[string]interface{} `json:"diagnostics"`
}

// OutputData holds all results for visualization
type OutputData struct {
	Datasets []DatasetResult `json:"datasets"`
}

func main() {
	fmt.Println(strings.Repeat("=", 80))
	fmt.Println("GoRegress Demonstration - Lagged Regression Forecasting")
	fmt.Println(strings.Repeat("=", 80))

	datasets := []Dataset{
		{Name: "Trending Demand", Description: "Daily demand with trend and weekly ripple", N: 160, Generate: trendingDemand},
		{Name: "Quarterly Production", Description: "Trending production with period-4 seasonality", Period: 4, N: 120, Generate: quarterlyProduction},
		{Name: "Mean-Reverting Price", Description: "AR(1) price oscillating around a level", N: 200, Generate: meanRevertingPrice},
		{Name: "Promoted Sales", Description: "Sales driven by current and lagged ad spend", N: 140, Generate: promotedSales},
	}

	output := OutputData{Datasets: []DatasetResult{}}

	for i, ds := range datasets {
		fmt.Printf("\n%s\n[%d/%d] %s\n%s\n", strings.Repeat("=", 80), i+1, len(datasets), ds.Name, strings.Repeat("=", 80))
		output.Datasets = append(output.Datasets, analyze(ds))
	}

	fmt.Printf("\n%s\nEXPORTING RESULTS\n%s\n", strings.Repeat("=", 80), strings.Repeat("=", 80))

	if data, err := json.MarshalIndent(output, "", "  "); err == nil {
		os.WriteFile("forecast_results.json", data, 0644)
		fmt.Printf("Exported %d datasets to forecast_results.json\n", len(output.Datasets))
	}
	fmt.Println(strings.Repeat("=", 80))
}

// analyze fits the fixed model lineup plus an automatic lag search on one
// dataset and collects out-of-sample accuracy for each.
func analyze(ds Dataset) DatasetResult {
	target, exog := ds.Generate(ds.N)
	fmt.Printf("   Generated %d observations of %s\n", target.Len(), target.Names[0])

	// Train/test split
	testSize := calculateTestSize(ds.N, ds.Period)
	trainSize := ds.N - testSize
	train := target.Slice(0, trainSize)
	test := target.Slice(trainSize, ds.N)
	fmt.Printf("   Train: %d, Test: %d\n", trainSize, testSize)

	var trainExog, futureExog *timeseries.Series
	if exog != nil {
		trainExog = exog.Slice(0, trainSize)
		futureExog = exog.Slice(trainSize, ds.N)
	}

	trainValues, _ := train.ColumnValues(train.Names[0])
	testValues, _ := test.ColumnValues(test.Names[0])

	result := DatasetResult{
		Name:        ds.Name,
		Description: ds.Description,
		NObs:        ds.N,
		TrainData:   trainValues,
		TestData:    testValues,
		Models:      []ForecastResult{},
		Diagnostics: make(map[string]interface{}),
	}

	// ACF/PACF of the training window for visualization
	maxLag := min(24, trainSize/2)
	result.ACF = stats.ACF(trainValues, maxLag)
	result.PACF = stats.PACF(trainValues, maxLag)

	// Naive baseline: repeat the last value, or the last full season
	naive := naiveForecast(trainValues, testSize, ds.Period)
	result.Models = append(result.Models, scoreForecast(baselineName(ds.Period), "-", testValues, naive))
	fmt.Printf("   %-22s RMSE=%.4f\n", baselineName(ds.Period), metrics.RMSE(testValues, naive))

	// Fixed model lineup
	for _, mc := range modelLineup(ds, exog != nil) {
		model, err := regression.New(mc.opts)
		if err != nil {
			continue
		}

		var fitExog, predExog *timeseries.Series
		if !mc.opts.ExogLags.IsZero() {
			fitExog, predExog = trainExog, futureExog
		}

		if err := model.Fit(train, fitExog); err != nil {
			fmt.Printf("   %s: %v\n", mc.name, err)
			continue
		}
		forecast, err := model.Predict(testSize, predExog)
		if err != nil {
			fmt.Printf("   %s: %v\n", mc.name, err)
			continue
		}

		preds, _ := forecast.ColumnValues(forecast.Names[0])
		fr := scoreForecast(mc.name, lagsLabel(model), testValues, preds)
		fmt.Printf("   %-22s RMSE=%.4f MAE=%.4f MAPE=%.2f%%\n", mc.name, fr.RMSE, fr.MAE, fr.MAPE)
		result.Models = append(result.Models, fr)
	}

	// Automatic lag selection
	cfg := autolags.DefaultConfig()
	if ds.Period > 0 {
		cfg.Seasonal = true
		cfg.SeasonalM = ds.Period
	}
	if exog != nil {
		cfg.ExogLags = regression.Lags(0, 1)
	}

	if auto, err := autolags.Search(train, trainExog, cfg); err == nil {
		if forecast, err := auto.Predict(testSize, futureExog); err == nil {
			preds, _ := forecast.ColumnValues(forecast.Names[0])
			fr := scoreForecast("Auto", lagsLabel(auto.Model), testValues, preds)
			fr.AICc = auto.AICc
			fr.ModelsEvaluated = auto.ModelsEvaluated
			fr.SuggestedLags = auto.SuggestedLags
			fmt.Printf("   %-22s RMSE=%.4f (lags %v, %d models in %v)\n", "Auto", fr.RMSE, auto.Lags, auto.ModelsEvaluated, auto.Elapsed)
			result.Models = append(result.Models, fr)

			csvName := forecastFileName(ds.Name)
			if err := timeseries.SaveCSV(forecast, csvName, true); err == nil {
				fmt.Printf("   Saved forecast to %s\n", csvName)
			}

			// Residual diagnostics for the selected model
			residuals := auto.Residuals()
			if lb := stats.LjungBox(residuals, 10, len(auto.Model.FeatureNames())); lb != nil {
				result.Diagnostics["ljung_box_pvalue"] = lb.PValue
				fmt.Printf("   Ljung-Box p=%.4f (residual autocorrelation %s)\n", lb.PValue, verdict(lb.PValue))
			}
			if dw := stats.DurbinWatson(residuals); dw != nil {
				result.Diagnostics["durbin_watson"] = dw.Statistic
			}
		}
	} else {
		fmt.Printf("   Auto: %v\n", err)
	}

	return result
}

type modelConfig struct {
	name string
	opts *regression.Options
}

// modelLineup returns the fixed configurations to compare on a dataset.
func modelLineup(ds Dataset, hasExog bool) []modelConfig {
	configs := []modelConfig{
		{"AR(1)", &regression.Options{Lags: regression.Lags(1)}},
		{"AR(4)", &regression.Options{Lags: regression.LagsUpTo(4)}},
		{"AR(4) gradient", &regression.Options{
			Lags:  regression.LagsUpTo(4),
			Model: &linear.GradientDescent{MaxIter: 20000},
		}},
	}

	if ds.Period > 0 {
		configs = append(configs, modelConfig{
			fmt.Sprintf("Seasonal[%d]", ds.Period),
			&regression.Options{Lags: regression.Lags(1, 2, ds.Period, 2*ds.Period)},
		})
	}
	if hasExog {
		configs = append(configs, modelConfig{
			"AR(1)+exog",
			&regression.Options{Lags: regression.Lags(1), ExogLags: regression.Lags(0, 1)},
		})
	}
	return configs
}

// scoreForecast packages accuracy metrics for one forecast.
func scoreForecast(name, lags string, actual, predicted []float64) ForecastResult {
	return ForecastResult{
		ModelName: name,
		Lags:      lags,
		RMSE:      metrics.RMSE(actual, predicted),
		MAE:       metrics.MAE(actual, predicted),
		MAPE:      metrics.MAPE(actual, predicted),
		R2:        metrics.R2(actual, predicted),
		Forecasts: predicted,
	}
}

// naiveForecast repeats the last observation, or the last full season when a
// period is given.
func naiveForecast(train []float64, steps, period int) []float64 {
	out := make([]float64, steps)
	for i := range out {
		if period > 0 && len(train) >= period {
			out[i] = train[len(train)-period+i%period]
		} else {
			out[i] = train[len(train)-1]
		}
	}
	return out
}

func baselineName(period int) string {
	if period > 0 {
		return "Seasonal naive"
	}
	return "Naive"
}

// forecastFileName derives the per-dataset forecast CSV name.
func forecastFileName(name string) string {
	return "forecast_" + strings.ReplaceAll(strings.ToLower(name), " ", "_") + ".csv"
}

func lagsLabel(m *regression.Model) string {
	if len(m.ExogenousLags()) > 0 {
		return fmt.Sprintf("%v exog%v", m.TargetLags(), m.ExogenousLags())
	}
	return fmt.Sprintf("%v", m.TargetLags())
}

func verdict(pValue float64) string {
	if pValue > 0.05 {
		return "not detected"
	}
	return "detected"
}

// calculateTestSize determines an appropriate test set size
func calculateTestSize(n, period int) int {
	testSize := n / 5
	if period > 0 {
		testSize = max(testSize, period)
	}
	return max(min(testSize, 30), 3)
}

func demoStart() time.Time {
	return time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
}

func trendingDemand(n int) (*timeseries.Series, *timeseries.Series) {
	values := make([]float64, n)
	for i := range values {
		values[i] = 50 + 0.3*float64(i) + 2*math.Sin(2*math.Pi*float64(i)/7) + float64(i%5-2)/4
	}
	return timeseries.NewAt("demand", demoStart(), 24*time.Hour, values), nil
}

func quarterlyProduction(n int) (*timeseries.Series, *timeseries.Series) {
	values := make([]float64, n)
	for i := range values {
		values[i] = 100 + 0.5*float64(i) + 12*math.Sin(2*math.Pi*float64(i)/4) + float64(i%7-3)/5
	}
	return timeseries.NewAt("production", demoStart(), 24*time.Hour, values), nil
}

func meanRevertingPrice(n int) (*timeseries.Series, *timeseries.Series) {
	values := make([]float64, n)
	values[0] = 90
	for i := 1; i < n; i++ {
		values[i] = 80 + 0.7*(values[i-1]-80) + float64(i%9-4)/4
	}
	return timeseries.NewAt("price", demoStart(), 24*time.Hour, values), nil
}

func promotedSales(n int) (*timeseries.Series, *timeseries.Series) {
	spend := make([]float64, n)
	sales := make([]float64, n)
	for i := range spend {
		spend[i] = 10 + 6*math.Sin(2*math.Pi*float64(i)/14) + float64(i%4)
	}
	sales[0] = 20 + 3*spend[0]
	for i := 1; i < n; i++ {
		sales[i] = 20 + 3*spend[i] - 1.5*spend[i-1] + float64(i%6)/5 - 0.5
	}
	return timeseries.NewAt("sales", demoStart(), 24*time.Hour, sales),
		timeseries.NewAt("adspend", demoStart(), 24*time.Hour, spend)
}
