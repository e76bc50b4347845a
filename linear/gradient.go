package linear

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// GradientDescent fits a linear model by batch gradient descent on the mean
// squared error. Columns are scale-normalized internally so the fixed
// learning rate behaves the same across differently sized inputs; the fitted
// coefficients are mapped back to the original scale.
type GradientDescent struct {
	LearningRate  float64 // step size (default 0.01)
	MaxIter       int     // iteration cap (default 1000)
	Tolerance     float64 // stop when the SSE improvement falls below this (default 1e-8)
	WithIntercept bool

	coefs     []float64
	intercept float64
	trained   bool
}

// NewGradientDescent returns a gradient descent estimator with default
// settings and no intercept.
func NewGradientDescent() *GradientDescent {
	return &GradientDescent{
		LearningRate: 0.01,
		MaxIter:      1000,
		Tolerance:    1e-8,
	}
}

// Train runs gradient descent until the SSE stops improving or MaxIter is
// reached.
func (g *GradientDescent) Train(x mat.Matrix, y []float64) error {
	rows, cols := x.Dims()
	if rows == 0 || cols == 0 {
		return errors.New("gradient descent: empty feature matrix")
	}
	if rows != len(y) {
		return fmt.Errorf("gradient descent: %d feature rows but %d labels", rows, len(y))
	}

	lr := g.LearningRate
	if lr <= 0 {
		lr = 0.01
	}
	maxIter := g.MaxIter
	if maxIter <= 0 {
		maxIter = 1000
	}
	tolerance := g.Tolerance
	if tolerance <= 0 {
		tolerance = 1e-8
	}

	// Root-mean-square scales per column and for the labels
	scales := make([]float64, cols)
	for j := 0; j < cols; j++ {
		sum := 0.0
		for i := 0; i < rows; i++ {
			v := x.At(i, j)
			sum += v * v
		}
		scales[j] = math.Sqrt(sum / float64(rows))
		if scales[j] == 0 {
			scales[j] = 1
		}
	}
	ySum := 0.0
	for _, v := range y {
		ySum += v * v
	}
	yScale := math.Sqrt(ySum / float64(rows))
	if yScale == 0 {
		yScale = 1
	}

	xs := make([]float64, rows*cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			xs[i*cols+j] = x.At(i, j) / scales[j]
		}
	}
	ys := make([]float64, rows)
	for i, v := range y {
		ys[i] = v / yScale
	}

	weights := make([]float64, cols)
	bias := 0.0
	residuals := make([]float64, rows)
	prevSSE := math.Inf(1)

	for iter := 0; iter < maxIter; iter++ {
		// Residuals at the current parameters
		sse := 0.0
		for i := 0; i < rows; i++ {
			pred := bias
			for j := 0; j < cols; j++ {
				pred += weights[j] * xs[i*cols+j]
			}
			residuals[i] = ys[i] - pred
			sse += residuals[i] * residuals[i]
		}

		if math.Abs(prevSSE-sse) < tolerance {
			break
		}
		prevSSE = sse

		// Update parameters
		for j := 0; j < cols; j++ {
			grad := 0.0
			for i := 0; i < rows; i++ {
				grad -= 2 * residuals[i] * xs[i*cols+j]
			}
			weights[j] -= lr * grad / float64(rows)
		}
		if g.WithIntercept {
			grad := 0.0
			for i := 0; i < rows; i++ {
				grad -= 2 * residuals[i]
			}
			bias -= lr * grad / float64(rows)
		}
	}

	// Map back to the original scale
	coefs := make([]float64, cols)
	for j := range coefs {
		coefs[j] = weights[j] * yScale / scales[j]
	}
	g.coefs = coefs
	g.intercept = bias * yScale
	g.trained = true
	return nil
}

// Infer returns one prediction per row of x.
func (g *GradientDescent) Infer(x mat.Matrix) ([]float64, error) {
	if !g.trained {
		return nil, errors.New("gradient descent: estimator is not trained")
	}
	_, cols := x.Dims()
	if cols != len(g.coefs) {
		return nil, fmt.Errorf("gradient descent: %d feature columns, model has %d coefficients", cols, len(g.coefs))
	}
	return apply(x, g.coefs, g.intercept), nil
}

// Coefficients returns a copy of the fitted coefficients.
func (g *GradientDescent) Coefficients() []float64 {
	out := make([]float64, len(g.coefs))
	copy(out, g.coefs)
	return out
}

// Intercept returns the fitted intercept, zero when WithIntercept is false.
func (g *GradientDescent) Intercept() float64 {
	return g.intercept
}
