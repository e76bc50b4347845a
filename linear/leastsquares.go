// Package linear provides linear regression estimators.
package linear

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// LeastSquares fits a linear model by ordinary least squares. The zero value
// fits without an intercept; set WithIntercept to include a constant term.
type LeastSquares struct {
	WithIntercept bool

	coefs     []float64
	intercept float64
	trained   bool
}

// NewLeastSquares returns an ordinary least squares estimator without an
// intercept.
func NewLeastSquares() *LeastSquares {
	return &LeastSquares{}
}

// Train solves min ||y - Xb|| over the coefficient vector b.
func (l *LeastSquares) Train(x mat.Matrix, y []float64) error {
	rows, cols := x.Dims()
	if rows == 0 || cols == 0 {
		return errors.New("least squares: empty feature matrix")
	}
	if rows != len(y) {
		return fmt.Errorf("least squares: %d feature rows but %d labels", rows, len(y))
	}

	beta, err := solveLeastSquares(designMatrix(x, l.WithIntercept), y)
	if err != nil {
		return err
	}

	if l.WithIntercept {
		l.intercept = beta[0]
		l.coefs = beta[1:]
	} else {
		l.intercept = 0
		l.coefs = beta
	}
	l.trained = true
	return nil
}

// Infer returns one prediction per row of x.
func (l *LeastSquares) Infer(x mat.Matrix) ([]float64, error) {
	if !l.trained {
		return nil, errors.New("least squares: estimator is not trained")
	}
	_, cols := x.Dims()
	if cols != len(l.coefs) {
		return nil, fmt.Errorf("least squares: %d feature columns, model has %d coefficients", cols, len(l.coefs))
	}
	return apply(x, l.coefs, l.intercept), nil
}

// Coefficients returns a copy of the fitted coefficients.
func (l *LeastSquares) Coefficients() []float64 {
	out := make([]float64, len(l.coefs))
	copy(out, l.coefs)
	return out
}

// Intercept returns the fitted intercept, zero when WithIntercept is false.
func (l *LeastSquares) Intercept() float64 {
	return l.intercept
}

// designMatrix copies x, prepending a column of ones when an intercept is
// requested.
func designMatrix(x mat.Matrix, withIntercept bool) *mat.Dense {
	if !withIntercept {
		return mat.DenseCopyOf(x)
	}
	rows, cols := x.Dims()
	out := mat.NewDense(rows, cols+1, nil)
	for i := 0; i < rows; i++ {
		out.Set(i, 0, 1)
		for j := 0; j < cols; j++ {
			out.Set(i, j+1, x.At(i, j))
		}
	}
	return out
}

// solveLeastSquares solves X*beta ~ y. The normal equations are tried first;
// when X'X is singular or badly conditioned it falls back to an SVD solve,
// which yields the minimum-norm least squares solution.
func solveLeastSquares(x *mat.Dense, y []float64) ([]float64, error) {
	_, m := x.Dims()
	yv := mat.NewVecDense(len(y), append([]float64(nil), y...))

	var xtx mat.Dense
	xtx.Mul(x.T(), x)

	var xtxInv mat.Dense
	if err := xtxInv.Inverse(&xtx); err == nil {
		var xty mat.VecDense
		xty.MulVec(x.T(), yv)
		var beta mat.VecDense
		beta.MulVec(&xtxInv, &xty)
		out := make([]float64, m)
		for i := range out {
			out[i] = beta.AtVec(i)
		}
		return out, nil
	}

	var svd mat.SVD
	if ok := svd.Factorize(x, mat.SVDFullU|mat.SVDFullV); !ok {
		return nil, errors.New("least squares: SVD factorization failed")
	}
	rank := svd.Rank(1e-12)
	if rank == 0 {
		return make([]float64, m), nil
	}

	var beta mat.Dense
	svd.SolveTo(&beta, yv, rank)
	out := make([]float64, m)
	mat.Col(out, 0, &beta)
	return out, nil
}

// apply computes x*coefs + intercept for every row of x.
func apply(x mat.Matrix, coefs []float64, intercept float64) []float64 {
	rows, _ := x.Dims()
	if rows == 0 {
		return []float64{}
	}
	var pred mat.VecDense
	pred.MulVec(x, mat.NewVecDense(len(coefs), coefs))
	out := make([]float64, rows)
	for i := range out {
		out[i] = pred.AtVec(i)
	}
	floats.AddConst(intercept, out)
	return out
}
