// Package linear provides linear regression estimators for use with the
// regression forecaster.
//
// Both estimators expose the same two-method surface: Train fits the model
// on a feature matrix and a label vector, Infer returns one prediction per
// feature row. They can be used standalone or plugged into
// regression.Options.Model.
//
// # Least Squares
//
// Ordinary least squares, the default estimator of the forecaster:
//
//	ls := linear.NewLeastSquares()
//	err := ls.Train(features, labels)
//	preds, err := ls.Infer(features)
//
// The normal equations are used when X'X is invertible; singular systems
// fall back to an SVD solve that returns the minimum-norm solution. Set
// WithIntercept to add a constant term:
//
//	ls := &linear.LeastSquares{WithIntercept: true}
//
// # Gradient Descent
//
// An iterative alternative for very wide feature tables or as a base for
// regularized variants:
//
//	gd := linear.NewGradientDescent()
//	gd.LearningRate = 0.05
//	gd.MaxIter = 5000
//	err := gd.Train(features, labels)
package linear
