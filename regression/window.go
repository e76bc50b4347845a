package regression

// window is the block of recent observation rows that drives autoregressive
// prediction. It always holds exactly maxLag+1 rows: the seed tail of the
// training data followed by a placeholder for the step being predicted.
// Column 0 is the target, exogenous columns follow in series order. The
// placeholder's target cell stays zero until commit; target lags are
// strictly positive, so it is never read as a feature.
type window struct {
	width int
	rows  [][]float64
}

// newWindow copies the seed rows and appends the first placeholder.
func newWindow(seed [][]float64, width int) *window {
	rows := make([][]float64, 0, len(seed)+1)
	for _, src := range seed {
		row := make([]float64, width)
		copy(row, src)
		rows = append(rows, row)
	}
	rows = append(rows, make([]float64, width))
	return &window{width: width, rows: rows}
}

// size returns the number of rows held, constant across commits.
func (w *window) size() int {
	return len(w.rows)
}

// at returns the row lag steps behind the current step; at(0) is the
// placeholder itself.
func (w *window) at(lag int) []float64 {
	return w.rows[len(w.rows)-1-lag]
}

// stageExog writes the current step's exogenous values into the placeholder
// so lag-0 features can read them before the prediction exists.
func (w *window) stageExog(values []float64) {
	copy(w.rows[len(w.rows)-1][1:], values)
}

// commit finalizes the current step: the prediction lands in the
// placeholder's target cell, the exogenous cells are settled, a fresh
// placeholder is appended and the oldest row drops off.
func (w *window) commit(prediction float64, exog []float64) {
	last := w.rows[len(w.rows)-1]
	last[0] = prediction
	if exog != nil {
		copy(last[1:], exog)
	}
	w.rows = append(w.rows[1:], make([]float64, w.width))
}
