package regression

import "testing"

func TestWindowSeeding(t *testing.T) {
	seed := [][]float64{{1, 10}, {2, 20}}
	w := newWindow(seed, 2)

	if w.size() != 3 {
		t.Fatalf("Expected window of 3 rows, got %d", w.size())
	}

	// at(0) is the placeholder, zero-filled
	placeholder := w.at(0)
	if placeholder[0] != 0 || placeholder[1] != 0 {
		t.Errorf("Expected zero placeholder, got %v", placeholder)
	}
	if got := w.at(1); got[0] != 2 || got[1] != 20 {
		t.Errorf("Expected newest seed row at lag 1, got %v", got)
	}
	if got := w.at(2); got[0] != 1 || got[1] != 10 {
		t.Errorf("Expected oldest seed row at lag 2, got %v", got)
	}

	// The seed is copied, not shared
	seed[1][0] = 99
	if w.at(1)[0] != 2 {
		t.Errorf("Expected window to own its rows")
	}
}

func TestWindowStageExog(t *testing.T) {
	w := newWindow([][]float64{{1, 10, 100}}, 3)

	w.stageExog([]float64{7, 8})
	placeholder := w.at(0)
	if placeholder[0] != 0 {
		t.Errorf("Expected target cell to stay zero after staging, got %f", placeholder[0])
	}
	if placeholder[1] != 7 || placeholder[2] != 8 {
		t.Errorf("Expected staged exogenous values [7 8], got %v", placeholder[1:])
	}
}

func TestWindowCommit(t *testing.T) {
	w := newWindow([][]float64{{1, 10}, {2, 20}}, 2)

	w.commit(3, []float64{30})

	if w.size() != 3 {
		t.Fatalf("Expected window length to stay 3, got %d", w.size())
	}
	if got := w.at(1); got[0] != 3 || got[1] != 30 {
		t.Errorf("Expected committed row at lag 1, got %v", got)
	}
	if got := w.at(2); got[0] != 2 || got[1] != 20 {
		t.Errorf("Expected previous newest row at lag 2, got %v", got)
	}
	if got := w.at(0); got[0] != 0 || got[1] != 0 {
		t.Errorf("Expected fresh zero placeholder, got %v", got)
	}

	// The oldest row {1, 10} is gone: commit again and check the shift
	w.commit(4, []float64{40})
	if got := w.at(2); got[0] != 3 || got[1] != 30 {
		t.Errorf("Expected row committed two steps ago at lag 2, got %v", got)
	}
}

func TestWindowWithoutSeed(t *testing.T) {
	// maxLag of zero: only the placeholder exists and commits replace it
	w := newWindow([][]float64{}, 2)

	if w.size() != 1 {
		t.Fatalf("Expected single-row window, got %d", w.size())
	}

	w.stageExog([]float64{5})
	if got := w.at(0); got[1] != 5 {
		t.Errorf("Expected staged exogenous value, got %v", got)
	}

	w.commit(1, []float64{5})
	if w.size() != 1 {
		t.Errorf("Expected window length to stay 1, got %d", w.size())
	}
	if got := w.at(0); got[0] != 0 || got[1] != 0 {
		t.Errorf("Expected fresh placeholder with no carry-over, got %v", got)
	}
}
