package stats

import (
	"math"
	"testing"
)

func ar1(n int, phi float64) []float64 {
	values := make([]float64, n)
	for i := 1; i < n; i++ {
		values[i] = phi*values[i-1] + (float64(i%10)-5)/10
	}
	return values
}

// noiseSequence returns a deterministic, approximately uncorrelated sequence
// in [-0.5, 0.5) from a linear congruential generator.
func noiseSequence(n int, seed uint32) []float64 {
	values := make([]float64, n)
	state := seed
	for i := range values {
		state = state*1664525 + 1013904223
		values[i] = float64(state)/float64(1<<32) - 0.5
	}
	return values
}

func TestACF(t *testing.T) {
	acf := ACF(ar1(100, 0.8), 10)
	if acf == nil {
		t.Fatal("ACF returned nil")
	}
	if len(acf) != 11 {
		t.Fatalf("Expected 11 values, got %d", len(acf))
	}

	// ACF at lag 0 should be 1
	if math.Abs(acf[0]-1.0) > 1e-10 {
		t.Errorf("ACF at lag 0 should be 1, got %f", acf[0])
	}

	// ACF values should generally decay for AR(1)
	for i := 1; i < len(acf)-1; i++ {
		if math.Abs(acf[i]) > math.Abs(acf[i-1])+0.1 {
			t.Logf("ACF may not be decaying properly at lag %d", i)
		}
	}
}

func TestACFUncorrelated(t *testing.T) {
	acf := ACF(noiseSequence(512, 12345), 5)

	if math.Abs(acf[0]-1.0) > 1e-10 {
		t.Errorf("ACF at lag 0 should be 1, got %f", acf[0])
	}
	for k := 1; k <= 5; k++ {
		if math.Abs(acf[k]) > 0.15 {
			t.Errorf("Expected near-zero autocorrelation at lag %d, got %f", k, acf[k])
		}
	}
}

func TestACFKnownValue(t *testing.T) {
	acf := ACF([]float64{1, 2, 3, 4}, 1)
	if acf == nil {
		t.Fatal("ACF returned nil")
	}
	// Mean 2.5, variance sum 5, lag-1 sum 1.25
	if math.Abs(acf[1]-0.25) > 1e-10 {
		t.Errorf("Expected ACF at lag 1 to be 0.25, got %f", acf[1])
	}
}

func TestACFDegenerate(t *testing.T) {
	if ACF(nil, 5) != nil {
		t.Error("Expected nil for empty input")
	}
	if ACF([]float64{3, 3, 3, 3}, 2) != nil {
		t.Error("Expected nil for constant input")
	}

	// maxLag is clamped to n-1
	acf := ACF([]float64{1, 2, 1, 3, 1, 4}, 50)
	if len(acf) != 6 {
		t.Errorf("Expected maxLag clamped to 5, got %d values", len(acf))
	}
}

func TestPACF(t *testing.T) {
	pacf := PACF(ar1(100, 0.7), 10)
	if pacf == nil {
		t.Fatal("PACF returned nil")
	}

	// PACF at lag 0 should be 1
	if math.Abs(pacf[0]-1.0) > 1e-10 {
		t.Errorf("PACF at lag 0 should be 1, got %f", pacf[0])
	}

	// For AR(1), PACF should be strong at lag 1 and drop off after
	if math.Abs(pacf[1]) < 0.3 {
		t.Logf("PACF at lag 1 seems low for AR(1) with phi=0.7: %f", pacf[1])
	}
}

func TestPACFCutoff(t *testing.T) {
	// AR(1) driven by uncorrelated noise: the partial autocorrelation
	// should vanish past lag 1
	noise := noiseSequence(512, 99991)
	values := make([]float64, len(noise))
	for i := 1; i < len(values); i++ {
		values[i] = 0.7*values[i-1] + noise[i]
	}

	pacf := PACF(values, 6)
	if pacf[1] < 0.5 {
		t.Errorf("Expected a strong lag-1 partial autocorrelation, got %f", pacf[1])
	}
	for k := 2; k <= 6; k++ {
		if math.Abs(pacf[k]) > 0.2 {
			t.Errorf("Expected the partial autocorrelation to cut off at lag %d, got %f", k, pacf[k])
		}
	}
}

func TestACFWithConfidence(t *testing.T) {
	values := make([]float64, 100)
	for i := range values {
		values[i] = float64(i) + math.Sin(float64(i)/10)
	}

	result := ACFWithConfidence(values, 20)
	if result == nil {
		t.Fatal("ACFWithConfidence returned nil")
	}

	// Confidence bounds should be approximately 1.96/sqrt(n)
	expected := 1.96 / math.Sqrt(100)
	if math.Abs(result.ConfBounds-expected) > 0.01 {
		t.Errorf("Expected confidence bounds ~%f, got %f", expected, result.ConfBounds)
	}
	for i, lag := range result.Lags {
		if lag != i {
			t.Fatalf("Expected lag %d at position %d, got %d", i, i, lag)
		}
	}
}

func TestPACFWithConfidence(t *testing.T) {
	result := PACFWithConfidence(ar1(100, 0.7), 10)
	if result == nil {
		t.Fatal("PACFWithConfidence returned nil")
	}
	if len(result.Values) != 11 {
		t.Errorf("Expected 11 values, got %d", len(result.Values))
	}
	if PACFWithConfidence([]float64{1, 1, 1}, 2) != nil {
		t.Error("Expected nil for constant input")
	}
}

func TestSignificantLags(t *testing.T) {
	values := []float64{1.0, 0.5, 0.3, 0.1, 0.05, -0.2, -0.5}
	significant := SignificantLags(values, 0.15)

	// Lags 1, 2, 5, 6 exceed the bound; lag 0 is skipped
	expected := []int{1, 2, 5, 6}
	if len(significant) != len(expected) {
		t.Fatalf("Expected %d significant lags, got %d", len(expected), len(significant))
	}
	for i := range expected {
		if significant[i] != expected[i] {
			t.Errorf("Expected lag %d, got %d", expected[i], significant[i])
		}
	}
}

func TestLjungBox(t *testing.T) {
	// Strongly autocorrelated series should fail the test decisively
	autocorrelated := make([]float64, 100)
	for i := 1; i < 100; i++ {
		autocorrelated[i] = 0.9*autocorrelated[i-1] + float64(i%7-3)/10
	}

	result := LjungBox(autocorrelated, 10, 0)
	if result == nil {
		t.Fatal("LjungBox returned nil")
	}
	t.Logf("Ljung-Box - Q: %f, P-Value: %f, DOF: %d", result.Statistic, result.PValue, result.DOF)

	if result.Statistic <= 0 {
		t.Errorf("Expected positive Q statistic, got %f", result.Statistic)
	}
	if result.PValue > 0.01 {
		t.Errorf("Expected rejection for autocorrelated data, got p=%f", result.PValue)
	}
	if result.DOF != 10 {
		t.Errorf("Expected 10 degrees of freedom, got %d", result.DOF)
	}
}

func TestLjungBoxDegreesOfFreedom(t *testing.T) {
	values := ar1(50, 0.5)

	result := LjungBox(values, 10, 3)
	if result == nil {
		t.Fatal("LjungBox returned nil")
	}
	if result.DOF != 7 {
		t.Errorf("Expected 7 degrees of freedom, got %d", result.DOF)
	}

	// fitdf at or above lags floors the degrees of freedom at 1
	result = LjungBox(values, 4, 10)
	if result == nil {
		t.Fatal("LjungBox returned nil")
	}
	if result.DOF != 1 {
		t.Errorf("Expected 1 degree of freedom, got %d", result.DOF)
	}
}

func TestLjungBoxDegenerate(t *testing.T) {
	if LjungBox([]float64{1, 2, 3}, 2, 0) != nil {
		t.Error("Expected nil for fewer than 10 observations")
	}
	if LjungBox(ar1(50, 0.5), 0, 0) != nil {
		t.Error("Expected nil for zero lags")
	}
	constant := make([]float64, 20)
	if LjungBox(constant, 5, 0) != nil {
		t.Error("Expected nil for constant input")
	}
}

func TestBoxPierce(t *testing.T) {
	values := ar1(100, 0.8)

	bp := BoxPierce(values, 10, 0)
	lb := LjungBox(values, 10, 0)
	if bp == nil || lb == nil {
		t.Fatal("Expected both tests to run")
	}
	t.Logf("Box-Pierce - Q: %f, P-Value: %f, DOF: %d", bp.Statistic, bp.PValue, bp.DOF)

	// The Ljung-Box correction always inflates the statistic
	if bp.Statistic >= lb.Statistic {
		t.Errorf("Expected Box-Pierce Q below Ljung-Box Q, got %f >= %f", bp.Statistic, lb.Statistic)
	}
	if bp.DOF != lb.DOF {
		t.Errorf("Expected matching degrees of freedom, got %d and %d", bp.DOF, lb.DOF)
	}
}

func TestDurbinWatson(t *testing.T) {
	tests := []struct {
		name      string
		residuals []float64
		expected  float64
	}{
		{
			name:      "negative autocorrelation",
			residuals: []float64{1, -1, 1, -1, 1, -1, 1, -1},
			expected:  3.5,
		},
		{
			name:      "positive autocorrelation",
			residuals: []float64{1, 1, 1, 1, -1, -1, -1, -1},
			expected:  0.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := DurbinWatson(tt.residuals)
			if result == nil {
				t.Fatal("DurbinWatson returned nil")
			}
			if math.Abs(result.Statistic-tt.expected) > 1e-10 {
				t.Errorf("Expected %f, got %f", tt.expected, result.Statistic)
			}
		})
	}
}

func TestDurbinWatsonDegenerate(t *testing.T) {
	if DurbinWatson([]float64{1}) != nil {
		t.Error("Expected nil for fewer than 2 residuals")
	}
	if DurbinWatson([]float64{0, 0, 0}) != nil {
		t.Error("Expected nil for all-zero residuals")
	}
}
