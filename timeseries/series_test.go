package timeseries

import (
	"math"
	"testing"
	"time"
)

func dailyStart() time.Time {
	return time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
}

func TestNew(t *testing.T) {
	values := []float64{1, 2, 3, 4, 5}
	s := New("y", values)

	if s.Len() != 5 {
		t.Errorf("Expected length 5, got %d", s.Len())
	}
	if s.Width() != 1 {
		t.Errorf("Expected width 1, got %d", s.Width())
	}
	if s.Names[0] != "y" {
		t.Errorf("Expected column name y, got %s", s.Names[0])
	}
	if s.Freq() != time.Hour {
		t.Errorf("Expected hourly frequency, got %v", s.Freq())
	}

	for i, row := range s.Values {
		if row[0] != values[i] {
			t.Errorf("Expected value %f at index %d, got %f", values[i], i, row[0])
		}
	}
}

func TestNewAt(t *testing.T) {
	start := dailyStart()
	s := NewAt("y", start, 24*time.Hour, []float64{1, 2, 3})

	if !s.StartTime().Equal(start) {
		t.Errorf("Expected start %v, got %v", start, s.StartTime())
	}
	if !s.EndTime().Equal(start.Add(48 * time.Hour)) {
		t.Errorf("Expected end %v, got %v", start.Add(48*time.Hour), s.EndTime())
	}
	if s.Freq() != 24*time.Hour {
		t.Errorf("Expected daily frequency, got %v", s.Freq())
	}
}

func TestNewMulti(t *testing.T) {
	start := dailyStart()
	timestamps := []time.Time{start, start.Add(time.Hour), start.Add(2 * time.Hour)}

	s, err := NewMulti(timestamps, []string{"a", "b"}, [][]float64{{1, 10}, {2, 20}, {3, 30}})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if s.Len() != 3 || s.Width() != 2 {
		t.Errorf("Expected 3x2 series, got %dx%d", s.Len(), s.Width())
	}
}

func TestNewMultiErrors(t *testing.T) {
	start := dailyStart()
	two := []time.Time{start, start.Add(time.Hour)}

	tests := []struct {
		name       string
		timestamps []time.Time
		names      []string
		rows       [][]float64
	}{
		{"length mismatch", two, []string{"a"}, [][]float64{{1}}},
		{"no names", two, []string{}, [][]float64{{1}, {2}}},
		{"empty name", two, []string{""}, [][]float64{{1}, {2}}},
		{"duplicate names", two, []string{"a", "a"}, [][]float64{{1, 2}, {3, 4}}},
		{"ragged row", two, []string{"a", "b"}, [][]float64{{1, 2}, {3}}},
		{"not increasing", []time.Time{start.Add(time.Hour), start}, []string{"a"}, [][]float64{{1}, {2}}},
		{
			"uneven spacing",
			[]time.Time{start, start.Add(time.Hour), start.Add(3 * time.Hour)},
			[]string{"a"},
			[][]float64{{1}, {2}, {3}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewMulti(tt.timestamps, tt.names, tt.rows); err == nil {
				t.Errorf("Expected error, got nil")
			}
		})
	}
}

func TestColumnAccess(t *testing.T) {
	start := dailyStart()
	timestamps := []time.Time{start, start.Add(time.Hour), start.Add(2 * time.Hour)}
	s, err := NewMulti(timestamps, []string{"a", "b"}, [][]float64{{1, 10}, {2, 20}, {3, 30}})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if !s.HasColumn("b") {
		t.Errorf("Expected column b to exist")
	}
	if s.HasColumn("c") {
		t.Errorf("Did not expect column c to exist")
	}

	values, err := s.ColumnValues("b")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	expected := []float64{10, 20, 30}
	for i, v := range values {
		if v != expected[i] {
			t.Errorf("Expected %f at index %d, got %f", expected[i], i, v)
		}
	}

	col, err := s.Column("a")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if col.Width() != 1 || col.Names[0] != "a" {
		t.Errorf("Expected univariate column a, got width %d name %v", col.Width(), col.Names)
	}
	if col.Values[2][0] != 3 {
		t.Errorf("Expected 3, got %f", col.Values[2][0])
	}

	if _, err := s.ColumnValues("missing"); err == nil {
		t.Errorf("Expected error for missing column")
	}
}

func TestIndexOf(t *testing.T) {
	start := dailyStart()
	s := NewAt("y", start, time.Hour, []float64{1, 2, 3, 4})

	if got := s.IndexOf(start.Add(2 * time.Hour)); got != 2 {
		t.Errorf("Expected index 2, got %d", got)
	}
	if got := s.IndexOf(start.Add(-time.Hour)); got != -1 {
		t.Errorf("Expected -1 before start, got %d", got)
	}
	if got := s.IndexOf(start.Add(10 * time.Hour)); got != -1 {
		t.Errorf("Expected -1 past end, got %d", got)
	}
	if got := s.IndexOf(start.Add(90 * time.Minute)); got != -1 {
		t.Errorf("Expected -1 off the grid, got %d", got)
	}
}

func TestSlice(t *testing.T) {
	s := New("y", []float64{1, 2, 3, 4, 5})
	sliced := s.Slice(1, 4)

	expected := []float64{2, 3, 4}
	if sliced.Len() != len(expected) {
		t.Fatalf("Expected length %d, got %d", len(expected), sliced.Len())
	}
	for i, row := range sliced.Values {
		if math.Abs(row[0]-expected[i]) > 1e-10 {
			t.Errorf("Expected %f at index %d, got %f", expected[i], i, row[0])
		}
	}
	if !sliced.StartTime().Equal(s.Timestamps[1]) {
		t.Errorf("Expected slice to keep timestamps")
	}

	clamped := s.Slice(-5, 100)
	if clamped.Len() != 5 {
		t.Errorf("Expected clamped slice of length 5, got %d", clamped.Len())
	}

	empty := s.Slice(3, 2)
	if empty.Len() != 0 {
		t.Errorf("Expected empty slice, got length %d", empty.Len())
	}
	if empty.Width() != 1 {
		t.Errorf("Expected empty slice to keep columns, got width %d", empty.Width())
	}
}

func TestSliceTime(t *testing.T) {
	start := dailyStart()
	s := NewAt("y", start, time.Hour, []float64{1, 2, 3, 4, 5})

	sliced := s.SliceTime(start.Add(time.Hour), start.Add(4*time.Hour))
	expected := []float64{2, 3, 4}
	if sliced.Len() != len(expected) {
		t.Fatalf("Expected length %d, got %d", len(expected), sliced.Len())
	}
	for i, row := range sliced.Values {
		if row[0] != expected[i] {
			t.Errorf("Expected %f at index %d, got %f", expected[i], i, row[0])
		}
	}
}

func TestTail(t *testing.T) {
	s := New("y", []float64{1, 2, 3, 4, 5})

	tail := s.Tail(2)
	if tail.Len() != 2 || tail.Values[0][0] != 4 || tail.Values[1][0] != 5 {
		t.Errorf("Expected tail [4 5], got %v", tail.Values)
	}

	if s.Tail(0).Len() != 0 {
		t.Errorf("Expected empty tail for n=0")
	}
	if s.Tail(10).Len() != 5 {
		t.Errorf("Expected whole series for n past length")
	}
}

func TestStack(t *testing.T) {
	start := dailyStart()
	target := NewAt("y", start, time.Hour, []float64{1, 2, 3, 4})

	// Exogenous covers a shifted range; only shared timestamps survive
	exog := NewAt("x", start.Add(time.Hour), time.Hour, []float64{20, 30, 40, 50})

	stacked, err := target.Stack(exog)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if stacked.Len() != 3 {
		t.Fatalf("Expected 3 shared rows, got %d", stacked.Len())
	}
	if stacked.Width() != 2 || stacked.Names[0] != "y" || stacked.Names[1] != "x" {
		t.Errorf("Expected columns [y x], got %v", stacked.Names)
	}

	expected := [][]float64{{2, 20}, {3, 30}, {4, 40}}
	for i, row := range stacked.Values {
		if row[0] != expected[i][0] || row[1] != expected[i][1] {
			t.Errorf("Expected row %v at index %d, got %v", expected[i], i, row)
		}
	}
	if !stacked.StartTime().Equal(start.Add(time.Hour)) {
		t.Errorf("Expected stack to start at the first shared timestamp")
	}
}

func TestStackDuplicateName(t *testing.T) {
	a := New("y", []float64{1, 2})
	b := New("y", []float64{3, 4})

	if _, err := a.Stack(b); err == nil {
		t.Errorf("Expected error for duplicate column name")
	}
}

func TestAppend(t *testing.T) {
	start := dailyStart()
	s := NewAt("y", start, time.Hour, []float64{1, 2})

	out, err := s.Append([]float64{3}, []float64{4})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if out.Len() != 4 {
		t.Fatalf("Expected length 4, got %d", out.Len())
	}
	if !out.Timestamps[3].Equal(start.Add(3 * time.Hour)) {
		t.Errorf("Expected appended rows to continue the time grid")
	}
	if s.Len() != 2 {
		t.Errorf("Expected original series to be unchanged")
	}

	if _, err := s.Append([]float64{1, 2}); err == nil {
		t.Errorf("Expected error for wrong row width")
	}

	single := NewAt("y", start, time.Hour, []float64{1})
	if _, err := single.Append([]float64{2}); err == nil {
		t.Errorf("Expected error when frequency is undefined")
	}
}

func TestAppendValues(t *testing.T) {
	s := New("y", []float64{1, 2, 3})

	out, err := s.AppendValues(4, 5)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if out.Len() != 5 || out.Values[4][0] != 5 {
		t.Errorf("Expected appended values, got %v", out.Values)
	}

	start := dailyStart()
	multi, _ := NewMulti(
		[]time.Time{start, start.Add(time.Hour)},
		[]string{"a", "b"},
		[][]float64{{1, 2}, {3, 4}},
	)
	if _, err := multi.AppendValues(5); err == nil {
		t.Errorf("Expected error for multivariate series")
	}
}

func TestRename(t *testing.T) {
	s := New("y", []float64{1, 2})

	renamed, err := s.Rename("y", "sales")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if renamed.Names[0] != "sales" {
		t.Errorf("Expected renamed column sales, got %s", renamed.Names[0])
	}
	if s.Names[0] != "y" {
		t.Errorf("Expected original name to be unchanged")
	}

	if _, err := s.Rename("missing", "z"); err == nil {
		t.Errorf("Expected error for missing column")
	}

	start := dailyStart()
	multi, _ := NewMulti(
		[]time.Time{start, start.Add(time.Hour)},
		[]string{"a", "b"},
		[][]float64{{1, 2}, {3, 4}},
	)
	if _, err := multi.Rename("a", "b"); err == nil {
		t.Errorf("Expected error when renaming onto an existing column")
	}
}

func TestCopy(t *testing.T) {
	s := New("y", []float64{1, 2, 3})
	copied := s.Copy()

	// Modify original
	s.Values[0][0] = 100
	s.Names[0] = "changed"

	// Copy should be unchanged
	if copied.Values[0][0] != 1 {
		t.Errorf("Copy values were modified when original changed")
	}
	if copied.Names[0] != "y" {
		t.Errorf("Copy names were modified when original changed")
	}
}

func TestRow(t *testing.T) {
	start := dailyStart()
	s, _ := NewMulti(
		[]time.Time{start, start.Add(time.Hour)},
		[]string{"a", "b"},
		[][]float64{{1, 2}, {3, 4}},
	)

	row := s.Row(1)
	if row[0] != 3 || row[1] != 4 {
		t.Errorf("Expected row [3 4], got %v", row)
	}

	row[0] = 99
	if s.Values[1][0] != 3 {
		t.Errorf("Expected Row to return a copy")
	}
}
