// Package timeseries provides core time series data structures and operations.
package timeseries

import (
	"errors"
	"fmt"
	"time"
)

// Series represents an ordered, evenly spaced time series with one or more
// named columns. Values is row-major: Values[i][c] is the value of column c
// at Timestamps[i].
type Series struct {
	Timestamps []time.Time
	Names      []string
	Values     [][]float64
}

// New creates a univariate series from values with synthetic hourly timestamps.
func New(name string, values []float64) *Series {
	base := time.Now()
	return NewAt(name, base, time.Hour, values)
}

// NewAt creates a univariate series starting at start with the given frequency.
func NewAt(name string, start time.Time, freq time.Duration, values []float64) *Series {
	timestamps := make([]time.Time, len(values))
	rows := make([][]float64, len(values))
	for i, v := range values {
		timestamps[i] = start.Add(time.Duration(i) * freq)
		rows[i] = []float64{v}
	}
	return &Series{
		Timestamps: timestamps,
		Names:      []string{name},
		Values:     rows,
	}
}

// NewMulti creates a series with explicit timestamps, column names and rows.
// Timestamps must be strictly increasing and evenly spaced, names must be
// unique and non-empty, and every row must have one value per column.
func NewMulti(timestamps []time.Time, names []string, rows [][]float64) (*Series, error) {
	if len(timestamps) != len(rows) {
		return nil, errors.New("timestamps and rows must have the same length")
	}
	if len(names) == 0 {
		return nil, errors.New("at least one column name is required")
	}
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		if name == "" {
			return nil, errors.New("column names must not be empty")
		}
		if seen[name] {
			return nil, fmt.Errorf("duplicate column name %q", name)
		}
		seen[name] = true
	}
	for i, row := range rows {
		if len(row) != len(names) {
			return nil, fmt.Errorf("row %d has %d values, expected %d", i, len(row), len(names))
		}
	}
	if len(timestamps) >= 2 {
		freq := timestamps[1].Sub(timestamps[0])
		if freq <= 0 {
			return nil, errors.New("timestamps must be strictly increasing")
		}
		for i := 2; i < len(timestamps); i++ {
			if timestamps[i].Sub(timestamps[i-1]) != freq {
				return nil, fmt.Errorf("timestamps must be evenly spaced: gap at index %d", i)
			}
		}
	}
	return &Series{
		Timestamps: timestamps,
		Names:      names,
		Values:     rows,
	}, nil
}

// Len returns the number of rows in the series.
func (s *Series) Len() int {
	return len(s.Values)
}

// Width returns the number of columns in the series.
func (s *Series) Width() int {
	return len(s.Names)
}

// Columns returns a copy of the column names in order.
func (s *Series) Columns() []string {
	names := make([]string, len(s.Names))
	copy(names, s.Names)
	return names
}

// HasColumn reports whether the series contains a column with the given name.
func (s *Series) HasColumn(name string) bool {
	return s.index(name) >= 0
}

// index returns the position of a column name, or -1.
func (s *Series) index(name string) int {
	for i, n := range s.Names {
		if n == name {
			return i
		}
	}
	return -1
}

// Column returns the named column as a univariate series.
func (s *Series) Column(name string) (*Series, error) {
	values, err := s.ColumnValues(name)
	if err != nil {
		return nil, err
	}
	timestamps := make([]time.Time, len(s.Timestamps))
	copy(timestamps, s.Timestamps)
	rows := make([][]float64, len(values))
	for i, v := range values {
		rows[i] = []float64{v}
	}
	return &Series{
		Timestamps: timestamps,
		Names:      []string{name},
		Values:     rows,
	}, nil
}

// ColumnValues returns a copy of the named column's values.
func (s *Series) ColumnValues(name string) ([]float64, error) {
	c := s.index(name)
	if c < 0 {
		return nil, fmt.Errorf("series has no column %q", name)
	}
	values := make([]float64, len(s.Values))
	for i, row := range s.Values {
		values[i] = row[c]
	}
	return values, nil
}

// Freq returns the spacing between consecutive timestamps, or zero when the
// series has fewer than two rows.
func (s *Series) Freq() time.Duration {
	if len(s.Timestamps) < 2 {
		return 0
	}
	return s.Timestamps[1].Sub(s.Timestamps[0])
}

// StartTime returns the first timestamp, or the zero time when empty.
func (s *Series) StartTime() time.Time {
	if len(s.Timestamps) == 0 {
		return time.Time{}
	}
	return s.Timestamps[0]
}

// EndTime returns the last timestamp, or the zero time when empty.
func (s *Series) EndTime() time.Time {
	if len(s.Timestamps) == 0 {
		return time.Time{}
	}
	return s.Timestamps[len(s.Timestamps)-1]
}

// IndexOf returns the row position of timestamp t, or -1 when t is not part
// of the series.
func (s *Series) IndexOf(t time.Time) int {
	if len(s.Timestamps) == 0 {
		return -1
	}
	freq := s.Freq()
	if freq <= 0 {
		if s.Timestamps[0].Equal(t) {
			return 0
		}
		return -1
	}
	offset := t.Sub(s.Timestamps[0])
	if offset < 0 || offset%freq != 0 {
		return -1
	}
	i := int(offset / freq)
	if i >= len(s.Timestamps) || !s.Timestamps[i].Equal(t) {
		return -1
	}
	return i
}

// Slice returns rows from start to end (exclusive). Out-of-range bounds are
// clamped.
func (s *Series) Slice(start, end int) *Series {
	if start < 0 {
		start = 0
	}
	if end > len(s.Values) {
		end = len(s.Values)
	}
	if start >= end {
		return s.empty()
	}

	timestamps := make([]time.Time, end-start)
	copy(timestamps, s.Timestamps[start:end])
	rows := make([][]float64, end-start)
	for i := start; i < end; i++ {
		row := make([]float64, len(s.Values[i]))
		copy(row, s.Values[i])
		rows[i-start] = row
	}

	return &Series{
		Timestamps: timestamps,
		Names:      s.Columns(),
		Values:     rows,
	}
}

// SliceTime returns the rows with timestamps in the half-open interval
// [from, to).
func (s *Series) SliceTime(from, to time.Time) *Series {
	start := len(s.Timestamps)
	for i, t := range s.Timestamps {
		if !t.Before(from) {
			start = i
			break
		}
	}
	end := start
	for end < len(s.Timestamps) && s.Timestamps[end].Before(to) {
		end++
	}
	return s.Slice(start, end)
}

// Tail returns the last n rows of the series.
func (s *Series) Tail(n int) *Series {
	if n <= 0 {
		return s.empty()
	}
	return s.Slice(len(s.Values)-n, len(s.Values))
}

// Row returns a copy of row i.
func (s *Series) Row(i int) []float64 {
	row := make([]float64, len(s.Values[i]))
	copy(row, s.Values[i])
	return row
}

// Stack joins two series side-by-side on the timestamps they share, keeping
// the receiver's columns first. Column names must not overlap.
func (s *Series) Stack(other *Series) (*Series, error) {
	for _, name := range other.Names {
		if s.HasColumn(name) {
			return nil, fmt.Errorf("cannot stack: both series have a column %q", name)
		}
	}

	names := make([]string, 0, len(s.Names)+len(other.Names))
	names = append(names, s.Names...)
	names = append(names, other.Names...)

	timestamps := make([]time.Time, 0, len(s.Timestamps))
	rows := make([][]float64, 0, len(s.Values))
	for i, t := range s.Timestamps {
		j := other.IndexOf(t)
		if j < 0 {
			continue
		}
		row := make([]float64, 0, len(names))
		row = append(row, s.Values[i]...)
		row = append(row, other.Values[j]...)
		timestamps = append(timestamps, t)
		rows = append(rows, row)
	}

	return &Series{
		Timestamps: timestamps,
		Names:      names,
		Values:     rows,
	}, nil
}

// Append returns a copy of the series extended with the given rows, spaced
// at the series frequency after the last timestamp.
func (s *Series) Append(rows ...[]float64) (*Series, error) {
	freq := s.Freq()
	if freq <= 0 {
		return nil, errors.New("cannot append: series frequency is not defined")
	}
	for i, row := range rows {
		if len(row) != len(s.Names) {
			return nil, fmt.Errorf("appended row %d has %d values, expected %d", i, len(row), len(s.Names))
		}
	}

	out := s.Copy()
	last := out.Timestamps[len(out.Timestamps)-1]
	for i, row := range rows {
		r := make([]float64, len(row))
		copy(r, row)
		out.Timestamps = append(out.Timestamps, last.Add(time.Duration(i+1)*freq))
		out.Values = append(out.Values, r)
	}
	return out, nil
}

// AppendValues extends a univariate series with scalar values.
func (s *Series) AppendValues(values ...float64) (*Series, error) {
	if len(s.Names) != 1 {
		return nil, errors.New("AppendValues requires a univariate series")
	}
	rows := make([][]float64, len(values))
	for i, v := range values {
		rows[i] = []float64{v}
	}
	return s.Append(rows...)
}

// Rename returns a copy of the series with one column renamed.
func (s *Series) Rename(from, to string) (*Series, error) {
	c := s.index(from)
	if c < 0 {
		return nil, fmt.Errorf("series has no column %q", from)
	}
	if to != from && s.HasColumn(to) {
		return nil, fmt.Errorf("series already has a column %q", to)
	}
	out := s.Copy()
	out.Names[c] = to
	return out, nil
}

// Copy creates a deep copy of the series.
func (s *Series) Copy() *Series {
	timestamps := make([]time.Time, len(s.Timestamps))
	copy(timestamps, s.Timestamps)
	rows := make([][]float64, len(s.Values))
	for i, row := range s.Values {
		r := make([]float64, len(row))
		copy(r, row)
		rows[i] = r
	}
	return &Series{
		Timestamps: timestamps,
		Names:      s.Columns(),
		Values:     rows,
	}
}

// empty returns a zero-row series with the same columns.
func (s *Series) empty() *Series {
	return &Series{
		Timestamps: []time.Time{},
		Names:      s.Columns(),
		Values:     [][]float64{},
	}
}
