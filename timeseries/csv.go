package timeseries

import (
	"bufio"
	"encoding/csv"
	"errors"
	"io"
	"os"
	"strconv"
	"strings"
	"time"
)

// CSVOptions holds options for CSV loading.
type CSVOptions struct {
	TimeColumn   string   // Column name for timestamps (optional, auto-detected)
	ValueColumns []string // Columns to load, in order (default: all non-time columns)
	DateFormat   string   // Date format (default: "2006-01-02")
	HasHeader    bool     // Whether CSV has header row (default: true)
	Delimiter    rune     // Field delimiter (default: ',')
	SkipRows     int      // Number of rows to skip at start
}

// DefaultCSVOptions returns default options for CSV loading.
func DefaultCSVOptions() *CSVOptions {
	return &CSVOptions{
		DateFormat: "2006-01-02",
		HasHeader:  true,
		Delimiter:  ',',
	}
}

// LoadCSV loads a time series from a CSV file.
func LoadCSV(filename string, opts *CSVOptions) (*Series, error) {
	if opts == nil {
		opts = DefaultCSVOptions()
	}

	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return LoadCSVFromReader(file, opts)
}

// LoadCSVFromReader loads a time series from an io.Reader.
//
// With a header row, the time column is taken from TimeColumn or detected by
// common names (ds, date, timestamp, ...), and ValueColumns selects the data
// columns in order, defaulting to every other column. Without a header the
// first column is treated as the date and the remaining columns are named
// y1, y2, and so on. Rows with unparseable values are skipped; if timestamps
// cannot be parsed for every kept row, synthetic hourly timestamps are used.
func LoadCSVFromReader(r io.Reader, opts *CSVOptions) (*Series, error) {
	if opts == nil {
		opts = DefaultCSVOptions()
	}

	reader := csv.NewReader(r)
	reader.Comma = opts.Delimiter
	reader.TrimLeadingSpace = true

	// Skip rows if needed
	for i := 0; i < opts.SkipRows; i++ {
		if _, err := reader.Read(); err != nil {
			return nil, err
		}
	}

	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, errors.New("no valid data found in CSV")
	}

	var names []string
	var valueIdx []int
	timeIdx := -1

	if opts.HasHeader {
		header := records[0]
		records = records[1:]
		for i := range header {
			header[i] = strings.TrimSpace(strings.Trim(header[i], "\""))
		}

		// Find the time column
		for i, h := range header {
			if opts.TimeColumn != "" {
				if h == opts.TimeColumn {
					timeIdx = i
					break
				}
				continue
			}
			if h == "ds" || h == "date" || h == "Date" || h == "timestamp" || h == "time" || h == "Month" || h == "Year" {
				timeIdx = i
				break
			}
		}
		if opts.TimeColumn != "" && timeIdx == -1 {
			return nil, errors.New("time column " + strconv.Quote(opts.TimeColumn) + " not found in CSV header")
		}

		// Find the value columns
		if len(opts.ValueColumns) > 0 {
			for _, want := range opts.ValueColumns {
				found := -1
				for i, h := range header {
					if h == want {
						found = i
						break
					}
				}
				if found == -1 {
					return nil, errors.New("value column " + strconv.Quote(want) + " not found in CSV header")
				}
				valueIdx = append(valueIdx, found)
				names = append(names, want)
			}
		} else {
			for i, h := range header {
				if i == timeIdx {
					continue
				}
				valueIdx = append(valueIdx, i)
				names = append(names, h)
			}
		}
	} else {
		// No header: first column is the date, the rest are values
		timeIdx = 0
		for i := 1; i < len(records[0]); i++ {
			valueIdx = append(valueIdx, i)
			names = append(names, "y"+strconv.Itoa(i))
		}
	}

	if len(valueIdx) == 0 {
		return nil, errors.New("no value columns found in CSV")
	}

	var rows [][]float64
	var timestamps []time.Time
	for _, record := range records {
		row, ok := parseRow(record, valueIdx)
		if !ok {
			continue // Skip rows with missing or invalid values
		}
		if timeIdx >= 0 && timeIdx < len(record) {
			if ts, tok := parseTime(record[timeIdx], opts.DateFormat); tok {
				timestamps = append(timestamps, ts)
			}
		}
		rows = append(rows, row)
	}

	if len(rows) == 0 {
		return nil, errors.New("no valid data found in CSV")
	}

	if len(timestamps) != len(rows) {
		// No usable time column: synthesize hourly timestamps
		timestamps = make([]time.Time, len(rows))
		base := time.Now()
		for i := range timestamps {
			timestamps[i] = base.Add(time.Duration(i) * time.Hour)
		}
	}

	return &Series{
		Timestamps: timestamps,
		Names:      names,
		Values:     rows,
	}, nil
}

// parseRow extracts the selected value columns from a record.
func parseRow(record []string, valueIdx []int) ([]float64, bool) {
	row := make([]float64, len(valueIdx))
	for k, idx := range valueIdx {
		if idx >= len(record) {
			return nil, false
		}
		valStr := strings.TrimSpace(strings.Trim(record[idx], "\""))
		if valStr == "" || valStr == "NA" || valStr == "NaN" || valStr == "null" {
			return nil, false
		}
		val, err := strconv.ParseFloat(valStr, 64)
		if err != nil {
			return nil, false
		}
		row[k] = val
	}
	return row, true
}

// parseTime tries the configured format followed by common fallbacks.
func parseTime(raw, format string) (time.Time, bool) {
	dateStr := strings.TrimSpace(strings.Trim(raw, "\""))
	formats := []string{
		format,
		"2006-01-02",
		"2006-01-02T15:04:05",
		time.RFC3339,
		"2006/01/02",
		"01/02/2006",
		"02-Jan-2006",
		"2006",
	}
	for _, f := range formats {
		if f == "" {
			continue
		}
		if ts, err := time.Parse(f, dateStr); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}

// SaveCSV saves a time series to a CSV file. When includeTime is true the
// first column holds the timestamps.
func SaveCSV(series *Series, filename string, includeTime bool) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	defer writer.Flush()

	// Write header
	if includeTime {
		writer.WriteString("ds")
		for _, name := range series.Names {
			writer.WriteString(",")
			writer.WriteString(name)
		}
	} else {
		writer.WriteString(strings.Join(series.Names, ","))
	}
	writer.WriteString("\n")

	// Write data
	for i, row := range series.Values {
		if includeTime {
			writer.WriteString(series.Timestamps[i].Format("2006-01-02T15:04:05"))
			writer.WriteString(",")
		}
		for c, v := range row {
			if c > 0 {
				writer.WriteString(",")
			}
			writer.WriteString(strconv.FormatFloat(v, 'f', -1, 64))
		}
		writer.WriteString("\n")
	}

	return nil
}
