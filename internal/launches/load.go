package launches

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Load reads a dataset from a CSV file or a SQLite database, chosen by the
// file extension.
func Load(ctx context.Context, path string) (*Dataset, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv", ".txt":
		return LoadCSV(path)
	case ".db", ".sqlite", ".sqlite3":
		return LoadSQLite(ctx, path)
	default:
		return nil, fmt.Errorf("%s: %w (expected .csv, .db, .sqlite or .sqlite3)", path, ErrUnsupportedSource)
	}
}

// LoadCSV reads a comma separated launch file.
func LoadCSV(path string) (ds *Dataset, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening launch data: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("error closing launch data: %w", closeErr)
		}
	}()

	return ParseCSV(f, path)
}

// ParseCSV decodes CSV launch data from r. source is used in error messages
// and reported by Dataset.Source.
func ParseCSV(r io.Reader, source string) (*Dataset, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%s: %w", source, ErrEmptyDataset)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: error reading header: %w", source, err)
	}

	decoder, err := newRowDecoder(header)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", source, err)
	}

	var records []Record
	line := 1
	for {
		fields, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("%s: %w", source, err)
		}

		rec, err := decoder.decode(fields)
		if err != nil {
			return nil, fmt.Errorf("%s: line %d: %w", source, line, err)
		}
		records = append(records, rec)
	}

	return NewDataset(source, records)
}

// rowDecoder maps column names to positions within a row.
type rowDecoder struct {
	index map[string]int
}

func newRowDecoder(header []string) (*rowDecoder, error) {
	index := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
		if _, dup := index[name]; !dup {
			index[name] = i
		}
	}

	var missing []string
	for _, col := range RequiredColumns {
		if _, ok := index[col]; !ok {
			missing = append(missing, strconv.Quote(col))
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumn, strings.Join(missing, ", "))
	}

	return &rowDecoder{index: index}, nil
}

func (d *rowDecoder) field(fields []string, col string) (string, bool) {
	i, ok := d.index[col]
	if !ok || i >= len(fields) {
		return "", false
	}
	return strings.TrimSpace(fields[i]), true
}

func (d *rowDecoder) decode(fields []string) (Record, error) {
	var rec Record

	site, _ := d.field(fields, ColumnLaunchSite)
	if site == "" {
		return rec, malformed(ColumnLaunchSite, site)
	}
	rec.LaunchSite = site

	raw, _ := d.field(fields, ColumnPayloadMass)
	payload, err := strconv.ParseFloat(raw, 64)
	if err != nil || payload < 0 {
		return rec, malformed(ColumnPayloadMass, raw)
	}
	rec.PayloadMassKg = payload

	raw, _ = d.field(fields, ColumnClass)
	class, err := parseWholeNumber(raw)
	if err != nil || (class != int(Success) && class != int(Failure)) {
		return rec, malformed(ColumnClass, raw)
	}
	rec.Class = OutcomeClass(class)

	rec.BoosterVersionCategory, _ = d.field(fields, ColumnBoosterVersionCategory)
	rec.BoosterVersion, _ = d.field(fields, ColumnBoosterVersion)

	if raw, ok := d.field(fields, ColumnFlightNumber); ok && raw != "" {
		n, err := parseWholeNumber(raw)
		if err != nil {
			return rec, malformed(ColumnFlightNumber, raw)
		}
		rec.FlightNumber = n
	}

	return rec, nil
}

// parseWholeNumber accepts "3" as well as "3.0", which is how pandas exports
// integer columns that once held NaN.
func parseWholeNumber(raw string) (int, error) {
	if n, err := strconv.Atoi(raw); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, err
	}
	if f != float64(int(f)) {
		return 0, fmt.Errorf("%q is not a whole number", raw)
	}
	return int(f), nil
}

func malformed(col, value string) error {
	return fmt.Errorf("%w: column %q value %q", ErrMalformedValue, col, value)
}
