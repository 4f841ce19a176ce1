package launches

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/launchrecords/launchdash/internal/logging"
)

// LaunchesTable is the table read by LoadSQLite.
const LaunchesTable = "launches"

// LoadSQLite reads the launches table of a SQLite database. The table must
// carry the same column names as the CSV export.
func LoadSQLite(ctx context.Context, path string) (ds *Dataset, err error) {
	// sql.Open would silently create a missing database file.
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("error opening launch database: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("error opening launch database: %w", err)
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("error closing launch database: %w", closeErr)
		}
	}()

	columns, err := tableColumns(ctx, db)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	decoder, err := newRowDecoder(columns)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	quoted := make([]string, len(columns))
	for i, col := range columns {
		quoted[i] = `"` + strings.ReplaceAll(col, `"`, `""`) + `"`
	}
	query := fmt.Sprintf("SELECT %s FROM %s ORDER BY rowid", strings.Join(quoted, ", "), LaunchesTable)

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: error querying launches: %w", path, err)
	}
	defer logging.SafeCloseWithLogging(rows, logging.FromContext(ctx), "launch_rows")

	var records []Record
	raw := make([]sql.NullString, len(columns))
	dest := make([]any, len(columns))
	for i := range raw {
		dest[i] = &raw[i]
	}

	row := 0
	for rows.Next() {
		row++
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("%s: row %d: %w", path, row, err)
		}
		fields := make([]string, len(raw))
		for i, v := range raw {
			fields[i] = v.String
		}
		rec, err := decoder.decode(fields)
		if err != nil {
			return nil, fmt.Errorf("%s: row %d: %w", path, row, err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: error reading launches: %w", path, err)
	}

	return NewDataset(path, records)
}

func tableColumns(ctx context.Context, db *sql.DB) ([]string, error) {
	rows, err := db.QueryContext(ctx, "SELECT name FROM pragma_table_info(?) ORDER BY cid", LaunchesTable)
	if err != nil {
		return nil, fmt.Errorf("error reading schema: %w", err)
	}
	defer logging.SafeCloseWithLogging(rows, logging.FromContext(ctx), "launch_schema_rows")

	var columns []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("error reading schema: %w", err)
		}
		columns = append(columns, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error reading schema: %w", err)
	}
	if len(columns) == 0 {
		return nil, fmt.Errorf("%w: table %q not found", ErrMissingColumn, LaunchesTable)
	}
	return columns, nil
}
