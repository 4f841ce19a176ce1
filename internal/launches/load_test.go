package launches

import (
	"bytes"
	"context"
	"database/sql"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/launchrecords/launchdash/internal/logging"
	"github.com/launchrecords/launchdash/internal/models"
)

func TestLoadCSV(t *testing.T) {
	ds, err := Load(context.Background(), models.GetFixturePath(t, "spacex_launch_dash.csv"))
	require.NoError(t, err)

	assert.Equal(t, 24, ds.Len())
	assert.Equal(t, []string{"CCAFS LC-40", "VAFB SLC-4E", "KSC LC-39A", "CCAFS SLC-40"}, ds.Sites())

	minKg, maxKg := ds.PayloadBounds()
	assert.Equal(t, 0.0, minKg)
	assert.Equal(t, 9600.0, maxKg)

	first := ds.Records()[0]
	assert.Equal(t, Record{
		FlightNumber:           1,
		LaunchSite:             "CCAFS LC-40",
		PayloadMassKg:          0,
		Class:                  Failure,
		BoosterVersion:         "F9 v1.0  B0003",
		BoosterVersionCategory: "v1.0",
	}, first)

	assert.Equal(t, 11, ds.Summary().Successes)
}

func TestLoadErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(context.Background(), filepath.Join(t.TempDir(), "nope.csv"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "error opening launch data")
	})

	t.Run("missing required column", func(t *testing.T) {
		_, err := Load(context.Background(), models.GetFixturePath(t, "missing_column.csv"))
		require.ErrorIs(t, err, ErrMissingColumn)
		assert.Contains(t, err.Error(), `"class"`)
	})

	t.Run("malformed payload", func(t *testing.T) {
		_, err := Load(context.Background(), models.GetFixturePath(t, "malformed_payload.csv"))
		require.ErrorIs(t, err, ErrMalformedValue)
		assert.Contains(t, err.Error(), "line 2")
		assert.Contains(t, err.Error(), "heavy")
	})

	t.Run("unsupported extension", func(t *testing.T) {
		_, err := Load(context.Background(), "launches.xlsx")
		assert.ErrorIs(t, err, ErrUnsupportedSource)
	})
}

func TestParseCSV(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		wantErr error
		wantLen int
	}{
		{
			name:    "minimal columns in any order",
			input:   "class,Booster Version Category,Payload Mass (kg),Launch Site\n1,FT,2490,KSC LC-39A\n0,FT,5300.5,KSC LC-39A\n",
			wantLen: 2,
		},
		{
			name:    "class exported as float",
			input:   "Launch Site,Payload Mass (kg),class,Booster Version Category\nA,1,1.0,FT\n",
			wantLen: 1,
		},
		{
			name:    "empty file",
			input:   "",
			wantErr: ErrEmptyDataset,
		},
		{
			name:    "header only",
			input:   "Launch Site,Payload Mass (kg),class,Booster Version Category\n",
			wantErr: ErrEmptyDataset,
		},
		{
			name:    "class out of range",
			input:   "Launch Site,Payload Mass (kg),class,Booster Version Category\nA,1,2,FT\n",
			wantErr: ErrMalformedValue,
		},
		{
			name:    "negative payload",
			input:   "Launch Site,Payload Mass (kg),class,Booster Version Category\nA,-5,1,FT\n",
			wantErr: ErrMalformedValue,
		},
		{
			name:    "blank payload",
			input:   "Launch Site,Payload Mass (kg),class,Booster Version Category\nA,,1,FT\n",
			wantErr: ErrMalformedValue,
		},
		{
			name:    "blank site",
			input:   "Launch Site,Payload Mass (kg),class,Booster Version Category\n,10,1,FT\n",
			wantErr: ErrMalformedValue,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ds, err := ParseCSV(strings.NewReader(tc.input), "inline")
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantLen, ds.Len())
		})
	}
}

func createLaunchDB(t *testing.T, schema string, inserts ...string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "launches.db")
	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	_, err = db.Exec(schema)
	require.NoError(t, err)
	for _, stmt := range inserts {
		_, err = db.Exec(stmt)
		require.NoError(t, err)
	}
	return path
}

func TestLoadSQLite(t *testing.T) {
	t.Run("reads launches table", func(t *testing.T) {
		path := createLaunchDB(t,
			`CREATE TABLE launches ("Flight Number" INTEGER, "Launch Site" TEXT, "class" INTEGER, "Payload Mass (kg)" REAL, "Booster Version Category" TEXT)`,
			`INSERT INTO launches VALUES (1, 'A', 1, 500.0, 'FT')`,
			`INSERT INTO launches VALUES (2, 'A', 0, 1500.0, 'v1.1')`,
			`INSERT INTO launches VALUES (3, 'B', 1, 800.0, 'FT')`,
		)

		ds, err := Load(context.Background(), path)
		require.NoError(t, err)

		assert.Equal(t, 3, ds.Len())
		assert.Equal(t, []string{"A", "B"}, ds.Sites())
		records := ds.Records()
		assert.Equal(t, 1500.0, records[1].PayloadMassKg)
		assert.Equal(t, Failure, records[1].Class)
		assert.Equal(t, 3, records[2].FlightNumber)
		assert.Equal(t, "", records[2].BoosterVersion)
	})

	t.Run("missing column", func(t *testing.T) {
		path := createLaunchDB(t,
			`CREATE TABLE launches ("Launch Site" TEXT, "Payload Mass (kg)" REAL)`,
			`INSERT INTO launches VALUES ('A', 1.0)`,
		)

		_, err := LoadSQLite(context.Background(), path)
		require.ErrorIs(t, err, ErrMissingColumn)
		assert.Contains(t, err.Error(), "Booster Version Category")
	})

	t.Run("missing table", func(t *testing.T) {
		path := createLaunchDB(t, `CREATE TABLE other (id INTEGER)`)

		_, err := LoadSQLite(context.Background(), path)
		assert.ErrorIs(t, err, ErrMissingColumn)
	})

	t.Run("null payload", func(t *testing.T) {
		path := createLaunchDB(t,
			`CREATE TABLE launches ("Launch Site" TEXT, "class" INTEGER, "Payload Mass (kg)" REAL, "Booster Version Category" TEXT)`,
			`INSERT INTO launches VALUES ('A', 1, NULL, 'FT')`,
		)

		_, err := LoadSQLite(context.Background(), path)
		assert.ErrorIs(t, err, ErrMalformedValue)
	})

	t.Run("row cursors close cleanly", func(t *testing.T) {
		path := createLaunchDB(t,
			`CREATE TABLE launches ("Launch Site" TEXT, "class" INTEGER, "Payload Mass (kg)" REAL, "Booster Version Category" TEXT)`,
			`INSERT INTO launches VALUES ('A', 1, 500.0, 'FT')`,
		)

		var buf bytes.Buffer
		ctx := logging.WithLogger(context.Background(), logging.NewStructuredLogger(&buf, slog.LevelDebug))

		ds, err := LoadSQLite(ctx, path)
		require.NoError(t, err)
		assert.Equal(t, 1, ds.Len())
		assert.Empty(t, buf.String())
	})

	t.Run("missing file is not created", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "absent.sqlite")
		_, err := LoadSQLite(context.Background(), path)
		require.Error(t, err)
		assert.NoFileExists(t, path)
	})
}
