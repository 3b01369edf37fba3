package database

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const zipCountyDDL = `CREATE TABLE zip_county (
	zip TEXT, state_abbreviation TEXT, county TEXT, county_code TEXT)`

// Casing intentionally mixed: the loader preserves source header casing and
// the verification must not care.
const rankingsDDL = `CREATE TABLE county_health_rankings (
	State TEXT, County TEXT, State_code TEXT, County_code TEXT,
	Year_span TEXT, Measure_name TEXT, Measure_id TEXT,
	Numerator TEXT, Denominator TEXT, Raw_value TEXT,
	Confidence_Interval_Lower_Bound TEXT, Confidence_Interval_Upper_Bound TEXT,
	Data_Release_Year TEXT, fipscode TEXT)`

func seededDB(t *testing.T, ddls ...string) *sql.DB {
	path := filepath.Join(t.TempDir(), "data.db")
	db, err := Open(path, false)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	for _, ddl := range ddls {
		_, err := db.Exec(ddl)
		require.NoError(t, err)
	}
	return db
}

func TestOpen_ReadOnlyRejectsMissingFile(t *testing.T) {
	db, err := Open(filepath.Join(t.TempDir(), "missing.db"), true)
	if err == nil {
		db.Close()
	}
	assert.Error(t, err)
}

func TestOpen_ReadOnlyRejectsWrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.db")

	rw, err := Open(path, false)
	require.NoError(t, err)
	_, err = rw.Exec(zipCountyDDL)
	require.NoError(t, err)
	require.NoError(t, rw.Close())

	ro, err := Open(path, true)
	require.NoError(t, err)
	defer ro.Close()

	_, err = ro.Exec(`INSERT INTO zip_county VALUES ('02138','MA','Middlesex County','25017')`)
	assert.Error(t, err)
}

func TestVerifySchema_Valid(t *testing.T) {
	db := seededDB(t, zipCountyDDL, rankingsDDL)
	assert.NoError(t, VerifySchema(context.Background(), db))
}

func TestVerifySchema_MissingTable(t *testing.T) {
	db := seededDB(t, zipCountyDDL)
	err := VerifySchema(context.Background(), db)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "county_health_rankings")
}

func TestVerifySchema_MissingColumn(t *testing.T) {
	db := seededDB(t, zipCountyDDL,
		`CREATE TABLE county_health_rankings (State TEXT, County TEXT)`)
	err := VerifySchema(context.Background(), db)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing column")
}
