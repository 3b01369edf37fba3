package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Open connects to the SQLite database file and verifies the connection.
// When readOnly is set the file is opened through a mode=ro URI so that no
// statement, buggy or malicious, can modify the reference data.
func Open(path string, readOnly bool) (*sql.DB, error) {
	dsn := path
	if readOnly {
		dsn = fmt.Sprintf("file:%s?mode=ro", path)
	}

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, err
	}

	// Pool settings; SQLite serializes writers anyway, readers can share.
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(30 * time.Minute)

	// Ping with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// requiredColumns lists, per reference table, every column the query layer
// depends on.  Names are compared case-insensitively because the CSV loader
// preserves whatever casing the input headers carried.
var requiredColumns = map[string][]string{
	"zip_county": {"zip", "state_abbreviation", "county", "county_code"},
	"county_health_rankings": {
		"state", "county", "state_code", "county_code", "year_span",
		"measure_name", "measure_id", "numerator", "denominator",
		"raw_value", "confidence_interval_lower_bound",
		"confidence_interval_upper_bound", "data_release_year", "fipscode",
	},
}

// VerifySchema checks at startup that both reference tables exist and carry
// every required column.  Failing fast here replaces per-request schema
// introspection: once this passes, the fixed column names used by the
// repositories are known to be valid.
func VerifySchema(ctx context.Context, db *sql.DB) error {
	for table, cols := range requiredColumns {
		present, err := tableColumns(ctx, db, table)
		if err != nil {
			return err
		}
		if len(present) == 0 {
			return fmt.Errorf("missing table %q", table)
		}
		for _, want := range cols {
			if _, ok := present[strings.ToLower(want)]; !ok {
				return fmt.Errorf("table %q is missing column %q", table, want)
			}
		}
	}
	return nil
}

// tableColumns returns the lower-cased column names of a table.  An empty
// map means the table does not exist; PRAGMA table_info yields no rows then.
func tableColumns(ctx context.Context, db *sql.DB, table string) (map[string]struct{}, error) {
	rows, err := db.QueryContext(ctx, fmt.Sprintf("PRAGMA table_info(%s)", table))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cols := make(map[string]struct{})
	for rows.Next() {
		var (
			cid     int
			name    string
			ctype   sql.NullString
			notNull int
			dflt    sql.NullString
			pk      int
		)
		if err := rows.Scan(&cid, &name, &ctype, &notNull, &dflt, &pk); err != nil {
			return nil, err
		}
		cols[strings.ToLower(name)] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return cols, nil
}
