// Package importer bulk-loads a CSV file into a SQLite table.  The table
// name comes from the CSV file stem and every column from the header row;
// both must pass a strict safe-identifier policy before they are embedded
// in SQL text, since bound parameters cannot represent identifiers.
// Re-importing the same path fully replaces the previous table, schema
// included.
package importer

import (
	"context"
	"database/sql"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// reservedWords is the set of SQL keywords rejected as identifiers, a
// simplified subset of SQLite's reserved words.
var reservedWords = map[string]struct{}{
	"SELECT": {}, "INSERT": {}, "DELETE": {}, "UPDATE": {}, "CREATE": {},
	"DROP": {}, "TABLE": {}, "FROM": {}, "WHERE": {}, "AND": {}, "OR": {},
	"NOT": {}, "NULL": {}, "IN": {}, "IS": {}, "LIKE": {}, "BY": {},
	"GROUP": {}, "ORDER": {}, "HAVING": {}, "AS": {}, "JOIN": {}, "ON": {},
	"UNION": {}, "VALUES": {}, "INTO": {},
}

// ValidIdentifier reports whether name is safe to embed in SQL text as a
// table or column name: non-empty, first rune a letter or underscore,
// remaining runes alphanumeric or underscore, and not a reserved word.
func ValidIdentifier(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		switch {
		case r == '_':
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	if _, ok := reservedWords[strings.ToUpper(name)]; ok {
		return false
	}
	return true
}

// Result describes a completed import.
type Result struct {
	Table string // table that was (re)created
	Rows  int    // number of rows inserted
}

// ImportCSV loads csvPath into db.  The target table, named after the file
// stem, is dropped and recreated with one TEXT column per header field, so
// the import replaces any previous schema and contents.  Empty CSV cells
// become NULL.  All rows are inserted inside a single transaction; a failed
// import leaves the previous data untouched only up to the DROP, so callers
// should treat a returned error as "re-run the import".
func ImportCSV(ctx context.Context, db *sql.DB, csvPath string) (*Result, error) {
	table := strings.TrimSuffix(filepath.Base(csvPath), filepath.Ext(csvPath))
	if !ValidIdentifier(table) {
		return nil, fmt.Errorf("invalid table name derived from CSV filename: %q", table)
	}

	f, err := os.Open(csvPath)
	if err != nil {
		return nil, fmt.Errorf("open CSV: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1 // short rows load their missing cells as NULL
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("CSV is missing a header row: %w", err)
	}

	columns := make([]string, len(header))
	for i, col := range header {
		if i == 0 {
			col = strings.TrimPrefix(col, "\uFEFF") // strip a UTF-8 BOM
		}
		col = strings.TrimSpace(col)
		if !ValidIdentifier(col) {
			return nil, fmt.Errorf("invalid column name in header: %q", col)
		}
		columns[i] = col
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, "DROP TABLE IF EXISTS "+table); err != nil {
		return nil, err
	}

	colDefs := make([]string, len(columns))
	for i, col := range columns {
		colDefs[i] = col + " TEXT"
	}
	if _, err = tx.ExecContext(ctx, "CREATE TABLE "+table+" ("+strings.Join(colDefs, ", ")+")"); err != nil {
		return nil, err
	}

	marks := strings.TrimSuffix(strings.Repeat("?, ", len(columns)), ", ")
	insert := "INSERT INTO " + table + " (" + strings.Join(columns, ", ") + ") VALUES (" + marks + ")"
	stmt, err := tx.PrepareContext(ctx, insert)
	if err != nil {
		return nil, err
	}
	defer stmt.Close()

	total := 0
	for {
		record, readErr := reader.Read()
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			err = fmt.Errorf("read CSV row: %w", readErr)
			return nil, err
		}

		values := make([]interface{}, len(columns))
		for i := range columns {
			if i < len(record) && record[i] != "" {
				values[i] = record[i]
			} else {
				values[i] = nil // empty cells load as NULL
			}
		}
		if _, err = stmt.ExecContext(ctx, values...); err != nil {
			return nil, err
		}
		total++
	}

	if err = tx.Commit(); err != nil {
		return nil, err
	}
	return &Result{Table: table, Rows: total}, nil
}
