// Command csv2sqlite loads a CSV file into a SQLite database, creating or
// replacing the table named after the CSV file stem.  It is the out-of-band
// companion of the API server: the server only ever reads what this tool
// has written.
package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	_ "github.com/mattn/go-sqlite3"

	"github.com/sunnyharvard/sunnyharvard-hw4/internal/importer"
)

func main() {
	if len(os.Args) != 3 {
		fmt.Fprintln(os.Stderr, "Usage: csv2sqlite <database.db> <input.csv>")
		os.Exit(1)
	}
	dbPath, csvPath := os.Args[1], os.Args[2]

	if _, err := os.Stat(csvPath); err != nil {
		fmt.Fprintf(os.Stderr, "Error: CSV file not found: %s\n", csvPath)
		os.Exit(2)
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot open database: %v\n", err)
		os.Exit(3)
	}
	defer db.Close()

	res, err := importer.ImportCSV(context.Background(), db, csvPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(4)
	}

	fmt.Printf("Imported %d rows into table '%s' in database '%s'.\n", res.Rows, res.Table, dbPath)
}
