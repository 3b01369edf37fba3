// Package repository contains data access logic separated from HTTP handlers.
// This file resolves a ZIP code into the set of counties it spans. One ZIP
// can map to several counties (and even several states), so the resolver
// collects every match instead of picking an arbitrary first row.
package repository

import (
	"context"
	"database/sql"
	"sort"

	"github.com/sunnyharvard/sunnyharvard-hw4/internal/model"
)

// ResolvedCounties carries the distinct identifiers a ZIP code resolved to.
// The sets feed the three alternative join predicates of the rankings query:
// FIPSCodes joins on fipscode directly, while States combined with either
// CountyCodes or Counties covers rankings tables keyed on state plus a
// 3-digit county code or a county name.  Every slice is deduplicated and
// sorted so that query construction, logs and tests are deterministic.
type ResolvedCounties struct {
	States      []string // distinct state abbreviations
	Counties    []string // distinct county names
	FIPSCodes   []string // county codes long enough to be full state+county codes
	CountyCodes []string // last 3 characters of each county code
}

// Empty reports whether no join alternative has both operand sets populated.
func (rc *ResolvedCounties) Empty() bool {
	if len(rc.FIPSCodes) > 0 {
		return false
	}
	if len(rc.States) > 0 && (len(rc.CountyCodes) > 0 || len(rc.Counties) > 0) {
		return false
	}
	return true
}

// ZipCountyRepo encapsulates all database queries against the zip_county
// reference table.  It depends on a sql.DB connection which should be
// configured elsewhere.
type ZipCountyRepo struct {
	db *sql.DB // db is the underlying database connection pool
}

// NewZipCountyRepo constructs a ZipCountyRepo with the provided DB handle.
// This function allows dependency injection of the database in tests and at
// startup.
func NewZipCountyRepo(db *sql.DB) *ZipCountyRepo {
	return &ZipCountyRepo{db: db}
}

// ResolveCounties looks up every county a ZIP code maps to.  The match is an
// exact string equality on the zip column; ZIP codes keep their leading
// zeros and are never compared numerically.  It returns ErrZipNotFound when
// the ZIP has no row at all.
func (r *ZipCountyRepo) ResolveCounties(ctx context.Context, zip string) (*ResolvedCounties, error) {
	const q = `SELECT zip, state_abbreviation, county, county_code
	           FROM zip_county WHERE zip = ?`
	rows, err := r.db.QueryContext(ctx, q, zip)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	states := map[string]struct{}{}
	counties := map[string]struct{}{}
	fips := map[string]struct{}{}
	shortCodes := map[string]struct{}{}

	found := false
	for rows.Next() {
		var zc model.ZipCounty
		if err := rows.Scan(&zc.Zip, &zc.State, &zc.County, &zc.CountyCode); err != nil {
			return nil, err
		}
		found = true
		if zc.State != "" {
			states[zc.State] = struct{}{}
		}
		if zc.County != "" {
			counties[zc.County] = struct{}{}
		}
		// A code of at least 4 characters is a combined state+county code
		// usable directly against the fipscode column; the trailing 3
		// characters always form the bare county code.
		if len(zc.CountyCode) >= 4 {
			fips[zc.CountyCode] = struct{}{}
		}
		if len(zc.CountyCode) >= 3 {
			shortCodes[zc.CountyCode[len(zc.CountyCode)-3:]] = struct{}{}
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrZipNotFound
	}

	return &ResolvedCounties{
		States:      sortedKeys(states),
		Counties:    sortedKeys(counties),
		FIPSCodes:   sortedKeys(fips),
		CountyCodes: sortedKeys(shortCodes),
	}, nil
}

// sortedKeys flattens a string set into a lexically sorted slice.
func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
