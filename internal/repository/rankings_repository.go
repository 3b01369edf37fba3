// Package repository contains data access logic separated from HTTP handlers.
// This file builds and runs the rankings query: given the counties a ZIP
// resolved to and a measure name, fetch every matching row of the
// county_health_rankings table.  The location predicate is an OR of three
// alternatives so the query works whether the table is keyed on a full FIPS
// code, a state plus 3-digit county code, or a state plus county name.
package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/sunnyharvard/sunnyharvard-hw4/internal/model"
)

// RankingsRepo encapsulates all database queries against the
// county_health_rankings reference table.
type RankingsRepo struct {
	db *sql.DB // db is the underlying database connection pool
}

// NewRankingsRepo constructs a RankingsRepo with the provided DB handle.
func NewRankingsRepo(db *sql.DB) *RankingsRepo {
	return &RankingsRepo{db: db}
}

// rankingColumns is the fixed projection of the rankings table.  Column
// names are constants verified against the live schema at startup, never
// derived from request input, so embedding them in SQL text is safe.
const rankingColumns = `State, County, State_code, County_code, Year_span,
	Measure_name, Measure_id, Numerator, Denominator, Raw_value,
	Confidence_Interval_Lower_Bound, Confidence_Interval_Upper_Bound,
	Data_Release_Year, fipscode`

// FindByMeasure returns every ranking row whose measure name equals the
// input exactly and whose location matches the resolved county set by any of
// the three join alternatives.  Rows come back ordered by the numeric value
// of Data_Release_Year ascending, with the raw Year_span string as a
// tie-break.  Every value is passed as a bound parameter.  An empty result
// is returned as an empty slice; callers decide how to surface it.
func (r *RankingsRepo) FindByMeasure(ctx context.Context, rc *ResolvedCounties, measure string) ([]*model.CountyHealthRanking, error) {
	if rc == nil || rc.Empty() {
		return nil, ErrUnresolvable
	}

	var (
		alts []string
		args []interface{}
	)
	args = append(args, measure)

	if len(rc.FIPSCodes) > 0 {
		alts = append(alts, "CAST(fipscode AS TEXT) IN ("+placeholders(len(rc.FIPSCodes))+")")
		args = appendStrings(args, rc.FIPSCodes)
	}
	if len(rc.States) > 0 && len(rc.CountyCodes) > 0 {
		alts = append(alts,
			"(State IN ("+placeholders(len(rc.States))+")"+
				" AND CAST(County_code AS TEXT) IN ("+placeholders(len(rc.CountyCodes))+"))")
		args = appendStrings(args, rc.States)
		args = appendStrings(args, rc.CountyCodes)
	}
	if len(rc.States) > 0 && len(rc.Counties) > 0 {
		alts = append(alts,
			"(State IN ("+placeholders(len(rc.States))+")"+
				" AND County IN ("+placeholders(len(rc.Counties))+"))")
		args = appendStrings(args, rc.States)
		args = appendStrings(args, rc.Counties)
	}

	q := "SELECT " + rankingColumns + `
	FROM county_health_rankings
	WHERE Measure_name = ? AND (` + strings.Join(alts, " OR ") + `)
	ORDER BY CAST(Data_Release_Year AS INTEGER) ASC, Year_span ASC`

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*model.CountyHealthRanking{}
	for rows.Next() {
		chr := new(model.CountyHealthRanking)
		if err := rows.Scan(
			&chr.State, &chr.County, &chr.StateCode, &chr.CountyCode,
			&chr.YearSpan, &chr.MeasureName, &chr.MeasureID,
			&chr.Numerator, &chr.Denominator, &chr.RawValue,
			&chr.ConfidenceIntervalLowerBound, &chr.ConfidenceIntervalUpperBound,
			&chr.DataReleaseYear, &chr.FipsCode,
		); err != nil {
			return nil, err
		}
		out = append(out, chr)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// placeholders returns n comma-separated "?" markers for an IN clause.
func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}

// appendStrings appends string values to a []interface{} argument list.
func appendStrings(args []interface{}, vals []string) []interface{} {
	for _, v := range vals {
		args = append(args, v)
	}
	return args
}
