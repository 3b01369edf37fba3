package model

import "database/sql"

// CountyHealthRanking represents one row of the county_health_rankings
// reference table: a single public-health measure observed for one county
// over one year span.  The bulk loader stores every column as TEXT and some
// cells are empty in the source data, so every field is nullable; NULL must
// survive into the API response as JSON null, never as "".
//
// The natural dedup key of the table is (fipscode, measure_name, year_span);
// the table itself is append-only reference data loaded out-of-band.
type CountyHealthRanking struct {
    State                        sql.NullString // county_health_rankings.State
    County                       sql.NullString // county_health_rankings.County
    StateCode                    sql.NullString // county_health_rankings.State_code
    CountyCode                   sql.NullString // county_health_rankings.County_code
    YearSpan                     sql.NullString // county_health_rankings.Year_span
    MeasureName                  sql.NullString // county_health_rankings.Measure_name
    MeasureID                    sql.NullString // county_health_rankings.Measure_id
    Numerator                    sql.NullString // county_health_rankings.Numerator
    Denominator                  sql.NullString // county_health_rankings.Denominator
    RawValue                     sql.NullString // county_health_rankings.Raw_value
    ConfidenceIntervalLowerBound sql.NullString // county_health_rankings.Confidence_Interval_Lower_Bound
    ConfidenceIntervalUpperBound sql.NullString // county_health_rankings.Confidence_Interval_Upper_Bound
    DataReleaseYear              sql.NullString // county_health_rankings.Data_Release_Year
    FipsCode                     sql.NullString // county_health_rankings.fipscode
}
