package model

// ZipCounty represents one row of the zip_county reference table, the
// crosswalk between a 5-digit ZIP code and the county it belongs to.  A ZIP
// may legitimately appear in multiple rows because postal boundaries do not
// align with county boundaries; resolution must carry every match forward.
//
// Fields:
//  Zip        – 5-digit ZIP code, stored and compared as a string.
//  State      – two-letter state abbreviation (zip_county.state_abbreviation).
//  County     – county display name, e.g. "Middlesex County".
//  CountyCode – combined or partial FIPS-like code for the county.
type ZipCounty struct {
    Zip        string // zip_county.zip
    State      string // zip_county.state_abbreviation
    County     string // zip_county.county
    CountyCode string // zip_county.county_code
}
