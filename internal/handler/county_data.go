// Package handler exposes the HTTP handlers of the county data API.  This
// file implements POST /county_data: validate the request body, resolve the
// ZIP to its counties, query the rankings table and project the rows into
// the response shape.  Error responses never carry driver error text, stack
// traces or file paths; storage failures are logged server-side and surface
// as a generic 500.
package handler

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sunnyharvard/sunnyharvard-hw4/internal/model"
	"github.com/sunnyharvard/sunnyharvard-hw4/internal/repository"
)

// CountyDataHandler aggregates the repositories needed to serve a lookup.
type CountyDataHandler struct {
	ZipRepo      *repository.ZipCountyRepo // resolves a ZIP into its counties
	RankingsRepo *repository.RankingsRepo  // fetches ranking rows for those counties
}

// countyDataRow is the response projection of one ranking row.  Field order
// fixes the JSON key order; names use the canonical lowercase-with-
// underscores convention everywhere.  Pointers carry NULL database values
// through as JSON null instead of "".
type countyDataRow struct {
	ConfidenceIntervalLowerBound *string `json:"confidence_interval_lower_bound"`
	ConfidenceIntervalUpperBound *string `json:"confidence_interval_upper_bound"`
	County                       *string `json:"county"`
	CountyCode                   *string `json:"county_code"`
	DataReleaseYear              *string `json:"data_release_year"`
	Denominator                  *string `json:"denominator"`
	FipsCode                     *string `json:"fipscode"`
	MeasureID                    *string `json:"measure_id"`
	MeasureName                  *string `json:"measure_name"`
	Numerator                    *string `json:"numerator"`
	RawValue                     *string `json:"raw_value"`
	State                        *string `json:"state"`
	StateCode                    *string `json:"state_code"`
	YearSpan                     *string `json:"year_span"`
}

// PostCountyData handles POST /county_data.  Non-POST methods never reach
// this handler; the router's error handler turns them into a 405.
func (h *CountyDataHandler) PostCountyData(c echo.Context) error {
	// Decode into a generic map rather than a struct: the teapot check and
	// the field-presence checks need to see the body as the client sent it.
	// An unparsable body is a hard 400, not an empty-object fallthrough.
	var body map[string]interface{}
	if err := json.NewDecoder(c.Request().Body).Decode(&body); err != nil || body == nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Request must be JSON"})
	}

	// Easter egg: supersedes all other validation, including missing fields.
	if isTeapot(body) {
		return c.JSON(http.StatusTeapot, echo.Map{"error": "I'm a teapot"})
	}

	zip, measure, errMsg := validateRequest(body)
	if errMsg != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": errMsg})
	}

	// Validation failures above return before any connection is used; only
	// a fully validated request touches the pool.
	ctx := c.Request().Context()
	resolved, err := h.ZipRepo.ResolveCounties(ctx, zip)
	if err != nil {
		if errors.Is(err, repository.ErrZipNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "No data found for given zip and measure_name."})
		}
		c.Logger().Errorf("resolve counties for zip %s: %v", zip, err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Database error"})
	}

	rankings, err := h.RankingsRepo.FindByMeasure(ctx, resolved, measure)
	if err != nil {
		if errors.Is(err, repository.ErrUnresolvable) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "No data found for given zip and measure_name."})
		}
		c.Logger().Errorf("query rankings for zip %s: %v", zip, err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Database error"})
	}
	if len(rankings) == 0 {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "No data found for given zip and measure_name."})
	}

	out := make([]countyDataRow, 0, len(rankings))
	for _, chr := range rankings {
		out = append(out, projectRanking(chr))
	}
	return c.JSON(http.StatusOK, out)
}

// projectRanking maps a database row onto the response shape.
func projectRanking(chr *model.CountyHealthRanking) countyDataRow {
	return countyDataRow{
		ConfidenceIntervalLowerBound: nullable(chr.ConfidenceIntervalLowerBound),
		ConfidenceIntervalUpperBound: nullable(chr.ConfidenceIntervalUpperBound),
		County:                       nullable(chr.County),
		CountyCode:                   nullable(chr.CountyCode),
		DataReleaseYear:              nullable(chr.DataReleaseYear),
		Denominator:                  nullable(chr.Denominator),
		FipsCode:                     nullable(chr.FipsCode),
		MeasureID:                    nullable(chr.MeasureID),
		MeasureName:                  nullable(chr.MeasureName),
		Numerator:                    nullable(chr.Numerator),
		RawValue:                     nullable(chr.RawValue),
		State:                        nullable(chr.State),
		StateCode:                    nullable(chr.StateCode),
		YearSpan:                     nullable(chr.YearSpan),
	}
}

// nullable converts a NullString into a *string so that NULL serializes as
// JSON null.
func nullable(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	v := ns.String
	return &v
}
