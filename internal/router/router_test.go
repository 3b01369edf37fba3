package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sunnyharvard/sunnyharvard-hw4/internal/handler"
	"github.com/sunnyharvard/sunnyharvard-hw4/internal/repository"
)

// newTestServer builds a full Echo instance with routes registered, backed
// by a sqlmock database, so requests exercise routing and the error handler
// exactly as in production.
func newTestServer(t *testing.T) (*echo.Echo, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	e := echo.New()
	RegisterRoutes(e, &handler.CountyDataHandler{
		ZipRepo:      repository.NewZipCountyRepo(db),
		RankingsRepo: repository.NewRankingsRepo(db),
	})
	return e, mock
}

func do(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestHealthEndpoint(t *testing.T) {
	e, _ := newTestServer(t)
	rec := do(e, http.MethodGet, "/", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, true, body["ok"])
}

func TestGetOnDataEndpointIs405(t *testing.T) {
	e, _ := newTestServer(t)
	for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete} {
		rec := do(e, method, "/county_data", "")
		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code, method)

		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "Method Not Allowed", body["error"])
	}
}

func TestUnknownPathIs404JSON(t *testing.T) {
	e, _ := newTestServer(t)
	rec := do(e, http.MethodGet, "/no_such_endpoint", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body, "error")
}

func TestTeapotThroughFullStack(t *testing.T) {
	e, _ := newTestServer(t)
	rec := do(e, http.MethodPost, "/county_data", `{"coffee": "teapot"}`)
	assert.Equal(t, http.StatusTeapot, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "I'm a teapot", body["error"])
}

func TestLookupThroughFullStack(t *testing.T) {
	e, mock := newTestServer(t)
	mock.ExpectQuery("SELECT (.+) FROM zip_county").
		WithArgs("02138").
		WillReturnRows(sqlmock.NewRows([]string{"zip", "state_abbreviation", "county", "county_code"}).
			AddRow("02138", "MA", "Middlesex County", "25017"))
	mock.ExpectQuery("SELECT (.+) FROM county_health_rankings").
		WillReturnRows(sqlmock.NewRows([]string{
			"State", "County", "State_code", "County_code", "Year_span",
			"Measure_name", "Measure_id", "Numerator", "Denominator", "Raw_value",
			"Confidence_Interval_Lower_Bound", "Confidence_Interval_Upper_Bound",
			"Data_Release_Year", "fipscode",
		}).AddRow("MA", "Middlesex County", "25", "017", "2009-2011",
			"Adult obesity", "11", "60771.02", "263078", "0.23",
			"0.22", "0.24", "2012", "25017"))

	rec := do(e, http.MethodPost, "/county_data", `{"zip": "02138", "measure_name": "Adult obesity"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var rows []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, "25017", rows[0]["fipscode"])
	assert.NoError(t, mock.ExpectationsWereMet())
}
