package router // package router defines how HTTP routes are registered for the API

import (
	"net/http"

	"github.com/labstack/echo/v4"            // import the Echo web framework to handle routing
	"github.com/labstack/echo/v4/middleware" // request logging and panic recovery

	"github.com/sunnyharvard/sunnyharvard-hw4/internal/handler" // import the handlers that implement business logic
)

// RegisterRoutes wires up the two endpoints of the API on the provided Echo
// instance and installs the error handler that keeps every non-2xx body in
// the {"error": "<message>"} shape, including the framework-generated 404
// for unknown paths and 405 for known paths hit with the wrong method.
func RegisterRoutes(e *echo.Echo, cd *handler.CountyDataHandler) {
	e.HTTPErrorHandler = jsonErrorHandler
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Liveness endpoint for platform health checks.
	e.GET("/", handler.Health)

	// The lookup endpoint accepts POST only; Echo answers other methods on
	// this path with 405 through the error handler below.
	e.POST("/county_data", cd.PostCountyData)
}

// jsonErrorHandler converts every error that escapes a handler, framework
// errors included, into a JSON body with a single "error" field.  Internal
// error details never reach the client.
func jsonErrorHandler(err error, c echo.Context) {
	code := http.StatusInternalServerError
	msg := "Internal Server Error"
	if he, ok := err.(*echo.HTTPError); ok {
		code = he.Code
		if s, ok := he.Message.(string); ok {
			msg = s
		} else {
			msg = http.StatusText(code)
		}
	}
	if code == http.StatusInternalServerError {
		c.Logger().Error(err)
		msg = "Internal Server Error" // never leak internal detail
	}
	if !c.Response().Committed {
		_ = c.JSON(code, echo.Map{"error": msg})
	}
}
