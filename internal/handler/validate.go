package handler

import "regexp"

// zipPattern accepts exactly five ASCII decimal digits: no signs, no spaces,
// no ZIP+4 suffixes.
var zipPattern = regexp.MustCompile(`^[0-9]{5}$`)

// isTeapot reports whether the request body carries the easter-egg marker
// {"coffee": "teapot"}.  The check looks at that single key with exact value
// equality and supersedes every other validation, so it runs before the
// required-field checks.
func isTeapot(body map[string]interface{}) bool {
    return body["coffee"] == "teapot"
}

// validateRequest checks the two required fields of a decoded request body
// and returns the validated zip and measure name.  On failure it returns a
// human-readable message suitable for a 400 response body.  It is a pure
// function of its input: no database access, no side effects.
func validateRequest(body map[string]interface{}) (zip, measure, errMsg string) {
    zip, _ = body["zip"].(string)
    measure, _ = body["measure_name"].(string)

    if zip == "" || measure == "" {
        return "", "", "Both 'zip' and 'measure_name' are required."
    }
    if !zipPattern.MatchString(zip) {
        return "", "", "ZIP code must be a 5-digit number."
    }
    if _, ok := allowedMeasures[measure]; !ok {
        return "", "", "Invalid 'measure_name' value."
    }
    return zip, measure, ""
}
