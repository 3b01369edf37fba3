package handler

// allowedMeasures is the fixed set of public-health measures the API serves.
// Matching is exact and case-sensitive: "Adult Obesity" is not a valid
// variant of "Adult obesity".
var allowedMeasures = map[string]struct{}{
    "Violent crime rate":              {},
    "Unemployment":                    {},
    "Children in poverty":             {},
    "Diabetic screening":              {},
    "Mammography screening":           {},
    "Preventable hospital stays":      {},
    "Uninsured":                       {},
    "Sexually transmitted infections": {},
    "Physical inactivity":             {},
    "Adult obesity":                   {},
    "Premature Death":                 {},
    "Daily fine particulate matter":   {},
}
