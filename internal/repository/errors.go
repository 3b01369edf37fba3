// Package repository defines error types that are reused across multiple
// repositories. These sentinel values allow higher layers such as handlers
// to distinguish between different failure scenarios without inspecting
// error strings. Both values below ultimately surface as HTTP 404, but they
// describe different situations: an unknown ZIP versus a ZIP whose county
// codes are too degenerate to build any safe join against the rankings
// table.
package repository

import "errors"

// ErrZipNotFound is returned when a ZIP code has no row at all in the
// zip_county reference table.
var ErrZipNotFound = errors.New("zip not found")

// ErrUnresolvable is returned when a ZIP resolved to county rows but none
// of the join alternatives has both operand sets populated, so no query
// against the rankings table can be built.
var ErrUnresolvable = errors.New("county set unresolvable")
