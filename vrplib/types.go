package vrplib

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/vrpkit/cvrp"
)

// Sentinel errors for the loader and the two parsers.
var (
	// ErrBadStatus indicates a non-2xx response while fetching a URL source.
	ErrBadStatus = errors.New("vrplib: unexpected HTTP status")

	// ErrDuplicateSection indicates a section marker that appears twice.
	ErrDuplicateSection = errors.New("vrplib: section appears more than once")

	// ErrNilSolution indicates a nil *Solution passed to WriteSolution.
	ErrNilSolution = errors.New("vrplib: solution is nil")

	// errFieldCount backs ParseError when a section line has the wrong arity.
	errFieldCount = errors.New("unexpected field count")
)

// Solution is the outcome of parsing a VRPLIB solution file.
type Solution struct {
	// Routes lists the parsed routes in line order. Customers only; the
	// depot is not included (see cvrp.CloseRoutes).
	Routes []cvrp.Route `json:"routes"`

	// Cost is the value of the last "Cost" line, NaN when the text had
	// none. Use HasCost before comparing.
	Cost float64 `json:"cost"`
}

// HasCost reports whether the parsed text carried a Cost line.
func (s *Solution) HasCost() bool {
	return !math.IsNaN(s.Cost)
}

// ParseError describes a malformed numeric token inside a recognized
// section or header of an instance or solution file.
type ParseError struct {
	// Section is the section marker or header key being parsed.
	Section string

	// Line is the 1-based line number in the input text.
	Line int

	// Token is the offending token (or whole line for arity errors).
	Token string

	// Err is the underlying conversion error.
	Err error
}

// Error formats the location, the token and the cause.
func (e *ParseError) Error() string {
	return fmt.Sprintf("vrplib: %s, line %d: bad token %q: %v", e.Section, e.Line, e.Token, e.Err)
}

// Unwrap exposes the conversion error to errors.Is/As chains.
func (e *ParseError) Unwrap() error {
	return e.Err
}
