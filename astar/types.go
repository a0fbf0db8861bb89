package astar

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/gridpath/grid"
)

// Sentinel errors returned by the astar package.
var (
	// ErrNilGrid indicates that a nil *grid.Grid was passed to Search.
	ErrNilGrid = errors.New("astar: grid is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("astar: invalid option supplied")

	// ErrPathUnavailable is the panic value (wrapped) raised by ReconstructPath
	// when the result holds no route.
	ErrPathUnavailable = errors.New("astar: no path available in result")
)

// Outcome is the result code of a search. Values match the classic
// result enumeration (PATH_NOT_FOUND = -1 ... ALREADY_AT_DESTINATION = 4).
type Outcome int

const (
	// PathNotFound: the frontier was exhausted without reaching the destination.
	PathNotFound Outcome = -1
	// FoundPath: a route exists and the cell table holds it.
	FoundPath Outcome = 0
	// InvalidSource: the source lies outside the grid.
	InvalidSource Outcome = 1
	// InvalidDestination: the destination lies outside the grid.
	InvalidDestination Outcome = 2
	// Blocked: the source or the destination cell is not traversable.
	Blocked Outcome = 3
	// AlreadyAtDestination: source and destination are the same cell.
	AlreadyAtDestination Outcome = 4
)

// String returns the identifier of the outcome.
func (o Outcome) String() string {
	switch o {
	case PathNotFound:
		return "PathNotFound"
	case FoundPath:
		return "FoundPath"
	case InvalidSource:
		return "InvalidSource"
	case InvalidDestination:
		return "InvalidDestination"
	case Blocked:
		return "Blocked"
	case AlreadyAtDestination:
		return "AlreadyAtDestination"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Message returns a one-line human description of the outcome.
func (o Outcome) Message() string {
	switch o {
	case PathNotFound:
		return "Path was not found"
	case FoundPath:
		return "The destination cell is found"
	case InvalidSource:
		return "Source is invalid"
	case InvalidDestination:
		return "Destination is invalid"
	case Blocked:
		return "Source or the destination is blocked"
	case AlreadyAtDestination:
		return "Already at destination"
	default:
		return o.String()
	}
}

// NoParent marks a CellRecord that has not been reached yet.
var NoParent = grid.Coordinate{Row: -1, Col: -1}

// CellRecord is the per-cell search metadata.
// The source cell is its own parent; unreached cells have Parent == NoParent
// and F = G = H = +Inf.
type CellRecord struct {
	F, G, H float64
	Parent  grid.Coordinate
}

// Reached reports whether the cell has been assigned a parent.
func (r CellRecord) Reached() bool {
	return r.Parent != NoParent
}

func unreached() CellRecord {
	inf := math.Inf(1)
	return CellRecord{F: inf, G: inf, H: inf, Parent: NoParent}
}

// Result is the output of one Search call.
//
// Cells and Closed are row-major tables of length rows×cols. They are nil when
// the outcome was decided by a precondition check (InvalidSource,
// InvalidDestination, Blocked, AlreadyAtDestination).
type Result struct {
	Outcome     Outcome
	Source      grid.Coordinate
	Destination grid.Coordinate
	Cells       []CellRecord
	Closed      []bool
	// Expanded counts cells taken from the frontier and expanded.
	Expanded int
	// Truncated is set when the search stopped at the MaxExpansions cap.
	Truncated bool

	g *grid.Grid
}

// Cell returns the record for c. It panics if the result has no table
// or c lies outside the grid.
func (r Result) Cell(c grid.Coordinate) CellRecord {
	if r.g == nil || r.Cells == nil || !r.g.InBounds(c) {
		panic(fmt.Sprintf("astar: no cell record for %v", c))
	}
	return r.Cells[r.g.Index(c)]
}

// IsClosed reports whether c was finalized during the search.
func (r Result) IsClosed(c grid.Coordinate) bool {
	if r.g == nil || r.Closed == nil || !r.g.InBounds(c) {
		return false
	}
	return r.Closed[r.g.Index(c)]
}

// Cost returns the accumulated cost recorded for the destination,
// or +Inf when no path was found.
func (r Result) Cost() float64 {
	if r.Outcome != FoundPath {
		return math.Inf(1)
	}
	return r.Cell(r.Destination).G
}

// Mode selects the termination rule of the main loop.
type Mode int

const (
	// EagerExit stops when the destination is first seen as a neighbor.
	EagerExit Mode = iota
	// ExitOnExtract stops when the destination is extracted from the frontier.
	ExitOnExtract
)

// String returns "eager" or "extract".
func (m Mode) String() string {
	switch m {
	case EagerExit:
		return "eager"
	case ExitOnExtract:
		return "extract"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode converts "eager" or "extract" to a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "eager", "":
		return EagerExit, nil
	case "extract":
		return ExitOnExtract, nil
	default:
		return EagerExit, fmt.Errorf("%w: unknown mode %q", ErrOptionViolation, s)
	}
}

// Option configures Search via functional arguments.
// If an Option is invalid it is recorded and surfaced as ErrOptionViolation
// when Search is invoked.
type Option func(*Options)

// Options holds the parameters and callbacks of a search.
type Options struct {
	// Mode selects the termination rule. Default EagerExit.
	Mode Mode

	// Heuristic estimates the remaining cost. Default Euclidean.
	Heuristic Heuristic

	// MaxExpansions, if > 0, stops the search after that many expansions.
	// 0 means no limit.
	MaxExpansions int

	// OnExpand is called after a cell is closed, before its neighbors are scanned.
	OnExpand func(at grid.Coordinate, rec CellRecord)

	// OnRelax is called after a neighbor's record improves.
	OnRelax func(from, to grid.Coordinate, rec CellRecord)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - EagerExit termination
//   - Euclidean heuristic
//   - no expansion limit
//   - no-op hooks.
func DefaultOptions() Options {
	return Options{
		Mode:          EagerExit,
		Heuristic:     Euclidean,
		MaxExpansions: 0,
		OnExpand:      func(grid.Coordinate, CellRecord) {},
		OnRelax:       func(_, _ grid.Coordinate, _ CellRecord) {},
	}
}

// WithMode sets the termination rule.
func WithMode(m Mode) Option {
	return func(o *Options) {
		if m != EagerExit && m != ExitOnExtract {
			o.err = fmt.Errorf("%w: unknown mode %d", ErrOptionViolation, int(m))
			return
		}
		o.Mode = m
	}
}

// WithHeuristic replaces the Euclidean estimate. A nil heuristic is invalid.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		if h == nil {
			o.err = fmt.Errorf("%w: heuristic is nil", ErrOptionViolation)
			return
		}
		o.Heuristic = h
	}
}

// WithMaxExpansions caps the number of expanded cells.
//
//	n > 0: stop after n expansions (Result.Truncated is set)
//	n == 0: no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

// WithOnExpand registers a callback run for every expanded cell.
func WithOnExpand(fn func(at grid.Coordinate, rec CellRecord)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithOnRelax registers a callback run whenever a neighbor's record improves.
func WithOnRelax(fn func(from, to grid.Coordinate, rec CellRecord)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnRelax = fn
		}
	}
}
