// Package player implements a test player for the shared pixel grid game.
//
// A player holds the grid dimensions and a counter. Every turn maps the
// counter onto a grid coordinate in row-major order and advances it by one,
// so consecutive turns sweep the grid left to right, top to bottom.
package player

import (
	"errors"
	"math"
)

var (
	ErrDivisionByZero   = errors.New("division by zero")
	ErrCounterOverflow  = errors.New("counter overflow")
	ErrInstanceExists   = errors.New("player already exists")
	ErrInstanceNotFound = errors.New("player not found")
	ErrCorruptState     = errors.New("corrupt player state")
)

// Selector identifies a call routed through the dispatch entry point.
type Selector uint8

const (
	// SelectorYourTurn requests the next move. It is fixed at 0 by the
	// game's calling convention.
	SelectorYourTurn Selector = 0
	// SelectorState queries the stored state without advancing it.
	SelectorState Selector = 1
)

// Dimensions of the grid as (width, height).
type Dimensions struct {
	Width  uint32
	Height uint32
}

// Coord is a pixel position on the grid.
type Coord struct {
	X uint32
	Y uint32
}

// Within reports whether c lies inside a grid of the given dimensions.
// Turns only bound X; Y grows past the height once the grid is exhausted.
func (c Coord) Within(d Dimensions) bool {
	return c.X < d.Width && c.Y < d.Height
}

// State is the persisted state of one player instance.
type State struct {
	Dimensions Dimensions
	Counter    uint32
}

// New creates a player state. Dimensions are not validated: a zero width is
// accepted here and rejected by the first turn.
func New(dims Dimensions, start uint32) *State {
	return &State{
		Dimensions: dims,
		Counter:    start,
	}
}

// YourTurn returns the coordinate to colour this round and advances the
// counter. A nil coordinate means "no move"; the current strategy always
// moves. On error the state is left unchanged.
func (s *State) YourTurn() (*Coord, error) {
	w := s.Dimensions.Width
	if w == 0 {
		return nil, ErrDivisionByZero
	}
	turn := s.Counter
	if turn == math.MaxUint32 {
		return nil, ErrCounterOverflow
	}
	s.Counter = turn + 1
	return &Coord{X: turn % w, Y: turn / w}, nil
}
