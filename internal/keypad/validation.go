package keypad

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidKey = errors.New("key not on keypad")
)

// step applies one move symbol to p. Activate and unknown symbols leave p
// unchanged.
func step(p Pos, move byte) Pos {
	switch move {
	case Up:
		p.Y--
	case Down:
		p.Y++
	case Left:
		p.X--
	case Right:
		p.X++
	}
	return p
}

// IsLegal reports whether replaying moves from start on l never leaves the
// grid or lands on the gap.
func (l *Layout) IsLegal(start Pos, moves string) bool {
	p := start
	for i := range len(moves) {
		p = step(p, moves[i])
		if !l.Contains(p) {
			return false
		}
	}
	return true
}

// Replay applies moves from start and returns the final position.
// Returns an error if the walk leaves the grid or crosses the gap.
func (l *Layout) Replay(start Pos, moves string) (Pos, error) {
	p := start
	for i := range len(moves) {
		p = step(p, moves[i])
		if !l.Contains(p) {
			return p, fmt.Errorf("move %d (%q) of %q reaches %v, which is not a key on the %s pad", i, moves[i], moves, p, l.Kind)
		}
	}
	return p, nil
}
