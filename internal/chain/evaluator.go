// Package chain computes how many presses a stack of directional keypads
// needs to reproduce a move string on the keypad below it.
package chain

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/rybkr/keypad/internal/keypad"
)

var (
	ErrInvalidDepth  = errors.New("depth must not be negative")
	ErrDepthTooLarge = errors.New("depth too large to expand literally")
	ErrOverflow      = errors.New("press count overflows int")
)

// Add returns a+b for non-negative operands, or ErrOverflow if the sum does
// not fit in an int.
func Add(a, b int) (int, error) {
	if a > math.MaxInt-b {
		return 0, fmt.Errorf("%w: %d + %d", ErrOverflow, a, b)
	}
	return a + b, nil
}

// Mul returns a*b for non-negative operands, or ErrOverflow if the product
// does not fit in an int.
func Mul(a, b int) (int, error) {
	if a != 0 && b > math.MaxInt/a {
		return 0, fmt.Errorf("%w: %d * %d", ErrOverflow, a, b)
	}
	return a * b, nil
}

// Evaluator expands move strings through layers of directional keypads.
type Evaluator struct {
	cache   *Cache
	options *Options
}

// New creates an evaluator. If options is nil, DefaultOptions is used.
func New(options *Options) *Evaluator {
	if options == nil {
		options = DefaultOptions()
	}

	cache := options.Cache
	if cache == nil {
		cache = NewCache()
	}

	return &Evaluator{
		cache:   cache,
		options: options,
	}
}

// Cache returns the evaluator's memo table.
func (e *Evaluator) Cache() *Cache {
	return e.cache
}

// expandOnce returns the moves a directional keypad one level up must make
// to type segment. A segment starts and ends on Activate, so a fresh pad is
// always in the right place.
func expandOnce(segment string) (string, error) {
	return keypad.New(keypad.Directional).Route(segment)
}

// ExpandedLength returns the number of presses needed to type segment
// through depth directional keypads. At depth 0 it is the segment's own
// length.
func (e *Evaluator) ExpandedLength(segment string, depth int) (int, error) {
	if depth < 0 {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidDepth, depth)
	}
	if depth == 0 {
		return len(segment), nil
	}

	if n, ok := e.cache.Get(segment, depth); ok {
		return n, nil
	}

	moves, err := expandOnce(segment)
	if err != nil {
		return 0, err
	}

	total := 0
	for _, sub := range keypad.Segments(moves) {
		n, err := e.ExpandedLength(sub, depth-1)
		if err != nil {
			return 0, err
		}
		if total, err = Add(total, n); err != nil {
			return 0, err
		}
	}

	e.cache.Put(segment, depth, total)
	return total, nil
}

// Length sums ExpandedLength over every segment of moves.
func (e *Evaluator) Length(moves string, depth int) (int, error) {
	total := 0
	for _, seg := range keypad.Segments(moves) {
		n, err := e.ExpandedLength(seg, depth)
		if err != nil {
			return 0, err
		}
		if total, err = Add(total, n); err != nil {
			return 0, err
		}
	}
	return total, nil
}

// Expand returns the literal press sequence for moves at the given depth.
// The result grows exponentially, so depth is limited by
// Options.MaxExpandDepth.
func (e *Evaluator) Expand(moves string, depth int) (string, error) {
	if depth < 0 {
		return "", fmt.Errorf("%w: got %d", ErrInvalidDepth, depth)
	}
	if depth > e.options.MaxExpandDepth {
		return "", fmt.Errorf("%w: %d exceeds limit %d", ErrDepthTooLarge, depth, e.options.MaxExpandDepth)
	}

	for range depth {
		var sb strings.Builder
		for _, seg := range keypad.Segments(moves) {
			next, err := expandOnce(seg)
			if err != nil {
				return "", err
			}
			sb.WriteString(next)
		}
		moves = sb.String()
	}
	return moves, nil
}

// Levels returns the literal press sequence at every depth from 0 to depth,
// outermost last.
func (e *Evaluator) Levels(moves string, depth int) ([]string, error) {
	if depth < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidDepth, depth)
	}
	levels := make([]string, 0, depth+1)
	for d := range depth + 1 {
		s, err := e.Expand(moves, d)
		if err != nil {
			return nil, err
		}
		levels = append(levels, s)
	}
	return levels, nil
}
