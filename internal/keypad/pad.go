package keypad

import "strings"

// Pad is a cursor over a keypad. It starts on the Activate key and records
// every move produced while routing.
type Pad struct {
	layout  *Layout
	current Pos
	moves   strings.Builder
}

// New creates a Pad for kind with the cursor on the Activate key.
func New(kind Kind) *Pad {
	return NewWithLayout(LayoutFor(kind))
}

// NewWithLayout creates a Pad over an arbitrary layout.
// If layout is nil, NumericLayout is used.
func NewWithLayout(layout *Layout) *Pad {
	if layout == nil {
		layout = NumericLayout()
	}
	return &Pad{
		layout:  layout,
		current: layout.KeyToPos[Activate],
	}
}

// Current returns the cursor position.
func (p *Pad) Current() Pos {
	return p.current
}

// Moves returns everything routed on this pad so far.
func (p *Pad) Moves() string {
	return p.moves.String()
}

// RouteTo produces the move string that takes the cursor to key and presses
// it, then advances the cursor. The cursor is not moved if key is not on the
// pad.
func (p *Pad) RouteTo(key byte) (string, error) {
	target, err := p.layout.PositionOf(key)
	if err != nil {
		return "", err
	}

	route := plan(p.layout, p.current, target)

	// The decision table always avoids the gap; anything else is a bug in
	// the layout or the table, not bad input.
	if end, err := p.layout.Replay(p.current, route); err != nil || end != target {
		panic("keypad: illegal route " + route + " on " + p.layout.Kind.String() + " pad")
	}

	p.current = target
	p.moves.WriteString(route)
	return route, nil
}

// Route routes every key of keys in order and returns the concatenated
// moves. On error the cursor stays after the last key routed successfully.
func (p *Pad) Route(keys string) (string, error) {
	var sb strings.Builder
	sb.Grow(len(keys) * 4)

	for i := range len(keys) {
		route, err := p.RouteTo(keys[i])
		if err != nil {
			return "", err
		}
		sb.WriteString(route)
	}
	return sb.String(), nil
}

// RouteKeys routes keys on a fresh pad of kind.
func RouteKeys(kind Kind, keys string) (string, error) {
	return New(kind).Route(keys)
}
