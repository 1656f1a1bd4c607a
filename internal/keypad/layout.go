package keypad

import "fmt"

// Kind identifies which of the two keypad designs a Layout describes.
type Kind int

const (
	Numeric Kind = iota
	Directional
)

func (k Kind) String() string {
	switch k {
	case Numeric:
		return "numeric"
	case Directional:
		return "directional"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Special keys and grid markers.
const (
	Activate = 'A'
	Up       = '^'
	Down     = 'v'
	Left     = '<'
	Right    = '>'

	// holeMark is the cell marker used in layout rows for the gap.
	holeMark = ' '
)

// Pos is a cell on a keypad grid. X grows to the right, Y grows downwards.
type Pos struct {
	X, Y int
}

// Layout describes the geometry of a keypad: where every key sits and where
// the single gap is.
//
// Layout is immutable after construction; the package-level layouts are
// shared by every Pad.
type Layout struct {
	// Kind is the keypad design this layout belongs to.
	Kind Kind

	// KeyToPos maps a key to its cell.
	KeyToPos map[byte]Pos

	// PosToKey is the inverse of KeyToPos.
	PosToKey map[Pos]byte

	hole  Pos
	width int
	rows  int
}

var (
	numericLayout     = mustLayout(Numeric, "789", "456", "123", " 0A")
	directionalLayout = mustLayout(Directional, " ^A", "<v>")
)

// NumericLayout returns the door keypad:
//
//	+---+---+---+
//	| 7 | 8 | 9 |
//	+---+---+---+
//	| 4 | 5 | 6 |
//	+---+---+---+
//	| 1 | 2 | 3 |
//	+---+---+---+
//	    | 0 | A |
//	    +---+---+
func NumericLayout() *Layout {
	return numericLayout
}

// DirectionalLayout returns the robot control keypad:
//
//	    +---+---+
//	    | ^ | A |
//	+---+---+---+
//	| < | v | > |
//	+---+---+---+
func DirectionalLayout() *Layout {
	return directionalLayout
}

// LayoutFor returns the shared layout for kind.
func LayoutFor(kind Kind) *Layout {
	if kind == Directional {
		return directionalLayout
	}
	return numericLayout
}

// mustLayout builds one of the hard-coded layouts; they are always valid, so
// a failure is a bug.
func mustLayout(kind Kind, rows ...string) *Layout {
	l, err := NewLayout(kind, rows...)
	if err != nil {
		panic("keypad: built-in " + kind.String() + " layout failed validation: " + err.Error())
	}
	return l
}

// NewLayout builds a Layout from its rows, top row first. A space marks the
// gap. Returns an error if the rows are ragged, a key repeats, the Activate
// key is missing or there is not exactly one gap.
func NewLayout(kind Kind, rows ...string) (*Layout, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("layout: %s pad has no rows", kind)
	}

	l := &Layout{
		Kind:     kind,
		KeyToPos: make(map[byte]Pos),
		PosToKey: make(map[Pos]byte),
		width:    len(rows[0]),
		rows:     len(rows),
	}

	holes := 0
	for y, row := range rows {
		if len(row) != l.width {
			return nil, fmt.Errorf("layout: %s pad row %d has width %d, expected %d", kind, y, len(row), l.width)
		}
		for x := range len(row) {
			p := Pos{X: x, Y: y}
			key := row[x]
			if key == holeMark {
				l.hole = p
				holes++
				continue
			}
			if prev, ok := l.KeyToPos[key]; ok {
				return nil, fmt.Errorf("layout: %s pad key %q appears at %v and %v", kind, key, prev, p)
			}
			l.KeyToPos[key] = p
			l.PosToKey[p] = key
		}
	}

	if holes != 1 {
		return nil, fmt.Errorf("layout: %s pad has %d gaps, expected exactly 1", kind, holes)
	}
	if _, ok := l.KeyToPos[Activate]; !ok {
		return nil, fmt.Errorf("layout: %s pad has no %q key", kind, Activate)
	}
	return l, nil
}

// PositionOf returns the cell of key, or ErrInvalidKey if the pad has no such
// key.
func (l *Layout) PositionOf(key byte) (Pos, error) {
	p, ok := l.KeyToPos[key]
	if !ok {
		return Pos{}, fmt.Errorf("%w: %q is not on the %s pad", ErrInvalidKey, key, l.Kind)
	}
	return p, nil
}

// Hole returns the position of the gap.
func (l *Layout) Hole() Pos {
	return l.hole
}

// KeyAt returns the key at p. The second result is false for the gap and for
// cells outside the grid.
func (l *Layout) KeyAt(p Pos) (byte, bool) {
	key, ok := l.PosToKey[p]
	return key, ok
}

// Contains reports whether p lies on the grid and is not the gap.
func (l *Layout) Contains(p Pos) bool {
	_, ok := l.PosToKey[p]
	return ok
}

// Keys returns every key of the layout in row-major order.
func (l *Layout) Keys() []byte {
	keys := make([]byte, 0, len(l.KeyToPos))
	for y := range l.rows {
		for x := range l.width {
			if key, ok := l.KeyAt(Pos{X: x, Y: y}); ok {
				keys = append(keys, key)
			}
		}
	}
	return keys
}
