package keypad

import "strings"

// order is the sequence in which the two straight runs of a route are pressed.
type order int

const (
	horizontalFirst order = iota
	verticalFirst
)

func (o order) String() string {
	if o == horizontalFirst {
		return "horizontal-first"
	}
	return "vertical-first"
}

// rule is one row of the order decision table.
type rule struct {
	name    string
	applies func(l *Layout, from, to Pos) bool
	result  order
}

// orderRules is evaluated top to bottom and the first applicable rule wins.
// Both orders have the same length. The last two rows press '<' as early and
// '>' as late as possible, which is cheapest for the keypad one level up.
var orderRules = []rule{
	{
		name: "horizontal run ends on the gap",
		applies: func(l *Layout, from, to Pos) bool {
			return l.hole == Pos{X: to.X, Y: from.Y}
		},
		result: verticalFirst,
	},
	{
		name: "vertical run ends on the gap",
		applies: func(l *Layout, from, to Pos) bool {
			return l.hole == Pos{X: from.X, Y: to.Y}
		},
		result: horizontalFirst,
	},
	{
		name: "moving left",
		applies: func(_ *Layout, from, to Pos) bool {
			return to.X < from.X
		},
		result: horizontalFirst,
	},
	{
		name: "moving right",
		applies: func(_ *Layout, from, to Pos) bool {
			return to.X > from.X
		},
		result: verticalFirst,
	},
}

// chooseOrder returns the order for a route that needs both horizontal and
// vertical moves, and the name of the rule that decided it.
func chooseOrder(l *Layout, from, to Pos) (order, string) {
	for _, r := range orderRules {
		if r.applies(l, from, to) {
			return r.result, r.name
		}
	}
	// Unreachable when both runs are non-empty.
	return horizontalFirst, "default"
}

// plan builds the shortest legal move string from one cell to another,
// ending with an Activate press.
func plan(l *Layout, from, to Pos) string {
	dx, dy := to.X-from.X, to.Y-from.Y

	var horizontal, vertical string
	if dx < 0 {
		horizontal = strings.Repeat(string(Left), -dx)
	} else {
		horizontal = strings.Repeat(string(Right), dx)
	}
	if dy < 0 {
		vertical = strings.Repeat(string(Up), -dy)
	} else {
		vertical = strings.Repeat(string(Down), dy)
	}

	if horizontal == "" || vertical == "" {
		return horizontal + vertical + string(Activate)
	}

	if o, _ := chooseOrder(l, from, to); o == verticalFirst {
		return vertical + horizontal + string(Activate)
	}
	return horizontal + vertical + string(Activate)
}
