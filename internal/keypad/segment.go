package keypad

import "strings"

// Segments splits moves after every Activate press. Each element ends with
// exactly one Activate, except a trailing run with no Activate, which is kept
// as-is so that joining the result always gives back moves.
func Segments(moves string) []string {
	parts := strings.SplitAfter(moves, string(Activate))
	if parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	return parts
}
