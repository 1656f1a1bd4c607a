package batch

import (
	"fmt"
	"strconv"

	"github.com/rybkr/keypad/internal/keypad"
)

// ParseCode validates a door code and returns its numeric value: the digits
// before the single trailing Activate key, read in base 10.
func ParseCode(code string) (int, error) {
	layout := keypad.NumericLayout()
	for i := range len(code) {
		if _, err := layout.PositionOf(code[i]); err != nil {
			return 0, fmt.Errorf("code %q: %w", code, err)
		}
	}

	if len(code) < 2 || code[len(code)-1] != keypad.Activate {
		return 0, fmt.Errorf("%w: %q must be digits followed by %q", ErrMalformedCode, code, keypad.Activate)
	}

	digits := code[:len(code)-1]
	for i := range len(digits) {
		if digits[i] < '0' || digits[i] > '9' {
			return 0, fmt.Errorf("%w: %q has %q at position %d", ErrMalformedCode, code, digits[i], i)
		}
	}

	val, err := strconv.Atoi(digits)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrMalformedCode, code, err)
	}
	return val, nil
}
