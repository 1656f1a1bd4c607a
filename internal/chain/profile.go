package chain

import "fmt"

// Profile returns the press count of moves at every depth from 0 to
// maxDepth. Entry d is what d directional keypads would need.
func (e *Evaluator) Profile(moves string, maxDepth int) ([]int, error) {
	if maxDepth < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidDepth, maxDepth)
	}

	counts := make([]int, 0, maxDepth+1)
	for d := range maxDepth + 1 {
		n, err := e.Length(moves, d)
		if err != nil {
			return nil, err
		}
		counts = append(counts, n)
	}
	return counts, nil
}

// GrowthFactor returns the ratio between the last two entries of a profile,
// or 0 if there are fewer than two.
func GrowthFactor(profile []int) float64 {
	if len(profile) < 2 || profile[len(profile)-2] == 0 {
		return 0
	}
	return float64(profile[len(profile)-1]) / float64(profile[len(profile)-2])
}
