// Package selection parses user picks against a presented suggestion list.
package selection

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseIndices reads comma/space separated 1-based indices and returns them
// 0-based. Validation is all-or-nothing: a single non-numeric or out-of-range
// token rejects the whole input, so a typo never half-applies a selection.
func ParseIndices(text string, max int) ([]int, error) {
	tokens := strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	if len(tokens) == 0 {
		return nil, fmt.Errorf("no selection given")
	}

	indices := make([]int, 0, len(tokens))
	seen := make(map[int]bool, len(tokens))
	for _, tok := range tokens {
		n, err := strconv.Atoi(tok)
		if err != nil {
			return nil, fmt.Errorf("invalid selection token %q", tok)
		}
		if n < 1 || n > max {
			return nil, fmt.Errorf("selection %d is out of range 1-%d", n, max)
		}
		if seen[n] {
			continue
		}
		seen[n] = true
		indices = append(indices, n-1)
	}
	return indices, nil
}
