package party

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrMalformedSelection is returned when a raw selection contains a token that is not an integer.
var ErrMalformedSelection = errors.New("selection must be a comma-separated list of integers")

// ParseSelection converts a raw comma-separated list into catalog indices.
// A single unparsable token rejects the whole batch; out-of-range indices are
// dropped while order and duplicates are kept. A blank input is an empty selection.
func ParseSelection(raw string, catalogLen int) ([]int, error) {
	if strings.TrimSpace(raw) == "" {
		return []int{}, nil
	}

	parts := strings.Split(raw, ",")
	indices := make([]int, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		value, err := strconv.Atoi(part)
		if errors.Is(err, strconv.ErrRange) {
			// A well-formed integer outside the int range can never be a catalog index.
			continue
		}
		if err != nil {
			return []int{}, fmt.Errorf("%w: invalid index %q", ErrMalformedSelection, part)
		}
		indices = append(indices, value)
	}

	return FilterIndices(indices, catalogLen), nil
}

// FilterIndices keeps only indices in [0, catalogLen).
func FilterIndices(indices []int, catalogLen int) []int {
	out := make([]int, 0, len(indices))
	for _, idx := range indices {
		if idx >= 0 && idx < catalogLen {
			out = append(out, idx)
		}
	}
	return out
}
