package bracket

import (
	"fmt"

	"photoflow/internal/scan"
	"photoflow/internal/services"
)

// Set is an ordered group of exactly the configured number of bracketed
// exposures. ID is derived from the first member's file name.
type Set struct {
	ID    string
	Items []scan.InputItem
}

// Group walks items in fixed-size non-overlapping windows of count consecutive
// entries. It returns the complete sets in input order plus the number of
// trailing items that did not fill a final set. count must be at least 2.
func Group(items []scan.InputItem, count int) ([]Set, int, error) {
	if count < 2 {
		return nil, 0, services.Wrap(services.ErrInvalidBracketCount, "bracket", "group",
			fmt.Sprintf("bracket count must be at least 2; got %d", count), nil)
	}

	sets := make([]Set, 0, len(items)/count)
	for start := 0; start+count <= len(items); start += count {
		window := items[start : start+count]
		members := make([]scan.InputItem, count)
		copy(members, window)
		sets = append(sets, Set{
			ID:    window[0].Stem(),
			Items: members,
		})
	}

	dropped := len(items) % count
	return sets, dropped, nil
}
