// Package ordering assigns sort positions for items in an ordered scope.
//
// Positions are append-only: the next position is max+1, and deletions leave
// gaps. Callers must treat positions as a total order, not a 1..N index.
// This avoids rewriting every sibling row on each insert.
package ordering

// Next returns the sort position for a new item given the current maximum
// position in the scope (0 when the scope is empty). A requested position is
// honored only when positive; non-positive requests fall back to max+1.
func Next(currentMax, requested int) int {
	if requested > 0 {
		return requested
	}
	return currentMax + 1
}
