// Package shape implements the per-route geometry reduction: selecting a
// representative shape, merging the remaining variants into it while
// discarding redundant overlapping points, and simplifying the result.
package shape

import "github.com/paulmach/orb"

// PathSource resolves shape IDs to their ordered polylines.
type PathSource interface {
	Line(shapeID string) (orb.LineString, bool)
	PointCount(shapeID string) int
}

// Representative returns the shape ID with the most points. When several
// shapes tie for the maximum, the first one in the given order wins; callers
// pass IDs in sorted order, making the choice reproducible. Returns "" for
// an empty input.
func Representative(shapeIDs []string, paths PathSource) string {
	longest := ""
	longestPts := -1
	for _, id := range shapeIDs {
		if n := paths.PointCount(id); n > longestPts {
			longest = id
			longestPts = n
		}
	}
	return longest
}
