package shape

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/simplify"
)

// DefaultSimplifyTolerance is the Douglas-Peucker tolerance in coordinate
// units, roughly 5 meters at city scale.
const DefaultSimplifyTolerance = 0.00005

// Simplify applies Douglas-Peucker simplification to each part of the
// merged geometry independently. The part count is preserved and the
// endpoints of every part survive exactly. Topology is not preserved:
// removing interior points may introduce self-intersections, which is
// acceptable for rendering and maximizes the size reduction.
//
// Simplifying an already-simplified geometry at the same tolerance is a
// no-op. The input is not modified.
func Simplify(geometry orb.MultiLineString, tolerance float64) orb.MultiLineString {
	dp := simplify.DouglasPeucker(tolerance)

	simplified := make(orb.MultiLineString, 0, len(geometry))
	for _, part := range geometry {
		if len(part) < 2 {
			simplified = append(simplified, part.Clone())
			continue
		}
		simplified = append(simplified, dp.LineString(part.Clone()))
	}

	return simplified
}
