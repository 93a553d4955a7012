package shape

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// DefaultBufferRadius is the coverage radius in coordinate units, roughly
// 30 meters at city scale. Coordinates are treated as planar, a known
// approximation that holds for city-scale networks.
const DefaultBufferRadius = 0.0001

// Reduce merges the variant shapes of a route into the representative.
// The accumulated geometry starts as the representative alone; each variant
// is tested against a buffer of radius around everything accumulated so far.
// Variants that lie entirely inside the buffer are discarded. Otherwise the
// runs of points that fall outside the buffer become additional line parts,
// and later variants are tested against the grown geometry.
//
// The result therefore depends on processing order, bounded by the radius;
// callers pass variants in a fixed order to keep runs reproducible.
func Reduce(representative orb.LineString, variants []orb.LineString, radius float64) orb.MultiLineString {
	accumulated := orb.MultiLineString{representative.Clone()}

	for _, variant := range variants {
		parts := uncoveredRuns(variant, accumulated, radius)
		accumulated = append(accumulated, parts...)
	}

	return accumulated
}

// uncoveredRuns returns the maximal runs of consecutive points of line that
// are farther than radius from the accumulated geometry. Runs of a single
// point cannot form a line part and are dropped.
func uncoveredRuns(line orb.LineString, accumulated orb.MultiLineString, radius float64) []orb.LineString {
	var parts []orb.LineString
	var run orb.LineString

	flush := func() {
		if len(run) >= 2 {
			parts = append(parts, run)
		}
		run = nil
	}

	for _, pt := range line {
		if planar.DistanceFrom(accumulated, pt) <= radius {
			flush()
			continue
		}
		run = append(run, pt)
	}
	flush()

	return parts
}
