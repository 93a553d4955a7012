package gtfsio

import (
	"sort"

	"github.com/paulmach/orb"
)

// PointRecord is one raw row from the shapes table: a single traced
// coordinate belonging to a shape, positioned by its sequence number.
type PointRecord struct {
	ShapeID  string
	Lat      float64
	Lon      float64
	Sequence int
}

// RouteRecord carries the route columns the generator needs. Everything
// beyond the route ID is passthrough metadata.
type RouteRecord struct {
	ID        string
	AgencyID  string
	ShortName string
	LongName  string
}

// TripRecord is the route-to-shape association extracted from the trips
// table. Trip-level columns are dropped at load time, so the same pair can
// appear once per trip that ran the shape.
type TripRecord struct {
	RouteID string
	ShapeID string
}

// Feed holds the three input tables fully in memory for the run.
type Feed struct {
	Routes []RouteRecord
	Trips  []TripRecord
	Points []PointRecord
}

// PathIndex groups raw shape point rows into named polylines, each ordered
// by its per-point sequence number.
type PathIndex struct {
	lines map[string]orb.LineString
}

// NewPathIndex builds the index from raw point records. Rows are grouped by
// shape ID and stable-sorted by sequence number; ties keep their input order.
func NewPathIndex(points []PointRecord) *PathIndex {
	grouped := make(map[string][]PointRecord)
	for _, pt := range points {
		grouped[pt.ShapeID] = append(grouped[pt.ShapeID], pt)
	}

	lines := make(map[string]orb.LineString, len(grouped))
	for shapeID, pts := range grouped {
		sort.SliceStable(pts, func(i, j int) bool {
			return pts[i].Sequence < pts[j].Sequence
		})

		line := make(orb.LineString, 0, len(pts))
		for _, pt := range pts {
			line = append(line, orb.Point{pt.Lon, pt.Lat})
		}
		lines[shapeID] = line
	}

	return &PathIndex{lines: lines}
}

// Line returns the ordered polyline for a shape ID.
func (x *PathIndex) Line(shapeID string) (orb.LineString, bool) {
	line, ok := x.lines[shapeID]
	return line, ok
}

// PointCount returns the number of points in a shape, or zero for an
// unknown shape ID.
func (x *PathIndex) PointCount(shapeID string) int {
	return len(x.lines[shapeID])
}

// Size returns the number of distinct shapes in the index.
func (x *PathIndex) Size() int {
	return len(x.lines)
}

// GroupPathsByRoute joins the routes table against the deduplicated
// route/shape associations and returns, per route ID, the unique set of
// shape IDs, sorted for reproducible processing order. Routes without any
// association are absent from the result.
//
// The (route_id, shape_id) pairs are deduplicated before the join: multiple
// trips commonly reference the same shape, and joining first would multiply
// rows combinatorially.
func GroupPathsByRoute(routes []RouteRecord, trips []TripRecord) map[string][]string {
	known := make(map[string]bool, len(routes))
	for _, r := range routes {
		known[r.ID] = true
	}

	sets := make(map[string]map[string]bool)
	for _, t := range trips {
		if t.ShapeID == "" || !known[t.RouteID] {
			continue
		}
		set, ok := sets[t.RouteID]
		if !ok {
			set = make(map[string]bool)
			sets[t.RouteID] = set
		}
		set[t.ShapeID] = true
	}

	grouped := make(map[string][]string, len(sets))
	for routeID, set := range sets {
		ids := make([]string, 0, len(set))
		for shapeID := range set {
			ids = append(ids, shapeID)
		}
		sort.Strings(ids)
		grouped[routeID] = ids
	}

	return grouped
}

// RouteIDsInOrder returns the route IDs that survived grouping, in routes
// table order. Output order is not contractually meaningful, but a stable
// order keeps runs reproducible.
func RouteIDsInOrder(routes []RouteRecord, grouped map[string][]string) []string {
	seen := make(map[string]bool, len(grouped))
	ids := make([]string, 0, len(grouped))
	for _, r := range routes {
		if len(grouped[r.ID]) > 0 && !seen[r.ID] {
			seen[r.ID] = true
			ids = append(ids, r.ID)
		}
	}
	return ids
}
