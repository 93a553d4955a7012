package models

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/twpayne/go-polyline"
)

// RouteShape is the output entity: one simplified multi-part geometry per
// route, tagged with the route's ID. It is created once during assembly and
// never mutated afterwards.
type RouteShape struct {
	RouteID  string
	Geometry orb.MultiLineString
}

func NewRouteShape(routeID string, geometry orb.MultiLineString) RouteShape {
	return RouteShape{RouteID: routeID, Geometry: geometry}
}

// Feature converts the route shape into a GeoJSON feature carrying the
// route ID as its only property.
func (rs RouteShape) Feature() *geojson.Feature {
	f := geojson.NewFeature(rs.Geometry)
	f.Properties["route_id"] = rs.RouteID
	return f
}

// EncodedPolylines returns the geometry as Google encoded polylines, one or
// more per part. Consecutive duplicate points are dropped and a part is
// split whenever it re-traces an edge it already covered, so consumers
// don't render the same segment twice.
func (rs RouteShape) EncodedPolylines() []string {
	var encoded []string

	for _, part := range rs.Geometry {
		edges := make(map[edge]bool)
		var currentLine [][]float64
		var prev orb.Point
		havePrev := false

		for _, pt := range part {
			if havePrev && prev == pt {
				continue
			}
			if havePrev {
				e := newEdge(prev, pt)
				if edges[e] {
					if len(currentLine) > 1 {
						encoded = append(encoded, string(polyline.EncodeCoords(currentLine)))
					}
					currentLine = nil
				} else {
					edges[e] = true
				}
			}
			currentLine = append(currentLine, []float64{pt.Lat(), pt.Lon()})
			prev = pt
			havePrev = true
		}

		if len(currentLine) > 1 {
			encoded = append(encoded, string(polyline.EncodeCoords(currentLine)))
		}
	}

	return encoded
}

// edge is an undirected segment between two points, normalized so that
// (a,b) and (b,a) compare equal.
type edge struct {
	a, b orb.Point
}

func newEdge(a, b orb.Point) edge {
	if comparePoints(a, b) <= 0 {
		return edge{a: a, b: b}
	}
	return edge{a: b, b: a}
}

func comparePoints(a, b orb.Point) int {
	if a.Lat() != b.Lat() {
		if a.Lat() < b.Lat() {
			return -1
		}
		return 1
	}
	if a.Lon() != b.Lon() {
		if a.Lon() < b.Lon() {
			return -1
		}
		return 1
	}
	return 0
}
