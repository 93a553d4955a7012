package gtfsio

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPathIndex(t *testing.T) {
	t.Run("orders points by sequence number", func(t *testing.T) {
		index := NewPathIndex([]PointRecord{
			{ShapeID: "s1", Lat: 2, Lon: 0, Sequence: 30},
			{ShapeID: "s1", Lat: 0, Lon: 0, Sequence: 10},
			{ShapeID: "s1", Lat: 1, Lon: 0, Sequence: 20},
		})

		line, ok := index.Line("s1")
		require.True(t, ok)
		assert.Equal(t, orb.LineString{{0, 0}, {0, 1}, {0, 2}}, line)
	})

	t.Run("sequence gaps are irrelevant", func(t *testing.T) {
		index := NewPathIndex([]PointRecord{
			{ShapeID: "s1", Lat: 0, Lon: 0, Sequence: 1},
			{ShapeID: "s1", Lat: 1, Lon: 1, Sequence: 1000},
		})

		line, _ := index.Line("s1")
		assert.Equal(t, orb.LineString{{0, 0}, {1, 1}}, line)
	})

	t.Run("groups multiple shapes independently", func(t *testing.T) {
		index := NewPathIndex([]PointRecord{
			{ShapeID: "a", Lat: 0, Lon: 0, Sequence: 0},
			{ShapeID: "b", Lat: 5, Lon: 5, Sequence: 0},
			{ShapeID: "a", Lat: 1, Lon: 0, Sequence: 1},
		})

		assert.Equal(t, 2, index.Size())
		assert.Equal(t, 2, index.PointCount("a"))
		assert.Equal(t, 1, index.PointCount("b"))
	})

	t.Run("unknown shape id", func(t *testing.T) {
		index := NewPathIndex(nil)

		_, ok := index.Line("nope")
		assert.False(t, ok)
		assert.Equal(t, 0, index.PointCount("nope"))
	})
}

func TestGroupPathsByRoute(t *testing.T) {
	routes := []RouteRecord{
		{ID: "r1"},
		{ID: "r2"},
		{ID: "r3"},
	}

	t.Run("deduplicates trip associations", func(t *testing.T) {
		// Several trips running the same shape must collapse to one entry.
		trips := []TripRecord{
			{RouteID: "r1", ShapeID: "s1"},
			{RouteID: "r1", ShapeID: "s1"},
			{RouteID: "r1", ShapeID: "s1"},
			{RouteID: "r1", ShapeID: "s2"},
		}

		grouped := GroupPathsByRoute(routes, trips)
		assert.Equal(t, []string{"s1", "s2"}, grouped["r1"])
	})

	t.Run("ignores trips for unknown routes", func(t *testing.T) {
		trips := []TripRecord{
			{RouteID: "ghost", ShapeID: "s1"},
		}

		grouped := GroupPathsByRoute(routes, trips)
		assert.Empty(t, grouped)
	})

	t.Run("ignores trips without a shape", func(t *testing.T) {
		trips := []TripRecord{
			{RouteID: "r1", ShapeID: ""},
		}

		grouped := GroupPathsByRoute(routes, trips)
		assert.Empty(t, grouped)
	})

	t.Run("routes without trips are absent", func(t *testing.T) {
		trips := []TripRecord{
			{RouteID: "r2", ShapeID: "s9"},
		}

		grouped := GroupPathsByRoute(routes, trips)
		_, ok := grouped["r1"]
		assert.False(t, ok)
		assert.Equal(t, []string{"s9"}, grouped["r2"])
	})

	t.Run("shape ids are sorted", func(t *testing.T) {
		trips := []TripRecord{
			{RouteID: "r1", ShapeID: "zz"},
			{RouteID: "r1", ShapeID: "aa"},
			{RouteID: "r1", ShapeID: "mm"},
		}

		grouped := GroupPathsByRoute(routes, trips)
		assert.Equal(t, []string{"aa", "mm", "zz"}, grouped["r1"])
	})
}

func TestRouteIDsInOrder(t *testing.T) {
	routes := []RouteRecord{
		{ID: "blue"},
		{ID: "red"},
		{ID: "green"},
	}
	grouped := map[string][]string{
		"red":  {"s1"},
		"blue": {"s2"},
	}

	ids := RouteIDsInOrder(routes, grouped)
	assert.Equal(t, []string{"blue", "red"}, ids)
}
