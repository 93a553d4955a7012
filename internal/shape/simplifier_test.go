package shape

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimplify(t *testing.T) {
	t.Run("removes collinear interior points", func(t *testing.T) {
		geometry := orb.MultiLineString{
			{{0, 0}, {0, 0.001}, {0, 0.002}, {0, 0.003}},
		}

		got := Simplify(geometry, DefaultSimplifyTolerance)

		require.Len(t, got, 1)
		assert.Equal(t, orb.LineString{{0, 0}, {0, 0.003}}, got[0])
	})

	t.Run("keeps points that deviate beyond the tolerance", func(t *testing.T) {
		geometry := orb.MultiLineString{
			{{0, 0}, {0.001, 0.001}, {0, 0.002}},
		}

		got := Simplify(geometry, DefaultSimplifyTolerance)

		require.Len(t, got, 1)
		assert.Equal(t, geometry[0], got[0])
	})

	t.Run("preserves part count and endpoints", func(t *testing.T) {
		geometry := orb.MultiLineString{
			{{0, 0}, {0, 0.001}, {0, 0.002}},
			{{1, 0}, {1.000001, 0.001}, {1, 0.002}},
		}

		got := Simplify(geometry, DefaultSimplifyTolerance)

		require.Len(t, got, 2)
		for i, part := range got {
			assert.Equal(t, geometry[i][0], part[0])
			assert.Equal(t, geometry[i][len(geometry[i])-1], part[len(part)-1])
		}
	})

	t.Run("is idempotent at a fixed tolerance", func(t *testing.T) {
		geometry := orb.MultiLineString{
			{{0, 0}, {0.00001, 0.001}, {0.002, 0.002}, {0.002, 0.004}},
			{{1, 1}, {1.001, 1.001}},
		}

		once := Simplify(geometry, DefaultSimplifyTolerance)
		twice := Simplify(once, DefaultSimplifyTolerance)

		assert.Equal(t, once, twice)
	})

	t.Run("does not modify the input", func(t *testing.T) {
		geometry := orb.MultiLineString{
			{{0, 0}, {0, 0.001}, {0, 0.002}},
		}
		before := geometry.Clone()

		Simplify(geometry, DefaultSimplifyTolerance)

		assert.Equal(t, before, geometry)
	})

	t.Run("two-point parts pass through unchanged", func(t *testing.T) {
		geometry := orb.MultiLineString{
			{{0, 0}, {1, 1}},
		}

		got := Simplify(geometry, DefaultSimplifyTolerance)
		assert.Equal(t, geometry, got)
	})
}
