package geometry_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/pixeldrift/tilerunner/geometry"
	"github.com/stretchr/testify/assert"
)

func TestIntersects(t *testing.T) {
	t.Run("overlapping", func(t *testing.T) {
		a := geometry.Rect{X: 0, Y: 0, W: 10, H: 10}
		b := geometry.Rect{X: 5, Y: 5, W: 10, H: 10}
		assert.True(t, geometry.Intersects(a, b))
	})

	t.Run("self", func(t *testing.T) {
		a := geometry.Rect{X: 3, Y: 7, W: 4, H: 9}
		assert.True(t, geometry.Intersects(a, a))
	})

	t.Run("disjoint", func(t *testing.T) {
		a := geometry.Rect{X: 0, Y: 0, W: 10, H: 10}
		b := geometry.Rect{X: 30, Y: 0, W: 10, H: 10}
		assert.False(t, geometry.Intersects(a, b))
	})

	t.Run("shared vertical edge is not a collision", func(t *testing.T) {
		a := geometry.Rect{X: 0, Y: 0, W: 10, H: 10}
		b := geometry.Rect{X: 10, Y: 0, W: 10, H: 10}
		assert.False(t, geometry.Intersects(a, b))
		assert.False(t, geometry.Intersects(b, a))
	})

	t.Run("shared horizontal edge is not a collision", func(t *testing.T) {
		a := geometry.Rect{X: 0, Y: 0, W: 10, H: 10}
		b := geometry.Rect{X: 0, Y: 10, W: 10, H: 10}
		assert.False(t, geometry.Intersects(a, b))
	})

	t.Run("containment", func(t *testing.T) {
		outer := geometry.Rect{X: 0, Y: 0, W: 100, H: 100}
		inner := geometry.Rect{X: 40, Y: 40, W: 5, H: 5}
		assert.True(t, geometry.Intersects(outer, inner))
		assert.True(t, geometry.Intersects(inner, outer))
	})
}

func TestIntersectsSymmetry(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	randRect := func() geometry.Rect {
		return geometry.Rect{
			X: rng.Float64()*200 - 100,
			Y: rng.Float64()*200 - 100,
			W: rng.Float64() * 50,
			H: rng.Float64() * 50,
		}
	}
	for i := 0; i < 1000; i++ {
		a, b := randRect(), randRect()
		if geometry.Intersects(a, b) != geometry.Intersects(b, a) {
			t.Fatalf("asymmetric result for %+v vs %+v", a, b)
		}
	}
}

func TestCirclesOverlap(t *testing.T) {
	t.Run("overlapping", func(t *testing.T) {
		a := geometry.Circle{X: 0, Y: 0, R: 10}
		b := geometry.Circle{X: 15, Y: 0, R: 10}
		assert.True(t, geometry.CirclesOverlap(a, b))
	})

	t.Run("tangent circles are not colliding", func(t *testing.T) {
		a := geometry.Circle{X: 0, Y: 0, R: 10}
		b := geometry.Circle{X: 20, Y: 0, R: 10}
		assert.False(t, geometry.CirclesOverlap(a, b))
	})

	t.Run("same center", func(t *testing.T) {
		a := geometry.Circle{X: 5, Y: 5, R: 1}
		assert.True(t, geometry.CirclesOverlap(a, a))
	})
}

// The squared-distance shortcut must agree with a direct floating-point
// distance comparison across random samples.
func TestCirclesOverlapMatchesDirectDistance(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for i := 0; i < 1000; i++ {
		a := geometry.Circle{X: rng.Float64() * 100, Y: rng.Float64() * 100, R: rng.Float64() * 30}
		b := geometry.Circle{X: rng.Float64() * 100, Y: rng.Float64() * 100, R: rng.Float64() * 30}

		dist := math.Hypot(b.X-a.X, b.Y-a.Y)
		want := dist < a.R+b.R
		if got := geometry.CirclesOverlap(a, b); got != want {
			t.Fatalf("shortcut disagrees with direct distance: %+v vs %+v (dist=%v)", a, b, dist)
		}
	}
}

func TestCircleRectOverlap(t *testing.T) {
	box := geometry.Rect{X: 10, Y: 10, W: 20, H: 20}

	t.Run("center inside", func(t *testing.T) {
		assert.True(t, geometry.CircleRectOverlap(geometry.Circle{X: 20, Y: 20, R: 1}, box))
	})

	t.Run("overlapping edge", func(t *testing.T) {
		assert.True(t, geometry.CircleRectOverlap(geometry.Circle{X: 5, Y: 20, R: 6}, box))
	})

	t.Run("tangent to edge is not colliding", func(t *testing.T) {
		assert.False(t, geometry.CircleRectOverlap(geometry.Circle{X: 5, Y: 20, R: 5}, box))
	})

	t.Run("near corner", func(t *testing.T) {
		// Circle beyond the top-left corner; nearest point is (10, 10).
		c := geometry.Circle{X: 7, Y: 6, R: 5}
		assert.False(t, geometry.CircleRectOverlap(c, box)) // distance 5, tangent
		c.R = 5.01
		assert.True(t, geometry.CircleRectOverlap(c, box))
	})
}

func TestDistanceSquared(t *testing.T) {
	assert.Equal(t, 25.0, geometry.DistanceSquared(0, 0, 3, 4))
	assert.Equal(t, 0.0, geometry.DistanceSquared(7, -2, 7, -2))
}

func TestZoneSetShift(t *testing.T) {
	zs := geometry.NewDotZones()
	zs.ShiftTo(100, 50)

	zones := zs.Zones()
	assert.Len(t, zones, 11)

	// First row: 6 wide, centered in a 20px frame.
	assert.Equal(t, 107.0, zones[0].X)
	assert.Equal(t, 50.0, zones[0].Y)

	// Rows stack downward with no gaps.
	y := 50.0
	for _, z := range zones {
		assert.Equal(t, y, z.Y)
		y += z.H
	}
	assert.Equal(t, 20.0, zs.Height())

	// Shifting again fully repositions; no residue from the old origin.
	zs.ShiftTo(0, 0)
	assert.Equal(t, 7.0, zs.Zones()[0].X)
	assert.Equal(t, 0.0, zs.Zones()[0].Y)
}

func TestZonesOverlap(t *testing.T) {
	a := geometry.NewDotZones()
	b := geometry.NewDotZones()

	t.Run("separated", func(t *testing.T) {
		a.ShiftTo(0, 0)
		b.ShiftTo(100, 100)
		assert.False(t, geometry.ZonesOverlap(a.Zones(), b.Zones()))
	})

	t.Run("frames overlap but silhouettes clear each other", func(t *testing.T) {
		// Diagonal near-miss: bounding boxes overlap at the corner while
		// the rounded silhouettes do not.
		a.ShiftTo(0, 0)
		b.ShiftTo(19, 19)
		assert.True(t, geometry.Intersects(
			geometry.Rect{X: 0, Y: 0, W: 20, H: 20},
			geometry.Rect{X: 19, Y: 19, W: 20, H: 20},
		))
		assert.False(t, geometry.ZonesOverlap(a.Zones(), b.Zones()))
	})

	t.Run("overlapping", func(t *testing.T) {
		a.ShiftTo(0, 0)
		b.ShiftTo(5, 5)
		assert.True(t, geometry.ZonesOverlap(a.Zones(), b.Zones()))
	})

	t.Run("symmetric under swapping the lists", func(t *testing.T) {
		rng := rand.New(rand.NewSource(3))
		for i := 0; i < 200; i++ {
			a.ShiftTo(rng.Float64()*40, rng.Float64()*40)
			b.ShiftTo(rng.Float64()*40, rng.Float64()*40)
			if geometry.ZonesOverlap(a.Zones(), b.Zones()) != geometry.ZonesOverlap(b.Zones(), a.Zones()) {
				t.Fatal("zone overlap is not symmetric")
			}
		}
	})
}
