package stroke

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rotateRaw(points []Point, degrees float64) []Point {
	return RotateBy(points, degrees*math.Pi/180)
}

func TestSearchConstants(t *testing.T) {
	assert.InDelta(t, (math.Sqrt(5)-1)/2, Phi, 1e-15)
	assert.InDelta(t, 176.7766952966369, HalfDiagonal, 1e-9)
	assert.InDelta(t, -45.0, ThetaNeg*180/math.Pi, 1e-12)
	assert.InDelta(t, 45.0, ThetaPos*180/math.Pi, 1e-12)
	assert.InDelta(t, 2.0, ThetaDelta*180/math.Pi, 1e-12)
}

func TestPathDistance(t *testing.T) {
	a := pts(0, 0, 10, 0)
	b := pts(3, 4, 10, 0)
	assert.InDelta(t, 2.5, PathDistance(a, b), 1e-12)
	assert.Zero(t, PathDistance(a, a))
}

func TestDistanceAtAngle(t *testing.T) {
	square := pts(-1, -1, 1, -1, 1, 1, -1, 1)
	quarter := pts(1, -1, 1, 1, -1, 1, -1, -1)
	assert.InDelta(t, 0, DistanceAtAngle(square, quarter, math.Pi/2), 1e-12)
	assert.Greater(t, DistanceAtAngle(square, quarter, 0), 1.0)
}

func TestDistanceAtBestAngleRotationInvariance(t *testing.T) {
	for _, s := range Seeds() {
		template, err := Normalize(s.Points)
		require.NoError(t, err)

		for _, deg := range []float64{-45, -30, -10, 0, 10, 30, 45} {
			candidate, err := Normalize(rotateRaw(s.Points, deg))
			require.NoError(t, err)

			d := DistanceAtBestAngle(candidate, template, ThetaNeg, ThetaPos, ThetaDelta)
			assert.Less(t, d, 1.0, "%s rotated %v°", s.Name, deg)
			assert.Greater(t, Score(d), 0.99, "%s rotated %v°", s.Name, deg)
		}
	}
}

func TestDistanceAtBestAngleFindsOffset(t *testing.T) {
	template, err := Normalize(seedPoints(t, "x"))
	require.NoError(t, err)
	// Rotating an already normalized stroke bypasses the indicative angle,
	// so only the search can undo it.
	candidate := RotateBy(template, 20*math.Pi/180)

	atZero := DistanceAtAngle(candidate, template, 0)
	best := DistanceAtBestAngle(candidate, template, ThetaNeg, ThetaPos, ThetaDelta)
	assert.Less(t, best, atZero)
	assert.Less(t, best, 2.0)
}

func TestScore(t *testing.T) {
	assert.Equal(t, 1.0, Score(0))
	assert.InDelta(t, 0, Score(HalfDiagonal), 1e-12)
	assert.Less(t, Score(2*HalfDiagonal), 0.0)
}
