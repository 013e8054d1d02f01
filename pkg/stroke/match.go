package stroke

import "math"

// Golden-section search parameters. Angles are in radians: the window is
// ±45° and the search stops below 2°.
const (
	Phi        = 0.6180339887498949 // (√5 - 1) / 2
	ThetaNeg   = -math.Pi / 4
	ThetaPos   = math.Pi / 4
	ThetaDelta = math.Pi / 90

	// HalfDiagonal is half the diagonal of the Size x Size reference box.
	HalfDiagonal = 0.5 * math.Sqrt2 * Size
)

// PathDistance is the mean distance between points at the same index.
// Both slices must have the same length.
func PathDistance(a, b []Point) float64 {
	d := 0.0
	for i := range a {
		d += Distance(a[i], b[i])
	}
	return d / float64(len(a))
}

// DistanceAtAngle is the path distance after rotating points by angle.
func DistanceAtAngle(points, template []Point, angle float64) float64 {
	return PathDistance(RotateBy(points, angle), template)
}

// DistanceAtBestAngle minimises DistanceAtAngle over [from, to] with a
// golden-section search, stopping once the interval is narrower than delta.
func DistanceAtBestAngle(points, template []Point, from, to, delta float64) float64 {
	x1 := Phi*from + (1-Phi)*to
	f1 := DistanceAtAngle(points, template, x1)
	x2 := (1-Phi)*from + Phi*to
	f2 := DistanceAtAngle(points, template, x2)

	for math.Abs(to-from) > delta {
		if f1 < f2 {
			to = x2
			x2 = x1
			f2 = f1
			x1 = Phi*from + (1-Phi)*to
			f1 = DistanceAtAngle(points, template, x1)
		} else {
			from = x1
			x1 = x2
			f1 = f2
			x2 = (1-Phi)*from + Phi*to
			f2 = DistanceAtAngle(points, template, x2)
		}
	}
	return math.Min(f1, f2)
}

// Score maps a best-angle distance to a similarity. It is 1 for identical
// strokes and is not clamped, so very poor matches go negative.
func Score(distance float64) float64 {
	return 1 - distance/HalfDiagonal
}
