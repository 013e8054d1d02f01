// https://depts.washington.edu/acelab/proj/dollar/dollar.pdf

package stroke

import (
	"errors"
	"math"
	"slices"
)

const (
	// SamplePoints is the number of points every normalized stroke has.
	SamplePoints = 64
	// Size is the side of the reference square strokes are scaled to.
	Size = 250.0
	// RequiredPoints is the point count a stroke must exceed to be usable.
	RequiredPoints = 3
	// Flatness is the smallest ratio of the short to the long side of a
	// rotated stroke's bounding box. Below it the stroke is treated as a
	// straight line.
	Flatness = 1e-6
)

// Origin is where normalized strokes are centred.
var Origin = Point{X: 0, Y: 0}

// Reasons a stroke is rejected. AddTemplate and Recognise never return
// these; they are exposed through Validate and Normalize.
var (
	ErrInsufficientPoints    = errors.New("stroke: too few points")
	ErrDegenerateBoundingBox = errors.New("stroke: bounding box has zero width or height")
	ErrResample              = errors.New("stroke: resampling ran out of points")
)

// Validate reports why a raw stroke cannot be normalized, or nil if it can.
func Validate(points []Point) error {
	if len(points) <= RequiredPoints {
		return ErrInsufficientPoints
	}
	b := BoundingBox(points)
	if b.Width() == 0 || b.Height() == 0 {
		return ErrDegenerateBoundingBox
	}
	return nil
}

// Normalize maps a raw stroke onto its canonical form: SamplePoints
// equidistant points, rotated so the indicative angle is zero, scaled to a
// Size x Size box and centred on Origin. The input slice is not modified.
func Normalize(points []Point) ([]Point, error) {
	if err := Validate(points); err != nil {
		return nil, err
	}

	resampled, err := Resample(points, SamplePoints)
	if err != nil {
		return nil, err
	}
	out := RotateBy(resampled, -IndicativeAngle(resampled))
	// A straight line collapses onto the x axis once rotated, leaving only
	// rounding noise across it.
	if b := BoundingBox(out); math.Min(b.Width(), b.Height()) <= Flatness*math.Max(b.Width(), b.Height()) {
		return nil, ErrDegenerateBoundingBox
	}
	out = ScaleTo(out, Size)
	out = TranslateTo(out, Origin)
	return out, nil
}

// Mirror negates the X coordinate of every point.
func Mirror(points []Point) []Point {
	out := make([]Point, len(points))
	for i, p := range points {
		out[i] = Point{X: -p.X, Y: p.Y}
	}
	return out
}

// Step 1

// Resample returns n points spaced evenly along the path. Each interpolated
// point is spliced into a working copy of the input so the next segment is
// measured from it.
func Resample(points []Point, n int) ([]Point, error) {
	if len(points) == 0 || n < 2 {
		return nil, ErrResample
	}

	work := clonePoints(points)
	interval := PathLength(work) / float64(n-1)
	if interval == 0 {
		return nil, ErrResample
	}
	D := 0.0
	out := make([]Point, 0, n)
	out = append(out, work[0])

	for i := 1; i < len(work); i++ {
		d := Distance(work[i-1], work[i])
		if D+d >= interval {
			t := (interval - D) / d
			q := Point{
				X: work[i-1].X + t*(work[i].X-work[i-1].X),
				Y: work[i-1].Y + t*(work[i].Y-work[i-1].Y),
			}
			out = append(out, q)
			work = slices.Insert(work, i, q)
			D = 0
		} else {
			D += d
		}
	}

	// Rounding can leave the walk one sample short of the end.
	if len(out) == n-1 {
		out = append(out, work[len(work)-1])
	}
	if len(out) < n {
		return nil, ErrResample
	}
	return out[:n], nil
}

// PathLength is the sum of the distances between consecutive points.
func PathLength(points []Point) float64 {
	d := 0.0
	for i := 1; i < len(points); i++ {
		d += Distance(points[i-1], points[i])
	}
	return d
}

// Step 2

// IndicativeAngle is the angle from the first point to the centroid.
func IndicativeAngle(points []Point) float64 {
	c := Centroid(points)
	return math.Atan2(c.Y-points[0].Y, c.X-points[0].X)
}

// RotateBy rotates points by angle radians about their centroid.
func RotateBy(points []Point, angle float64) []Point {
	c := Centroid(points)
	sin, cos := math.Sincos(angle)
	out := make([]Point, len(points))
	for i, p := range points {
		out[i] = Point{
			X: (p.X-c.X)*cos - (p.Y-c.Y)*sin + c.X,
			Y: (p.X-c.X)*sin + (p.Y-c.Y)*cos + c.Y,
		}
	}
	return out
}

// Step 3

// ScaleTo scales each axis independently so the bounding box becomes
// size x size. The aspect ratio is not preserved.
func ScaleTo(points []Point, size float64) []Point {
	b := BoundingBox(points)
	sx := size / b.Width()
	sy := size / b.Height()
	out := make([]Point, len(points))
	for i, p := range points {
		out[i] = Point{X: p.X * sx, Y: p.Y * sy}
	}
	return out
}

// TranslateTo moves points so their centroid lands on k.
func TranslateTo(points []Point, k Point) []Point {
	c := Centroid(points)
	out := make([]Point, len(points))
	for i, p := range points {
		out[i] = Point{X: p.X + k.X - c.X, Y: p.Y + k.Y - c.Y}
	}
	return out
}

// BoundingBox returns the smallest axis-aligned rectangle holding points.
func BoundingBox(points []Point) Rect {
	if len(points) == 0 {
		return Rect{}
	}
	r := Rect{Min: points[0], Max: points[0]}
	for _, p := range points[1:] {
		r.Min.X = math.Min(r.Min.X, p.X)
		r.Min.Y = math.Min(r.Min.Y, p.Y)
		r.Max.X = math.Max(r.Max.X, p.X)
		r.Max.Y = math.Max(r.Max.Y, p.Y)
	}
	return r
}

// Centroid is the mean of points.
func Centroid(points []Point) Point {
	var x, y float64
	for _, p := range points {
		x += p.X
		y += p.Y
	}
	n := float64(len(points))
	return Point{X: x / n, Y: y / n}
}
