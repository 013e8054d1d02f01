package models

import (
	"github.com/ThatOtherAndrew/unistroke/pkg/stroke"
)

// Point is a captured sample. T is the capture time in milliseconds when
// the source recorded one.
type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
	T int64   `json:"t,omitempty" yaml:"t,omitempty"`
}

// Gesture is a named set of raw strokes, optionally bound to a shell
// command that runs when the gesture is recognised.
type Gesture struct {
	Name    string    `json:"name" yaml:"name"`
	Command string    `json:"command,omitempty" yaml:"command,omitempty"`
	Strokes [][]Point `json:"strokes" yaml:"strokes"`
}

// Sample is one labelled stroke read from a dataset file.
type Sample struct {
	Label  string
	Path   string
	Points []Point
}

func ToStroke(points []Point) []stroke.Point {
	out := make([]stroke.Point, len(points))
	for i, p := range points {
		out[i] = stroke.Point{X: p.X, Y: p.Y}
	}
	return out
}

func FromStroke(points []stroke.Point) []Point {
	out := make([]Point, len(points))
	for i, p := range points {
		out[i] = Point{X: p.X, Y: p.Y}
	}
	return out
}
