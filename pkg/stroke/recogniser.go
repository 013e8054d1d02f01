package stroke

import (
	"io"
	"math"

	"github.com/sirupsen/logrus"
)

// Template is a normalized reference stroke owned by a Recogniser.
type Template struct {
	Index  int
	Name   string
	points []Point
}

// Points returns a copy of the template's normalized points.
func (t Template) Points() []Point {
	return clonePoints(t.points)
}

// Match is a successful recognition.
type Match struct {
	Template Template
	Score    float64
	Distance float64
}

// Recogniser stores templates and classifies strokes against them.
//
// A Recogniser is not safe for concurrent use. Callers sharing one between
// goroutines must serialise AddTemplate against every other call.
type Recogniser struct {
	templates []Template
	log       logrus.FieldLogger
}

// Option configures a Recogniser built by New.
type Option func(*options)

type options struct {
	seeds bool
	log   logrus.FieldLogger
}

// WithSeedTemplates controls whether the built-in gestures are registered
// by New. They are by default.
func WithSeedTemplates(enabled bool) Option {
	return func(o *options) { o.seeds = enabled }
}

// WithLogger sets the logger used for debug output. The default discards
// everything.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

// New returns a Recogniser holding the seed templates unless
// WithSeedTemplates(false) is given.
func New(opts ...Option) *Recogniser {
	o := options{seeds: true}
	for _, opt := range opts {
		opt(&o)
	}
	if o.log == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		o.log = discard
	}

	r := &Recogniser{log: o.log}
	if o.seeds {
		for _, s := range Seeds() {
			r.AddTemplate(s.Name, s.Points)
		}
	}
	return r
}

// AddTemplate normalizes points and stores them twice under name: as drawn
// and mirrored about the vertical axis. It returns false and leaves the
// store untouched if the stroke has too few points or a flat bounding box.
func (r *Recogniser) AddTemplate(name string, points []Point) bool {
	normalized, err := Normalize(points)
	if err != nil {
		r.log.WithFields(logrus.Fields{"name": name, "points": len(points)}).
			Debugf("Rejected template: %v", err)
		return false
	}

	n := len(r.templates)
	r.templates = append(r.templates,
		Template{Index: n, Name: name, points: normalized},
		Template{Index: n + 1, Name: name, points: Mirror(normalized)},
	)
	r.log.WithField("name", name).Debugf("Added templates %d and %d", n, n+1)
	return true
}

// Recognise returns the template closest to points. The boolean is false
// when the stroke is unusable or no templates are registered. Ties go to
// the template registered first.
func (r *Recogniser) Recognise(points []Point) (Match, bool) {
	if len(r.templates) == 0 {
		r.log.Debug("No templates registered")
		return Match{}, false
	}
	normalized, err := Normalize(points)
	if err != nil {
		r.log.WithField("points", len(points)).Debugf("Rejected stroke: %v", err)
		return Match{}, false
	}

	best := math.Inf(1)
	found := -1
	for i, t := range r.templates {
		d := DistanceAtBestAngle(normalized, t.points, ThetaNeg, ThetaPos, ThetaDelta)
		if d < best {
			best = d
			found = i
		}
	}
	if found < 0 {
		return Match{}, false
	}

	m := Match{Template: r.templates[found], Score: Score(best), Distance: best}
	r.log.WithFields(logrus.Fields{"name": m.Template.Name, "index": m.Template.Index}).
		Debugf("Recognised stroke (score %.3f)", m.Score)
	return m, true
}

// Len returns the number of stored templates, two per registered gesture.
func (r *Recogniser) Len() int { return len(r.templates) }

// Templates returns the stored templates in index order.
func (r *Recogniser) Templates() []Template {
	out := make([]Template, len(r.templates))
	copy(out, r.templates)
	return out
}

// Names returns the distinct gesture names in registration order.
func (r *Recogniser) Names() []string {
	var names []string
	seen := make(map[string]bool)
	for _, t := range r.templates {
		if !seen[t.Name] {
			seen[t.Name] = true
			names = append(names, t.Name)
		}
	}
	return names
}
