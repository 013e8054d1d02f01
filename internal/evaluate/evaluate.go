// Package evaluate measures recognition accuracy over a labelled dataset.
package evaluate

import (
	"context"
	"sort"
	"time"

	"github.com/ThatOtherAndrew/unistroke/internal/models"
	"github.com/ThatOtherAndrew/unistroke/pkg/stroke"
)

// Result is the outcome for one sample. Predicted is empty when the
// recogniser rejected the stroke.
type Result struct {
	Label     string
	Path      string
	Predicted string
	Score     float64
	Correct   bool
}

type ClassStats struct {
	Label     string
	Total     int
	Correct   int
	Rejected  int
	LowScore  int
	MeanScore float64
}

func (c ClassStats) Accuracy() float64 {
	if c.Total == 0 {
		return 0
	}
	return float64(c.Correct) / float64(c.Total)
}

type Report struct {
	StartedAt time.Time
	Elapsed   time.Duration
	Templates int
	MinScore  float64
	Results   []Result
	Classes   []ClassStats
}

func (r Report) Correct() int {
	n := 0
	for _, res := range r.Results {
		if res.Correct {
			n++
		}
	}
	return n
}

func (r Report) Accuracy() float64 {
	if len(r.Results) == 0 {
		return 0
	}
	return float64(r.Correct()) / float64(len(r.Results))
}

// Run recognises every sample. A prediction counts as correct when the
// label matches and the score reaches minScore. Run stops early with the
// context's error if ctx is cancelled.
func Run(ctx context.Context, rec *stroke.Recogniser, samples []models.Sample, minScore float64) (Report, error) {
	report := Report{StartedAt: time.Now(), Templates: rec.Len(), MinScore: minScore}

	stats := make(map[string]*ClassStats)
	scoreSum := make(map[string]float64)
	for _, s := range samples {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		cs, ok := stats[s.Label]
		if !ok {
			cs = &ClassStats{Label: s.Label}
			stats[s.Label] = cs
		}
		cs.Total++

		res := Result{Label: s.Label, Path: s.Path}
		m, ok := rec.Recognise(models.ToStroke(s.Points))
		if !ok {
			cs.Rejected++
			report.Results = append(report.Results, res)
			continue
		}

		res.Predicted = m.Template.Name
		res.Score = m.Score
		scoreSum[s.Label] += m.Score
		if m.Score < minScore {
			cs.LowScore++
		} else if m.Template.Name == s.Label {
			res.Correct = true
			cs.Correct++
		}
		report.Results = append(report.Results, res)
	}

	for label, cs := range stats {
		if scored := cs.Total - cs.Rejected; scored > 0 {
			cs.MeanScore = scoreSum[label] / float64(scored)
		}
		report.Classes = append(report.Classes, *cs)
	}
	sort.Slice(report.Classes, func(i, j int) bool {
		return report.Classes[i].Label < report.Classes[j].Label
	})
	report.Elapsed = time.Since(report.StartedAt)
	return report, nil
}
