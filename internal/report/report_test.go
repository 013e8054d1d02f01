package report

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ThatOtherAndrew/unistroke/internal/evaluate"
	"github.com/ThatOtherAndrew/unistroke/internal/history"
	"github.com/ThatOtherAndrew/unistroke/pkg/stroke"
)

func TestMatch(t *testing.T) {
	var buf bytes.Buffer
	rec := stroke.New()
	m, ok := rec.Recognise(stroke.Seeds()[3].Points)

	New(&buf).Match(m, ok, 2*time.Millisecond)
	out := buf.String()
	assert.Contains(t, out, "Result: circle (1.00) in 2ms.")
	assert.Contains(t, out, "template #6")
}

func TestMatchRejected(t *testing.T) {
	var buf bytes.Buffer
	New(&buf).Match(stroke.Match{}, false, 0)
	assert.Equal(t, "Too few points drawn.\n", buf.String())
}

func TestEvaluation(t *testing.T) {
	var buf bytes.Buffer
	r := evaluate.Report{
		Templates: 10,
		Elapsed:   1234 * time.Millisecond,
		Results: []evaluate.Result{
			{Label: "circle", Predicted: "circle", Correct: true},
			{Label: "circle", Predicted: "x"},
		},
		Classes: []evaluate.ClassStats{{Label: "circle", Total: 2, Correct: 1, MeanScore: 0.875}},
	}

	New(&buf).Evaluation(r)
	out := buf.String()
	assert.Contains(t, out, "GESTURE")
	assert.Contains(t, out, "circle")
	assert.Contains(t, out, "0.875")
	assert.Contains(t, out, "50.0%")
	assert.Contains(t, out, "1/2 correct (50.0%) against 10 templates in 1.234s")
}

func TestRuns(t *testing.T) {
	var buf bytes.Buffer
	New(&buf).Runs(nil)
	assert.Equal(t, "No evaluation runs recorded\n", buf.String())

	buf.Reset()
	New(&buf).Runs([]history.Run{{ID: 7, StartedAt: time.Now(), TrainDir: "train", TestDir: "test", Samples: 4, Correct: 3, Accuracy: 0.75}})
	assert.Contains(t, buf.String(), "75.0%")
	assert.Contains(t, buf.String(), "3/4")
}
