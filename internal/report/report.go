// Package report renders recognition results for the terminal.
package report

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/ThatOtherAndrew/unistroke/internal/evaluate"
	"github.com/ThatOtherAndrew/unistroke/internal/history"
	"github.com/ThatOtherAndrew/unistroke/pkg/stroke"
)

const tooFewPoints = "Too few points drawn."

// Printer writes styled output. Colours are dropped automatically when the
// writer is not a terminal.
type Printer struct {
	w     io.Writer
	name  lipgloss.Style
	good  lipgloss.Style
	bad   lipgloss.Style
	faint lipgloss.Style
	head  lipgloss.Style
}

func New(w io.Writer) *Printer {
	r := lipgloss.NewRenderer(w)
	return &Printer{
		w:     w,
		name:  r.NewStyle().Bold(true),
		good:  r.NewStyle().Foreground(lipgloss.Color("10")),
		bad:   r.NewStyle().Foreground(lipgloss.Color("9")),
		faint: r.NewStyle().Faint(true),
		head:  r.NewStyle().Bold(true).Padding(0, 1),
	}
}

// Match prints a single recognition in the form
// "Result: circle (0.93) in 2ms."
func (p *Printer) Match(m stroke.Match, ok bool, elapsed time.Duration) {
	if !ok {
		fmt.Fprintln(p.w, p.bad.Render(tooFewPoints))
		return
	}
	fmt.Fprintf(p.w, "Result: %s (%s) in %dms. %s\n",
		p.name.Render(m.Template.Name),
		p.scoreStyle(m.Score).Render(strconv.FormatFloat(m.Score, 'f', 2, 64)),
		elapsed.Milliseconds(),
		p.faint.Render(fmt.Sprintf("template #%d, distance %.2f", m.Template.Index, m.Distance)),
	)
}

func (p *Printer) scoreStyle(score float64) lipgloss.Style {
	if score >= 0.8 {
		return p.good
	}
	if score < 0.6 {
		return p.bad
	}
	return p.name
}

// Evaluation prints per-class accuracy followed by the overall figure.
func (p *Printer) Evaluation(r evaluate.Report) {
	rows := make([][]string, 0, len(r.Classes))
	for _, c := range r.Classes {
		rows = append(rows, []string{
			c.Label,
			strconv.Itoa(c.Total),
			strconv.Itoa(c.Correct),
			strconv.Itoa(c.Rejected),
			strconv.Itoa(c.LowScore),
			fmt.Sprintf("%.3f", c.MeanScore),
			percent(c.Accuracy()),
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("GESTURE", "SAMPLES", "CORRECT", "REJECTED", "LOW SCORE", "MEAN SCORE", "ACCURACY").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return p.head
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})

	fmt.Fprintln(p.w, t.String())
	fmt.Fprintf(p.w, "%d/%d correct (%s) against %d templates in %s\n",
		r.Correct(), len(r.Results), p.name.Render(percent(r.Accuracy())), r.Templates, r.Elapsed.Round(time.Millisecond))
}

// Runs prints stored evaluation runs.
func (p *Printer) Runs(runs []history.Run) {
	if len(runs) == 0 {
		fmt.Fprintln(p.w, "No evaluation runs recorded")
		return
	}
	rows := make([][]string, 0, len(runs))
	for _, r := range runs {
		rows = append(rows, []string{
			strconv.FormatInt(r.ID, 10),
			r.StartedAt.Local().Format("2006-01-02 15:04"),
			r.TrainDir,
			r.TestDir,
			fmt.Sprintf("%d/%d", r.Correct, r.Samples),
			percent(r.Accuracy),
		})
	}
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "STARTED", "TRAIN", "TEST", "CORRECT", "ACCURACY").
		Rows(rows...)
	fmt.Fprintln(p.w, t.String())
}

func percent(v float64) string {
	return fmt.Sprintf("%.1f%%", v*100)
}
