package gestures

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/ThatOtherAndrew/unistroke/internal/models"
	"github.com/ThatOtherAndrew/unistroke/pkg/stroke"
)

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// Load reads a gesture set. A missing file is an empty set.
func Load(path string) ([]models.Gesture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return []models.Gesture{}, nil
		}
		return nil, err
	}

	var gestures []models.Gesture
	if isYAML(path) {
		err = yaml.Unmarshal(data, &gestures)
	} else {
		err = json.Unmarshal(data, &gestures)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if gestures == nil {
		gestures = []models.Gesture{}
	}
	return gestures, nil
}

func Save(path string, gestures []models.Gesture) error {
	var (
		data []byte
		err  error
	)
	if isYAML(path) {
		data, err = yaml.Marshal(gestures)
	} else {
		data, err = json.Marshal(gestures)
	}
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// AddStroke appends a stroke to the named gesture, creating it if needed.
// A non-empty command replaces the gesture's existing one.
func AddStroke(gestures []models.Gesture, name, command string, points []models.Point) []models.Gesture {
	for i, g := range gestures {
		if g.Name == name {
			gestures[i].Strokes = append(gestures[i].Strokes, points)
			if command != "" {
				gestures[i].Command = command
			}
			return gestures
		}
	}
	return append(gestures, models.Gesture{
		Name:    name,
		Command: command,
		Strokes: [][]models.Point{points},
	})
}

func Remove(gestures []models.Gesture, name string) ([]models.Gesture, bool) {
	for i, g := range gestures {
		if g.Name == name {
			return append(gestures[:i], gestures[i+1:]...), true
		}
	}
	return gestures, false
}

func Find(gestures []models.Gesture, name string) (models.Gesture, bool) {
	for _, g := range gestures {
		if g.Name == name {
			return g, true
		}
	}
	return models.Gesture{}, false
}

// Register adds every stroke of every gesture to rec and reports how many
// strokes were accepted and rejected.
func Register(rec *stroke.Recogniser, gestures []models.Gesture, log logrus.FieldLogger) (added, rejected int) {
	for _, g := range gestures {
		for i, s := range g.Strokes {
			if rec.AddTemplate(g.Name, models.ToStroke(s)) {
				added++
				continue
			}
			rejected++
			_, err := stroke.Normalize(models.ToStroke(s))
			log.Warnf("Skipping stroke %d of gesture '%s': %v", i, g.Name, err)
		}
	}
	return added, rejected
}
