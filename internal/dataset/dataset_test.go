package dataset

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ThatOtherAndrew/unistroke/internal/models"
)

func square(label string) models.Sample {
	return models.Sample{
		Label: label,
		Points: []models.Point{
			{X: 0, Y: 0, T: 10}, {X: 10.5, Y: 0, T: 20}, {X: 10.5, Y: 10, T: 30}, {X: 0, Y: 10, T: 40},
		},
	}
}

func TestCSVRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "square", "a.csv")
	want := square("square")
	require.NoError(t, WriteCSV(path, want))

	got, err := ReadCSV(path)
	require.NoError(t, err)
	assert.Equal(t, want.Label, got.Label)
	assert.Equal(t, want.Points, got.Points)
	assert.Equal(t, path, got.Path)
}

func TestReadCSVLabelFromDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "zigzag", "b.csv")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	body := "idx,label,x,y,timestamp\n0,,1,2,\n1,,3,4,\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	got, err := ReadCSV(path)
	require.NoError(t, err)
	assert.Equal(t, "zigzag", got.Label)
	assert.Equal(t, []models.Point{{X: 1, Y: 2}, {X: 3, Y: 4}}, got.Points)
}

func TestReadCSVBadNumber(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.csv")
	require.NoError(t, os.WriteFile(path, []byte("0,x,one,2,0\n"), 0o644))
	_, err := ReadCSV(path)
	assert.ErrorContains(t, err, "bad x")
}

func TestReadStrokeJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stroke.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"x":1,"y":2},{"x":3.5,"y":-4}]`), 0o644))

	points, err := ReadStroke(path)
	require.NoError(t, err)
	assert.Equal(t, []models.Point{{X: 1, Y: 2}, {X: 3.5, Y: -4}}, points)
}

func TestConvertXML(t *testing.T) {
	src := t.TempDir()
	dst := t.TempDir()
	doc := `<?xml version="1.0" encoding="utf-8" standalone="yes"?>
<Gesture Name="circle07" Subject="1" Speed="medium" Number="7" NumPts="3">
  <Point X="127" Y="141" T="1000" />
  <Point X="124" Y="140" T="1010" />
  <Point X="120.5" Y="139" T="1020" />
</Gesture>`
	require.NoError(t, os.MkdirAll(filepath.Join(src, "s01", "medium"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(src, "s01", "medium", "circle07.xml"), []byte(doc), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(src, "s01", "notes.txt"), []byte("skip"), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(src, ".ipynb_checkpoints"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(src, ".ipynb_checkpoints", "bad01.xml"), []byte("<"), 0o644))

	n, err := ConvertXML(src, dst)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	files, err := filepath.Glob(filepath.Join(dst, "circle", "*.csv"))
	require.NoError(t, err)
	require.Len(t, files, 1)

	got, err := ReadCSV(files[0])
	require.NoError(t, err)
	assert.Equal(t, "circle", got.Label)
	assert.Equal(t, []models.Point{{X: 127, Y: 141, T: 1000}, {X: 124, Y: 140, T: 1010}, {X: 120.5, Y: 139, T: 1020}}, got.Points)
}

func TestLabelFromFile(t *testing.T) {
	label, err := labelFromFile("pigtail10.xml")
	require.NoError(t, err)
	assert.Equal(t, "pigtail", label)

	_, err = labelFromFile("a1.xml")
	assert.Error(t, err)
}

func writeClass(t *testing.T, root, label string, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		path := filepath.Join(root, label, fmt.Sprintf("%02d.csv", i))
		require.NoError(t, WriteCSV(path, square(label)))
	}
}

func listNames(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names
}

func TestSplit(t *testing.T) {
	src := t.TempDir()
	writeClass(t, src, "circle", 12)
	writeClass(t, src, "rare", 4)

	opts := SplitOptions{TestPerClass: 3, MinClassSize: 5, Seed: 42}
	out := t.TempDir()
	summary, err := Split(src, filepath.Join(out, "train"), filepath.Join(out, "test"), opts)
	require.NoError(t, err)

	assert.Equal(t, map[string]ClassSplit{"circle": {Train: 9, Test: 3}}, summary.Classes)
	assert.Equal(t, []string{"rare"}, summary.Skipped)

	trainNames := listNames(t, filepath.Join(out, "train", "circle"))
	testNames := listNames(t, filepath.Join(out, "test", "circle"))
	assert.Len(t, trainNames, 9)
	assert.Len(t, testNames, 3)
	assert.NotContains(t, trainNames, testNames[0])

	again := t.TempDir()
	_, err = Split(src, filepath.Join(again, "train"), filepath.Join(again, "test"), opts)
	require.NoError(t, err)
	assert.Equal(t, testNames, listNames(t, filepath.Join(again, "test", "circle")))

	samples, err := LoadDir(filepath.Join(out, "test"))
	require.NoError(t, err)
	assert.Len(t, samples, 3)
	for _, s := range samples {
		assert.Equal(t, "circle", s.Label)
	}
}

func TestSplitRejectsZeroTestSize(t *testing.T) {
	_, err := Split(t.TempDir(), t.TempDir(), t.TempDir(), SplitOptions{})
	assert.Error(t, err)
}
