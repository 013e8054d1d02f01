package dataset

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/ThatOtherAndrew/unistroke/internal/models"
)

var header = []string{"idx", "label", "x", "y", "timestamp"}

// ReadCSV reads a stroke log with one point per row. Rows without a label
// take the name of the directory holding the file.
func ReadCSV(path string) (models.Sample, error) {
	f, err := os.Open(path)
	if err != nil {
		return models.Sample{}, errors.Wrapf(err, "open %s", path)
	}
	defer f.Close()

	sample, err := readCSV(f)
	if err != nil {
		return models.Sample{}, errors.Wrapf(err, "read %s", path)
	}
	sample.Path = path
	if sample.Label == "" {
		sample.Label = filepath.Base(filepath.Dir(path))
	}
	return sample, nil
}

func readCSV(r io.Reader) (models.Sample, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(header)

	var sample models.Sample
	first := true
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return models.Sample{}, err
		}
		if first {
			first = false
			if row[0] == header[0] {
				continue
			}
		}

		x, err := strconv.ParseFloat(strings.TrimSpace(row[2]), 64)
		if err != nil {
			return models.Sample{}, errors.Wrapf(err, "bad x %q", row[2])
		}
		y, err := strconv.ParseFloat(strings.TrimSpace(row[3]), 64)
		if err != nil {
			return models.Sample{}, errors.Wrapf(err, "bad y %q", row[3])
		}
		var ts int64
		if v := strings.TrimSpace(row[4]); v != "" {
			if ts, err = strconv.ParseInt(v, 10, 64); err != nil {
				return models.Sample{}, errors.Wrapf(err, "bad timestamp %q", v)
			}
		}
		if sample.Label == "" {
			sample.Label = row[1]
		}
		sample.Points = append(sample.Points, models.Point{X: x, Y: y, T: ts})
	}
	return sample, nil
}

// WriteCSV writes sample as a stroke log, creating parent directories.
func WriteCSV(path string, sample models.Sample) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrap(err, "create dataset directory")
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create %s", path)
	}

	w := csv.NewWriter(f)
	rows := [][]string{header}
	for i, p := range sample.Points {
		rows = append(rows, []string{
			strconv.Itoa(i),
			sample.Label,
			strconv.FormatFloat(p.X, 'f', -1, 64),
			strconv.FormatFloat(p.Y, 'f', -1, 64),
			strconv.FormatInt(p.T, 10),
		})
	}
	if err := w.WriteAll(rows); err != nil {
		f.Close()
		return errors.Wrapf(err, "write %s", path)
	}
	return errors.Wrapf(f.Close(), "close %s", path)
}

// ReadStroke loads the points of a single stroke from a CSV log or a JSON
// array of {"x", "y"} objects.
func ReadStroke(path string) ([]models.Point, error) {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, "read %s", path)
		}
		var points []models.Point
		if err := json.Unmarshal(data, &points); err != nil {
			return nil, errors.Wrapf(err, "parse %s", path)
		}
		return points, nil
	}

	sample, err := ReadCSV(path)
	if err != nil {
		return nil, err
	}
	return sample.Points, nil
}
