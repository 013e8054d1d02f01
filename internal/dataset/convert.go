package dataset

import (
	"encoding/xml"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/ThatOtherAndrew/unistroke/internal/models"
)

type xmlGesture struct {
	Points []xmlPoint `xml:"Point"`
}

type xmlPoint struct {
	X string `xml:"X,attr"`
	Y string `xml:"Y,attr"`
	T string `xml:"T,attr"`
}

// ConvertXML walks src for $1 gesture logs and writes each one to
// dst/<label>/<uuid>.csv. The label is the file name up to its first dot
// with the trailing two-digit sample number removed, so "circle07.xml"
// becomes "circle". It returns the number of files written.
func ConvertXML(src, dst string) (int, error) {
	written := 0
	err := filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if strings.Contains(d.Name(), "ipynb_checkpoint") {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(d.Name(), ".xml") {
			return nil
		}

		sample, err := readXML(path)
		if err != nil {
			return err
		}
		out := filepath.Join(dst, sample.Label, uuid.NewString()+".csv")
		if err := WriteCSV(out, sample); err != nil {
			return err
		}
		written++
		return nil
	})
	return written, errors.Wrapf(err, "convert %s", src)
}

func labelFromFile(name string) (string, error) {
	stem, _, _ := strings.Cut(name, ".")
	if len(stem) <= 2 {
		return "", errors.Errorf("cannot derive a label from %q", name)
	}
	return stem[:len(stem)-2], nil
}

func readXML(path string) (models.Sample, error) {
	label, err := labelFromFile(filepath.Base(path))
	if err != nil {
		return models.Sample{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return models.Sample{}, errors.Wrapf(err, "read %s", path)
	}
	var g xmlGesture
	if err := xml.Unmarshal(data, &g); err != nil {
		return models.Sample{}, errors.Wrapf(err, "parse %s", path)
	}

	sample := models.Sample{Label: label, Path: path}
	for _, p := range g.Points {
		x, err := strconv.ParseFloat(p.X, 64)
		if err != nil {
			return models.Sample{}, errors.Wrapf(err, "%s: bad X %q", path, p.X)
		}
		y, err := strconv.ParseFloat(p.Y, 64)
		if err != nil {
			return models.Sample{}, errors.Wrapf(err, "%s: bad Y %q", path, p.Y)
		}
		var ts int64
		if p.T != "" {
			if ts, err = strconv.ParseInt(p.T, 10, 64); err != nil {
				return models.Sample{}, errors.Wrapf(err, "%s: bad T %q", path, p.T)
			}
		}
		sample.Points = append(sample.Points, models.Point{X: x, Y: y, T: ts})
	}
	return sample, nil
}
