package dataset

import (
	"io"
	"math/rand/v2"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"

	"github.com/ThatOtherAndrew/unistroke/internal/models"
)

type SplitOptions struct {
	// TestPerClass files of every class go to the test set.
	TestPerClass int
	// Classes with fewer files than MinClassSize are left out entirely.
	MinClassSize int
	Seed         int64
}

type ClassSplit struct {
	Train int
	Test  int
}

type SplitSummary struct {
	Classes map[string]ClassSplit
	Skipped []string
}

// Split copies the stroke logs under src/<label>/ into train/<label>/ and
// test/<label>/. Each class draws its test files with a PRNG seeded from
// opts.Seed, so repeated runs pick the same files.
func Split(src, train, test string, opts SplitOptions) (SplitSummary, error) {
	if opts.TestPerClass <= 0 {
		return SplitSummary{}, errors.Errorf("test per class must be positive, got %d", opts.TestPerClass)
	}
	if opts.MinClassSize < opts.TestPerClass {
		opts.MinClassSize = opts.TestPerClass
	}

	classes, err := classFiles(src)
	if err != nil {
		return SplitSummary{}, err
	}

	summary := SplitSummary{Classes: make(map[string]ClassSplit)}
	for _, label := range sortedKeys(classes) {
		files := classes[label]
		if len(files) < opts.MinClassSize {
			summary.Skipped = append(summary.Skipped, label)
			continue
		}

		rng := rand.New(rand.NewPCG(uint64(opts.Seed), uint64(opts.Seed)))
		testSet := make(map[int]bool, opts.TestPerClass)
		for _, i := range rng.Perm(len(files))[:opts.TestPerClass] {
			testSet[i] = true
		}

		var split ClassSplit
		for i, file := range files {
			dstDir := filepath.Join(train, label)
			if testSet[i] {
				dstDir = filepath.Join(test, label)
				split.Test++
			} else {
				split.Train++
			}
			if err := copyFile(file, filepath.Join(dstDir, filepath.Base(file))); err != nil {
				return summary, err
			}
		}
		summary.Classes[label] = split
	}
	return summary, nil
}

// LoadDir reads every stroke log under dir/<label>/, ordered by label and
// file name.
func LoadDir(dir string) ([]models.Sample, error) {
	classes, err := classFiles(dir)
	if err != nil {
		return nil, err
	}
	var samples []models.Sample
	for _, label := range sortedKeys(classes) {
		for _, file := range classes[label] {
			s, err := ReadCSV(file)
			if err != nil {
				return nil, err
			}
			samples = append(samples, s)
		}
	}
	return samples, nil
}

func classFiles(dir string) (map[string][]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, "read dataset %s", dir)
	}
	classes := make(map[string][]string)
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		files, err := os.ReadDir(filepath.Join(dir, e.Name()))
		if err != nil {
			return nil, errors.Wrapf(err, "read class %s", e.Name())
		}
		for _, f := range files {
			if !f.IsDir() && strings.HasSuffix(f.Name(), ".csv") {
				classes[e.Name()] = append(classes[e.Name()], filepath.Join(dir, e.Name(), f.Name()))
			}
		}
	}
	return classes, nil
}

func sortedKeys(m map[string][]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func copyFile(src, dst string) error {
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return errors.Wrap(err, "create split directory")
	}
	in, err := os.Open(src)
	if err != nil {
		return errors.Wrapf(err, "open %s", src)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return errors.Wrapf(err, "create %s", dst)
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return errors.Wrapf(err, "copy %s", src)
	}
	return errors.Wrapf(out.Close(), "close %s", dst)
}
