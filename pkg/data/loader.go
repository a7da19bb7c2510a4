package data

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"spamsvm/pkg/logging"
)

// ErrEmptyCorpus is returned when no usable row was read.
var ErrEmptyCorpus = errors.New("corpus has no usable rows")

// Corpus is a labeled set of documents; label -1 is spam, +1 is ham.
type Corpus struct {
	Docs    []string
	Labels  []float64
	Skipped int
}

// Len returns the number of documents.
func (c *Corpus) Len() int { return len(c.Docs) }

// ParseLabel accepts 1, +1, -1, ham and spam (case-insensitive).
func ParseLabel(s string) (float64, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ham":
		return 1, nil
	case "spam":
		return -1, nil
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || (v != 1 && v != -1) {
		return 0, fmt.Errorf("bad label %q", s)
	}
	return v, nil
}

// ReadCorpus reads "label,text" CSV records. A first row whose label does not
// parse is taken as a header. Other malformed rows are skipped and counted.
func ReadCorpus(r io.Reader) (*Corpus, error) {
	reader := csv.NewReader(bufio.NewReader(r))
	reader.FieldsPerRecord = -1

	c := &Corpus{}
	for row := 0; ; row++ {
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				logging.Warnf("data: skipping row %d: %v", row, err)
				c.Skipped++
				continue
			}
			return nil, err
		}
		if len(rec) < 2 {
			logging.Warnf("data: skipping row %d: %d fields", row, len(rec))
			c.Skipped++
			continue
		}

		label, err := ParseLabel(rec[0])
		if err != nil {
			if row == 0 {
				continue
			}
			logging.Warnf("data: skipping row %d: %v", row, err)
			c.Skipped++
			continue
		}
		c.Docs = append(c.Docs, strings.Join(rec[1:], ","))
		c.Labels = append(c.Labels, label)
	}

	if c.Len() == 0 {
		return nil, ErrEmptyCorpus
	}
	return c, nil
}

// LoadCorpus reads a corpus file from disk.
func LoadCorpus(path string) (*Corpus, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	c, err := ReadCorpus(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	logging.Infof("data: loaded %d documents from %s (%d skipped)", c.Len(), path, c.Skipped)
	return c, nil
}
