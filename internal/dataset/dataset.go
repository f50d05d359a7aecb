// Package dataset reads and writes the YAML documents that carry input
// series into a pipeline and results back out of it.
//
// A document lists named series. Each series declares its frequency and
// either a start date, from which the index is stepped one period at a time,
// or an explicit index of dates:
//
//	series:
//	  - name: TS1
//	    frequency: monthly
//	    start: 2020-01-01
//	    values: [1, 2, 3]
//	  - name: TS2
//	    frequency: M
//	    index: [2020-01-01, 2020-02-01, 2020-03-01]
//	    values: [4, 5, 6]
package dataset

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/vk/calcgrid/internal/ctxlog"
	"github.com/vk/calcgrid/internal/frequency"
	"github.com/vk/calcgrid/internal/series"
)

// ErrInvalidDataset is returned for documents that parse but cannot be
// turned into a table.
var ErrInvalidDataset = errors.New("invalid dataset")

// Dataset is a decoded document: the table of input columns and the
// frequency declared for each of them.
type Dataset struct {
	Table       *series.Table
	Frequencies map[string]frequency.Frequency
}

type document struct {
	Series []seriesDoc `yaml:"series"`
}

type seriesDoc struct {
	Name      string      `yaml:"name"`
	Frequency string      `yaml:"frequency"`
	Start     *time.Time  `yaml:"start,omitempty"`
	Index     []time.Time `yaml:"index,omitempty,flow"`
	Values    []float64   `yaml:"values,flow"`
}

// Load reads a dataset file from path.
func Load(ctx context.Context, path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer f.Close()

	ds, err := Decode(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("dataset %s: %w", path, err)
	}
	return ds, nil
}

// Decode reads a dataset document from r. Unknown fields are rejected.
func Decode(ctx context.Context, r io.Reader) (*Dataset, error) {
	logger := ctxlog.FromContext(ctx)

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var doc document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidDataset)
		}
		return nil, fmt.Errorf("failed to parse dataset: %w", err)
	}
	if len(doc.Series) == 0 {
		return nil, fmt.Errorf("%w: no series declared", ErrInvalidDataset)
	}

	freqs := make(map[string]frequency.Frequency, len(doc.Series))
	cols := make([]*series.Series, 0, len(doc.Series))
	for i, sd := range doc.Series {
		s, f, err := sd.build()
		if err != nil {
			return nil, fmt.Errorf("series %d (%q): %w", i, sd.Name, err)
		}
		logger.Debug("Decoded series.", "name", s.Name, "frequency", f, "len", s.Len())
		freqs[s.Name] = f
		cols = append(cols, s)
	}

	table, err := series.NewTable(cols...)
	if err != nil {
		return nil, err
	}
	return &Dataset{Table: table, Frequencies: freqs}, nil
}

func (sd seriesDoc) build() (*series.Series, frequency.Frequency, error) {
	if sd.Name == "" {
		return nil, "", fmt.Errorf("%w: name is required", ErrInvalidDataset)
	}
	f, err := frequency.Parse(sd.Frequency)
	if err != nil {
		return nil, "", err
	}

	var index []time.Time
	switch {
	case sd.Start != nil && sd.Index != nil:
		return nil, "", fmt.Errorf("%w: start and index are mutually exclusive", ErrInvalidDataset)
	case sd.Start != nil:
		first := f.PeriodStart(sd.Start.UTC())
		index = make([]time.Time, len(sd.Values))
		for i := range index {
			index[i] = f.Step(first, i)
		}
	case sd.Index != nil:
		index = make([]time.Time, len(sd.Index))
		for i, t := range sd.Index {
			index[i] = f.PeriodStart(t.UTC())
		}
	default:
		return nil, "", fmt.Errorf("%w: one of start or index is required", ErrInvalidDataset)
	}

	s, err := series.New(sd.Name, index, sd.Values)
	if err != nil {
		return nil, "", err
	}
	return s, f, nil
}

// Encode writes the columns of t as a dataset document with explicit
// indexes, all declared at frequency f.
func Encode(w io.Writer, t *series.Table, f frequency.Frequency) error {
	doc := document{Series: make([]seriesDoc, 0, t.Len())}
	for _, c := range t.Columns() {
		doc.Series = append(doc.Series, seriesDoc{
			Name:      c.Name,
			Frequency: f.Name(),
			Index:     c.Index,
			Values:    c.Values,
		})
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode dataset: %w", err)
	}
	return enc.Close()
}
