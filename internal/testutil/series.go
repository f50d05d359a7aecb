// Package testutil contains helpers shared by the package tests: series
// builders, comparison options and a thread-safe log buffer.
package testutil

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"

	"github.com/vk/calcgrid/internal/ctxlog"
	"github.com/vk/calcgrid/internal/frequency"
	"github.com/vk/calcgrid/internal/series"
)

// Start is the first period used by the series builders.
var Start = time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)

// Periods returns n consecutive period starts of f beginning at Start.
func Periods(f frequency.Frequency, n int) []time.Time {
	out := make([]time.Time, n)
	for i := range out {
		out[i] = f.Step(Start, i)
	}
	return out
}

// Series builds a named series of the given frequency starting at Start.
func Series(t *testing.T, name string, f frequency.Frequency, values ...float64) *series.Series {
	t.Helper()
	s, err := series.New(name, Periods(f, len(values)), values)
	require.NoError(t, err)
	return s
}

// Monthly is shorthand for a monthly series starting January 2020.
func Monthly(t *testing.T, name string, values ...float64) *series.Series {
	t.Helper()
	return Series(t, name, frequency.Monthly, values...)
}

// Table builds a table from the given columns.
func Table(t *testing.T, columns ...*series.Series) *series.Table {
	t.Helper()
	tbl, err := series.NewTable(columns...)
	require.NoError(t, err)
	return tbl
}

// SeriesOpts compares series treating NaN values as equal.
var SeriesOpts = cmp.Options{
	cmpopts.EquateNaNs(),
	cmpopts.EquateApprox(0, 1e-9),
}

// RequireSeries fails the test when got differs from want.
func RequireSeries(t *testing.T, want, got *series.Series) {
	t.Helper()
	require.NotNil(t, got)
	if diff := cmp.Diff(want, got, SeriesOpts); diff != "" {
		t.Fatalf("series mismatch (-want +got):\n%s", diff)
	}
}

// Context returns a context carrying a logger that discards its output.
func Context() context.Context {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return ctxlog.WithLogger(context.Background(), logger)
}

// NewLogger returns a debug-level text logger writing to w.
func NewLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}
