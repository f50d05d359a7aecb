package series_test

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/calcgrid/internal/frequency"
	"github.com/vk/calcgrid/internal/series"
	"github.com/vk/calcgrid/internal/testutil"
)

func TestResample_MonthlyToQuarterly(t *testing.T) {
	s := testutil.Monthly(t, "A", 1, 5, 3, 4, 2, 6, 7)

	testCases := []struct {
		agg      series.Aggregation
		expected []float64
	}{
		{agg: series.Max, expected: []float64{5, 6, 7}},
		{agg: series.Min, expected: []float64{1, 2, 7}},
		{agg: series.Sum, expected: []float64{9, 12, 7}},
		{agg: series.Mean, expected: []float64{3, 4, 7}},
		{agg: series.First, expected: []float64{1, 4, 7}},
		{agg: series.Last, expected: []float64{3, 6, 7}},
		{agg: series.Count, expected: []float64{3, 3, 1}},
	}

	for _, tc := range testCases {
		t.Run(string(tc.agg), func(t *testing.T) {
			got, err := s.Resample(frequency.Quarterly, tc.agg)
			require.NoError(t, err)

			want, err := series.New("A", testutil.Periods(frequency.Quarterly, 3), tc.expected)
			require.NoError(t, err)
			testutil.RequireSeries(t, want, got)
		})
	}
}

func TestResample_SkipsNaN(t *testing.T) {
	s := testutil.Monthly(t, "A", math.NaN(), math.NaN(), math.NaN(), 1, math.NaN(), 3)

	sum, err := s.Resample(frequency.Quarterly, series.Sum)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 4}, sum.Values)

	mean, err := s.Resample(frequency.Quarterly, series.Mean)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(mean.Values[0]))
	assert.Equal(t, 2.0, mean.Values[1])

	count, err := s.Resample(frequency.Quarterly, series.Count)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 2}, count.Values)
}

func TestResample_FillsEmptyPeriods(t *testing.T) {
	jan := testutil.Start
	jul := frequency.Monthly.Step(jan, 6)
	s, err := series.New("A", []time.Time{jan, jul}, []float64{2, 5})
	require.NoError(t, err)

	testCases := []struct {
		agg      series.Aggregation
		expected []float64
	}{
		{agg: series.Sum, expected: []float64{2, 0, 5}},
		{agg: series.Count, expected: []float64{1, 0, 1}},
		{agg: series.Max, expected: []float64{2, math.NaN(), 5}},
		{agg: series.Mean, expected: []float64{2, math.NaN(), 5}},
	}

	for _, tc := range testCases {
		t.Run(string(tc.agg), func(t *testing.T) {
			got, err := s.Resample(frequency.Quarterly, tc.agg)
			require.NoError(t, err)

			want, err := series.New("A", testutil.Periods(frequency.Quarterly, 3), tc.expected)
			require.NoError(t, err)
			testutil.RequireSeries(t, want, got)
		})
	}
}

func TestResample_Errors(t *testing.T) {
	s := testutil.Monthly(t, "A", 1, 2)

	_, err := s.Resample(frequency.Quarterly, "median")
	assert.ErrorIs(t, err, series.ErrUnknownAggregation)

	_, err = s.Resample("W", series.Sum)
	assert.ErrorIs(t, err, frequency.ErrUnknownFrequency)
}

func TestTableResample(t *testing.T) {
	tbl := testutil.Table(t,
		testutil.Monthly(t, "A", 1, 2, 3, 4),
		testutil.Monthly(t, "B", 10, 20, 30, 40),
	)

	out, err := tbl.Resample(frequency.Annual, series.Sum)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, out.Names())

	b, err := out.Column("B")
	require.NoError(t, err)
	assert.Equal(t, []float64{100}, b.Values)
}

func TestParseAggregation(t *testing.T) {
	a, err := series.ParseAggregation("max")
	require.NoError(t, err)
	assert.Equal(t, series.Max, a)

	_, err = series.ParseAggregation("MAX")
	assert.ErrorIs(t, err, series.ErrUnknownAggregation)
}
