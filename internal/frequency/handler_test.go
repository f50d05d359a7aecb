package frequency

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/calcgrid/internal/calcerr"
)

func TestHandlers(t *testing.T) {
	testCases := []struct {
		name        string
		handler     Handler
		inputs      []Frequency
		expected    Frequency
		expectedErr error
	}{
		{name: "passthrough", handler: Passthrough{}, inputs: []Frequency{Monthly}, expected: Monthly},
		{name: "passthrough arity", handler: Passthrough{}, inputs: []Frequency{Monthly, Monthly}, expectedErr: calcerr.ErrArity},
		{name: "passthrough empty", handler: Passthrough{}, inputs: nil, expectedErr: calcerr.ErrArity},

		{name: "identical many", handler: Identical{}, inputs: []Frequency{Quarterly, Quarterly, Quarterly}, expected: Quarterly},
		{name: "identical single", handler: Identical{}, inputs: []Frequency{Daily}, expected: Daily},
		{name: "identical mismatch", handler: Identical{}, inputs: []Frequency{Monthly, Quarterly}, expectedErr: calcerr.ErrIncompatibleFrequencies},
		{name: "identical fixed arity", handler: Identical{Arity: 2}, inputs: []Frequency{Monthly, Monthly}, expected: Monthly},
		{name: "identical fixed arity wrong count", handler: Identical{Arity: 2}, inputs: []Frequency{Monthly}, expectedErr: calcerr.ErrArity},
		{name: "identical empty", handler: Identical{}, inputs: nil, expectedErr: calcerr.ErrArity},

		{name: "coarsest", handler: Coarsest{}, inputs: []Frequency{Monthly, Annual, Quarterly}, expected: Annual},
		{name: "finest", handler: Finest{}, inputs: []Frequency{Monthly, Annual, Quarterly}, expected: Monthly},
		{name: "coarsest empty", handler: Coarsest{}, inputs: nil, expectedErr: calcerr.ErrArity},

		{name: "downsample monthly to quarterly", handler: Downsample{Target: Quarterly}, inputs: []Frequency{Monthly}, expected: Quarterly},
		{name: "downsample same frequency", handler: Downsample{Target: Quarterly}, inputs: []Frequency{Quarterly}, expected: Quarterly},
		{name: "downsample annual to quarterly", handler: Downsample{Target: Quarterly}, inputs: []Frequency{Annual}, expectedErr: calcerr.ErrInvalidAggregation},
		{name: "downsample arity", handler: Downsample{Target: Annual}, inputs: []Frequency{Daily, Daily}, expectedErr: calcerr.ErrArity},

		{name: "unknown input", handler: Coarsest{}, inputs: []Frequency{"W"}, expectedErr: ErrUnknownFrequency},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.handler.OutputFrequency(tc.inputs...)
			if tc.expectedErr != nil {
				require.ErrorIs(t, err, tc.expectedErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestHandlers_ArityCheckedFirst(t *testing.T) {
	// Two differing frequencies against a fixed arity of three: the count is
	// wrong, so the frequency mismatch must not be the reported cause.
	_, err := Identical{Arity: 3}.OutputFrequency(Monthly, Quarterly)
	require.ErrorIs(t, err, calcerr.ErrArity)
	assert.NotErrorIs(t, err, calcerr.ErrIncompatibleFrequencies)

	_, err = Downsample{Target: Monthly}.OutputFrequency(Annual, Annual)
	require.ErrorIs(t, err, calcerr.ErrArity)
	assert.NotErrorIs(t, err, calcerr.ErrInvalidAggregation)
}

func TestIdentical_ErrorListsFrequencies(t *testing.T) {
	_, err := Identical{}.OutputFrequency(Quarterly, Monthly, Quarterly)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "[M Q]")
}
