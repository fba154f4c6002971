package transform

import (
	"errors"
	"testing"

	"github.com/context-maximiser/sampleproc/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSumNumericPrices(t *testing.T) {
	for _, policy := range []Policy{PolicyFailFast, PolicyCoerce} {
		t.Run(string(policy), func(t *testing.T) {
			total, err := Sum(models.Values(10, 20, 30, 40), policy)
			require.NoError(t, err)
			assert.Equal(t, 100.0, total)
		})
	}
}

func TestSumEmpty(t *testing.T) {
	for _, policy := range []Policy{PolicyFailFast, PolicyCoerce} {
		total, err := Sum(nil, policy)
		require.NoError(t, err)
		assert.Zero(t, total)
	}
}

func TestSumFailFastRejectsTextualNumeral(t *testing.T) {
	_, err := Sum(models.Values(10, 20, "30", 40), PolicyFailFast)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTypeMismatch))
	assert.EqualError(t, err, `sum: type mismatch at index 2: got text "30", want number`)

	var mismatch *TypeMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, 2, mismatch.Index)
	assert.Equal(t, models.Text("30"), mismatch.Value)
	assert.Nil(t, mismatch.Err)
}

func TestSumCoerceParsesTextualNumeral(t *testing.T) {
	total, err := Sum(models.Values(10, 20, "30", 40), PolicyCoerce)
	require.NoError(t, err)
	assert.Equal(t, 100.0, total)

	total, err = Sum(models.Values(" 1.5 ", "-0.5"), PolicyCoerce)
	require.NoError(t, err)
	assert.Equal(t, 1.0, total)
}

func TestSumCoerceRejectsUnparseableText(t *testing.T) {
	for _, s := range []string{"thirty", "", "   ", "NaN", "Inf"} {
		t.Run(s, func(t *testing.T) {
			_, err := Sum(models.Values(10, s), PolicyCoerce)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrTypeMismatch))

			var mismatch *TypeMismatchError
			require.ErrorAs(t, err, &mismatch)
			assert.Equal(t, 1, mismatch.Index)
			assert.Error(t, mismatch.Err)
		})
	}
}

func TestSumRejectsAbsentUnderEveryPolicy(t *testing.T) {
	for _, policy := range []Policy{PolicyFailFast, PolicyCoerce} {
		_, err := Sum(models.Values(1, nil, 2), policy)
		assert.ErrorIs(t, err, ErrTypeMismatch, "policy %s", policy)
	}
}

func TestParsePolicy(t *testing.T) {
	tests := []struct {
		in      string
		want    Policy
		wantErr bool
	}{
		{"", PolicyFailFast, false},
		{"fail-fast", PolicyFailFast, false},
		{" Coerce ", PolicyCoerce, false},
		{"concat", "", true},
	}

	for _, tt := range tests {
		got, err := ParsePolicy(tt.in)
		if tt.wantErr {
			assert.Error(t, err)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

func TestNewAggregatorDefaultsPolicy(t *testing.T) {
	assert.Equal(t, PolicyFailFast, NewAggregator("").Policy())
	assert.Equal(t, PolicyCoerce, NewAggregator(PolicyCoerce).Policy())
}
