package cli

import (
	"errors"
	"testing"

	"github.com/alexanderramin/xpcalc/internal/contract"
	"github.com/alexanderramin/xpcalc/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAssignment(t *testing.T) {
	a, v, err := parseAssignment("Great Throws=12abc")
	require.NoError(t, err)
	assert.Equal(t, domain.GreatThrows, a)
	assert.Equal(t, int64(12), v)

	_, v, err = parseAssignment("km_2_eggs=")
	require.NoError(t, err)
	assert.Equal(t, int64(0), v)
}

func TestParseAssignment_Errors(t *testing.T) {
	_, _, err := parseAssignment("km_2_eggs")
	var calcErr *contract.CalcError
	require.True(t, errors.As(err, &calcErr))
	assert.Equal(t, contract.ErrCodeInvalidArgument, calcErr.Code)

	_, _, err = parseAssignment("mega_raid=1")
	assert.True(t, errors.Is(err, contract.ErrUnknownActivity))
	assert.Contains(t, err.Error(), "mega_raids")
}

func TestCountsFlag(t *testing.T) {
	f := newCountsFlag()
	assert.Equal(t, "", f.String())
	assert.Equal(t, "name=value", f.Type())

	require.NoError(t, f.Set("normal_catches=5, curve_balls=2"))
	require.NoError(t, f.Set("normal_catches=7"))
	assert.Equal(t, domain.ActivityCounts{domain.NormalCatches: 7, domain.CurveBalls: 2}, f.counts)
	assert.Equal(t, "curve_balls=2,normal_catches=7", f.String())

	assert.Error(t, f.Set("nope=1"))
}
