package gamedata

import (
	"math"
	"testing"

	"github.com/alexanderramin/xpcalc/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRates_CoverCatalog(t *testing.T) {
	rates := DefaultRates()
	for _, def := range domain.Catalog {
		assert.Greater(t, rates.Rate(def.Key), int64(0), "activity=%s", def.Key)
	}
	assert.Len(t, rates, len(domain.Catalog))
}

func TestDefaultRates_ReturnsCopy(t *testing.T) {
	rates := DefaultRates()
	rates[domain.NormalCatches] = 1
	assert.Equal(t, int64(100), DefaultRates().Rate(domain.NormalCatches))
}

func TestDefaultThresholds_Monotonic(t *testing.T) {
	table := DefaultThresholds()
	require.NoError(t, table.Validate())
	assert.Equal(t, int64(0), table.At(1))
	assert.Equal(t, int64(10000), table.At(5))
	assert.Equal(t, int64(176000000), table.At(50))
}

func TestThresholdTable_AtOutOfRangeUsesLevel50(t *testing.T) {
	table := DefaultThresholds()
	assert.Equal(t, table.At(50), table.At(0))
	assert.Equal(t, table.At(50), table.At(51))
	assert.Equal(t, table.At(50), table.At(-7))
}

func TestNewThresholdTable(t *testing.T) {
	levels := make([]int64, domain.MaxLevel)
	for i := range levels {
		levels[i] = int64(i) * 1000
	}
	table, err := NewThresholdTable(levels)
	require.NoError(t, err)
	assert.Equal(t, int64(0), table.At(1))
	assert.Equal(t, int64(49000), table.At(50))

	_, err = NewThresholdTable(levels[:10])
	assert.Error(t, err)
}

func TestThresholdTable_ValidateReportsDip(t *testing.T) {
	table := DefaultThresholds()
	table[12] = 1
	err := table.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "level 12")
}

func TestMaxRate_TotalFitsInt64(t *testing.T) {
	var capSum int64
	for _, def := range domain.Catalog {
		capSum += def.Cap
	}
	assert.Less(t, capSum, int64(math.MaxInt64/(2*MaxRate)))
}
