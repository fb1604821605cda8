package core_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/calgrid/core"
)

func TestNewRange_Valid(t *testing.T) {
	r, err := core.NewRange(core.YM(2023, time.January), core.YM(2023, time.December))
	require.NoError(t, err)
	assert.Equal(t, 12, r.Months())
}

func TestNewRange_Inverted(t *testing.T) {
	_, err := core.NewRange(core.YM(2023, time.February), core.YM(2023, time.January))
	assert.ErrorIs(t, err, core.ErrInvalidRange)
}

func TestRange_SingleMonth(t *testing.T) {
	jan := core.YM(2023, time.January)
	r, err := core.NewRange(jan, jan)
	require.NoError(t, err)
	assert.Equal(t, 1, r.Months())
	assert.True(t, r.Contains(jan))
}

func TestRange_Contains(t *testing.T) {
	r, err := core.NewRange(core.YM(2023, time.March), core.YM(2023, time.June))
	require.NoError(t, err)

	assert.True(t, r.Contains(core.YM(2023, time.March)))
	assert.True(t, r.Contains(core.YM(2023, time.June)))
	assert.False(t, r.Contains(core.YM(2023, time.February)))
	assert.False(t, r.Contains(core.YM(2023, time.July)))
}

func TestRange_Months_AcrossYears(t *testing.T) {
	r, err := core.NewRange(core.YM(2022, time.November), core.YM(2024, time.February))
	require.NoError(t, err)
	assert.Equal(t, 16, r.Months())
}

func TestRange_String(t *testing.T) {
	r := core.Range{Start: core.YM(2023, time.January), End: core.YM(2023, time.December)}
	assert.Equal(t, "2023-01..2023-12", r.String())
}
