//go:build unit

package dates_test

import (
	"testing"
	"time"

	"borrowing-service/internal/pkg/dates"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDay(t *testing.T) {
	loc := time.FixedZone("JST", 9*60*60)
	in := time.Date(2026, 3, 14, 23, 59, 59, 999, loc)

	got := dates.Day(in)

	assert.Equal(t, time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC), got)
}

func TestAddDays(t *testing.T) {
	day := time.Date(2026, 1, 1, 15, 0, 0, 0, time.UTC)

	assert.Equal(t, time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC), dates.AddDays(day, -732))
	assert.Equal(t, time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC), dates.AddDays(day, 14))
}

func TestParseFormat(t *testing.T) {
	d, err := dates.Parse("2026-10-19")
	require.NoError(t, err)
	assert.Equal(t, "2026-10-19", dates.Format(d))

	_, err = dates.Parse("19/10/2026")
	assert.Error(t, err)

	p, err := dates.ParsePtr(nil)
	require.NoError(t, err)
	assert.Nil(t, p)

	empty := ""
	p, err = dates.ParsePtr(&empty)
	require.NoError(t, err)
	assert.Nil(t, p)
}
