package utils_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"roamio/pkg/utils"
)

// TestDaysBetween covers the range used to derive trip durations.
func TestDaysBetween(t *testing.T) {
	days, err := utils.DaysBetween("2024-06-01", "2024-06-04")
	require.NoError(t, err)
	require.Equal(t, 3, days)

	days, err = utils.DaysBetween("2024-06-01", "2024-06-01")
	require.NoError(t, err)
	require.Equal(t, 0, days)
}

// TestDaysBetween_badInput rejects dates outside the wire format.
func TestDaysBetween_badInput(t *testing.T) {
	_, err := utils.DaysBetween("2024-06-01", "04/06/2024")
	require.Error(t, err)
	require.ErrorContains(t, err, "04/06/2024")

	_, err = utils.DaysBetween("", "2024-06-04")
	require.Error(t, err)
}

// TestParseDate accepts the wire format only.
func TestParseDate(t *testing.T) {
	d, err := utils.ParseDate("2026-01-15")
	require.NoError(t, err)
	require.Equal(t, 2026, d.Year())

	_, err = utils.ParseDate("15 Jan 2026")
	require.Error(t, err)
}
