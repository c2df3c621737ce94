package services_test

import (
	"testing"
	"time"

	"foodbot/internal/core/domain/services"
	"foodbot/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 2026-10-12 is a Monday.
func at(day, hour, minute, second, nsec int) time.Time {
	return time.Date(2026, time.October, day, hour, minute, second, nsec, time.UTC)
}

func TestBusinessHours_IsOpen(t *testing.T) {
	hours := services.DefaultBusinessHours(time.UTC)

	testCases := []struct {
		name     string
		instant  time.Time
		expected bool
	}{
		{name: "monday opening boundary", instant: at(12, 8, 0, 0, 0), expected: true},
		{name: "monday closing boundary", instant: at(12, 22, 0, 0, 0), expected: true},
		{name: "tuesday midday", instant: at(13, 13, 30, 0, 0), expected: true},
		{name: "sunday evening", instant: at(18, 21, 59, 59, 0), expected: true},
		{name: "just before opening", instant: at(12, 7, 59, 59, 999999999), expected: false},
		{name: "just after closing", instant: at(12, 22, 0, 0, 1), expected: false},
		{name: "one second after closing", instant: at(13, 22, 0, 1, 0), expected: false},
		{name: "wednesday opening boundary", instant: at(14, 8, 0, 0, 0), expected: false},
		{name: "wednesday noon", instant: at(14, 12, 0, 0, 0), expected: false},
		{name: "saturday noon", instant: at(17, 12, 0, 0, 0), expected: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, hours.IsOpen(tc.instant))
		})
	}
}

func TestBusinessHours_ClosedDayIsClosedAllDay(t *testing.T) {
	hours := services.DefaultBusinessHours(time.UTC)

	for _, day := range []int{14, 15, 16, 17} {
		for minute := 0; minute < 24*60; minute += 15 {
			instant := at(day, minute/60, minute%60, 0, 0)
			require.False(t, hours.IsOpen(instant), instant.String())
		}
	}
}

func TestBusinessHours_UsesConfiguredLocation(t *testing.T) {
	kolkata := time.FixedZone("IST", 5*3600+1800)
	hours := services.DefaultBusinessHours(kolkata)

	// 03:00 UTC on Monday is 08:30 in Kolkata.
	assert.True(t, hours.IsOpen(at(12, 3, 0, 0, 0)))
	// 17:00 UTC on Monday is 22:30 in Kolkata.
	assert.False(t, hours.IsOpen(at(12, 17, 0, 0, 0)))
}

func TestBusinessHours_ZeroValueIsClosed(t *testing.T) {
	var hours services.BusinessHours

	require.ErrorIs(t, hours.Validate(), services.ErrBusinessHoursIsNotConstructed)
	assert.False(t, hours.IsOpen(at(12, 12, 0, 0, 0)))
}

func TestBusinessHours_String(t *testing.T) {
	hours := services.DefaultBusinessHours(time.UTC)
	assert.Equal(t, "Mon, Tue, Sun 08:00 - 22:00", hours.String())
}

func TestNewBusinessHours_Validation(t *testing.T) {
	_, err := services.NewBusinessHours(nil, time.Hour, 2*time.Hour, time.UTC)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = services.NewBusinessHours(services.DefaultOpenDays, 10*time.Hour, 9*time.Hour, time.UTC)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

	_, err = services.NewBusinessHours(services.DefaultOpenDays, 0, 25*time.Hour, time.UTC)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

	_, err = services.NewBusinessHours([]time.Weekday{time.Weekday(9)}, 0, time.Hour, time.UTC)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

	hours, err := services.NewBusinessHours([]time.Weekday{time.Friday}, 0, 24*time.Hour, nil)
	require.NoError(t, err)
	assert.Equal(t, "Fri 00:00 - 24:00", hours.String())
}

func TestParseClock(t *testing.T) {
	d, err := services.ParseClock("08:00")
	require.NoError(t, err)
	assert.Equal(t, 8*time.Hour, d)

	d, err = services.ParseClock("21:30:15")
	require.NoError(t, err)
	assert.Equal(t, 21*time.Hour+30*time.Minute+15*time.Second, d)

	d, err = services.ParseClock("24:00")
	require.NoError(t, err)
	assert.Equal(t, 24*time.Hour, d)

	for _, bad := range []string{"8", "ab:cd", "25:00", "24:01", "10:60", "1:2:3:4"} {
		_, err = services.ParseClock(bad)
		require.Error(t, err, bad)
	}
}

func TestParseWeekdays(t *testing.T) {
	days, err := services.ParseWeekdays("sun, Mon,TUESDAY")
	require.NoError(t, err)
	assert.Equal(t, []time.Weekday{time.Sunday, time.Monday, time.Tuesday}, days)

	_, err = services.ParseWeekdays("mon,funday")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = services.ParseWeekdays(" , ")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}
