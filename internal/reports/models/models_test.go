package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intp(v int) *int { return &v }

// Saturday 15 March 2025, 10:30 UTC.
var now = time.Date(2025, 3, 15, 10, 30, 0, 0, time.UTC)

func TestNextRunTimeDaily(t *testing.T) {
	next, err := NextRunTime(ScheduleDaily, ScheduleConfig{Time: "11:00"}, now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 15, 11, 0, 0, 0, time.UTC), next)

	next, err = NextRunTime(ScheduleDaily, ScheduleConfig{Time: "10:30"}, now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 16, 10, 30, 0, 0, time.UTC), next)
}

func TestNextRunTimeWeekly(t *testing.T) {
	next, err := NextRunTime(ScheduleWeekly, ScheduleConfig{Time: "09:00"}, now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 17, 9, 0, 0, 0, time.UTC), next, "defaults to Monday")

	next, err = NextRunTime(ScheduleWeekly, ScheduleConfig{Time: "09:00", DayOfWeek: intp(0)}, now)
	require.NoError(t, err)
	assert.Equal(t, time.Sunday, next.Weekday())
	assert.Equal(t, 16, next.Day())

	next, err = NextRunTime(ScheduleWeekly, ScheduleConfig{Time: "08:00", DayOfWeek: intp(6)}, now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 22, 8, 0, 0, 0, time.UTC), next, "passed today rolls a week")
}

func TestNextRunTimeMonthly(t *testing.T) {
	next, err := NextRunTime(ScheduleMonthly, ScheduleConfig{Time: "09:00"}, now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC), next)

	next, err = NextRunTime(ScheduleMonthly, ScheduleConfig{Time: "09:00", DayOfMonth: intp(20)}, now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 20, 9, 0, 0, 0, time.UTC), next)

	jan := time.Date(2025, 1, 31, 12, 0, 0, 0, time.UTC)
	next, err = NextRunTime(ScheduleMonthly, ScheduleConfig{Time: "09:00", DayOfMonth: intp(31)}, jan)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 2, 28, 9, 0, 0, 0, time.UTC), next, "clamped to the last day")

	dec := time.Date(2025, 12, 10, 0, 0, 0, 0, time.UTC)
	next, err = NextRunTime(ScheduleMonthly, ScheduleConfig{Time: "09:00", DayOfMonth: intp(5)}, dec)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC), next)
}

func TestNextRunTimeRejects(t *testing.T) {
	_, err := NextRunTime(ScheduleDaily, ScheduleConfig{Time: "25:00"}, now)
	assert.Error(t, err)
	_, err = NextRunTime(ScheduleDaily, ScheduleConfig{Time: "nine"}, now)
	assert.Error(t, err)
	_, err = NextRunTime(ScheduleCustom, ScheduleConfig{Cron: "0 9 * * *"}, now)
	assert.Error(t, err)
}

func TestFormatFileSize(t *testing.T) {
	assert.Equal(t, "0 Bytes", FormatFileSize(0))
	assert.Equal(t, "512 Bytes", FormatFileSize(512))
	assert.Equal(t, "1.5 KB", FormatFileSize(1536))
	assert.Equal(t, "1 MB", FormatFileSize(1<<20))
	assert.Equal(t, "2048 GB", FormatFileSize(1<<41))
}
