// Package models holds report templates, schedules and the generated report
// history.
package models

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

type ReportType string

const (
	TypeEngagement  ReportType = "engagement"
	TypePerformance ReportType = "performance"
	TypeGeographic  ReportType = "geographic"
	TypeCustom      ReportType = "custom"
)

func (t ReportType) IsValid() bool {
	switch t {
	case TypeEngagement, TypePerformance, TypeGeographic, TypeCustom:
		return true
	}
	return false
}

type ScheduleType string

const (
	ScheduleDaily   ScheduleType = "daily"
	ScheduleWeekly  ScheduleType = "weekly"
	ScheduleMonthly ScheduleType = "monthly"
	ScheduleCustom  ScheduleType = "custom"
)

type HistoryStatus string

const (
	HistoryPending    HistoryStatus = "pending"
	HistoryGenerating HistoryStatus = "generating"
	HistoryCompleted  HistoryStatus = "completed"
	HistoryFailed     HistoryStatus = "failed"
)

// ExportKind names a data set that can be exported as CSV.
type ExportKind string

const (
	ExportUsers     ExportKind = "users"
	ExportAuditLogs ExportKind = "audit_logs"
)

type Template struct {
	ID             uuid.UUID       `json:"id"`
	Name           string          `json:"name"`
	Description    string          `json:"description"`
	ReportType     ReportType      `json:"report_type"`
	DataSources    []string        `json:"data_sources"`
	Filters        json.RawMessage `json:"filters,omitempty"`
	Columns        []string        `json:"columns"`
	Visualizations json.RawMessage `json:"visualizations,omitempty"`
	IsActive       bool            `json:"is_active"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

type TemplateInput struct {
	Name           string          `json:"name" validate:"required,max=200"`
	Description    string          `json:"description" validate:"max=2000"`
	ReportType     ReportType      `json:"report_type" validate:"required,oneof=engagement performance geographic custom"`
	DataSources    []string        `json:"data_sources" validate:"required,min=1,dive,required"`
	Filters        json.RawMessage `json:"filters,omitempty"`
	Columns        []string        `json:"columns" validate:"required,min=1,dive,required"`
	Visualizations json.RawMessage `json:"visualizations,omitempty"`
}

type TemplatePatch struct {
	Name           *string         `json:"name,omitempty" validate:"omitempty,max=200"`
	Description    *string         `json:"description,omitempty" validate:"omitempty,max=2000"`
	ReportType     *ReportType     `json:"report_type,omitempty" validate:"omitempty,oneof=engagement performance geographic custom"`
	DataSources    []string        `json:"data_sources,omitempty" validate:"omitempty,dive,required"`
	Filters        json.RawMessage `json:"filters,omitempty"`
	Columns        []string        `json:"columns,omitempty" validate:"omitempty,dive,required"`
	Visualizations json.RawMessage `json:"visualizations,omitempty"`
	IsActive       *bool           `json:"is_active,omitempty"`
}

// ScheduleConfig is stored as jsonb. Time is "HH:MM"; DayOfWeek counts
// from Sunday (0).
type ScheduleConfig struct {
	Time       string `json:"time,omitempty"`
	DayOfWeek  *int   `json:"day_of_week,omitempty" validate:"omitempty,min=0,max=6"`
	DayOfMonth *int   `json:"day_of_month,omitempty" validate:"omitempty,min=1,max=31"`
	Cron       string `json:"cron,omitempty"`
}

type ScheduledReport struct {
	ID             uuid.UUID      `json:"id"`
	TemplateID     uuid.UUID      `json:"template_id"`
	TemplateName   string         `json:"template_name,omitempty"`
	Name           string         `json:"name"`
	ScheduleType   ScheduleType   `json:"schedule_type"`
	ScheduleConfig ScheduleConfig `json:"schedule_config"`
	Recipients     []string       `json:"recipients"`
	ExportFormat   string         `json:"export_format"`
	LastRunAt      *time.Time     `json:"last_run_at,omitempty"`
	NextRunAt      *time.Time     `json:"next_run_at,omitempty"`
	IsActive       bool           `json:"is_active"`
}

type ScheduleInput struct {
	TemplateID     uuid.UUID      `json:"template_id" validate:"required"`
	Name           string         `json:"name" validate:"required,max=200"`
	ScheduleType   ScheduleType   `json:"schedule_type" validate:"required,oneof=daily weekly monthly"`
	ScheduleConfig ScheduleConfig `json:"schedule_config"`
	Recipients     []string       `json:"recipients" validate:"required,min=1,dive,email"`
	ExportFormat   string         `json:"export_format" validate:"required,oneof=pdf csv xlsx"`
}

type SchedulePatch struct {
	Name           *string         `json:"name,omitempty" validate:"omitempty,max=200"`
	ScheduleType   *ScheduleType   `json:"schedule_type,omitempty" validate:"omitempty,oneof=daily weekly monthly"`
	ScheduleConfig *ScheduleConfig `json:"schedule_config,omitempty"`
	Recipients     []string        `json:"recipients,omitempty" validate:"omitempty,dive,email"`
	ExportFormat   *string         `json:"export_format,omitempty" validate:"omitempty,oneof=pdf csv xlsx"`
}

// Rescheduled reports whether the patch changes when the report runs.
func (p SchedulePatch) Rescheduled() bool {
	return p.ScheduleType != nil || p.ScheduleConfig != nil
}

type History struct {
	ID           uuid.UUID     `json:"id"`
	TemplateID   *uuid.UUID    `json:"template_id,omitempty"`
	TemplateName string        `json:"template_name,omitempty"`
	Name         string        `json:"name"`
	ReportType   string        `json:"report_type"`
	ExportFormat string        `json:"export_format"`
	FileURL      string        `json:"file_url,omitempty"`
	FileSize     *int64        `json:"file_size,omitempty"`
	Status       HistoryStatus `json:"status"`
	GeneratedAt  time.Time     `json:"generated_at"`
}

// HistoryEntry records a finished export.
type HistoryEntry struct {
	Name         string
	ReportType   string
	ExportFormat string
	FileURL      string
	FileSize     int64
	Status       HistoryStatus
	GeneratedBy  *uuid.UUID
	GeneratedAt  time.Time
}

// Export is the outcome of an export. Data is only set when the file was not
// uploaded and has to be returned to the caller directly.
type Export struct {
	Kind      ExportKind `json:"kind"`
	Filename  string     `json:"filename"`
	Size      int64      `json:"size"`
	SizeLabel string     `json:"size_label"`
	URL       string     `json:"url,omitempty"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
	HistoryID *uuid.UUID `json:"history_id,omitempty"`
	Data      []byte     `json:"-"`
}

// ParseClock parses "HH:MM".
func ParseClock(s string) (hour, minute int, err error) {
	h, m, ok := strings.Cut(s, ":")
	if !ok {
		return 0, 0, fmt.Errorf("time %q is not HH:MM", s)
	}
	hour, err = strconv.Atoi(h)
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, fmt.Errorf("time %q has an invalid hour", s)
	}
	minute, err = strconv.Atoi(m)
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("time %q has an invalid minute", s)
	}
	return hour, minute, nil
}

// NextRunTime returns the first run strictly after now, in now's location.
// Weekly schedules default to Monday and monthly ones to the 1st; a day of
// month past the end of a short month runs on its last day.
func NextRunTime(kind ScheduleType, cfg ScheduleConfig, now time.Time) (time.Time, error) {
	clock := cfg.Time
	if clock == "" {
		clock = "09:00"
	}
	hour, minute, err := ParseClock(clock)
	if err != nil {
		return time.Time{}, err
	}
	at := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, hour, minute, 0, 0, now.Location())
	}

	switch kind {
	case ScheduleDaily:
		next := at(now.Year(), now.Month(), now.Day())
		if !next.After(now) {
			next = next.AddDate(0, 0, 1)
		}
		return next, nil

	case ScheduleWeekly:
		target := time.Monday
		if cfg.DayOfWeek != nil {
			target = time.Weekday(*cfg.DayOfWeek)
		}
		next := at(now.Year(), now.Month(), now.Day())
		days := (int(target) - int(now.Weekday()) + 7) % 7
		next = next.AddDate(0, 0, days)
		if !next.After(now) {
			next = next.AddDate(0, 0, 7)
		}
		return next, nil

	case ScheduleMonthly:
		day := 1
		if cfg.DayOfMonth != nil {
			day = *cfg.DayOfMonth
		}
		y, m := now.Year(), now.Month()
		next := at(y, m, min(day, daysIn(y, m)))
		if !next.After(now) {
			y, m = nextMonth(y, m)
			next = at(y, m, min(day, daysIn(y, m)))
		}
		return next, nil
	}
	return time.Time{}, fmt.Errorf("schedule type %q has no computed run time", kind)
}

func daysIn(y int, m time.Month) int {
	return time.Date(y, m+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func nextMonth(y int, m time.Month) (int, time.Month) {
	if m == time.December {
		return y + 1, time.January
	}
	return y, m + 1
}

var sizeUnits = []string{"Bytes", "KB", "MB", "GB"}

// FormatFileSize renders bytes with two decimals in binary units: 1536
// becomes "1.5 KB".
func FormatFileSize(bytes int64) string {
	if bytes <= 0 {
		return "0 Bytes"
	}
	i := int(math.Floor(math.Log(float64(bytes)) / math.Log(1024)))
	i = min(i, len(sizeUnits)-1)
	v := math.Round(float64(bytes)/math.Pow(1024, float64(i))*100) / 100
	return strconv.FormatFloat(v, 'f', -1, 64) + " " + sizeUnits[i]
}
