package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Period is a monitoring window.
type Period string

const (
	PeriodHour    Period = "1h"
	Period6Hours  Period = "6h"
	PeriodDay     Period = "24h"
	PeriodWeek    Period = "7d"
	DefaultPeriod        = PeriodHour
)

func (p Period) IsValid() bool {
	switch p {
	case PeriodHour, Period6Hours, PeriodDay, PeriodWeek:
		return true
	}
	return false
}

// APIMetric is one recorded request.
type APIMetric struct {
	Endpoint       string     `json:"endpoint"`
	Method         string     `json:"method"`
	ResponseTimeMS int        `json:"response_time"`
	StatusCode     int        `json:"status_code"`
	UserID         *uuid.UUID `json:"user_id,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

type Summary struct {
	TotalRequests     int     `json:"total_requests"`
	AvgResponseTime   float64 `json:"avg_response_time"`
	ErrorRate         float64 `json:"error_rate"`
	RequestsPerMinute float64 `json:"requests_per_minute"`
}

type TrendPoint struct {
	Bucket          time.Time `json:"time_bucket"`
	AvgResponseTime float64   `json:"avg_response_time"`
	MaxResponseTime int       `json:"max_response_time"`
	RequestCount    int       `json:"request_count"`
}

type EndpointStat struct {
	Endpoint        string  `json:"endpoint"`
	RequestCount    int     `json:"request_count"`
	AvgResponseTime float64 `json:"avg_response_time"`
	MaxResponseTime int     `json:"max_response_time"`
	ErrorCount      int     `json:"error_count"`
	ErrorRate       float64 `json:"error_rate"`
}

type SlowEndpoint struct {
	Endpoint         string  `json:"endpoint"`
	Method           string  `json:"method"`
	AvgResponseTime  float64 `json:"avg_response_time"`
	MaxResponseTime  int     `json:"max_response_time"`
	SlowRequestCount int     `json:"slow_request_count"`
}

type DatabaseStats struct {
	Size              string `json:"database_size"`
	TotalConnections  int    `json:"total_connections"`
	ActiveConnections int    `json:"active_connections"`
	IdleConnections   int    `json:"idle_connections"`
}

type ErrorBucket struct {
	StatusCode     int     `json:"status_code"`
	ErrorCount     int     `json:"error_count"`
	Percentage     float64 `json:"percentage"`
	SampleEndpoint string  `json:"sample_endpoint"`
}

// Status bands a health score.
type Status string

const (
	StatusExcellent Status = "excellent"
	StatusGood      Status = "good"
	StatusFair      Status = "fair"
	StatusPoor      Status = "poor"
	StatusCritical  Status = "critical"
)

// HealthReport is the monitoring page headline.
type HealthReport struct {
	Score           int            `json:"score"`
	Status          Status         `json:"status"`
	Summary         *Summary       `json:"summary"`
	SlowEndpoints   []SlowEndpoint `json:"slow_endpoints"`
	Recommendations []string       `json:"recommendations"`
}

// HealthScore starts at 100 and deducts for latency, errors and an idle
// API. A missing summary scores 0.
func HealthScore(s *Summary) int {
	if s == nil {
		return 0
	}
	score := 100
	switch {
	case s.AvgResponseTime > 1000:
		score -= 30
	case s.AvgResponseTime > 500:
		score -= 15
	case s.AvgResponseTime > 200:
		score -= 5
	}
	switch {
	case s.ErrorRate > 10:
		score -= 40
	case s.ErrorRate > 5:
		score -= 20
	case s.ErrorRate > 1:
		score -= 10
	}
	if s.RequestsPerMinute < 0.1 {
		score -= 10
	}
	return max(score, 0)
}

func StatusFor(score int) Status {
	switch {
	case score >= 90:
		return StatusExcellent
	case score >= 75:
		return StatusGood
	case score >= 50:
		return StatusFair
	case score >= 25:
		return StatusPoor
	default:
		return StatusCritical
	}
}

// Recommendations lists follow-ups for the current numbers. It never
// returns an empty list.
func Recommendations(s *Summary, slow []SlowEndpoint) []string {
	var out []string
	if s != nil && s.AvgResponseTime > 500 {
		out = append(out, "Consider implementing caching for frequently accessed endpoints")
	}
	if s != nil && s.ErrorRate > 5 {
		out = append(out, "High error rate detected - review error logs and fix critical issues")
	}
	if len(slow) > 0 {
		names := make([]string, 0, 3)
		for _, e := range slow[:min(3, len(slow))] {
			names = append(names, e.Endpoint)
		}
		out = append(out, "Optimize slow endpoints: "+strings.Join(names, ", "))
	}
	if s != nil && s.RequestsPerMinute > 100 {
		out = append(out, "Consider implementing rate limiting to prevent API abuse")
	}
	if len(out) == 0 {
		out = append(out, "System performance is optimal - continue monitoring")
	}
	return out
}
