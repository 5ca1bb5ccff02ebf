package models

import (
	"fmt"
	"math"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Period is a reporting window understood by the SQL helpers.
type Period string

const (
	Period7Days  Period = "7d"
	Period30Days Period = "30d"
	Period90Days Period = "90d"
	PeriodYear   Period = "1y"
	PeriodAll    Period = "all"
)

// IsValid reports whether p is a user growth window.
func (p Period) IsValid() bool {
	switch p {
	case Period7Days, Period30Days, Period90Days, PeriodYear, PeriodAll:
		return true
	}
	return false
}

// IsGeographic reports whether p is a geographic growth window. Geographic
// growth only compares the short windows.
func (p Period) IsGeographic() bool {
	switch p {
	case Period7Days, Period30Days, Period90Days:
		return true
	}
	return false
}

type GrowthPoint struct {
	Date       time.Time `json:"date"`
	Count      int       `json:"count"`
	Cumulative int       `json:"cumulative"`
}

type TypeShare struct {
	Type       string  `json:"type"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// FunnelStage is one step of the PIN activation funnel. Dropoff is the
// share lost since the previous stage and is zero for the first one.
type FunnelStage struct {
	Stage      string  `json:"stage"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
	Dropoff    float64 `json:"dropoff"`
}

// Overview is the analytics landing page for one period.
type Overview struct {
	Period     Period        `json:"period"`
	Growth     []GrowthPoint `json:"growth"`
	UserTypes  []TypeShare   `json:"user_types"`
	Funnel     []FunnelStage `json:"funnel"`
	NewUsers   int           `json:"new_users"`
	TotalUsers int           `json:"total_users"`
	GrowthRate float64       `json:"growth_rate"`
}

type CountryStat struct {
	Country       string  `json:"country"`
	UserCount     int     `json:"user_count"`
	Percentage    float64 `json:"percentage"`
	VerifiedCount int     `json:"verified_count"`
	BusinessCount int     `json:"business_count"`
}

type RegionStat struct {
	Country    string  `json:"country"`
	Region     string  `json:"region"`
	UserCount  int     `json:"user_count"`
	Percentage float64 `json:"percentage"`
}

type CityStat struct {
	City       string  `json:"city"`
	Country    string  `json:"country"`
	UserCount  int     `json:"user_count"`
	Percentage float64 `json:"percentage"`
}

type Demographic struct {
	Metric     string  `json:"metric_name"`
	Value      string  `json:"metric_value"`
	UserCount  int     `json:"user_count"`
	Percentage float64 `json:"percentage"`
}

type CountryGrowth struct {
	Country    string  `json:"country"`
	NewUsers   int     `json:"new_users"`
	GrowthRate float64 `json:"growth_rate"`
	TotalUsers int     `json:"total_users"`
}

type GeoSummary struct {
	TotalCountries       int     `json:"total_countries"`
	TotalRegions         int     `json:"total_regions"`
	TotalCities          int     `json:"total_cities"`
	TopCountry           *string `json:"top_country"`
	TopCountryUsers      int     `json:"top_country_users"`
	TopCountryPercentage float64 `json:"top_country_percentage"`
}

// GeoOverview bundles the geographic page for one growth period.
type GeoOverview struct {
	Period         Period                   `json:"period"`
	Summary        *GeoSummary              `json:"summary"`
	TopCountries   []CountryStat            `json:"top_countries"`
	Growth         []CountryGrowth          `json:"growth"`
	Demographics   map[string][]Demographic `json:"demographics"`
	DiversityScore int                      `json:"diversity_score"`
	Insights       []string                 `json:"insights"`
}

// GrowthRate is the percentage change from previous to current. Growth from
// nothing counts as 100%.
func GrowthRate(current, previous int) float64 {
	if previous == 0 {
		return 100
	}
	return float64(current-previous) / float64(previous) * 100
}

// DiversityScore rates how evenly users spread over countries, from 0 (one
// country) to 100. It inverts the normalized Herfindahl index of the
// country shares.
func DiversityScore(countries []CountryStat) int {
	switch len(countries) {
	case 0:
		return 0
	case 1:
		return 20
	}
	var hhi float64
	for _, c := range countries {
		share := c.Percentage / 100
		hhi += share * share
	}
	minHHI := 1 / float64(len(countries))
	normalized := (hhi - minHHI) / (1 - minHHI)
	return int(math.Round((1 - normalized) * 100))
}

// GeoInsights summarizes the country table in sentences. countries must be
// ordered by user count and growth by growth rate, both descending.
func GeoInsights(countries []CountryStat, growth []CountryGrowth) []string {
	if len(countries) == 0 {
		return []string{"No geographic data available yet"}
	}
	top := countries[0]
	insights := []string{
		printer.Sprintf("%s leads with %d users (%s%%)", top.Country, top.UserCount, trimFloat(top.Percentage)),
	}

	switch score := DiversityScore(countries); {
	case score >= 70:
		insights = append(insights, fmt.Sprintf("Highly diverse user base across %d countries", len(countries)))
	case score < 40:
		names := make([]string, 0, 3)
		for _, c := range countries[:min(3, len(countries))] {
			names = append(names, c.Country)
		}
		insights = append(insights, "User base concentrated in "+strings.Join(names, ", "))
	}

	if len(growth) > 0 && growth[0].GrowthRate > 10 {
		insights = append(insights, fmt.Sprintf("Strong growth in %s (+%s%% this period)", growth[0].Country, trimFloat(growth[0].GrowthRate)))
	}

	var business, users int
	for _, c := range countries {
		business += c.BusinessCount
		users += c.UserCount
	}
	if users > 0 {
		if share := float64(business) / float64(users) * 100; share > 30 {
			insights = append(insights, fmt.Sprintf("Strong business presence (%.1f%% of users)", share))
		}
	}
	return insights
}

// GroupDemographics buckets rows by metric, keeping row order within each.
func GroupDemographics(rows []Demographic) map[string][]Demographic {
	out := make(map[string][]Demographic)
	for _, d := range rows {
		out[d.Metric] = append(out[d.Metric], d)
	}
	return out
}

// CountryMap keys user counts by country for the map view.
func CountryMap(countries []CountryStat) map[string]int {
	out := make(map[string]int, len(countries))
	for _, c := range countries {
		out[c.Country] = c.UserCount
	}
	return out
}

func trimFloat(f float64) string {
	return strings.TrimSuffix(strings.TrimRight(fmt.Sprintf("%.2f", f), "0"), ".")
}

