package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGrowthRate(t *testing.T) {
	assert.Equal(t, 100.0, GrowthRate(5, 0))
	assert.Equal(t, 100.0, GrowthRate(0, 0))
	assert.Equal(t, 50.0, GrowthRate(15, 10))
	assert.Equal(t, -25.0, GrowthRate(30, 40))
}

func TestDiversityScore(t *testing.T) {
	t.Run("no countries", func(t *testing.T) {
		assert.Equal(t, 0, DiversityScore(nil))
	})
	t.Run("single country", func(t *testing.T) {
		assert.Equal(t, 20, DiversityScore([]CountryStat{{Country: "Kenya", Percentage: 100}}))
	})
	t.Run("even split is fully diverse", func(t *testing.T) {
		even := []CountryStat{{Percentage: 25}, {Percentage: 25}, {Percentage: 25}, {Percentage: 25}}
		assert.Equal(t, 100, DiversityScore(even))
	})
	t.Run("one dominant country", func(t *testing.T) {
		skewed := []CountryStat{{Percentage: 90}, {Percentage: 5}, {Percentage: 5}}
		assert.Less(t, DiversityScore(skewed), 40)
	})
}

func TestGeoInsights(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		assert.Equal(t, []string{"No geographic data available yet"}, GeoInsights(nil, nil))
	})

	t.Run("concentrated with growth and business users", func(t *testing.T) {
		countries := []CountryStat{
			{Country: "Nigeria", UserCount: 1350, Percentage: 90, BusinessCount: 500},
			{Country: "Ghana", UserCount: 100, Percentage: 6.67, BusinessCount: 20},
			{Country: "Kenya", UserCount: 50, Percentage: 3.33},
		}
		growth := []CountryGrowth{{Country: "Ghana", GrowthRate: 25.5}}

		assert.Equal(t, []string{
			"Nigeria leads with 1,350 users (90%)",
			"User base concentrated in Nigeria, Ghana, Kenya",
			"Strong growth in Ghana (+25.5% this period)",
			"Strong business presence (34.7% of users)",
		}, GeoInsights(countries, growth))
	})

	t.Run("diverse and flat", func(t *testing.T) {
		countries := []CountryStat{
			{Country: "A", UserCount: 10, Percentage: 25},
			{Country: "B", UserCount: 10, Percentage: 25},
			{Country: "C", UserCount: 10, Percentage: 25},
			{Country: "D", UserCount: 10, Percentage: 25},
		}
		insights := GeoInsights(countries, []CountryGrowth{{Country: "A", GrowthRate: 10}})
		assert.Equal(t, []string{
			"A leads with 10 users (25%)",
			"Highly diverse user base across 4 countries",
		}, insights)
	})
}

func TestGroupDemographics(t *testing.T) {
	grouped := GroupDemographics([]Demographic{
		{Metric: "user_type", Value: "business", UserCount: 3},
		{Metric: "age_group", Value: "25-34", UserCount: 2},
		{Metric: "user_type", Value: "individual", UserCount: 1},
	})
	assert.Len(t, grouped, 2)
	assert.Equal(t, "business", grouped["user_type"][0].Value)
	assert.Equal(t, "individual", grouped["user_type"][1].Value)
}

func TestPeriods(t *testing.T) {
	assert.True(t, PeriodAll.IsValid())
	assert.False(t, Period("2w").IsValid())
	assert.True(t, Period90Days.IsGeographic())
	assert.False(t, PeriodYear.IsGeographic())
}
