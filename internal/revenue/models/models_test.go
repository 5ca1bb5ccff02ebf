package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGrowthRate(t *testing.T) {
	assert.Equal(t, 100.0, GrowthRate(10, 0))
	assert.Equal(t, 0.0, GrowthRate(0, 0))
	assert.Equal(t, -50.0, GrowthRate(50, 100))
	assert.Equal(t, 20.0, GrowthRate(120, 100))
}

func TestPlanName(t *testing.T) {
	assert.Equal(t, "Pro Plan", PlanName("pro"))
	assert.Equal(t, "Enterprise", PlanName("ENTERPRISE"))
	assert.Equal(t, "team-2024", PlanName("team-2024"))
}

func TestCurrency(t *testing.T) {
	assert.Equal(t, "$12,450", Currency(12450))
	assert.Equal(t, "$0", Currency(0))
	assert.Equal(t, "-$40", Currency(-40))
}

func TestInsights(t *testing.T) {
	t.Run("healthy business", func(t *testing.T) {
		got := Insights(
			Overview{MRR: 12450, ARR: 149400, SuccessRate: 97.5},
			SubscriptionMetrics{ActiveSubscriptions: 320, ChurnRate: 2.5, NewThisMonth: 14, CanceledThisMonth: 4},
		)
		assert.Equal(t, []string{
			"Monthly Recurring Revenue: $12,450",
			"Annual Run Rate: $149,400",
			"Excellent payment success rate: 97.5%",
			"Healthy churn rate: 2.5%",
			"Net subscription growth: +10 this month",
			"320 active subscribers",
		}, got)
	})

	t.Run("struggling business", func(t *testing.T) {
		got := Insights(
			Overview{SuccessRate: 82},
			SubscriptionMetrics{ActiveSubscriptions: 12, ChurnRate: 8.2, NewThisMonth: 1, CanceledThisMonth: 3},
		)
		assert.Equal(t, []string{
			"Payment success rate needs attention: 82%",
			"High churn rate: 8.2% - Consider retention strategies",
			"12 active subscribers",
		}, got)
	})

	t.Run("success rate between thresholds says nothing", func(t *testing.T) {
		got := Insights(Overview{SuccessRate: 92}, SubscriptionMetrics{})
		assert.Equal(t, []string{"0 active subscribers"}, got)
	})
}

func TestHealthScore(t *testing.T) {
	t.Run("nothing yet", func(t *testing.T) {
		assert.Equal(t, 30, HealthScore(Overview{}, SubscriptionMetrics{}))
	})

	t.Run("growing base", func(t *testing.T) {
		// 28.8 success + 24 churn + 20 growth + 10 for 99 subscribers
		score := HealthScore(
			Overview{SuccessRate: 96},
			SubscriptionMetrics{ChurnRate: 2, NewThisMonth: 6, CanceledThisMonth: 2, ActiveSubscriptions: 99},
		)
		assert.Equal(t, 83, score)
	})

	t.Run("heavy churn floors at zero", func(t *testing.T) {
		score := HealthScore(Overview{SuccessRate: 50}, SubscriptionMetrics{ChurnRate: 40})
		assert.Equal(t, 15, score)
	})

	t.Run("capped", func(t *testing.T) {
		score := HealthScore(
			Overview{SuccessRate: 100},
			SubscriptionMetrics{NewThisMonth: 50, ActiveSubscriptions: 10_000_000_000},
		)
		assert.Equal(t, 100, score)
	})
}

func TestPeriod(t *testing.T) {
	assert.True(t, DefaultPeriod.IsValid())
	assert.True(t, PeriodYear.IsValid())
	assert.False(t, Period("all").IsValid())
}
