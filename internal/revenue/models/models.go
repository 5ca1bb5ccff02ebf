package models

import (
	"math"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.English)

// Period is a revenue reporting window.
type Period string

const (
	Period7Days  Period = "7d"
	Period30Days Period = "30d"
	Period90Days Period = "90d"
	PeriodYear   Period = "1y"
)

const DefaultPeriod = Period30Days

func (p Period) IsValid() bool {
	switch p {
	case Period7Days, Period30Days, Period90Days, PeriodYear:
		return true
	}
	return false
}

// Overview covers payments inside the period. MRR and ARR come from the
// subscriptions active now, with yearly plans spread over twelve months.
type Overview struct {
	TotalRevenue        float64 `json:"total_revenue"`
	MRR                 float64 `json:"mrr"`
	ARR                 float64 `json:"arr"`
	TotalPayments       int     `json:"total_payments"`
	SuccessfulPayments  int     `json:"successful_payments"`
	FailedPayments      int     `json:"failed_payments"`
	SuccessRate         float64 `json:"success_rate"`
	AvgTransactionValue float64 `json:"avg_transaction_value"`
}

type Trend struct {
	PeriodDate     time.Time `json:"period_date"`
	Revenue        float64   `json:"revenue"`
	PaymentCount   int       `json:"payment_count"`
	AvgTransaction float64   `json:"avg_transaction"`
}

type SubscriptionMetrics struct {
	TotalSubscriptions    int     `json:"total_subscriptions"`
	ActiveSubscriptions   int     `json:"active_subscriptions"`
	CanceledSubscriptions int     `json:"canceled_subscriptions"`
	TrialingSubscriptions int     `json:"trialing_subscriptions"`
	ChurnRate             float64 `json:"churn_rate"`
	NewThisMonth          int     `json:"new_this_month"`
	CanceledThisMonth     int     `json:"canceled_this_month"`
}

type PlanRevenue struct {
	PlanID            string  `json:"plan_id"`
	PlanName          string  `json:"plan_name"`
	SubscriptionCount int     `json:"subscription_count"`
	TotalRevenue      float64 `json:"total_revenue"`
	MRR               float64 `json:"mrr"`
	Percentage        float64 `json:"percentage"`
}

type PaymentMethod struct {
	PaymentMethod string  `json:"payment_method"`
	PaymentCount  int     `json:"payment_count"`
	TotalAmount   float64 `json:"total_amount"`
	SuccessRate   float64 `json:"success_rate"`
}

type CustomerLTV struct {
	AvgLTV                    float64 `json:"avg_ltv"`
	AvgSubscriptionLengthDays float64 `json:"avg_subscription_length_days"`
	AvgRevenuePerCustomer     float64 `json:"avg_revenue_per_customer"`
}

// Dashboard is the revenue page for one period.
type Dashboard struct {
	Period        Period              `json:"period"`
	Overview      Overview            `json:"overview"`
	Subscriptions SubscriptionMetrics `json:"subscriptions"`
	Trends        []Trend             `json:"trends"`
	Plans         []PlanRevenue       `json:"plans"`
	Methods       []PaymentMethod     `json:"payment_methods"`
	LTV           CustomerLTV         `json:"ltv"`
	HealthScore   int                 `json:"health_score"`
	Insights      []string            `json:"insights"`
}

// GrowthRate is the percentage change from previous to current.
func GrowthRate(current, previous float64) float64 {
	if previous == 0 {
		if current > 0 {
			return 100
		}
		return 0
	}
	return (current - previous) / previous * 100
}

var planNames = map[string]string{
	"free":       "Free Plan",
	"basic":      "Basic Plan",
	"pro":        "Pro Plan",
	"enterprise": "Enterprise",
	"starter":    "Starter",
	"premium":    "Premium",
}

// PlanName returns the display name of a plan id; unknown ids are returned
// as given.
func PlanName(id string) string {
	if name, ok := planNames[strings.ToLower(id)]; ok {
		return name
	}
	return id
}

// Currency formats a dollar amount with grouping and at most two decimals.
func Currency(amount float64) string {
	if amount < 0 {
		return "-$" + printer.Sprint(number.Decimal(-amount, number.MaxFractionDigits(2)))
	}
	return "$" + printer.Sprint(number.Decimal(amount, number.MaxFractionDigits(2)))
}

// Insights summarizes the overview and subscription metrics as sentences.
func Insights(o Overview, m SubscriptionMetrics) []string {
	var out []string
	if o.MRR > 0 {
		out = append(out, "Monthly Recurring Revenue: "+Currency(o.MRR))
	}
	if o.ARR > 0 {
		out = append(out, "Annual Run Rate: "+Currency(o.ARR))
	}

	switch {
	case o.SuccessRate >= 95:
		out = append(out, "Excellent payment success rate: "+pct(o.SuccessRate))
	case o.SuccessRate < 90:
		out = append(out, "Payment success rate needs attention: "+pct(o.SuccessRate))
	}

	switch {
	case m.ChurnRate > 5:
		out = append(out, "High churn rate: "+pct(m.ChurnRate)+" - Consider retention strategies")
	case m.ChurnRate > 0:
		out = append(out, "Healthy churn rate: "+pct(m.ChurnRate))
	}

	if net := m.NewThisMonth - m.CanceledThisMonth; net > 0 {
		out = append(out, "Net subscription growth: +"+strconv.Itoa(net)+" this month")
	}
	return append(out, strconv.Itoa(m.ActiveSubscriptions)+" active subscribers")
}

// HealthScore rates revenue health from 0 to 100: payment success and churn
// are worth 30 points each, subscription growth and subscriber base 20 each.
func HealthScore(o Overview, m SubscriptionMetrics) int {
	score := o.SuccessRate / 100 * 30
	score += math.Max(0, 30-m.ChurnRate*3)
	if m.NewThisMonth > 0 {
		ratio := float64(m.NewThisMonth) / float64(max(1, m.CanceledThisMonth))
		score += math.Min(20, ratio*10)
	}
	if m.ActiveSubscriptions > 0 {
		score += math.Min(20, math.Log10(float64(m.ActiveSubscriptions+1))*5)
	}
	return int(math.Min(100, math.Round(score)))
}

func pct(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "%"
}
