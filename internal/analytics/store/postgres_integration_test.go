//go:build integration

package store_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"coreid/internal/analytics/models"
	"coreid/internal/analytics/store"
	"coreid/pkg/testutil/containers"
)

type PostgresStoreSuite struct {
	suite.Suite
	postgres *containers.PostgresContainer
	store    *store.PostgresStore
}

func TestPostgresStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(PostgresStoreSuite))
}

func (s *PostgresStoreSuite) SetupSuite() {
	s.postgres = containers.GetManager().GetPostgres(s.T())
	s.store = store.NewPostgres(s.postgres.DB)
}

func (s *PostgresStoreSuite) SetupTest() {
	s.Require().NoError(s.postgres.TruncateTables(context.Background(), "profiles"))
}

type profile struct {
	userType, country, state, city string
	verified, emailVerified, pin   bool
	completion                     int
	age                            string
}

func (s *PostgresStoreSuite) insert(p profile) {
	status := "pending"
	if p.verified {
		status = "verified"
	}
	_, err := s.postgres.DB.ExecContext(context.Background(), `
		INSERT INTO profiles (user_id, user_type, country, state, city, verification_status,
		                      email_verified, is_pin_verified, profile_completion, created_at)
		VALUES ($1, $2, nullif($3, ''), nullif($4, ''), nullif($5, ''), $6, $7, $8, $9, now() - $10::interval)`,
		uuid.New(), p.userType, p.country, p.state, p.city, status, p.emailVerified, p.pin, p.completion, p.age)
	s.Require().NoError(err)
}

func (s *PostgresStoreSuite) seed() {
	s.insert(profile{userType: "business", country: "Nigeria", state: "Lagos", city: "Ikeja", verified: true,
		emailVerified: true, pin: true, completion: 100, age: "1 day"})
	s.insert(profile{userType: "individual", country: "Nigeria", state: "Lagos", city: "Ikeja",
		emailVerified: true, completion: 90, age: "2 days"})
	s.insert(profile{userType: "individual", country: "Nigeria", state: "Abuja", city: "Garki",
		emailVerified: true, completion: 40, age: "60 days"})
	s.insert(profile{userType: "individual", country: "Ghana", state: "Accra", city: "Osu", age: "100 days"})
}

func (s *PostgresStoreSuite) TestFunnelStages() {
	s.seed()
	stages, err := s.store.Funnel(context.Background())
	s.Require().NoError(err)
	s.Require().Len(stages, 4)

	s.Equal("Signed Up", stages[0].Stage)
	s.Equal(4, stages[0].Count)
	s.Equal(100.0, stages[0].Percentage)
	s.Zero(stages[0].Dropoff)

	s.Equal("Email Verified", stages[1].Stage)
	s.Equal(3, stages[1].Count)
	s.Equal(25.0, stages[1].Dropoff)

	s.Equal("PIN Activated", stages[3].Stage)
	s.Equal(1, stages[3].Count)
}

func (s *PostgresStoreSuite) TestGrowthCountsOnlyThePeriod() {
	s.seed()
	points, err := s.store.UserGrowth(context.Background(), models.Period30Days)
	s.Require().NoError(err)

	var fresh int
	for _, p := range points {
		fresh += p.Count
	}
	s.Equal(2, fresh)
	s.Equal(4, points[len(points)-1].Cumulative)
}

func (s *PostgresStoreSuite) TestCountriesAndSummary() {
	ctx := context.Background()
	s.seed()

	countries, err := s.store.Countries(ctx)
	s.Require().NoError(err)
	s.Require().Len(countries, 2)
	s.Equal("Nigeria", countries[0].Country)
	s.Equal(3, countries[0].UserCount)
	s.Equal(75.0, countries[0].Percentage)
	s.Equal(1, countries[0].VerifiedCount)
	s.Equal(1, countries[0].BusinessCount)

	sum, err := s.store.Summary(ctx)
	s.Require().NoError(err)
	s.Equal(2, sum.TotalCountries)
	s.Equal(3, sum.TotalRegions)
	s.Equal(3, sum.TotalCities)
	s.Require().NotNil(sum.TopCountry)
	s.Equal("Nigeria", *sum.TopCountry)

	regions, err := s.store.Regions(ctx, "Ghana")
	s.Require().NoError(err)
	s.Require().Len(regions, 1)
	s.Equal("Accra", regions[0].Region)

	cities, err := s.store.Cities(ctx, 1)
	s.Require().NoError(err)
	s.Require().Len(cities, 1)
	s.Equal("Ikeja", cities[0].City)
}

func (s *PostgresStoreSuite) TestEmptySummaryHasNoTopCountry() {
	sum, err := s.store.Summary(context.Background())
	s.Require().NoError(err)
	s.Zero(sum.TotalCountries)
	s.Nil(sum.TopCountry)
}

func (s *PostgresStoreSuite) TestCountryGrowth() {
	s.seed()
	growth, err := s.store.CountryGrowth(context.Background(), models.Period30Days)
	s.Require().NoError(err)
	s.Require().Len(growth, 2)
	s.Equal("Nigeria", growth[0].Country)
	s.Equal(2, growth[0].NewUsers)
	s.Equal(200.0, growth[0].GrowthRate)
	s.Equal(0.0, growth[1].GrowthRate)
}

func (s *PostgresStoreSuite) TestDemographicsAreGroupedByMetric() {
	s.seed()
	rows, err := s.store.Demographics(context.Background())
	s.Require().NoError(err)
	grouped := models.GroupDemographics(rows)
	s.Contains(grouped, "user_type")
	s.Contains(grouped, "verification_status")
	s.Contains(grouped, "age_group")
	s.Equal("individual", grouped["user_type"][0].Value)
	s.Equal(3, grouped["user_type"][0].UserCount)
}
