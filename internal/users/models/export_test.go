package models

import (
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUsersCSV(t *testing.T) {
	login := time.Date(2025, 4, 2, 9, 30, 0, 0, time.UTC)
	country := "Nigeria"
	users := []*ManagedUser{
		{
			ID:                 uuid.MustParse("0b8f3e0e-8a4e-4f7a-9d8a-2b1f5c6d7e80"),
			Email:              "ada@gidipin.work",
			FullName:           "Ada, Lovelace",
			UserType:           "individual",
			VerificationStatus: "verified",
			ProfileCompletion:  80,
			Country:            &country,
			IsActive:           true,
			LastLogin:          &login,
			CreatedAt:          time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC),
		},
		{
			ID:        uuid.MustParse("1c9f4f1f-9b5f-4a8b-8e9b-3c2a6d7e8f91"),
			Email:     "biz@example.com",
			UserType:  "business",
			CreatedAt: time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC),
		},
	}

	body, err := UsersCSV(users)
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(string(body))).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, exportHeaders, records[0])
	assert.Equal(t, "Ada, Lovelace", records[1][2])
	assert.Equal(t, "Nigeria", records[1][6])
	assert.Equal(t, "Yes", records[1][10])
	assert.Equal(t, "2025-04-02 09:30:00", records[1][11])
	assert.Equal(t, "No", records[2][10])
	assert.Equal(t, "", records[2][11])
}

func TestExportFilename(t *testing.T) {
	day := time.Date(2025, 6, 30, 23, 0, 0, 0, time.UTC)
	assert.Equal(t, "users-export-2025-06-30.csv", ExportFilename("", day))
	assert.Equal(t, "audit-logs-2025-06-30.csv", ExportFilename("audit-logs", day))
}

func TestDisplayUserType(t *testing.T) {
	tests := []struct {
		userType, email, want string
	}{
		{"individual", "ada@example.com", "Professional"},
		{"professional", "", "Professional"},
		{"business", "", "Business"},
		{"super_admin", "", "Super Admin"},
		{"individual", "admin@gidipin.work", "Super Admin"},
		{"", "", "Individual"},
		{"partner", "", "partner"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, DisplayUserType(tt.userType, tt.email), "%s/%s", tt.userType, tt.email)
	}
}

func TestSortNormalize(t *testing.T) {
	assert.Equal(t, Sort{By: "created_at", Order: "DESC"}, Sort{By: "password; drop", Order: "sideways"}.Normalize())
	assert.Equal(t, Sort{By: "email", Order: "ASC"}, Sort{By: "email", Order: "ASC"}.Normalize())
}

func TestPatchEmpty(t *testing.T) {
	assert.True(t, Patch{}.Empty())
	name := "Ada"
	assert.False(t, Patch{FullName: &name}.Empty())
}
