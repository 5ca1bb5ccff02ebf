package models

import (
	"bytes"
	"encoding/csv"
	"strconv"
	"strings"
	"time"
)

const exportTimeLayout = "2006-01-02 15:04:05"

var exportHeaders = []string{
	"ID", "Email", "Full Name", "User Type", "Verification Status",
	"Profile Completion", "Country", "State", "City", "Phone",
	"Active", "Last Login", "Created At",
}

// ExportFilename names an export taken on day.
func ExportFilename(prefix string, day time.Time) string {
	if prefix == "" {
		prefix = "users-export"
	}
	return prefix + "-" + day.UTC().Format(time.DateOnly) + ".csv"
}

// UsersCSV renders users with a header row. Timestamps are UTC.
func UsersCSV(users []*ManagedUser) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(exportHeaders); err != nil {
		return nil, err
	}
	for _, u := range users {
		lastLogin := ""
		if u.LastLogin != nil {
			lastLogin = u.LastLogin.UTC().Format(exportTimeLayout)
		}
		active := "No"
		if u.IsActive {
			active = "Yes"
		}
		record := []string{
			u.ID.String(),
			u.Email,
			u.FullName,
			u.UserType,
			u.VerificationStatus,
			strconv.Itoa(u.ProfileCompletion),
			deref(u.Country),
			deref(u.State),
			deref(u.City),
			deref(u.Phone),
			active,
			lastLogin,
			u.CreatedAt.UTC().Format(exportTimeLayout),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

// DisplayUserType is the label shown for a user type. Any address containing
// admin@ is shown as Super Admin.
func DisplayUserType(userType, email string) string {
	if strings.Contains(strings.ToLower(email), "admin@") {
		return "Super Admin"
	}
	switch strings.ToLower(userType) {
	case "business":
		return "Business"
	case "individual", "professional":
		return "Professional"
	case "admin", "super_admin":
		return "Super Admin"
	case "":
		return "Individual"
	}
	return userType
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
