package models

import (
	"time"

	"github.com/google/uuid"
)

// Profile is a row of the profiles table.
type Profile struct {
	UserID        uuid.UUID `json:"id"`
	Email         string    `json:"email"`
	Name          *string   `json:"name,omitempty"`
	FullName      *string   `json:"full_name,omitempty"`
	AvatarURL     *string   `json:"avatar_url,omitempty"`
	Phone         *string   `json:"phone_number,omitempty"`
	UserType      *string   `json:"user_type,omitempty"`
	Status        *string   `json:"status,omitempty"`
	PinNumber     *string   `json:"pin,omitempty"`
	IsPinVerified bool      `json:"is_pin_verified"`
	EmailVerified bool      `json:"is_email_verified"`
	IsSuspended   bool      `json:"is_suspended"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Verification filter values.
const (
	VerifiedEmail   = "verified"
	UnverifiedEmail = "unverified"
	HasPIN          = "has_pin"
	NoPIN           = "no_pin"
)

// Filters narrows the profile list.
type Filters struct {
	Search   string
	UserType string
	// Status holds active, inactive or suspended. The first of those present,
	// in that order, wins.
	Status   []string
	Verified string
	From     *time.Time
	// To is inclusive of the whole day.
	To            *time.Time
	IdentityTypes []string
}

// Patch lists the profile columns an admin may edit. Nil fields are left
// untouched.
type Patch struct {
	Name      *string `json:"name,omitempty"`
	FullName  *string `json:"full_name,omitempty" validate:"omitempty,max=200"`
	Phone     *string `json:"phone_number,omitempty" validate:"omitempty,max=32"`
	AvatarURL *string `json:"avatar_url,omitempty" validate:"omitempty,url"`
	UserType  *string `json:"user_type,omitempty" validate:"omitempty,oneof=individual professional business partner"`
	Status    *string `json:"status,omitempty" validate:"omitempty,oneof=active inactive suspended"`
}

// Empty reports whether p changes nothing.
func (p Patch) Empty() bool {
	return p.Name == nil && p.FullName == nil && p.Phone == nil &&
		p.AvatarURL == nil && p.UserType == nil && p.Status == nil
}

// ManagedUser is a row returned by the user management functions.
type ManagedUser struct {
	ID                 uuid.UUID  `json:"id"`
	Email              string     `json:"email"`
	FullName           string     `json:"full_name"`
	UserType           string     `json:"user_type"`
	VerificationStatus string     `json:"verification_status"`
	ProfileCompletion  int        `json:"profile_completion"`
	Country            *string    `json:"country,omitempty"`
	State              *string    `json:"state,omitempty"`
	City               *string    `json:"city,omitempty"`
	Phone              *string    `json:"phone,omitempty"`
	DateOfBirth        *string    `json:"date_of_birth,omitempty"`
	IsActive           bool       `json:"is_active"`
	LastLogin          *time.Time `json:"last_login,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          *time.Time `json:"updated_at,omitempty"`
}

// SearchFilters are the arguments of get_users_with_filters. Blank values
// are passed as NULL.
type SearchFilters struct {
	Search             string `json:"search"`
	UserType           string `json:"user_type"`
	VerificationStatus string `json:"verification_status"`
	Country            string `json:"country"`
	Status             string `json:"status"`
}

// Sort orders a user search.
type Sort struct {
	By    string
	Order string
}

var sortable = map[string]bool{
	"created_at": true, "email": true, "full_name": true,
	"last_login": true, "profile_completion": true, "user_type": true,
}

// Normalize defaults to created_at DESC and rejects unknown columns.
func (s Sort) Normalize() Sort {
	if !sortable[s.By] {
		s.By = "created_at"
	}
	if s.Order != "ASC" {
		s.Order = "DESC"
	}
	return s
}

type Statistics struct {
	TotalUsers          int `json:"total_users"`
	ActiveUsers         int `json:"active_users"`
	InactiveUsers       int `json:"inactive_users"`
	VerifiedUsers       int `json:"verified_users"`
	PendingVerification int `json:"pending_verification"`
	IndividualUsers     int `json:"individual_users"`
	BusinessUsers       int `json:"business_users"`
	NewUsersToday       int `json:"new_users_today"`
	NewUsersThisWeek    int `json:"new_users_this_week"`
	NewUsersThisMonth   int `json:"new_users_this_month"`
}

type FilterOptions struct {
	Countries            []string `json:"countries"`
	UserTypes            []string `json:"user_types"`
	VerificationStatuses []string `json:"verification_statuses"`
}

// BulkResult is what a bulk function reports back.
type BulkResult struct {
	Success      bool   `json:"success"`
	UpdatedCount int    `json:"updated_count,omitempty"`
	DeletedCount int    `json:"deleted_count,omitempty"`
	Message      string `json:"message"`
}

// Verification statuses accepted by the bulk verification update.
var VerificationStatuses = []string{"pending", "verified", "rejected"}
