package models

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// DataType is the declared type of a system setting's value.
type DataType string

const (
	TypeString  DataType = "string"
	TypeNumber  DataType = "number"
	TypeBoolean DataType = "boolean"
	TypeJSON    DataType = "json"
)

// Categories lists the setting groups returned by ByCategory.
var Categories = []string{"general", "features", "email", "security", "api", "system"}

// Setting is one system_settings row. Value holds the stored JSON.
type Setting struct {
	ID          uuid.UUID       `json:"id"`
	Category    string          `json:"category"`
	Key         string          `json:"key"`
	Value       json.RawMessage `json:"value"`
	Description string          `json:"description"`
	DataType    DataType        `json:"data_type"`
	IsSensitive bool            `json:"is_sensitive"`
	UpdatedAt   time.Time       `json:"updated_at"`
	UpdatedBy   *uuid.UUID      `json:"updated_by"`
}

// Decoded returns the setting's value as a Go value.
func (s *Setting) Decoded() any {
	return DecodeValue(s.Value)
}

// SettingView is the per-key entry of ByCategory.
type SettingView struct {
	Value       any      `json:"value"`
	Description string   `json:"description"`
	DataType    DataType `json:"data_type"`
	IsSensitive bool     `json:"is_sensitive"`
}

// ByCategory groups settings by category, then key. Every entry of
// Categories is present even when empty.
type ByCategory map[string]map[string]SettingView

// HistoryEntry is one row of get_settings_history.
type HistoryEntry struct {
	ID        uuid.UUID       `json:"id"`
	Category  string          `json:"category"`
	Key       string          `json:"key"`
	OldValue  json.RawMessage `json:"old_value"`
	NewValue  json.RawMessage `json:"new_value"`
	ChangedBy *uuid.UUID      `json:"changed_by"`
	ChangedAt time.Time       `json:"changed_at"`
}

// Change is one requested setting update.
type Change struct {
	Category string `json:"category" validate:"required"`
	Key      string `json:"key" validate:"required"`
	Value    any    `json:"value"`
}

// UpdateResult is what update_system_setting reports.
type UpdateResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// SecuritySettings is the console-wide security policy row.
type SecuritySettings struct {
	ID                 *uuid.UUID `json:"id,omitempty"`
	SiteName           string     `json:"siteName" validate:"required,max=100"`
	SupportEmail       string     `json:"supportEmail" validate:"required,email"`
	MaintenanceMode    bool       `json:"maintenanceMode"`
	PasswordMinLength  int        `json:"passwordMinLength" validate:"gte=6,lte=128"`
	RequireSpecialChar bool       `json:"requireSpecialChar"`
	RequireNumbers     bool       `json:"requireNumbers"`
	Enforce2FA         bool       `json:"enforce2FA"`
	SessionTimeout     int        `json:"sessionTimeout" validate:"gte=1,lte=1440"`
}

// DefaultSecurity is served when no security settings row exists.
func DefaultSecurity() SecuritySettings {
	return SecuritySettings{
		SiteName:           "CoreID Admin",
		SupportEmail:       "support@coreid.com",
		PasswordMinLength:  8,
		RequireSpecialChar: true,
		RequireNumbers:     true,
		SessionTimeout:     30,
	}
}

// AdminUser is one console operator from get_admin_users.
type AdminUser struct {
	ID        uuid.UUID  `json:"id"`
	Email     string     `json:"email"`
	FullName  *string    `json:"full_name,omitempty"`
	Role      string     `json:"role"`
	Status    string     `json:"status"`
	LastLogin *time.Time `json:"lastLogin,omitempty"`
}

// DecodeValue unmarshals stored JSON. A JSON string that itself holds JSON
// is decoded once more; anything undecodable is returned as text.
func DecodeValue(raw json.RawMessage) any {
	if len(raw) == 0 {
		return nil
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return string(raw)
	}
	if s, ok := v.(string); ok {
		var inner any
		if err := json.Unmarshal([]byte(s), &inner); err == nil {
			return inner
		}
	}
	return v
}

// ValidValue reports whether v fits t. Unknown types accept anything.
func ValidValue(v any, t DataType) bool {
	switch t {
	case TypeBoolean:
		_, ok := v.(bool)
		return ok
	case TypeNumber:
		switch v.(type) {
		case float64, float32, int, int64, json.Number:
			return true
		}
		return false
	case TypeString:
		_, ok := v.(string)
		return ok
	case TypeJSON:
		_, err := json.Marshal(v)
		return err == nil
	default:
		return true
	}
}

// FormatValue renders v for display.
func FormatValue(v any, t DataType) string {
	if v == nil {
		return "Not set"
	}
	switch t {
	case TypeBoolean:
		if b, ok := v.(bool); ok && b {
			return "Enabled"
		}
		return "Disabled"
	case TypeJSON:
		b, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Sprint(v)
		}
		return string(b)
	default:
		return fmt.Sprint(v)
	}
}
