package models

import "time"

// Result is the outcome of one rate limit check.
type Result struct {
	Allowed   bool      `json:"allowed"`
	Limit     int       `json:"limit"`
	Remaining int       `json:"remaining"`
	ResetAt   time.Time `json:"reset_at"`
	// RetryAfter is in seconds and only set when the request was refused.
	RetryAfter int `json:"retry_after,omitempty"`
}

// ExceededResponse is the 429 body.
type ExceededResponse struct {
	Error      string `json:"error"`
	Message    string `json:"message"`
	RetryAfter int    `json:"retry_after"`
}

// Key namespaces a client IP for the public route group.
func Key(ip string) string {
	return "coreid:ratelimit:public:" + ip
}
