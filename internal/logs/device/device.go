// Package device turns the user agents recorded in login logs into a
// readable client description and a stable device fingerprint.
package device

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"github.com/mssola/useragent"
)

const unknown = "Unknown Device"

// Client is a parsed user agent.
type Client struct {
	Browser        string `json:"browser,omitempty"`
	BrowserVersion string `json:"browser_version,omitempty"`
	OS             string `json:"os,omitempty"`
	Platform       string `json:"platform,omitempty"`
	Mobile         bool   `json:"mobile"`
	Bot            bool   `json:"bot"`
	Display        string `json:"display"`
}

// Parse returns nil for an empty user agent.
func Parse(ua string) *Client {
	ua = strings.TrimSpace(ua)
	if ua == "" {
		return nil
	}
	parsed := useragent.New(ua)
	name, version := parsed.Browser()
	c := &Client{
		Browser:        name,
		BrowserVersion: version,
		OS:             parsed.OS(),
		Platform:       parsed.Platform(),
		Mobile:         parsed.Mobile(),
		Bot:            parsed.Bot(),
	}
	c.Display = display(c)
	return c
}

// DisplayName is "<browser> on <os>", or "Unknown Device" for an empty
// user agent.
func DisplayName(ua string) string {
	c := Parse(ua)
	if c == nil {
		return unknown
	}
	return c.Display
}

func display(c *Client) string {
	browser := c.Browser
	if browser == "" {
		browser = "Unknown Browser"
	}
	where := c.OS
	if where == "" {
		where = c.Platform
	}
	if where == "" {
		where = "Unknown OS"
	}
	return strings.TrimSpace(browser + " on " + where)
}

// Fingerprint hashes the browser family, its major version, the OS and the
// platform. Patch releases of the same browser share a fingerprint.
func Fingerprint(ua string) string {
	c := Parse(ua)
	if c == nil {
		return ""
	}
	major, _, _ := strings.Cut(c.BrowserVersion, ".")
	sum := sha256.Sum256([]byte(strings.Join([]string{c.Browser, major, c.OS, c.Platform}, "|")))
	return hex.EncodeToString(sum[:])
}
