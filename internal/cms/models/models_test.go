package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"About Us":                 "about-us",
		"  Privacy -- Policy!  ":   "privacy-policy",
		"Getting started with PIN": "getting-started-with-pin",
		"2025 Roadmap":             "2025-roadmap",
		"***":                      "",
	}
	for in, want := range cases {
		assert.Equal(t, want, Slugify(in), in)
	}
}

func TestValidSlug(t *testing.T) {
	assert.True(t, ValidSlug("about-us"))
	assert.True(t, ValidSlug("faq2"))
	assert.False(t, ValidSlug(""))
	assert.False(t, ValidSlug("About"))
	assert.False(t, ValidSlug("double--dash"))
	assert.False(t, ValidSlug("-leading"))
}

func TestStatusIsValid(t *testing.T) {
	assert.True(t, StatusArchived.IsValid())
	assert.False(t, Status("live").IsValid())
	assert.True(t, CategoryHelp.IsValid())
	assert.False(t, CategoryType("blog").IsValid())
}
