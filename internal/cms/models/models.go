package models

import (
	"encoding/json"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Status is the publication state shared by pages, FAQs, posts and stories.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusPublished Status = "published"
	StatusArchived  Status = "archived"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusDraft, StatusPublished, StatusArchived:
		return true
	}
	return false
}

// CategoryType scopes a category to one kind of content.
type CategoryType string

const (
	CategoryPage CategoryType = "page"
	CategoryFAQ  CategoryType = "faq"
	CategoryHelp CategoryType = "help"
)

func (t CategoryType) IsValid() bool {
	switch t {
	case CategoryPage, CategoryFAQ, CategoryHelp:
		return true
	}
	return false
}

type Page struct {
	ID              uuid.UUID  `json:"id"`
	Title           string     `json:"title"`
	Slug            string     `json:"slug"`
	Content         string     `json:"content"`
	Excerpt         *string    `json:"excerpt"`
	CategoryID      *uuid.UUID `json:"category_id"`
	MetaTitle       *string    `json:"meta_title"`
	MetaDescription *string    `json:"meta_description"`
	MetaKeywords    *string    `json:"meta_keywords"`
	Status          Status     `json:"status"`
	IsFeatured      bool       `json:"is_featured"`
	PublishedAt     *time.Time `json:"published_at"`
	AuthorID        uuid.UUID  `json:"author_id"`
	Version         int        `json:"version"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// PageView is the public rendering of a published page, as returned by
// get_page_by_slug.
type PageView struct {
	ID              uuid.UUID  `json:"id"`
	Title           string     `json:"title"`
	Slug            string     `json:"slug"`
	Content         string     `json:"content"`
	Excerpt         *string    `json:"excerpt"`
	MetaTitle       *string    `json:"meta_title"`
	MetaDescription *string    `json:"meta_description"`
	CategoryName    *string    `json:"category_name"`
	AuthorName      *string    `json:"author_name"`
	PublishedAt     *time.Time `json:"published_at"`
	Views           int        `json:"views"`
}

type PageFilters struct {
	Status     Status
	CategoryID *uuid.UUID
}

type PageInput struct {
	Title           string     `json:"title" validate:"required,max=200"`
	Slug            string     `json:"slug" validate:"omitempty,max=200"`
	Content         string     `json:"content"`
	Excerpt         *string    `json:"excerpt"`
	CategoryID      *uuid.UUID `json:"category_id"`
	MetaTitle       *string    `json:"meta_title" validate:"omitempty,max=200"`
	MetaDescription *string    `json:"meta_description" validate:"omitempty,max=500"`
	MetaKeywords    *string    `json:"meta_keywords"`
	Status          Status     `json:"status" validate:"omitempty,oneof=draft published archived"`
	IsFeatured      bool       `json:"is_featured"`
}

// PagePatch edits a page. Nil fields are left untouched.
type PagePatch struct {
	Title           *string    `json:"title" validate:"omitempty,max=200"`
	Slug            *string    `json:"slug" validate:"omitempty,max=200"`
	Content         *string    `json:"content"`
	Excerpt         *string    `json:"excerpt"`
	CategoryID      *uuid.UUID `json:"category_id"`
	MetaTitle       *string    `json:"meta_title" validate:"omitempty,max=200"`
	MetaDescription *string    `json:"meta_description" validate:"omitempty,max=500"`
	MetaKeywords    *string    `json:"meta_keywords"`
	Status          *Status    `json:"status" validate:"omitempty,oneof=draft published archived"`
	IsFeatured      *bool      `json:"is_featured"`
}

type FAQ struct {
	ID              uuid.UUID  `json:"id"`
	Question        string     `json:"question"`
	Answer          string     `json:"answer"`
	CategoryID      *uuid.UUID `json:"category_id"`
	DisplayOrder    int        `json:"display_order"`
	IsFeatured      bool       `json:"is_featured"`
	Status          Status     `json:"status"`
	Views           int        `json:"views"`
	HelpfulCount    int        `json:"helpful_count"`
	NotHelpfulCount int        `json:"not_helpful_count"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

type FAQFilters struct {
	Status     Status
	CategoryID *uuid.UUID
}

type FAQInput struct {
	Question     string     `json:"question" validate:"required"`
	Answer       string     `json:"answer" validate:"required"`
	CategoryID   *uuid.UUID `json:"category_id"`
	DisplayOrder int        `json:"display_order" validate:"gte=0"`
	IsFeatured   bool       `json:"is_featured"`
	Status       Status     `json:"status" validate:"omitempty,oneof=draft published archived"`
}

type FAQPatch struct {
	Question     *string    `json:"question"`
	Answer       *string    `json:"answer"`
	CategoryID   *uuid.UUID `json:"category_id"`
	DisplayOrder *int       `json:"display_order" validate:"omitempty,gte=0"`
	IsFeatured   *bool      `json:"is_featured"`
	Status       *Status    `json:"status" validate:"omitempty,oneof=draft published archived"`
}

// FAQOrder moves one FAQ to a new display position.
type FAQOrder struct {
	ID           uuid.UUID `json:"id" validate:"required"`
	DisplayOrder int       `json:"display_order" validate:"gte=0"`
}

type Category struct {
	ID           uuid.UUID    `json:"id"`
	Name         string       `json:"name"`
	Slug         string       `json:"slug"`
	Description  *string      `json:"description"`
	Type         CategoryType `json:"type"`
	ParentID     *uuid.UUID   `json:"parent_id"`
	DisplayOrder int          `json:"display_order"`
	Icon         *string      `json:"icon"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

type CategoryInput struct {
	Name         string       `json:"name" validate:"required,max=100"`
	Slug         string       `json:"slug" validate:"omitempty,max=100"`
	Description  *string      `json:"description"`
	Type         CategoryType `json:"type" validate:"required,oneof=page faq help"`
	ParentID     *uuid.UUID   `json:"parent_id"`
	DisplayOrder int          `json:"display_order" validate:"gte=0"`
	Icon         *string      `json:"icon"`
}

type CategoryPatch struct {
	Name         *string    `json:"name" validate:"omitempty,max=100"`
	Slug         *string    `json:"slug" validate:"omitempty,max=100"`
	Description  *string    `json:"description"`
	ParentID     *uuid.UUID `json:"parent_id"`
	DisplayOrder *int       `json:"display_order" validate:"omitempty,gte=0"`
	Icon         *string    `json:"icon"`
}

type BlogPost struct {
	ID           uuid.UUID  `json:"id"`
	Title        string     `json:"title"`
	Slug         string     `json:"slug"`
	Excerpt      *string    `json:"excerpt"`
	Content      string     `json:"content,omitempty"`
	CoverImage   *string    `json:"cover_image"`
	CategoryID   *uuid.UUID `json:"category_id"`
	CategoryName *string    `json:"category_name,omitempty"`
	AuthorID     *uuid.UUID `json:"author_id,omitempty"`
	AuthorName   *string    `json:"author_name,omitempty"`
	Tags         []string   `json:"tags"`
	Status       Status     `json:"status"`
	Views        int        `json:"views"`
	Likes        int        `json:"likes"`
	PublishedAt  *time.Time `json:"published_at"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

type BlogQuery struct {
	Limit      int
	Offset     int
	CategoryID *uuid.UUID
}

type BlogPostInput struct {
	Title      string     `json:"title" validate:"required,max=200"`
	Slug       string     `json:"slug" validate:"omitempty,max=200"`
	Excerpt    *string    `json:"excerpt"`
	Content    string     `json:"content"`
	CoverImage *string    `json:"cover_image" validate:"omitempty,url"`
	CategoryID *uuid.UUID `json:"category_id"`
	Tags       []string   `json:"tags"`
	Status     Status     `json:"status" validate:"omitempty,oneof=draft published archived"`
}

type BlogPostPatch struct {
	Title      *string    `json:"title" validate:"omitempty,max=200"`
	Slug       *string    `json:"slug" validate:"omitempty,max=200"`
	Excerpt    *string    `json:"excerpt"`
	Content    *string    `json:"content"`
	CoverImage *string    `json:"cover_image" validate:"omitempty,url"`
	CategoryID *uuid.UUID `json:"category_id"`
	Tags       []string   `json:"tags"`
	Status     *Status    `json:"status" validate:"omitempty,oneof=draft published archived"`
}

type SuccessStory struct {
	ID          uuid.UUID       `json:"id"`
	Title       string          `json:"title"`
	CompanyName string          `json:"company_name"`
	Industry    *string         `json:"industry"`
	UseCase     *string         `json:"use_case"`
	Summary     *string         `json:"summary"`
	Content     string          `json:"content,omitempty"`
	LogoURL     *string         `json:"logo_url"`
	Metrics     json.RawMessage `json:"metrics,omitempty"`
	Status      Status          `json:"status"`
	IsFeatured  bool            `json:"is_featured"`
	PublishedAt *time.Time      `json:"published_at"`
	CreatedAt   time.Time       `json:"created_at"`
}

type StoryQuery struct {
	Limit    int
	Industry string
	UseCase  string
}

type SuccessStoryInput struct {
	Title       string          `json:"title" validate:"required,max=200"`
	CompanyName string          `json:"company_name" validate:"required,max=200"`
	Industry    *string         `json:"industry"`
	UseCase     *string         `json:"use_case"`
	Summary     *string         `json:"summary"`
	Content     string          `json:"content"`
	LogoURL     *string         `json:"logo_url" validate:"omitempty,url"`
	Metrics     json.RawMessage `json:"metrics"`
	Status      Status          `json:"status" validate:"omitempty,oneof=draft published archived"`
	IsFeatured  bool            `json:"is_featured"`
}

// SearchResult is one hit from search_cms_content.
type SearchResult struct {
	ID          uuid.UUID `json:"id"`
	ContentType string    `json:"content_type"`
	Title       string    `json:"title"`
	Slug        *string   `json:"slug"`
	Excerpt     *string   `json:"excerpt"`
	Rank        float64   `json:"rank"`
}

var (
	nonSlug   = regexp.MustCompile(`[^a-z0-9]+`)
	validSlug = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
)

// Slugify lowercases s and collapses every run of other characters to a
// single hyphen.
func Slugify(s string) string {
	return strings.Trim(nonSlug.ReplaceAllString(strings.ToLower(s), "-"), "-")
}

func ValidSlug(s string) bool {
	return validSlug.MatchString(s)
}
