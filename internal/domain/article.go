package domain

import (
	"strings"
	"time"
)

// ArticleStatus is the publication state of an article.
type ArticleStatus string

const (
	StatusDraft     ArticleStatus = "draft"
	StatusPublished ArticleStatus = "published"
	StatusArchived  ArticleStatus = "archived"
)

// ValidStatuses contains all valid article statuses.
var ValidStatuses = []ArticleStatus{StatusDraft, StatusPublished, StatusArchived}

// IsValid reports whether s is one of ValidStatuses.
func (s ArticleStatus) IsValid() bool {
	for _, v := range ValidStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// Categories is the closed set of article categories.
var Categories = []string{
	"Technology",
	"Programming",
	"Web Development",
	"Mobile Development",
	"DevOps",
	"Design",
	"AI & Machine Learning",
	"Blockchain",
	"Cybersecurity",
	"Other",
}

// IsValidCategory checks if a category belongs to Categories.
func IsValidCategory(category string) bool {
	for _, c := range Categories {
		if c == category {
			return true
		}
	}
	return false
}

// Article represents an article entity in the system.
type Article struct {
	ID        string        `json:"id"`
	AuthorID  string        `json:"author_id"`
	Title     string        `json:"title"`
	Excerpt   *string       `json:"excerpt"`
	Content   string        `json:"content"`
	Category  *string       `json:"category"`
	Status    ArticleStatus `json:"status"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// ArticleFields holds the caller-supplied fields of a new article.
// An empty Status means draft.
type ArticleFields struct {
	Title    string        `json:"title"`
	Excerpt  *string       `json:"excerpt"`
	Content  string        `json:"content"`
	Category *string       `json:"category"`
	Status   ArticleStatus `json:"status"`
}

// ArticlePatch holds the fields of an update. Nil fields are left unchanged;
// an empty Excerpt or Category clears the stored value.
type ArticlePatch struct {
	Title    *string        `json:"title"`
	Excerpt  *string        `json:"excerpt"`
	Content  *string        `json:"content"`
	Category *string        `json:"category"`
	Status   *ArticleStatus `json:"status"`
}

// Apply returns a copy of a with the patch merged over it.
// UpdatedAt is not touched.
func (p ArticlePatch) Apply(a Article) Article {
	if p.Title != nil {
		a.Title = *p.Title
	}
	if p.Excerpt != nil {
		a.Excerpt = NullableString(*p.Excerpt)
	}
	if p.Content != nil {
		a.Content = *p.Content
	}
	if p.Category != nil {
		a.Category = NullableString(*p.Category)
	}
	if p.Status != nil {
		a.Status = *p.Status
	}
	return a
}

// ArticleFilter narrows an author's article list. Query is matched
// case-insensitively as a substring of the title or the category.
type ArticleFilter struct {
	Query  string
	Status ArticleStatus
}

// Matches reports whether a passes the filter.
func (f ArticleFilter) Matches(a Article) bool {
	if f.Status != "" && a.Status != f.Status {
		return false
	}
	q := strings.ToLower(strings.TrimSpace(f.Query))
	if q == "" {
		return true
	}
	if strings.Contains(strings.ToLower(a.Title), q) {
		return true
	}
	return a.Category != nil && strings.Contains(strings.ToLower(*a.Category), q)
}

// ArticleOrder selects the sort column of a store select. Rows are always
// returned newest first except for OrderCreatedAsc.
type ArticleOrder string

const (
	OrderCreatedDesc ArticleOrder = "created_desc"
	OrderCreatedAsc  ArticleOrder = "created_asc"
	OrderUpdatedDesc ArticleOrder = "updated_desc"
)

// ArticleQuery is an equality-filtered select against the articles table.
// Zero-valued fields are not filtered on; a zero Limit means no limit.
type ArticleQuery struct {
	ID       string
	AuthorID string
	Status   ArticleStatus
	Order    ArticleOrder
	Limit    uint64
	Offset   uint64
}

// NullableString trims s and returns nil when nothing is left.
func NullableString(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
