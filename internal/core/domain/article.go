package domain

import "strings"

// Text field names an article exposes to the macros.
const (
	FieldHeadline = "headline"
	FieldSlugline = "slugline"
	FieldAbstract = "abstract"
	FieldBodyHTML = "body_html"
	FieldBodyText = "body_text"
	FieldByline   = "byline"
)

// ContentTypeText is the item type of plain text stories.
const ContentTypeText = "text"

// Subject is a single subject code entry (IPTC style qcode).
type Subject struct {
	QCode string `json:"qcode"`
	Name  string `json:"name,omitempty"`
}

// Place is a geographic place entry attached to an article.
type Place struct {
	Name        string `json:"name,omitempty"`
	State       string `json:"state,omitempty"`
	WorldRegion string `json:"world_region,omitempty"`
	Group       string `json:"group,omitempty"`
	QCode       string `json:"qcode,omitempty"`
	Country     string `json:"country,omitempty"`
}

// Category is an ANPA category entry.
type Category struct {
	QCode string `json:"qcode"`
	Name  string `json:"name,omitempty"`
}

// Article is a news-wire story as handed over by the article store.
// The macros only read metadata and rewrite text fields; they never persist.
type Article struct {
	ID           string     `json:"_id,omitempty"`
	Type         string     `json:"type,omitempty"`
	Source       string     `json:"source,omitempty"`
	Headline     string     `json:"headline,omitempty"`
	Slugline     string     `json:"slugline,omitempty"`
	Abstract     string     `json:"abstract,omitempty"`
	BodyHTML     string     `json:"body_html,omitempty"`
	BodyText     string     `json:"body_text,omitempty"`
	Byline       string     `json:"byline,omitempty"`
	Subject      []Subject  `json:"subject,omitempty"`
	Place        []Place    `json:"place,omitempty"`
	AnpaCategory []Category `json:"anpa_category,omitempty"`
	AutoPublish  bool       `json:"auto_publish,omitempty"`
}

// Field returns the named text field and whether the name is known.
func (a *Article) Field(name string) (string, bool) {
	p := a.fieldPtr(name)
	if p == nil {
		return "", false
	}
	return *p, true
}

// SetField overwrites the named text field. Unknown names are ignored and reported as false.
func (a *Article) SetField(name, value string) bool {
	p := a.fieldPtr(name)
	if p == nil {
		return false
	}
	*p = value
	return true
}

func (a *Article) fieldPtr(name string) *string {
	switch strings.ToLower(name) {
	case FieldHeadline:
		return &a.Headline
	case FieldSlugline:
		return &a.Slugline
	case FieldAbstract:
		return &a.Abstract
	case FieldBodyHTML:
		return &a.BodyHTML
	case FieldBodyText:
		return &a.BodyText
	case FieldByline:
		return &a.Byline
	}
	return nil
}

// Clone returns a deep copy of the article.
func (a *Article) Clone() *Article {
	if a == nil {
		return nil
	}
	c := *a
	c.Subject = append([]Subject(nil), a.Subject...)
	c.Place = append([]Place(nil), a.Place...)
	c.AnpaCategory = append([]Category(nil), a.AnpaCategory...)
	return &c
}

// PrimaryCategory returns the qcode of the first ANPA category, if any.
func (a *Article) PrimaryCategory() string {
	if len(a.AnpaCategory) == 0 {
		return ""
	}
	return a.AnpaCategory[0].QCode
}

// IsKnownField reports whether name is one of the article's text fields.
func IsKnownField(name string) bool {
	var a Article
	return a.fieldPtr(name) != nil
}
