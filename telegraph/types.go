package telegraph

import (
	"encoding/json"
	"fmt"

	"github.com/s0up4200/telegraph/content"
)

// AccountField names a field that getAccountInfo can return
type AccountField string

const (
	FieldShortName  AccountField = "short_name"
	FieldAuthorName AccountField = "author_name"
	FieldAuthorURL  AccountField = "author_url"
	FieldAuthURL    AccountField = "auth_url"
	FieldPageCount  AccountField = "page_count"
)

// DefaultAccountFields is requested by getAccountInfo unless Fields is called
var DefaultAccountFields = []AccountField{FieldShortName, FieldAuthorName, FieldAuthorURL}

// Valid reports whether f is a known account field
func (f AccountField) Valid() bool {
	switch f {
	case FieldShortName, FieldAuthorName, FieldAuthorURL, FieldAuthURL, FieldPageCount:
		return true
	}
	return false
}

// EncodeFields returns the JSON list sent in the "fields" form value
func EncodeFields(fields []AccountField) (string, error) {
	for _, f := range fields {
		if !f.Valid() {
			return "", fmt.Errorf("unknown account field %q", f)
		}
	}
	if fields == nil {
		fields = []AccountField{}
	}
	b, err := json.Marshal(fields)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Account is a Telegraph account
type Account struct {
	ShortName  string `json:"short_name,omitempty"`
	AuthorName string `json:"author_name,omitempty"`
	AuthorURL  string `json:"author_url,omitempty"`
	// AccessToken is only returned by createAccount and revokeAccessToken
	AccessToken string `json:"access_token,omitempty"`
	// AuthURL is a one-time login link, returned by revokeAccessToken and on request
	AuthURL   string `json:"auth_url,omitempty"`
	PageCount *int   `json:"page_count,omitempty"`
}

// Page is a Telegraph article
type Page struct {
	Path        string         `json:"path"`
	URL         string         `json:"url"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	AuthorName  string         `json:"author_name,omitempty"`
	AuthorURL   string         `json:"author_url,omitempty"`
	ImageURL    string         `json:"image_url,omitempty"`
	Content     []content.Node `json:"content,omitempty"`
	Views       uint           `json:"views"`
	CanEdit     bool           `json:"can_edit,omitempty"`
}

// PageList is one slice of an account's pages, most recently created first
type PageList struct {
	TotalCount int    `json:"total_count"`
	Pages      []Page `json:"pages"`
}

// PageViews is the number of times a page was viewed
type PageViews struct {
	Views uint `json:"views"`
}

// Media is a file stored by the upload endpoint
type Media struct {
	// Src is the path of the uploaded file, relative to https://telegra.ph
	Src string `json:"src"`
}
