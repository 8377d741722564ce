package filter

import "github.com/s0up4200/telegraph/telegraph"

// pageFields lists the variables an expression can reference
var pageFields = []string{
	"Path", "URL", "Title", "Description", "AuthorName", "AuthorURL", "ImageURL", "Views", "CanEdit",
}

// pageEnv is the flattened view of a page exposed to expressions
type pageEnv struct {
	Path        string
	URL         string
	Title       string
	Description string
	AuthorName  string
	AuthorURL   string
	ImageURL    string
	Views       int
	CanEdit     bool
}

func newPageEnv(p telegraph.Page) pageEnv {
	return pageEnv{
		Path:        p.Path,
		URL:         p.URL,
		Title:       p.Title,
		Description: p.Description,
		AuthorName:  p.AuthorName,
		AuthorURL:   p.AuthorURL,
		ImageURL:    p.ImageURL,
		Views:       int(p.Views),
		CanEdit:     p.CanEdit,
	}
}

func (p pageEnv) put(env map[string]any) {
	env["Path"] = p.Path
	env["URL"] = p.URL
	env["Title"] = p.Title
	env["Description"] = p.Description
	env["AuthorName"] = p.AuthorName
	env["AuthorURL"] = p.AuthorURL
	env["ImageURL"] = p.ImageURL
	env["Views"] = p.Views
	env["CanEdit"] = p.CanEdit
}
