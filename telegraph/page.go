package telegraph

import (
	"net/url"

	"github.com/google/go-querystring/query"

	"github.com/s0up4200/telegraph/content"
)

// DefaultPageListLimit is the getPageList limit used unless Limit is called
const DefaultPageListLimit = 50

type pageForm struct {
	AccessToken   string `url:"access_token"`
	Title         string `url:"title"`
	Content       string `url:"content"`
	AuthorName    string `url:"author_name,omitempty"`
	AuthorURL     string `url:"author_url,omitempty"`
	ReturnContent bool   `url:"return_content,omitempty"`
}

// pageFields is shared by CreatePage and EditPage
type pageFields struct {
	form  pageForm
	nodes []content.Node
}

func (f pageFields) values(path string) (url.Values, error) {
	form := f.form
	encoded, err := content.Encode(f.nodes)
	if err != nil {
		return nil, err
	}
	form.Content = encoded

	v, err := query.Values(form)
	if err != nil {
		return nil, err
	}
	if path != "" {
		v.Set("path", path)
	}
	return v, nil
}

// CreatePage builds a createPage request.
// T tracks access_token, Ti title and C content.
type CreatePage[T, Ti, C any] struct {
	endpoint
	pageFields
}

// AccessToken sets the token of the account that owns the page
func (r CreatePage[T, Ti, C]) AccessToken(token string) CreatePage[Filled, Ti, C] {
	r.form.AccessToken = token
	return CreatePage[Filled, Ti, C]{endpoint: r.endpoint, pageFields: r.pageFields}
}

// Title sets the page title (1-256 characters)
func (r CreatePage[T, Ti, C]) Title(title string) CreatePage[T, Filled, C] {
	r.form.Title = title
	return CreatePage[T, Filled, C]{endpoint: r.endpoint, pageFields: r.pageFields}
}

// Content sets the page body (up to 64 KB once encoded)
func (r CreatePage[T, Ti, C]) Content(nodes []content.Node) CreatePage[T, Ti, Filled] {
	r.nodes = nodes
	return CreatePage[T, Ti, Filled]{endpoint: r.endpoint, pageFields: r.pageFields}
}

// AuthorName sets the author name shown below the title
func (r CreatePage[T, Ti, C]) AuthorName(name string) CreatePage[T, Ti, C] {
	r.form.AuthorName = name
	return r
}

// AuthorURL sets the link opened when the author name is clicked
func (r CreatePage[T, Ti, C]) AuthorURL(u string) CreatePage[T, Ti, C] {
	r.form.AuthorURL = u
	return r
}

// ReturnContent asks for the content field in the returned page
func (r CreatePage[T, Ti, C]) ReturnContent(ret bool) CreatePage[T, Ti, C] {
	r.form.ReturnContent = ret
	return r
}

// Values returns the form body; content is sent as a JSON string
func (r CreatePage[T, Ti, C]) Values() (url.Values, error) {
	return r.values("")
}

func (r CreatePage[T, Ti, C]) required() (T, Ti, C, Filled) {
	var (
		t  T
		ti Ti
		c  C
	)
	return t, ti, c, Filled{}
}

func (r CreatePage[T, Ti, C]) decode(body []byte) (*Page, error) {
	return Decode[Page](r.method, body)
}

// EditPage builds an editPage request.
// T tracks access_token, P path, Ti title and C content.
type EditPage[T, P, Ti, C any] struct {
	endpoint
	pageFields
	path string
}

// AccessToken sets the token of the account that owns the page
func (r EditPage[T, P, Ti, C]) AccessToken(token string) EditPage[Filled, P, Ti, C] {
	r.form.AccessToken = token
	return EditPage[Filled, P, Ti, C]{endpoint: r.endpoint, pageFields: r.pageFields, path: r.path}
}

// Path sets the path of the page to edit
func (r EditPage[T, P, Ti, C]) Path(path string) EditPage[T, Filled, Ti, C] {
	return EditPage[T, Filled, Ti, C]{endpoint: r.endpoint, pageFields: r.pageFields, path: path}
}

// Title sets the page title (1-256 characters)
func (r EditPage[T, P, Ti, C]) Title(title string) EditPage[T, P, Filled, C] {
	r.form.Title = title
	return EditPage[T, P, Filled, C]{endpoint: r.endpoint, pageFields: r.pageFields, path: r.path}
}

// Content sets the new page body
func (r EditPage[T, P, Ti, C]) Content(nodes []content.Node) EditPage[T, P, Ti, Filled] {
	r.nodes = nodes
	return EditPage[T, P, Ti, Filled]{endpoint: r.endpoint, pageFields: r.pageFields, path: r.path}
}

// AuthorName sets the author name shown below the title
func (r EditPage[T, P, Ti, C]) AuthorName(name string) EditPage[T, P, Ti, C] {
	r.form.AuthorName = name
	return r
}

// AuthorURL sets the link opened when the author name is clicked
func (r EditPage[T, P, Ti, C]) AuthorURL(u string) EditPage[T, P, Ti, C] {
	r.form.AuthorURL = u
	return r
}

// ReturnContent asks for the content field in the returned page
func (r EditPage[T, P, Ti, C]) ReturnContent(ret bool) EditPage[T, P, Ti, C] {
	r.form.ReturnContent = ret
	return r
}

// Values returns the form body; content is sent as a JSON string
func (r EditPage[T, P, Ti, C]) Values() (url.Values, error) {
	return r.values(r.path)
}

func (r EditPage[T, P, Ti, C]) required() (T, P, Ti, C) {
	var (
		t  T
		p  P
		ti Ti
		c  C
	)
	return t, p, ti, c
}

func (r EditPage[T, P, Ti, C]) decode(body []byte) (*Page, error) {
	return Decode[Page](r.method, body)
}

// GetPage builds a getPage request.
// P tracks path.
type GetPage[P any] struct {
	endpoint
	form getPageForm
}

type getPageForm struct {
	Path          string `url:"path"`
	ReturnContent bool   `url:"return_content,omitempty"`
}

// Path sets the page path, e.g. "Sample-Page-12-15"
func (r GetPage[P]) Path(path string) GetPage[Filled] {
	r.form.Path = path
	return GetPage[Filled]{endpoint: r.endpoint, form: r.form}
}

// ReturnContent asks for the content field
func (r GetPage[P]) ReturnContent(ret bool) GetPage[P] {
	r.form.ReturnContent = ret
	return r
}

// Values returns the form body
func (r GetPage[P]) Values() (url.Values, error) {
	return query.Values(r.form)
}

func (r GetPage[P]) required() (P, Filled, Filled, Filled) {
	var p P
	return p, Filled{}, Filled{}, Filled{}
}

func (r GetPage[P]) decode(body []byte) (*Page, error) {
	return Decode[Page](r.method, body)
}

// GetPageList builds a getPageList request.
// T tracks access_token.
type GetPageList[T any] struct {
	endpoint
	form getPageListForm
}

type getPageListForm struct {
	AccessToken string `url:"access_token"`
	Offset      int    `url:"offset"`
	Limit       int    `url:"limit"`
}

// AccessToken sets the token of the account whose pages are listed
func (r GetPageList[T]) AccessToken(token string) GetPageList[Filled] {
	r.form.AccessToken = token
	return GetPageList[Filled]{endpoint: r.endpoint, form: r.form}
}

// Offset sets the sequential number of the first page to return
func (r GetPageList[T]) Offset(offset int) GetPageList[T] {
	r.form.Offset = offset
	return r
}

// Limit sets the number of pages to return (0-200)
func (r GetPageList[T]) Limit(limit int) GetPageList[T] {
	r.form.Limit = limit
	return r
}

// Values returns the form body
func (r GetPageList[T]) Values() (url.Values, error) {
	return query.Values(r.form)
}

func (r GetPageList[T]) required() (T, Filled, Filled, Filled) {
	var t T
	return t, Filled{}, Filled{}, Filled{}
}

func (r GetPageList[T]) decode(body []byte) (*PageList, error) {
	return Decode[PageList](r.method, body)
}

// GetViews builds a getViews request. Without a date the total is returned;
// Hour needs Day, Day needs Month and Month needs Year.
// P tracks path.
type GetViews[P any] struct {
	endpoint
	form getViewsForm
}

type getViewsForm struct {
	Path  string `url:"path"`
	Year  *int   `url:"year,omitempty"`
	Month *int   `url:"month,omitempty"`
	Day   *int   `url:"day,omitempty"`
	Hour  *int   `url:"hour,omitempty"`
}

// Path sets the page path
func (r GetViews[P]) Path(path string) GetViews[Filled] {
	r.form.Path = path
	return GetViews[Filled]{endpoint: r.endpoint, form: r.form}
}

// Year restricts the count to a year (2000-2100)
func (r GetViews[P]) Year(year int) GetViews[P] {
	r.form.Year = &year
	return r
}

// Month restricts the count to a month (1-12)
func (r GetViews[P]) Month(month int) GetViews[P] {
	r.form.Month = &month
	return r
}

// Day restricts the count to a day (1-31)
func (r GetViews[P]) Day(day int) GetViews[P] {
	r.form.Day = &day
	return r
}

// Hour restricts the count to an hour (0-24)
func (r GetViews[P]) Hour(hour int) GetViews[P] {
	r.form.Hour = &hour
	return r
}

// Values returns the form body
func (r GetViews[P]) Values() (url.Values, error) {
	return query.Values(r.form)
}

func (r GetViews[P]) required() (P, Filled, Filled, Filled) {
	var p P
	return p, Filled{}, Filled{}, Filled{}
}

func (r GetViews[P]) decode(body []byte) (*PageViews, error) {
	return Decode[PageViews](r.method, body)
}
