package telegraph

import (
	"net/url"
	"slices"

	"github.com/google/go-querystring/query"
)

// CreateAccount builds a createAccount request.
// S tracks short_name.
type CreateAccount[S any] struct {
	endpoint
	form accountForm
}

type accountForm struct {
	AccessToken string `url:"access_token,omitempty"`
	ShortName   string `url:"short_name,omitempty"`
	AuthorName  string `url:"author_name,omitempty"`
	AuthorURL   string `url:"author_url,omitempty"`
}

// ShortName sets the account name shown to the user above the "Edit/Publish" button (1-32 characters)
func (r CreateAccount[S]) ShortName(name string) CreateAccount[Filled] {
	r.form.ShortName = name
	return CreateAccount[Filled]{endpoint: r.endpoint, form: r.form}
}

// AuthorName sets the default author name for new pages (0-128 characters)
func (r CreateAccount[S]) AuthorName(name string) CreateAccount[S] {
	r.form.AuthorName = name
	return r
}

// AuthorURL sets the default profile link for new pages (0-512 characters)
func (r CreateAccount[S]) AuthorURL(u string) CreateAccount[S] {
	r.form.AuthorURL = u
	return r
}

// Values returns the form body
func (r CreateAccount[S]) Values() (url.Values, error) {
	return query.Values(r.form)
}

func (r CreateAccount[S]) required() (S, Filled, Filled, Filled) {
	var s S
	return s, Filled{}, Filled{}, Filled{}
}

func (r CreateAccount[S]) decode(body []byte) (*Account, error) {
	return Decode[Account](r.method, body)
}

// EditAccountInfo builds an editAccountInfo request. Only the fields that are
// set are changed.
// T tracks access_token.
type EditAccountInfo[T any] struct {
	endpoint
	form accountForm
}

// AccessToken sets the token of the account to edit
func (r EditAccountInfo[T]) AccessToken(token string) EditAccountInfo[Filled] {
	r.form.AccessToken = token
	return EditAccountInfo[Filled]{endpoint: r.endpoint, form: r.form}
}

// ShortName sets a new short name
func (r EditAccountInfo[T]) ShortName(name string) EditAccountInfo[T] {
	r.form.ShortName = name
	return r
}

// AuthorName sets a new default author name
func (r EditAccountInfo[T]) AuthorName(name string) EditAccountInfo[T] {
	r.form.AuthorName = name
	return r
}

// AuthorURL sets a new default profile link
func (r EditAccountInfo[T]) AuthorURL(u string) EditAccountInfo[T] {
	r.form.AuthorURL = u
	return r
}

// Values returns the form body
func (r EditAccountInfo[T]) Values() (url.Values, error) {
	return query.Values(r.form)
}

func (r EditAccountInfo[T]) required() (T, Filled, Filled, Filled) {
	var t T
	return t, Filled{}, Filled{}, Filled{}
}

func (r EditAccountInfo[T]) decode(body []byte) (*Account, error) {
	return Decode[Account](r.method, body)
}

// GetAccountInfo builds a getAccountInfo request.
// T tracks access_token.
type GetAccountInfo[T any] struct {
	endpoint
	accessToken string
	fields      []AccountField
}

type getAccountInfoForm struct {
	AccessToken string `url:"access_token"`
	Fields      string `url:"fields,omitempty"`
}

// AccessToken sets the token of the account to read
func (r GetAccountInfo[T]) AccessToken(token string) GetAccountInfo[Filled] {
	return GetAccountInfo[Filled]{endpoint: r.endpoint, accessToken: token, fields: r.fields}
}

// Fields replaces the list of fields to return
func (r GetAccountInfo[T]) Fields(fields ...AccountField) GetAccountInfo[T] {
	r.fields = slices.Clone(fields)
	return r
}

// Values returns the form body; fields are sent as a JSON list
func (r GetAccountInfo[T]) Values() (url.Values, error) {
	fields, err := EncodeFields(r.fields)
	if err != nil {
		return nil, err
	}
	return query.Values(getAccountInfoForm{AccessToken: r.accessToken, Fields: fields})
}

func (r GetAccountInfo[T]) required() (T, Filled, Filled, Filled) {
	var t T
	return t, Filled{}, Filled{}, Filled{}
}

func (r GetAccountInfo[T]) decode(body []byte) (*Account, error) {
	return Decode[Account](r.method, body)
}

// RevokeAccessToken builds a revokeAccessToken request. The result carries the
// new access_token and an auth_url.
// T tracks access_token.
type RevokeAccessToken[T any] struct {
	endpoint
	form accountForm
}

// AccessToken sets the token to revoke
func (r RevokeAccessToken[T]) AccessToken(token string) RevokeAccessToken[Filled] {
	r.form.AccessToken = token
	return RevokeAccessToken[Filled]{endpoint: r.endpoint, form: r.form}
}

// Values returns the form body
func (r RevokeAccessToken[T]) Values() (url.Values, error) {
	return query.Values(r.form)
}

func (r RevokeAccessToken[T]) required() (T, Filled, Filled, Filled) {
	var t T
	return t, Filled{}, Filled{}, Filled{}
}

func (r RevokeAccessToken[T]) decode(body []byte) (*Account, error) {
	return Decode[Account](r.method, body)
}
