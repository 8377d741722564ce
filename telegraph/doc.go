// Package telegraph provides a client for the Telegraph publishing API.
//
// Telegraph exposes nine methods for managing accounts and pages. Each method
// has a request builder that is created by the Client and filled in with
// chained setters, in any order.
//
// # Usage
//
//	client := telegraph.NewClient(
//		telegraph.WithTimeout(30*time.Second),
//		telegraph.WithLogger(logger),
//	)
//
//	account, err := telegraph.Send(ctx, client.CreateAccount().
//		ShortName("sandbox").
//		AuthorName("Anonymous"))
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	page, err := telegraph.Send(ctx, client.CreatePage().
//		Title("Hello").
//		AccessToken(account.AccessToken).
//		Content([]content.Node{content.Elem(content.TagP, content.Text("Hi"))}))
//
// # Required fields
//
// Every builder has one type parameter per required field, either Missing or
// Filled. Setting a required field returns the builder with that parameter
// switched to Filled. Send only accepts builders whose parameters are all
// Filled, so forgetting a required field is a compile error rather than an
// API error.
//
// Defaults are applied when the builder is created: getAccountInfo asks for
// short_name, author_name and author_url, and getPageList uses offset 0 and
// limit 50.
//
// # Error Handling
//
// Every failure is an *Error whose Kind tells where it came from:
//
//   - KindAPI: the server answered {"ok": false, "error": ...}
//   - KindTransport: the request could not be sent or the response read
//   - KindDecode: the response was not a valid envelope, or the request could
//     not be encoded
//   - KindIO: a local file could not be read for upload
//
// errors.Is matches the ErrAPI, ErrTransport, ErrDecode and ErrIO sentinels:
//
//	if msg, ok := telegraph.APIMessage(err); ok && msg == "PAGE_NOT_FOUND" {
//		// Handle missing page
//	}
package telegraph
