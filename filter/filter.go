// Package filter selects pages with expr-lang expressions.
//
// An expression sees the fields of one page and must evaluate to a boolean:
//
//	Views > 100 and hasPrefix(Title, "release")
//	AuthorName == "" or not CanEdit
//
// Available fields are Path, URL, Title, Description, AuthorName, AuthorURL,
// ImageURL, Views and CanEdit. The helpers icontains, hasPrefix and hasSuffix
// compare case-insensitively; lower and upper convert case. The built-in
// contains, startsWith and endsWith operators are case-sensitive:
//
//	Path startsWith "Draft" or Title contains "notes"
package filter

import (
	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/s0up4200/telegraph/telegraph"
)

var defaultCompiler = NewCompiler()

// Compile compiles an expression with the package-level compiler
func Compile(expression string) (*Filter, error) {
	return defaultCompiler.Compile(expression)
}

// Filter is a compiled expression. It is safe for concurrent use.
type Filter struct {
	expression string
	program    *vm.Program
	compiler   *Compiler
}

// Expression returns the source of the filter
func (f *Filter) Expression() string {
	return f.expression
}

// Match reports whether page satisfies the filter
func (f *Filter) Match(page telegraph.Page) (bool, error) {
	env := f.compiler.acquire(newPageEnv(page))
	defer f.compiler.release(env)

	result, err := expr.Run(f.program, env)
	if err != nil {
		return false, &EvaluationError{
			Expression: f.expression,
			PagePath:   page.Path,
			Reason:     err.Error(),
			Err:        err,
		}
	}
	return result.(bool), nil
}

// Apply returns the pages matching the filter, preserving order
func (f *Filter) Apply(pages []telegraph.Page) ([]telegraph.Page, error) {
	var matched []telegraph.Page
	for _, p := range pages {
		ok, err := f.Match(p)
		if err != nil {
			return nil, err
		}
		if ok {
			matched = append(matched, p)
		}
	}
	return matched, nil
}
