package filter

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s0up4200/telegraph/telegraph"
)

func testPages() []telegraph.Page {
	return []telegraph.Page{
		{Path: "Release-Notes-01-10", Title: "Release Notes", Views: 250, CanEdit: true, AuthorName: "Ops"},
		{Path: "Draft-02-11", Title: "Draft", Views: 3, CanEdit: true},
		{Path: "Guest-Post-03-12", Title: "Guest Post", Views: 120, AuthorName: "Guest", ImageURL: "https://telegra.ph/file/x.jpg"},
	}
}

func TestCompile(t *testing.T) {
	tests := []struct {
		name        string
		expression  string
		wantErr     bool
		errContains string
	}{
		{name: "field comparison", expression: `Views > 100`},
		{name: "helpers", expression: `hasPrefix(Title, "release") and icontains(Path, "NOTES")`},
		{name: "empty expression", expression: "   ", wantErr: true, errContains: "empty expression"},
		{name: "invalid syntax", expression: `Title == "unclosed`, wantErr: true},
		{name: "unknown field", expression: `Likes > 1`, wantErr: true},
		{name: "operator called as function", expression: `startsWith(Title, "x")`, wantErr: true},
		{name: "not boolean", expression: `Views + 1`, wantErr: true},
		{name: "type mismatch", expression: `lower(Views) == "x"`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := NewCompiler().Compile(tt.expression)
			if tt.wantErr {
				require.Error(t, err)
				var ce *CompilationError
				assert.True(t, errors.As(err, &ce))
				if tt.errContains != "" {
					assert.Contains(t, err.Error(), tt.errContains)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expression, f.Expression())
		})
	}
}

func TestMatch(t *testing.T) {
	tests := []struct {
		name       string
		expression string
		expected   []string
	}{
		{name: "popular", expression: `Views >= 120`, expected: []string{"Release-Notes-01-10", "Guest-Post-03-12"}},
		{name: "case insensitive prefix", expression: `hasPrefix(Title, "RELEASE")`, expected: []string{"Release-Notes-01-10"}},
		{name: "missing author", expression: `AuthorName == ""`, expected: []string{"Draft-02-11"}},
		{name: "not editable", expression: `not CanEdit`, expected: []string{"Guest-Post-03-12"}},
		{name: "image and views", expression: `ImageURL != "" and Views > 100`, expected: []string{"Guest-Post-03-12"}},
		{name: "suffix", expression: `hasSuffix(Path, "-11") or upper(AuthorName) == "OPS"`, expected: []string{"Release-Notes-01-10", "Draft-02-11"}},
		{name: "case insensitive contains", expression: `icontains(Title, "NOTES")`, expected: []string{"Release-Notes-01-10"}},
		{name: "builtin operator is case sensitive", expression: `Title contains "notes"`, expected: nil},
		{name: "builtin prefix operator", expression: `Path startsWith "Draft"`, expected: []string{"Draft-02-11"}},
		{name: "none", expression: `Views > 1000`, expected: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Compile(tt.expression)
			require.NoError(t, err)

			matched, err := f.Apply(testPages())
			require.NoError(t, err)

			var paths []string
			for _, p := range matched {
				paths = append(paths, p.Path)
			}
			assert.Equal(t, tt.expected, paths)
		})
	}
}

func TestEvaluationError(t *testing.T) {
	f, err := Compile(`split(Path, "-")[10] == "x"`)
	require.NoError(t, err)

	_, err = f.Apply(testPages())
	require.Error(t, err)

	var ee *EvaluationError
	require.True(t, errors.As(err, &ee))
	assert.Equal(t, "Release-Notes-01-10", ee.PagePath)
}

func TestCompilerCache(t *testing.T) {
	c := NewCompiler(WithCache(2))

	a, err := c.Compile(`Views > 1`)
	require.NoError(t, err)
	again, err := c.Compile(`  Views > 1 `)
	require.NoError(t, err)
	assert.Same(t, a, again)
	assert.Equal(t, 1, c.Size())

	_, err = c.Compile(`Views > 2`)
	require.NoError(t, err)
	_, err = c.Compile(`Views > 3`)
	require.NoError(t, err)
	assert.Equal(t, 2, c.Size())

	evicted, err := c.Compile(`Views > 1`)
	require.NoError(t, err)
	assert.NotSame(t, a, evicted)

	c.Clear()
	assert.Equal(t, 0, c.Size())
}

func TestCompilerWithoutCache(t *testing.T) {
	c := NewCompiler(WithCache(0))

	a, err := c.Compile(`CanEdit`)
	require.NoError(t, err)
	b, err := c.Compile(`CanEdit`)
	require.NoError(t, err)
	assert.NotSame(t, a, b)
	assert.Equal(t, 0, c.Size())
}

func TestCustomFunctions(t *testing.T) {
	c := NewCompiler(WithCustomFunctions(map[string]any{
		"isDraft": func(title string) bool { return title == "Draft" },
	}))

	f, err := c.Compile(`isDraft(Title)`)
	require.NoError(t, err)

	matched, err := f.Apply(testPages())
	require.NoError(t, err)
	require.Len(t, matched, 1)
	assert.Equal(t, "Draft-02-11", matched[0].Path)
}

func TestConcurrentMatch(t *testing.T) {
	f, err := Compile(`Views > 100 and CanEdit`)
	require.NoError(t, err)

	pages := testPages()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, p := range pages {
				ok, err := f.Match(p)
				assert.NoError(t, err)
				assert.Equal(t, p.Path == "Release-Notes-01-10", ok)
			}
		}()
	}
	wg.Wait()
}

func BenchmarkMatch(b *testing.B) {
	f, err := Compile(`Views > 100 and icontains(Title, "notes")`)
	if err != nil {
		b.Fatal(err)
	}
	page := testPages()[0]

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := f.Match(page); err != nil {
			b.Fatal(err)
		}
	}
}
