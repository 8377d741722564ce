package cmd

import (
	"bytes"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s0up4200/telegraph/config"
	"github.com/s0up4200/telegraph/telegraph"
)

func TestWriteFormatted(t *testing.T) {
	pageCount := 2
	account := telegraph.Account{ShortName: "Sandbox", AuthorName: "true", PageCount: &pageCount}

	tests := []struct {
		name     string
		format   string
		expected string
	}{
		{
			name:   "json",
			format: config.FormatJSON,
			expected: `{
  "short_name": "Sandbox",
  "author_name": "true",
  "page_count": 2
}
`,
		},
		{
			name:   "yaml keeps field order",
			format: config.FormatYAML,
			expected: `short_name: Sandbox
author_name: "true"
page_count: 2
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, writeFormatted(&buf, tt.format, account))
			assert.Equal(t, tt.expected, buf.String())
		})
	}
}

func TestPrintDryRun(t *testing.T) {
	cfg = &config.Config{Output: config.OutputConfig{Format: config.FormatJSON}}
	t.Cleanup(func() { cfg = nil })

	form := url.Values{"path": {"Sample-01-01"}, "return_content": {"true"}}

	var buf bytes.Buffer
	require.NoError(t, printDryRun(&buf, "getPage", form))
	assert.JSONEq(t, `{"method":"getPage","form":{"path":"Sample-01-01","return_content":"true"}}`, buf.String())
}

func TestMediaURL(t *testing.T) {
	assert.Equal(t, "https://telegra.ph/file/abc.jpg", mediaURL(telegraph.DefaultUploadURL, "/file/abc.jpg"))
	assert.Equal(t, "http://localhost:8080/file/x.png", mediaURL("http://localhost:8080/upload", "/file/x.png"))
}
