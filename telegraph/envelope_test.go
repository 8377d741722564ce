package telegraph

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	t.Run("page views", func(t *testing.T) {
		pv, err := Decode[PageViews]("getViews", []byte(`{"ok":true,"result":{"views":20}}`))
		require.NoError(t, err)
		assert.Equal(t, uint(20), pv.Views)
	})

	t.Run("api error", func(t *testing.T) {
		acc, err := Decode[Account]("createAccount", []byte(`{"ok":false,"error":"SHORT_NAME_REQUIRED"}`))
		require.Error(t, err)
		assert.Nil(t, acc)
		assert.True(t, errors.Is(err, ErrAPI))

		msg, ok := APIMessage(err)
		assert.True(t, ok)
		assert.Equal(t, "SHORT_NAME_REQUIRED", msg)
		assert.Equal(t, "telegraph createAccount: api error: SHORT_NAME_REQUIRED", err.Error())
	})

	t.Run("page with content", func(t *testing.T) {
		body := `{"ok":true,"result":{"path":"Hi-01-01","url":"https://telegra.ph/Hi-01-01","title":"Hi",` +
			`"description":"","content":[{"tag":"p","children":["hello"]}],"views":3,"can_edit":true}}`
		page, err := Decode[Page]("getPage", []byte(body))
		require.NoError(t, err)
		assert.Equal(t, "Hi-01-01", page.Path)
		assert.True(t, page.CanEdit)
		require.Len(t, page.Content, 1)
		assert.Equal(t, "hello", page.Content[0].PlainText())
	})
}

func TestDecodeFailures(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "ok without result", body: `{"ok":true}`},
		{name: "not ok without error", body: `{"ok":false}`},
		{name: "not json", body: `<html>bad gateway</html>`},
		{name: "wrong result shape", body: `{"ok":true,"result":{"views":"many"}}`},
		{name: "empty body", body: ``},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pv, err := Decode[PageViews]("getViews", []byte(tt.body))
			require.Error(t, err)
			assert.Nil(t, pv)

			var te *Error
			require.True(t, errors.As(err, &te))
			assert.Equal(t, KindDecode, te.Kind)
			assert.Equal(t, "getViews", te.Op)
			assert.True(t, errors.Is(err, ErrDecode))
			assert.False(t, errors.Is(err, ErrAPI))
		})
	}
}

func TestDecodeRejectsUnknownContentTag(t *testing.T) {
	_, err := Decode[Page]("getPage", []byte(`{"ok":true,"result":{"path":"x","content":[{"tag":"blink"}]}}`))
	assert.ErrorIs(t, err, ErrDecode)
}

func TestKind(t *testing.T) {
	tests := []struct {
		kind     Kind
		expected string
	}{
		{KindAPI, "api"},
		{KindTransport, "transport"},
		{KindDecode, "decode"},
		{KindIO, "io"},
		{Kind(0), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.kind.String())
		})
	}
}
