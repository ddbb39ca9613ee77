package ai

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFileList(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{"single quotes", "['a.js', 'b.js']", []string{"a.js", "b.js"}},
		{"double quotes", `["index.html", "src/app.js"]`, []string{"index.html", "src/app.js"}},
		{"surrounding whitespace", "\n  [\"a.js\"]  \n", []string{"a.js"}},
		{"code fence", "```json\n[\"a.js\", \"styles/main.css\"]\n```", []string{"a.js", "styles/main.css"}},
		{"empty list", "[]", []string{}},
		{"duplicates kept in order", `["a.js", "a.js"]`, []string{"a.js", "a.js"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFileList(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseFileList_Malformed(t *testing.T) {
	for _, raw := range []string{"not a list", `{"files": ["a.js"]}`, `[1, 2]`, "null", ""} {
		t.Run(raw, func(t *testing.T) {
			files, err := ParseFileList(raw)
			require.Error(t, err)
			assert.Nil(t, files)
			assert.ErrorIs(t, err, ErrMalformedFileList)

			var malformed *MalformedFileListError
			require.True(t, errors.As(err, &malformed))
			assert.Equal(t, raw, malformed.Response)
		})
	}
}
