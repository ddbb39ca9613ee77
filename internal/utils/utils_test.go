package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetermineFileType(t *testing.T) {
	tests := []struct {
		filename string
		want     string
	}{
		{"index.js", "JavaScript"},
		{"src/App.TSX", "TSX"},
		{"styles/main.css", "CSS"},
		{"shared_dependencies.md", "Markdown"},
		{"Dockerfile", "Dockerfile"},
		{"Makefile", "Makefile"},
		{"vite.config.mts", "Config"},
		{"LICENSE", "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			assert.Equal(t, tt.want, DetermineFileType(tt.filename))
		})
	}
}

func TestHasExtension(t *testing.T) {
	assert.True(t, HasExtension("logo.png", ImageExtensions))
	assert.True(t, HasExtension("assets/icon.ico", ImageExtensions))
	assert.False(t, HasExtension("a.txt", ImageExtensions))
	assert.False(t, HasExtension("png", ImageExtensions))
}

func TestHasSuffix(t *testing.T) {
	assert.True(t, HasSuffix("archive.tar.gz", DefaultSkipExtensions))
	assert.True(t, HasSuffix("yarn.lock", DefaultSkipExtensions))
	assert.False(t, HasSuffix("app.js", DefaultSkipExtensions))
	assert.False(t, HasSuffix("app.js", []string{""}))
}
