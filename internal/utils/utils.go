package utils

import (
	"path/filepath"
	"strings"
)

// ImageExtensions are left in place when an output directory is cleaned.
var ImageExtensions = []string{
	".png", ".jpg", ".jpeg", ".gif", ".bmp", ".svg", ".ico", ".tif", ".tiff",
}

// DefaultSkipExtensions are the binary-like files the debugger never reads.
var DefaultSkipExtensions = append(append([]string{}, ImageExtensions...),
	".webp", ".pdf", ".zip", ".gz", ".tar", ".exe", ".dll", ".so", ".dylib",
	".woff", ".woff2", ".ttf", ".eot", ".mp3", ".mp4", ".wav", ".lock",
)

// HasExtension reports whether filepath.Ext(name) is one of exts.
func HasExtension(name string, exts []string) bool {
	ext := filepath.Ext(name)
	for _, e := range exts {
		if ext == e {
			return true
		}
	}
	return false
}

// HasSuffix reports whether name ends with any of the given suffixes.
func HasSuffix(name string, suffixes []string) bool {
	for _, s := range suffixes {
		if s != "" && strings.HasSuffix(name, s) {
			return true
		}
	}
	return false
}

// DetermineFileType returns a display label for a file based on its name.
func DetermineFileType(filename string) string {
	lowerFilename := strings.ToLower(filename)
	ext := filepath.Ext(lowerFilename)
	switch ext {
	case ".html":
		return "HTML"
	case ".css":
		return "CSS"
	case ".js", ".mjs", ".cjs":
		return "JavaScript"
	case ".jsx":
		return "JSX"
	case ".ts":
		return "TypeScript"
	case ".tsx":
		return "TSX"
	case ".json":
		return "JSON"
	case ".md":
		return "Markdown"
	case ".txt":
		return "Text"
	case ".yaml", ".yml":
		return "YAML"
	case ".toml":
		return "TOML"
	case ".sh":
		return "Shell"
	case ".py":
		return "Python"
	case ".go":
		return "Go"
	case ".rs":
		return "Rust"
	case ".java":
		return "Java"
	case ".env":
		return "Env"
	case ".gitignore":
		return "GitIgnore"
	case ".svg":
		return "SVG"
	case ".png", ".jpg", ".jpeg", ".gif", ".webp":
		return "Image"
	default:
		base := filepath.Base(lowerFilename)
		if strings.Contains(base, "dockerfile") {
			return "Dockerfile"
		}
		if base == "makefile" {
			return "Makefile"
		}
		if strings.Contains(base, ".config.") {
			return "Config"
		}
		return "Unknown"
	}
}
