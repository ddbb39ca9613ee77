package ai

import (
	"encoding/json"
	"errors"
	"strings"
)

// ParseFileList parses the model's answer to the file-list prompt, a
// bracketed list of quoted paths. Single quotes are accepted.
func ParseFileList(raw string) ([]string, error) {
	cleaned := strings.TrimSpace(raw)
	if strings.HasPrefix(cleaned, "```") {
		if i := strings.Index(cleaned, "\n"); i >= 0 {
			cleaned = cleaned[i+1:]
		} else {
			cleaned = strings.TrimPrefix(cleaned, "```")
		}
		cleaned = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(cleaned), "```"))
	}
	cleaned = strings.ReplaceAll(cleaned, "'", `"`)

	var files []string
	if err := json.Unmarshal([]byte(cleaned), &files); err != nil {
		return nil, &MalformedFileListError{Response: raw, Err: err}
	}
	if files == nil {
		return nil, &MalformedFileListError{Response: raw, Err: errors.New("response is not a list")}
	}
	return files, nil
}
