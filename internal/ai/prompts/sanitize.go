package prompts

import "strings"

// braceStripper removes the placeholder delimiters of downstream prompt
// templating from interpolated text.
var braceStripper = strings.NewReplacer("{", "", "}", "")

func sanitize(s string) string {
	return braceStripper.Replace(s)
}
