package prompts

import "smol_dev/internal/types"

// GetFileListPrompt asks the model for the exhaustive list of file paths of
// the program described by prompt.
func GetFileListPrompt(prompt string) types.Prompt {
	system := `
		You are an AI developer who is trying to write a program that will generate code for the user based on their intent.

		When given their intent, create a complete, exhaustive list of filepaths that the user would write to make the program.

		only list the filepaths you would write, and return them as a list of double-quoted strings inside square brackets, for example ["index.html", "src/app.js"].
		do not add any other explanation, only return the list of strings.
	`

	return types.Prompt{System: system, User: sanitize(prompt)}
}
