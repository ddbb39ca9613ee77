package prompts

import "smol_dev/internal/types"

// GetDebugPrompt builds the single debugging request from the concatenated
// file context and the user's description of the problem.
func GetDebugPrompt(context, issue string) types.Prompt {
	system := `You are an AI debugger who is trying to debug a program for a user based on their file system. The user has provided you with the following files and their contents, finally followed by the error message or issue they are facing.`

	user := "My files are as follows: " + sanitize(context) +
		"\n\nMy issue is as follows: " + sanitize(issue) +
		"\n\nGive me ideas for what could be wrong and what fixes to do in which files."

	return types.Prompt{System: system, User: user}
}
