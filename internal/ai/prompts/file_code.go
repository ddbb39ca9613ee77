package prompts

import (
	"fmt"

	"smol_dev/internal/types"
)

// GetFileCodePrompt asks the model for the raw source of a single file.
func GetFileCodePrompt(filename, fileList, sharedDependencies, rawPrompt string) types.Prompt {
	app := sanitize(rawPrompt)
	name := sanitize(filename)

	system := fmt.Sprintf(`
		You are an AI developer who is trying to write a program that will generate code for the user based on their intent.

		the app is: %s

		the files we have decided to generate are: %s

		the shared dependencies (like filenames and variable names) we have decided on are: %s

		only write valid code for the given filepath and file type, and return only the code.
		do not add any other explanation, only return valid code for that file type.
	`, app, sanitize(fileList), sanitize(sharedDependencies))

	user := fmt.Sprintf(`
		We have broken up the program into per-file generation.
		Now your job is to generate only the code for the file %s.
		Make sure to have consistent filenames if you reference other files we are also generating.

		Remember that you must obey 3 things:
		   - you are generating code for the file %s
		   - do not stray from the names of the files and the shared dependencies we have decided on
		   - MOST IMPORTANT OF ALL - the purpose of our app is %s - every line of code you generate must be valid code. Do not include code fences in your response, for example

		Bad response:
		`+"```javascript"+`
		console.log("hello world")
		`+"```"+`

		Good response:
		console.log("hello world")

		Begin generating the code now.
	`, name, name, app)

	return types.Prompt{System: system, User: user}
}
