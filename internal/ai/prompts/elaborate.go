package prompts

import (
	"fmt"

	"smol_dev/internal/types"
)

// GetElaborationPrompt asks the model to expand a short prompt into a
// detailed technical specification.
func GetElaborationPrompt(rawPrompt string) types.Prompt {
	system := `You are an software architect who is trying to design a program that will generate code for the user based on their intent.`

	user := fmt.Sprintf(`Please elaborate on the "%s" by detailing the specific requirements, technical considerations, user interface, performance, privacy, error handling, and testing strategy so that the developer can write the code to meet your requirements and expectations. Make the requirements as detailed as possible and also provide the list of packages and libraries that you would use to implement the program.`,
		sanitize(rawPrompt))

	return types.Prompt{System: system, User: user}
}
