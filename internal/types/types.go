package types

// GeneratedFile is one file of a generated project.
type GeneratedFile struct {
	Filename string `json:"filename"`
	Type     string `json:"type"` // e.g., "JavaScript", "CSS", "Markdown"
	Content  string `json:"content"`
}

// Prompt is the system/user instruction pair sent on a single model call.
type Prompt struct {
	System string
	User   string
}

// Snapshot maps a relative file path to its content, or to an error
// placeholder when the file could not be read.
type Snapshot map[string]string

// ModelConfig holds the sampling parameters of a text-generation client.
type ModelConfig struct {
	Model       string  `json:"model"`
	MaxTokens   int     `json:"maxTokens"` // 0 leaves the provider default
	Temperature float32 `json:"temperature"`
	TopP        float32 `json:"topP"`
}

// GenerationResult describes the outcome of one generate run.
type GenerationResult struct {
	RunID              string          `json:"runId"`
	Directory          string          `json:"directory"`
	Prompt             string          `json:"prompt"`
	Elaboration        string          `json:"elaboration"`
	FileList           []string        `json:"fileList"`
	SharedDependencies string          `json:"sharedDependencies"`
	Files              []GeneratedFile `json:"files"`
}
