package config

import (
	"errors"
	"fmt"
	"log"

	"github.com/spf13/viper"

	"smol_dev/internal/types"
	"smol_dev/internal/utils"
)

// Config holds all configuration for the application.
// Mapstructure tags are used to map environment variables and config file keys.
type Config struct {
	// OpenAI Configuration
	OpenAIKey     string `mapstructure:"OPENAI_API_KEY"`
	OpenAIBaseURL string `mapstructure:"OPENAI_BASE_URL"` // Empty uses https://api.openai.com/v1

	// Generate workflow model
	GeneratorModel       string  `mapstructure:"GENERATOR_MODEL"`
	GeneratorMaxTokens   int     `mapstructure:"GENERATOR_MAX_TOKENS"`
	GeneratorTemperature float32 `mapstructure:"GENERATOR_TEMPERATURE"`
	GeneratorTopP        float32 `mapstructure:"GENERATOR_TOP_P"`

	// Debug workflow model
	DebuggerModel       string  `mapstructure:"OPENAI_MODEL"`
	DebuggerMaxTokens   int     `mapstructure:"DEBUGGER_MAX_TOKENS"` // 0 leaves the provider default
	DebuggerTemperature float32 `mapstructure:"DEBUGGER_TEMPERATURE"`
	DebuggerTopP        float32 `mapstructure:"DEBUGGER_TOP_P"`

	// Filesystem
	OutputDir              string   `mapstructure:"OUTPUT_DIR"`    // Default output directory of generate runs
	GeneratedDir           string   `mapstructure:"GENERATED_DIR"` // Directory the debugger reads
	SharedDependenciesSeed string   `mapstructure:"SHARED_DEPENDENCIES_SEED"`
	SkipExtensions         []string `mapstructure:"SKIP_EXTENSIONS"` // Comma separated in the environment

	// Per-file generation fan-out, 1 is sequential
	Concurrency int `mapstructure:"GENERATE_CONCURRENCY"`

	// Server Configuration
	ServerAddress string `mapstructure:"SERVER_ADDRESS"` // e.g., ":8080"
	AppEnv        string `mapstructure:"APP_ENV"`
}

var defaults = map[string]any{
	"OPENAI_API_KEY":           "",
	"OPENAI_BASE_URL":          "",
	"GENERATOR_MODEL":          "gpt-4",
	"GENERATOR_MAX_TOKENS":     2000,
	"GENERATOR_TEMPERATURE":    0.5,
	"GENERATOR_TOP_P":          1.0,
	"OPENAI_MODEL":             "gpt-3.5-turbo",
	"DEBUGGER_MAX_TOKENS":      0,
	"DEBUGGER_TEMPERATURE":     0.3,
	"DEBUGGER_TOP_P":           1.0,
	"OUTPUT_DIR":               "generated",
	"GENERATED_DIR":            "generated",
	"SHARED_DEPENDENCIES_SEED": "shared_dependencies.md",
	"SKIP_EXTENSIONS":          utils.DefaultSkipExtensions,
	"GENERATE_CONCURRENCY":     1,
	"SERVER_ADDRESS":           ":8080",
	"APP_ENV":                  "development",
}

// LoadConfig reads configuration from config.yaml in path and environment
// variables. Environment variables take precedence over the file.
func LoadConfig(path string) (config Config, err error) {
	v := viper.New()
	v.AddConfigPath(path)     // Path to look for the config file in
	v.SetConfigName("config") // Name of config file (without extension)
	v.SetConfigType("yaml")   // REQUIRED if the config file does not have the extension in the name

	// Every key needs a default so AutomaticEnv values reach Unmarshal.
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	err = v.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			log.Println("Config file ('config.yaml') not found in specified path, relying solely on environment variables.")
		} else {
			return Config{}, fmt.Errorf("error reading config file: %w", err)
		}
	} else {
		log.Printf("Using configuration file: %s", v.ConfigFileUsed())
	}

	err = v.Unmarshal(&config)
	if err != nil {
		return Config{}, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	if config.Concurrency < 1 {
		config.Concurrency = 1
	}
	return config, nil
}

// Validate reports configuration that makes model calls impossible.
func (c Config) Validate() error {
	if c.OpenAIKey == "" && c.OpenAIBaseURL == "" {
		return errors.New("OPENAI_API_KEY is not set")
	}
	return nil
}

// GeneratorModelConfig returns the model settings of the generate workflow.
func (c Config) GeneratorModelConfig() types.ModelConfig {
	return types.ModelConfig{
		Model:       c.GeneratorModel,
		MaxTokens:   c.GeneratorMaxTokens,
		Temperature: c.GeneratorTemperature,
		TopP:        c.GeneratorTopP,
	}
}

// DebuggerModelConfig returns the model settings of the debug workflow.
func (c Config) DebuggerModelConfig() types.ModelConfig {
	return types.ModelConfig{
		Model:       c.DebuggerModel,
		MaxTokens:   c.DebuggerMaxTokens,
		Temperature: c.DebuggerTemperature,
		TopP:        c.DebuggerTopP,
	}
}
