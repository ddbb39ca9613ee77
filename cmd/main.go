package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"smol_dev/api"
	"smol_dev/config"
	"smol_dev/internal/ai"
	handlers "smol_dev/internal/api"
	"smol_dev/internal/render"
)

const Version = "0.1.0"

// usageError is reported on stderr as-is, without the "Error:" prefix.
type usageError struct {
	msg string
}

func (e usageError) Error() string {
	return e.msg
}

func main() {
	// Load .env before viper reads the environment.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: Error loading .env file: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd().ExecuteContext(ctx); err != nil {
		var usage usageError
		if errors.As(err, &usage) {
			fmt.Fprintln(os.Stderr, usage.msg)
		} else {
			log.Printf("Error: %v", err)
		}
		stop()
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "smol <prompt> [outputDirectory] [singleFilename]",
		Short: "Generate a whole program from a prompt",
		Long: `smol turns a natural-language prompt into a project.

It elaborates the prompt, asks the model for the list of files the program
needs and what they share, then generates every file on its own. A prompt
ending in .md is read from that file.`,
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, configPath, args)
		},
	}

	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", ".", "Directory containing config.yaml")

	cmd.AddCommand(&cobra.Command{
		Use:   "generate <prompt> [outputDirectory] [singleFilename]",
		Short: "Generate a program from a prompt (same as the root command)",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, configPath, args)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "debug <issueDescription>",
		Short: "Ask the model what is wrong with the generated files",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDebug(cmd, configPath, args)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Serve the generate and debug workflows over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), configPath)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "smol version %s\n", Version)
		},
	})

	return cmd
}

func loadConfig(configPath string) (config.Config, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return config.Config{}, fmt.Errorf("cannot load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func newGenerator(cfg config.Config, out io.Writer) *ai.Generator {
	client := ai.NewOpenAIClient(cfg.OpenAIKey, cfg.OpenAIBaseURL, cfg.GeneratorModelConfig())
	return ai.NewGenerator(client,
		ai.WithPrinter(render.NewPrinter(out)),
		ai.WithSharedDependenciesSeed(cfg.SharedDependenciesSeed),
		ai.WithConcurrency(cfg.Concurrency),
	)
}

func newDebugger(cfg config.Config, out io.Writer) *ai.Generator {
	client := ai.NewOpenAIClient(cfg.OpenAIKey, cfg.OpenAIBaseURL, cfg.DebuggerModelConfig())
	return ai.NewGenerator(client,
		ai.WithPrinter(render.NewPrinter(out)),
		ai.WithSkipExtensions(cfg.SkipExtensions),
	)
}

func runGenerate(cmd *cobra.Command, configPath string, args []string) error {
	if len(args) < 1 || args[0] == "" {
		return usageError{msg: "Please provide a prompt"}
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	req := ai.GenerateRequest{Prompt: args[0], Directory: cfg.OutputDir}
	if len(args) > 1 && args[1] != "" {
		req.Directory = args[1]
	}
	if len(args) > 2 {
		req.File = args[2]
	}

	_, err = newGenerator(cfg, cmd.OutOrStdout()).GenerateProject(cmd.Context(), req)
	return err
}

func runDebug(cmd *cobra.Command, configPath string, args []string) error {
	issue := strings.TrimSpace(strings.Join(args, " "))
	if issue == "" {
		return usageError{msg: "Please provide a prompt"}
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	_, err = newDebugger(cfg, cmd.OutOrStdout()).DebugProject(cmd.Context(), cfg.GeneratedDir, issue)
	return err
}

func runServe(ctx context.Context, configPath string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
		log.Println("Running in Gin Debug Mode")
	}

	// Server runs print to stderr alongside the request log.
	apiHandler := handlers.NewAPIHandler(
		newGenerator(cfg, os.Stderr),
		newDebugger(cfg, os.Stderr),
		cfg.OutputDir,
		cfg.GeneratedDir,
	)

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	api.RegisterRoutes(router, apiHandler)

	server := &http.Server{
		Addr:        cfg.ServerAddress,
		Handler:     router,
		ReadTimeout: 15 * time.Second,
		// Generation runs make many sequential model calls.
		WriteTimeout: 30 * time.Minute,
		IdleTimeout:  60 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Printf("Starting API server on %s", cfg.ServerAddress)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("API server listen error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Println("Shutting down API server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("API server forced shutdown: %w", err)
	}
	log.Println("API server gracefully stopped.")
	return nil
}
