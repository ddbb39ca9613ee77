package ai

import (
	"context"
	"log"

	"smol_dev/internal/render"
	"smol_dev/internal/types"
	"smol_dev/internal/utils"
)

const (
	// DefaultOutputDir is where generated projects are written.
	DefaultOutputDir = "generated"
	// SharedDependenciesFile is the manifest written next to generated files.
	SharedDependenciesFile = "shared_dependencies.md"
)

// Generator runs the generate and debug workflows against one model client.
type Generator struct {
	client  TextGenerator
	printer *render.Printer

	sharedDependenciesSeed string
	skipExtensions         []string
	concurrency            int
}

// Option configures a Generator.
type Option func(*Generator)

// WithPrinter sets where user-facing output goes.
func WithPrinter(p *render.Printer) Option {
	return func(g *Generator) {
		g.printer = p
	}
}

// WithSharedDependenciesSeed sets the file that seeds shared dependencies
// for single-file runs.
func WithSharedDependenciesSeed(path string) Option {
	return func(g *Generator) {
		g.sharedDependenciesSeed = path
	}
}

// WithSkipExtensions sets the suffixes the debugger does not read.
func WithSkipExtensions(exts []string) Option {
	return func(g *Generator) {
		if len(exts) > 0 {
			g.skipExtensions = exts
		}
	}
}

// WithConcurrency bounds how many files are generated at once. Values below
// 2 keep generation strictly sequential.
func WithConcurrency(n int) Option {
	return func(g *Generator) {
		g.concurrency = n
	}
}

// NewGenerator creates a Generator around client.
func NewGenerator(client TextGenerator, opts ...Option) *Generator {
	g := &Generator{
		client:                 client,
		printer:                render.Discard(),
		sharedDependenciesSeed: SharedDependenciesFile,
		skipExtensions:         utils.DefaultSkipExtensions,
		concurrency:            1,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// generateResponse is the lenient call used by the generate workflow: a
// failure is logged and yields an empty response.
func (g *Generator) generateResponse(ctx context.Context, p types.Prompt) string {
	text, err := g.client.Generate(ctx, p.System, p.User)
	if err != nil {
		log.Printf("Generate response error: %v", err)
		return ""
	}
	return text
}
