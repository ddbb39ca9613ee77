package ai

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"smol_dev/internal/ai/prompts"
	aiutils "smol_dev/internal/ai/utils"
	"smol_dev/internal/types"
)

// DebugProject reads the files in directory and asks the model what could
// cause issue. Unlike the generate workflow, a failed model call is returned.
func (g *Generator) DebugProject(ctx context.Context, directory, issue string) (string, error) {
	if directory == "" {
		directory = DefaultOutputDir
	}

	snapshot, err := aiutils.WalkDirectory(directory, g.skipExtensions)
	if err != nil {
		return "", err
	}

	p := prompts.GetDebugPrompt(BuildDebugContext(snapshot), issue)
	diagnosis, err := g.client.Generate(ctx, p.System, p.User)
	if err != nil {
		return "", fmt.Errorf("debug request failed: %w", err)
	}

	g.printer.Diagnosis(diagnosis)
	return diagnosis, nil
}

// BuildDebugContext joins snapshot entries as "path:\ncontent" blocks,
// ordered by path.
func BuildDebugContext(snapshot types.Snapshot) string {
	paths := make([]string, 0, len(snapshot))
	for path := range snapshot {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	blocks := make([]string, 0, len(paths))
	for _, path := range paths {
		blocks = append(blocks, path+":\n"+snapshot[path])
	}
	return strings.Join(blocks, "\n")
}
