package ai

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/google/uuid"

	"smol_dev/internal/ai/prompts"
	aiutils "smol_dev/internal/ai/utils"
	"smol_dev/internal/types"
	"smol_dev/internal/utils"
)

// GenerateRequest describes one generate run.
type GenerateRequest struct {
	// Prompt is literal text, or a path ending in .md whose content is used.
	Prompt string
	// Directory receives the generated files. Empty means DefaultOutputDir.
	Directory string
	// File, when set, restricts the run to generating that single file.
	File string
}

// GenerateProject elaborates the prompt, asks for a file list and writes
// every listed file into the output directory.
func (g *Generator) GenerateProject(ctx context.Context, req GenerateRequest) (*types.GenerationResult, error) {
	prompt, err := resolvePrompt(req.Prompt)
	if err != nil {
		return nil, err
	}
	directory := req.Directory
	if directory == "" {
		directory = DefaultOutputDir
	}

	result := &types.GenerationResult{
		RunID:     uuid.New().String(),
		Directory: directory,
		Prompt:    prompt,
	}
	log.Printf("Starting generation run %s into %s", result.RunID, directory)

	g.printer.Banner(prompt)

	// A missing elaboration is not fatal; the raw prompt is used instead.
	elaboration := g.generateResponse(ctx, prompts.GetElaborationPrompt(prompt))
	g.printer.Text(elaboration)
	if strings.TrimSpace(elaboration) == "" {
		elaboration = prompt
	}
	result.Elaboration = elaboration

	// A missing file list is fatal.
	fileListText := g.generateResponse(ctx, prompts.GetFileListPrompt(elaboration))
	g.printer.Text(fileListText)
	if strings.TrimSpace(fileListText) == "" {
		g.printer.Status("no filepaths generated, exiting")
		return nil, ErrNoFilePaths
	}

	fileList, err := ParseFileList(fileListText)
	if err != nil {
		return nil, err
	}
	result.FileList = fileList
	log.Printf("Run %s: %d files listed", result.RunID, len(fileList))

	sharedDependencies, err := g.loadSharedDependencies()
	if err != nil {
		return nil, err
	}

	if req.File != "" {
		g.printer.Status(fmt.Sprintf("file %s", req.File))
		file := g.generateFile(ctx, req.File, fileListText, sharedDependencies, prompt)
		if err := g.writeToFile(directory, file); err != nil {
			return nil, err
		}
		result.SharedDependencies = sharedDependencies
		result.Files = []types.GeneratedFile{file}
		return result, nil
	}

	if err := aiutils.CleanDir(directory, utils.ImageExtensions); err != nil {
		return nil, err
	}

	sharedDependencies = g.generateResponse(ctx, prompts.GetSharedDependenciesPrompt(prompt, fileListText))
	g.printer.Text(sharedDependencies)
	result.SharedDependencies = sharedDependencies
	manifest := types.GeneratedFile{
		Filename: SharedDependenciesFile,
		Type:     utils.DetermineFileType(SharedDependenciesFile),
		Content:  sharedDependencies,
	}
	if err := g.writeToFile(directory, manifest); err != nil {
		return nil, err
	}

	files, err := g.generateFiles(ctx, directory, fileList, fileListText, sharedDependencies, prompt)
	result.Files = files
	if err != nil {
		return result, err
	}

	log.Printf("Run %s finished: %d files written to %s", result.RunID, len(files), directory)
	return result, nil
}

// resolvePrompt reads the prompt from disk when it names a markdown file.
func resolvePrompt(prompt string) (string, error) {
	if !strings.HasSuffix(prompt, ".md") {
		return prompt, nil
	}
	data, err := os.ReadFile(prompt)
	if err != nil {
		return "", fmt.Errorf("failed to read prompt file %s: %w", prompt, err)
	}
	return string(data), nil
}

// loadSharedDependencies reads the optional seed manifest. A missing file
// yields an empty description.
func (g *Generator) loadSharedDependencies() (string, error) {
	if g.sharedDependenciesSeed == "" {
		return "", nil
	}
	data, err := os.ReadFile(g.sharedDependenciesSeed)
	if errors.Is(err, os.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", g.sharedDependenciesSeed, err)
	}
	return string(data), nil
}
