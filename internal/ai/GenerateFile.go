package ai

import (
	"context"
	"log"

	"golang.org/x/sync/errgroup"

	"smol_dev/internal/ai/prompts"
	aiutils "smol_dev/internal/ai/utils"
	"smol_dev/internal/types"
	"smol_dev/internal/utils"
)

// generateFile asks the model for the code of one file. The response is kept
// verbatim; a failed call produces an empty file.
func (g *Generator) generateFile(ctx context.Context, filename, fileList, sharedDependencies, prompt string) types.GeneratedFile {
	code := g.generateResponse(ctx, prompts.GetFileCodePrompt(filename, fileList, sharedDependencies, prompt))
	return types.GeneratedFile{
		Filename: filename,
		Type:     utils.DetermineFileType(filename),
		Content:  code,
	}
}

// generateFiles generates and writes every listed file in list order. With
// concurrency above one, generation fans out but writes stay ordered.
func (g *Generator) generateFiles(ctx context.Context, directory string, fileList []string, fileListText, sharedDependencies, prompt string) ([]types.GeneratedFile, error) {
	if g.concurrency <= 1 {
		files := make([]types.GeneratedFile, 0, len(fileList))
		for _, name := range fileList {
			if err := ctx.Err(); err != nil {
				return files, err
			}
			file := g.generateFile(ctx, name, fileListText, sharedDependencies, prompt)
			if err := g.writeToFile(directory, file); err != nil {
				return files, err
			}
			files = append(files, file)
		}
		return files, nil
	}

	generated := make([]types.GeneratedFile, len(fileList))
	var eg errgroup.Group
	eg.SetLimit(g.concurrency)
	for i, name := range fileList {
		eg.Go(func() error {
			generated[i] = g.generateFile(ctx, name, fileListText, sharedDependencies, prompt)
			return nil
		})
	}
	_ = eg.Wait()
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	files := make([]types.GeneratedFile, 0, len(generated))
	for _, file := range generated {
		if err := g.writeToFile(directory, file); err != nil {
			return files, err
		}
		files = append(files, file)
	}
	return files, nil
}

// writeToFile prints the file and writes it under directory.
func (g *Generator) writeToFile(directory string, file types.GeneratedFile) error {
	g.printer.File(file.Filename, file.Content)

	path, err := aiutils.WriteFile(directory, file.Filename, file.Content)
	if err != nil {
		return err
	}
	log.Printf("File saved: %s (%s)", path, file.Type)
	return nil
}
