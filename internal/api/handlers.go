package api

import (
	"errors"
	"log"
	"net/http"
	"strings"
	"sync"

	"smol_dev/internal/ai"

	"github.com/gin-gonic/gin"
)

// APIHandler holds dependencies for API endpoints.
type APIHandler struct {
	generator    *ai.Generator
	debugger     *ai.Generator
	outputDir    string // Directory generate requests write into
	generatedDir string // Directory debug requests read from

	// runMu serialises runs so the output directory is never cleaned and
	// written by two requests at once.
	runMu sync.Mutex
}

// NewAPIHandler initializes a new API handler with its dependencies.
func NewAPIHandler(generator, debugger *ai.Generator, outputDir, generatedDir string) *APIHandler {
	return &APIHandler{
		generator:    generator,
		debugger:     debugger,
		outputDir:    outputDir,
		generatedDir: generatedDir,
	}
}

// --- Structs for API Requests/Responses ---

type GenerateRequest struct {
	Prompt string `json:"prompt" binding:"required"`
	File   string `json:"file"` // Optional: generate only this file
}

type DebugRequest struct {
	Issue string `json:"issue" binding:"required"`
}

type DebugResponse struct {
	Diagnosis string `json:"diagnosis"`
}

// --- API Handlers ---

// POST /project/generate
func (h *APIHandler) GenerateProject(c *gin.Context) {
	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	if strings.HasSuffix(req.Prompt, ".md") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Prompt files are only supported on the command line"})
		return
	}

	h.runMu.Lock()
	defer h.runMu.Unlock()

	result, err := h.generator.GenerateProject(c.Request.Context(), ai.GenerateRequest{
		Prompt:    req.Prompt,
		Directory: h.outputDir,
		File:      req.File,
	})
	if err != nil {
		log.Printf("Error generating project: %v", err)
		if errors.Is(err, ai.ErrNoFilePaths) || errors.Is(err, ai.ErrMalformedFileList) {
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate project"})
		return
	}

	log.Printf("Generation run %s wrote %d files to %s", result.RunID, len(result.Files), result.Directory)
	c.JSON(http.StatusCreated, result)
}

// POST /project/debug
func (h *APIHandler) DebugProject(c *gin.Context) {
	var req DebugRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	h.runMu.Lock()
	defer h.runMu.Unlock()

	diagnosis, err := h.debugger.DebugProject(c.Request.Context(), h.generatedDir, req.Issue)
	if err != nil {
		log.Printf("Error debugging %s: %v", h.generatedDir, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to debug project"})
		return
	}

	c.JSON(http.StatusOK, DebugResponse{Diagnosis: diagnosis})
}
