package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeOpenAI answers chat completions with respond and records every request.
type fakeOpenAI struct {
	mu       sync.Mutex
	requests []openai.ChatCompletionRequest
	respond  func(req openai.ChatCompletionRequest) (string, int)
}

func (f *fakeOpenAI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req openai.ChatCompletionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	f.mu.Lock()
	f.requests = append(f.requests, req)
	f.mu.Unlock()

	content, status := f.respond(req)
	w.Header().Set("Content-Type", "application/json")
	if status != http.StatusOK {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(`{"error":{"message":"upstream failure","type":"server_error"}}`))
		return
	}
	_ = json.NewEncoder(w).Encode(openai.ChatCompletionResponse{
		ID:     "test",
		Object: "chat.completion",
		Choices: []openai.ChatCompletionChoice{{
			Message:      openai.ChatCompletionMessage{Role: openai.ChatMessageRoleAssistant, Content: content},
			FinishReason: openai.FinishReasonStop,
		}},
	})
}

func (f *fakeOpenAI) Requests() []openai.ChatCompletionRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]openai.ChatCompletionRequest(nil), f.requests...)
}

// setupEnv points the CLI at fake and isolates it from the host environment.
func setupEnv(t *testing.T, fake *fakeOpenAI) {
	t.Helper()
	server := httptest.NewServer(fake)
	t.Cleanup(server.Close)

	for _, key := range []string{"OPENAI_MODEL", "GENERATOR_MODEL", "OUTPUT_DIR", "GENERATED_DIR", "SKIP_EXTENSIONS", "GENERATE_CONCURRENCY"} {
		t.Setenv(key, "")
	}
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("OPENAI_BASE_URL", server.URL+"/v1")
	t.Setenv("SHARED_DEPENDENCIES_SEED", filepath.Join(t.TempDir(), "missing.md"))
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := rootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--config", t.TempDir()}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestRootCmd_MissingPrompt(t *testing.T) {
	for _, args := range [][]string{{}, {"generate"}, {"debug"}} {
		t.Run(strings.Join(args, " "), func(t *testing.T) {
			_, err := execute(t, args...)

			var usage usageError
			require.True(t, errors.As(err, &usage))
			assert.Equal(t, "Please provide a prompt", usage.Error())
		})
	}
}

func TestRootCmd_MissingAPIKey(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("OPENAI_BASE_URL", "")

	_, err := execute(t, "a todo list CLI", t.TempDir())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "OPENAI_API_KEY")
}

func TestVersionCmd(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "smol version "+Version+"\n", out)
}

func TestGenerate_EndToEnd(t *testing.T) {
	fake := &fakeOpenAI{respond: func(req openai.ChatCompletionRequest) (string, int) {
		system := req.Messages[0].Content
		switch {
		case strings.Contains(system, "software architect"):
			return "elaborated todo spec", http.StatusOK
		case strings.Contains(system, "exhaustive list of filepaths"):
			return "['index.js']", http.StatusOK
		case strings.Contains(system, "what dependencies they share"):
			return "shared: todos array", http.StatusOK
		default:
			return "console.log('todo')", http.StatusOK
		}
	}}
	setupEnv(t, fake)

	outDir := filepath.Join(t.TempDir(), "generated")
	require.NoError(t, os.MkdirAll(outDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(outDir, "old.html"), []byte("<p>old</p>"), 0644))

	out, err := execute(t, "a todo list CLI", outDir)
	require.NoError(t, err)

	entries, err := os.ReadDir(outDir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.ElementsMatch(t, []string{"index.js", "shared_dependencies.md"}, names)

	code, err := os.ReadFile(filepath.Join(outDir, "index.js"))
	require.NoError(t, err)
	assert.Equal(t, "console.log('todo')", string(code))
	shared, err := os.ReadFile(filepath.Join(outDir, "shared_dependencies.md"))
	require.NoError(t, err)
	assert.Equal(t, "shared: todos array", string(shared))

	assert.Contains(t, out, "a todo list CLI")
	assert.Contains(t, out, "console.log('todo')")

	requests := fake.Requests()
	require.Len(t, requests, 4)
	for _, req := range requests {
		assert.Equal(t, "gpt-4", req.Model)
		assert.Equal(t, 2000, req.MaxTokens)
	}
}

func TestDebug_EndToEnd(t *testing.T) {
	fake := &fakeOpenAI{respond: func(req openai.ChatCompletionRequest) (string, int) {
		return "bug() is never defined", http.StatusOK
	}}
	setupEnv(t, fake)

	generatedDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(generatedDir, "app.js"), []byte("bug()"), 0644))
	t.Setenv("GENERATED_DIR", generatedDir)

	out, err := execute(t, "debug", "crashes on start")
	require.NoError(t, err)
	assert.Contains(t, out, "bug() is never defined")

	requests := fake.Requests()
	require.Len(t, requests, 1)
	assert.Equal(t, "gpt-3.5-turbo", requests[0].Model)
	user := requests[0].Messages[1].Content
	assert.Contains(t, user, "app.js:\nbug()")
	assert.Contains(t, user, "crashes on start")
}

func TestDebug_ModelFailureIsFatal(t *testing.T) {
	fake := &fakeOpenAI{respond: func(req openai.ChatCompletionRequest) (string, int) {
		return "", http.StatusInternalServerError
	}}
	setupEnv(t, fake)
	t.Setenv("GENERATED_DIR", t.TempDir())

	_, err := execute(t, "debug", "crashes on start")

	require.Error(t, err)
	var usage usageError
	assert.False(t, errors.As(err, &usage))
}
