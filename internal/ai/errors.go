package ai

import (
	"errors"
	"fmt"
)

// ErrNoFilePaths is returned when the model produced no file list at all.
var ErrNoFilePaths = errors.New("no filepaths generated")

// ErrMalformedFileList matches any *MalformedFileListError via errors.Is.
var ErrMalformedFileList = errors.New("malformed file list")

var errEmptyResponse = errors.New("model returned an empty response")

// GenerationError reports a failed text-generation call.
type GenerationError struct {
	Model string
	Err   error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("generation with model %s failed: %v", e.Model, e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

// MalformedFileListError reports a file-list response that is not a list of
// strings.
type MalformedFileListError struct {
	Response string
	Err      error
}

func (e *MalformedFileListError) Error() string {
	return fmt.Sprintf("malformed file list %q: %v", e.Response, e.Err)
}

func (e *MalformedFileListError) Unwrap() error {
	return e.Err
}

func (e *MalformedFileListError) Is(target error) bool {
	return target == ErrMalformedFileList
}
