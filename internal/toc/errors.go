package toc

import (
	"errors"
	"fmt"
	"os"
)

var errIsDir = errors.New("is a directory")

// SourceNotFoundError reports a Markdown source that could not be opened.
type SourceNotFoundError struct {
	Path string
	Err  error
}

func (e *SourceNotFoundError) Error() string {
	return fmt.Sprintf("Error: file '%s' not found.", e.Path)
}

func (e *SourceNotFoundError) Unwrap() error { return e.Err }

// OutputWriteError reports a table of contents that could not be saved.
type OutputWriteError struct {
	Path string
	Err  error
}

func (e *OutputWriteError) Error() string {
	return fmt.Sprintf("failed to write %s: %v", e.Path, e.Err)
}

func (e *OutputWriteError) Unwrap() error { return e.Err }

// WriteFile saves content to path, replacing any existing file.
func WriteFile(path, content string) error {
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return &OutputWriteError{Path: path, Err: err}
	}
	return nil
}
