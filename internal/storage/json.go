package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"capmatrix/internal/domain"
)

// StdoutSink prints the matrix
type StdoutSink struct {
	out io.Writer
}

// NewStdoutSink returns a Sink that prints to out
func NewStdoutSink(out io.Writer) *StdoutSink {
	return &StdoutSink{out: out}
}

// Write prints the matrix followed by a newline
func (s *StdoutSink) Write(_ context.Context, data []byte) error {
	if _, err := fmt.Fprintln(s.out, string(data)); err != nil {
		return &domain.WriteError{Path: "stdout", Err: err}
	}
	return nil
}

// FileSink writes the matrix to a local JSON file
type FileSink struct {
	path string
	out  io.Writer
}

// NewFileSink returns a Sink that writes to path
func NewFileSink(path string, out io.Writer) *FileSink {
	return &FileSink{path: path, out: out}
}

// Write writes the file and confirms on out
func (s *FileSink) Write(_ context.Context, data []byte) error {
	if err := writeFile(s.path, data); err != nil {
		return err
	}
	fmt.Fprintf(s.out, "Successfully wrote to %s\n", s.path)
	return nil
}

// writeFile writes data to path, creating parent directories
func writeFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return &domain.WriteError{Path: path, Err: fmt.Errorf("create output dir: %w", err)}
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return &domain.WriteError{Path: path, Err: err}
	}
	return nil
}
