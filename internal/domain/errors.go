package domain

import "fmt"

// MissingArgumentMessage is printed when no input file is given
const MissingArgumentMessage = "ERROR: Please provide input and output files"

// MissingArgumentError reports an invocation without an input file
type MissingArgumentError struct{}

func (e *MissingArgumentError) Error() string {
	return MissingArgumentMessage
}

// InputError reports an input file that could not be read
type InputError struct {
	Path string
	Err  error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("read input %s: %v", e.Path, e.Err)
}

func (e *InputError) Unwrap() error { return e.Err }

// ParseError reports input that is not a well-formed results document
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("parse input: %v", e.Err)
	}
	return fmt.Sprintf("parse input %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// WriteError reports a failed local write
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// UploadError reports a failed object store upload
type UploadError struct {
	Bucket string
	Key    string
	Err    error
}

func (e *UploadError) Error() string {
	return fmt.Sprintf("upload gs://%s/%s: %v", e.Bucket, e.Key, e.Err)
}

func (e *UploadError) Unwrap() error { return e.Err }

// ConfigError reports an unreadable or invalid configuration source
type ConfigError struct {
	Source string
	Err    error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config %s: %v", e.Source, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }
