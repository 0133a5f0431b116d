package main

import (
	"errors"

	"capmatrix/internal/domain"
)

// Exit codes for capmatrix
const (
	// ExitSuccess indicates the matrix was produced
	ExitSuccess = 0

	// ExitFailure indicates an error without a dedicated code
	ExitFailure = 1

	// ExitParseError indicates the input is not a results document
	ExitParseError = 2

	// ExitConfigError indicates a configuration error
	ExitConfigError = 3

	// ExitWriteError indicates a local write failed
	ExitWriteError = 4

	// ExitUploadError indicates the bucket upload failed
	ExitUploadError = 5

	// ExitUsageError indicates invalid CLI usage, e.g. no input file
	ExitUsageError = 64

	// ExitInputError indicates the input file could not be read
	ExitInputError = 66
)

func exitCode(err error) int {
	var (
		missing   *domain.MissingArgumentError
		inputErr  *domain.InputError
		parseErr  *domain.ParseError
		configErr *domain.ConfigError
		writeErr  *domain.WriteError
		uploadErr *domain.UploadError
	)

	switch {
	case err == nil:
		return ExitSuccess
	case errors.As(err, &missing):
		return ExitUsageError
	case errors.As(err, &inputErr):
		return ExitInputError
	case errors.As(err, &parseErr):
		return ExitParseError
	case errors.As(err, &configErr):
		return ExitConfigError
	case errors.As(err, &uploadErr):
		return ExitUploadError
	case errors.As(err, &writeErr):
		return ExitWriteError
	default:
		return ExitFailure
	}
}
