package utils

import "errors"

var (
	ErrDirectoryNotFound = errors.New("directory not found")
	ErrNoMatchingFiles   = errors.New("no matching files")
	ErrInvalidSelection  = errors.New("invalid selection")
	ErrExtractionFailed  = errors.New("audio extraction failed")
	ErrModelFailure      = errors.New("model failure")
)
