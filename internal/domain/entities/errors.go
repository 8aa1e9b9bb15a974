package entities

import "errors"

// Domain errors
var (
	ErrEmptyTranscript  = errors.New("transcript is empty")
	ErrArtifactNotFound = errors.New("artifact not found")
)
