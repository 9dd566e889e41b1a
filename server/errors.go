package server

import "errors"

var (
	// ErrUnknownLanguage reports a language name outside the supported set.
	ErrUnknownLanguage = errors.New("server: unknown language")
	// ErrMissingParam reports a required query parameter left empty.
	ErrMissingParam = errors.New("server: missing query parameter")
)
