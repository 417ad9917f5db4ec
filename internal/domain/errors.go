package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidRequest signals a request that cannot be answered as sent.
	ErrInvalidRequest = errors.New("invalid request")
	// ErrInternal signals an unexpected failure while answering.
	ErrInternal = errors.New("internal error")
	// ErrModelNotInstalled signals that none of the preferred language models
	// is available in the local runtime.
	ErrModelNotInstalled = errors.New("no preferred model installed")
	// ErrRuntimeUnavailable signals that the local language-model runtime
	// did not respond.
	ErrRuntimeUnavailable = errors.New("language model runtime unavailable")
)

// Causes of ErrInvalidRequest.
var (
	ErrNoMessages    = fmt.Errorf("no messages: %w", ErrInvalidRequest)
	ErrInvalidMode   = fmt.Errorf("unknown answer mode: %w", ErrInvalidRequest)
	ErrMalformedBody = fmt.Errorf("malformed body: %w", ErrInvalidRequest)
)
