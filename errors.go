package ngramdist

import "errors"

// Construction errors returned by New.
var (
	ErrUnknownAlphabet   = errors.New("ngramdist: unknown alphabet")
	ErrInvalidGramLength = errors.New("ngramdist: unsupported gram length for alphabet")
)

// ErrInvalidWorkers is returned by DistanceBatchParallel for a non-positive
// worker count.
var ErrInvalidWorkers = errors.New("ngramdist: worker count must be positive")
