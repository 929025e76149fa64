package internal

import "errors"

// Operation-level precondition failures. Per-item problems during a
// batch are reported inside the batch report instead.
var (
	ErrNotADirectory = errors.New("not a directory")
	ErrNoHistory     = errors.New("no organization history")
	ErrEmptyHistory  = errors.New("organization history is empty")
)
