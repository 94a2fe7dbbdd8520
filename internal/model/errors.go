package model

import "errors"

var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidSeed        = errors.New("invalid seed identity")
	ErrHashing            = errors.New("credential hashing failed")
	ErrConnection         = errors.New("store unreachable")
	ErrStore              = errors.New("store operation failed")
	ErrCredentialMismatch = errors.New("credential does not match hash")
)
