package models

import "errors"

// Error taxonomy shared by services and handlers. Handlers map these onto
// HTTP status codes in helper.GetStatusCode.
var (
	ErrNotFound     = errors.New("record not found")
	ErrConflict     = errors.New("concurrent modification detected")
	ErrDuplicate    = errors.New("record already exists")
	ErrUnauthorized = errors.New("unauthorized")
)
