package common

import "github.com/cockroachdb/errors"

var (
	ErrMethodNotAllowed = errors.New("method not allowed")
	ErrParse            = errors.New("failed to parse update")
	ErrInternal         = errors.New("internal failure while processing update")
)
