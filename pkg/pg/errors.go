package pg

import "errors"

var (
	ErrFailedToOpenDBConnection = errors.New("failed to open db connection")
	ErrFailedToParseDBConfig    = errors.New("failed to parse db config")
	ErrNilQuerier               = errors.New("nil postgres querier")
	ErrInvalidIdentifier        = errors.New("invalid table or column name")
	ErrLookupFailed             = errors.New("postgres existence lookup failed")
)
