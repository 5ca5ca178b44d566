package redis

import "errors"

var (
	ErrFailedToParseRedisConnString = errors.New("failed to parse redis connection string")
	ErrRedisNotReady                = errors.New("redis did not become ready within the given time period")
	ErrNilClient                    = errors.New("nil redis client")
	ErrEmptySetKey                  = errors.New("empty redis set key")
	ErrLookupFailed                 = errors.New("redis membership lookup failed")
)
