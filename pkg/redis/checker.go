package redis

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// MembershipClient is the part of redis.UniversalClient used by SetChecker.
type MembershipClient interface {
	SIsMember(ctx context.Context, key string, member any) *redis.BoolCmd
}

// SetChecker reports a value as taken when it is a member of a Redis set.
// It satisfies validator.TakenChecker.
type SetChecker struct {
	client    MembershipClient
	key       string
	normalize func(string) string
}

// SetCheckerOption configures a SetChecker.
type SetCheckerOption func(*SetChecker)

// WithNormalizer transforms values before the lookup, e.g. strings.ToLower
// for case-insensitive usernames. The set must be stored in the same form.
func WithNormalizer(fn func(string) string) SetCheckerOption {
	return func(c *SetChecker) {
		if fn != nil {
			c.normalize = fn
		}
	}
}

// NewSetChecker creates a checker over the set stored at key.
func NewSetChecker(client MembershipClient, key string, opts ...SetCheckerOption) (*SetChecker, error) {
	if client == nil {
		return nil, ErrNilClient
	}
	if key == "" {
		return nil, ErrEmptySetKey
	}

	c := &SetChecker{client: client, key: key}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// IsTaken runs SISMEMBER for value. Transport errors are wrapped with
// ErrLookupFailed. A nil or zero checker reports ErrNilClient.
func (c *SetChecker) IsTaken(ctx context.Context, value string) (bool, error) {
	if c == nil || c.client == nil {
		return false, ErrNilClient
	}
	if c.normalize != nil {
		value = c.normalize(value)
	}

	taken, err := c.client.SIsMember(ctx, c.key, value).Result()
	if err != nil {
		return false, errors.Join(ErrLookupFailed, err)
	}
	return taken, nil
}
