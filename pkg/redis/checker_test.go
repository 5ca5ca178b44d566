package redis_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/validkit/pkg/redis"
	"github.com/dmitrymomot/validkit/pkg/validator"
	"github.com/dmitrymomot/validkit/pkg/validator/kind"
)

type fakeSet struct {
	members map[string]map[string]bool
	err     error
	calls   []string
}

func (f *fakeSet) SIsMember(_ context.Context, key string, member any) *goredis.BoolCmd {
	m, _ := member.(string)
	f.calls = append(f.calls, key+":"+m)
	if f.err != nil {
		return goredis.NewBoolResult(false, f.err)
	}
	return goredis.NewBoolResult(f.members[key][m], nil)
}

var _ validator.TakenChecker = (*redis.SetChecker)(nil)

func TestNewSetChecker(t *testing.T) {
	t.Parallel()

	t.Run("nil client", func(t *testing.T) {
		_, err := redis.NewSetChecker(nil, "usernames")
		assert.ErrorIs(t, err, redis.ErrNilClient)
	})

	t.Run("empty key", func(t *testing.T) {
		_, err := redis.NewSetChecker(&fakeSet{}, "")
		assert.ErrorIs(t, err, redis.ErrEmptySetKey)
	})
}

func TestSetChecker_IsTaken(t *testing.T) {
	t.Parallel()

	newSet := func() *fakeSet {
		return &fakeSet{members: map[string]map[string]bool{
			"usernames": {"alice": true},
		}}
	}

	t.Run("member is taken", func(t *testing.T) {
		set := newSet()
		c, err := redis.NewSetChecker(set, "usernames")
		require.NoError(t, err)

		taken, err := c.IsTaken(context.Background(), "alice")
		require.NoError(t, err)
		assert.True(t, taken)
		assert.Equal(t, []string{"usernames:alice"}, set.calls)
	})

	t.Run("non-member is free", func(t *testing.T) {
		c, err := redis.NewSetChecker(newSet(), "usernames")
		require.NoError(t, err)

		taken, err := c.IsTaken(context.Background(), "bob")
		require.NoError(t, err)
		assert.False(t, taken)
	})

	t.Run("normalizer applies before lookup", func(t *testing.T) {
		set := newSet()
		c, err := redis.NewSetChecker(set, "usernames", redis.WithNormalizer(strings.ToLower))
		require.NoError(t, err)

		taken, err := c.IsTaken(context.Background(), "ALICE")
		require.NoError(t, err)
		assert.True(t, taken)
		assert.Equal(t, []string{"usernames:alice"}, set.calls)
	})

	t.Run("transport error", func(t *testing.T) {
		boom := errors.New("connection refused")
		c, err := redis.NewSetChecker(&fakeSet{err: boom}, "usernames")
		require.NoError(t, err)

		taken, err := c.IsTaken(context.Background(), "alice")
		assert.False(t, taken)
		assert.ErrorIs(t, err, redis.ErrLookupFailed)
		assert.ErrorIs(t, err, boom)
	})
}

func TestSetChecker_WithUsernameRules(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("taken username", func(t *testing.T) {
		c, err := redis.NewSetChecker(&fakeSet{members: map[string]map[string]bool{
			"usernames": {"alice_01": true},
		}}, "usernames")
		require.NoError(t, err)

		rules := validator.DefaultUsernameRules()
		rules.Taken = c
		errs := validator.Validate(rules.ForContext(ctx, "username", "alice_01")...)
		assert.Equal(t, []kind.Kind{kind.UsernameTaken{}}, errs.ErrorsFor("username"))
	})

	t.Run("nil checker is check unavailable", func(t *testing.T) {
		var c *redis.SetChecker

		_, err := c.IsTaken(ctx, "alice")
		assert.ErrorIs(t, err, redis.ErrNilClient)

		_, err = (&redis.SetChecker{}).IsTaken(ctx, "alice")
		assert.ErrorIs(t, err, redis.ErrNilClient)

		errs := validator.Validate(validator.UsernameAvailable(ctx, "username", c, "alice_01"))
		assert.Equal(t, []kind.Kind{kind.CheckUnavailable{}}, errs.ErrorsFor("username"))
	})

	t.Run("lookup failure is check unavailable", func(t *testing.T) {
		c, err := redis.NewSetChecker(&fakeSet{err: goredis.ErrClosed}, "usernames")
		require.NoError(t, err)

		errs := validator.Validate(validator.UsernameAvailable(ctx, "username", c, "alice_01"))
		assert.Equal(t, []kind.Kind{kind.CheckUnavailable{}}, errs.ErrorsFor("username"))
	})
}
