package pg

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
)

// Querier is satisfied by *pgxpool.Pool, *pgx.Conn and pgx.Tx.
type Querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// ExistsChecker reports a value as taken when a row with that value exists
// in table.column. It satisfies validator.TakenChecker.
type ExistsChecker struct {
	db    Querier
	query string
}

// ExistsCheckerOption configures an ExistsChecker.
type ExistsCheckerOption func(*existsOptions)

type existsOptions struct {
	caseInsensitive bool
	where           string
}

// WithCaseInsensitive compares lower(column) with lower($1).
func WithCaseInsensitive() ExistsCheckerOption {
	return func(o *existsOptions) { o.caseInsensitive = true }
}

// WithCondition appends a static SQL condition, e.g. "deleted_at IS NULL".
// The condition is inserted verbatim and must not contain user input.
func WithCondition(cond string) ExistsCheckerOption {
	return func(o *existsOptions) { o.where = strings.TrimSpace(cond) }
}

// NewExistsChecker builds the lookup query once. table may be schema
// qualified ("auth.users"); both identifiers are quoted.
func NewExistsChecker(db Querier, table, column string, opts ...ExistsCheckerOption) (*ExistsChecker, error) {
	if db == nil {
		return nil, ErrNilQuerier
	}

	tableIdent := pgx.Identifier(strings.Split(table, "."))
	for _, part := range append(tableIdent, column) {
		if part == "" {
			return nil, fmt.Errorf("%w: %q.%q", ErrInvalidIdentifier, table, column)
		}
	}

	var o existsOptions
	for _, opt := range opts {
		opt(&o)
	}

	col := pgx.Identifier{column}.Sanitize()
	cond := col + " = $1"
	if o.caseInsensitive {
		cond = "lower(" + col + ") = lower($1)"
	}
	if o.where != "" {
		cond += " AND (" + o.where + ")"
	}

	return &ExistsChecker{
		db:    db,
		query: fmt.Sprintf("SELECT EXISTS (SELECT 1 FROM %s WHERE %s)", tableIdent.Sanitize(), cond),
	}, nil
}

// Query returns the SQL executed by IsTaken.
func (c *ExistsChecker) Query() string {
	return c.query
}

// IsTaken runs the EXISTS query for value. A nil or zero checker reports
// ErrNilQuerier.
func (c *ExistsChecker) IsTaken(ctx context.Context, value string) (bool, error) {
	if c == nil || c.db == nil {
		return false, ErrNilQuerier
	}
	var exists bool
	if err := c.db.QueryRow(ctx, c.query, value).Scan(&exists); err != nil {
		return false, errors.Join(ErrLookupFailed, err)
	}
	return exists, nil
}
