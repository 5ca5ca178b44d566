// Package pg backs username availability checks with a PostgreSQL table.
//
// ExistsChecker implements validator.TakenChecker with a single
// SELECT EXISTS query:
//
//	pool, err := pg.Connect(ctx, cfg)
//	if err != nil {
//	    return err
//	}
//	defer pool.Close()
//
//	taken, err := pg.NewExistsChecker(pool, "auth.users", "username",
//	    pg.WithCaseInsensitive(),
//	    pg.WithCondition("deleted_at IS NULL"),
//	)
//	if err != nil {
//	    return err
//	}
//
//	rules := validator.DefaultUsernameRules()
//	rules.Taken = taken
//
// Table and column names are quoted with pgx.Identifier. The looked up value
// is always sent as a query argument.
//
// A failed query surfaces as kind.CheckUnavailable on the validated field.
package pg
