// Package redis backs username availability checks with a Redis set.
//
// SetChecker implements validator.TakenChecker by asking SISMEMBER whether a
// value belongs to a set, which makes it a drop-in for
// validator.UsernameAvailable and validator.UsernameRules:
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//	    return err
//	}
//	defer client.Close()
//
//	taken, err := redis.NewSetChecker(client, cfg.UsernamesKey,
//	    redis.WithNormalizer(strings.ToLower),
//	)
//	if err != nil {
//	    return err
//	}
//
//	rules := validator.DefaultUsernameRules()
//	rules.Taken = taken
//	errs := validator.Validate(rules.ForContext(ctx, "username", form.Username)...)
//
// A failed lookup surfaces as kind.CheckUnavailable on the field, never as a
// false "available".
//
// Connect retries the initial ping according to Config, which can be filled
// from the environment with pkg/config.
package redis
