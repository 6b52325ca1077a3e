// Package mongostore implements the rules.Store existence contract on top
// of MongoDB using the official driver.
//
// A rule spec like "users.email" addresses the users collection's email
// field; an exclusion pair translates to a $ne filter and a narrowing pair
// to an additional equality filter. Existence is checked with a
// count-limited query so a match is never scanned past.
//
// Key features:
//   - Environment-driven configuration eliminates deployment complexity
//   - Built-in retry logic handles transient connection failures gracefully
//   - Named connection groups for submissions that target a specific database
//   - Health check integration for Kubernetes/Docker orchestration
//   - Error types compatible with errors.Is() for clean error handling
//
// # Usage
//
//	var cfg mongostore.Config
//	config.MustLoad(&cfg)
//
//	db, err := mongostore.NewWithDatabase(ctx, cfg)
//	if err != nil {
//		return err
//	}
//
//	store := mongostore.NewStore(db)
//	err = rules.Apply(
//		rules.IsNotUnique(ctx, store, "invite", code, "invites.code", data),
//	)
//
// # Error Handling
//
// Connection and query failures are wrapped in package sentinels via
// errors.Join so callers can classify them with errors.Is() while the
// driver error stays unwrappable underneath.
package mongostore
