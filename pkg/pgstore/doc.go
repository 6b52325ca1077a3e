// Package pgstore implements the rules.Store existence contract on top of
// PostgreSQL using the pgx/v5 driver. It offers a thin abstraction around
// connection pooling, health checks, and common error helpers so that a
// validation service can bootstrap a resilient store backend with only a
// few lines of code.
//
// # Architecture
//
// The package exposes three cooperating building blocks:
//
//   - Config – a declarative struct whose fields are populated from
//     environment variables via github.com/caarlos0/env. It controls
//     connection pool limits and retry behaviour.
//
//   - Connect – opens a *pgxpool.Pool based on Config, retrying with
//     back-off until the database becomes available.
//
//   - Store – wraps one default pool plus optional named connection groups
//     and translates a rules.ExistsQuery into a single
//     SELECT EXISTS(...) statement with parameterized values and sanitized
//     identifiers.
//
// # Usage
//
//	var cfg pgstore.Config
//	config.MustLoad(&cfg)
//
//	pool, err := pgstore.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	defer pool.Close()
//
//	store := pgstore.New(pool)
//	err = rules.Apply(
//		rules.IsUnique(ctx, store, "email", email, "users.email", data),
//	)
//
// # Error Handling
//
// Table and column names from rule specs are validated against a plain
// identifier pattern and rejected as rules.ErrInvalidStoreSpec before any
// SQL is built; values always travel as query parameters. Driver failures
// are wrapped with ErrExistsQueryFailed via errors.Join so callers can both
// classify and unwrap them.
package pgstore
