package pgstore

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dmitrymomot/fieldrules/pkg/rules"
)

// identRe limits table and column names to plain SQL identifiers. Rule spec
// strings come from application configuration, but they still interpolate
// into SQL as identifiers and must never carry quoting or punctuation.
var identRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Store answers the rules.Store existence contract against one or more
// PostgreSQL connection pools. The zero group targets the default pool;
// named groups let a submission route uniqueness checks to a specific
// database.
type Store struct {
	def    *pgxpool.Pool
	groups map[string]*pgxpool.Pool
}

// New creates a Store backed by the given default pool.
func New(pool *pgxpool.Pool) *Store {
	return &Store{def: pool, groups: make(map[string]*pgxpool.Pool)}
}

// AddGroup registers a named connection group. Registration is expected at
// startup, before the store is shared across goroutines.
func (s *Store) AddGroup(name string, pool *pgxpool.Pool) {
	s.groups[name] = pool
}

// Exists reports whether at least one row in q.Table has q.Column equal to
// q.Value, honoring the query's exclusion or narrowing pair.
func (s *Store) Exists(ctx context.Context, q rules.ExistsQuery) (bool, error) {
	pool, err := s.pool(q.Group)
	if err != nil {
		return false, err
	}

	sql, args, err := buildExistsSQL(q)
	if err != nil {
		return false, err
	}

	var exists bool
	if err := pool.QueryRow(ctx, sql, args...).Scan(&exists); err != nil {
		return false, errors.Join(ErrExistsQueryFailed, err)
	}
	return exists, nil
}

func (s *Store) pool(group string) (*pgxpool.Pool, error) {
	if group == "" {
		return s.def, nil
	}
	if p, ok := s.groups[group]; ok {
		return p, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownGroup, group)
}

func buildExistsSQL(q rules.ExistsQuery) (string, []any, error) {
	if !identRe.MatchString(q.Table) || !identRe.MatchString(q.Column) {
		return "", nil, fmt.Errorf("%w: bad identifier in %s.%s", rules.ErrInvalidStoreSpec, q.Table, q.Column)
	}

	sql := fmt.Sprintf("SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1",
		pgx.Identifier{q.Table}.Sanitize(), pgx.Identifier{q.Column}.Sanitize())
	args := []any{q.Value}

	switch {
	case q.Exclude.Active():
		if !identRe.MatchString(q.Exclude.Column) {
			return "", nil, fmt.Errorf("%w: bad exclusion column %q", rules.ErrInvalidStoreSpec, q.Exclude.Column)
		}
		sql += fmt.Sprintf(" AND %s <> $2", pgx.Identifier{q.Exclude.Column}.Sanitize())
		args = append(args, q.Exclude.Value)
	case q.Narrow.Active():
		if !identRe.MatchString(q.Narrow.Column) {
			return "", nil, fmt.Errorf("%w: bad narrowing column %q", rules.ErrInvalidStoreSpec, q.Narrow.Column)
		}
		sql += fmt.Sprintf(" AND %s = $2", pgx.Identifier{q.Narrow.Column}.Sanitize())
		args = append(args, q.Narrow.Value)
	}

	return sql + ")", args, nil
}
