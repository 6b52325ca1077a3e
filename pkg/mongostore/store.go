package mongostore

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/dmitrymomot/fieldrules/pkg/rules"
)

// Store answers the rules.Store existence contract against MongoDB. A rule
// spec's table maps to a collection and its column to a document field; the
// query's exclusion pair becomes a $ne conjunct and its narrowing pair an
// equality conjunct.
type Store struct {
	def    *mongo.Database
	groups map[string]*mongo.Database
}

// NewStore creates a Store backed by the given default database.
func NewStore(db *mongo.Database) *Store {
	return &Store{def: db, groups: make(map[string]*mongo.Database)}
}

// AddGroup registers a named connection group. Registration is expected at
// startup, before the store is shared across goroutines.
func (s *Store) AddGroup(name string, db *mongo.Database) {
	s.groups[name] = db
}

// Exists reports whether at least one document in the collection named by
// q.Table has the q.Column field equal to q.Value, honoring the query's
// exclusion or narrowing pair.
func (s *Store) Exists(ctx context.Context, q rules.ExistsQuery) (bool, error) {
	db, err := s.database(q.Group)
	if err != nil {
		return false, err
	}

	// Limit 1: existence is all we need, never a full count.
	n, err := db.Collection(q.Table).CountDocuments(ctx, buildFilter(q), options.Count().SetLimit(1))
	if err != nil {
		return false, errors.Join(ErrExistsQueryFailed, err)
	}
	return n > 0, nil
}

func buildFilter(q rules.ExistsQuery) bson.M {
	filter := bson.M{q.Column: q.Value}
	switch {
	case q.Exclude.Active():
		filter[q.Exclude.Column] = bson.M{"$ne": q.Exclude.Value}
	case q.Narrow.Active():
		filter[q.Narrow.Column] = q.Narrow.Value
	}
	return filter
}

func (s *Store) database(group string) (*mongo.Database, error) {
	if group == "" {
		return s.def, nil
	}
	if db, ok := s.groups[group]; ok {
		return db, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownGroup, group)
}
