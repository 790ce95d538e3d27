package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"post_archiver/internal/domain"
)

type LookupStore struct {
	db *sqlx.DB
}

func NewLookupStore(db *sqlx.DB) *LookupStore {
	return &LookupStore{db: db}
}

func (s *LookupStore) Exists(ctx context.Context, creatorID string, version int, service string) (bool, error) {
	var exists bool
	err := s.db.GetContext(ctx, &exists,
		"SELECT EXISTS(SELECT 1 FROM creator_lookup WHERE creator_id = $1 AND version = $2 AND service = $3)",
		creatorID, version, service,
	)
	return exists, err
}

// Insert writes a resolved name. Lookups are insert-once; a concurrent
// sweep losing the race is a no-op.
func (s *LookupStore) Insert(ctx context.Context, lookup *domain.CreatorLookup) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO creator_lookup (creator_id, version, service, name)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (creator_id, version, service) DO NOTHING`,
		lookup.CreatorID, lookup.Version, lookup.Service, lookup.Name,
	)
	return err
}
