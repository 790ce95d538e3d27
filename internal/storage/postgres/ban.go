package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// BanStore reads the ban list maintained by the moderation workflow.
// This side never writes it.
type BanStore struct {
	db *sqlx.DB
}

func NewBanStore(db *sqlx.DB) *BanStore {
	return &BanStore{db: db}
}

func (s *BanStore) Exists(ctx context.Context, creatorID, service string) (bool, error) {
	var exists bool
	err := s.db.GetContext(ctx, &exists,
		"SELECT EXISTS(SELECT 1 FROM bans WHERE creator_id = $1 AND service = $2)",
		creatorID, service,
	)
	return exists, err
}
