package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"post_archiver/internal/domain"
	"post_archiver/internal/moderation"
)

// Source walks the upstream listing API.
type Source interface {
	ServiceName() string
	SchemaVersion() int
	FirstPageURL() string
	FetchPage(ctx context.Context, sessionKey, url string) (*domain.Page, error)
}

// NameResolver resolves a creator id to a display name on one platform.
type NameResolver interface {
	CreatorName(ctx context.Context, creatorID string) (string, error)
}

type PostStore interface {
	Exists(ctx context.Context, id, service string) (bool, error)
	Insert(ctx context.Context, post *domain.Post) error
	ListCreators(ctx context.Context) ([]domain.CreatorRef, error)
}

type BanStore interface {
	Exists(ctx context.Context, creatorID, service string) (bool, error)
}

type LookupStore interface {
	Exists(ctx context.Context, creatorID string, version int, service string) (bool, error)
	Insert(ctx context.Context, lookup *domain.CreatorLookup) error
}

// FlagChecker is the moderation collaborator. Its outcome is never read by
// the coordinator; failures are logged and ignored.
type FlagChecker interface {
	CheckForFlags(ctx context.Context, q moderation.FlagQuery) error
}

// AssetFetcher downloads one remote asset and returns the filename actually
// used on disk, which may differ from the hint.
type AssetFetcher interface {
	Fetch(ctx context.Context, remoteURL, destDir, nameHint, sessionKey string) (string, error)
}

// NameCache fronts the lookup store during resolution sweeps.
type NameCache interface {
	Get(ctx context.Context, creatorID string, version int, service string) (string, bool, error)
	Set(ctx context.Context, creatorID string, version int, service, name string) error
}

type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type Publisher interface {
	Publish(ctx context.Context, post *domain.Post) error
	Close() error
}

// Resolver is the post-ingestion creator-name sweep.
type Resolver interface {
	ResolveAll(ctx context.Context) (*domain.ResolveStats, error)
}
