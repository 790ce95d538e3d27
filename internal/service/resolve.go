package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"post_archiver/internal/domain"
)

// ResolverService is the post-ingestion sweep that fills in human-readable
// creator names. It runs separately from ingestion so a crawl never pays one
// extra profile call per post: each distinct creator is resolved at most
// once, ever.
type ResolverService struct {
	posts   PostStore
	lookups LookupStore
	cache   NameCache
	fanbox  NameResolver
	legacy  NameResolver
	logger  *slog.Logger
}

func NewResolverService(
	posts PostStore,
	lookups LookupStore,
	cache NameCache,
	fanbox NameResolver,
	legacy NameResolver,
	logger *slog.Logger,
) *ResolverService {
	return &ResolverService{
		posts:   posts,
		lookups: lookups,
		cache:   cache,
		fanbox:  fanbox,
		legacy:  legacy,
		logger:  logger.With("component", "resolver"),
	}
}

// ResolveAll sweeps the archive's creators, most recently ingested first,
// and resolves a display name for each one not already known. One creator's
// failure never stops the sweep.
func (r *ResolverService) ResolveAll(ctx context.Context) (*domain.ResolveStats, error) {
	start := time.Now()

	refs, err := r.posts.ListCreators(ctx)
	if err != nil {
		return nil, fmt.Errorf("list creators: %w", err)
	}

	stats := &domain.ResolveStats{Creators: len(refs)}

	for _, ref := range refs {
		if err := r.resolveOne(ctx, ref, stats); err != nil {
			r.logger.Warn("resolution failed",
				"creator_id", ref.CreatorID,
				"version", ref.Version,
				"service", ref.Service,
				"error", err,
			)
			stats.Errors++
		}
	}

	stats.Duration = time.Since(start)
	r.logger.Info("sweep completed",
		"creators", stats.Creators,
		"resolved", stats.Resolved,
		"cached", stats.Cached,
		"errors", stats.Errors,
		"duration", stats.Duration,
	)

	return stats, nil
}

func (r *ResolverService) resolveOne(ctx context.Context, ref domain.CreatorRef, stats *domain.ResolveStats) error {
	if r.cache != nil {
		_, hit, err := r.cache.Get(ctx, ref.CreatorID, ref.Version, ref.Service)
		if err != nil {
			r.logger.Debug("cache read failed", "creator_id", ref.CreatorID, "error", err)
		} else if hit {
			stats.Cached++
			return nil
		}
	}

	known, err := r.lookups.Exists(ctx, ref.CreatorID, ref.Version, ref.Service)
	if err != nil {
		return fmt.Errorf("lookup check: %w", err)
	}
	if known {
		stats.Cached++
		return nil
	}

	var name string
	switch {
	case ref.Version == 1:
		name, err = r.legacy.CreatorName(ctx, ref.CreatorID)
	case ref.Version == 2 && ref.Service == "fanbox":
		name, err = r.fanbox.CreatorName(ctx, ref.CreatorID)
	default:
		r.logger.Debug("no resolver for schema",
			"version", ref.Version,
			"service", ref.Service,
		)
		return nil
	}
	if err != nil {
		return fmt.Errorf("resolve name: %w", err)
	}

	lookup := &domain.CreatorLookup{
		CreatorID: ref.CreatorID,
		Version:   ref.Version,
		Service:   ref.Service,
		Name:      decodeEscapes(name),
	}
	if err := r.lookups.Insert(ctx, lookup); err != nil {
		return fmt.Errorf("insert lookup: %w", err)
	}

	if r.cache != nil {
		if err := r.cache.Set(ctx, ref.CreatorID, ref.Version, ref.Service, lookup.Name); err != nil {
			r.logger.Debug("cache write failed", "creator_id", ref.CreatorID, "error", err)
		}
	}

	stats.Resolved++
	return nil
}
