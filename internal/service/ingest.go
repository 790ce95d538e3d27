package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"post_archiver/internal/config"
	"post_archiver/internal/domain"
	"post_archiver/internal/moderation"
)

// ArchiveService drives one crawl of the configured creator feed: it walks
// the paginated listing, gates each post through the ban and flag checks,
// normalizes bodies, downloads assets, and persists new records. When the
// last page has been processed it triggers the creator-resolution sweep.
type ArchiveService struct {
	source    Source
	posts     PostStore
	bans      BanStore
	flags     FlagChecker
	fetcher   AssetFetcher
	txManager TransactionManager
	publisher Publisher
	resolver  Resolver
	logger    *slog.Logger
	cfg       config.ArchiveConfig
}

func NewArchiveService(
	source Source,
	posts PostStore,
	bans BanStore,
	flags FlagChecker,
	fetcher AssetFetcher,
	txManager TransactionManager,
	publisher Publisher,
	resolver Resolver,
	logger *slog.Logger,
	cfg config.ArchiveConfig,
) *ArchiveService {
	return &ArchiveService{
		source:    source,
		posts:     posts,
		bans:      bans,
		flags:     flags,
		fetcher:   fetcher,
		txManager: txManager,
		publisher: publisher,
		resolver:  resolver,
		logger:    logger.With("service", source.ServiceName()),
		cfg:       cfg,
	}
}

// Ingest walks the listing from the first page, following nextUrl cursors.
// Posts are processed concurrently in a bounded worker pool; pagination does
// not wait for a page's batch before fetching the next page. Only a listing
// fetch that fails after retries is fatal. The resolver sweep runs exactly
// once, after the last page's workers drain.
func (s *ArchiveService) Ingest(ctx context.Context, sessionKey string) (*domain.IngestStats, error) {
	start := time.Now()
	stats := &domain.IngestStats{Service: s.source.ServiceName()}
	var mu sync.Mutex

	s.logger.Info("starting ingest", "workers", s.cfg.Workers)

	g := new(errgroup.Group)
	g.SetLimit(s.cfg.Workers)

	var pageErr error
	for url := s.source.FirstPageURL(); url != ""; {
		page, err := s.source.FetchPage(ctx, sessionKey, url)
		if err != nil {
			pageErr = fmt.Errorf("fetch listing page: %w", err)
			break
		}

		mu.Lock()
		stats.Pages++
		stats.Fetched += len(page.Items)
		mu.Unlock()

		for i := range page.Items {
			item := page.Items[i]
			g.Go(func() error {
				s.processPost(ctx, sessionKey, item, stats, &mu)
				return nil
			})
		}

		url = page.NextURL
	}

	_ = g.Wait()

	stats.Duration = time.Since(start)

	if pageErr != nil {
		s.logger.Error("ingest aborted", "error", pageErr, "pages", stats.Pages)
		return stats, pageErr
	}

	if s.resolver != nil {
		resolveStats, err := s.resolver.ResolveAll(ctx)
		if err != nil {
			s.logger.Error("resolver sweep failed", "error", err)
		} else {
			stats.Resolve = resolveStats
		}
	}

	s.logger.Info("ingest completed",
		"pages", stats.Pages,
		"fetched", stats.Fetched,
		"archived", stats.Archived,
		"locked", stats.Locked,
		"banned", stats.Banned,
		"existing", stats.Existing,
		"errors", stats.Errors,
		"duration", stats.Duration,
	)

	return stats, nil
}

// processPost handles one post summary end to end. Failures are counted and
// leave the post un-persisted so the next run picks it up again; they never
// abort the crawl.
func (s *ArchiveService) processPost(ctx context.Context, sessionKey string, item domain.PostSummary, stats *domain.IngestStats, mu *sync.Mutex) {
	service := s.source.ServiceName()
	logger := s.logger.With("post_id", item.ID, "creator_id", item.CreatorID)

	count := func(field *int) {
		mu.Lock()
		*field++
		mu.Unlock()
	}

	// Locked content carries no body; nothing to archive.
	if item.Body == nil {
		count(&stats.Locked)
		return
	}

	banned, err := s.bans.Exists(ctx, item.CreatorID, service)
	if err != nil {
		logger.Error("ban check failed", "error", err)
		count(&stats.Errors)
		return
	}
	if banned {
		count(&stats.Banned)
		return
	}

	if err := s.flags.CheckForFlags(ctx, moderation.FlagQuery{
		Service:  service,
		Entity:   "user",
		EntityID: item.CreatorID,
		ID:       item.ID,
	}); err != nil {
		logger.Warn("flag check failed", "error", err)
	}

	exists, err := s.posts.Exists(ctx, item.ID, service)
	if err != nil {
		logger.Error("existence check failed", "error", err)
		count(&stats.Errors)
		return
	}
	if exists {
		count(&stats.Existing)
		return
	}

	post := &domain.Post{
		ID:          item.ID,
		Version:     s.source.SchemaVersion(),
		Service:     service,
		Title:       decodeEscapes(item.Title),
		CreatorID:   item.CreatorID,
		Type:        item.Type,
		PublishedAt: item.PublishedAt,
		AddedAt:     time.Now().UTC(),
		Attachments: []domain.Asset{},
	}

	if err := s.collectAssets(ctx, sessionKey, item.Body, post); err != nil {
		logger.Error("asset download failed", "error", err)
		count(&stats.Errors)
		return
	}

	content, err := s.normalize(ctx, item.Body, sessionKey, bodyRef{
		postID:    post.ID,
		creatorID: post.CreatorID,
		service:   service,
	})
	if err != nil {
		logger.Error("body normalization failed", "error", err)
		count(&stats.Errors)
		return
	}
	post.Content = nl2br(content)

	err = s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		return s.posts.Insert(txCtx, post)
	})
	if err != nil {
		logger.Error("persist failed", "error", err)
		count(&stats.Errors)
		return
	}

	if s.publisher != nil {
		if err := s.publisher.Publish(ctx, post); err != nil {
			logger.Warn("publish failed", "error", err)
		}
	}

	count(&stats.Archived)
	logger.Debug("post archived", "attachments", len(post.Attachments))
}

// collectAssets walks the body's image and file collections sequentially, in
// source order. Index 0 of the first collection processed while the primary
// slot is unclaimed becomes the post's file; everything else becomes an
// attachment in encounter order. The sequential walk is what makes primary
// election deterministic.
func (s *ArchiveService) collectAssets(ctx context.Context, sessionKey string, body *domain.Body, post *domain.Post) error {
	filesLocation := "/files/" + post.Service
	attachmentsLocation := "/attachments/" + post.Service

	for _, collection := range [][]domain.FileInfo{body.Images, body.Files} {
		for i, info := range collection {
			primary := i == 0 && post.File == nil
			location := attachmentsLocation
			if primary {
				location = filesLocation
			}
			destDir := fmt.Sprintf("%s/%s/%s", location, post.CreatorID, post.ID)

			name, err := s.fetcher.Fetch(ctx, decodeEscapes(info.URL), destDir, info.FileName(), sessionKey)
			if err != nil {
				return fmt.Errorf("fetch asset %s: %w", info.ID, err)
			}

			if primary {
				post.File = &domain.Asset{
					Name: info.FileName(),
					Path: destDir + "/" + name,
				}
			} else {
				post.Attachments = append(post.Attachments, domain.Asset{
					ID:   info.ID,
					Name: info.FileName(),
					Path: fmt.Sprintf("%s/%s/%s/%s", attachmentsLocation, post.CreatorID, post.ID, name),
				})
			}
		}
	}

	return nil
}
