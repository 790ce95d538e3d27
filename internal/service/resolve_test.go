package service

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"post_archiver/internal/domain"
	"post_archiver/internal/service/mocks"
)

type ResolverServiceTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	posts   *mocks.MockPostStore
	lookups *mocks.MockLookupStore
	cache   *mocks.MockNameCache
	fanbox  *mocks.MockNameResolver
	legacy  *mocks.MockNameResolver

	service *ResolverService
	logger  *slog.Logger
}

func (s *ResolverServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	s.posts = mocks.NewMockPostStore(s.ctrl)
	s.lookups = mocks.NewMockLookupStore(s.ctrl)
	s.cache = mocks.NewMockNameCache(s.ctrl)
	s.fanbox = mocks.NewMockNameResolver(s.ctrl)
	s.legacy = mocks.NewMockNameResolver(s.ctrl)

	s.logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	s.service = NewResolverService(s.posts, s.lookups, s.cache, s.fanbox, s.legacy, s.logger)
}

func (s *ResolverServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestResolverServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ResolverServiceTestSuite))
}

func (s *ResolverServiceTestSuite) TestResolveAll_NewCreator() {
	ctx := context.Background()
	ref := domain.CreatorRef{CreatorID: "c1", Version: 2, Service: "fanbox"}

	s.posts.EXPECT().ListCreators(ctx).Return([]domain.CreatorRef{ref}, nil)
	s.cache.EXPECT().Get(ctx, "c1", 2, "fanbox").Return("", false, nil)
	s.lookups.EXPECT().Exists(ctx, "c1", 2, "fanbox").Return(false, nil)
	s.fanbox.EXPECT().CreatorName(ctx, "c1").Return("Alice", nil)
	s.lookups.EXPECT().Insert(ctx, &domain.CreatorLookup{
		CreatorID: "c1",
		Version:   2,
		Service:   "fanbox",
		Name:      "Alice",
	}).Return(nil)
	s.cache.EXPECT().Set(ctx, "c1", 2, "fanbox", "Alice").Return(nil)

	stats, err := s.service.ResolveAll(ctx)

	s.NoError(err)
	s.Equal(1, stats.Creators)
	s.Equal(1, stats.Resolved)
	s.Equal(0, stats.Errors)
}

func (s *ResolverServiceTestSuite) TestResolveAll_LegacyVersionUsesLegacyResolver() {
	ctx := context.Background()
	ref := domain.CreatorRef{CreatorID: "c9", Version: 1, Service: "patreon"}

	s.posts.EXPECT().ListCreators(ctx).Return([]domain.CreatorRef{ref}, nil)
	s.cache.EXPECT().Get(ctx, "c9", 1, "patreon").Return("", false, nil)
	s.lookups.EXPECT().Exists(ctx, "c9", 1, "patreon").Return(false, nil)
	s.legacy.EXPECT().CreatorName(ctx, "c9").Return("bob", nil)
	s.lookups.EXPECT().Insert(ctx, gomock.Any()).Return(nil)
	s.cache.EXPECT().Set(ctx, "c9", 1, "patreon", "bob").Return(nil)

	stats, err := s.service.ResolveAll(ctx)

	s.NoError(err)
	s.Equal(1, stats.Resolved)
}

func (s *ResolverServiceTestSuite) TestResolveAll_KnownCreatorMakesNoExternalCalls() {
	ctx := context.Background()
	ref := domain.CreatorRef{CreatorID: "c1", Version: 2, Service: "fanbox"}

	s.posts.EXPECT().ListCreators(ctx).Return([]domain.CreatorRef{ref}, nil)
	s.cache.EXPECT().Get(ctx, "c1", 2, "fanbox").Return("", false, nil)
	s.lookups.EXPECT().Exists(ctx, "c1", 2, "fanbox").Return(true, nil)
	// No CreatorName, no Insert.

	stats, err := s.service.ResolveAll(ctx)

	s.NoError(err)
	s.Equal(1, stats.Cached)
	s.Equal(0, stats.Resolved)
}

func (s *ResolverServiceTestSuite) TestResolveAll_CacheHitSkipsStore() {
	ctx := context.Background()
	ref := domain.CreatorRef{CreatorID: "c1", Version: 2, Service: "fanbox"}

	s.posts.EXPECT().ListCreators(ctx).Return([]domain.CreatorRef{ref}, nil)
	s.cache.EXPECT().Get(ctx, "c1", 2, "fanbox").Return("Alice", true, nil)
	// Neither the lookup store nor the profile endpoint is touched.

	stats, err := s.service.ResolveAll(ctx)

	s.NoError(err)
	s.Equal(1, stats.Cached)
}

func (s *ResolverServiceTestSuite) TestResolveAll_FailureDoesNotAbortSweep() {
	ctx := context.Background()
	broken := domain.CreatorRef{CreatorID: "c1", Version: 2, Service: "fanbox"}
	fine := domain.CreatorRef{CreatorID: "c2", Version: 2, Service: "fanbox"}

	s.posts.EXPECT().ListCreators(ctx).Return([]domain.CreatorRef{broken, fine}, nil)

	s.cache.EXPECT().Get(ctx, "c1", 2, "fanbox").Return("", false, nil)
	s.lookups.EXPECT().Exists(ctx, "c1", 2, "fanbox").Return(false, nil)
	s.fanbox.EXPECT().CreatorName(ctx, "c1").Return("", errors.New("profile 404"))

	s.cache.EXPECT().Get(ctx, "c2", 2, "fanbox").Return("", false, nil)
	s.lookups.EXPECT().Exists(ctx, "c2", 2, "fanbox").Return(false, nil)
	s.fanbox.EXPECT().CreatorName(ctx, "c2").Return("Carol", nil)
	s.lookups.EXPECT().Insert(ctx, gomock.Any()).Return(nil)
	s.cache.EXPECT().Set(ctx, "c2", 2, "fanbox", "Carol").Return(nil)

	stats, err := s.service.ResolveAll(ctx)

	s.NoError(err)
	s.Equal(1, stats.Errors)
	s.Equal(1, stats.Resolved)
}

func (s *ResolverServiceTestSuite) TestResolveAll_NilCacheStillResolves() {
	ctx := context.Background()
	ref := domain.CreatorRef{CreatorID: "c1", Version: 2, Service: "fanbox"}

	service := NewResolverService(s.posts, s.lookups, nil, s.fanbox, s.legacy, s.logger)

	s.posts.EXPECT().ListCreators(ctx).Return([]domain.CreatorRef{ref}, nil)
	s.lookups.EXPECT().Exists(ctx, "c1", 2, "fanbox").Return(false, nil)
	s.fanbox.EXPECT().CreatorName(ctx, "c1").Return("Alice", nil)
	s.lookups.EXPECT().Insert(ctx, gomock.Any()).Return(nil)

	stats, err := service.ResolveAll(ctx)

	s.NoError(err)
	s.Equal(1, stats.Resolved)
}

func (s *ResolverServiceTestSuite) TestResolveAll_UnknownSchemaIsSkipped() {
	ctx := context.Background()
	ref := domain.CreatorRef{CreatorID: "c1", Version: 3, Service: "other"}

	s.posts.EXPECT().ListCreators(ctx).Return([]domain.CreatorRef{ref}, nil)
	s.cache.EXPECT().Get(ctx, "c1", 3, "other").Return("", false, nil)
	s.lookups.EXPECT().Exists(ctx, "c1", 3, "other").Return(false, nil)

	stats, err := s.service.ResolveAll(ctx)

	s.NoError(err)
	s.Equal(0, stats.Resolved)
	s.Equal(0, stats.Errors)
}
