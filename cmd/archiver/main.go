package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"post_archiver/internal/config"
	"post_archiver/internal/fetcher"
	"post_archiver/internal/moderation"
	"post_archiver/internal/publisher"
	"post_archiver/internal/scheduler"
	"post_archiver/internal/service"
	"post_archiver/internal/source/fanbox"
	"post_archiver/internal/source/patreon"
	"post_archiver/internal/storage/postgres"
	"post_archiver/internal/storage/redis"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	sessionKey := flag.String("key", "", "session key (overrides config)")
	once := flag.Bool("once", false, "run a single ingest and exit")
	flag.Parse()

	// Setup logger
	logger := setupLogger("info")

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger = setupLogger(cfg.LogLevel)

	key := *sessionKey
	if key == "" {
		key = cfg.Archive.SessionKey
	}
	if key == "" {
		logger.Error("no session key: pass -key or set archive.session_key")
		os.Exit(1)
	}

	db, err := sqlx.Connect("postgres", cfg.Database.DSN())
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}
	logger.Info("connected to database")

	// The name cache is an optimization; run without it if redis is down.
	var nameCache service.NameCache
	cache, err := redis.NewNameCache(redis.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		TTL:      cfg.Redis.TTL,
	})
	if err != nil {
		logger.Warn("redis unavailable, resolver cache disabled", "error", err)
	} else {
		nameCache = cache
		defer cache.Close()
	}

	// Initialize RabbitMQ publisher
	rabbitMQ, err := publisher.NewRabbitMQ(publisher.Config{
		URL:        cfg.RabbitMQ.URL,
		Exchange:   cfg.RabbitMQ.Exchange,
		RoutingKey: cfg.RabbitMQ.RoutingKey,
		QueueName:  cfg.RabbitMQ.QueueName,
	}, logger)
	if err != nil {
		logger.Error("failed to connect to rabbitmq", "error", err)
		os.Exit(1)
	}
	defer rabbitMQ.Close()

	// Initialize stores
	postStore := postgres.NewPostStore(db)
	banStore := postgres.NewBanStore(db)
	lookupStore := postgres.NewLookupStore(db)
	txManager := postgres.NewTransactionManager(db)

	// Initialize clients
	fanboxClient := fanbox.New(fanbox.Config{
		BaseURL:        cfg.API.BaseURL,
		ProfileURL:     cfg.API.CreatorProfileURL,
		PageSize:       cfg.API.PageSize,
		Timeout:        cfg.API.Timeout,
		MaxAttempts:    cfg.API.Retry.MaxAttempts,
		InitialBackoff: cfg.API.Retry.InitialBackoff,
		MaxBackoff:     cfg.API.Retry.MaxBackoff,
	}, logger)

	patreonClient := patreon.New(cfg.API.LegacyProfileURL, nil, logger)
	flagClient := moderation.New(cfg.API.ModerationURL, logger)

	assetFetcher := fetcher.New(fetcher.Config{
		Root:    cfg.Archive.StorageRoot,
		Timeout: cfg.Archive.FetchTimeout,
	}, logger)

	resolverService := service.NewResolverService(
		postStore,
		lookupStore,
		nameCache,
		fanboxClient,
		patreonClient,
		logger,
	)

	archiveService := service.NewArchiveService(
		fanboxClient,
		postStore,
		banStore,
		flagClient,
		assetFetcher,
		txManager,
		rabbitMQ,
		resolverService,
		logger,
		cfg.Archive,
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	if *once {
		if _, err := archiveService.Ingest(ctx, key); err != nil {
			logger.Error("ingest failed", "error", err)
			os.Exit(1)
		}
		return
	}

	logger.Info("starting archiver",
		"service", fanboxClient.ServiceName(),
		"interval", cfg.Sync.Interval,
		"workers", cfg.Archive.Workers,
	)

	sched := scheduler.NewScheduler(archiveService, key, cfg.Sync.Interval, logger)
	if err := sched.Start(ctx); err != nil && err != context.Canceled {
		logger.Error("scheduler error", "error", err)
		os.Exit(1)
	}
}

func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	handler := slog.NewJSONHandler(os.Stdout, opts)
	return slog.New(handler)
}
