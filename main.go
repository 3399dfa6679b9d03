package main

import (
	"log/slog"
	"os"

	"library/cache"
	"library/config"
	"library/db"
	"library/library"
	"library/logger"
	"library/notification"
	"library/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{
		Environment: cfg.Environment,
		Level:       logger.ParseLevel(cfg.LogLevel),
	})

	activity, journalCache := setupCaches(cfg, log)
	catalog := setupCatalog(cfg, log)

	journal := notification.NewJournal(journalCache)
	notifier := notification.NewService(
		notification.NewConsoleEmailSender(os.Stdout),
		notification.NewConsoleSmsSender(os.Stdout),
		notification.WithJournal(journal),
		notification.WithLogger(log),
	)

	server := &service.Server{
		Library: library.New(notifier, library.Recipients{
			AdminEmail: cfg.AdminEmail,
			AdminPhone: cfg.AdminPhone,
		}),
		Loans:    library.NewLoanManager(notifier),
		Catalog:  catalog,
		Activity: activity,
		Journal:  journal,
		Logger:   log,
	}

	log.Info("starting library service", "port", cfg.Port, "environment", cfg.Environment)
	if err := server.SetupRoutes().Run(":" + cfg.Port); err != nil {
		log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func setupCaches(cfg *config.Config, log *slog.Logger) (cache.RequestCacher, cache.RequestCacher) {
	if cfg.RedisURL == "" {
		log.Info("REDIS_URL not set, caching activity in memory")
		return cache.CreateMemoryCache(cfg.MaxCachedRequests), cache.CreateMemoryCache(cfg.MaxCachedRequests)
	}

	redisClient, err := config.SetupRedis(cfg.RedisURL)
	if err != nil {
		log.Error("failed to connect to redis", "url", cfg.RedisURL, "error", err)
		os.Exit(1)
	}

	return cache.CreateRedisCache(redisClient, "activity:", cfg.MaxCachedRequests),
		cache.CreateRedisCache(redisClient, "notifications:", cfg.MaxCachedRequests)
}

func setupCatalog(cfg *config.Config, log *slog.Logger) db.Catalog {
	if cfg.ElasticURL == "" {
		log.Info("ELASTIC_URL not set, keeping the catalog in memory")
		return db.NewMemoryCatalog()
	}

	elasticClient, err := config.SetupElasticSearch(cfg.ElasticURL)
	if err != nil {
		log.Error("failed to connect to elasticsearch", "url", cfg.ElasticURL, "error", err)
		os.Exit(1)
	}

	return db.NewElasticCatalog(cfg.ElasticIndex, elasticClient)
}
