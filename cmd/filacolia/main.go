package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/kailas-cloud/filacolia/internal/config"
	dbRedis "github.com/kailas-cloud/filacolia/internal/db/redis"
	"github.com/kailas-cloud/filacolia/internal/domain/corpus"
	logpkg "github.com/kailas-cloud/filacolia/internal/logger"
	"github.com/kailas-cloud/filacolia/internal/metrics"
	"github.com/kailas-cloud/filacolia/internal/repository/answercache"
	chiTransport "github.com/kailas-cloud/filacolia/internal/transport/chi"
	openaiProbe "github.com/kailas-cloud/filacolia/internal/transport/openai"
	"github.com/kailas-cloud/filacolia/internal/usecase/chat"
	healthuc "github.com/kailas-cloud/filacolia/internal/usecase/health"
	"github.com/kailas-cloud/filacolia/internal/usecase/rank"
	"github.com/kailas-cloud/filacolia/internal/version"
)

func main() {
	// Load configuration based on ENV
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting filacolia chat server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.String("cache_driver", cfg.Cache.Driver),
		zap.Bool("llm_enabled", cfg.LLM.Enabled),
	)

	// Register metrics explicitly (no init())
	metrics.Register()

	docs := corpus.Default()
	logger.Info("Corpus loaded", zap.Int("documents", docs.Len()))

	// Pass nil interfaces (not typed nil pointers) for disabled components.
	var (
		answers     chat.AnswerCache
		cachePinger healthuc.CachePinger
		llmChecker  healthuc.LLMChecker
	)

	if cfg.Cache.Enabled() {
		store, err := dbRedis.NewStore(dbRedis.Config{
			Addrs:    cfg.Cache.Addrs,
			Password: cfg.Cache.Password,
		})
		if err != nil {
			logger.Fatal("Failed to create cache store", zap.Error(err))
		}
		defer store.Close()

		readiness := time.Duration(cfg.Cache.ReadinessTimeout) * time.Second
		if err := store.WaitForReady(context.Background(), readiness); err != nil {
			logger.Fatal("Cache not ready", zap.Error(err))
		}
		logger.Info("Connected to cache", zap.Strings("addrs", cfg.Cache.Addrs))

		answers = answercache.New(store, docs.Fingerprint(), cfg.Cache.TTL(), metrics.AnswerCacheTotal, logger)
		cachePinger = store
	}

	if cfg.LLM.Enabled {
		llmChecker = openaiProbe.NewProbe(&openaiProbe.Config{
			APIKey:  cfg.LLM.APIKey,
			BaseURL: cfg.LLM.BaseURL,
			Models:  cfg.LLM.Models,
			Logger:  logger,
		})
		logger.Info("LLM runtime probe enabled", zap.String("base_url", cfg.LLM.BaseURL))
	}

	chatSvc := chat.New(rank.New(docs), answers)
	healthSvc := healthuc.New(cachePinger, llmChecker)

	server := chiTransport.NewServer(chatSvc, healthSvc, logger, int64(cfg.HTTP.MaxBodyBytes)).
		WithRateLimit(cfg.HTTP.RateLimitRPS, cfg.HTTP.RateLimitBurst)

	r := chi.NewRouter()
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiTransport.JSONRecoverer(logger))
	r.Use(chiTransport.WideEventMiddleware(logger))
	r.Use(metrics.Middleware())
	server.Routes(r)

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
}
