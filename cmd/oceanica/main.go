package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/MyNameIsWhaaat/oceanica/internal/ai"
	"github.com/MyNameIsWhaaat/oceanica/internal/ai/cache"
	"github.com/MyNameIsWhaaat/oceanica/internal/ai/gemini"
	aihttp "github.com/MyNameIsWhaaat/oceanica/internal/ai/handler/http"
	communityhttp "github.com/MyNameIsWhaaat/oceanica/internal/community/handler/http"
	"github.com/MyNameIsWhaaat/oceanica/internal/community/seed"
	"github.com/MyNameIsWhaaat/oceanica/internal/community/service"
	"github.com/MyNameIsWhaaat/oceanica/internal/community/storage/inmemory"
	"github.com/MyNameIsWhaaat/oceanica/internal/config"
	"github.com/MyNameIsWhaaat/oceanica/internal/logger"
	"github.com/MyNameIsWhaaat/oceanica/internal/retry"
	"github.com/MyNameIsWhaaat/oceanica/internal/server"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "oceanica:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log, err := logger.New(cfg.Log.Level, cfg.Log.Pretty, os.Stdout)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	c, closeCache, err := newCache(ctx, cfg.Redis, cfg.Cache.Cleanup, log)
	if err != nil {
		return err
	}
	defer closeCache()

	provider, err := gemini.New(ctx, gemini.Config{
		APIKey:     cfg.AI.APIKey,
		TextModel:  cfg.AI.TextModel,
		ImageModel: cfg.AI.ImageModel,
	})
	if err != nil {
		return err
	}
	if !provider.Configured() {
		log.Warn().Msg("GEMINI_API_KEY is not set, AI features will report a configuration error")
	}

	retrier := retry.New(retry.Policy{
		MaxAttempts: cfg.AI.RetryAttempts,
		BaseDelay:   cfg.AI.RetryBaseDelay,
	}, ai.IsRetryable, retry.WithLogger(log))

	aiSvc := ai.NewService(provider, c, retrier, ai.Options{
		FactCount: cfg.AI.FactCount,
		FactsTTL:  cfg.Cache.FactsTTL,
		ImageTTL:  cfg.Cache.ImageTTL,
		Timeout:   cfg.AI.RequestTimeout,
		Budget:    cfg.AI.CallBudget,
	}, log)

	var repoOpts []inmemory.Option
	if n := cfg.Community.SeedPosts; n > 0 {
		v := uint64(cfg.Community.SeedValue)
		repoOpts = append(repoOpts, inmemory.WithPosts(seed.Posts(n, rand.New(rand.NewPCG(v, v)))...))
		log.Info().Int("posts", n).Msg("seeded community feed")
	}
	repo := inmemory.New(repoOpts...)
	communitySvc := service.New(repo, log)

	handler := server.New(server.Options{AllowedOrigins: cfg.CORS.AllowedOrigins}, log,
		communityhttp.New(communitySvc),
		aihttp.New(aiSvc),
	)

	srv := &http.Server{
		Addr:         cfg.HTTP.Addr,
		Handler:      handler,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", cfg.HTTP.Addr).Msg("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// newCache connects to Redis when an address is configured and falls back to
// an in-process cache otherwise.
func newCache(ctx context.Context, cfg config.Redis, cleanup time.Duration, log zerolog.Logger) (cache.Cache, func(), error) {
	if cfg.Addr == "" {
		log.Info().Msg("using in-memory AI cache")
		return cache.NewMemory(cache.WithCleanupInterval(cleanup)), func() {}, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("ping redis %s: %w", cfg.Addr, err)
	}
	log.Info().Str("addr", cfg.Addr).Int("db", cfg.DB).Msg("using redis AI cache")
	return cache.NewRedis(client, "oceanica:"), func() { _ = client.Close() }, nil
}
