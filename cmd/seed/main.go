package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/zizouhuweidi/trivia/internal/cache"
	"github.com/zizouhuweidi/trivia/internal/config"
	"github.com/zizouhuweidi/trivia/internal/database"
	"github.com/zizouhuweidi/trivia/internal/seed"
	"github.com/zizouhuweidi/trivia/internal/store"
)

func main() {
	path := flag.String("file", "seed/trivia.yaml", "YAML fixture to load")
	flag.Parse()

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	if err := run(*path); err != nil {
		slog.Error("seed failed", "error", err)
		os.Exit(1)
	}
}

func run(path string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	fixture, err := seed.Parse(file)
	if err != nil {
		return err
	}

	ctx := context.Background()
	st, err := store.Open(ctx, cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	if err := seed.Load(ctx, st, fixture); err != nil {
		return err
	}

	// Drop cached categories so the API sees the new labels
	if cfg.Redis.Enabled() {
		redisClient, err := database.ConnectRedis(ctx, cfg.Redis)
		if err != nil {
			return err
		}
		defer redisClient.Close()

		return cache.NewCategoryCache(redisClient, st.Categories, cfg.Redis.CategoryTTL).Invalidate(ctx)
	}
	return nil
}
