// Package store opens the configured question store backend
package store

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/zizouhuweidi/trivia/internal/config"
	"github.com/zizouhuweidi/trivia/internal/database"
	"github.com/zizouhuweidi/trivia/internal/domain"
	"github.com/zizouhuweidi/trivia/internal/repository/postgres"
	"github.com/zizouhuweidi/trivia/internal/repository/sqlite"
)

type categoryWriter interface {
	domain.CategoryRepository
	Upsert(ctx context.Context, c domain.Category) error
}

type questionWriter interface {
	domain.QuestionRepository
	BulkCreate(ctx context.Context, drafts []domain.QuestionDraft) error
}

// Store is a migrated question store
type Store struct {
	Questions  questionWriter
	Categories categoryWriter

	ping  func(ctx context.Context) error
	close func()
}

// Open connects to the backend named by cfg.Store.Driver and applies any
// pending migrations.
func Open(ctx context.Context, cfg *config.Config) (*Store, error) {
	switch cfg.Store.Driver {
	case config.DriverPostgres:
		pool, err := database.ConnectPostgres(ctx, cfg.Postgres)
		if err != nil {
			return nil, err
		}
		if err := database.MigratePostgres(ctx, pool); err != nil {
			pool.Close()
			return nil, err
		}
		slog.Info("connected to postgres", "host", cfg.Postgres.Host, "database", cfg.Postgres.DBName)
		return &Store{
			Questions:  postgres.NewQuestionRepository(pool),
			Categories: postgres.NewCategoryRepository(pool),
			ping:       pool.Ping,
			close:      pool.Close,
		}, nil

	case config.DriverSQLite:
		db, err := database.OpenSQLite(ctx, cfg.Store.SQLitePath)
		if err != nil {
			return nil, err
		}
		if err := database.MigrateSQLite(ctx, db); err != nil {
			db.Close()
			return nil, err
		}
		slog.Info("opened sqlite database", "path", cfg.Store.SQLitePath)
		return &Store{
			Questions:  sqlite.NewQuestionRepository(db),
			Categories: sqlite.NewCategoryRepository(db),
			ping:       db.PingContext,
			close:      func() { db.Close() },
		}, nil

	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
}

// Ping checks that the backend is reachable
func (s *Store) Ping(ctx context.Context) error {
	return s.ping(ctx)
}

// Upsert creates or renames a category
func (s *Store) Upsert(ctx context.Context, c domain.Category) error {
	return s.Categories.Upsert(ctx, c)
}

// BulkCreate inserts questions in one transaction
func (s *Store) BulkCreate(ctx context.Context, drafts []domain.QuestionDraft) error {
	return s.Questions.BulkCreate(ctx, drafts)
}

// Close releases the backend connections
func (s *Store) Close() {
	s.close()
}
