package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/zizouhuweidi/trivia/internal/config"
	"github.com/zizouhuweidi/trivia/internal/domain"
)

func TestOpenSQLite(t *testing.T) {
	ctx := context.Background()

	cfg := config.Default()
	cfg.Store.Driver = config.DriverSQLite
	cfg.Store.SQLitePath = filepath.Join(t.TempDir(), "trivia.db")

	s, err := Open(ctx, cfg)
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	defer s.Close()

	if err := s.Ping(ctx); err != nil {
		t.Fatalf("ping failed: %v", err)
	}
	if err := s.Upsert(ctx, domain.Category{ID: 1, Type: "Science"}); err != nil {
		t.Fatalf("upsert failed: %v", err)
	}
	if err := s.BulkCreate(ctx, []domain.QuestionDraft{
		{Question: "Q?", Answer: "A", Category: 1, Difficulty: 1},
	}); err != nil {
		t.Fatalf("bulk create failed: %v", err)
	}

	questions, err := s.Questions.ListByCategory(ctx, 1)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(questions) != 1 {
		t.Errorf("expected 1 question, got %d", len(questions))
	}
}

func TestOpenUnknownDriver(t *testing.T) {
	cfg := config.Default()
	cfg.Store.Driver = "mongo"

	if _, err := Open(context.Background(), cfg); err == nil {
		t.Fatal("expected error for unknown driver")
	}
}
