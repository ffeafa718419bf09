// Package seed loads categories and questions from a YAML fixture into a
// question store.
package seed

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/zizouhuweidi/trivia/internal/domain"
	"gopkg.in/yaml.v3"
)

// Store is the write side of a question store
type Store interface {
	Upsert(ctx context.Context, c domain.Category) error
	BulkCreate(ctx context.Context, drafts []domain.QuestionDraft) error
}

// Fixture is the on-disk layout of a seed file
type Fixture struct {
	Categories []domain.Category `yaml:"categories"`
	Questions  []FixtureQuestion `yaml:"questions"`
}

// FixtureQuestion is one question of a seed file
type FixtureQuestion struct {
	Question   string `yaml:"question"`
	Answer     string `yaml:"answer"`
	Category   int64  `yaml:"category"`
	Difficulty int    `yaml:"difficulty"`
}

// Parse decodes a fixture and checks that every question is valid and
// belongs to a listed category.
func Parse(r io.Reader) (*Fixture, error) {
	var f Fixture
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("failed to decode fixture: %w", err)
	}

	categories := make(map[int64]bool, len(f.Categories))
	for _, c := range f.Categories {
		if c.ID <= 0 || c.Type == "" {
			return nil, fmt.Errorf("invalid category %d %q", c.ID, c.Type)
		}
		categories[c.ID] = true
	}

	for i, q := range f.Questions {
		if err := q.draft().Validate(); err != nil {
			return nil, fmt.Errorf("question %d: %w", i+1, err)
		}
		if !categories[q.Category] {
			return nil, fmt.Errorf("question %d: unknown category %d", i+1, q.Category)
		}
	}
	return &f, nil
}

// Load writes the fixture's categories and questions to store
func Load(ctx context.Context, store Store, f *Fixture) error {
	for _, c := range f.Categories {
		if err := store.Upsert(ctx, c); err != nil {
			return fmt.Errorf("failed to upsert category %d: %w", c.ID, err)
		}
	}

	drafts := make([]domain.QuestionDraft, 0, len(f.Questions))
	for _, q := range f.Questions {
		drafts = append(drafts, q.draft())
	}
	if len(drafts) > 0 {
		if err := store.BulkCreate(ctx, drafts); err != nil {
			return fmt.Errorf("failed to insert questions: %w", err)
		}
	}

	slog.Info("seeded store", "categories", len(f.Categories), "questions", len(drafts))
	return nil
}

func (q FixtureQuestion) draft() domain.QuestionDraft {
	return domain.QuestionDraft{
		Question:   q.Question,
		Answer:     q.Answer,
		Category:   q.Category,
		Difficulty: q.Difficulty,
	}
}
