package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/zizouhuweidi/trivia/internal/database"
	"github.com/zizouhuweidi/trivia/internal/domain"
)

// openTestDB creates a migrated in-memory SQLite database for testing.
func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	ctx := context.Background()
	db, err := database.OpenSQLite(ctx, ":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := database.MigrateSQLite(ctx, db); err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}
	return db
}

func seed(t *testing.T, db *sql.DB) (*QuestionRepository, *CategoryRepository) {
	t.Helper()
	ctx := context.Background()
	questions := NewQuestionRepository(db)
	categories := NewCategoryRepository(db)

	for _, c := range []domain.Category{{ID: 1, Type: "Science"}, {ID: 2, Type: "Art"}, {ID: 5, Type: "Entertainment"}} {
		if err := categories.Upsert(ctx, c); err != nil {
			t.Fatalf("Upsert failed: %v", err)
		}
	}

	err := questions.BulkCreate(ctx, []domain.QuestionDraft{
		{Question: "What is the heaviest organ in the human body?", Answer: "The Liver", Category: 1, Difficulty: 4},
		{Question: "Who discovered penicillin?", Answer: "Alexander Fleming", Category: 1, Difficulty: 3},
		{Question: "Which Dutch graphic artist was a master of optical illusion?", Answer: "Escher", Category: 2, Difficulty: 1},
		{Question: "What movie earned Tom Hanks his third straight Oscar nomination, in 1996?", Answer: "Apollo 13", Category: 5, Difficulty: 4},
	})
	if err != nil {
		t.Fatalf("BulkCreate failed: %v", err)
	}
	return questions, categories
}

func TestQuestionRepositoryReads(t *testing.T) {
	questions, _ := seed(t, openTestDB(t))
	ctx := context.Background()

	all, err := questions.All(ctx)
	if err != nil {
		t.Fatalf("All failed: %v", err)
	}
	if len(all) != 4 {
		t.Fatalf("expected 4 questions, got %d", len(all))
	}
	for i := 1; i < len(all); i++ {
		if all[i].ID <= all[i-1].ID {
			t.Errorf("questions not in insertion order: %d after %d", all[i].ID, all[i-1].ID)
		}
	}

	science, err := questions.ListByCategory(ctx, 1)
	if err != nil {
		t.Fatalf("ListByCategory failed: %v", err)
	}
	if len(science) != 2 {
		t.Errorf("expected 2 science questions, got %d", len(science))
	}

	q, err := questions.GetByID(ctx, all[0].ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if q.Answer != "The Liver" || q.Difficulty != 4 {
		t.Errorf("unexpected question: %+v", q)
	}

	if _, err := questions.GetByID(ctx, 999); !errors.Is(err, domain.ErrQuestionNotFound) {
		t.Errorf("expected ErrQuestionNotFound, got %v", err)
	}
}

func TestQuestionRepositorySearch(t *testing.T) {
	questions, _ := seed(t, openTestDB(t))
	ctx := context.Background()

	tests := []struct {
		term string
		want int
	}{
		{"Who", 1},
		{"who", 0},
		{"What", 2},
		{"%", 0},
	}
	for _, tt := range tests {
		got, err := questions.Search(ctx, tt.term)
		if err != nil {
			t.Fatalf("Search(%q) failed: %v", tt.term, err)
		}
		if len(got) != tt.want {
			t.Errorf("Search(%q): expected %d results, got %d", tt.term, tt.want, len(got))
		}
	}
}

func TestQuestionRepositoryCreateDelete(t *testing.T) {
	questions, _ := seed(t, openTestDB(t))
	ctx := context.Background()

	created, err := questions.Create(ctx, domain.QuestionDraft{Question: "Test question?", Answer: "Test answer.", Category: 1, Difficulty: 2})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if created.ID != 5 {
		t.Errorf("expected id 5, got %d", created.ID)
	}

	if err := questions.Delete(ctx, created.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if err := questions.Delete(ctx, created.ID); !errors.Is(err, domain.ErrQuestionNotFound) {
		t.Errorf("expected ErrQuestionNotFound, got %v", err)
	}

	// AUTOINCREMENT never hands out a deleted id again.
	next, err := questions.Create(ctx, domain.QuestionDraft{Question: "Another?", Answer: "Yes", Category: 2, Difficulty: 1})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if next.ID == created.ID {
		t.Errorf("id %d was reused", next.ID)
	}
}

func TestCategoryRepository(t *testing.T) {
	_, categories := seed(t, openTestDB(t))
	ctx := context.Background()

	all, err := categories.All(ctx)
	if err != nil {
		t.Fatalf("All failed: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 categories, got %d", len(all))
	}

	if err := categories.Upsert(ctx, domain.Category{ID: 2, Type: "Fine Art"}); err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}
	c, err := categories.GetByID(ctx, 2)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if c.Type != "Fine Art" {
		t.Errorf("expected renamed category, got %q", c.Type)
	}

	if _, err := categories.GetByID(ctx, 42); !errors.Is(err, domain.ErrCategoryNotFound) {
		t.Errorf("expected ErrCategoryNotFound, got %v", err)
	}
}
