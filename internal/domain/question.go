package domain

import (
	"context"
	"strings"
)

// QuestionRepository defines the interface for question persistence
type QuestionRepository interface {
	// All retrieves every question in natural store order
	All(ctx context.Context) ([]Question, error)

	// GetByID retrieves a question by its ID
	GetByID(ctx context.Context, id int64) (*Question, error)

	// ListByCategory retrieves the questions of one category
	ListByCategory(ctx context.Context, categoryID int64) ([]Question, error)

	// Search retrieves questions whose text contains term (case-sensitive)
	Search(ctx context.Context, term string) ([]Question, error)

	// Create inserts a question and returns it with its assigned ID
	Create(ctx context.Context, draft QuestionDraft) (*Question, error)

	// Delete deletes a question
	Delete(ctx context.Context, id int64) error
}

// Question represents a trivia question
type Question struct {
	ID         int64  `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   int64  `json:"category"`
	Difficulty int    `json:"difficulty"`
}

// QuestionDraft is a question that has not been stored yet
type QuestionDraft struct {
	Question   string
	Answer     string
	Difficulty int
	Category   int64
}

// Validate reports whether the draft carries a question and an answer
func (d QuestionDraft) Validate() error {
	if strings.TrimSpace(d.Question) == "" {
		return NewValidationError("question", "question text cannot be empty")
	}
	if strings.TrimSpace(d.Answer) == "" {
		return NewValidationError("answer", "answer cannot be empty")
	}
	return nil
}
