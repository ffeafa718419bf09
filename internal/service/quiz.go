package service

import (
	"cmp"
	"context"
	"log/slog"
	"slices"
	"strings"

	"github.com/zizouhuweidi/trivia/internal/domain"
	"github.com/zizouhuweidi/trivia/internal/validation"
)

// AnswerResult reports the outcome of an answer check
type AnswerResult struct {
	QuestionID int64  `json:"question_id"`
	Correct    bool   `json:"correct"`
	Answer     string `json:"answer"`
}

// QuizService serves quiz questions one at a time. It keeps no state between
// calls; progress is carried by the caller as the list of seen question IDs.
type QuizService struct {
	questions domain.QuestionRepository
	logger    *slog.Logger
}

// NewQuizService creates a new quiz service
func NewQuizService(questions domain.QuestionRepository) *QuizService {
	return &QuizService{
		questions: questions,
		logger:    slog.Default().With("component", "quiz"),
	}
}

// NextQuestion returns the lowest-ID question in scope that is not in
// previousIDs. Category domain.AllCategories scopes over every question.
//
// The first call of a quiz (no previous IDs) fails with ErrNoQuestions when
// the scope is empty. Later calls return nil once the scope is exhausted.
func (s *QuizService) NextQuestion(ctx context.Context, categoryID int64, previousIDs []int64) (*domain.Question, error) {
	scope, err := s.scope(ctx, categoryID)
	if err != nil {
		s.logger.Error("failed to load quiz scope", "category", categoryID, "error", err)
		return nil, storeError("load quiz scope", err)
	}

	scope = slices.Clone(scope)
	slices.SortFunc(scope, func(a, b domain.Question) int {
		return cmp.Compare(a.ID, b.ID)
	})

	if len(previousIDs) == 0 {
		if len(scope) == 0 {
			return nil, ErrNoQuestions
		}
		return &scope[0], nil
	}

	seen := make(map[int64]struct{}, len(previousIDs))
	for _, id := range previousIDs {
		seen[id] = struct{}{}
	}
	for i := range scope {
		if _, ok := seen[scope[i].ID]; !ok {
			return &scope[i], nil
		}
	}
	return nil, nil
}

func (s *QuizService) scope(ctx context.Context, categoryID int64) ([]domain.Question, error) {
	if categoryID == domain.AllCategories {
		return s.questions.All(ctx)
	}
	return s.questions.ListByCategory(ctx, categoryID)
}

// CheckAnswer compares a player's guess with the stored answer of a question
func (s *QuizService) CheckAnswer(ctx context.Context, questionID int64, guess string) (*AnswerResult, error) {
	if strings.TrimSpace(guess) == "" {
		return nil, domain.NewValidationError("answer", "answer cannot be empty")
	}

	question, err := s.questions.GetByID(ctx, questionID)
	if err != nil {
		return nil, storeError("get question", err)
	}

	return &AnswerResult{
		QuestionID: question.ID,
		Correct:    validation.IsSimilarAnswer(question.Answer, guess),
		Answer:     question.Answer,
	}, nil
}
