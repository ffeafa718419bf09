package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/zizouhuweidi/trivia/internal/domain"
)

// QuestionsPerPage is the fixed page size of question listings
const QuestionsPerPage = 10

// Catalog event types
const (
	EventQuestionCreated = "question_created"
	EventQuestionDeleted = "question_deleted"
)

// Publisher receives catalog change notifications
type Publisher interface {
	Publish(eventType string, payload any)
}

type nopPublisher struct{}

func (nopPublisher) Publish(string, any) {}

// QuestionPage is one page of the question listing
type QuestionPage struct {
	Items      []domain.Question
	Total      int
	Categories map[int64]string
}

// CategoryQuestions is the question listing of a single category
type CategoryQuestions struct {
	Items           []domain.Question
	CurrentCategory string
}

// CatalogService implements browsing and editing of the question bank
type CatalogService struct {
	questions  domain.QuestionRepository
	categories domain.CategoryRepository
	events     Publisher
	logger     *slog.Logger
}

// NewCatalogService creates a new catalog service. A nil publisher disables
// change notifications.
func NewCatalogService(questions domain.QuestionRepository, categories domain.CategoryRepository, events Publisher) *CatalogService {
	if events == nil {
		events = nopPublisher{}
	}
	return &CatalogService{
		questions:  questions,
		categories: categories,
		events:     events,
		logger:     slog.Default().With("component", "catalog"),
	}
}

// ListCategories returns every category label keyed by ID
func (s *CatalogService) ListCategories(ctx context.Context) (map[int64]string, error) {
	categories, err := s.categories.All(ctx)
	if err != nil {
		s.logger.Error("failed to list categories", "error", err)
		return nil, storeError("list categories", err)
	}
	if len(categories) == 0 {
		return nil, ErrNoCategories
	}
	return domain.CategoryMap(categories), nil
}

// ListQuestions returns the page-th window of all questions. Pages past the
// end of the data are empty, not an error.
func (s *CatalogService) ListQuestions(ctx context.Context, page int) (*QuestionPage, error) {
	if page < 1 {
		return nil, ErrInvalidPage
	}

	var (
		questions  []domain.Question
		categories []domain.Category
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		questions, err = s.questions.All(gctx)
		if err != nil {
			return storeError("list questions", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		categories, err = s.categories.All(gctx)
		if err != nil {
			return storeError("list categories", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		s.logger.Error("failed to list questions", "page", page, "error", err)
		return nil, err
	}

	start, end := pageWindow(page, len(questions))
	return &QuestionPage{
		Items:      questions[start:end],
		Total:      len(questions),
		Categories: domain.CategoryMap(categories),
	}, nil
}

// pageWindow returns the [start, end) bounds of page clipped to n items
func pageWindow(page, n int) (int, int) {
	// Compare in pages so huge page numbers cannot overflow start.
	if page-1 > n/QuestionsPerPage {
		return n, n
	}
	start := (page - 1) * QuestionsPerPage
	if start > n {
		start = n
	}
	end := start + QuestionsPerPage
	if end > n {
		end = n
	}
	return start, end
}

// SearchQuestions returns the questions whose text contains term
func (s *CatalogService) SearchQuestions(ctx context.Context, term string) ([]domain.Question, error) {
	questions, err := s.questions.Search(ctx, term)
	if err != nil {
		s.logger.Error("failed to search questions", "term", term, "error", err)
		return nil, storeError("search questions", err)
	}

	// Stores may fold case or collation; keep plain substring semantics.
	var matches []domain.Question
	for _, q := range questions {
		if strings.Contains(q.Question, term) {
			matches = append(matches, q)
		}
	}
	if len(matches) == 0 {
		return nil, ErrNoMatches
	}
	return matches, nil
}

// ListByCategory returns the questions of a category along with its label.
// A category without questions is reported as not found.
func (s *CatalogService) ListByCategory(ctx context.Context, categoryID int64) (*CategoryQuestions, error) {
	category, err := s.categories.GetByID(ctx, categoryID)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.logger.Error("failed to get category", "category", categoryID, "error", err)
		}
		return nil, storeError("get category", err)
	}

	questions, err := s.questions.ListByCategory(ctx, categoryID)
	if err != nil {
		s.logger.Error("failed to list category questions", "category", categoryID, "error", err)
		return nil, storeError("list category questions", err)
	}
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}

	return &CategoryQuestions{
		Items:           questions,
		CurrentCategory: category.Type,
	}, nil
}

// CreateQuestion validates and stores a new question
func (s *CatalogService) CreateQuestion(ctx context.Context, draft domain.QuestionDraft) (*domain.Question, error) {
	if err := draft.Validate(); err != nil {
		return nil, err
	}

	question, err := s.questions.Create(ctx, draft)
	if err != nil {
		s.logger.Error("failed to create question", "error", err)
		return nil, storeError("create question", err)
	}

	s.events.Publish(EventQuestionCreated, question)
	return question, nil
}

// DeleteQuestion removes a question from the bank
func (s *CatalogService) DeleteQuestion(ctx context.Context, id int64) error {
	if _, err := s.questions.GetByID(ctx, id); err != nil {
		return storeError("get question", err)
	}

	if err := s.questions.Delete(ctx, id); err != nil {
		s.logger.Error("failed to delete question", "id", id, "error", err)
		return storeError("delete question", err)
	}

	s.events.Publish(EventQuestionDeleted, map[string]int64{"id": id})
	return nil
}
