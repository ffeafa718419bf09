package service

import (
	"context"
	"errors"
	"slices"
	"strings"
	"sync"

	"github.com/zizouhuweidi/trivia/internal/domain"
)

var errConnRefused = errors.New("dial tcp 127.0.0.1:5432: connect: connection refused")

// fakeStore is an in-memory question and category store
type fakeStore struct {
	mu         sync.Mutex
	questions  []domain.Question
	categories []domain.Category
	nextID     int64
	err        error
}

func newFakeStore(categories []domain.Category, questions ...domain.Question) *fakeStore {
	s := &fakeStore{categories: categories, nextID: 1}
	for _, q := range questions {
		s.questions = append(s.questions, q)
		s.nextID = max(s.nextID, q.ID+1)
	}
	return s
}

func (s *fakeStore) All(ctx context.Context) ([]domain.Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	return slices.Clone(s.questions), nil
}

func (s *fakeStore) GetByID(ctx context.Context, id int64) (*domain.Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	for _, q := range s.questions {
		if q.ID == id {
			return &q, nil
		}
	}
	return nil, domain.ErrQuestionNotFound
}

func (s *fakeStore) ListByCategory(ctx context.Context, categoryID int64) ([]domain.Question, error) {
	return s.filter(func(q domain.Question) bool { return q.Category == categoryID })
}

func (s *fakeStore) Search(ctx context.Context, term string) ([]domain.Question, error) {
	return s.filter(func(q domain.Question) bool { return strings.Contains(q.Question, term) })
}

func (s *fakeStore) filter(keep func(domain.Question) bool) ([]domain.Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	var out []domain.Question
	for _, q := range s.questions {
		if keep(q) {
			out = append(out, q)
		}
	}
	return out, nil
}

func (s *fakeStore) Create(ctx context.Context, draft domain.QuestionDraft) (*domain.Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	q := domain.Question{
		ID:         s.nextID,
		Question:   draft.Question,
		Answer:     draft.Answer,
		Difficulty: draft.Difficulty,
		Category:   draft.Category,
	}
	s.nextID++
	s.questions = append(s.questions, q)
	return &q, nil
}

func (s *fakeStore) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	i := slices.IndexFunc(s.questions, func(q domain.Question) bool { return q.ID == id })
	if i < 0 {
		return domain.ErrQuestionNotFound
	}
	s.questions = slices.Delete(s.questions, i, i+1)
	return nil
}

// fakeCategories exposes the category half of fakeStore
type fakeCategories struct{ *fakeStore }

func (c fakeCategories) All(ctx context.Context) ([]domain.Category, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return nil, c.err
	}
	return slices.Clone(c.categories), nil
}

func (c fakeCategories) GetByID(ctx context.Context, id int64) (*domain.Category, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return nil, c.err
	}
	for _, cat := range c.categories {
		if cat.ID == id {
			return &cat, nil
		}
	}
	return nil, domain.ErrCategoryNotFound
}

// recorder captures published events
type recorder struct {
	mu     sync.Mutex
	events []string
}

func (r *recorder) Publish(eventType string, payload any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, eventType)
}

var testCategories = []domain.Category{
	{ID: 1, Type: "Science"},
	{ID: 2, Type: "Art"},
	{ID: 3, Type: "Geography"},
	{ID: 6, Type: "Sports"},
}
