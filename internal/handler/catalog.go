package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/zizouhuweidi/trivia/internal/domain"
	"github.com/zizouhuweidi/trivia/internal/service"
)

// CatalogHandler handles question and category HTTP requests
type CatalogHandler struct {
	catalog *service.CatalogService
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalog *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// Register registers the catalog routes
func (h *CatalogHandler) Register(e *echo.Echo) {
	e.GET("/categories", h.ListCategories)
	e.GET("/categories/:id/questions", h.ListByCategory)

	e.GET("/questions", h.ListQuestions)
	e.POST("/questions", h.CreateQuestion)
	e.DELETE("/questions/:id", h.DeleteQuestion)
	e.POST("/questions/search", h.SearchQuestions)
	// Legacy path still used by the web client
	e.POST("/question", h.SearchQuestions)
}

// CategoriesResponse lists every category
type CategoriesResponse struct {
	Success    bool             `json:"success"`
	Categories map[int64]string `json:"categories"`
}

// QuestionsResponse is a list of questions
type QuestionsResponse struct {
	Success         bool              `json:"success"`
	Questions       []domain.Question `json:"questions"`
	TotalQuestions  int               `json:"total_questions"`
	Categories      map[int64]string  `json:"categories,omitempty"`
	CurrentCategory *string           `json:"current_category"`
}

// CreatedResponse reports a newly stored question
type CreatedResponse struct {
	Success  bool             `json:"success"`
	Created  int64            `json:"created"`
	Question *domain.Question `json:"question"`
}

// DeletedResponse reports a removed question
type DeletedResponse struct {
	Success bool  `json:"success"`
	Deleted int64 `json:"deleted"`
}

// ListCategories returns every category keyed by ID
func (h *CatalogHandler) ListCategories(c echo.Context) error {
	categories, err := h.catalog.ListCategories(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, CategoriesResponse{
		Success:    true,
		Categories: categories,
	})
}

// ListQuestions returns a page of ten questions
func (h *CatalogHandler) ListQuestions(c echo.Context) error {
	page := 1
	if raw := c.QueryParam("page"); raw != "" {
		p, err := strconv.Atoi(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "page must be an integer")
		}
		page = p
	}

	result, err := h.catalog.ListQuestions(c.Request().Context(), page)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, QuestionsResponse{
		Success:        true,
		Questions:      nonNil(result.Items),
		TotalQuestions: result.Total,
		Categories:     result.Categories,
	})
}

// SearchQuestions returns questions containing the search term
func (h *CatalogHandler) SearchQuestions(c echo.Context) error {
	var req SearchRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	questions, err := h.catalog.SearchQuestions(c.Request().Context(), *req.SearchTerm)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, QuestionsResponse{
		Success:        true,
		Questions:      questions,
		TotalQuestions: len(questions),
	})
}

// ListByCategory returns the questions of one category
func (h *CatalogHandler) ListByCategory(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		// No category can have a non-numeric id.
		return domain.ErrCategoryNotFound
	}

	result, err := h.catalog.ListByCategory(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, QuestionsResponse{
		Success:         true,
		Questions:       result.Items,
		TotalQuestions:  len(result.Items),
		CurrentCategory: &result.CurrentCategory,
	})
}

// CreateQuestion stores a new question
func (h *CatalogHandler) CreateQuestion(c echo.Context) error {
	var req CreateQuestionRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	question, err := h.catalog.CreateQuestion(c.Request().Context(), domain.QuestionDraft{
		Question:   *req.Question,
		Answer:     *req.Answer,
		Difficulty: int(*req.Difficulty),
		Category:   int64(*req.Category),
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, CreatedResponse{
		Success:  true,
		Created:  question.ID,
		Question: question,
	})
}

// DeleteQuestion removes a question
func (h *CatalogHandler) DeleteQuestion(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "question id must be an integer")
	}

	if err := h.catalog.DeleteQuestion(c.Request().Context(), id); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, DeletedResponse{
		Success: true,
		Deleted: id,
	})
}

func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return err
	}
	return c.Validate(req)
}

// nonNil keeps empty pages encoded as [] rather than null
func nonNil(questions []domain.Question) []domain.Question {
	if questions == nil {
		return []domain.Question{}
	}
	return questions
}
