package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/zizouhuweidi/trivia/internal/domain"
	"github.com/zizouhuweidi/trivia/internal/service"
)

// QuizHandler handles quiz play HTTP requests
type QuizHandler struct {
	quiz *service.QuizService
}

// NewQuizHandler creates a new quiz handler
func NewQuizHandler(quiz *service.QuizService) *QuizHandler {
	return &QuizHandler{quiz: quiz}
}

// Register registers the quiz routes behind the given middleware
func (h *QuizHandler) Register(e *echo.Echo, m ...echo.MiddlewareFunc) {
	g := e.Group("/quizzes", m...)
	g.POST("", h.NextQuestion)
	g.POST("/answer", h.CheckAnswer)
}

// QuizResponse carries the next quiz question. Question is omitted once
// every question in the scope has been played.
type QuizResponse struct {
	Success  bool             `json:"success"`
	Question *domain.Question `json:"question,omitempty"`
}

// AnswerResponse reports whether a guess was right
type AnswerResponse struct {
	Success bool `json:"success"`
	*service.AnswerResult
}

// NextQuestion serves the next unseen question of a quiz
func (h *QuizHandler) NextQuestion(c echo.Context) error {
	var req QuizRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	question, err := h.quiz.NextQuestion(
		c.Request().Context(),
		int64(*req.QuizCategory.ID),
		req.PreviousQuestions,
	)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, QuizResponse{
		Success:  true,
		Question: question,
	})
}

// CheckAnswer compares a guess with the answer of a question
func (h *QuizHandler) CheckAnswer(c echo.Context) error {
	var req AnswerRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	result, err := h.quiz.CheckAnswer(c.Request().Context(), int64(*req.QuestionID), req.Answer)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, AnswerResponse{
		Success:      true,
		AnswerResult: result,
	})
}
