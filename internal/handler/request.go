package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/go-playground/validator/v10"
)

// Validator adapts validator/v10 to echo.Validator
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a request validator
func NewValidator() *Validator {
	return &Validator{validate: validator.New()}
}

// Validate validates a bound request struct
func (v *Validator) Validate(i any) error {
	return v.validate.Struct(i)
}

// FlexInt is an integer that may arrive as a JSON number or a numeric string.
// The web client sends category ids both ways.
type FlexInt int64

// UnmarshalJSON implements json.Unmarshaler
func (n *FlexInt) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid integer %q", s)
		}
		*n = FlexInt(v)
		return nil
	}

	var v int64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*n = FlexInt(v)
	return nil
}

// CreateQuestionRequest represents the request to create a new question
type CreateQuestionRequest struct {
	Question   *string  `json:"question" validate:"required"`
	Answer     *string  `json:"answer" validate:"required"`
	Difficulty *FlexInt `json:"difficulty" validate:"required"`
	Category   *FlexInt `json:"category" validate:"required"`
}

// SearchRequest represents a question search
type SearchRequest struct {
	SearchTerm *string `json:"searchTerm" validate:"required"`
}

// QuizCategory identifies the quiz scope; ID 0 plays every category
type QuizCategory struct {
	ID   *FlexInt `json:"id" validate:"required"`
	Type string   `json:"type"`
}

// QuizRequest asks for the next question of a quiz
type QuizRequest struct {
	QuizCategory      *QuizCategory `json:"quiz_category" validate:"required"`
	PreviousQuestions []int64       `json:"previous_questions"`
}

// AnswerRequest submits a guess for a quiz question
type AnswerRequest struct {
	QuestionID *FlexInt `json:"question_id" validate:"required"`
	Answer     string   `json:"answer"`
}
