package service

import (
	"errors"
	"fmt"

	"github.com/zizouhuweidi/trivia/internal/domain"
)

// Common service errors
var (
	ErrNoQuestions  = fmt.Errorf("no questions: %w", domain.ErrNotFound)
	ErrNoCategories = fmt.Errorf("no categories: %w", domain.ErrNotFound)
	ErrNoMatches    = fmt.Errorf("no matching questions: %w", domain.ErrNotFound)
	ErrInvalidPage  = domain.NewValidationError("page", "page must be a positive integer")
)

// storeError passes known error kinds through and reports anything else
// as ErrStoreUnavailable.
func storeError(op string, err error) error {
	if errors.Is(err, domain.ErrNotFound) ||
		errors.Is(err, domain.ErrValidationFailed) ||
		errors.Is(err, domain.ErrStoreUnavailable) {
		return err
	}
	return fmt.Errorf("%w: %s: %w", domain.ErrStoreUnavailable, op, err)
}
