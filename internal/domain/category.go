package domain

import "context"

// AllCategories selects every question when used as a quiz scope
const AllCategories int64 = 0

// Category groups questions under a display label
type Category struct {
	ID   int64  `json:"id" yaml:"id"`
	Type string `json:"type" yaml:"type"`
}

// CategoryRepository defines the interface for category lookups
type CategoryRepository interface {
	// All retrieves every category
	All(ctx context.Context) ([]Category, error)

	// GetByID retrieves a category by its ID
	GetByID(ctx context.Context, id int64) (*Category, error)
}

// CategoryMap indexes category labels by ID
func CategoryMap(categories []Category) map[int64]string {
	m := make(map[int64]string, len(categories))
	for _, c := range categories {
		m[c.ID] = c.Type
	}
	return m
}
