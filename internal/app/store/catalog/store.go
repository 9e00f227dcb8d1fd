// internal/app/store/catalog/store.go
package catalogstore

import (
	"context"
	"fmt"

	"github.com/dalemusser/devcatalog/internal/domain/models"
)

// Store is the catalog data provider. Lookups against the fixed tables are
// package functions; Store adds the fetch operations on top of a Source.
type Store struct {
	src Source
}

// New returns a Store reading from src.
func New(src Source) *Store {
	return &Store{src: src}
}

// Categories returns the fixed category menu.
func (s *Store) Categories() []models.Category { return Categories() }

// CategoriesData returns the fixed category groups.
func (s *Store) CategoriesData() []models.CategoryGroup { return CategoriesData() }

// SubCategoryName returns the subcategory display name or the placeholder.
func (s *Store) SubCategoryName(id string) string { return SubCategoryName(id) }

// IndexOf returns the 1-based menu index of a category identifier, or 0.
func (s *Store) IndexOf(category string) int { return IndexOf(category) }

// FetchByCategory asks the source for one category. The source performs the
// filtering; results are returned as-is. Errors are not retried.
func (s *Store) FetchByCategory(ctx context.Context, category string) ([]models.Resource, error) {
	data, err := s.src.Fetch(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("fetch category %q: %w", category, err)
	}
	return data, nil
}

// FetchByName fetches every record and keeps exact name matches.
func (s *Store) FetchByName(ctx context.Context, name string) ([]models.Resource, error) {
	data, err := s.FetchAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch by name %q: %w", name, err)
	}
	out := make([]models.Resource, 0, 1)
	for _, r := range data {
		if r.Name == name {
			out = append(out, r)
		}
	}
	return out, nil
}

// FetchAll returns the full, unfiltered resource list.
func (s *Store) FetchAll(ctx context.Context) ([]models.Resource, error) {
	data, err := s.src.Fetch(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("fetch all: %w", err)
	}
	return data, nil
}
