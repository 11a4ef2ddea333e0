package service

import (
	"context"
	"fmt"
	"strings"

	"gearshed-backend/internal/domain"
	"gearshed-backend/internal/repository"
)

type categoryService struct {
	categoryRepo repository.CategoryRepository
}

func NewCategoryService(categoryRepo repository.CategoryRepository) CategoryService {
	return &categoryService{categoryRepo: categoryRepo}
}

func (s *categoryService) CreateCategory(ctx context.Context, name string, subcategories []string) (*domain.Category, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("category name is required: %w", domain.ErrValidation)
	}
	subs, err := normalizeSubcategories(subcategories)
	if err != nil {
		return nil, err
	}
	category := &domain.Category{Name: name, Subcategories: subs}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *categoryService) UpdateCategory(ctx context.Context, category *domain.Category) error {
	if strings.TrimSpace(category.Name) == "" {
		return fmt.Errorf("category name is required: %w", domain.ErrValidation)
	}
	subs, err := normalizeSubcategories(category.Subcategories)
	if err != nil {
		return err
	}
	category.Subcategories = subs
	return s.categoryRepo.Update(ctx, category)
}

func (s *categoryService) DeleteCategory(ctx context.Context, id string) error {
	return s.categoryRepo.Delete(ctx, id)
}

func (s *categoryService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return s.categoryRepo.List(ctx)
}

// normalizeSubcategories trims entries, drops blanks, and rejects
// duplicates: subcategory names are unique per category.
func normalizeSubcategories(subcategories []string) ([]string, error) {
	seen := make(map[string]bool, len(subcategories))
	subs := make([]string, 0, len(subcategories))
	for _, raw := range subcategories {
		name := strings.TrimSpace(raw)
		if name == "" {
			continue
		}
		if seen[name] {
			return nil, fmt.Errorf("duplicate subcategory %q: %w", name, domain.ErrValidation)
		}
		seen[name] = true
		subs = append(subs, name)
	}
	return subs, nil
}
