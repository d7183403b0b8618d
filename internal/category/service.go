// AngelaMos | 2026
// service.go

package category

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/tkprod/portfolio-api/internal/core"
)

var ErrCategoryExists = errors.New("category already exists")

// InUseError is returned when deleting a category that videos still
// reference.
type InUseError struct {
	Count int
}

func (e *InUseError) Error() string {
	return fmt.Sprintf("category is used by %d videos", e.Count)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]Category, error) {
	categories, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if categories == nil {
		categories = []Category{}
	}
	return categories, nil
}

func (s *Service) Get(ctx context.Context, id string) (*Category, error) {
	return s.repo.GetByID(ctx, id)
}

// CategoryExists reports whether a category with the given slug exists.
func (s *Service) CategoryExists(
	ctx context.Context,
	categoryID string,
) (bool, error) {
	if categoryID == "" {
		return false, nil
	}
	return s.repo.ExistsByCategoryID(ctx, categoryID)
}

func (s *Service) Create(
	ctx context.Context,
	req CreateCategoryRequest,
) (*Category, error) {
	slug := strings.TrimSpace(req.CategoryID)

	exists, err := s.repo.ExistsByCategoryID(ctx, slug)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrCategoryExists
	}

	category := &Category{
		ID:         uuid.New().String(),
		CategoryID: slug,
		NamePT:     strings.TrimSpace(req.Name.PT),
		NameEN:     strings.TrimSpace(req.Name.EN),
	}

	if err := s.repo.Create(ctx, category); err != nil {
		if errors.Is(err, core.ErrDuplicateKey) {
			return nil, ErrCategoryExists
		}
		return nil, err
	}

	return category, nil
}

// Update applies the supplied fields. Changing the slug moves every video
// that referenced the old slug along with it.
func (s *Service) Update(
	ctx context.Context,
	id string,
	req UpdateCategoryRequest,
) (*Category, error) {
	category, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	previous := category.CategoryID

	if req.CategoryID != nil {
		slug := strings.TrimSpace(*req.CategoryID)
		if slug != "" && slug != previous {
			exists, err := s.repo.ExistsByCategoryID(ctx, slug)
			if err != nil {
				return nil, err
			}
			if exists {
				return nil, ErrCategoryExists
			}
			category.CategoryID = slug
		}
	}

	if req.Name != nil {
		setIfPresent(&category.NamePT, req.Name.PT)
		setIfPresent(&category.NameEN, req.Name.EN)
	}

	if category.CategoryID == previous {
		if err := s.repo.Update(ctx, category); err != nil {
			return nil, err
		}
		return category, nil
	}

	moved, err := s.repo.Rename(ctx, category, previous)
	if err != nil {
		if errors.Is(err, core.ErrDuplicateKey) {
			return nil, ErrCategoryExists
		}
		return nil, err
	}

	slog.InfoContext(ctx, "category renamed",
		"category_id", category.ID,
		"from", previous,
		"to", category.CategoryID,
		"videos_moved", moved,
	)

	return category, nil
}

// Delete removes a category that no video references.
func (s *Service) Delete(ctx context.Context, id string) error {
	category, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	count, err := s.repo.CountVideos(ctx, category.CategoryID)
	if err != nil {
		return err
	}
	if count > 0 {
		return &InUseError{Count: count}
	}

	return s.repo.Delete(ctx, id)
}

func (s *Service) Count(ctx context.Context) (int, error) {
	return s.repo.Count(ctx)
}

func setIfPresent(dst *string, value *string) {
	if value == nil {
		return
	}
	if v := strings.TrimSpace(*value); v != "" {
		*dst = v
	}
}
