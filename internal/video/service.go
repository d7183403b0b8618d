// AngelaMos | 2026
// service.go

package video

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/tkprod/portfolio-api/internal/core"
)

// ErrInvalidCategory is returned when a video references a category slug
// that does not exist.
var ErrInvalidCategory = errors.New("invalid category")

type CategoryLookup interface {
	CategoryExists(ctx context.Context, categoryID string) (bool, error)
}

// ListQuery is the raw listing input as received from a client.
type ListQuery struct {
	Page     int
	Limit    int
	Category string
	Search   string
	Lang     string
	Sort     string
}

type Page struct {
	Videos     []Video
	Pagination core.Pagination
}

type Service struct {
	repo       Repository
	categories CategoryLookup
}

func NewService(repo Repository, categories CategoryLookup) *Service {
	return &Service{
		repo:       repo,
		categories: categories,
	}
}

func (s *Service) List(ctx context.Context, q ListQuery) (*Page, error) {
	lang := NormalizeLang(q.Lang)

	sortClause, err := ParseSort(q.Sort, lang)
	if err != nil {
		return nil, err
	}

	page, limit := NormalizePage(q.Page, q.Limit)

	params := ListParams{
		Page:     page,
		Limit:    limit,
		Category: strings.TrimSpace(q.Category),
		Search:   q.Search,
		Lang:     lang,
		Sort:     sortClause,
	}

	videos, total, err := s.repo.List(ctx, params)
	if err != nil {
		return nil, err
	}
	if videos == nil {
		videos = []Video{}
	}

	return &Page{
		Videos:     videos,
		Pagination: core.NewPagination(total, page, limit),
	}, nil
}

func (s *Service) Get(ctx context.Context, id string) (*Video, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Create(
	ctx context.Context,
	req CreateVideoRequest,
) (*Video, error) {
	category := strings.TrimSpace(req.Category)
	if err := s.checkCategory(ctx, category); err != nil {
		return nil, err
	}

	video := &Video{
		ID:            uuid.New().String(),
		TitlePT:       strings.TrimSpace(req.Title.PT),
		TitleEN:       strings.TrimSpace(req.Title.EN),
		DescriptionPT: req.Description.PT,
		DescriptionEN: req.Description.EN,
		Thumbnail:     strings.TrimSpace(req.Thumbnail),
		VideoURL:      strings.TrimSpace(req.VideoURL),
		Category:      category,
		Featured:      req.Featured,
	}
	if req.Order != nil {
		video.Order = *req.Order
	}

	if err := s.repo.Create(ctx, video); err != nil {
		return nil, err
	}

	return video, nil
}

// Update applies the supplied fields. Empty strings leave the stored value
// untouched; a supplied category must exist.
func (s *Service) Update(
	ctx context.Context,
	id string,
	req UpdateVideoRequest,
) (*Video, error) {
	var category string
	if req.Category != nil {
		category = strings.TrimSpace(*req.Category)
		if category != "" {
			if err := s.checkCategory(ctx, category); err != nil {
				return nil, err
			}
		}
	}

	video, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		setIfPresent(&video.TitlePT, req.Title.PT)
		setIfPresent(&video.TitleEN, req.Title.EN)
	}
	if req.Description != nil {
		setIfPresent(&video.DescriptionPT, req.Description.PT)
		setIfPresent(&video.DescriptionEN, req.Description.EN)
	}
	setIfPresent(&video.Thumbnail, req.Thumbnail)
	setIfPresent(&video.VideoURL, req.VideoURL)
	if category != "" {
		video.Category = category
	}
	if req.Featured != nil {
		video.Featured = *req.Featured
	}
	if req.Order != nil {
		video.Order = *req.Order
	}

	if err := s.repo.Update(ctx, video); err != nil {
		return nil, err
	}

	return video, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) Count(ctx context.Context) (int, error) {
	return s.repo.Count(ctx)
}

func (s *Service) checkCategory(ctx context.Context, category string) error {
	exists, err := s.categories.CategoryExists(ctx, category)
	if err != nil {
		return fmt.Errorf("check category: %w", err)
	}
	if !exists {
		return ErrInvalidCategory
	}
	return nil
}

func setIfPresent(dst *string, value *string) {
	if value == nil {
		return
	}
	if v := strings.TrimSpace(*value); v != "" {
		*dst = v
	}
}
