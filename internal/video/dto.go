// AngelaMos | 2026
// dto.go

package video

import (
	"time"

	"github.com/tkprod/portfolio-api/internal/core"
)

type LocalizedText struct {
	PT string `json:"pt"`
	EN string `json:"en"`
}

type TitleInput struct {
	PT string `json:"pt" validate:"required,max=200"`
	EN string `json:"en" validate:"required,max=200"`
}

type DescriptionInput struct {
	PT string `json:"pt" validate:"max=5000"`
	EN string `json:"en" validate:"max=5000"`
}

type TextPatch struct {
	PT *string `json:"pt,omitempty" validate:"omitempty,max=5000"`
	EN *string `json:"en,omitempty" validate:"omitempty,max=5000"`
}

type CreateVideoRequest struct {
	Title       TitleInput       `json:"title"`
	Description DescriptionInput `json:"description"`
	Thumbnail   string           `json:"thumbnail" validate:"required,weburl,max=2048"`
	VideoURL    string           `json:"videoUrl"  validate:"required,weburl,max=2048"`
	Category    string           `json:"category"  validate:"required,max=64"`
	Featured    bool             `json:"featured"`
	Order       *int             `json:"order,omitempty"`
}

type UpdateVideoRequest struct {
	Title       *TextPatch `json:"title,omitempty"`
	Description *TextPatch `json:"description,omitempty"`
	Thumbnail   *string    `json:"thumbnail,omitempty" validate:"omitempty,weburl,max=2048"`
	VideoURL    *string    `json:"videoUrl,omitempty"  validate:"omitempty,weburl,max=2048"`
	Category    *string    `json:"category,omitempty"  validate:"omitempty,max=64"`
	Featured    *bool      `json:"featured,omitempty"`
	Order       *int       `json:"order,omitempty"`
}

type VideoResponse struct {
	ID          string        `json:"id"`
	Title       LocalizedText `json:"title"`
	Description LocalizedText `json:"description"`
	Thumbnail   string        `json:"thumbnail"`
	VideoURL    string        `json:"videoUrl"`
	Category    string        `json:"category"`
	Featured    bool          `json:"featured"`
	Order       int           `json:"order"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}

type VideoListResponse struct {
	Videos     []VideoResponse `json:"videos"`
	Pagination core.Pagination `json:"pagination"`
}

func ToVideoResponse(v *Video) VideoResponse {
	return VideoResponse{
		ID:          v.ID,
		Title:       LocalizedText{PT: v.TitlePT, EN: v.TitleEN},
		Description: LocalizedText{PT: v.DescriptionPT, EN: v.DescriptionEN},
		Thumbnail:   v.Thumbnail,
		VideoURL:    v.VideoURL,
		Category:    v.Category,
		Featured:    v.Featured,
		Order:       v.Order,
		CreatedAt:   v.CreatedAt,
		UpdatedAt:   v.UpdatedAt,
	}
}

func ToVideoListResponse(page *Page) VideoListResponse {
	videos := make([]VideoResponse, 0, len(page.Videos))
	for i := range page.Videos {
		videos = append(videos, ToVideoResponse(&page.Videos[i]))
	}
	return VideoListResponse{
		Videos:     videos,
		Pagination: page.Pagination,
	}
}
