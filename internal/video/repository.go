// AngelaMos | 2026
// repository.go

package video

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/tkprod/portfolio-api/internal/core"
)

type Repository interface {
	Create(ctx context.Context, video *Video) error
	GetByID(ctx context.Context, id string) (*Video, error)
	Update(ctx context.Context, video *Video) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, params ListParams) ([]Video, int, error)
	Count(ctx context.Context) (int, error)
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

const videoColumns = `id, title_pt, title_en, description_pt, description_en,
	thumbnail, video_url, category, featured, sort_order, created_at, updated_at`

func (r *repository) Create(ctx context.Context, video *Video) error {
	query := `
		INSERT INTO videos (
			id, title_pt, title_en, description_pt, description_en,
			thumbnail, video_url, category, featured, sort_order
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING created_at, updated_at`

	err := r.db.QueryRowxContext(ctx, query,
		video.ID,
		video.TitlePT,
		video.TitleEN,
		video.DescriptionPT,
		video.DescriptionEN,
		video.Thumbnail,
		video.VideoURL,
		video.Category,
		video.Featured,
		video.Order,
	).Scan(&video.CreatedAt, &video.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create video: %w", err)
	}

	return nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*Video, error) {
	query := `SELECT ` + videoColumns + ` FROM videos WHERE id = $1`

	var video Video
	err := r.db.GetContext(ctx, &video, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get video: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get video: %w", err)
	}

	return &video, nil
}

func (r *repository) Update(ctx context.Context, video *Video) error {
	query := `
		UPDATE videos
		SET title_pt = $2, title_en = $3,
			description_pt = $4, description_en = $5,
			thumbnail = $6, video_url = $7, category = $8,
			featured = $9, sort_order = $10, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`

	err := r.db.GetContext(ctx, &video.UpdatedAt, query,
		video.ID,
		video.TitlePT,
		video.TitleEN,
		video.DescriptionPT,
		video.DescriptionEN,
		video.Thumbnail,
		video.VideoURL,
		video.Category,
		video.Featured,
		video.Order,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("update video: %w", core.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("update video: %w", err)
	}

	return nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM videos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete video: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete video: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("delete video: %w", core.ErrNotFound)
	}

	return nil
}

// List returns one page of videos matching params along with the total
// number of matches. params.Sort must come from ParseSort.
func (r *repository) List(
	ctx context.Context,
	params ListParams,
) ([]Video, int, error) {
	where, args := listFilter(params)

	countQuery := `SELECT COUNT(*) FROM videos` + where

	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("count videos: %w", err)
	}

	sortClause := params.Sort
	if sortClause.Column == "" {
		sortClause = DefaultSort
	}

	query := fmt.Sprintf(
		`SELECT %s FROM videos%s ORDER BY %s, id ASC LIMIT $%d OFFSET $%d`,
		videoColumns,
		where,
		sortClause.SQL(),
		len(args)+1,
		len(args)+2,
	)
	args = append(args, params.Limit, params.Offset())

	var videos []Video
	if err := r.db.SelectContext(ctx, &videos, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list videos: %w", err)
	}

	return videos, total, nil
}

func (r *repository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM videos`); err != nil {
		return 0, fmt.Errorf("count videos: %w", err)
	}
	return count, nil
}

func listFilter(params ListParams) (string, []any) {
	var (
		conditions []string
		args       []any
	)

	if params.Category != "" && params.Category != AllCategories {
		args = append(args, params.Category)
		conditions = append(conditions, fmt.Sprintf("category = $%d", len(args)))
	}

	if search := strings.TrimSpace(params.Search); search != "" {
		lang := NormalizeLang(params.Lang)
		args = append(args, "%"+core.EscapeLike(search)+"%")
		conditions = append(conditions, fmt.Sprintf(
			"(title_%[1]s ILIKE $%[2]d OR description_%[1]s ILIKE $%[2]d)",
			lang,
			len(args),
		))
	}

	if len(conditions) == 0 {
		return "", args
	}

	return " WHERE " + strings.Join(conditions, " AND "), args
}
