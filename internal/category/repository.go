// AngelaMos | 2026
// repository.go

package category

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/tkprod/portfolio-api/internal/core"
)

type Repository interface {
	List(ctx context.Context) ([]Category, error)
	GetByID(ctx context.Context, id string) (*Category, error)
	ExistsByCategoryID(ctx context.Context, categoryID string) (bool, error)
	Create(ctx context.Context, category *Category) error
	Update(ctx context.Context, category *Category) error
	Rename(
		ctx context.Context,
		category *Category,
		previousCategoryID string,
	) (int64, error)
	CountVideos(ctx context.Context, categoryID string) (int, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

const categoryColumns = `id, category_id, name_pt, name_en, created_at, updated_at`

func (r *repository) List(ctx context.Context) ([]Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories ORDER BY name_pt ASC, id ASC`

	var categories []Category
	if err := r.db.SelectContext(ctx, &categories, query); err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}

	return categories, nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE id = $1`

	var category Category
	err := r.db.GetContext(ctx, &category, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get category: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get category: %w", err)
	}

	return &category, nil
}

func (r *repository) ExistsByCategoryID(
	ctx context.Context,
	categoryID string,
) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM categories WHERE category_id = $1)`

	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, categoryID); err != nil {
		return false, fmt.Errorf("check category: %w", err)
	}

	return exists, nil
}

func (r *repository) Create(ctx context.Context, category *Category) error {
	query := `
		INSERT INTO categories (id, category_id, name_pt, name_en)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at, updated_at`

	err := r.db.QueryRowxContext(ctx, query,
		category.ID,
		category.CategoryID,
		category.NamePT,
		category.NameEN,
	).Scan(&category.CreatedAt, &category.UpdatedAt)
	if err != nil {
		if core.IsUniqueViolation(err) {
			return fmt.Errorf("create category: %w", core.ErrDuplicateKey)
		}
		return fmt.Errorf("create category: %w", err)
	}

	return nil
}

func (r *repository) Update(ctx context.Context, category *Category) error {
	return updateCategory(ctx, r.db, category)
}

// Rename saves category and moves every video that referenced
// previousCategoryID onto the new slug in a single transaction. It returns
// the number of videos moved.
func (r *repository) Rename(
	ctx context.Context,
	category *Category,
	previousCategoryID string,
) (int64, error) {
	var moved int64

	err := core.InTx(ctx, r.db, func(tx *sqlx.Tx) error {
		if err := updateCategory(ctx, tx, category); err != nil {
			return err
		}

		result, err := tx.ExecContext(ctx,
			`UPDATE videos SET category = $1, updated_at = NOW() WHERE category = $2`,
			category.CategoryID,
			previousCategoryID,
		)
		if err != nil {
			return fmt.Errorf("cascade category rename: %w", err)
		}

		moved, err = result.RowsAffected()
		if err != nil {
			return fmt.Errorf("cascade category rename: %w", err)
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	return moved, nil
}

func (r *repository) CountVideos(
	ctx context.Context,
	categoryID string,
) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count,
		`SELECT COUNT(*) FROM videos WHERE category = $1`,
		categoryID,
	)
	if err != nil {
		return 0, fmt.Errorf("count category videos: %w", err)
	}

	return count, nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("delete category: %w", core.ErrNotFound)
	}

	return nil
}

func (r *repository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM categories`); err != nil {
		return 0, fmt.Errorf("count categories: %w", err)
	}
	return count, nil
}

func updateCategory(ctx context.Context, db core.DBTX, category *Category) error {
	query := `
		UPDATE categories
		SET category_id = $2, name_pt = $3, name_en = $4, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`

	err := db.GetContext(ctx, &category.UpdatedAt, query,
		category.ID,
		category.CategoryID,
		category.NamePT,
		category.NameEN,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("update category: %w", core.ErrNotFound)
	}
	if err != nil {
		if core.IsUniqueViolation(err) {
			return fmt.Errorf("update category: %w", core.ErrDuplicateKey)
		}
		return fmt.Errorf("update category: %w", err)
	}

	return nil
}
