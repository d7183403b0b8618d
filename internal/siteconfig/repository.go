// AngelaMos | 2026
// repository.go

package siteconfig

import (
	"context"
	"fmt"

	"github.com/tkprod/portfolio-api/internal/core"
)

type Repository interface {
	GetOrCreate(ctx context.Context, defaultEmail string) (*SiteConfig, error)
	Save(ctx context.Context, cfg *SiteConfig) error
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

const configColumns = `id, contact_email, instagram, youtube, vimeo, created_at, updated_at`

// GetOrCreate returns the singleton row, inserting it with defaultEmail
// when it does not exist yet. Concurrent first reads converge on one row.
func (r *repository) GetOrCreate(
	ctx context.Context,
	defaultEmail string,
) (*SiteConfig, error) {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO site_config (id, contact_email)
		VALUES ($1, $2)
		ON CONFLICT (id) DO NOTHING`,
		singletonID,
		defaultEmail,
	)
	if err != nil {
		return nil, fmt.Errorf("ensure site config: %w", err)
	}

	var cfg SiteConfig
	err = r.db.GetContext(ctx, &cfg,
		`SELECT `+configColumns+` FROM site_config WHERE id = $1`,
		singletonID,
	)
	if err != nil {
		return nil, fmt.Errorf("get site config: %w", err)
	}

	return &cfg, nil
}

func (r *repository) Save(ctx context.Context, cfg *SiteConfig) error {
	query := `
		INSERT INTO site_config (id, contact_email, instagram, youtube, vimeo)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE
		SET contact_email = EXCLUDED.contact_email,
			instagram = EXCLUDED.instagram,
			youtube = EXCLUDED.youtube,
			vimeo = EXCLUDED.vimeo,
			updated_at = NOW()
		RETURNING created_at, updated_at`

	err := r.db.QueryRowxContext(ctx, query,
		singletonID,
		cfg.ContactEmail,
		cfg.Instagram,
		cfg.YouTube,
		cfg.Vimeo,
	).Scan(&cfg.CreatedAt, &cfg.UpdatedAt)
	if err != nil {
		return fmt.Errorf("save site config: %w", err)
	}

	cfg.ID = singletonID
	return nil
}
