// AngelaMos | 2026
// repository.go

package contact

import (
	"context"
	"fmt"

	"github.com/tkprod/portfolio-api/internal/core"
)

type ListParams struct {
	Page  int
	Limit int
	Read  *bool
}

func (p ListParams) Offset() int {
	return core.Offset(p.Page, p.Limit)
}

type Repository interface {
	Create(ctx context.Context, msg *Message) error
	List(ctx context.Context, params ListParams) ([]Message, int, error)
	SetRead(ctx context.Context, id string, read *bool) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context, read *bool) (int, error)
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

const messageColumns = `id, name, email, message, read, created_at`

func (r *repository) Create(ctx context.Context, msg *Message) error {
	query := `
		INSERT INTO contacts (id, name, email, message)
		VALUES ($1, $2, $3, $4)
		RETURNING read, created_at`

	err := r.db.QueryRowxContext(ctx, query,
		msg.ID,
		msg.Name,
		msg.Email,
		msg.Body,
	).Scan(&msg.Read, &msg.CreatedAt)
	if err != nil {
		return fmt.Errorf("create contact message: %w", err)
	}

	return nil
}

func (r *repository) List(
	ctx context.Context,
	params ListParams,
) ([]Message, int, error) {
	total, err := r.Count(ctx, params.Read)
	if err != nil {
		return nil, 0, err
	}

	var (
		where string
		args  []any
	)
	if params.Read != nil {
		args = append(args, *params.Read)
		where = ` WHERE read = $1`
	}

	query := fmt.Sprintf(
		`SELECT %s FROM contacts%s ORDER BY created_at DESC, id ASC LIMIT $%d OFFSET $%d`,
		messageColumns,
		where,
		len(args)+1,
		len(args)+2,
	)
	args = append(args, params.Limit, params.Offset())

	var messages []Message
	if err := r.db.SelectContext(ctx, &messages, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list contact messages: %w", err)
	}

	return messages, total, nil
}

func (r *repository) SetRead(ctx context.Context, id string, read *bool) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE contacts SET read = COALESCE($2::boolean, read) WHERE id = $1`,
		id,
		read,
	)
	if err != nil {
		return fmt.Errorf("mark contact message: %w", err)
	}

	return expectOne(result.RowsAffected, "mark contact message")
}

func (r *repository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM contacts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete contact message: %w", err)
	}

	return expectOne(result.RowsAffected, "delete contact message")
}

// Count counts messages, restricted to the given read state when read is
// not nil.
func (r *repository) Count(ctx context.Context, read *bool) (int, error) {
	query := `SELECT COUNT(*) FROM contacts`
	var args []any
	if read != nil {
		query += ` WHERE read = $1`
		args = append(args, *read)
	}

	var count int
	if err := r.db.GetContext(ctx, &count, query, args...); err != nil {
		return 0, fmt.Errorf("count contact messages: %w", err)
	}

	return count, nil
}

func expectOne(rowsAffected func() (int64, error), op string) error {
	rows, err := rowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if rows == 0 {
		return fmt.Errorf("%s: %w", op, core.ErrNotFound)
	}
	return nil
}
