// AngelaMos | 2026
// entity.go

package category

import (
	"time"
)

// Category groups videos. CategoryID is the public slug that videos
// reference by value.
type Category struct {
	ID         string    `db:"id"`
	CategoryID string    `db:"category_id"`
	NamePT     string    `db:"name_pt"`
	NameEN     string    `db:"name_en"`
	CreatedAt  time.Time `db:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"`
}
