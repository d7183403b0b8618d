// AngelaMos | 2026
// entity.go

package video

import (
	"time"
)

type Video struct {
	ID            string    `db:"id"`
	TitlePT       string    `db:"title_pt"`
	TitleEN       string    `db:"title_en"`
	DescriptionPT string    `db:"description_pt"`
	DescriptionEN string    `db:"description_en"`
	Thumbnail     string    `db:"thumbnail"`
	VideoURL      string    `db:"video_url"`
	Category      string    `db:"category"`
	Featured      bool      `db:"featured"`
	Order         int       `db:"sort_order"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`
}

const (
	LangPT = "pt"
	LangEN = "en"
)
