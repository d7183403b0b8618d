// AngelaMos | 2026
// entity.go

package siteconfig

import (
	"time"
)

// singletonID is the primary key of the only site_config row.
const singletonID = 1

type SiteConfig struct {
	ID           int       `db:"id"`
	ContactEmail string    `db:"contact_email"`
	Instagram    string    `db:"instagram"`
	YouTube      string    `db:"youtube"`
	Vimeo        string    `db:"vimeo"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}
