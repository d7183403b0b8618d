// AngelaMos | 2026
// query.go

package video

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tkprod/portfolio-api/internal/core"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100

	// AllCategories disables the category filter.
	AllCategories = "all"
)

var ErrInvalidSort = errors.New("unsupported sort field")

// Sort is a validated ORDER BY clause.
type Sort struct {
	Column string
	Desc   bool
}

func (s Sort) SQL() string {
	dir := "ASC"
	if s.Desc {
		dir = "DESC"
	}
	return s.Column + " " + dir
}

var DefaultSort = Sort{Column: "created_at", Desc: true}

var sortColumns = map[string]string{
	"createdAt": "created_at",
	"updatedAt": "updated_at",
	"order":     "sort_order",
	"featured":  "featured",
	"category":  "category",
	"title.pt":  "title_pt",
	"title.en":  "title_en",
}

// ParseSort reads "<field>_<asc|desc>". Only whitelisted fields are
// accepted; "title" sorts by the title in lang. Any direction other than
// "desc" sorts ascending.
func ParseSort(raw, lang string) (Sort, error) {
	if raw == "" {
		return DefaultSort, nil
	}

	field, dir, _ := strings.Cut(raw, "_")
	if field == "title" {
		field = "title." + NormalizeLang(lang)
	}

	column, ok := sortColumns[field]
	if !ok {
		return Sort{}, fmt.Errorf("%w: %q", ErrInvalidSort, field)
	}

	return Sort{Column: column, Desc: dir == "desc"}, nil
}

func NormalizeLang(lang string) string {
	if lang == LangEN {
		return LangEN
	}
	return LangPT
}

func NormalizePage(page, limit int) (int, int) {
	return core.NormalizePage(page, limit, DefaultLimit, MaxLimit)
}

type ListParams struct {
	Page     int
	Limit    int
	Category string
	Search   string
	Lang     string
	Sort     Sort
}

func (p *ListParams) Offset() int {
	return core.Offset(p.Page, p.Limit)
}
