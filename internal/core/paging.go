// AngelaMos | 2026
// paging.go

package core

import "math"

// NormalizePage clamps page and limit into their accepted range. The page
// is capped so that its offset plus limit always fits in an int; any page
// past the last row simply comes back empty.
func NormalizePage(page, limit, defaultLimit, maxLimit int) (int, int) {
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	if page < 1 {
		page = 1
	}
	if maxPage := math.MaxInt / limit; page > maxPage {
		page = maxPage
	}

	return page, limit
}

// Offset is the number of rows skipped before page. Callers pass values
// from NormalizePage.
func Offset(page, limit int) int {
	return (page - 1) * limit
}
