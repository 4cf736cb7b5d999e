package pagination

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

const (
	DefaultPage  = 1
	DefaultLimit = 20
	MaxLimit     = 100
)

// Meta is the pagination block returned alongside list responses.
type Meta struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"total_pages"`
}

// Clamp normalizes page and limit to safe bounds.
func Clamp(page, limit int) (int, int) {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return page, limit
}

// NewMeta computes totals for a clamped page/limit pair.
func NewMeta(total int64, page, limit int) Meta {
	totalPages := int(total / int64(limit))
	if total%int64(limit) > 0 {
		totalPages++
	}
	if totalPages < 1 {
		totalPages = 1
	}
	return Meta{Total: total, Page: page, Limit: limit, TotalPages: totalPages}
}

// ParseFromRequest reads page and limit query parameters.
func ParseFromRequest(c *fiber.Ctx) (page, limit int) {
	page, _ = strconv.Atoi(c.Query("page", "1"))
	limit, _ = strconv.Atoi(c.Query("limit", strconv.Itoa(DefaultLimit)))
	return Clamp(page, limit)
}
