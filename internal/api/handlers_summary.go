package api

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

// GetSummary returns dashboard totals. Optional "from"/"to" query parameters
// (RFC 3339 dates) bound the window; "to" is exclusive.
func (handler *Handler) GetSummary(c *fiber.Ctx) error {
	from, ok := parseDateQuery(c.Query("from"))
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "invalid from date")
	}
	to, ok := parseDateQuery(c.Query("to"))
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "invalid to date")
	}

	summary, err := handler.transactions.Summarize(c.Context(), currentUser(c).ID, from, to)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(summary)
}

func parseDateQuery(raw string) (time.Time, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return time.Time{}, true
	}
	if parsed, err := time.Parse("2006-01-02", trimmed); err == nil {
		return parsed, true
	}
	if parsed, err := time.Parse(time.RFC3339, trimmed); err == nil {
		return parsed, true
	}
	return time.Time{}, false
}
