package httpserver

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"sushishop/internal/es"
	"sushishop/internal/util"
	"sushishop/pkg/logging"
)

// SearchHTTP serves full-text product search backed by elasticsearch.
// Only registered when an indexer is configured.
type SearchHTTP struct {
	Indexer *es.Indexer
}

func (h *SearchHTTP) Search(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "products_search")

	q := strings.TrimSpace(c.QueryParam("q"))
	if q == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "q is required")
	}

	page := util.ParseIntDefault(c.QueryParam("page"), 1)
	pageSize := util.ParseIntDefault(c.QueryParam("pageSize"), util.DefaultPageSize)
	from, size := util.Calculate(page, pageSize)

	total, items, err := h.Indexer.Search(ctx, q, from, size)
	if err != nil {
		l.Error("products_search_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "search unavailable")
	}

	page, pageSize = util.Normalize(page, pageSize)
	return c.JSON(http.StatusOK, echo.Map{
		"total":     total,
		"page":      page,
		"page_size": pageSize,
		"items":     items,
	})
}
