package helper

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resolveVia(t *testing.T, target string, defaultPerPage, maxPerPage int) Paging {
	t.Helper()

	var got Paging
	app := fiber.New()
	app.Get("/things", func(c *fiber.Ctx) error {
		got = ResolvePaging(c, defaultPerPage, maxPerPage)
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, target, nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	return got
}

func TestResolvePaging(t *testing.T) {
	tests := []struct {
		name   string
		target string
		want   Paging
	}{
		{"defaults", "/things", Paging{Page: 1, PerPage: 20, Offset: 0, Limit: 20}},
		{"explicit page", "/things?page=3&per_page=10", Paging{Page: 3, PerPage: 10, Offset: 20, Limit: 10}},
		{"limit alias", "/things?limit=15", Paging{Page: 1, PerPage: 15, Offset: 0, Limit: 15}},
		{"per_page wins over limit", "/things?per_page=10&limit=50", Paging{Page: 1, PerPage: 10, Offset: 0, Limit: 10}},
		{"zero page normalized", "/things?page=0", Paging{Page: 1, PerPage: 20, Offset: 0, Limit: 20}},
		{"negative per_page falls back", "/things?per_page=-5", Paging{Page: 1, PerPage: 20, Offset: 0, Limit: 20}},
		{"garbage falls back", "/things?page=abc&per_page=xyz", Paging{Page: 1, PerPage: 20, Offset: 0, Limit: 20}},
		{"capped at max", "/things?per_page=500", Paging{Page: 1, PerPage: 100, Offset: 0, Limit: 100}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, resolveVia(t, tt.target, 20, 100))
		})
	}
}

func TestResolvePagingNoCap(t *testing.T) {
	got := resolveVia(t, "/things?per_page=500", 20, 0)
	assert.Equal(t, 500, got.PerPage)
}

func TestPagingMeta(t *testing.T) {
	meta := PagingMeta(Paging{Page: 2, PerPage: 10}, 35)
	assert.Equal(t, 2, meta["page"])
	assert.Equal(t, 10, meta["per_page"])
	assert.Equal(t, int64(35), meta["total"])
	assert.Equal(t, 4, meta["total_pages"])

	exact := PagingMeta(Paging{Page: 1, PerPage: 10}, 30)
	assert.Equal(t, 3, exact["total_pages"])
}
