package helper

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/valyala/fasthttp"
)

func ctxWithQuery(t *testing.T, app *fiber.App, query string) *fiber.Ctx {
	t.Helper()
	fctx := &fasthttp.RequestCtx{}
	fctx.Request.SetRequestURI("/?" + query)
	return app.AcquireCtx(fctx)
}

func TestResolvePaging(t *testing.T) {
	app := fiber.New()

	tests := []struct {
		name    string
		query   string
		page    int
		perPage int
	}{
		{"defaults", "", 1, 20},
		{"explicit page and per_page", "page=3&per_page=10", 3, 10},
		{"limit alias", "limit=5", 1, 5},
		{"per_page wins over limit", "per_page=10&limit=50", 1, 10},
		{"ceiling applies", "per_page=500", 1, 100},
		{"zero page normalizes", "page=0", 1, 20},
		{"negative per_page falls back", "per_page=-3", 1, 20},
		{"garbage falls back", "page=abc&per_page=xyz", 1, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := ctxWithQuery(t, app, tt.query)
			defer app.ReleaseCtx(c)

			got := ResolvePaging(c, 20, 100)
			if got.Page != tt.page || got.PerPage != tt.perPage {
				t.Errorf("ResolvePaging(%q) = page %d per_page %d, want page %d per_page %d",
					tt.query, got.Page, got.PerPage, tt.page, tt.perPage)
			}
			if got.Limit != got.PerPage {
				t.Errorf("Limit = %d, want %d", got.Limit, got.PerPage)
			}
			if want := (got.Page - 1) * got.PerPage; got.Offset != want {
				t.Errorf("Offset = %d, want %d", got.Offset, want)
			}
		})
	}
}

func TestBuildPaginationFromPage(t *testing.T) {
	tests := []struct {
		name       string
		total      int64
		page       int
		perPage    int
		totalPages int
		hasNext    bool
		hasPrev    bool
	}{
		{"empty result still one page", 0, 1, 20, 1, false, false},
		{"exact fit", 40, 1, 20, 2, true, false},
		{"remainder rounds up", 41, 1, 20, 3, true, false},
		{"middle page", 100, 3, 20, 5, true, true},
		{"last page", 100, 5, 20, 5, false, true},
		{"zero per_page falls back", 10, 1, 0, 1, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildPaginationFromPage(tt.total, tt.page, tt.perPage)
			if got.TotalPages != tt.totalPages {
				t.Errorf("TotalPages = %d, want %d", got.TotalPages, tt.totalPages)
			}
			if got.HasNext != tt.hasNext {
				t.Errorf("HasNext = %v, want %v", got.HasNext, tt.hasNext)
			}
			if got.HasPrev != tt.hasPrev {
				t.Errorf("HasPrev = %v, want %v", got.HasPrev, tt.hasPrev)
			}
		})
	}
}
