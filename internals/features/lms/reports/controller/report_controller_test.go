package controller

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/valyala/fasthttp"
)

func TestGradeReportRejectsUnknownGrade(t *testing.T) {
	app := fiber.New()
	// nil DB: reaching the store would panic, so a clean 400 proves the
	// grade is validated first.
	ctrl := NewReportController(nil)

	grades := []struct {
		name  string
		query string
	}{
		{"missing grade", ""},
		{"unknown enum value", "grade=GradeFour"},
		{"wrong casing", "grade=gradeone"},
		{"numeric grade", "grade=1"},
	}

	for _, tt := range grades {
		t.Run(tt.name, func(t *testing.T) {
			fctx := &fasthttp.RequestCtx{}
			fctx.Request.SetRequestURI("/api/a/reports?" + tt.query)
			c := app.AcquireCtx(fctx)
			defer app.ReleaseCtx(c)

			if err := ctrl.GradeReport(c); err != nil {
				t.Fatalf("GradeReport returned error: %v", err)
			}
			if code := c.Response().StatusCode(); code != fiber.StatusBadRequest {
				t.Errorf("status = %d, want %d", code, fiber.StatusBadRequest)
			}
		})
	}
}
