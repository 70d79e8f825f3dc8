package jobapi

import (
	"strconv"

	"github.com/decisionhr/talentrank/pkg/kernel"
	"github.com/decisionhr/talentrank/recruitment/job/jobsrv"
	"github.com/gofiber/fiber/v2"
)

// Handlers provides HTTP handlers for job operations
type Handlers struct {
	service *jobsrv.JobService
}

// NewHandlers creates a new job handlers instance
func NewHandlers(service *jobsrv.JobService) *Handlers {
	return &Handlers{
		service: service,
	}
}

// ListJobs returns all jobs as (display title, code) pairs
// GET /api/jobs
func (h *Handlers) ListJobs(c *fiber.Ctx) error {
	entries, err := h.service.ListJobs(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(entries)
}

// ListJobsPaginated returns one page of full job records
// GET /api/jobs/paginated
func (h *Handlers) ListJobsPaginated(c *fiber.Ctx) error {
	page, err := h.service.ListJobsPaginated(c.Context(), parsePaginationOptions(c))
	if err != nil {
		return err
	}
	return c.JSON(page)
}

// GetJobByCode retrieves a job by code
// GET /api/jobs/:code
func (h *Handlers) GetJobByCode(c *fiber.Ctx) error {
	code := kernel.NewJobCode(c.Params("code"))
	entity, err := h.service.GetJobByCode(c.Context(), code)
	if err != nil {
		return err
	}
	return c.JSON(entity)
}

func parsePaginationOptions(c *fiber.Ctx) kernel.PaginationOptions {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	pageSize, _ := strconv.Atoi(c.Query("page_size", "20"))
	return kernel.PaginationOptions{
		Page:     page,
		PageSize: pageSize,
	}
}

// RegisterRoutes registers all job routes
func RegisterRoutes(app *fiber.App, handlers *Handlers) {
	api := app.Group("/api/jobs")

	api.Get("/", handlers.ListJobs)
	api.Get("/paginated", handlers.ListJobsPaginated)
	api.Get("/:code", handlers.GetJobByCode)
}
