package candidateapi

import (
	"strconv"

	"github.com/decisionhr/talentrank/pkg/kernel"
	"github.com/decisionhr/talentrank/recruitment/candidate/candidatesrv"
	"github.com/gofiber/fiber/v2"
)

// Handlers provides HTTP handlers for candidate operations
type Handlers struct {
	service *candidatesrv.CandidateService
}

// NewHandlers creates a new candidate handlers instance
func NewHandlers(service *candidatesrv.CandidateService) *Handlers {
	return &Handlers{
		service: service,
	}
}

// ListCandidates returns all candidates as (display name, code) pairs
// GET /api/candidates
func (h *Handlers) ListCandidates(c *fiber.Ctx) error {
	entries, err := h.service.ListCandidates(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(entries)
}

// ListCandidatesPaginated returns one page of full candidate records
// GET /api/candidates/paginated
func (h *Handlers) ListCandidatesPaginated(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	pageSize, _ := strconv.Atoi(c.Query("page_size", "20"))
	result, err := h.service.ListCandidatesPaginated(c.Context(), kernel.PaginationOptions{
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		return err
	}
	return c.JSON(result)
}

// GetCandidateByCode retrieves a candidate by code
// GET /api/candidates/:code
func (h *Handlers) GetCandidateByCode(c *fiber.Ctx) error {
	code := kernel.NewCandidateCode(c.Params("code"))
	entity, err := h.service.GetCandidateByCode(c.Context(), code)
	if err != nil {
		return err
	}
	return c.JSON(entity)
}

// RegisterRoutes registers all candidate routes
func RegisterRoutes(app *fiber.App, handlers *Handlers) {
	api := app.Group("/api/candidates")

	api.Get("/", handlers.ListCandidates)
	api.Get("/paginated", handlers.ListCandidatesPaginated)
	api.Get("/:code", handlers.GetCandidateByCode)
}
