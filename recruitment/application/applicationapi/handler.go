package applicationapi

import (
	"github.com/decisionhr/talentrank/pkg/kernel"
	"github.com/decisionhr/talentrank/recruitment/application/applicationsrv"
	"github.com/gofiber/fiber/v2"
)

// Handlers provides HTTP handlers for application operations
type Handlers struct {
	service *applicationsrv.ApplicationService
}

// NewHandlers creates a new application handlers instance
func NewHandlers(service *applicationsrv.ApplicationService) *Handlers {
	return &Handlers{
		service: service,
	}
}

// GetApplicationsForJob lists a job's applicants with status
// GET /api/applications/by-job/:code
func (h *Handlers) GetApplicationsForJob(c *fiber.Ctx) error {
	code := kernel.NewJobCode(c.Params("code"))
	rows, err := h.service.GetApplicationsForJob(c.Context(), code)
	if err != nil {
		return err
	}
	return c.JSON(rows)
}

// GetApplicationsForCandidate lists a candidate's applications
// GET /api/applications/by-candidate/:code
func (h *Handlers) GetApplicationsForCandidate(c *fiber.Ctx) error {
	code := kernel.NewCandidateCode(c.Params("code"))
	apps, err := h.service.GetApplicationsForCandidate(c.Context(), code)
	if err != nil {
		return err
	}
	return c.JSON(apps)
}

// RegisterRoutes registers all application routes
func RegisterRoutes(app *fiber.App, handlers *Handlers) {
	api := app.Group("/api/applications")

	api.Get("/by-job/:code", handlers.GetApplicationsForJob)
	api.Get("/by-candidate/:code", handlers.GetApplicationsForCandidate)
}
