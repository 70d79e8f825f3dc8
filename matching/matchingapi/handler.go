package matchingapi

import (
	"strconv"

	"github.com/decisionhr/talentrank/matching/matchingsrv"
	"github.com/decisionhr/talentrank/pkg/kernel"
	"github.com/gofiber/fiber/v2"
)

// Handlers provides HTTP handlers for feature, training and ranking
// operations
type Handlers struct {
	features  *matchingsrv.FeatureService
	trainer   *matchingsrv.TrainerService
	predictor *matchingsrv.PredictorService
}

// NewHandlers creates a new matching handlers instance
func NewHandlers(
	features *matchingsrv.FeatureService,
	trainer *matchingsrv.TrainerService,
	predictor *matchingsrv.PredictorService,
) *Handlers {
	return &Handlers{
		features:  features,
		trainer:   trainer,
		predictor: predictor,
	}
}

// RebuildFeatures recomputes and persists the feature table
// POST /api/matching/features/rebuild
func (h *Handlers) RebuildFeatures(c *fiber.Ctx) error {
	resp, err := h.features.Rebuild(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// FeatureRowsForJob returns the stored feature rows of a job
// GET /api/matching/features/by-job/:code
func (h *Handlers) FeatureRowsForJob(c *fiber.Ctx) error {
	code := kernel.NewJobCode(c.Params("code"))
	rows, err := h.features.FeatureRowsForJob(c.Context(), code)
	if err != nil {
		return err
	}
	return c.JSON(rows)
}

// FeatureRowsForCandidate returns the stored feature rows of a candidate
// GET /api/matching/features/by-candidate/:code
func (h *Handlers) FeatureRowsForCandidate(c *fiber.Ctx) error {
	code := kernel.NewCandidateCode(c.Params("code"))
	rows, err := h.features.FeatureRowsForCandidate(c.Context(), code)
	if err != nil {
		return err
	}
	return c.JSON(rows)
}

// CompatibilityForJob lists applicants by lexical fit
// GET /api/matching/compat/by-job/:code
func (h *Handlers) CompatibilityForJob(c *fiber.Ctx) error {
	code := kernel.NewJobCode(c.Params("code"))
	rows, err := h.features.CompatibilityForJob(c.Context(), code)
	if err != nil {
		return err
	}
	return c.JSON(rows)
}

// CompatibilityForCandidate lists a candidate's jobs by lexical fit
// GET /api/matching/compat/by-candidate/:code
func (h *Handlers) CompatibilityForCandidate(c *fiber.Ctx) error {
	code := kernel.NewCandidateCode(c.Params("code"))
	rows, err := h.features.CompatibilityForCandidate(c.Context(), code)
	if err != nil {
		return err
	}
	return c.JSON(rows)
}

// RankForJob scores and orders a job's applicants
// GET /api/matching/rank/by-job/:code
func (h *Handlers) RankForJob(c *fiber.Ctx) error {
	code := kernel.NewJobCode(c.Params("code"))
	ranked, err := h.predictor.RankForJob(c.Context(), code)
	if err != nil {
		return err
	}
	return c.JSON(ranked)
}

// RankForCandidate scores a candidate across their applications
// GET /api/matching/rank/by-candidate/:code
func (h *Handlers) RankForCandidate(c *fiber.Ctx) error {
	code := kernel.NewCandidateCode(c.Params("code"))
	ranked, err := h.predictor.RankForCandidate(c.Context(), code)
	if err != nil {
		return err
	}
	return c.JSON(ranked)
}

// rankedWithExplanations pairs the ranking with per-row attributions.
type rankedWithExplanations struct {
	Ranked       any    `json:"ranked"`
	Explanations any    `json:"explanations,omitempty"`
	ExplainError string `json:"explain_error,omitempty"`
}

// ExplainForJob ranks a job's applicants and attributes each score to
// its top features
// GET /api/matching/explain/by-job/:code?top_n=5
func (h *Handlers) ExplainForJob(c *fiber.Ctx) error {
	code := kernel.NewJobCode(c.Params("code"))
	topN, _ := strconv.Atoi(c.Query("top_n", "5"))

	ranked, err := h.predictor.RankForJob(c.Context(), code)
	if err != nil {
		return err
	}

	resp := rankedWithExplanations{Ranked: ranked}
	// A failed explanation degrades to ranking-only output instead of
	// failing the whole request.
	explanations, err := h.predictor.ExplainForJob(c.Context(), code, topN)
	if err != nil {
		resp.ExplainError = err.Error()
	} else {
		resp.Explanations = explanations
	}
	return c.JSON(resp)
}

// EnqueueTraining queues a background training run
// POST /api/matching/train
func (h *Handlers) EnqueueTraining(c *fiber.Ctx) error {
	var req struct {
		RequestedBy string `json:"requested_by"`
	}
	_ = c.BodyParser(&req) // body optional

	resp, err := h.trainer.EnqueueTraining(c.Context(), req.RequestedBy)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusAccepted).JSON(resp)
}

// ModelInsights returns the loaded bundle's training stats
// GET /api/matching/model/insights
func (h *Handlers) ModelInsights(c *fiber.Ctx) error {
	insights, err := h.predictor.Insights(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(insights)
}

// ModelStatus reports whether a trained bundle is loaded
// GET /api/matching/model/status
func (h *Handlers) ModelStatus(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"ready": h.predictor.Ready()})
}

// ReloadModel reloads the published bundle into the predictor
// POST /api/matching/model/reload
func (h *Handlers) ReloadModel(c *fiber.Ctx) error {
	if err := h.predictor.Reload(c.Context()); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"ready": h.predictor.Ready()})
}

// RegisterRoutes registers all matching routes
func RegisterRoutes(app *fiber.App, handlers *Handlers) {
	api := app.Group("/api/matching")

	api.Post("/features/rebuild", handlers.RebuildFeatures)
	api.Get("/features/by-job/:code", handlers.FeatureRowsForJob)
	api.Get("/features/by-candidate/:code", handlers.FeatureRowsForCandidate)

	api.Get("/compat/by-job/:code", handlers.CompatibilityForJob)
	api.Get("/compat/by-candidate/:code", handlers.CompatibilityForCandidate)

	api.Get("/rank/by-job/:code", handlers.RankForJob)
	api.Get("/rank/by-candidate/:code", handlers.RankForCandidate)
	api.Get("/explain/by-job/:code", handlers.ExplainForJob)

	api.Post("/train", handlers.EnqueueTraining)
	api.Get("/model/insights", handlers.ModelInsights)
	api.Get("/model/status", handlers.ModelStatus)
	api.Post("/model/reload", handlers.ReloadModel)
}
