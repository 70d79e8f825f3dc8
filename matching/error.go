package matching

import (
	"net/http"

	"github.com/decisionhr/talentrank/pkg/errx"
)

// Error Registry
var ErrRegistry = errx.NewRegistry("MATCHING")

// Error codes
var (
	CodeEmptyJobCode       = ErrRegistry.Register("EMPTY_JOB_CODE", errx.TypeValidation, http.StatusBadRequest, "Job code must not be empty")
	CodeEmptyCandidateCode = ErrRegistry.Register("EMPTY_CANDIDATE_CODE", errx.TypeValidation, http.StatusBadRequest, "Candidate code must not be empty")
	CodeRebuildFailed      = ErrRegistry.Register("REBUILD_FAILED", errx.TypeInternal, http.StatusInternalServerError, "Failed to rebuild feature table")
	CodeEnqueueFailed      = ErrRegistry.Register("ENQUEUE_FAILED", errx.TypeExternal, http.StatusBadGateway, "Failed to enqueue training run")
	CodeNoFeatures         = ErrRegistry.Register("NO_FEATURES", errx.TypeBusiness, http.StatusConflict, "Feature table has not been built yet")
)

// Helper functions
func ErrEmptyJobCode() *errx.Error {
	return ErrRegistry.New(CodeEmptyJobCode)
}

func ErrEmptyCandidateCode() *errx.Error {
	return ErrRegistry.New(CodeEmptyCandidateCode)
}

func ErrRebuildFailed() *errx.Error {
	return ErrRegistry.New(CodeRebuildFailed)
}

func ErrEnqueueFailed() *errx.Error {
	return ErrRegistry.New(CodeEnqueueFailed)
}

func ErrNoFeatures() *errx.Error {
	return ErrRegistry.New(CodeNoFeatures)
}
