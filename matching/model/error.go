package model

import (
	"net/http"

	"github.com/decisionhr/talentrank/pkg/errx"
)

// Error Registry
var ErrRegistry = errx.NewRegistry("MODEL")

// Error codes
var (
	CodeNotReady         = ErrRegistry.Register("NOT_READY", errx.TypeBusiness, http.StatusConflict, "Model not ready")
	CodeArtifactMismatch = ErrRegistry.Register("ARTIFACT_MISMATCH", errx.TypeInternal, http.StatusInternalServerError, "Model artifacts are inconsistent")
	CodeNotEnoughData    = ErrRegistry.Register("NOT_ENOUGH_DATA", errx.TypeBusiness, http.StatusUnprocessableEntity, "Not enough labeled rows to train")
	CodeSaveFailed       = ErrRegistry.Register("SAVE_FAILED", errx.TypeInternal, http.StatusInternalServerError, "Failed to persist model artifacts")
	CodeLoadFailed       = ErrRegistry.Register("LOAD_FAILED", errx.TypeInternal, http.StatusInternalServerError, "Failed to load model artifacts")
)

// Helper functions
func ErrNotReady() *errx.Error {
	return ErrRegistry.New(CodeNotReady)
}

func ErrArtifactMismatch(detail string) *errx.Error {
	return ErrRegistry.New(CodeArtifactMismatch).WithDetail("mismatch", detail)
}

func ErrNotEnoughData(rows int) *errx.Error {
	return ErrRegistry.New(CodeNotEnoughData).WithDetail("labeled_rows", rows)
}

func ErrSaveFailed(cause error) *errx.Error {
	return ErrRegistry.New(CodeSaveFailed).WithCause(cause)
}

func ErrLoadFailed(cause error) *errx.Error {
	return ErrRegistry.New(CodeLoadFailed).WithCause(cause)
}
