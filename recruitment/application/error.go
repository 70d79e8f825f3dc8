package application

import (
	"net/http"

	"github.com/decisionhr/talentrank/pkg/errx"
)

// Error Registry
var ErrRegistry = errx.NewRegistry("APPLICATION")

// Error codes
var (
	CodeApplicationNotFound = ErrRegistry.Register("NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Application not found")
	CodeEmptyJobCode        = ErrRegistry.Register("EMPTY_JOB_CODE", errx.TypeValidation, http.StatusBadRequest, "Job code must not be empty")
	CodeEmptyCandidateCode  = ErrRegistry.Register("EMPTY_CANDIDATE_CODE", errx.TypeValidation, http.StatusBadRequest, "Candidate code must not be empty")
	CodeListFailed          = ErrRegistry.Register("LIST_FAILED", errx.TypeInternal, http.StatusInternalServerError, "Failed to list applications")
)

// Helper functions
func ErrApplicationNotFound() *errx.Error {
	return ErrRegistry.New(CodeApplicationNotFound)
}

func ErrEmptyJobCode() *errx.Error {
	return ErrRegistry.New(CodeEmptyJobCode)
}

func ErrEmptyCandidateCode() *errx.Error {
	return ErrRegistry.New(CodeEmptyCandidateCode)
}

func ErrListFailed() *errx.Error {
	return ErrRegistry.New(CodeListFailed)
}
