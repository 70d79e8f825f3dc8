package candidate

import (
	"net/http"

	"github.com/decisionhr/talentrank/pkg/errx"
)

// Error Registry
var ErrRegistry = errx.NewRegistry("CANDIDATE")

// Error codes
var (
	CodeCandidateNotFound = ErrRegistry.Register("NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Candidate not found")
	CodeEmptyCode         = ErrRegistry.Register("EMPTY_CODE", errx.TypeValidation, http.StatusBadRequest, "Candidate code must not be empty")
	CodeListFailed        = ErrRegistry.Register("LIST_FAILED", errx.TypeInternal, http.StatusInternalServerError, "Failed to list candidates")
)

// Helper functions
func ErrCandidateNotFound() *errx.Error {
	return ErrRegistry.New(CodeCandidateNotFound)
}

func ErrEmptyCode() *errx.Error {
	return ErrRegistry.New(CodeEmptyCode)
}

func ErrListFailed() *errx.Error {
	return ErrRegistry.New(CodeListFailed)
}
