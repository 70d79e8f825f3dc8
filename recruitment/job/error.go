package job

import (
	"net/http"

	"github.com/decisionhr/talentrank/pkg/errx"
)

// Error Registry
var ErrRegistry = errx.NewRegistry("JOB")

// Error codes
var (
	CodeJobNotFound = ErrRegistry.Register("NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Job not found")
	CodeEmptyCode   = ErrRegistry.Register("EMPTY_CODE", errx.TypeValidation, http.StatusBadRequest, "Job code must not be empty")
	CodeListFailed  = ErrRegistry.Register("LIST_FAILED", errx.TypeInternal, http.StatusInternalServerError, "Failed to list jobs")
)

// Helper functions
func ErrJobNotFound() *errx.Error {
	return ErrRegistry.New(CodeJobNotFound)
}

func ErrEmptyCode() *errx.Error {
	return ErrRegistry.New(CodeEmptyCode)
}

func ErrListFailed() *errx.Error {
	return ErrRegistry.New(CodeListFailed)
}
