package errx

import (
	"errors"
	"fmt"
	"net/http"
)

// Type classifies an error for transport and logging purposes.
type Type string

const (
	TypeInternal      Type = "INTERNAL"
	TypeBusiness      Type = "BUSINESS"
	TypeValidation    Type = "VALIDATION"
	TypeNotFound      Type = "NOT_FOUND"
	TypeConflict      Type = "CONFLICT"
	TypeAuthorization Type = "AUTHORIZATION"
	TypeExternal      Type = "EXTERNAL"
)

// Code is a registered, namespaced error code ("JOB.NOT_FOUND").
type Code string

type definition struct {
	code       Code
	errType    Type
	httpStatus int
	message    string
}

// Registry holds the error definitions of one domain, namespaced by prefix.
type Registry struct {
	prefix      string
	definitions map[Code]definition
}

// NewRegistry creates an error registry for a domain prefix.
func NewRegistry(prefix string) *Registry {
	return &Registry{
		prefix:      prefix,
		definitions: make(map[Code]definition),
	}
}

// Register adds an error definition and returns its namespaced code.
func (r *Registry) Register(code string, t Type, httpStatus int, message string) Code {
	full := Code(r.prefix + "." + code)
	r.definitions[full] = definition{
		code:       full,
		errType:    t,
		httpStatus: httpStatus,
		message:    message,
	}
	return full
}

// New builds an Error from a registered code. Unregistered codes yield a
// generic internal error so a missing registration never panics at runtime.
func (r *Registry) New(code Code) *Error {
	def, ok := r.definitions[code]
	if !ok {
		return &Error{
			Code:       code,
			Type:       TypeInternal,
			HTTPStatus: http.StatusInternalServerError,
			Message:    "unregistered error code",
		}
	}
	return &Error{
		Code:       def.code,
		Type:       def.errType,
		HTTPStatus: def.httpStatus,
		Message:    def.message,
	}
}

// Error is a structured application error.
type Error struct {
	Code       Code           `json:"code"`
	Type       Type           `json:"type"`
	HTTPStatus int            `json:"-"`
	Message    string         `json:"message"`
	Details    map[string]any `json:"details,omitempty"`
	cause      error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap exposes the wrapped cause to errors.Is/As.
func (e *Error) Unwrap() error { return e.cause }

// WithDetail attaches a key/value pair to the error and returns it.
func (e *Error) WithDetail(key string, value any) *Error {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// WithCause attaches an underlying error.
func (e *Error) WithCause(err error) *Error {
	e.cause = err
	return e
}

// Is matches two errx errors by code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

// ToHTTPResponse renders the error as a JSON-serializable body.
func (e *Error) ToHTTPResponse() map[string]any {
	resp := map[string]any{
		"code":    e.Code,
		"type":    e.Type,
		"message": e.Message,
	}
	if len(e.Details) > 0 {
		resp["details"] = e.Details
	}
	return resp
}

// Wrap turns an arbitrary error into an errx.Error of the given type. A
// wrapped *Error keeps its code and gains the message as a detail.
func Wrap(err error, message string, t Type) *Error {
	if err == nil {
		return nil
	}
	if e, ok := err.(*Error); ok {
		return e.WithDetail("context", message)
	}
	return &Error{
		Code:       Code(string(t)),
		Type:       t,
		HTTPStatus: statusFor(t),
		Message:    message,
		cause:      err,
	}
}

// As unwraps err into an *Error, walking wrapped causes.
func As(err error, target **Error) bool {
	return errors.As(err, target)
}

// HasCode reports whether err is, or wraps, an *Error with the code.
func HasCode(err error, code Code) bool {
	var e *Error
	return As(err, &e) && e.Code == code
}

func statusFor(t Type) int {
	switch t {
	case TypeNotFound:
		return http.StatusNotFound
	case TypeValidation:
		return http.StatusBadRequest
	case TypeConflict:
		return http.StatusConflict
	case TypeAuthorization:
		return http.StatusForbidden
	case TypeBusiness:
		return http.StatusUnprocessableEntity
	case TypeExternal:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
