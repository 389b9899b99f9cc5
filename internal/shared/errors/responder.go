package errors

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Apurer/pet-adoption-center/internal/shared/errkind"
)

// ContentTypeProblemJSON is the media type for Problem Details responses.
const ContentTypeProblemJSON = "application/problem+json"

// RequestIDKey is the gin context key whose value, when set, is echoed as
// the requestId extension of every problem.
const RequestIDKey = "requestID"

var kindTemplates = map[error]ProblemDetail{
	errkind.ErrValidation:        ErrValidation,
	errkind.ErrNotFound:          ErrNotFound,
	errkind.ErrConflict:          ErrConflict,
	errkind.ErrInvalidTransition: ErrInvalidTransition,
	errkind.ErrAuth:              ErrUnauthorized,
	errkind.ErrForbidden:         ErrForbidden,
}

// FromError converts err into the problem it is rendered as. ProblemDetail
// values pass through, errkind-classified errors use their kind's template
// and anything else becomes a 500. Store and unclassified failures never
// expose their cause.
func FromError(err error) ProblemDetail {
	var problem ProblemDetail
	if errors.As(err, &problem) {
		return problem
	}
	kind := errkind.Of(err)
	if kind == errkind.ErrStore {
		return ErrInternal.WithDetail("unexpected persistence failure")
	}
	if tmpl, ok := kindTemplates[kind]; ok {
		return tmpl.WithDetail(errkind.Message(err))
	}
	return ErrInternal.WithDetail("unexpected server error")
}

// Respond writes problem with the problem content type and aborts the chain.
func Respond(c *gin.Context, problem ProblemDetail) {
	if problem.Instance == "" {
		problem.Instance = c.Request.URL.Path
	}
	if id := c.GetString(RequestIDKey); id != "" {
		problem = problem.WithExtension("requestId", id)
	}
	c.Header("Content-Type", ContentTypeProblemJSON)
	c.AbortWithStatusJSON(problem.Status, problem)
}

// RespondError renders err through FromError.
func RespondError(c *gin.Context, err error) {
	Respond(c, FromError(err))
}
