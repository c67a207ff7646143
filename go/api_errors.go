package vendasserver

import (
	"strconv"

	"github.com/gin-gonic/gin"

	apierrors "github.com/vendasapp/vendas-api/internal/shared/errors"
)

// respondProblem maps a ProblemDetail through the shared responder.
func respondProblem(c *gin.Context, problem apierrors.ProblemDetail) {
	apierrors.Respond(c, problem)
}

// respondNotFound sends a 404 with the given user-facing message.
func respondNotFound(c *gin.Context, detail string) {
	respondProblem(c, apierrors.ErrNotFound.WithDetail(detail))
}

// respondBadRequest sends a 400 for malformed payloads and path parameters.
func respondBadRequest(c *gin.Context, err error) {
	respondProblem(c, apierrors.ErrBadRequest.WithDetail(err.Error()))
}

// respondInternal sends a generic 500. The underlying error is logged by the
// service decorators, never echoed to the caller.
func respondInternal(c *gin.Context) {
	respondProblem(c, apierrors.ErrInternal)
}

// pathID parses a numeric identifier from the named path parameter.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		respondProblem(c, apierrors.ErrBadRequest.WithDetail("identificador inválido"))
		return 0, false
	}
	return id, true
}
