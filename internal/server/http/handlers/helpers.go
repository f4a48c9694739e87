package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/GuiiMoreira/jobah-api/internal/adapter/pix"
	domainErrors "github.com/GuiiMoreira/jobah-api/internal/domain/errors"
	"github.com/GuiiMoreira/jobah-api/internal/domain/model"
	pkgAuth "github.com/GuiiMoreira/jobah-api/internal/pkg/auth"
	"github.com/GuiiMoreira/jobah-api/internal/server/http/dto"
	"github.com/GuiiMoreira/jobah-api/internal/server/http/middleware"
)

// CurrentIdentity extracts the authenticated caller from context.
func CurrentIdentity(c *gin.Context) model.Identity {
	val, ok := c.Get(middleware.IdentityContextKey)
	if !ok {
		return model.Identity{}
	}
	identity, _ := val.(model.Identity)
	return identity
}

// CurrentUserID extracts authenticated user identifier from context.
func CurrentUserID(c *gin.Context) uuid.UUID {
	return CurrentIdentity(c).UserID
}

// pathID parses a UUID path parameter, answering 400 when malformed.
func pathID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		writeError(c, domainErrors.Invalid(name, "must be a valid id"))
		return uuid.Nil, false
	}
	return id, true
}

func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		writeError(c, domainErrors.Invalid("", "malformed request body"))
		return false
	}
	return true
}

// writeError maps domain failures onto HTTP statuses.
func writeError(c *gin.Context, err error) {
	var validation *domainErrors.ValidationError
	var throttled pix.TooManyRequestsError

	switch {
	case errors.As(err, &validation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: validation.Error()})
	case errors.Is(err, domainErrors.ErrInvalidCredentials), errors.Is(err, pkgAuth.ErrInvalidToken):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, domainErrors.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "not found"})
	case errors.Is(err, domainErrors.ErrConflict):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})
	case errors.As(err, &throttled):
		if throttled.RetryAfter > 0 {
			c.Header("Retry-After", strconv.Itoa(int(throttled.RetryAfter.Seconds())))
		}
		c.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{Error: "payment provider busy"})
	default:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal error"})
	}
}
