package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"caterly/internal/shared/constants"
	"caterly/internal/shared/errors"
)

// ParseIDParam parses a numeric ID from a URL path parameter.
// entityName is used in error messages (e.g., "dish", "package").
func ParseIDParam(c *gin.Context, paramName, entityName string) (uint, error) {
	raw := c.Param(paramName)
	if raw == "" {
		return 0, errors.NewValidationError(entityName + " ID is required")
	}

	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("invalid " + entityName + " ID")
	}

	return uint(id), nil
}

// ParseUintQuery parses an optional numeric query parameter.
// Returns (0, false, nil) when the parameter is absent.
func ParseUintQuery(c *gin.Context, name string) (uint, bool, error) {
	raw := c.Query(name)
	if raw == "" {
		return 0, false, nil
	}

	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, false, errors.NewValidationError("invalid " + name + " parameter")
	}

	return uint(v), true, nil
}

// ParseBoolQuery parses an optional boolean query parameter.
// Returns (false, false, nil) when the parameter is absent.
func ParseBoolQuery(c *gin.Context, name string) (bool, bool, error) {
	raw := c.Query(name)
	if raw == "" {
		return false, false, nil
	}

	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, false, errors.NewValidationError("invalid " + name + " parameter")
	}

	return v, true, nil
}

// CurrentUserID returns the authenticated user ID set by the auth middleware.
func CurrentUserID(c *gin.Context) (uint, error) {
	v, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		return 0, errors.NewUnauthorizedError(constants.ErrMsgUnauthorized)
	}

	id, ok := v.(uint)
	if !ok || id == 0 {
		return 0, errors.NewUnauthorizedError(constants.ErrMsgUnauthorized)
	}

	return id, nil
}
