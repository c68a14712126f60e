package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/supamart/pos-api/internal/domain/enum"
	"github.com/supamart/pos-api/internal/presentation/http/middleware"
)

// getUserID returns the authenticated caller's ID from the request context
func getUserID(c *gin.Context) uuid.UUID {
	if v, ok := c.Get(middleware.ContextUserID); ok {
		if id, ok := v.(uuid.UUID); ok {
			return id
		}
	}
	return uuid.Nil
}

// getUserRole returns the authenticated caller's role
func getUserRole(c *gin.Context) enum.UserRole {
	return enum.UserRole(c.GetString(middleware.ContextUserRole))
}

// parseUUIDParam parses a path parameter as a UUID
func parseUUIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
