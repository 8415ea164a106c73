package handlers

import (
	"github.com/gin-gonic/gin"

	pkgAuth "github.com/adonisdeptrai/r4bbit-sub001/internal/pkg/auth"
	"github.com/adonisdeptrai/r4bbit-sub001/internal/server/http/middleware"
)

// CurrentUserID extracts authenticated user identifier from context.
func CurrentUserID(c *gin.Context) int64 {
	val, ok := c.Get(middleware.UserIDContextKey)
	if !ok {
		return 0
	}
	id, _ := val.(int64)
	return id
}

// CurrentClaims extracts the full identity claims from context.
func CurrentClaims(c *gin.Context) pkgAuth.Claims {
	val, ok := c.Get(middleware.ClaimsContextKey)
	if !ok {
		return pkgAuth.Claims{}
	}
	claims, _ := val.(pkgAuth.Claims)
	return claims
}
