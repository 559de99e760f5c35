package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// Permission restricts a route beyond plain authentication.
type Permission int

// PermissionAdmin requires the is_admin flag on the caller's token.
const PermissionAdmin Permission = 1

// User is authenticated and posseses the required permissions
type HandlerFunc func(c *gin.Context, user *Claims)

// Router is a wrapper class that adds the bearer token gate + claims decoding
type Router struct {
	Base   *gin.Engine
	Tokens *Tokens
}

func (cr *Router) baseExec(c *gin.Context, handler HandlerFunc, required []Permission) {
	token := bearerToken(c)
	if token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
		return
	}
	claims, err := cr.Tokens.Verify(token)
	if err != nil {
		c.JSON(http.StatusForbidden, gin.H{"message": "Invalid or expired token"})
		return
	}
	for _, permission := range required {
		if permission == PermissionAdmin && !claims.IsAdmin {
			c.JSON(http.StatusForbidden, gin.H{"message": "Admin access required"})
			return
		}
	}
	handler(c, claims)
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 {
		return ""
	}
	return parts[1]
}

func (cr *Router) GET(path string, handler HandlerFunc, required ...Permission) {
	cr.Base.GET(path, func(c *gin.Context) {
		cr.baseExec(c, handler, required)
	})
}

func (cr *Router) POST(path string, handler HandlerFunc, required ...Permission) {
	cr.Base.POST(path, func(c *gin.Context) {
		cr.baseExec(c, handler, required)
	})
}

func (cr *Router) PUT(path string, handler HandlerFunc, required ...Permission) {
	cr.Base.PUT(path, func(c *gin.Context) {
		cr.baseExec(c, handler, required)
	})
}

func (cr *Router) DELETE(path string, handler HandlerFunc, required ...Permission) {
	cr.Base.DELETE(path, func(c *gin.Context) {
		cr.baseExec(c, handler, required)
	})
}
