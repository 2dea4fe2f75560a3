// Package ginmw provides Gin HTTP middleware for dashboard route guarding.
//
// All middleware functions work against the medadmin.SessionStore interface
// and the pure decisions in guard/ — no direct dependency on any specific
// session backend.
package ginmw

import (
	"net/http"

	"github.com/gin-gonic/gin"

	medadmin "github.com/carebase/medadmin-go"
	"github.com/carebase/medadmin-go/guard"
	"github.com/carebase/medadmin-go/nav"
)

// Context keys for storing session data in gin.Context.
const (
	KeyIdentity = "medadmin_identity"
	KeyRole     = "medadmin_role"
)

// loadingBody is what both guard variants serve while the session is still
// restoring. It is deliberately identical for protected and public routes so
// the response leaks nothing about where the user would end up.
var loadingBody = gin.H{"status": "loading"}

// Protected returns middleware for authenticated-only routes. While the
// session restores it serves the neutral loading response; unauthenticated
// requests are redirected to sign-in; authenticated requests proceed with
// the identity and role stored in the context.
func Protected(store medadmin.SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		d := guard.Protected(guard.StateOf(store))
		switch d.Action {
		case guard.ShowLoading:
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, loadingBody)
		case guard.Redirect:
			c.Redirect(http.StatusFound, string(d.Target))
			c.Abort()
		default:
			if id := store.Identity(); id != nil {
				c.Set(KeyIdentity, id)
				c.Set(KeyRole, id.Role)
			}
			c.Next()
		}
	}
}

// Public returns middleware for sign-in and registration routes. While the
// session restores it serves the same loading response as Protected;
// authenticated requests are redirected to their role's landing route.
func Public(store medadmin.SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		d := guard.Public(guard.StateOf(store))
		switch d.Action {
		case guard.ShowLoading:
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, loadingBody)
		case guard.Redirect:
			c.Redirect(http.StatusFound, string(d.Target))
			c.Abort()
		default:
			c.Next()
		}
	}
}

// RequireRole returns middleware that rejects identities below the given
// role with 403. Requires Protected to run first.
func RequireRole(store medadmin.SessionStore, min medadmin.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !GetRole(c).AtLeast(min) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "insufficient role"})
			return
		}
		c.Next()
	}
}

// Menu returns a handler serving the role-derived navigation menu, so a thin
// shell can render the same cascade the SDK computes.
func Menu(store medadmin.SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		entries := nav.Build(store.Role())
		c.JSON(http.StatusOK, gin.H{"entries": entries})
	}
}

// --- Context helpers ---

// GetIdentity returns the authenticated identity from the Gin context.
func GetIdentity(c *gin.Context) *medadmin.User {
	v, _ := c.Get(KeyIdentity)
	u, _ := v.(*medadmin.User)
	return u
}

// GetRole returns the canonical role from the Gin context.
func GetRole(c *gin.Context) medadmin.Role {
	v, _ := c.Get(KeyRole)
	r, _ := v.(medadmin.Role)
	return r
}
