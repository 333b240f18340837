package auth

import (
	"net/http"
	"studio/models"

	"github.com/gin-gonic/gin"
)

// Handler receives the authenticated back-office user
type HandlerFunc func(c *gin.Context, admin *models.User)

// Router is a wrapper that gates admin routes behind the session principal.
// Unauthenticated requests are redirected to the login page before any
// store access happens.
type Router struct {
	Base      *gin.Engine
	LoginPath string
}

func (cr *Router) baseExec(c *gin.Context, handler HandlerFunc) {
	session := LoadSession(c)
	admin := session.Admin()
	if admin.ID == 0 {
		c.Redirect(http.StatusFound, cr.LoginPath)
		c.Abort()
		return
	}
	handler(c, &admin)
}

func (cr *Router) GET(path string, handler HandlerFunc) {
	cr.Base.GET(path, func(c *gin.Context) {
		cr.baseExec(c, handler)
	})
}

func (cr *Router) POST(path string, handler HandlerFunc) {
	cr.Base.POST(path, func(c *gin.Context) {
		cr.baseExec(c, handler)
	})
}
