package app

import (
	"github.com/gin-gonic/gin"
)

// CheckExpiration destroys a session that outlived its window. A
// request with no session at all passes through untouched.
func CheckExpiration(c *gin.Context) {
	s := getSession(c)
	if s != nil && s.Expired() {
		destroySession(c)
		setError(c, 401, "Session expired")
		c.Abort()
	}
}

func AuthLogin(c *gin.Context) {
	if !isLogin(c) {
		setError(c, 403, "Not signed in")
		c.Abort()
	}
}

func AuthAdmin(c *gin.Context) {
	s := getSession(c)
	if s == nil || !s.IsAdmin {
		setError(c, 403, "Admin only")
		c.Abort()
	}
}

// jsonResponse packs everything the handlers stashed in c.Keys into one
// JSON body after the chain runs. Handlers that already wrote (file
// streams and the like) are left alone.
func jsonResponse(c *gin.Context) {
	c.Next()
	if c.Writer.Written() {
		return
	}
	status := 200
	if v, ok := c.Get(statusKey); ok {
		status = v.(int)
		delete(c.Keys, statusKey)
	}
	delete(c.Keys, sessionKey)
	if _, ok := c.Get("success"); !ok {
		c.Set("success", true)
	}
	c.JSON(status, c.Keys)
}
