package app

import (
	"github.com/gin-gonic/gin"
)

// Keys stashed in c.Keys that jsonResponse treats specially.
const (
	statusKey  = "__status"
	sessionKey = "__session"
)

func setError(c *gin.Context, errno int, errmsg string) {
	c.Set(statusKey, errno)
	c.Set("errmsg", errmsg)
	c.Set("success", false)
}

func setStatus(c *gin.Context, status int) {
	c.Set(statusKey, status)
}

func setMap(c *gin.Context, mp map[string]interface{}) {
	for k, v := range mp {
		c.Set(k, v)
	}
}
