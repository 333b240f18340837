package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// CacheRouter sets one cache-control policy for everything it wraps. A zero
// CacheTime means no-cache, which suits the JSON pages; uploaded images get
// collision-proof names so re-fetching them is cheap anyway.
type CacheRouter struct {
	CacheTime int // seconds
}

func (cr *CacheRouter) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if cr.CacheTime <= 0 {
			c.Header("cache-control", "no-cache")
		} else {
			c.Header("cache-control", "private, max-age="+strconv.Itoa(cr.CacheTime))
		}
		c.Next()
	}
}
