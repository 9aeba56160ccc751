package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type paginationQuery struct {
	Limit  int `form:"limit,default=10" binding:"omitempty,min=1,max=100"`
	Offset int `form:"offset,default=0" binding:"omitempty,min=0"`
}

func bindPagination(c *gin.Context) (paginationQuery, bool) {
	var pagination paginationQuery
	if err := c.ShouldBindQuery(&pagination); err != nil {
		invalidInput(c, "invalid pagination parameters")
		return paginationQuery{}, false
	}
	return pagination, true
}

func bindID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		invalidInput(c, "id must be a positive integer")
		return 0, false
	}
	return id, true
}

// abortMissingIdentity covers the impossible case of a protected handler
// running without the authentication middleware having stored an
// identity. Treated as an authentication failure, not a server error.
func abortMissingIdentity(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"code":    "unauthorized",
		"message": "authentication required",
	})
}
