package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

func BindJson(c *gin.Context, obj interface{}) error {
	if err := c.ShouldBindJSON(obj); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return err
	}
	return nil
}

func BindQuery(c *gin.Context, obj interface{}) error {
	if err := c.ShouldBindQuery(obj); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return err
	}
	return nil
}

// ParseIDParam reads the :id path segment. Writes the 400 itself so callers
// just return on error.
func ParseIDParam(c *gin.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return 0, err
	}
	return id, nil
}

// ParseDateQuery reads an RFC3339 timestamp from the named query parameter.
// Writes the 400 itself so callers just return on error.
func ParseDateQuery(c *gin.Context, key string) (time.Time, error) {
	date, err := time.Parse(time.RFC3339, c.Query(key))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date"})
		return time.Time{}, err
	}
	return date, nil
}

// ListQuery carries the external 1-based page number; services take it
// 0-based, so handlers pass Page-1 down.
type ListQuery struct {
	Page    int `form:"page,default=1"`
	PerPage int `form:"per_page,default=10"`
}
