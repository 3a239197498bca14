package routes

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// internalError logs the underlying error and returns a 500 envelope.
// The error text is only attached outside release mode.
func internalError(c *gin.Context, message string, err error) {
	log.Printf("❌ %s: %v", message, err)

	body := gin.H{"success": false, "message": message}
	if gin.Mode() != gin.ReleaseMode && err != nil {
		body["error"] = err.Error()
	}
	c.JSON(http.StatusInternalServerError, body)
}

// parseIDParam reads a numeric path parameter. A zero return with ok=false
// means the 400 response has already been written.
func parseIDParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid " + name + " parameter",
		})
		return 0, false
	}
	return uint(id), true
}

// parseUintQuery reads an optional numeric query parameter, returning 0
// when absent or malformed.
func parseUintQuery(c *gin.Context, name string) uint {
	raw := c.Query(name)
	if raw == "" {
		return 0
	}
	v, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0
	}
	return uint(v)
}

// parsePaging reads page/limit query parameters with sane defaults.
func parsePaging(c *gin.Context) (page, limit int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "10"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}
	return page, limit
}
