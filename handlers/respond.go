// File: lokseva/handlers/respond.go
package handlers

import (
	"net/http"

	"lokseva/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// The dashboards consume a {success, message, ...} envelope and read domain
// failures out of HTTP 200 responses. Status codes other than 200 are
// reserved for transport-level problems (auth, rate limits, panics).

// respondSuccess writes the success envelope with extra payload fields.
func respondSuccess(c *gin.Context, payload gin.H) {
	body := gin.H{"success": true}
	for k, v := range payload {
		body[k] = v
	}
	c.JSON(http.StatusOK, body)
}

// respondFail writes a domain failure into the envelope.
func respondFail(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{"success": false, "message": message})
}

// respondServerError logs an unexpected failure and surfaces it in the
// envelope. No retries happen anywhere; a transient store failure is a single
// failed response.
func respondServerError(c *gin.Context, err error) {
	utils.GetLogger().Error("Request failed", zap.String("path", c.FullPath()), zap.Error(err))
	c.JSON(http.StatusOK, gin.H{"success": false, "message": "Server error: " + err.Error()})
}
