package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// handleChallenge answers webhook verification handshakes. When the payload
// carries a challenge, every input field except the configuration is echoed
// back and the request is done. Returns true if a response was written.
func handleChallenge(c *gin.Context) bool {
	var raw map[string]interface{}
	if err := c.ShouldBindBodyWith(&raw, binding.JSON); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload", "details": err.Error()})
		return true
	}

	if !isTruthy(raw["challenge"]) {
		return false
	}

	// Do not pass configuration.
	delete(raw, "config")
	c.JSON(http.StatusOK, raw)
	return true
}

func isTruthy(v interface{}) bool {
	switch t := v.(type) {
	case nil:
		return false
	case string:
		return t != ""
	case bool:
		return t
	case float64:
		return t != 0
	default:
		return true
	}
}
