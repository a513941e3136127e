// internal/pkg/response/response.go
package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// The wire format mirrors the upstream PetBloom API: resources are
// returned bare, deletes acknowledge with {"message": ...}, and errors
// carry a single {"detail": ...} string, the field the gateway's error
// classifier reads.

// Detail sends a standardized error response and aborts the chain.
func Detail(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, gin.H{"detail": message})
}

// Message sends an acknowledgement with no resource body.
func Message(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{"message": message})
}

// BadRequest sends a 400 with the given detail.
func BadRequest(c *gin.Context, message string) {
	Detail(c, http.StatusBadRequest, message)
}

// Unauthorized sends a 401 with the given detail.
func Unauthorized(c *gin.Context, message string) {
	Detail(c, http.StatusUnauthorized, message)
}

// Forbidden sends a 403 with the given detail.
func Forbidden(c *gin.Context, message string) {
	Detail(c, http.StatusForbidden, message)
}

// NotFound sends a 404 with the given detail.
func NotFound(c *gin.Context, message string) {
	Detail(c, http.StatusNotFound, message)
}
