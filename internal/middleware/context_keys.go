package middleware

import "github.com/gin-gonic/gin"

// requestIDKey is the key used to store the request ID in the Gin context.
const requestIDKey = contextKey("requestID")

// GetRequestIDFromContext retrieves the request ID assigned by StructuredLoggingMiddleware.
// It returns the ID and a boolean indicating if it was found.
func GetRequestIDFromContext(c *gin.Context) (string, bool) {
	val, exists := c.Get(string(requestIDKey))
	if !exists {
		return "", false
	}

	requestID, ok := val.(string)
	if !ok {
		return "", false
	}

	return requestID, true
}
