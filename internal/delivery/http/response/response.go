package response

import (
	"github.com/gin-gonic/gin"
)

// Response is the success body: {"message": "..."}
type Response struct {
	Message string `json:"message" example:"Email sent successfully"`
}

// ErrorResponse is the failure body: {"error": "..."}
type ErrorResponse struct {
	Error string `json:"error" example:"Invalid email address."`
}

// Success sends a success response
func Success(c *gin.Context, code int, message string) {
	c.JSON(code, Response{Message: message})
}

// Error sends an error response
func Error(c *gin.Context, code int, message string) {
	c.JSON(code, ErrorResponse{Error: message})
}
