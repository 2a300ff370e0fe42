package response

import "github.com/gin-gonic/gin"

// RespondJSON writes the standard envelope. The HTTP status code is
// repeated inside the body for clients that only see the payload.
func RespondJSON(c *gin.Context, status string, code int, message string, data interface{}, errors interface{}) {
	c.JSON(code, StandardApiResponse{
		Status:     status,
		StatusCode: code,
		Message:    message,
		Data:       data,
		Errors:     errors,
	})
}
