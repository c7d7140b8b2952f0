package utils

import "github.com/gin-gonic/gin"

type JSONResponse struct {
	Status  bool        `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func RespondJSON(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, JSONResponse{
		Status:  code >= 200 && code < 300,
		Message: message,
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, err error) {
	c.JSON(code, JSONResponse{
		Status:  false,
		Message: err.Error(),
		Data:    nil,
	})
}

// RespondValidation returns field-level validation messages produced by the
// cart engine, keeping the same envelope the frontends already parse.
func RespondValidation(c *gin.Context, code int, messages []string) {
	c.JSON(code, JSONResponse{
		Status:  false,
		Message: "validation failed",
		Data:    gin.H{"errors": messages},
	})
}
