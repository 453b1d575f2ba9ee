package apperrors

import (
	"net/http"

	"devconnector_backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// HandleError converts an error into the wire response.
// Validation failures render {"errors":[{"msg":...},...]}; every other
// AppError renders {"msg":...} with its status. Unknown errors are logged
// with full detail and surface as a generic 500.
func HandleError(c *gin.Context, err error) {
	appErr, ok := AsAppError(err)
	if !ok {
		appErr = InternalError(err)
	}

	if appErr.HTTPCode >= http.StatusInternalServerError {
		logger.CtxWithError(c.Request.Context(), "request failed", appErr,
			"path", c.Request.URL.Path)
		c.JSON(appErr.HTTPCode, gin.H{"msg": "Server Error"})
		return
	}

	if appErr.Code == CodeValidationFailed {
		c.JSON(appErr.HTTPCode, gin.H{"errors": appErr.Validation})
		return
	}

	c.JSON(appErr.HTTPCode, gin.H{"msg": appErr.Message})
}

// AsAppError unwraps err into an *AppError if one is in the chain.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
