package handlers

import (
	"devconnector_backend/internal/logger"
	"devconnector_backend/internal/middleware"
	"devconnector_backend/internal/validator"
	"devconnector_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type BaseHandler struct {
	validator *validator.Validator
}

func NewBaseHandler(v *validator.Validator) *BaseHandler {
	return &BaseHandler{validator: v}
}

// BindAndValidateJSON binds the body and runs struct validation. On failure
// it writes the 400 validation array and returns false; the handler must
// return immediately.
func (h *BaseHandler) BindAndValidateJSON(c *gin.Context, obj interface{}) bool {
	ctx := c.Request.Context()

	if err := c.ShouldBindJSON(obj); err != nil {
		logger.CtxWithError(ctx, "failed to bind request body", err, "path", c.Request.URL.Path)
		apperrors.HandleError(c, apperrors.ValidationError([]apperrors.ValidationItem{
			{Msg: "Invalid request body"},
		}))
		return false
	}

	if err := h.validator.Validate(obj); err != nil {
		if vErr, ok := err.(*validator.ValidationError); ok {
			items := make([]apperrors.ValidationItem, 0, len(vErr.Errors))
			for _, fe := range vErr.Errors {
				items = append(items, apperrors.ValidationItem{Msg: fe.Message, Param: fe.Field})
			}
			apperrors.HandleError(c, apperrors.ValidationError(items))
		} else {
			logger.CtxWithError(ctx, "internal validator error", err, "path", c.Request.URL.Path)
			apperrors.HandleError(c, apperrors.InternalError(err))
		}
		return false
	}
	return true
}

// AuthedUserID returns the user id set by the auth middleware. A missing id
// means the middleware was not applied; respond 401 rather than proceed.
func (h *BaseHandler) AuthedUserID(c *gin.Context) (string, bool) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		apperrors.HandleError(c, apperrors.ErrNoToken)
		return "", false
	}
	return userID, true
}
