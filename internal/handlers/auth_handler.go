package handlers

import (
	"net/http"

	"devconnector_backend/internal/middleware"
	"devconnector_backend/internal/services"
	"devconnector_backend/internal/services/dto"
	"devconnector_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	*BaseHandler
	userService services.UserService
	jwtSecret   string
}

func NewAuthHandler(base *BaseHandler, userService services.UserService, jwtSecret string) *AuthHandler {
	return &AuthHandler{
		BaseHandler: base,
		userService: userService,
		jwtSecret:   jwtSecret,
	}
}

func (h *AuthHandler) RegisterRoutes(r *gin.RouterGroup) {
	auth := r.Group("/auth")
	{
		auth.POST("", h.Login)
		auth.GET("", middleware.AuthMiddleware(h.jwtSecret), h.Current)
	}
}

// Login exchanges credentials for a token.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.userService.Login(&req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Current returns the authenticated user without the password hash.
func (h *AuthHandler) Current(c *gin.Context) {
	userID, ok := h.AuthedUserID(c)
	if !ok {
		return
	}

	user, err := h.userService.CurrentUser(userID)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}
