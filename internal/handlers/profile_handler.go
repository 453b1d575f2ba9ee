package handlers

import (
	"net/http"

	"devconnector_backend/internal/middleware"
	"devconnector_backend/internal/services"
	"devconnector_backend/internal/services/dto"
	"devconnector_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	*BaseHandler
	profileService services.ProfileService
	githubService  services.GithubService
	jwtSecret      string
}

func NewProfileHandler(base *BaseHandler, profileService services.ProfileService, githubService services.GithubService, jwtSecret string) *ProfileHandler {
	return &ProfileHandler{
		BaseHandler:    base,
		profileService: profileService,
		githubService:  githubService,
		jwtSecret:      jwtSecret,
	}
}

func (h *ProfileHandler) RegisterRoutes(r *gin.RouterGroup) {
	// Public routes
	public := r.Group("/profile")
	{
		public.GET("", h.GetAll)
		public.GET("/user/:user_id", h.GetByUserID)
		public.GET("/github/:username", h.GithubRepos)
	}

	// Protected routes
	private := r.Group("/profile")
	private.Use(middleware.AuthMiddleware(h.jwtSecret))
	{
		private.GET("/me", h.GetMine)
		private.POST("", h.Upsert)
		private.DELETE("", h.DeleteAccount)
		private.PUT("/experience", h.AddExperience)
		private.DELETE("/experience/:exp_id", h.DeleteExperience)
		private.PUT("/education", h.AddEducation)
		private.DELETE("/education/:edu_id", h.DeleteEducation)
	}
}

func (h *ProfileHandler) GetMine(c *gin.Context) {
	userID, ok := h.AuthedUserID(c)
	if !ok {
		return
	}

	profile, err := h.profileService.GetMine(userID)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// Upsert creates the caller's profile or updates it in place.
func (h *ProfileHandler) Upsert(c *gin.Context) {
	userID, ok := h.AuthedUserID(c)
	if !ok {
		return
	}

	var req dto.UpsertProfileRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	profile, err := h.profileService.Upsert(userID, &req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *ProfileHandler) GetAll(c *gin.Context) {
	profiles, err := h.profileService.GetAll()
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, profiles)
}

func (h *ProfileHandler) GetByUserID(c *gin.Context) {
	profile, err := h.profileService.GetByUserID(c.Param("user_id"))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// DeleteAccount removes the caller's profile and user record.
func (h *ProfileHandler) DeleteAccount(c *gin.Context) {
	userID, ok := h.AuthedUserID(c)
	if !ok {
		return
	}

	if err := h.profileService.DeleteAccount(userID); err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "User deleted"})
}

func (h *ProfileHandler) AddExperience(c *gin.Context) {
	userID, ok := h.AuthedUserID(c)
	if !ok {
		return
	}

	var req dto.AddExperienceRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	profile, err := h.profileService.AddExperience(userID, &req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *ProfileHandler) DeleteExperience(c *gin.Context) {
	userID, ok := h.AuthedUserID(c)
	if !ok {
		return
	}

	profile, err := h.profileService.DeleteExperience(userID, c.Param("exp_id"))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *ProfileHandler) AddEducation(c *gin.Context) {
	userID, ok := h.AuthedUserID(c)
	if !ok {
		return
	}

	var req dto.AddEducationRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	profile, err := h.profileService.AddEducation(userID, &req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *ProfileHandler) DeleteEducation(c *gin.Context) {
	userID, ok := h.AuthedUserID(c)
	if !ok {
		return
	}

	profile, err := h.profileService.DeleteEducation(userID, c.Param("edu_id"))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// GithubRepos relays the upstream JSON body verbatim.
func (h *ProfileHandler) GithubRepos(c *gin.Context) {
	body, err := h.githubService.Repos(c.Request.Context(), c.Param("username"))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", body)
}
