package handlers

import (
	"net/http"

	"devconnector_backend/internal/middleware"
	"devconnector_backend/internal/services"
	"devconnector_backend/internal/services/dto"
	"devconnector_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	*BaseHandler
	postService services.PostService
	jwtSecret   string
}

func NewPostHandler(base *BaseHandler, postService services.PostService, jwtSecret string) *PostHandler {
	return &PostHandler{
		BaseHandler: base,
		postService: postService,
		jwtSecret:   jwtSecret,
	}
}

func (h *PostHandler) RegisterRoutes(r *gin.RouterGroup) {
	posts := r.Group("/post")
	posts.Use(middleware.AuthMiddleware(h.jwtSecret))
	{
		posts.POST("", h.Create)
		posts.GET("", h.List)
		posts.GET("/:id", h.Get)
		posts.DELETE("/:id", h.Delete)
		posts.PUT("/like/:id", h.Like)
		posts.PUT("/unlike/:id", h.Unlike)
	}
}

func (h *PostHandler) Create(c *gin.Context) {
	userID, ok := h.AuthedUserID(c)
	if !ok {
		return
	}

	var req dto.CreatePostRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	post, err := h.postService.Create(userID, &req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

func (h *PostHandler) List(c *gin.Context) {
	posts, err := h.postService.List()
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, posts)
}

func (h *PostHandler) Get(c *gin.Context) {
	post, err := h.postService.Get(c.Param("id"))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

func (h *PostHandler) Delete(c *gin.Context) {
	userID, ok := h.AuthedUserID(c)
	if !ok {
		return
	}

	if err := h.postService.Delete(c.Param("id"), userID); err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "Post removed"})
}

func (h *PostHandler) Like(c *gin.Context) {
	userID, ok := h.AuthedUserID(c)
	if !ok {
		return
	}

	likes, err := h.postService.Like(c.Param("id"), userID)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, likes)
}

func (h *PostHandler) Unlike(c *gin.Context) {
	userID, ok := h.AuthedUserID(c)
	if !ok {
		return
	}

	likes, err := h.postService.Unlike(c.Param("id"), userID)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, likes)
}
