package handler

import (
	"errors"
	"net/http"

	"social-network-backend/internal/middleware"
	"social-network-backend/internal/post/model"
	"social-network-backend/internal/post/service"
	apperrors "social-network-backend/pkg/errors"
	"social-network-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PostHandler struct {
	service *service.PostService
}

func NewHandler(svc *service.PostService) *PostHandler {
	return &PostHandler{service: svc}
}

// RegisterRoutes wires the post endpoints; all of them sit behind the guard.
func (h *PostHandler) RegisterRoutes(router *gin.RouterGroup) {
	posts := router.Group("/posts")
	{
		posts.GET("", h.ListPosts)
		posts.POST("", h.CreatePost)
		posts.GET("/user-posts", h.ListUserPosts)
		posts.PATCH("/:postID", h.LikePost)
	}
}

func (h *PostHandler) ListPosts(c *gin.Context) {
	posts, err := h.service.List(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}

	if len(posts) == 0 {
		utils.ErrorResponse(c, http.StatusNotFound, "No posts yet. Post something so that you can view posts.")
		return
	}

	utils.SuccessResponse(c, http.StatusOK, gin.H{"posts": posts})
}

func (h *PostHandler) CreatePost(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Please log in in order to post.")
		return
	}

	var request model.CreatePostRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	request.Description = utils.SanitizeText(request.Description)

	post, err := h.service.Create(c.Request.Context(), user.ID, &request)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, gin.H{"post": post})
}

func (h *PostHandler) ListUserPosts(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "You are not logged in.")
		return
	}

	posts, err := h.service.ListByUser(c.Request.Context(), user.ID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, gin.H{"posts": posts})
}

func (h *PostHandler) LikePost(c *gin.Context) {
	postID, err := uuid.Parse(c.Param("postID"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid post id")
		return
	}

	post, err := h.service.Like(c.Request.Context(), postID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, gin.H{"post": post})
}

func respondWithError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrPostNotFound):
		utils.ErrorResponse(c, http.StatusNotFound, err.Error())
	default:
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			utils.ErrorResponse(c, http.StatusBadRequest, appErr.Message)
			return
		}
		utils.ErrorResponse(c, http.StatusInternalServerError, "Internal server error")
	}
}
