package handler

import (
	"errors"
	"net/http"

	"social-network-backend/internal/comment/model"
	"social-network-backend/internal/comment/service"
	"social-network-backend/internal/middleware"
	apperrors "social-network-backend/pkg/errors"
	"social-network-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CommentHandler struct {
	service *service.CommentService
}

func NewHandler(svc *service.CommentService) *CommentHandler {
	return &CommentHandler{service: svc}
}

// RegisterRoutes wires the comment endpoints; all of them sit behind the guard.
func (h *CommentHandler) RegisterRoutes(router *gin.RouterGroup) {
	comments := router.Group("/comments")
	{
		comments.GET("/:postID", h.ListPostComments)
		comments.POST("/:postID", h.CreateComment)
	}
}

func (h *CommentHandler) ListPostComments(c *gin.Context) {
	postID, err := uuid.Parse(c.Param("postID"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid post id")
		return
	}

	comments, err := h.service.ListForPost(c.Request.Context(), postID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, gin.H{"comments": comments})
}

func (h *CommentHandler) CreateComment(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Please log in to comment.")
		return
	}

	postID, err := uuid.Parse(c.Param("postID"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid post id")
		return
	}

	var request model.CreateCommentRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	request.Body = utils.SanitizeText(request.Body)

	comment, err := h.service.Create(c.Request.Context(), user.ID, postID, &request)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, gin.H{"comment": comment})
}

func respondWithError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrPostNotFound),
		errors.Is(err, apperrors.ErrCommentNotFound):
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
