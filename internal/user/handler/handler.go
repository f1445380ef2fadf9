package handler

import (
	"errors"
	"net/http"

	"social-network-backend/internal/config"
	"social-network-backend/internal/logger"
	"social-network-backend/internal/middleware"
	"social-network-backend/internal/user/model"
	"social-network-backend/internal/user/service"
	apperrors "social-network-backend/pkg/errors"
	"social-network-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type UserHandler struct {
	service    *service.UserService
	cookie     config.CookieConfig
	sessionTTL int // seconds, mirrors the token's embedded expiry
}

func NewHandler(svc *service.UserService, cookie config.CookieConfig, sessionTTLSeconds int) *UserHandler {
	return &UserHandler{
		service:    svc,
		cookie:     cookie,
		sessionTTL: sessionTTLSeconds,
	}
}

// RegisterRoutes wires the user endpoints. The guard is applied
// per-route because activation links and the user lookup share the
// GET /users/:userID path shape: UUID parameters resolve to the guarded
// lookup, anything else is treated as an activation string.
func (h *UserHandler) RegisterRoutes(router *gin.RouterGroup, guard gin.HandlerFunc) {
	users := router.Group("/users")
	{
		users.POST("/signup", h.SignUp)
		users.POST("/login", h.LogIn)
		users.GET("/logout", h.LogOut)
		users.POST("/forgotPassword", h.ForgotPassword)
		users.PATCH("/resetPassword/:token", h.ResetPassword)

		users.GET("", guard, h.ListUsers)
		users.PATCH("/:userID", guard, h.ToggleFriend)

		users.GET("/:userID", func(c *gin.Context) {
			if _, err := uuid.Parse(c.Param("userID")); err == nil {
				guard(c)
				if c.IsAborted() {
					return
				}
				h.GetUser(c)
				return
			}
			h.VerifyAccount(c)
		})
	}
}

func (h *UserHandler) SignUp(c *gin.Context) {
	var request model.SignUpRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	request.Email = utils.SanitizeEmail(request.Email)
	request.FirstName = utils.SanitizeString(request.FirstName)
	request.LastName = utils.SanitizeString(request.LastName)
	request.Location = utils.SanitizeString(request.Location)
	request.Occupation = utils.SanitizeString(request.Occupation)

	user, err := h.service.SignUp(c.Request.Context(), &request)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, gin.H{"user": user.ToResponse()})
}

func (h *UserHandler) VerifyAccount(c *gin.Context) {
	activationString := c.Param("userID")

	if err := h.service.VerifyAccount(c.Request.Context(), activationString); err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, gin.H{"message": "Account successfully verified."})
}

func (h *UserHandler) LogIn(c *gin.Context) {
	var request model.LogInRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	request.Email = utils.SanitizeEmail(request.Email)

	token, err := h.service.LogIn(c.Request.Context(), &request)
	if err != nil {
		respondWithError(c, err)
		return
	}

	// Cookie expiry mirrors the token's embedded expiry claim.
	c.SetCookie(h.cookie.Name, token, h.sessionTTL, "/", "", h.cookie.Secure, h.cookie.HTTPOnly)

	utils.SuccessResponse(c, http.StatusOK, gin.H{"token": token})
}

func (h *UserHandler) LogOut(c *gin.Context) {
	c.SetCookie(h.cookie.Name, "", -1, "/", "", h.cookie.Secure, h.cookie.HTTPOnly)

	utils.SuccessResponse(c, http.StatusOK, gin.H{"message": "Successfully logged out."})
}

func (h *UserHandler) ForgotPassword(c *gin.Context) {
	var request model.ForgotPasswordRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	request.Email = utils.SanitizeEmail(request.Email)

	if err := h.service.ForgotPassword(c.Request.Context(), &request); err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, gin.H{"message": "A reset token has been sent to your email."})
}

func (h *UserHandler) ResetPassword(c *gin.Context) {
	var request model.ResetPasswordRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.service.ResetPassword(c.Request.Context(), c.Param("token"), &request); err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, gin.H{"message": "Password successfully reset."})
}

func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.service.ListUsers(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, gin.H{"users": users})
}

func (h *UserHandler) GetUser(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("userID"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid user id")
		return
	}

	user, err := h.service.GetUser(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, gin.H{"user": user})
}

// ToggleFriend adds or removes the friend named in the body on the
// identity named in the path.
func (h *UserHandler) ToggleFriend(c *gin.Context) {
	targetID, err := uuid.Parse(c.Param("userID"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid user id")
		return
	}

	var request model.ToggleFriendRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.service.ToggleFriend(c.Request.Context(), targetID, request.FriendID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, gin.H{"user": user})
}

func respondWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}

	switch {
	case errors.Is(err, apperrors.ErrEmailTaken):
		utils.ErrorResponse(c, http.StatusConflict, err.Error())
	case errors.Is(err, apperrors.ErrInvalidCredentials),
		errors.Is(err, apperrors.ErrAccountNotVerified),
		errors.Is(err, apperrors.ErrTokenInvalid),
		errors.Is(err, apperrors.ErrTokenExpired),
		errors.Is(err, apperrors.ErrUnauthorized):
		utils.ErrorResponse(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, apperrors.ErrUserNotFound),
		errors.Is(err, apperrors.ErrPostNotFound):
		utils.ErrorResponse(c, http.StatusNotFound, err.Error())
	case errors.Is(err, apperrors.ErrActivationNotFound),
		errors.Is(err, apperrors.ErrResetTokenInvalid),
		errors.Is(err, apperrors.ErrSelfFriend):
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, apperrors.ErrEmailDelivery):
		utils.ErrorResponse(c, http.StatusInternalServerError, err.Error())
	default:
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			utils.ErrorResponse(c, http.StatusBadRequest, appErr.Message)
			return
		}

		requestID := middleware.GetRequestID(c)
		logger.Error("Internal server error",
			zap.String("request_id", requestID),
			zap.String("path", c.Request.URL.Path),
			zap.String("method", c.Request.Method),
			zap.Error(err),
		)
		utils.ErrorResponse(c, http.StatusInternalServerError, "Internal server error")
	}
}
