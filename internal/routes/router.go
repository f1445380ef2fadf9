package routes

import (
	"net/http"

	commenthandler "social-network-backend/internal/comment/handler"
	commentrepository "social-network-backend/internal/comment/repository"
	commentservice "social-network-backend/internal/comment/service"
	"social-network-backend/internal/config"
	"social-network-backend/internal/database"
	"social-network-backend/internal/logger"
	"social-network-backend/internal/mailer"
	"social-network-backend/internal/middleware"
	posthandler "social-network-backend/internal/post/handler"
	postrepository "social-network-backend/internal/post/repository"
	postservice "social-network-backend/internal/post/service"
	"social-network-backend/internal/token"
	userhandler "social-network-backend/internal/user/handler"
	userrepository "social-network-backend/internal/user/repository"
	userservice "social-network-backend/internal/user/service"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(cfg *config.Config, db *database.Database) *gin.Engine {
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.SecurityHeadersMiddleware())
	router.Use(middleware.CORSMiddleware(&cfg.CORS))
	router.Use(middleware.RequestSizeLimitMiddleware(middleware.DefaultMaxRequestSize))
	if cfg.RateLimit.RPS > 0 {
		router.Use(middleware.RateLimitMiddleware(cfg.RateLimit.RPS, cfg.RateLimit.Burst))
	}

	router.GET("/health", func(c *gin.Context) {
		if err := db.Health(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":  "fail",
				"message": "Database connection failed",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":  "success",
			"message": "Service is running",
		})
	})

	tokens := token.NewManager(cfg.JWT.Secret, cfg.JWT.SessionTTL())
	mail := mailer.FromConfig(cfg.SMTP)

	userRepo := userrepository.NewRepository(db)
	userSvc := userservice.NewService(userRepo, tokens, mail, cfg.Server.BaseURL, cfg.Reset.TokenTTL)
	userHandler := userhandler.NewHandler(userSvc, cfg.Cookie, int(cfg.JWT.SessionTTL().Seconds()))

	postRepo := postrepository.NewRepository(db)
	postSvc := postservice.NewService(postRepo)
	postHandler := posthandler.NewHandler(postSvc)

	commentRepo := commentrepository.NewRepository(db)
	commentSvc := commentservice.NewService(commentRepo, postRepo)
	commentHandler := commenthandler.NewHandler(commentSvc)

	guard := middleware.AuthGuard(tokens, userRepo, cfg.Cookie)

	v1 := router.Group("/api/v1")
	{
		userHandler.RegisterRoutes(v1, guard)

		protected := v1.Group("")
		protected.Use(guard)
		{
			postHandler.RegisterRoutes(protected)
			commentHandler.RegisterRoutes(protected)
		}
	}

	logger.Info("All routes initialized")
	return router
}
