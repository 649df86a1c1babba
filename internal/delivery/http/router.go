package http

import (
	"github.com/creadoresuy/directorio-backend/internal/delivery/http/handler"
	"github.com/creadoresuy/directorio-backend/internal/delivery/http/middleware"
	"github.com/gin-gonic/gin"
)

type Router struct {
	authHandler         *handler.AuthHandler
	registrationHandler *handler.RegistrationHandler
	directoryHandler    *handler.DirectoryHandler
	moderationHandler   *handler.ModerationHandler
	adminSession        *middleware.AdminSessionMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	registrationHandler *handler.RegistrationHandler,
	directoryHandler *handler.DirectoryHandler,
	moderationHandler *handler.ModerationHandler,
	adminSession *middleware.AdminSessionMiddleware,
) *Router {
	return &Router{
		authHandler:         authHandler,
		registrationHandler: registrationHandler,
		directoryHandler:    directoryHandler,
		moderationHandler:   moderationHandler,
		adminSession:        adminSession,
	}
}

func (r *Router) Setup() *gin.Engine {
	router := gin.Default()

	// Health check (supports both GET and HEAD)
	healthHandler := func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	}
	router.GET("/health", healthHandler)
	router.HEAD("/health", healthHandler)

	// Public registration
	router.POST("/registration", r.registrationHandler.Register)

	// Public directory
	directory := router.Group("/directory")
	{
		directory.GET("", r.directoryHandler.Search)
		directory.GET("/counts", r.directoryHandler.Counts)
		directory.GET("/:id", r.directoryHandler.GetByID)
	}

	// Moderation
	moderation := router.Group("/moderation")
	{
		// left ungated on purpose: the panel reads it without a session
		moderation.GET("/approved", r.moderationHandler.ListApproved)

		gated := moderation.Group("")
		gated.Use(r.adminSession.RequireAdmin())
		{
			gated.GET("/pending", r.moderationHandler.ListPending)
			gated.PATCH("/:id/approve", r.moderationHandler.Approve)
			gated.DELETE("/:id", r.moderationHandler.Delete)
			gated.GET("/by-email", r.moderationHandler.FindByEmail)
			gated.PATCH("/by-email", r.moderationHandler.ResetByEmail)
		}
	}

	// Admin auth
	auth := router.Group("/auth")
	{
		auth.POST("/login", r.authHandler.Login)
	}

	return router
}
