package main

import (
	"github.com/gin-gonic/gin"
	"scholar-seeker.backend/internal/interfaces/http/handlers"
)

type routeDeps struct {
	authHandler        *handlers.AuthHandler
	scholarshipHandler *handlers.ScholarshipHandler
	profileHandler     *handlers.ProfileHandler
	matchHandler       *handlers.MatchHandler
	engagementHandler  *handlers.EngagementHandler
	authMiddleware     gin.HandlerFunc
}

func registerAPIV1Routes(r *gin.Engine, d routeDeps) {
	v1 := r.Group("/api/v1")
	{
		// Auth routes (public, except session-bound ones)
		auth := v1.Group("/auth")
		{
			auth.POST("/register", d.authHandler.Register)
			auth.POST("/login", d.authHandler.Login)
			auth.POST("/logout", d.authMiddleware, d.authHandler.Logout)
			auth.GET("/me", d.authMiddleware, d.authHandler.GetMe)
		}

		// Catalog routes (public read)
		scholarships := v1.Group("/scholarships")
		{
			scholarships.GET("", d.scholarshipHandler.List)
			scholarships.GET("/:id", d.scholarshipHandler.GetByID)
		}

		// Engagement routes on a single scholarship (protected)
		scholarshipActions := v1.Group("/scholarships")
		scholarshipActions.Use(d.authMiddleware)
		{
			scholarshipActions.POST("/:id/bookmark", d.engagementHandler.ToggleBookmark)
			scholarshipActions.POST("/:id/apply", d.engagementHandler.Apply)
			scholarshipActions.GET("/:id/engagement", d.engagementHandler.EngagementStatus)
		}

		// Profile routes (protected)
		profile := v1.Group("/profile")
		profile.Use(d.authMiddleware)
		{
			profile.GET("", d.profileHandler.Get)
			profile.PUT("", d.profileHandler.Update)
		}

		// Match routes; preview is public since it carries its own profile
		matches := v1.Group("/matches")
		{
			matches.GET("", d.authMiddleware, d.matchHandler.Match)
			matches.POST("/preview", d.matchHandler.Preview)
		}

		// Engagement list routes (protected)
		engagement := v1.Group("")
		engagement.Use(d.authMiddleware)
		{
			engagement.GET("/bookmarks", d.engagementHandler.ListBookmarks)
			engagement.GET("/applications", d.engagementHandler.ListApplications)
			engagement.GET("/dashboard", d.engagementHandler.Dashboard)
		}
	}
}
