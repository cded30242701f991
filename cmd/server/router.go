package main

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"tech-oh/internal/handler"
	"tech-oh/internal/middleware"
)

type handlers struct {
	health  *handler.HealthHandler
	feed    *handler.FeedHandler
	account *handler.AccountHandler
	profile *handler.ProfileHandler
	article *handler.ArticleHandler
	export  *handler.ExportHandler
}

func newRouter(h handlers, verifier middleware.TokenVerifier, limiter *middleware.RateLimiter) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Metrics())
	router.Use(middleware.AccessLog())

	// Health and metrics endpoints
	router.GET("/health", h.health.Health)
	router.GET("/ready", h.health.Ready)
	router.GET("/live", h.health.Live)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/api/v1")
	{
		feed := v1.Group("/feed")
		feed.Use(limiter.Middleware())
		{
			feed.GET("", h.feed.List)
			feed.GET("/:id", h.feed.Get)
		}

		authed := v1.Group("")
		authed.Use(middleware.Auth(verifier), limiter.Middleware())
		{
			authed.GET("/me", h.account.Me)
			authed.GET("/dashboard", h.account.Dashboard)

			authed.GET("/profile", h.profile.Get)
			authed.PUT("/profile", h.profile.Upsert)

			articles := authed.Group("/articles")
			{
				articles.GET("", h.article.List)
				articles.POST("", h.article.Create)
				articles.GET("/stats", h.article.Stats)
				articles.GET("/export", h.export.StreamExport)
				articles.GET("/:id", h.article.Get)
				articles.PATCH("/:id", h.article.Update)
				articles.DELETE("/:id", h.article.Delete)
			}
		}
	}

	return router
}
