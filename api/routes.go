package api

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/opentracing/opentracing-go"

	"github.com/mailtriage/mailtriage/api/handlers"
	"github.com/mailtriage/mailtriage/api/middleware"
	"github.com/mailtriage/mailtriage/internal/repository"
	"github.com/mailtriage/mailtriage/internal/tracing"
	"github.com/mailtriage/mailtriage/services"
)

// RegisterRoutes sets up all API endpoints
func RegisterRoutes(ctx context.Context, r *gin.Engine, s *services.Services, repos *repository.Repositories, apikey string) {
	if s == nil {
		panic("Services cannot be nil")
	}
	if repos == nil {
		panic("Repositories cannot be nil")
	}

	// Add recovery middlewares
	r.Use(gin.Recovery())
	r.Use(tracing.RecoveryWithJaeger(opentracing.GlobalTracer()))

	// Health endpoint (no auth)
	r.GET("/health", handlers.HealthCheck)

	apiKeyMiddleware := middleware.APIKeyMiddleware(middleware.APIKeyConfig{
		HeaderName:  "X-MAILTRIAGE-API-KEY",
		ValidAPIKey: apikey,
	})

	// API group with version
	api := r.Group("/v1")
	api.Use(apiKeyMiddleware)
	{
		api.POST("/process_email", handlers.ProcessEmail(s.IngestionService))

		requests := api.Group("/requests")
		{
			requests.GET("", handlers.ListRequestTypes(repos.RequestTypeRepository))
			requests.POST("", handlers.AddRequestType(repos.RequestTypeRepository))
		}
	}
}
