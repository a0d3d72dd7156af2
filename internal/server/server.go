// Package server assembles the HTTP router and its middleware chain.
package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "catalog/internal/docs" // Import swagger docs
	"catalog/internal/handlers"
	"catalog/internal/middleware"
	"catalog/internal/services"
)

// Services are the dependencies the HTTP layer needs.
type Services struct {
	Catalog  services.CatalogServicer
	Sessions services.SessionServicer
}

// NewRouter builds the Gin engine with every route registered.
func NewRouter(svc Services) *gin.Engine {
	catalogHandler := handlers.NewCatalogHandler(svc.Catalog)
	sessionHandler := handlers.NewSessionHandler(svc.Sessions, svc.Catalog)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())
	router.Use(middleware.CORS())
	router.NoRoute(middleware.NotFound())

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")

	v1.GET("/users", catalogHandler.GetUsers)
	v1.GET("/categories", catalogHandler.GetCategories)
	v1.GET("/products", catalogHandler.GetProducts)

	sessions := v1.Group("/sessions")
	sessions.POST("", sessionHandler.CreateSession)
	sessions.GET("/:id", sessionHandler.GetSession)
	sessions.POST("/:id/actions", sessionHandler.DispatchAction)
	sessions.DELETE("/:id", sessionHandler.DeleteSession)

	return router
}
