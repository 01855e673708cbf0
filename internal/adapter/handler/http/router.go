package http

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/rubyautoparts/autoparts-catalog-service/internal/config"
)

type Router struct {
	router *gin.Engine
}

func NewRouter(
	cfg *config.HTTP,
	partHandler *PartHandler,
	uploadHandler *UploadHandler,
) (*Router, error) {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	// CORS
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.AllowedOrigins},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	// Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API index
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Ruby Auto Parts API",
			"version": "1.0.0",
			"endpoints": gin.H{
				"health": "/api/health",
				"parts":  "/api/parts",
				"upload": "/api/upload",
			},
		})
	})

	api := router.Group("/api")

	// Health check
	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Server is running"})
	})

	// Parts routes
	parts := api.Group("/parts")
	{
		parts.GET("", partHandler.ListParts)
		parts.GET("/category/:category", partHandler.ListPartsByCategory)
		parts.GET("/stats/summary", partHandler.GetStats)
		parts.GET("/:id", partHandler.GetPart)
		parts.POST("", partHandler.CreatePart)
		parts.PUT("/:id", partHandler.UpdatePart)
		parts.DELETE("/:id", partHandler.DeletePart)
	}

	// Upload routes
	upload := api.Group("/upload")
	{
		upload.POST("/image", uploadHandler.UploadImage)
		upload.POST("/images", uploadHandler.UploadImages)
	}

	router.NoRoute(func(c *gin.Context) {
		newErrorResponse(c, http.StatusNotFound, "Route not found")
	})

	return &Router{router: router}, nil
}

func (r *Router) Serve(addr string) error {
	return r.router.Run(addr)
}

func (r *Router) Engine() *gin.Engine {
	return r.router
}
