package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/yungbote/koinonia-backend/internal/handlers"
)

type RouterConfig struct {
	SyllabusHandler *handlers.SyllabusHandler
	ManifestHandler *handlers.ManifestHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{
			"http://localhost:80",
			"http://localhost:3000",
		},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))

	router.GET("/healthcheck", handlers.HealthCheck)

	api := router.Group("/api")
	{
		api.POST("/syllabus/paths", cfg.SyllabusHandler.GeneratePath)
		api.GET("/syllabus/paths/:pathID", cfg.SyllabusHandler.GetPath)
		api.GET("/manifest", cfg.ManifestHandler.GetManifest)
	}

	return router
}
