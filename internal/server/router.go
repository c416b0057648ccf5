package server

import (
	handler "auction-etl/services/etl/handler"

	"github.com/gin-gonic/gin"
)

// SetupRouter configures all Gin routes for serve mode
func SetupRouter(runner handler.BatchRunner) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging

	etlHandler := handler.NewETLHandler(runner)

	batches := router.Group("/batches")
	{
		batches.POST("", etlHandler.RunBatchHandler)
	}

	users := router.Group("/users")
	{
		users.GET("", etlHandler.ListUsersHandler)
		users.GET("/:user_id", etlHandler.GetUserHandler)
	}

	return router
}
