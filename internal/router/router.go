package router

import (
	"github.com/gin-gonic/gin"

	"imglabeler/internal/handler"
	"imglabeler/internal/middleware"
)

// Setup configures the Gin engine for the local invoke server.
func Setup(invokeH *handler.InvokeHandler, healthH *handler.HealthHandler) *gin.Engine {
	r := gin.New()

	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())

	r.GET("/healthz", healthH.Liveness)
	r.POST("/invoke", invokeH.Invoke)

	return r
}
