package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/polkiloo/bookbot/internal/server/http/handlers"
	"github.com/polkiloo/bookbot/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.StorefrontFacade, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	chatHandler := handlers.NewChatHandler(facade)
	orderHandler := handlers.NewOrderHandler(facade)

	api := engine.Group("/api")

	chat := api.Group("/chat")
	chat.POST("/start", chatHandler.Start)
	chat.POST("/message", chatHandler.Message)

	orders := api.Group("/orders")
	orders.GET("", orderHandler.List)
	orders.GET("/stats", orderHandler.Stats)
	orders.PATCH("/:id/status", orderHandler.UpdateStatus)

	return engine
}
