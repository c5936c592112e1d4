package http

import (
	"github.com/gin-gonic/gin"
	"github.com/iamasit07/align4/internal/service/game"
	"github.com/iamasit07/align4/internal/transport/http/middleware"
	"github.com/iamasit07/align4/pkg/auth"
)

type RouterDeps struct {
	Tables         *game.Manager
	Tokens         *auth.TokenIssuer
	AllowedOrigins []string
	// WebSocket upgrades GET /ws/:id after table auth; nil disables the route.
	WebSocket gin.HandlerFunc
	// StaticDir holds a built browser renderer; empty or missing disables it.
	StaticDir string
}

func NewRouter(deps RouterDeps) *gin.Engine {
	router := gin.New()
	router.Use(middleware.RequestLogger(), gin.Recovery())
	router.Use(middleware.SecurityHeadersMiddleware())
	router.Use(middleware.CORSMiddleware(deps.AllowedOrigins))

	tableHandler := NewTableHandler(deps.Tables, deps.Tokens)
	watchHandler := NewWatchHandler(deps.Tables)

	// Auth middleware for table routes
	authMW := middleware.TableAuthMiddleware(deps.Tokens)

	// Public routes
	router.GET("/api/config", tableHandler.GetConfig)
	router.GET("/api/tables", watchHandler.ListTables)
	router.POST("/api/tables", tableHandler.CreateTable)

	// Protected routes
	protected := router.Group("/api/tables/:id")
	protected.Use(authMW)
	{
		protected.GET("", tableHandler.GetTable)
		protected.POST("/drop", tableHandler.Drop)
		protected.POST("/new-game", tableHandler.NewGame)
		protected.GET("/tally", tableHandler.GetTally)
		protected.DELETE("", tableHandler.DeleteTable)
	}

	if deps.WebSocket != nil {
		router.GET("/ws/:id", authMW, deps.WebSocket)
	}

	if deps.StaticDir != "" {
		mountStatic(router, deps.StaticDir)
	}

	return router
}
