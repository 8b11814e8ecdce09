package http

import (
	stdhttp "net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/codesync/codesync-server/internal/config"
	"github.com/codesync/codesync-server/internal/core"
	"github.com/codesync/codesync-server/internal/store"
)

// NewServer builds the HTTP server: document CRUD, health, and the WebSocket endpoint.
func NewServer(hub *core.Hub, st store.Store, cfg *config.Config, logger *zerolog.Logger) *stdhttp.Server {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(LoggerMiddleware(logger))

	docs := NewDocumentHandlers(st, logger)
	health := NewHealthHandler(hub)

	api := router.Group("/api")
	{
		api.GET("/documents", docs.List)
		api.GET("/documents/:id", docs.Get)
		api.POST("/documents", docs.Create)
		api.PUT("/documents/:id", docs.Update)
		api.DELETE("/documents/:id", docs.Delete)
		api.GET("/health", health.Health)
	}

	// The WebSocket upgrade needs the raw ResponseWriter: gin's writer
	// refuses to hijack once the 101 handshake has been written. Serve /ws
	// from a plain mux and hand everything else to gin.
	ws := NewWSHandler(hub, cfg.WSMessageLimit, logger)
	mux := stdhttp.NewServeMux()
	mux.Handle("/ws", ws)
	mux.Handle("/", router)

	return &stdhttp.Server{
		Addr:              cfg.Addr,
		Handler:           mux,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
	}
}
