package web

import (
	"context"
	"net/http"

	"qa-mentor/config"
	"qa-mentor/knowledge"
	"qa-mentor/search"
	"qa-mentor/security"
	"qa-mentor/session"
	"qa-mentor/web/format"
	"qa-mentor/web/handlers"
	"qa-mentor/web/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Server struct {
	router   *gin.Engine
	config   *config.Config
	index    *knowledge.Index
	pipeline *search.Pipeline
	store    *session.Store
	machine  *session.Machine
	filter   *security.Filter
	renderer *format.Renderer
	logger   *zap.Logger
}

func NewServer(
	cfg *config.Config,
	index *knowledge.Index,
	pipeline *search.Pipeline,
	store *session.Store,
	machine *session.Machine,
	filter *security.Filter,
	logger *zap.Logger,
) *Server {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(func(c *gin.Context) {
		// Add logger to context
		c.Set("logger", logger)
		c.Next()
	})
	router.Use(middleware.Session())

	server := &Server{
		router:   router,
		config:   cfg,
		index:    index,
		pipeline: pipeline,
		store:    store,
		machine:  machine,
		filter:   filter,
		renderer: format.NewRenderer(cfg.BotName, cfg.MaxMessageLength, logger),
		logger:   logger,
	}

	server.setupRoutes()
	return server
}

func (s *Server) setupRoutes() {
	chatHandler := handlers.NewChatHandler(s.pipeline, s.store, s.machine, s.filter, s.renderer, s.logger)
	topicsHandler := handlers.NewTopicsHandler(s.index)

	api := s.router.Group("/api")
	api.POST("/chat", chatHandler.Send)
	api.POST("/navigate", chatHandler.Navigate)
	api.GET("/search", chatHandler.Search)
	api.GET("/topics", topicsHandler.List)
	api.GET("/health", s.health)
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"topics":   s.index.TopicCount(),
		"sessions": s.store.Count(),
	})
}

// Handler exposes the routed HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) Start(ctx context.Context, addr string) error {
	s.logger.Info("Starting web server", zap.String("address", addr))

	srv := &http.Server{
		Addr:    addr,
		Handler: s.router,
	}

	// Start server in a goroutine
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.logger.Error("Web server failed to start", zap.Error(err))
		}
	}()

	// Wait for context cancellation
	<-ctx.Done()

	s.logger.Info("Shutting down web server")
	return srv.Shutdown(context.Background())
}
