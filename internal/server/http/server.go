// Package http exposes the server's functionality over a JSON HTTP API
// built on gin. It translates transport concerns (routing, auth headers,
// status codes) to and from the service layer.
package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dmitrijs2005/coderefine/internal/logging"
	"github.com/dmitrijs2005/coderefine/internal/server/services"
)

const shutdownTimeout = 5 * time.Second

type HTTPServer struct {
	address   string
	users     *services.UserService
	analysis  *services.AnalysisService
	logger    logging.Logger
	jwtSecret []byte
}

func NewHTTPServer(a string, l logging.Logger, us *services.UserService, as *services.AnalysisService, secretKey string) *HTTPServer {
	return &HTTPServer{
		address:   a,
		logger:    l.With("module", "http_server"),
		users:     us,
		analysis:  as,
		jwtSecret: []byte(secretKey),
	}
}

// router builds the gin engine with all routes and middleware attached.
func (s *HTTPServer) router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery(), s.requestIDMiddleware(), s.accessLogMiddleware())

	api := r.Group("/api/v1")
	{
		api.GET("/ping", s.Ping)
		api.GET("/languages", s.Languages)
		api.POST("/auth/register", s.Register)
		api.POST("/auth/login", s.Login)
		api.POST("/auth/refresh", s.Refresh)

		authed := api.Group("", s.accessTokenMiddleware())
		{
			authed.POST("/analyze", s.Analyze)
			authed.GET("/history", s.History)
		}
	}

	return r
}

// Run serves the API until ctx is cancelled, then shuts down gracefully.
func (s *HTTPServer) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:    s.address,
		Handler: s.router(),
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info(ctx, "Starting HTTP server", "address", s.address)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return <-errCh
	case err := <-errCh:
		return err
	}
}
