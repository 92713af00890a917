package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/Domenick1991/courtbooking/api"
	"github.com/Domenick1991/courtbooking/config"
	"github.com/Domenick1991/courtbooking/internal/service/availability"
	"github.com/Domenick1991/courtbooking/internal/service/booking"
	"github.com/gin-gonic/gin"
)

// Run starts the public HTTP server and blocks until the context is
// canceled or the server fails.
func Run(ctx context.Context, cfg *config.Config, engine api.WorkflowRunner, availabilitySvc availability.UseCase, bookingSvc booking.UseCase) error {
	router := NewRouter(engine, availabilitySvc, bookingSvc)

	httpServer := &http.Server{
		Addr:    cfg.HTTP.Address,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- httpServer.ListenAndServe() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	}
}

// NewRouter wires the public handlers onto a gin engine. The slot and
// booking read routes are registered only when this process holds the
// services backed by the schedule state; in the remote topology the step
// server that owns the repository serves them instead, so a nil service
// skips its route.
func NewRouter(engine api.WorkflowRunner, availabilitySvc availability.UseCase, bookingSvc booking.UseCase) *gin.Engine {
	router := gin.Default()

	api.NewChatHandler(engine).Register(router.Group("/chat"))
	if availabilitySvc != nil {
		api.NewSlotHandler(availabilitySvc).Register(router.Group("/slots"))
	}
	if bookingSvc != nil {
		api.NewBookingHandler(bookingSvc).Register(router.Group("/bookings"))
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	return router
}
