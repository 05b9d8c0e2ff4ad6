// Package server assembles the HTTP router and runs it until the context is
// cancelled.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/sirupsen/logrus"

	"github.com/Vovarama1992/qashqai-voice/internal/chat"
	"github.com/Vovarama1992/qashqai-voice/internal/config"
)

const shutdownTimeout = 10 * time.Second

func NewRouter(cfg config.Server, h *chat.Handler, log logrus.FieldLogger) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(chat.RequestLogger(log))
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", chat.RequestIDHeader},
		ExposedHeaders: []string{chat.RequestIDHeader},
	}))

	chat.RegisterRoutes(r, h)

	// --- health ---
	r.Get("/ping", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("pong"))
	})

	return r
}

// Run serves handler on :port and shuts down gracefully when ctx is done.
func Run(ctx context.Context, port string, handler http.Handler, log logrus.FieldLogger) error {
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Infof("listening on :%s", port)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
