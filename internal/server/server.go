package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"learnify/internal/config"
	"learnify/internal/home"
	lmw "learnify/internal/middleware"
	rtr "learnify/internal/router"
	"learnify/internal/session"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
)

// Dependencies are the components the HTTP surface is wired to.
type Dependencies struct {
	Screen   *home.Screen
	Source   home.CourseSource
	Storage  session.Storage
	Keys     session.Keys
	Verifier rtr.SessionVerifier
}

func Routes(cfg *config.ServerConfig, deps *Dependencies) *chi.Mux {
	router := chi.NewRouter()
	router.Use(
		middleware.RequestID,
		middleware.Logger, // Log API Request Calls
		middleware.Recoverer,
		lmw.SessionCtx(cfg.SessionCookieName),
	)

	router.Route("/", func(r chi.Router) {
		r.Mount("/", rtr.HealthRoutes())
	})

	router.Route("/v1", func(r chi.Router) {
		r.Mount("/home", rtr.HomeRoutes(deps.Screen))
		r.Mount("/courses", rtr.CourseRoutes(deps.Source))
		r.Mount("/session", rtr.SessionRoutes(deps.Storage, deps.Keys, deps.Verifier))
	})

	return router
}

func Handler(cfg *config.ServerConfig, deps *Dependencies) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedHeaders:   []string{"Cookie", "Content-Type", "Authorization"},
		AllowedMethods:   []string{"GET", "POST", "DELETE"},
		AllowCredentials: true,
	})
	return c.Handler(Routes(cfg, deps))
}

// Start serves until ctx is cancelled, then shuts down gracefully.
func Start(ctx context.Context, cfg *config.ServerConfig, deps *Dependencies) error {
	if cfg == nil {
		return errors.New("missing or invalid configuration")
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%v", cfg.Port),
		Handler:           Handler(cfg, deps),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errs := make(chan error, 1)
	go func() {
		log.Printf("Server is listening on port %v\n", cfg.Port)
		errs <- srv.ListenAndServe()
	}()

	select {
	case err := <-errs:
		return err
	case <-ctx.Done():
	}

	log.Println("⏳ Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errs; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
