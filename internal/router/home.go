package router

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/golang/glog"

	"learnify/internal/home"
	"learnify/internal/models"
)

// HomeRoutes exposes the home screen's state and its triggers to a rendering client.
func HomeRoutes(screen *home.Screen) *chi.Mux {
	router := chi.NewRouter()

	router.Get("/", getHomeHandler(screen))
	router.Post("/refresh", refreshHomeHandler(screen))
	router.Post("/search", searchHomeHandler(screen))
	router.Delete("/error", dismissErrorHandler(screen))

	return router
}

// GET: /
func getHomeHandler(screen *home.Screen) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, screen.View())
	}
}

// POST: /refresh
// A failed fetch still answers 200: the failure is reported in the view's error slot.
func refreshHomeHandler(screen *home.Screen) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := screen.Refresh(r.Context()); err != nil {
			glog.Warningf("home refresh: %v\n", err)
		}
		render.JSON(w, r, screen.View())
	}
}

// POST: /search
func searchHomeHandler(screen *home.Screen) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.SearchRequest

		err := json.NewDecoder(r.Body).Decode(&req)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		screen.SetQuery(req.Query)
		render.JSON(w, r, screen.View())
	}
}

// DELETE: /error
func dismissErrorHandler(screen *home.Screen) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		screen.DismissError()
		render.JSON(w, r, screen.View())
	}
}
