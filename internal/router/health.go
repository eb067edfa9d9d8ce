package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/golang/glog"
)

func HealthRoutes() *chi.Mux {
	router := chi.NewRouter()
	router.Get("/", healthHandler)
	return router
}

// GET: /
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("ok")); err != nil {
		glog.Warningf("failed to write response: %v\n", err)
	}
}
