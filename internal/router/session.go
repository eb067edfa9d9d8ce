package router

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/golang/glog"

	"learnify/internal/models"
	"learnify/internal/session"
)

// SessionVerifier checks a session token before it is cached.
type SessionVerifier interface {
	VerifySession(ctx context.Context, token string) (string, error)
}

// SessionRoutes caches and clears the local session the home screen reads on activation.
func SessionRoutes(storage session.Storage, keys session.Keys, verifier SessionVerifier) *chi.Mux {
	router := chi.NewRouter()

	router.Post("/", createSessionHandler(storage, keys, verifier))
	router.Post("/signout", signOutHandler(storage, keys))

	return router
}

// POST: /
func createSessionHandler(storage session.Storage, keys session.Keys, verifier SessionVerifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.CreateSessionRequest

		err := json.NewDecoder(r.Body).Decode(&req)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		req.Token = strings.TrimSpace(req.Token)
		req.Email = strings.TrimSpace(req.Email)
		if req.Token == "" {
			http.Error(w, "token must be a non-empty string", http.StatusBadRequest)
			return
		}

		if verifier != nil {
			if _, err := verifier.VerifySession(r.Context(), req.Token); err != nil {
				http.Error(w, err.Error(), http.StatusUnauthorized)
				return
			}
		}

		if err := storage.SetItem(r.Context(), keys.Token, req.Token); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		if req.Email != "" {
			err = storage.SetItem(r.Context(), keys.Email, req.Email)
		} else {
			err = storage.RemoveItem(r.Context(), keys.Email)
		}
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("success")); err != nil {
			glog.Warningf("failed to write response: %v\n", err)
		}
	}
}

// POST: /signout
func signOutHandler(storage session.Storage, keys session.Keys) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		for _, key := range []string{keys.Token, keys.Email} {
			if err := storage.RemoveItem(r.Context(), key); err != nil {
				http.Error(w, err.Error(), http.StatusInternalServerError)
				return
			}
		}

		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("success")); err != nil {
			glog.Warningf("failed to write response: %v\n", err)
		}
	}
}
