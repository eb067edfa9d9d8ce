package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/golang/glog"

	"learnify/internal/home"
	"learnify/internal/middleware"
	"learnify/internal/models"
	"learnify/internal/qerrors"
	"learnify/internal/search"
)

// CourseRoutes serves stateless course searches using the session token carried by the request.
func CourseRoutes(source home.CourseSource) *chi.Mux {
	router := chi.NewRouter()

	router.Get("/", getCoursesHandler(source))

	return router
}

// GET: /?q={query}
func getCoursesHandler(source home.CourseSource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req := models.GetCoursesRequest{
			Query: r.URL.Query().Get("q"),
			Token: middleware.GetSessionToken(r),
		}

		if source == nil {
			http.Error(w, qerrors.CourseSourceUnavailableError.Error(), http.StatusServiceUnavailable)
			return
		}

		courses, err := source.ListCourses(r.Context(), req.Token)
		if err != nil {
			glog.Warningf("error listing courses: %v\n", err)
			http.Error(w, qerrors.Message(err), http.StatusBadGateway)
			return
		}

		render.JSON(w, r, search.Filter(courses, req.Query))
	}
}
