package http

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"internbridge/internal/http/handlers"
	"internbridge/internal/http/metrics"
	httpmw "internbridge/internal/http/middleware"
)

type RouterDependencies struct {
	ApplicationHandler  *handlers.ApplicationHandler
	NotificationHandler *handlers.NotificationHandler
	CompanyHandler      *handlers.CompanyHandler
	InternshipHandler   *handlers.InternshipHandler
	StudentHandler      *handlers.StudentHandler
	Metrics             *metrics.Collector
	Logger              *slog.Logger
	RequestTimeout      time.Duration
}

type Router struct {
	deps RouterDependencies
}

const maxBodyBytes = 1 << 20

func NewRouter(deps RouterDependencies) http.Handler {
	r := &Router{deps: deps}
	return httpmw.Chain(r.baseHandler(),
		httpmw.RequestID,
		httpmw.Logging(deps.Logger),
		httpmw.BodyLimit(maxBodyBytes),
		httpmw.Recover(deps.Logger),
		httpmw.Metrics(deps.Metrics),
		httpmw.Timeout(deps.RequestTimeout))
}

func (r *Router) baseHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		path := req.URL.Path

		switch {
		case req.Method == http.MethodGet && path == "/health":
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ok"))
			return
		case req.Method == http.MethodGet && path == "/metrics":
			metrics.NewHandler(r.deps.Metrics).ServeHTTP(w, req)
			return

		case req.Method == http.MethodPost && path == "/applications":
			r.deps.ApplicationHandler.Submit(w, req)
			return
		case req.Method == http.MethodGet && path == "/applications":
			r.deps.ApplicationHandler.List(w, req)
			return
		case req.Method == http.MethodPatch && strings.HasPrefix(path, "/applications/") && strings.HasSuffix(path, "/status"):
			r.deps.ApplicationHandler.ChangeStatus(w, req)
			return

		case req.Method == http.MethodGet && path == "/notifications/student":
			r.deps.NotificationHandler.ListStudent(w, req)
			return
		case req.Method == http.MethodGet && path == "/notifications/company":
			r.deps.NotificationHandler.ListCompany(w, req)
			return
		case req.Method == http.MethodPatch && path == "/notifications":
			r.deps.NotificationHandler.MarkRead(w, req)
			return

		case req.Method == http.MethodGet && path == "/internships":
			r.deps.InternshipHandler.List(w, req)
			return
		case req.Method == http.MethodPost && path == "/internships":
			r.deps.InternshipHandler.Create(w, req)
			return
		case req.Method == http.MethodGet && strings.HasPrefix(path, "/internships/"):
			r.deps.InternshipHandler.Get(w, req)
			return

		case strings.HasPrefix(path, "/companies/") && strings.HasSuffix(path, "/locations"):
			switch req.Method {
			case http.MethodGet:
				r.deps.CompanyHandler.Locations(w, req)
				return
			case http.MethodPut:
				r.deps.CompanyHandler.UpdateLocations(w, req)
				return
			}
		case strings.HasPrefix(path, "/companies/") && strings.HasSuffix(path, "/benefits"):
			switch req.Method {
			case http.MethodGet:
				r.deps.CompanyHandler.Benefits(w, req)
				return
			case http.MethodPut:
				r.deps.CompanyHandler.UpdateBenefits(w, req)
				return
			}
		case req.Method == http.MethodGet && strings.HasPrefix(path, "/companies/"):
			r.deps.CompanyHandler.Get(w, req)
			return

		case req.Method == http.MethodGet && strings.HasPrefix(path, "/students/"):
			r.deps.StudentHandler.Get(w, req)
			return
		case req.Method == http.MethodPut && strings.HasPrefix(path, "/students/"):
			r.deps.StudentHandler.Update(w, req)
			return
		}

		http.NotFound(w, req)
	})
}
