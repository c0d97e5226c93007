package http

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"risuwork/internal/http/handlers"
	httpmw "risuwork/internal/http/middleware"
)

type RouterDependencies struct {
	AccountHandler     *handlers.AccountHandler
	JobHandler         *handlers.JobHandler
	ApplicationHandler *handlers.ApplicationHandler
	SearchHandler      *handlers.SearchHandler
	AuthMiddleware     *httpmw.AuthMiddleware
	Logger             *slog.Logger
	RequestTimeout     time.Duration
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
		httpmw.Timeout(deps.RequestTimeout),
	)
}

func (r *Router) baseHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		path := req.URL.Path

		switch {
		case req.Method == http.MethodGet && path == "/health":
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ok"))
			return
		case req.Method == http.MethodPost && path == "/api/cs/signup":
			r.deps.AccountHandler.SignupCandidate(w, req)
			return
		case req.Method == http.MethodPost && path == "/api/cl/signup":
			r.deps.AccountHandler.SignupEmployer(w, req)
			return
		case req.Method == http.MethodPost && path == "/api/cl/company":
			r.deps.AccountHandler.CreateCompany(w, req)
			return
		case req.Method == http.MethodGet && path == "/api/cs/job_search":
			r.deps.SearchHandler.Search(w, req)
			return
		}

		if strings.HasPrefix(path, "/api/cs/") || strings.HasPrefix(path, "/api/cl/") {
			protected := r.deps.AuthMiddleware.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
				r.handleProtected(w, req)
			}))
			protected.ServeHTTP(w, req)
			return
		}

		http.NotFound(w, req)
	})
}

func (r *Router) handleProtected(w http.ResponseWriter, req *http.Request) {
	path := req.URL.Path

	switch {
	case req.Method == http.MethodPost && path == "/api/cs/application":
		r.deps.ApplicationHandler.Apply(w, req)
		return
	case req.Method == http.MethodGet && path == "/api/cs/applications":
		r.deps.ApplicationHandler.ListOwn(w, req)
		return
	case req.Method == http.MethodPost && path == "/api/cl/job":
		r.deps.JobHandler.Create(w, req)
		return
	case req.Method == http.MethodGet && path == "/api/cl/jobs":
		r.deps.JobHandler.List(w, req)
		return
	case req.Method == http.MethodPost && strings.HasPrefix(path, "/api/cl/job/") && strings.HasSuffix(path, "/archive"):
		r.deps.JobHandler.Archive(w, req)
		return
	case req.Method == http.MethodPatch && strings.HasPrefix(path, "/api/cl/job/"):
		r.deps.JobHandler.Update(w, req)
		return
	case req.Method == http.MethodGet && strings.HasPrefix(path, "/api/cl/job/"):
		r.deps.JobHandler.Get(w, req)
		return
	}

	http.NotFound(w, req)
}
