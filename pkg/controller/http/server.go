package http

import (
	"io/fs"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/materia/frontend"
	"github.com/secmon-lab/materia/pkg/domain/model/config"
	"github.com/secmon-lab/materia/pkg/usecase"
	"github.com/secmon-lab/materia/pkg/utils/logging"
	"github.com/secmon-lab/materia/pkg/utils/safe"
)

type Server struct {
	router *chi.Mux
	uc     *usecase.UseCases
	site   *config.Site
}

type Options func(*Server)

// WithSite sets the page branding served to the frontend.
func WithSite(site *config.Site) Options {
	return func(s *Server) {
		s.site = site
	}
}

func New(uc *usecase.UseCases, opts ...Options) (*Server, error) {
	r := chi.NewRouter()

	s := &Server{
		router: r,
		uc:     uc,
		site:   config.DefaultSite(),
	}
	for _, opt := range opts {
		opt(s)
	}

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(accessLogger)
	r.Use(middleware.Recoverer)

	r.Route("/api", func(r chi.Router) {
		r.Post("/chart", chartHandler(uc))
		r.Get("/chart/export", exportHandler(uc))
		r.Get("/site", siteHandler(s.site))
	})

	// Fixed download path for the upload template workbook
	r.Get("/static/Materiality_Template.xlsx", templateHandler(uc))

	// Static file serving for the UI (catch-all, must be last)
	staticFS, err := fs.Sub(frontend.StaticFiles, "static")
	if err != nil {
		return nil, goerr.Wrap(err, "failed to bind static dir")
	}

	r.Get("/*", staticHandler(staticFS))

	return s, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// accessLogger is a middleware that logs HTTP requests
func accessLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		defer func() {
			logging.Default().Info("access",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"remote", r.RemoteAddr,
				"user_agent", r.UserAgent(),
				"request_id", middleware.GetReqID(r.Context()),
			)
		}()

		next.ServeHTTP(ww, r)
	})
}

// staticHandler serves the embedded UI, falling back to index.html for
// unknown paths so a reload never 404s.
func staticHandler(staticFS fs.FS) http.HandlerFunc {
	fileServer := http.FileServer(http.FS(staticFS))

	return func(w http.ResponseWriter, r *http.Request) {
		urlPath := strings.TrimPrefix(r.URL.Path, "/")

		if urlPath == "" {
			urlPath = "index.html"
		}

		if file, err := staticFS.Open(urlPath); err != nil {
			if indexFile, err := staticFS.Open("index.html"); err == nil {
				defer safe.Close(r.Context(), indexFile)
				w.Header().Set("Content-Type", "text/html")
				safe.Copy(r.Context(), w, indexFile)
				return
			}

			http.NotFound(w, r)
			return
		} else {
			safe.Close(r.Context(), file)
		}

		fileServer.ServeHTTP(w, r)
	}
}
