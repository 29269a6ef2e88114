package http

import (
	"encoding/json"
	"net/http"
	"time"

	sentryhttp "github.com/getsentry/sentry-go/http"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/vantage/pkg/domain/interfaces"
	"github.com/secmon-lab/vantage/pkg/utils/errutil"
	"github.com/secmon-lab/vantage/pkg/utils/logging"
	"github.com/secmon-lab/vantage/pkg/utils/metrics"
)

// maxBodySize bounds JSON request bodies
const maxBodySize = 1 << 20

type Server struct {
	router   *chi.Mux
	configUC ConfigUseCase
	fieldUC  FieldUseCase
	legacy   interfaces.LegacyConfigStore
	metrics  bool
}

type Options func(*Server)

func WithConfigUseCase(uc ConfigUseCase) Options {
	return func(s *Server) {
		s.configUC = uc
	}
}

func WithFieldUseCase(uc FieldUseCase) Options {
	return func(s *Server) {
		s.fieldUC = uc
	}
}

// WithLegacyStore exposes direct writes to the legacy store, the way the
// legacy settings page performs them
func WithLegacyStore(store interfaces.LegacyConfigStore) Options {
	return func(s *Server) {
		s.legacy = store
	}
}

func WithMetrics(enabled bool) Options {
	return func(s *Server) {
		s.metrics = enabled
	}
}

func New(opts ...Options) *Server {
	r := chi.NewRouter()

	s := &Server{
		router: r,
	}
	for _, opt := range opts {
		opt(s)
	}

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(accessLogger)
	r.Use(sentryhttp.New(sentryhttp.Options{}).Handle)
	r.Use(recoverer)

	r.Get("/health", healthHandler)

	if s.metrics {
		r.Handle("/metrics", metrics.Handler())
	}

	if s.configUC != nil {
		r.Route("/api/config", func(r chi.Router) {
			r.Get("/", getConfigHandler(s.configUC))
			r.Put("/theme", putThemeHandler(s.configUC))
			r.Put("/values/{key}", putValueHandler(s.configUC))
		})
	}

	if s.legacy != nil {
		r.Put("/api/legacy/config", putLegacyConfigHandler(s.legacy))
	}

	if s.fieldUC != nil {
		r.Route("/api/fields", func(r chi.Router) {
			r.Get("/", listFieldsHandler(s.fieldUC))
			r.Get("/conditions", conditionsHandler(s.fieldUC))
			r.Get("/{key}", getFieldHandler(s.fieldUC))
		})
	}

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// accessLogger is a middleware that logs HTTP requests and binds a
// request-scoped logger to the context
func accessLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		logger := logging.Default().With("request_id", middleware.GetReqID(r.Context()))
		ctx := logging.With(r.Context(), logger)

		defer func() {
			logger.Info("access",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"remote", r.RemoteAddr,
				"user_agent", r.UserAgent(),
			)
		}()

		next.ServeHTTP(ww, r.WithContext(ctx))
	})
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "failed to marshal response"), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(data) //nolint:errcheck // header already committed
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodySize))
	if err := dec.Decode(v); err != nil {
		return goerr.Wrap(err, "failed to decode request body")
	}
	return nil
}
