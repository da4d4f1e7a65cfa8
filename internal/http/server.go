package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/denisok6893-rgb/red-flag-checker/internal/apperrors"
	"github.com/denisok6893-rgb/red-flag-checker/internal/assessment"
	"github.com/denisok6893-rgb/red-flag-checker/internal/cache"
	"github.com/denisok6893-rgb/red-flag-checker/internal/logger"
	"github.com/denisok6893-rgb/red-flag-checker/internal/metrics"
	"github.com/denisok6893-rgb/red-flag-checker/internal/storage"
)

const maxBodyBytes = 1 << 20

// Pinger reports backend health.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Options struct {
	Engine       *assessment.Engine
	Profiles     *storage.ProfileManager
	Calculator   *cache.Calculator
	Logger       logger.Logger
	ShareBaseURL string
	Store        Pinger
}

type Server struct {
	engine       *assessment.Engine
	profiles     *storage.ProfileManager
	calc         *cache.Calculator
	log          logger.Logger
	shareBaseURL string
	store        Pinger
}

func NewServer(opts Options) *Server {
	s := &Server{
		engine:       opts.Engine,
		profiles:     opts.Profiles,
		calc:         opts.Calculator,
		log:          opts.Logger,
		shareBaseURL: opts.ShareBaseURL,
		store:        opts.Store,
	}
	if s.engine == nil {
		s.engine = assessment.NewEngine(assessment.DefaultCatalog())
	}
	if s.log == nil {
		s.log = logger.NewNoOpLogger()
	}
	if s.calc == nil {
		s.calc = cache.NewCalculator(nil, s.log)
	}
	if s.profiles == nil {
		s.profiles = storage.NewProfileManager(nopKV{}, s.log, 0)
	}
	return s
}

func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	s.handle(mux, "GET /health", s.handleHealth)

	s.handle(mux, "GET /traits", s.handleTraits)
	s.handle(mux, "POST /score", s.handleScore)
	s.handle(mux, "GET /risk", s.handleRisk)

	s.handle(mux, "GET /profiles", s.handleProfilesList)
	s.handle(mux, "POST /profiles", s.handleProfilesCreate)
	s.handle(mux, "PUT /profiles/current", s.handleProfilesChange)
	s.handle(mux, "DELETE /profiles/current", s.handleProfilesDelete)
	s.handle(mux, "PUT /profiles/current/name", s.handleProfilesRename)
	s.handle(mux, "PUT /profiles/current/selections", s.handleSelectionUpdate)
	s.handle(mux, "DELETE /profiles/current/selections", s.handleSelectionsReset)
	s.handle(mux, "GET /profiles/current/score", s.handleProfileScore)
	s.handle(mux, "GET /profiles/export", s.handleProfilesExport)
	s.handle(mux, "POST /profiles/flush", s.handleProfilesFlush)

	s.handle(mux, "POST /custom-traits", s.handleCustomTraitCreate)
	s.handle(mux, "DELETE /custom-traits/{category}/{trait}", s.handleCustomTraitDelete)

	s.handle(mux, "POST /share", s.handleShareCreate)
	s.handle(mux, "GET /share/{payload...}", s.handleShareOpen)

	s.handle(mux, "GET /calculator/criteria", s.handleCriteria)
	s.handle(mux, "GET /calculator/regions", s.handleRegions)
	s.handle(mux, "POST /calculator/compute", s.handleCompute)

	mux.Handle("GET /metrics", promhttp.Handler())
	return mux
}

// handle registers h with request metrics labelled by pattern.
func (s *Server) handle(mux *http.ServeMux, pattern string, h http.HandlerFunc) {
	mux.HandleFunc(pattern, func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		h(rec, r)
		elapsed := time.Since(start)
		metrics.HTTPRequests.WithLabelValues(pattern, fmt.Sprint(rec.status)).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(pattern).Observe(elapsed.Seconds())
		s.log.Debug("request", map[string]interface{}{
			"route":       pattern,
			"path":        r.URL.Path,
			"status":      rec.status,
			"duration_ms": elapsed.Milliseconds(),
		})
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if s.store != nil {
		if err := s.store.Ping(r.Context()); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "degraded", "storage": err.Error()})
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// engineFor returns the engine extended with the stored custom traits.
func (s *Server) engineFor(state storage.State) *assessment.Engine {
	return s.engine.WithCustom(state.CustomTraits)
}

type errorResponse struct {
	Error *apperrors.StandardError `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	se := apperrors.Normalize(err)
	status := apperrors.HTTPStatus(se)
	if status >= http.StatusInternalServerError {
		s.log.WithError(err).Error("request failed", map[string]interface{}{"code": se.Code})
	}
	writeJSON(w, status, errorResponse{Error: se})
}

// decodeJSON reads a JSON body into dst and validates it.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return apperrors.NewInvalidRequestError("empty body")
		}
		return apperrors.NewInvalidRequestError("invalid JSON: " + err.Error())
	}
	if err := validate.Struct(dst); err != nil {
		return apperrors.NewValidationError(err.Error())
	}
	return nil
}

// nopKV backs a ProfileManager that is never persisted.
type nopKV struct{}

func (nopKV) Get(context.Context, string) ([]byte, bool, error) { return nil, false, nil }

func (nopKV) PutMany(context.Context, map[string][]byte) error { return nil }
