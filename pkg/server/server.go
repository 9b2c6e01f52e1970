// Package server serves rendered badges over HTTP.
//
// Routes:
//
//	GET /badge/{label}/{message}[.svg]?label_color=&color=&style=
//	GET /healthz
//
// Query parameters override the server's default style and colors. Rendered
// markup is stored in a [cache.Cache] keyed by [cache.BadgeKey], so repeated
// requests for the same badge skip text shaping.
package server

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/badges/pkg/badge"
	"github.com/matzehuels/badges/pkg/cache"
	"github.com/matzehuels/badges/pkg/errors"
	"github.com/matzehuels/badges/pkg/measure"
	"github.com/matzehuels/badges/pkg/observability"
)

// ContentType is the media type of badge responses.
const ContentType = "image/svg+xml; charset=utf-8"

// Options configures a [Server]. Zero fields get defaults in [New].
type Options struct {
	// Renderer renders badges. Defaults to one using Mode's measurer.
	Renderer *badge.Renderer
	// Mode names the measurer and is part of every cache key.
	Mode measure.Mode
	// Defaults supplies style and colors when the query omits them.
	Defaults badge.Badge
	// Cache stores rendered badges. Defaults to a null cache.
	Cache cache.Cache
	// TTL is the cache entry lifetime and the Cache-Control max-age.
	// Zero stores entries without expiry and omits Cache-Control.
	TTL time.Duration
	// Logger receives access and error logs. Defaults to log.Default().
	Logger *log.Logger
}

// Server renders badges for HTTP requests.
type Server struct {
	renderer *badge.Renderer
	mode     measure.Mode
	defaults badge.Badge
	cache    cache.Cache
	ttl      time.Duration
	logger   *log.Logger
	router   chi.Router
}

// New creates a server and registers its routes.
func New(opts Options) *Server {
	if opts.Mode == "" {
		opts.Mode = measure.ModeShape
	}
	if opts.Renderer == nil {
		opts.Renderer = badge.NewRenderer(measure.New(opts.Mode))
	}
	if opts.Cache == nil {
		opts.Cache = cache.NewNullCache()
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}

	s := &Server{
		renderer: opts.Renderer,
		mode:     opts.Mode,
		defaults: opts.Defaults,
		cache:    opts.Cache,
		ttl:      opts.TTL,
		logger:   opts.Logger,
	}

	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(requestID)
	r.Use(middleware.RequestLogger(&logFormatter{logger: s.logger}))
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Get("/badge/{label}/{message}", s.handleBadge)
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		s.writeError(w, r, errors.New(errors.ErrCodeNotFound, "no route for %s", r.URL.Path))
	})

	s.router = r
	return s
}

// Handler returns the HTTP handler for all routes.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe serves on addr until ctx is canceled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr, "mode", s.mode)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	s.logger.Info("shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) handleBadge(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	b, err := s.badgeFromRequest(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	key := cache.BadgeKey(b, s.mode)
	logger := requestLogger(ctx, s.logger)

	data, hit, err := s.cache.Get(ctx, key)
	if err != nil {
		logger.Warn("cache get failed", "err", err)
	}
	if hit {
		observability.Cache().OnCacheHit(ctx, key)
		s.writeSVG(w, data, "HIT")
		return
	}
	observability.Cache().OnCacheMiss(ctx, key)

	svg, err := s.renderer.RenderContext(ctx, b)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	data = []byte(svg)

	if err := s.cache.Set(ctx, key, data, s.ttl); err != nil {
		logger.Warn("cache set failed", "err", err)
	} else {
		observability.Cache().OnCacheSet(ctx, key, len(data))
	}
	s.writeSVG(w, data, "MISS")
}

// badgeFromRequest builds the badge for a /badge request from its path
// parameters and query.
func (s *Server) badgeFromRequest(r *http.Request) (badge.Badge, error) {
	label, err := pathParam(r, "label")
	if err != nil {
		return badge.Badge{}, err
	}
	message, err := pathParam(r, "message")
	if err != nil {
		return badge.Badge{}, err
	}
	message = strings.TrimSuffix(message, ".svg")

	if err := errors.ValidateText(label); err != nil {
		return badge.Badge{}, errors.Wrap(errors.ErrCodeInvalidText, err, "label: %s", errors.UserMessage(err))
	}
	if err := errors.ValidateText(message); err != nil {
		return badge.Badge{}, errors.Wrap(errors.ErrCodeInvalidText, err, "message: %s", errors.UserMessage(err))
	}

	b := s.defaults.WithLabel(label).WithMessage(message)

	q := r.URL.Query()
	if v := q.Get("style"); v != "" {
		style, err := badge.ParseStyle(v)
		if err != nil {
			return badge.Badge{}, err
		}
		b = b.WithStyle(style)
	}
	if v := q.Get("label_color"); v != "" {
		c, err := badge.ParseColor(v)
		if err != nil {
			return badge.Badge{}, err
		}
		b = b.WithLabelColor(c)
	}
	if v := q.Get("color"); v != "" {
		c, err := badge.ParseColor(v)
		if err != nil {
			return badge.Badge{}, err
		}
		b = b.WithMessageColor(c)
	}
	return b, nil
}

// pathParam returns a decoded route parameter. chi matches against the raw
// path when the request carries escaped characters such as %2F.
func pathParam(r *http.Request, name string) (string, error) {
	v := chi.URLParam(r, name)
	if r.URL.RawPath == "" {
		return v, nil
	}
	decoded, err := url.PathUnescape(v)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInvalidText, err, "%s: malformed escape", name)
	}
	return decoded, nil
}

func (s *Server) writeSVG(w http.ResponseWriter, data []byte, cacheStatus string) {
	h := w.Header()
	h.Set("Content-Type", ContentType)
	h.Set("X-Cache", cacheStatus)
	if s.ttl > 0 {
		h.Set("Cache-Control", fmt.Sprintf("max-age=%d", int(s.ttl.Seconds())))
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := StatusCode(err)
	logger := requestLogger(r.Context(), s.logger)
	if status >= 500 {
		logger.Error("request failed", "err", err)
		http.Error(w, http.StatusText(status), status)
		return
	}
	logger.Debug("bad request", "err", err)
	http.Error(w, errors.UserMessage(err), status)
}

// StatusCode maps an error code to an HTTP status.
func StatusCode(err error) int {
	switch errors.GetCode(err) {
	case errors.ErrCodeInvalidInput,
		errors.ErrCodeInvalidColor,
		errors.ErrCodeInvalidStyle,
		errors.ErrCodeInvalidText:
		return http.StatusBadRequest
	case errors.ErrCodeNotFound:
		return http.StatusNotFound
	case errors.ErrCodeUnsupported:
		return http.StatusNotImplemented
	}
	return http.StatusInternalServerError
}
