// Package server exposes a single integer priority queue over HTTP.
package server

import (
	"context"
	"net"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/huynhanx03/go-pqueue/pkg/constraints"
	"github.com/huynhanx03/go-pqueue/pkg/datastructs/pqueue"
	"github.com/huynhanx03/go-pqueue/pkg/settings"
)

const shutdownTimeout = 5 * time.Second

// Server owns one queue and serializes every operation on it.
type Server struct {
	cfg     settings.Server
	log     *zap.Logger
	reg     *prometheus.Registry
	metrics *metrics
	engine  *gin.Engine
	reqSeq  atomic.Uint64

	mu      sync.Mutex
	backend pqueue.Kind
	queue   pqueue.PriorityQueue[int]
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the request and lifecycle logger.
func WithLogger(l *zap.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.log = l
		}
	}
}

// WithRegistry serves and records metrics through reg instead of a private registry.
func WithRegistry(reg *prometheus.Registry) Option {
	return func(s *Server) {
		if reg != nil {
			s.reg = reg
		}
	}
}

// New builds a Server backed by the configured queue kind.
func New(cfg *settings.Server, opts ...Option) (*Server, error) {
	kind, err := pqueue.ParseKind(cfg.Backend)
	if err != nil {
		return nil, err
	}
	queue, err := pqueue.New[int](kind, cfg.Capacity)
	if err != nil {
		return nil, err
	}

	s := &Server{
		cfg:     *cfg,
		log:     zap.NewNop(),
		reg:     prometheus.NewRegistry(),
		backend: kind,
		queue:   queue,
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.metrics, err = newMetrics(s.reg); err != nil {
		return nil, errors.Wrap(err, "failed to register server metrics")
	}

	if cfg.Mode != "" {
		gin.SetMode(cfg.Mode)
	}
	s.engine = gin.New()
	s.engine.Use(gin.Recovery(), s.requestLogger())
	s.routes()
	return s, nil
}

// Handler returns the HTTP handler serving the API.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	return net.JoinHostPort(s.cfg.Host, strconv.Itoa(s.cfg.Port))
}

// Run serves on Addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	lis, err := net.Listen("tcp", s.Addr())
	if err != nil {
		return errors.Wrapf(err, "failed to listen on %s", s.Addr())
	}
	return s.Serve(ctx, lis)
}

// Serve is Run on an existing listener.
func (s *Server) Serve(ctx context.Context, lis net.Listener) error {
	srv := &http.Server{
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.log.Info("queue server listening", zap.String("addr", lis.Addr().String()), zap.String("backend", string(s.backend)))
		if err := srv.Serve(lis); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return errors.Wrap(err, "server stopped")
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		s.log.Info("queue server shutting down")
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

func (s *Server) routes() {
	s.engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.reg, promhttp.HandlerOpts{EnableOpenMetrics: true})))
	s.engine.GET("/healthz", func(c *gin.Context) { c.String(http.StatusOK, "ok") })

	v1 := s.engine.Group("/v1/queue")
	v1.POST("/items", s.insert())
	v1.GET("/items/:value", s.getPriority())
	v1.PUT("/items/:value", s.updateKey())
	v1.POST("/extract", s.extractMax())
	v1.GET("/max", s.findMax())
	v1.GET("/size", s.size())
	v1.DELETE("", s.clear())
	v1.POST("/fill", s.fill())
	v1.POST("/import", s.importPairs)
	v1.GET("/export", s.exportPairs)
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		id := c.GetHeader(constraints.HeaderRequestID)
		if id == "" {
			id = strconv.FormatUint(s.reqSeq.Add(1), 16)
		}
		c.Set(constraints.ContextKeyRequestID, id)
		c.Header(constraints.HeaderRequestID, id)
		c.Header(constraints.HeaderQueueBackend, string(s.backend))

		c.Next()

		fields := []zap.Field{
			zap.String("request_id", id),
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		}
		if len(c.Errors) > 0 {
			s.log.Warn("request failed", append(fields, zap.String("error", c.Errors.String()))...)
			return
		}
		s.log.Debug("request served", fields...)
	}
}

// locked runs fn with the queue lock held, records the outcome under op and
// refreshes the size gauge.
func (s *Server) locked(op string, fn func(q pqueue.PriorityQueue[int]) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := fn(s.queue)
	s.metrics.observe(op, err)
	s.metrics.size.Set(float64(s.queue.Size()))
	return err
}
