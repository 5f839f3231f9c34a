package apiserver

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/treasuryfx/currency-api/internal/converter"
	"github.com/treasuryfx/currency-api/internal/prometrics"
	"github.com/treasuryfx/currency-api/internal/validator"
	"go.uber.org/zap"
)

type Config struct {
	BindAddress string
}

type APIServer struct {
	cfg       Config
	router    *chi.Mux
	server    *http.Server
	validator *validator.Validator
	converter *converter.Converter
	metrics   *prometrics.Metrics
	startedAt time.Time
}

func New(cfg Config, v *validator.Validator, c *converter.Converter, m *prometrics.Metrics) *APIServer {
	router := chi.NewRouter()

	s := &APIServer{
		cfg:       cfg,
		router:    router,
		validator: v,
		converter: c,
		metrics:   m,
		startedAt: time.Now(),
		server: &http.Server{
			Addr:              cfg.BindAddress,
			ReadHeaderTimeout: 5 * time.Second,
			Handler:           router,
		},
	}

	s.configRouter()

	return s
}

func (s *APIServer) Run(ctx context.Context) error {
	go func() {
		<-ctx.Done()

		gfCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		//nolint: contextcheck
		if err := s.server.Shutdown(gfCtx); err != nil {
			zap.L().With(zap.Error(err)).Warn("failed to gracefully shutdown server")

			return
		}
	}()

	zap.L().Info("server starting", zap.String("port", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("s.server.ListenAndServe(): %w", err)
	}

	return nil
}

func (s *APIServer) configRouter() {
	s.router.Use(s.RequestID, s.Metrics)

	s.router.Get(convertEndpoint, s.handleConvert)
	s.router.Get(healthEndpoint, s.handleHealth)
	s.router.Method(http.MethodGet, metricsEndpoint, promhttp.Handler())

	s.router.NotFound(s.handleNotFound)
	s.router.MethodNotAllowed(s.handleMethodNotAllowed)
}
