// Package server exposes planet generation over HTTP and streams generated
// meshes chunk by chunk over WebSocket.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/Faultbox/planetgen/internal/catalog"
	"github.com/Faultbox/planetgen/internal/logger"
	"github.com/Faultbox/planetgen/internal/planet"
	"github.com/Faultbox/planetgen/internal/system"
)

// Config holds server settings.
type Config struct {
	Listen        string        `yaml:"listen"`
	MaxDepth      int           `yaml:"max_depth"`
	PreviewWidth  int           `yaml:"preview_width"`
	PreviewHeight int           `yaml:"preview_height"`
	Timeout       time.Duration `yaml:"timeout"`
}

// DefaultConfig returns the stock server settings.
func DefaultConfig() Config {
	return Config{
		Listen:        ":3333",
		MaxDepth:      8,
		PreviewWidth:  512,
		PreviewHeight: 256,
		Timeout:       30 * time.Second,
	}
}

// Server serves generated planets.
type Server struct {
	cfg      Config
	base     planet.Descriptor
	opts     planet.Options
	sysCfg   system.Config
	store    *catalog.Store // optional
	router   *mux.Router
	upgrader websocket.Upgrader
	log      *zap.Logger
}

// New creates a server. store may be nil, in which case generated planets
// are not recorded and the catalog routes report 503.
func New(cfg Config, base planet.Descriptor, opts planet.Options, sysCfg system.Config, store *catalog.Store) *Server {
	s := &Server{
		cfg:    cfg,
		base:   base,
		opts:   opts,
		sysCfg: sysCfg,
		store:  store,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
		log: logger.Named("server"),
	}

	r := mux.NewRouter()
	r.HandleFunc("/api/planet", s.handlePlanet).Methods(http.MethodGet)
	r.HandleFunc("/api/planet/preview.png", s.handlePreview).Methods(http.MethodGet)
	r.HandleFunc("/api/planet/placements", s.handlePlacements).Methods(http.MethodGet)
	r.HandleFunc("/api/system/{seed:-?[0-9]+}", s.handleSystem).Methods(http.MethodGet)
	r.HandleFunc("/api/catalog", s.handleCatalogList).Methods(http.MethodGet)
	r.HandleFunc("/api/catalog/{id}", s.handleCatalogGet).Methods(http.MethodGet)
	r.HandleFunc("/ws", s.handleStream)
	s.router = r

	return s
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Listen,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("listening", zap.String("addr", s.cfg.Listen))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

// generate builds the planet described by a request and records it.
func (s *Server) generate(ctx context.Context, req Request) (*planet.Planet, error) {
	d, rngSeed, err := req.resolve(s.base, s.cfg.MaxDepth)
	if err != nil {
		return nil, err
	}

	if s.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.Timeout)
		defer cancel()
	}

	p, err := planet.Generate(ctx, d, s.opts, newRand(rngSeed))
	if err != nil {
		return nil, err
	}

	if s.store != nil {
		if _, err := s.store.Record(ctx, p, nil); err != nil {
			s.log.Warn("catalog record failed", zap.String("id", p.ID.String()), zap.Error(err))
		}
	}
	return p, nil
}
