package main

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/go-git/go-billy/v5"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/rulingAnts/dekereke-pivot-tables/httpfs"
)

const shutdownTimeout = 5 * time.Second

// Server owns the listening socket for its whole lifetime; Interrupt
// releases it.
type Server struct {
	cfg Config
	srv *http.Server
	ln  net.Listener
}

// NewServer assembles the handler stack over the served tree: static
// file serving at the bottom, the PWA dev headers on every response,
// request echoing on the outside.
func NewServer(cfg Config, tree billy.Filesystem) *Server {
	var h http.Handler = http.FileServer(httpfs.New(tree))
	if cfg.CORS {
		h = corsHeaders(h)
	}
	h = devHeaders(h)
	h = echoRequests(h)
	return &Server{cfg: cfg, srv: &http.Server{Handler: h}}
}

// Listen binds the TCP listener without serving yet, so bind faults
// surface during startup rather than from the serve goroutine.
func (s *Server) Listen(ctx context.Context) error {
	ln, err := newListener(ctx, s.cfg.Addr())
	if err != nil {
		return errors.Wrapf(err, "bind %s", s.cfg.Addr())
	}
	s.ln = ln
	return nil
}

// Port returns the bound port. Meaningful when port 0 was requested.
func (s *Server) Port() int {
	return s.ln.Addr().(*net.TCPAddr).Port
}

// Execute serves requests until Interrupt closes the server. A clean
// close is not an error.
func (s *Server) Execute() error {
	log.Info().Str("addr", s.ln.Addr().String()).Msg("http server listening")
	if err := s.srv.Serve(s.ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Wrap(err, "serve")
	}
	return nil
}

// Interrupt stops accepting connections and drains in-flight requests.
func (s *Server) Interrupt(error) {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("shutdown")
	}
	log.Debug().Msg("http server stopped")
}
