package http

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"
)

// DefaultAddr is the dev server's default listen address.
const DefaultAddr = "localhost:5173"

// Server is the dev session's HTTP server.
type Server struct {
	server *http.Server
	ln     net.Listener
}

// NewServer creates a Server for handler on addr.
func NewServer(addr string, handler http.Handler) *Server {
	return &Server{
		server: &http.Server{
			Addr:              addr,
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

// Open starts listening. It returns once the listener is bound so Addr
// reports the real port.
func (s *Server) Open() error {
	ln, err := net.Listen("tcp", s.server.Addr)
	if err != nil {
		return err
	}
	s.ln = ln
	return nil
}

// Addr returns the bound address, or the configured one before Open.
func (s *Server) Addr() string {
	if s.ln != nil {
		return s.ln.Addr().String()
	}
	return s.server.Addr
}

// Serve handles connections until Shutdown. Open must be called first.
func (s *Server) Serve() error {
	if err := s.server.Serve(s.ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// ListenAndServe opens the listener and serves until Shutdown.
func (s *Server) ListenAndServe() error {
	if err := s.Open(); err != nil {
		return err
	}
	return s.Serve()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
