package http

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"sync"
)

type Server struct {
	Name   string
	Router Router
	Logger *slog.Logger

	mu       sync.Mutex
	listener net.Listener
	pool     *WorkerPool
}

func NewServer(name string) *Server {
	return &Server{
		Name:   name,
		Router: NewRouter(),
		Logger: slog.Default(),
	}
}

// ListenAndServe binds addr and serves until the listener is closed. A bind
// failure is returned to the caller; there is nothing to serve without it.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}

	return s.Serve(listener)
}

// Serve runs the accept loop. Each accepted connection is handed to the
// worker pool; the loop itself never touches request data. Individual accept
// failures are logged and skipped.
func (s *Server) Serve(listener net.Listener) error {
	pool := NewWorkerPool(s.Router.Handler(), s.Logger)

	s.mu.Lock()
	s.listener = listener
	s.pool = pool
	s.mu.Unlock()

	for {
		conn, err := listener.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return nil
			}
			s.Logger.Warn("failed to accept connection", "err", err)
			continue
		}

		pool.Submit(conn)
	}
}

// Shutdown closes the listener and waits for queued connections to finish.
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	listener, pool := s.listener, s.pool
	s.mu.Unlock()

	var err error
	if listener != nil {
		err = listener.Close()
	}
	if pool != nil {
		pool.Shutdown()
	}
	return err
}
