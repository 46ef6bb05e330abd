package http

import (
	"io"
	"log/slog"
	"net"
	"sync"
)

// WorkerPool bounds request processing to a fixed number of long-lived
// workers. The acceptor hands connections over through a shared buffered
// channel; excess connections wait in the queue instead of spawning
// goroutines per connection.
type WorkerPool struct {
	handle Handler
	logger *slog.Logger

	queue  chan net.Conn
	mu     sync.RWMutex
	closed bool
	wg     sync.WaitGroup
}

func NewWorkerPool(handler Handler, logger *slog.Logger) *WorkerPool {
	if logger == nil {
		logger = slog.Default()
	}

	wp := &WorkerPool{
		handle: handler,
		logger: logger,
		queue:  make(chan net.Conn, ChannelBufferSize),
	}

	wp.wg.Add(WorkerPoolSize)
	for i := 0; i < WorkerPoolSize; i++ {
		go wp.run()
	}

	return wp
}

// Submit enqueues a connection for processing and returns without waiting on
// it. A connection submitted after Shutdown is closed and reported as
// dropped, never a panic.
func (wp *WorkerPool) Submit(conn net.Conn) bool {
	wp.mu.RLock()
	defer wp.mu.RUnlock()

	if wp.closed {
		wp.logger.Warn("connection dropped, pool is shut down", "remote", conn.RemoteAddr())
		conn.Close()
		return false
	}

	wp.queue <- conn
	return true
}

// Shutdown stops intake, lets the workers drain the queue and joins them all.
// No connection already queued is abandoned.
func (wp *WorkerPool) Shutdown() {
	wp.mu.Lock()
	if wp.closed {
		wp.mu.Unlock()
		return
	}
	wp.closed = true
	wp.mu.Unlock()

	close(wp.queue)
	wp.wg.Wait()
}

func (wp *WorkerPool) run() {
	defer wp.wg.Done()

	// One reusable context per worker; a worker handles one connection at a
	// time, so nothing here is shared.
	reqCtx := NewRequestCtx()
	for conn := range wp.queue {
		wp.serveConn(reqCtx, conn)
	}
}

func (wp *WorkerPool) serveConn(reqCtx *RequestCtx, conn net.Conn) {
	defer conn.Close()

	if tcpConn, ok := conn.(*net.TCPConn); ok {
		tcpConn.SetNoDelay(true)
	}

	reqCtx.Reset(conn)

	if err := reqCtx.Request.Parse(reqCtx.ConnReader); err != nil {
		if err != io.EOF {
			wp.logger.Warn("dropping connection", "err", err, "remote", conn.RemoteAddr())
		}
		return
	}

	wp.handle(reqCtx)

	if err := reqCtx.Response.Write(reqCtx.ConnWriter); err != nil {
		wp.logger.Warn("response write failed", "err", err, "remote", conn.RemoteAddr())
	}
}
