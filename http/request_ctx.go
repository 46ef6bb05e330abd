package http

import (
	"bufio"
	"net"
)

// RequestCtx is the per-worker scratch state for one connection. Each worker
// owns exactly one and resets it between connections, so the bufio buffers
// are allocated once per worker.
type RequestCtx struct {
	Conn       net.Conn
	ConnReader *bufio.Reader
	ConnWriter *bufio.Writer

	Request  Request
	Response Response
}

func NewRequestCtx() *RequestCtx {
	return &RequestCtx{
		ConnReader: bufio.NewReaderSize(nil, DefaultReadBufferSize),
		ConnWriter: bufio.NewWriterSize(nil, DefaultWriteBufferSize),
	}
}

func (reqCtx *RequestCtx) Reset(conn net.Conn) {
	reqCtx.Conn = conn
	reqCtx.ConnReader.Reset(conn)
	reqCtx.ConnWriter.Reset(conn)
	reqCtx.Request.Reset()
	reqCtx.Response.Reset()
}
