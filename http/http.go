package http

const (
	// WorkerPoolSize bounds the number of connections processed in parallel.
	WorkerPoolSize = 8

	// ChannelBufferSize is the depth of the shared hand-off queue between
	// the acceptor and the workers.
	ChannelBufferSize = 2048

	DefaultReadBufferSize  = 4096
	DefaultWriteBufferSize = 4096

	MaxRequestBodySize = 2 * 1024 * 1024 // 2MB
)

type Handler func(ctx *RequestCtx)
