package http

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

type Request struct {
	Method   string
	Path     string
	RawQuery string
	Headers  map[string]string

	BodyRaw []byte
}

// Parse reads one request off the wire: request line, headers, then a body of
// exactly content-length bytes. A connection that fails here is dropped by the
// caller; defaults below keep partial input from becoming a hard failure.
func (req *Request) Parse(reader *bufio.Reader) error {
	requestLine, err := reader.ReadString('\n')
	if err != nil {
		return err
	}
	requestLine = strings.TrimSpace(requestLine)
	if requestLine == "" {
		// Peer closed (or sent nothing) before the request line.
		return io.EOF
	}

	parts := strings.Fields(requestLine)
	if len(parts) < 2 {
		return fmt.Errorf("malformed request line: %q", requestLine)
	}
	req.Method = parts[0]
	req.Path, req.RawQuery, _ = strings.Cut(parts[1], "?")

	req.Headers = make(map[string]string)
	for {
		line, err := reader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("header read error: %w", err)
		}
		line = strings.TrimSpace(line)
		if line == "" {
			break // end of headers
		}
		if key, value, found := strings.Cut(line, ": "); found {
			req.Headers[strings.ToLower(key)] = value
		}
		// Lines without a separator are skipped.
	}

	// Missing or unparsable content-length means no body, never an error.
	contentLength, err := atoi([]byte(req.Headers["content-length"]))
	if err != nil || contentLength > MaxRequestBodySize {
		contentLength = 0
	}

	req.BodyRaw = nil
	if contentLength > 0 {
		body := make([]byte, contentLength)
		if _, err := io.ReadFull(reader, body); err != nil {
			// Short body: serve the response anyway with an empty body.
			return nil
		}
		req.BodyRaw = body
	}

	return nil
}

// HeaderValue looks up a header by its lower-cased name.
func (req *Request) HeaderValue(name string) (string, bool) {
	v, found := req.Headers[strings.ToLower(name)]
	return v, found
}

func (req *Request) Reset() {
	req.Method = ""
	req.Path = ""
	req.RawQuery = ""
	req.Headers = nil
	req.BodyRaw = nil
}
