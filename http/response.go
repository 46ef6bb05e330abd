package http

import (
	"bufio"
	"encoding/json"
	"fmt"
)

type Response struct {
	Status      uint16
	ContentType string
	Body        []byte
}

func (res *Response) WithStatus(status uint16) *Response {
	res.Status = status
	return res
}

func (res *Response) WithText(payload string) *Response {
	res.ContentType = "text/plain"
	res.Body = []byte(payload)
	return res
}

func (res *Response) WithJson(payload any) *Response {
	res.ContentType = "application/json"

	if vStr, ok := payload.(string); ok {
		res.Body = []byte(vStr)
		return res
	}

	data, err := json.Marshal(payload)
	if err != nil {
		res.Status = 500
		res.ContentType = "text/plain"
		res.Body = []byte("Error")
		return res
	}
	res.Body = data
	return res
}

// Write serializes the response: status line, Content-Type, Content-Length,
// Connection: close, blank line, body. Content-Length is always the exact
// byte length of the body.
func (res *Response) Write(writer *bufio.Writer) error {
	if _, err := fmt.Fprintf(writer, "HTTP/1.1 %d %s\r\n", res.Status, statusMessage(res.Status)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Content-Type: %s\r\n", res.ContentType); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Content-Length: %d\r\n", len(res.Body)); err != nil {
		return err
	}
	if _, err := writer.WriteString("Connection: close\r\n\r\n"); err != nil {
		return err
	}
	if _, err := writer.Write(res.Body); err != nil {
		return err
	}
	return writer.Flush()
}

func (res *Response) Reset() {
	res.Status = StatusOK
	res.ContentType = "text/plain"
	res.Body = nil
}
