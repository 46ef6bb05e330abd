package http

const (
	StatusOK       uint16 = 200 // RFC 7231, 6.3.1
	StatusNotFound uint16 = 404 // RFC 7231, 6.5.4
)

// statusMessage returns the reason phrase for a status code. Codes outside
// the fixed table get "Error".
func statusMessage(code uint16) string {
	switch code {
	case StatusOK:
		return "OK"
	case StatusNotFound:
		return "Not Found"
	default:
		return "Error"
	}
}
