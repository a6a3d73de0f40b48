package http

import "strings"

// RequestLine is the first line of an HTTP request: method, URI and
// protocol version.
type RequestLine struct {
	Method  string
	URI     string
	Version Version
}

// ParseRequestLine parses a request line, given without its terminator.
// The line must carry at least three whitespace-separated tokens and the
// third must be the literal "HTTP/1.1"; any other version is rejected with
// 400, not merely unsupported. Tokens past the third are ignored.
func ParseRequestLine(line string) (RequestLine, error) {
	parts := strings.Fields(line)
	if len(parts) < 3 {
		return RequestLine{}, CannedStatus(StatusBadRequest)
	}

	if parts[2] != "HTTP/1.1" {
		return RequestLine{}, CannedStatus(StatusBadRequest)
	}

	return RequestLine{
		Method:  parts[0],
		URI:     parts[1],
		Version: VersionHTTP11,
	}, nil
}

// Resource returns the unified "METHOD URI" representation used in route
// dispatching and logs.
func (rl RequestLine) Resource() string {
	return rl.Method + " " + rl.URI
}
