package http

const (
	MethodGet     = "GET"
	MethodHead    = "HEAD"
	MethodPost    = "POST"
	MethodPut     = "PUT"
	MethodPatch   = "PATCH"
	MethodDelete  = "DELETE"
	MethodConnect = "CONNECT"
	MethodOptions = "OPTIONS"
	MethodTrace   = "TRACE"
)

// Line terminator of the HTTP/1.1 wire format.
const crlf = "\r\n"

// Handler processes one built request. A handler owns the request for the
// duration of the call and replies through req.Respond.
type Handler func(req *Request)

// Hook runs against a built request before dispatch. A nil error passes the
// request through; a Status error short-circuits with that reply.
type Hook func(req *Request) error

// Version identifies an HTTP protocol version. Only HTTP/1.1 is ever
// produced by the parser; the other identifiers exist for serialization.
type Version uint8

const (
	VersionHTTP11 Version = iota + 1
	VersionHTTP2
	VersionHTTP3
)

func (v Version) String() string {
	switch v {
	case VersionHTTP11:
		return "HTTP/1.1"
	case VersionHTTP2:
		return "HTTP/2"
	case VersionHTTP3:
		return "HTTP/3"
	}
	return "HTTP/unknown"
}
