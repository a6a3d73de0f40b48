package http

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
)

// stream is an in-memory stand-in for a connection: requests are read from
// the reader, replies land in the write buffer.
type stream struct {
	io.Reader
	Writes bytes.Buffer
}

func newStream(in string) *stream {
	return &stream{Reader: strings.NewReader(in)}
}

func (s *stream) Write(p []byte) (int, error) {
	return s.Writes.Write(p)
}

func TestBuildRequest(t *testing.T) {
	in := newStream("GET /test HTTP/1.1\r\nHost: www.example.com\r\nAccept-Language: en\r\n\r\n{\"meow\": 1}")

	req, err := BuildRequest(in)
	if err != nil {
		t.Fatal(err)
	}

	if req.Method != "GET" {
		t.Errorf("expected method GET, got %s", req.Method)
	}
	if req.URI != "/test" {
		t.Errorf("expected uri /test, got %s", req.URI)
	}
	if req.Version != VersionHTTP11 {
		t.Errorf("expected version HTTP/1.1, got %s", req.Version)
	}
	if !bytes.Equal(req.Body, []byte(`{"meow": 1}`)) {
		t.Errorf("unexpected body %q", req.Body)
	}

	expectedHeaders := []string{"Host: www.example.com", "Accept-Language: en"}
	if len(req.Headers) != len(expectedHeaders) {
		t.Fatalf("expected %d headers, got %d", len(expectedHeaders), len(req.Headers))
	}
	for i, expected := range expectedHeaders {
		if req.Headers[i].String() != expected {
			t.Errorf("header %d: expected %q, got %q", i, expected, req.Headers[i].String())
		}
	}
}

func TestBuildRequestKeepsDuplicateHeaders(t *testing.T) {
	in := newStream("GET / HTTP/1.1\r\nAccept: text/html\r\nAccept: text/css\r\n\r\n")

	req, err := BuildRequest(in)
	if err != nil {
		t.Fatal(err)
	}

	if len(req.Headers) != 2 {
		t.Fatalf("expected both Accept headers preserved, got %d", len(req.Headers))
	}
	if req.Headers[0].Value != "text/html" || req.Headers[1].Value != "text/css" {
		t.Error("duplicate headers must keep their order")
	}
}

func TestBuildRequestWithoutHeaders(t *testing.T) {
	in := newStream("GET / HTTP/1.1\r\n\r\n")

	req, err := BuildRequest(in)
	if err != nil {
		t.Fatal(err)
	}

	if len(req.Headers) != 0 {
		t.Errorf("expected no headers, got %d", len(req.Headers))
	}
	if len(req.Body) != 0 {
		t.Errorf("expected empty body, got %q", req.Body)
	}
}

func TestBuildRequestFailures(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"empty stream", ""},
		{"truncated mid headers", "GET /test HTTP/1.1\r\nHost: ww"},
		{"body without blank line", "GET /test HTTP/1.1\r\nHost: www.example.com\r\nAccept-Language: en\r\n{\"meow\": 1}"},
		{"headers never terminated", "GET /test HTTP/1.1\r\nHost: www.example.com\r\n"},
		{"lone cr at end of stream", "GET /test HTTP/1.1\r\nHost: x\r\n\r"},
		{"bad request line", "GET\r\n\r\n"},
		{"bad header line", "GET / HTTP/1.1\r\nno colon here\r\n\r\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BuildRequest(newStream(tt.in))
			if !errors.Is(err, CannedStatus(StatusBadRequest)) {
				t.Errorf("expected 400, got %v", err)
			}
		})
	}
}

// errReader fails the transport mid-read, which must surface as 500, not
// as a client error.
type errReader struct{}

func (errReader) Read(p []byte) (int, error) {
	return 0, errors.New("broken transport")
}

func (errReader) Write(p []byte) (int, error) {
	return len(p), nil
}

func TestBuildRequestTransportFailureIs500(t *testing.T) {
	_, err := BuildRequest(errReader{})
	if !errors.Is(err, CannedStatus(StatusInternalServerError)) {
		t.Errorf("expected 500, got %v", err)
	}
}

func TestRespondWritesOnRetainedStream(t *testing.T) {
	in := newStream("GET /test HTTP/1.1\r\n\r\n")

	req, err := BuildRequest(in)
	if err != nil {
		t.Fatal(err)
	}

	res := NewResponse(VersionHTTP11, CannedStatus(StatusOK), nil, []byte("hi"))
	if err := req.Respond(res); err != nil {
		t.Fatal(err)
	}

	expected := "HTTP/1.1 200 OK\r\n\r\nhi"
	if in.Writes.String() != expected {
		t.Errorf("expected %q on the stream, got %q", expected, in.Writes.String())
	}
}

func TestRespondStatusShorthand(t *testing.T) {
	in := newStream("GET /test HTTP/1.1\r\n\r\n")

	req, err := BuildRequest(in)
	if err != nil {
		t.Fatal(err)
	}

	if err := req.RespondStatus(CannedStatus(StatusTeapot)); err != nil {
		t.Fatal(err)
	}

	expected := "HTTP/1.1 418 I'm a teapot\r\n\r\n"
	if in.Writes.String() != expected {
		t.Errorf("expected %q on the stream, got %q", expected, in.Writes.String())
	}
}
