package http

import (
	"errors"
	"testing"
)

func TestParseRequestLine(t *testing.T) {
	rl, err := ParseRequestLine("GET /test HTTP/1.1")
	if err != nil {
		t.Fatal(err)
	}

	if rl.Method != "GET" {
		t.Errorf("expected method GET, got %s", rl.Method)
	}
	if rl.URI != "/test" {
		t.Errorf("expected uri /test, got %s", rl.URI)
	}
	if rl.Version != VersionHTTP11 {
		t.Errorf("expected version HTTP/1.1, got %s", rl.Version)
	}
	if rl.Resource() != "GET /test" {
		t.Errorf("expected resource 'GET /test', got %s", rl.Resource())
	}
}

func TestParseRequestLineFailures(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{"wrong version", "GET /test HTTP/-4.1"},
		{"not enough tokens", "GET"},
		{"no separators", "GET/testHTTP/1.1"},
		{"empty line", ""},
		{"version 1.0", "GET /test HTTP/1.0"},
		{"version 2", "GET /test HTTP/2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseRequestLine(tt.line)
			if !errors.Is(err, CannedStatus(StatusBadRequest)) {
				t.Errorf("expected 400, got %v", err)
			}
		})
	}
}

func TestParseRequestLineIgnoresExtraTokens(t *testing.T) {
	rl, err := ParseRequestLine("GET /test HTTP/1.1 trailing garbage")
	if err != nil {
		t.Fatal(err)
	}

	if rl.Resource() != "GET /test" {
		t.Errorf("expected resource 'GET /test', got %s", rl.Resource())
	}
}
