package http

import (
	"bufio"
	"io"
	"strings"
)

// Request is one parsed HTTP request. It is built once per connection by
// BuildRequest and immutable afterwards, except for the retained stream,
// which is written exactly once by Respond.
type Request struct {
	RequestLine
	Headers []Header
	Body    []byte

	stream io.ReadWriter
}

// BuildRequest consumes a byte stream and parses it into a Request in a
// single blocking pass: request line, headers up to an empty line, then the
// rest of the stream verbatim as the body. There is no Content-Length or
// chunked negotiation.
//
// Failure codes split by fault: 400 means the client sent something
// malformed (missing request line, bad version, unterminated headers,
// header without a colon), 500 means the transport itself failed mid-read.
// BuildRequest writes nothing to the stream; canned replies are the
// caller's job.
func BuildRequest(stream io.ReadWriter) (*Request, error) {
	reader := bufio.NewReader(stream)

	line, err := readLine(reader)
	if err == io.EOF {
		return nil, CannedStatus(StatusBadRequest)
	}
	if err != nil {
		return nil, CannedStatus(StatusInternalServerError)
	}

	requestLine, err := ParseRequestLine(line)
	if err != nil {
		return nil, err
	}

	// Headers run until an exactly empty line. The empty line is mandatory
	// even when there are zero headers.
	var headers []Header
	terminated := false
	for {
		line, err := readLine(reader)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, CannedStatus(StatusInternalServerError)
		}
		if line == "" {
			terminated = true
			break
		}

		header, err := ParseHeader(line)
		if err != nil {
			return nil, err
		}
		headers = append(headers, header)
	}
	if !terminated {
		return nil, CannedStatus(StatusBadRequest)
	}

	body, err := io.ReadAll(reader)
	if err != nil {
		return nil, CannedStatus(StatusInternalServerError)
	}

	return &Request{
		RequestLine: requestLine,
		Headers:     headers,
		Body:        body,
		stream:      stream,
	}, nil
}

// readLine returns the next line without its terminator. A trailing fragment
// with no terminator still counts as a line and is returned verbatim, "\r"
// included, since only a consumed "\n" marks a terminator to strip. io.EOF
// is only returned when the stream is exhausted before any byte of a line
// is read.
func readLine(reader *bufio.Reader) (string, error) {
	line, err := reader.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			return line, nil
		}
		return "", err
	}

	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r"), nil
}

// Respond serializes the response onto the connection the request came in
// on. Meant to be called exactly once per request.
func (req *Request) Respond(res *Response) error {
	return res.Write(req.stream)
}

// RespondStatus replies with a status-only response and empty headers and
// body, matching the request's protocol version.
func (req *Request) RespondStatus(status Status) error {
	return RespondStatus(req.Version, status, req.stream)
}
