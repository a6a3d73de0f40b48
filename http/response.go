package http

import (
	"io"
	"strconv"
)

// Response is one outbound HTTP message: version, status, ordered headers
// and raw body. Constructed fresh per reply and consumed once by Write.
type Response struct {
	Version Version
	Status  Status
	Headers []Header
	Body    []byte
}

// NewResponse assembles a response from its parts, ready for one Write.
func NewResponse(version Version, status Status, headers []Header, body []byte) *Response {
	return &Response{
		Version: version,
		Status:  status,
		Headers: headers,
		Body:    body,
	}
}

// AddHeader appends a header, preserving insertion order.
func (res *Response) AddHeader(name, value string) {
	res.Headers = append(res.Headers, Header{Name: name, Value: value})
}

// Write serializes the response onto w as discrete writes, so a partial
// failure is attributable to the element being written: status line,
// terminator, each header with its terminator, one blank terminator line,
// then the body with nothing appended. The first write failure aborts and
// surfaces the underlying I/O error; nothing is retried.
func (res *Response) Write(w io.Writer) error {
	statusLine := res.Version.String() + " " + strconv.Itoa(res.Status.Code) + " " + res.Status.Reason
	if _, err := io.WriteString(w, statusLine); err != nil {
		return err
	}
	if _, err := io.WriteString(w, crlf); err != nil {
		return err
	}

	for _, header := range res.Headers {
		if _, err := io.WriteString(w, header.String()); err != nil {
			return err
		}
		if _, err := io.WriteString(w, crlf); err != nil {
			return err
		}
	}

	if _, err := io.WriteString(w, crlf); err != nil {
		return err
	}

	if _, err := w.Write(res.Body); err != nil {
		return err
	}

	return nil
}

// RespondStatus writes a response carrying only a status line, for canned
// error replies where no handler ever ran.
func RespondStatus(version Version, status Status, w io.Writer) error {
	res := Response{Version: version, Status: status}
	return res.Write(w)
}
