package http

import "strings"

// Header is a single name/value pair. Duplicate names are allowed; a request
// keeps its headers as an ordered sequence, never merged by name.
type Header struct {
	Name  string
	Value string
}

// ParseHeader parses one header line, splitting on the first colon. The name
// is taken verbatim; the value is trimmed of surrounding whitespace. A line
// without a colon fails with 400.
func ParseHeader(line string) (Header, error) {
	name, value, found := strings.Cut(line, ":")
	if !found {
		return Header{}, CannedStatus(StatusBadRequest)
	}

	return Header{
		Name:  name,
		Value: strings.TrimSpace(value),
	}, nil
}

// String renders the canonical wire form "{name}: {value}" with exactly one
// space after the colon, regardless of the spacing seen on parse.
func (h Header) String() string {
	return h.Name + ": " + h.Value
}
