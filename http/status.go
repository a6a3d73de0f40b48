package http

import "strconv"

const (
	StatusOK                  = 200
	StatusBadRequest          = 400
	StatusUnauthorized        = 401
	StatusForbidden           = 403
	StatusNotFound            = 404
	StatusMethodNotAllowed    = 405
	StatusTeapot              = 418
	StatusTooManyRequests     = 429
	StatusInternalServerError = 500
)

var (
	unknownStatusReason = "Unknown Status Code"

	statusReasons = map[int]string{
		StatusOK:                  "OK",
		StatusBadRequest:          "Bad Request",
		StatusUnauthorized:        "Unauthorized",
		StatusForbidden:           "Forbidden",
		StatusNotFound:            "Not Found",
		StatusMethodNotAllowed:    "Method Not Allowed",
		StatusTeapot:              "I'm a teapot",
		StatusTooManyRequests:     "Too Many Requests",
		StatusInternalServerError: "Internal Server Error",
	}
)

// StatusText returns the canned reason phrase for a status code.
func StatusText(code int) string {
	if reason, found := statusReasons[code]; found {
		return reason
	}
	return unknownStatusReason
}

// Status is a numeric HTTP status code with a reason phrase. It doubles as
// the pipeline's error type: parsing and routing failures are Status values,
// so a caller can serialize them straight into a canned reply.
//
// Equality is defined by numeric code alone. Two statuses with different
// reason strings are equal iff their codes match, which lets callers compare
// against canned statuses regardless of reason text.
type Status struct {
	Code   int
	Reason string
}

// NewStatus creates a status with a caller-supplied reason.
func NewStatus(code int, reason string) Status {
	return Status{Code: code, Reason: reason}
}

// CannedStatus creates a status with the standard reason phrase for code.
func CannedStatus(code int) Status {
	return Status{Code: code, Reason: StatusText(code)}
}

func (s Status) Error() string {
	return "http: " + strconv.Itoa(s.Code) + " " + s.Reason
}

// Equal reports whether both statuses carry the same numeric code. Reason
// text is ignored.
func (s Status) Equal(other Status) bool {
	return s.Code == other.Code
}

// Is makes errors.Is match on numeric code only.
func (s Status) Is(target error) bool {
	other, ok := target.(Status)
	return ok && s.Code == other.Code
}
