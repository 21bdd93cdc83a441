package domain

import "fmt"

// ErrorKind classifies a domain error so the transport layer can map it to a
// response code without inspecting message strings.
type ErrorKind int

const (
	KindValidation ErrorKind = iota + 1
	KindUnauthorized
	KindForbidden
	KindNotFound
	KindConflict
	KindInternal
)

// Error is the typed error every domain service raises. The boundary layer
// renders Message to the caller; Err carries the underlying cause and is only
// ever logged server-side.
type Error struct {
	Kind    ErrorKind
	Message string
	// Details holds per-field validation messages when Kind is KindValidation.
	Details []string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

var (
	ErrEmailTaken          = &Error{Kind: KindConflict, Message: "Email is already taken."}
	ErrInvalidCredentials  = &Error{Kind: KindUnauthorized, Message: "Invalid credentials."}
	ErrNoToken             = &Error{Kind: KindUnauthorized, Message: "Access Denied: No token provided."}
	ErrInvalidToken        = &Error{Kind: KindForbidden, Message: "Invalid or expired token."}
	ErrUserNotFound        = &Error{Kind: KindNotFound, Message: "User not found."}
	ErrCandidateNotFound   = &Error{Kind: KindNotFound, Message: "Candidate not found."}
	ErrNameNotFound        = &Error{Kind: KindNotFound, Message: "Candidate name not found"}
	ErrReportNotFound      = &Error{Kind: KindNotFound, Message: "Report not found."}
	ErrReportExists        = &Error{Kind: KindConflict, Message: "Report already exists for this candidate."}
	ErrCourtSearchNotFound = &Error{Kind: KindNotFound, Message: "Court search not found."}
)

// Validation builds a 400-class error carrying one message per failing field.
func Validation(messages ...string) *Error {
	return &Error{Kind: KindValidation, Message: "Validation failed.", Details: messages}
}

// PageOutOfRange signals a pagination request beyond the last page.
func PageOutOfRange(page, totalPages int) *Error {
	return &Error{
		Kind:    KindNotFound,
		Message: fmt.Sprintf("Page %d is out of range. Total pages: %d", page, totalPages),
	}
}

// Internal wraps an unexpected persistence or infrastructure failure. The
// message rendered to the caller stays generic; op and err are for the logs.
func Internal(op string, err error) *Error {
	return &Error{
		Kind:    KindInternal,
		Message: "Internal Server Error.",
		Err:     fmt.Errorf("%s: %w", op, err),
	}
}
