package services

// Services stay transport-free: failures come back as an *Error whose
// Kind tells the HTTP layer which status to answer with.

type ErrorKind int

const (
	KindNotFound ErrorKind = iota + 1
	KindInvalidParameter
	KindAccessDenied
	KindConflict
)

type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string { return e.Message }

func NotFound(message string) error {
	return &Error{Kind: KindNotFound, Message: message}
}

func InvalidParameter(message string) error {
	return &Error{Kind: KindInvalidParameter, Message: message}
}

func AccessDenied(message string) error {
	return &Error{Kind: KindAccessDenied, Message: message}
}

func Conflict(message string) error {
	return &Error{Kind: KindConflict, Message: message}
}

func kindOf(err error) ErrorKind {
	if e, ok := err.(*Error); ok {
		return e.Kind
	}
	return 0
}

func IsNotFound(err error) bool         { return kindOf(err) == KindNotFound }
func IsInvalidParameter(err error) bool { return kindOf(err) == KindInvalidParameter }
func IsAccessDenied(err error) bool     { return kindOf(err) == KindAccessDenied }
func IsConflict(err error) bool         { return kindOf(err) == KindConflict }

// KindOf exposes the error kind for callers that map it to a transport
// status. Returns 0 for errors that are not service errors.
func KindOf(err error) ErrorKind { return kindOf(err) }
