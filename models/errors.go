package models

// ErrorKind classifies a failed operation so the API layer can pick the
// right HTTP status without inspecting message strings.
type ErrorKind int

const (
	ErrorValidation ErrorKind = iota // missing or malformed input
	ErrorAuth                        // missing/invalid token or bad credentials
	ErrorForbidden                   // authenticated but not allowed
	ErrorNotFound
	ErrorConflict // duplicate resource
	ErrorInternal // unexpected store failure
)

type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string { return e.Message }

func ValidationError(message string) *Error { return &Error{ErrorValidation, message} }
func AuthError(message string) *Error       { return &Error{ErrorAuth, message} }
func ForbiddenError(message string) *Error  { return &Error{ErrorForbidden, message} }
func NotFoundError(message string) *Error   { return &Error{ErrorNotFound, message} }
func ConflictError(message string) *Error   { return &Error{ErrorConflict, message} }
