package errors

import "fmt"

var (
	// JWT and tokens
	ErrInvalidSigningMethod = fmt.Errorf("invalid token signing method")
	ErrInvalidToken         = fmt.Errorf("invalid token")
	ErrTokenExpired         = fmt.Errorf("token has expired")
	ErrTokenNotYetValid     = fmt.Errorf("token is not valid yet")
	ErrTokenIsNotAccess     = fmt.Errorf("refresh token cannot be used for access")

	// Authorization
	ErrEmptyAuthHeader    = fmt.Errorf("authorization header is missing")
	ErrInvalidAuthHeader  = fmt.Errorf("invalid authorization header format")
	ErrInvalidCredentials = fmt.Errorf("invalid credentials")
	ErrUnauthorized       = fmt.Errorf("unauthorized")

	// Context
	ErrUserIDNotFoundInContext = fmt.Errorf("user id not found in request context")

	// Domain
	ErrNotFound            = fmt.Errorf("record not found")
	ErrConflict            = fmt.Errorf("record already exists")
	ErrBadRequest          = fmt.Errorf("invalid request")
	ErrCounterExhausted    = fmt.Errorf("certificate counter exhausted for this year")
	ErrRenderFailure       = fmt.Errorf("certificate rendering failed")
	ErrEquipmentInWorkshop = fmt.Errorf("equipment with this serial number is already in the workshop")
)

// HttpError carries an HTTP status code alongside a user-facing message and
// the internal error that triggered it.
type HttpError struct {
	Code    int
	Message string
	Err     error
	Details interface{}
}

func (e *HttpError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *HttpError) Unwrap() error { return e.Err }

func NewHttpError(code int, message string, err error, details interface{}) *HttpError {
	return &HttpError{Code: code, Message: message, Err: err, Details: details}
}
