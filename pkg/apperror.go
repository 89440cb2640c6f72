package pkg

// AppError is the HTTP-facing error shape produced by the handler layer.
//
// Handlers map use case sentinel errors into AppError values; the wrapped
// cause (Err) stays server-side and is never serialized.
type AppError struct {
	Code       string
	Message    string
	Err        error
	HTTPStatus int
}

func NewDomainError(code, message string, err error, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		Err:        err,
		HTTPStatus: httpStatus,
	}
}

func NewDomainErrorSimple(code, message string, httpStatus int) *AppError {
	return NewDomainError(code, message, nil, httpStatus)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// ToHTTPError returns the JSON body sent to clients.
func (e *AppError) ToHTTPError() map[string]string {
	return map[string]string{
		"error": e.Message,
		"code":  e.Code,
	}
}
