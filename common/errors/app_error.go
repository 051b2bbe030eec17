package errors

// AppError is a domain failure with a stable machine-readable code.
// Params carry extra fields merged into the error response body.
type AppError struct {
	Code    string
	Message string
	Params  map[string]any
}

func (e *AppError) Error() string {
	return e.Message
}

func New(code string, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

// With attaches an extra response field and returns the error for chaining.
func (e *AppError) With(key string, value any) *AppError {
	if e.Params == nil {
		e.Params = make(map[string]any)
	}
	e.Params[key] = value
	return e
}
