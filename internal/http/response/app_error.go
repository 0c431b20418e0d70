package response

import "fmt"

// APIError 带响应码的错误，供 handler 响应与日志共用
type APIError struct {
	Code    int
	Message string
	Err     error
}

func (e *APIError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// WrapError 将底层错误包装为 APIError
func WrapError(code int, message string, err error) *APIError {
	return &APIError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
