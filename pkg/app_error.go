package pkg

import "github.com/gin-gonic/gin"

// AppError is the error shape returned by the HTTP layer.
type AppError struct {
	Code       string
	Message    string
	Err        error
	HTTPStatus int
}

func NewDomainError(code, message string, err error, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, Err: err, HTTPStatus: httpStatus}
}

func NewDomainErrorSimple(code, message string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Code + ": " + e.Message + ": " + e.Err.Error()
	}
	return e.Code + ": " + e.Message
}

func (e *AppError) Unwrap() error { return e.Err }

// ToHTTPError renders the body sent to clients. The wrapped cause is never exposed.
func (e *AppError) ToHTTPError() gin.H {
	return gin.H{
		"error": gin.H{
			"code":    e.Code,
			"message": e.Message,
		},
	}
}
