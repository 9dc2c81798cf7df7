package ererrors

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kataras/iris"
)

// IException provides interface for
//   - user facing error message with status code
//   - raw error for tracking them
type IException interface {
	ExceptionBody() map[string]interface{}
	ExceptionStatusCode() int
	RawException() error
}

type Error struct {
	IException
	Code       int
	Message    string
	StatusCode int
	RawError   error
	Details    map[string]interface{}
}

func (e *Error) Error() string {
	return fmt.Sprintf("%v (Code = %v)", e.Message, e.Code)
}

func (e *Error) ExceptionBody() map[string]interface{} {
	body := map[string]interface{}{"code": e.Code, "message": e.Message}
	for k, v := range e.Details {
		body[k] = v
	}
	return body
}

func (e *Error) ExceptionStatusCode() int {
	return e.StatusCode
}

func (e *Error) RawException() error {
	return e.RawError
}

// WithMsg modify user visible message
func (e Error) WithMsg(msg string) *Error {
	e.Message = msg
	return &e
}

// WithError returns raw error struct which is not exposed to user.
// It is used for internal error tracking.
func (e Error) WithError(err error) *Error {
	e.RawError = err
	return &e
}

// WithDetails attaches extra response fields (e.g. missing_fields)
// to the user facing error body.
func (e Error) WithDetails(details map[string]interface{}) *Error {
	e.Details = details
	return &e
}

func New(code int, message string, statusCode int) *Error {
	return &Error{Code: code, Message: message, StatusCode: statusCode}
}

func NewInternalServerError(code int, message string) *Error {
	return New(code, message, iris.StatusInternalServerError)
}

func NewNotFound(code int, message string) *Error {
	return New(code, message, iris.StatusNotFound)
}

func NewUnauthorized(code int, message string) *Error {
	return New(code, message, iris.StatusUnauthorized)
}

func NewBadRequest(code int, message string) *Error {
	return New(code, message, iris.StatusBadRequest)
}

func NewBadGateway(code int, message string) *Error {
	return New(code, message, iris.StatusBadGateway)
}

func NewUnprocessableEntity(code int, message string) *Error {
	return New(code, message, iris.StatusUnprocessableEntity)
}

func Format(err error) string {
	var errmsg string
	if erErr, ok := err.(IException); ok {
		if erErr.RawException() != nil {
			errmsg = fmt.Sprintf("%v : %v", err.Error(), erErr.RawException().Error())
		} else {
			errmsg = fmt.Sprintf("%v", err.Error())
		}
	} else {
		errmsg = fmt.Sprintf("%v", err.Error())
	}
	return errmsg
}

func IsNotFound(err error) bool {
	return strings.Contains(err.Error(), strconv.FormatInt(int64(NotFound.Code), 10))
}

func IsDuplicateSubmission(err error) bool {
	return strings.Contains(err.Error(), strconv.FormatInt(int64(DuplicateSubmission.Code), 10))
}

// code convention is http_status_code:custom_code where custom code starts from 10000
var (
	// 400
	RequestBodyLoadFailure = NewBadRequest(40010000, "request body format is invalid")
	ValidationError        = NewBadRequest(40010001, "required fields are missing or malformed")
	DuplicateSubmission    = NewBadRequest(40010002, "a submission already exists for this shareholder")
	InvalidFormat          = NewBadRequest(40010003, "uploaded file format is not supported")
	InvalidRequestParam    = NewUnprocessableEntity(42210000, "request parameters are invalid")

	// 401
	Unauthorized = NewUnauthorized(40110000, "request is unauthorized")

	// 404
	NotFound = NewNotFound(40410000, "resource not found")

	// 500
	InternalServerError = NewInternalServerError(50010000, "internal server error occurred")
	RenderFailed        = NewInternalServerError(50010001, "acceptance form could not be rendered")
	PersistenceError    = NewInternalServerError(50010002, "submission could not be stored")

	// 502
	UploadFailed = NewBadGateway(50210000, "artifact upload failed")
	Timeout      = NewBadGateway(50210001, "artifact storage timed out")
	NetworkError = NewBadGateway(50210002, "artifact storage is unreachable")
)
