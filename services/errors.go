package services

import (
	"fmt"
	"net/http"
)

type AppError struct {
	HTTPCode int
	Message  string
	Data     interface{}
	Err      error
}

func (e *AppError) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func newAppError(httpCode int, message string, err error) *AppError {
	return &AppError{HTTPCode: httpCode, Message: message, Err: err}
}

// Upload rejections. The original UI showed these as bare text, so the
// messages are user-facing verbatim.
func newNoFileError() *AppError {
	return newAppError(http.StatusBadRequest, "No file uploaded.", nil)
}

func newNoFilenameError() *AppError {
	return newAppError(http.StatusBadRequest, "No selected file.", nil)
}

func newUnsupportedTypeError() *AppError {
	return newAppError(http.StatusBadRequest, "Invalid file type.", nil)
}

func newFileTooLargeError(limitMB int64) *AppError {
	return newAppError(http.StatusBadRequest, fmt.Sprintf("File too large. Max %dMB.", limitMB), nil)
}
