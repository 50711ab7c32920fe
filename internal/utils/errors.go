package utils

import (
	"errors"
	"fmt"
	"net/http"
)

type Code string

const (
	CodeInvalidArgument Code = "INVALID_ARGUMENT"
	CodeFetch           Code = "FETCH_FAILED"
	CodeTranscription   Code = "TRANSCRIPTION_FAILED"
	CodeSummarization   Code = "SUMMARIZATION_FAILED"
	CodeTranslation     Code = "TRANSLATION_FAILED"
	CodeSynthesis       Code = "AUDIO_GENERATION_FAILED"
	CodeUnavailable     Code = "UNAVAILABLE"
	CodeTimeout         Code = "TIMEOUT"
	CodeInternal        Code = "INTERNAL"
)

// AppError is the unified error contract across layers. Every pipeline
// stage wraps its internal failures into one of these with a stage code,
// keeping the original cause chained rather than swallowed.
type AppError struct {
	Code    Code
	Op      string // operation name, ex: "PipelineService.Run"
	Message string // safe message
	Err     error  // wrapped error
}

func (e *AppError) Error() string {
	if e == nil {
		return "<nil>"
	}
	switch {
	case e.Op != "" && e.Message != "" && e.Err != nil:
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Message, e.Err)
	case e.Op != "" && e.Message != "":
		return fmt.Sprintf("%s: %s", e.Op, e.Message)
	case e.Op != "" && e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	case e.Message != "" && e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	case e.Message != "":
		return e.Message
	case e.Err != nil:
		return e.Err.Error()
	default:
		return "error"
	}
}

func (e *AppError) Unwrap() error { return e.Err }

func E(code Code, op, msg string, err error) error {
	return &AppError{Code: code, Op: op, Message: msg, Err: err}
}

func IsCode(err error, code Code) bool {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae.Code == code
	}
	return false
}

// Detail is the user-visible error string: the stage message with the
// underlying cause appended, without the internal operation name.
func Detail(err error) string {
	var ae *AppError
	if errors.As(err, &ae) {
		switch {
		case ae.Message != "" && ae.Err != nil:
			return fmt.Sprintf("%s: %v", ae.Message, ae.Err)
		case ae.Message != "":
			return ae.Message
		case ae.Err != nil:
			return ae.Err.Error()
		}
	}
	if err != nil {
		return err.Error()
	}
	return ""
}

func HTTPStatus(err error) int {
	var ae *AppError
	if errors.As(err, &ae) {
		switch ae.Code {
		case CodeInvalidArgument:
			return http.StatusBadRequest
		case CodeUnavailable:
			return http.StatusServiceUnavailable
		case CodeTimeout:
			return http.StatusGatewayTimeout
		default:
			// every stage failure surfaces as one generic failure status
			return http.StatusInternalServerError
		}
	}
	return http.StatusInternalServerError
}
