package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// The closed set of domain outcomes the HTTP layer can render. Each
// constructor carries exactly the data needed to render it, and the
// (status, message) pair per outcome is part of the client contract.

func PhotoIDInvalid() *AppError {
	return &AppError{Code: CodeInvalidArg, Message: "Photo Id is Invalid", Status: http.StatusBadRequest}
}

func RequestFileMissing() *AppError {
	return &AppError{Code: CodeInvalidArg, Message: "The request is missing a file item", Status: http.StatusBadRequest}
}

func FileNameMissing() *AppError {
	return &AppError{Code: CodeInvalidArg, Message: "The request is missing a file name", Status: http.StatusBadRequest}
}

func PhotoHashMissing() *AppError {
	return &AppError{Code: CodeInvalidArg, Message: "The request is missing a photo hash", Status: http.StatusBadRequest}
}

func PhotoHashInvalid() *AppError {
	return &AppError{Code: CodeInvalidArg, Message: "The request has an invalid photo hash", Status: http.StatusBadRequest}
}

func AudioLengthMissing() *AppError {
	return &AppError{Code: CodeInvalidArg, Message: "The request is missing the length of the audio", Status: http.StatusBadRequest}
}

func SpeechResultInvalid() *AppError {
	return &AppError{Code: CodeInvalidArg, Message: "Speech Result is invalid", Status: http.StatusBadRequest}
}

func SpeechResultsInvalid() *AppError {
	return &AppError{Code: CodeInvalidArg, Message: "Speech Result list is invalid", Status: http.StatusBadRequest}
}

func IOError(cause error) *AppError {
	return &AppError{Code: CodeIO, Message: "IO Error", Cause: cause, Status: http.StatusInternalServerError}
}

func TranscriptionError(cause error) *AppError {
	return &AppError{Code: CodeExternal, Message: "Unable to transcribe Audio", Cause: cause}
}

func TranslationError(cause error) *AppError {
	return &AppError{Code: CodeExternal, Message: "Unable to translate text", Cause: cause}
}

func DatabaseError(cause error) *AppError {
	return &AppError{Code: CodeInternal, Message: "An Internal Error Occurred", Cause: cause}
}

func PhotoAlreadyExists(hash string) *AppError {
	return &AppError{Code: CodeConflict, Message: fmt.Sprintf("Photo with hash (%s) already exists", hash)}
}

func AudioAlreadyExists(hash string) *AppError {
	return &AppError{Code: CodeConflict, Message: fmt.Sprintf("Audio with hash (%s) already exists", hash)}
}

func QueryAlreadyExists(id string) *AppError {
	return &AppError{Code: CodeConflict, Message: fmt.Sprintf("Query with id (%s) already exists", id)}
}

func QueryResultAlreadyExists(queryID, photoID string) *AppError {
	return &AppError{Code: CodeConflict, Message: fmt.Sprintf("Query Result with query (%s) and photo (%s) already exists", queryID, photoID)}
}

// The original deployment reports parameter parse failures below as 409,
// and annotation clients depend on those pairs.

func QueryIDInvalid() *AppError {
	return &AppError{Code: CodeInvalidArg, Message: "Query id is invalid", Status: http.StatusConflict}
}

func SampleIDInvalid() *AppError {
	return &AppError{Code: CodeInvalidArg, Message: "Sample id is invalid", Status: http.StatusConflict}
}

func TranslationAudioIDInvalid() *AppError {
	return &AppError{Code: CodeInvalidArg, Message: "Translation Audio id is invalid", Status: http.StatusConflict}
}

func LanguageInvalid() *AppError {
	return &AppError{Code: CodeInvalidArg, Message: "Language parameter missing/invalid", Status: http.StatusConflict}
}

func IncludeParameterInvalid() *AppError {
	return &AppError{Code: CodeInvalidArg, Message: "The include parameter must be one of Unknown|Exclude|Include|Discuss", Status: http.StatusConflict}
}

// HTTPStatus resolves the HTTP status and client-safe message for an
// error. Internal causes are never echoed to the client.
func HTTPStatus(err error) (int, string) {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		return http.StatusInternalServerError, "An Internal Error Occurred"
	}
	if appErr.Status != 0 {
		return appErr.Status, appErr.Message
	}
	switch appErr.Code {
	case CodeInvalidArg:
		return http.StatusBadRequest, appErr.Message
	case CodeNotFound:
		return http.StatusNotFound, appErr.Message
	case CodeConflict, CodeDependency:
		return http.StatusConflict, appErr.Message
	case CodeInternal:
		return http.StatusInternalServerError, "An Internal Error Occurred"
	default:
		return http.StatusInternalServerError, appErr.Message
	}
}

// IsCode reports whether err is an AppError with the given code.
func IsCode(err error, code string) bool {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		return false
	}
	return appErr.Code == code
}
