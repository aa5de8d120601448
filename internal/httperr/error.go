package httperr

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Kind classifies a domain failure so the HTTP boundary can pick a
// status code without inspecting error strings.
type Kind string

const (
	KindValidation   Kind = "validation"
	KindBadRequest   Kind = "bad_request"
	KindNotFound     Kind = "not_found"
	KindForbidden    Kind = "forbidden"
	KindUnauthorized Kind = "unauthorized"
	KindStorage      Kind = "storage"
	KindConfig       Kind = "config"
)

type Error struct {
	Kind    Kind
	Code    string
	Message string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Code + ": " + e.Message
	}
	return e.Code
}

func New(kind Kind, code, message string) *Error {
	return &Error{Kind: kind, Code: code, Message: message}
}

func ErrValidation(code, message string) *Error {
	return New(KindValidation, code, message)
}

func ErrBadRequest(code, message string) *Error {
	return New(KindBadRequest, code, message)
}

func ErrNotFound(code, message string) *Error {
	return New(KindNotFound, code, message)
}

func ErrForbidden(code, message string) *Error {
	return New(KindForbidden, code, message)
}

func ErrUnauthorized(code, message string) *Error {
	return New(KindUnauthorized, code, message)
}

func ErrStorage(code, message string) *Error {
	return New(KindStorage, code, message)
}

func ErrConfig(code, message string) *Error {
	return New(KindConfig, code, message)
}

// KindOf returns the kind carried by err, or "" for unclassified errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}

// WriteError maps a domain error onto the response. Validation messages
// pass through; anything unclassified becomes an opaque 500 so raw
// driver or storage detail never reaches the client.
func WriteError(c *gin.Context, err error) {
	var e *Error
	if !errors.As(err, &e) {
		log.Printf("unhandled error: %v", err)
		Write(c, http.StatusInternalServerError, "internal_error", "something went wrong")
		return
	}

	switch e.Kind {
	case KindValidation, KindBadRequest:
		Write(c, http.StatusBadRequest, e.Code, e.Message)
	case KindNotFound:
		Write(c, http.StatusNotFound, e.Code, e.Message)
	case KindForbidden:
		Write(c, http.StatusForbidden, e.Code, e.Message)
	case KindUnauthorized:
		Write(c, http.StatusUnauthorized, e.Code, e.Message)
	case KindStorage, KindConfig:
		log.Printf("%s error: %v", e.Kind, err)
		Write(c, http.StatusInternalServerError, e.Code, "something went wrong")
	default:
		log.Printf("unhandled error kind %q: %v", e.Kind, err)
		Write(c, http.StatusInternalServerError, "internal_error", "something went wrong")
	}
}
