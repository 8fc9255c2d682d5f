// Package apperr carries the error taxonomy shared by the API server and the
// web client: validation, missing references, auth, connectivity, storage.
package apperr

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

type Kind int

const (
	KindBadRequest Kind = iota
	KindNotFound
	KindUnauthenticated
	KindForbidden
	KindPersistence
	KindNetwork
	KindTimeout
)

type Error struct {
	Kind    Kind
	Message string
	// Fields maps input field names to inline messages for validation errors.
	Fields map[string]string
	cause  error
}

func (e *Error) Error() string { return e.Message }
func (e *Error) Unwrap() error { return e.cause }

func BadRequest(msg string) *Error { return &Error{Kind: KindBadRequest, Message: msg} }

func Validation(fields map[string]string) *Error {
	return &Error{Kind: KindBadRequest, Message: "validation failed", Fields: fields}
}

func NotFound(msg string) *Error { return &Error{Kind: KindNotFound, Message: msg} }

func Unauthenticated(msg string) *Error { return &Error{Kind: KindUnauthenticated, Message: msg} }

func Forbidden(msg string) *Error { return &Error{Kind: KindForbidden, Message: msg} }

func Persistence(err error) *Error {
	return &Error{Kind: KindPersistence, Message: "storage failure", cause: err}
}

func Network(err error) *Error {
	return &Error{Kind: KindNetwork, Message: "service unreachable", cause: err}
}

func Timeout(err error) *Error {
	return &Error{Kind: KindTimeout, Message: "request timed out", cause: err}
}

// KindOf extracts the taxonomy kind; unknown errors count as persistence
// failures so they surface as a generic server error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindPersistence
}

func As(err error) (*Error, bool) {
	var e *Error
	ok := errors.As(err, &e)
	return e, ok
}

// HTTPStatus maps a kind to its wire status. Network/timeout kinds only occur
// client-side and map to 502 if they ever reach a response.
func HTTPStatus(k Kind) int {
	switch k {
	case KindBadRequest:
		return fiber.StatusBadRequest
	case KindNotFound:
		return fiber.StatusNotFound
	case KindUnauthenticated:
		return fiber.StatusUnauthorized
	case KindForbidden:
		return fiber.StatusForbidden
	case KindNetwork, KindTimeout:
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}
