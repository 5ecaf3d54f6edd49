// Package apperr defines the typed error taxonomy raised by the use-case
// layer and the single boundary translator that turns every failure into
// the fixed external error vocabulary.
package apperr

import "github.com/gofiber/fiber/v2"

type Kind string

const (
	KindValidation Kind = "validation"
	KindConflict   Kind = "conflict"
	KindReference  Kind = "reference"
	KindNotFound   Kind = "not_found"
	KindInternal   Kind = "internal"
)

// Error is the result sum carried out of services and repositories in
// place of raw store failures. Details, when set, is serialized under the
// "details" key of the error payload.
type Error struct {
	Kind    Kind
	Status  int
	Message string
	Details any
}

func (e *Error) Error() string { return e.Message }

// Validation flags malformed or policy-violating input.
func Validation(message string, details any) *Error {
	return &Error{Kind: KindValidation, Status: fiber.StatusBadRequest, Message: message, Details: details}
}

// Conflict flags a natural-key collision, e.g. Conflict("barcode").
func Conflict(resource string) *Error {
	return &Error{Kind: KindConflict, Status: fiber.StatusConflict, Message: resource + " already exists"}
}

// Reference flags a referenced entity that does not exist, pre-empting the
// store's foreign-key rejection with a clearer message.
func Reference(entity string) *Error {
	return &Error{Kind: KindReference, Status: fiber.StatusBadRequest, Message: entity + " does not exist"}
}

// NotFound flags an absent record on a read.
func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Status: fiber.StatusNotFound, Message: message}
}

// Internal flags an unclassified failure.
func Internal(message string) *Error {
	return &Error{Kind: KindInternal, Status: fiber.StatusInternalServerError, Message: message}
}
