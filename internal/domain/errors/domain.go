// Package errors defines the closed set of expected use case failures and the
// AppError contract the HTTP layer renders.
package errors

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/pkg/errors"
)

// Kind enumerates every expected failure a use case can return.
type Kind int

const (
	KindNotFound Kind = iota + 1
	KindNotAllowed
	KindInvalidAttachmentType
	KindFileNameAlreadyExists
	KindPassedDeadline
	KindParamsNotProvided
	KindUserAlreadyExists
	KindWrongCredentials
	KindInvalidFormat
)

// Kinds lists all kinds in declaration order.
var Kinds = []Kind{
	KindNotFound,
	KindNotAllowed,
	KindInvalidAttachmentType,
	KindFileNameAlreadyExists,
	KindPassedDeadline,
	KindParamsNotProvided,
	KindUserAlreadyExists,
	KindWrongCredentials,
	KindInvalidFormat,
}

// String returns the machine-readable code of the kind.
func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "NOT_FOUND"
	case KindNotAllowed:
		return "NOT_ALLOWED"
	case KindInvalidAttachmentType:
		return "INVALID_ATTACHMENT_TYPE"
	case KindFileNameAlreadyExists:
		return "FILE_NAME_ALREADY_EXISTS"
	case KindPassedDeadline:
		return "PASSED_DEADLINE"
	case KindParamsNotProvided:
		return "PARAMS_NOT_PROVIDED"
	case KindUserAlreadyExists:
		return "USER_ALREADY_EXISTS"
	case KindWrongCredentials:
		return "WRONG_CREDENTIALS"
	case KindInvalidFormat:
		return "INVALID_FORMAT"
	default:
		return "UNKNOWN"
	}
}

// DomainError is the failure side of every use case result. Subject carries the
// kind's payload: the missing entity, the rejected file type or name, the
// duplicated identifier, the absent parameters or the malformed field.
type DomainError struct {
	kind    Kind
	subject string
}

// Kind returns the failure kind.
func (e *DomainError) Kind() Kind {
	return e.kind
}

// Subject returns the kind's payload, possibly empty.
func (e *DomainError) Subject() string {
	return e.subject
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message()
}

// Is matches another DomainError of the same kind. An empty subject on the
// target matches any subject.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}

	return t.kind == e.kind && (t.subject == "" || t.subject == e.subject)
}

// HTTPCode returns the HTTP status code
func (e *DomainError) HTTPCode() int {
	switch e.kind {
	case KindNotFound:
		return http.StatusNotFound
	case KindNotAllowed:
		return http.StatusForbidden
	case KindInvalidAttachmentType:
		return http.StatusUnsupportedMediaType
	case KindFileNameAlreadyExists, KindUserAlreadyExists:
		return http.StatusConflict
	case KindPassedDeadline:
		return http.StatusUnprocessableEntity
	case KindParamsNotProvided, KindInvalidFormat:
		return http.StatusBadRequest
	case KindWrongCredentials:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// ErrorCode returns the business error code
func (e *DomainError) ErrorCode() string {
	return e.kind.String()
}

// Message returns the user-friendly error message
func (e *DomainError) Message() string {
	switch e.kind {
	case KindNotFound:
		return fmt.Sprintf("%s not found", e.subject)
	case KindNotAllowed:
		return "not allowed"
	case KindInvalidAttachmentType:
		return fmt.Sprintf("file type %q is not a valid attachment", e.subject)
	case KindFileNameAlreadyExists:
		return fmt.Sprintf("file name %q already exists", e.subject)
	case KindPassedDeadline:
		return "the deadline has passed"
	case KindParamsNotProvided:
		return fmt.Sprintf("params not provided: %s", e.subject)
	case KindUserAlreadyExists:
		return fmt.Sprintf("user %q already exists", e.subject)
	case KindWrongCredentials:
		return "credentials are not valid"
	case KindInvalidFormat:
		return fmt.Sprintf("%s has an invalid format", e.subject)
	default:
		return "unknown failure"
	}
}

// Details returns detailed error information
func (e *DomainError) Details() string {
	return e.subject
}

// Sentinels for errors.Is; they match any subject of their kind.
var (
	ErrNotFound              = &DomainError{kind: KindNotFound}
	ErrNotAllowed            = &DomainError{kind: KindNotAllowed}
	ErrInvalidAttachmentType = &DomainError{kind: KindInvalidAttachmentType}
	ErrFileNameAlreadyExists = &DomainError{kind: KindFileNameAlreadyExists}
	ErrPassedDeadline        = &DomainError{kind: KindPassedDeadline}
	ErrParamsNotProvided     = &DomainError{kind: KindParamsNotProvided}
	ErrUserAlreadyExists     = &DomainError{kind: KindUserAlreadyExists}
	ErrWrongCredentials      = &DomainError{kind: KindWrongCredentials}
	ErrInvalidFormat         = &DomainError{kind: KindInvalidFormat}
)

func NotFound(subject string) error {
	return &DomainError{kind: KindNotFound, subject: subject}
}

func NotAllowed() error {
	return &DomainError{kind: KindNotAllowed}
}

func InvalidAttachmentType(fileType string) error {
	return &DomainError{kind: KindInvalidAttachmentType, subject: fileType}
}

func FileNameAlreadyExists(fileName string) error {
	return &DomainError{kind: KindFileNameAlreadyExists, subject: fileName}
}

func PassedDeadline() error {
	return &DomainError{kind: KindPassedDeadline}
}

func ParamsNotProvided(fields ...string) error {
	return &DomainError{kind: KindParamsNotProvided, subject: strings.Join(fields, ", ")}
}

func UserAlreadyExists(identifier string) error {
	return &DomainError{kind: KindUserAlreadyExists, subject: identifier}
}

func WrongCredentials() error {
	return &DomainError{kind: KindWrongCredentials}
}

func InvalidFormat(field string) error {
	return &DomainError{kind: KindInvalidFormat, subject: field}
}

// KindOf reports the kind of the first DomainError in err's chain.
func KindOf(err error) (Kind, bool) {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.kind, true
	}

	return 0, false
}
