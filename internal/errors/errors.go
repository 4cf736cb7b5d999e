// Package errors defines the domain error taxonomy shared by services
// and mapped to HTTP statuses at the handler layer.
package errors

import "errors"

// Kind classifies a domain error.
type Kind string

const (
	KindNotFound         Kind = "not_found"
	KindInvalidOperation Kind = "invalid_operation"
	KindUnauthorized     Kind = "unauthorized"
	KindForbidden        Kind = "forbidden"
	KindConflict         Kind = "conflict"
	KindUpstreamFailure  Kind = "upstream_failure"
)

type DomainError struct {
	Kind    Kind
	Code    string
	Message string
}

func (e *DomainError) Error() string { return e.Message }

// Is makes sentinel DomainError values comparable with errors.Is even
// when wrapped with fmt.Errorf("...: %w", err).
func (e *DomainError) Is(target error) bool {
	var de *DomainError
	if !errors.As(target, &de) {
		return false
	}
	return e.Code == de.Code
}

func NotFound(code, message string) *DomainError {
	return &DomainError{Kind: KindNotFound, Code: code, Message: message}
}

func InvalidOperation(code, message string) *DomainError {
	return &DomainError{Kind: KindInvalidOperation, Code: code, Message: message}
}

func Unauthorized(code, message string) *DomainError {
	return &DomainError{Kind: KindUnauthorized, Code: code, Message: message}
}

func Forbidden(code, message string) *DomainError {
	return &DomainError{Kind: KindForbidden, Code: code, Message: message}
}

func Conflict(code, message string) *DomainError {
	return &DomainError{Kind: KindConflict, Code: code, Message: message}
}

func UpstreamFailure(code, message string) *DomainError {
	return &DomainError{Kind: KindUpstreamFailure, Code: code, Message: message}
}

// KindOf returns the kind of err if it is (or wraps) a DomainError.
func KindOf(err error) (Kind, bool) {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Kind, true
	}
	return "", false
}
