// Package errors provides the error taxonomy for the gateway.
//
// Two tiers: ValidationError covers local failures raised before any
// broker call, GatewayError wraps every failure surfaced by the broker
// client at an operation boundary.
package errors

import (
	"errors"
	"fmt"
)

// Standard sentinel errors
var (
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrConfigInvalid    = errors.New("invalid configuration")
)

// ValidationKind classifies the rule a request value violated.
type ValidationKind string

const (
	KindMissingRequiredField    ValidationKind = "missing-required-field"
	KindInvalidEnumValue        ValidationKind = "invalid-enum-value"
	KindConditionalFieldMissing ValidationKind = "conditional-field-missing"
	KindLengthMismatch          ValidationKind = "length-mismatch"
	KindOutOfRange              ValidationKind = "out-of-range"
)

// ValidationError represents a request validation failure. It is raised
// synchronously during request construction; no broker call happens once
// one is returned.
type ValidationError struct {
	Kind    ValidationKind
	Field   string
	Value   interface{}
	Message string
}

func (e *ValidationError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("validation error [%s] %s (%v): %s", e.Kind, e.Field, e.Value, e.Message)
	}
	return fmt.Sprintf("validation error [%s] %s: %s", e.Kind, e.Field, e.Message)
}

// NewValidationError creates a new ValidationError.
func NewValidationError(kind ValidationKind, field string, value interface{}, message string) *ValidationError {
	return &ValidationError{
		Kind:    kind,
		Field:   field,
		Value:   value,
		Message: message,
	}
}

// GatewayError wraps a failure surfaced by the broker client. Op names
// the gateway operation, Params carries the rejected parameter set for
// order placement and modification calls.
type GatewayError struct {
	Op      string
	Message string
	Params  interface{}
	Err     error
}

func (e *GatewayError) Error() string {
	msg := e.Message
	if e.Params != nil {
		msg = fmt.Sprintf("%s %+v", msg, e.Params)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *GatewayError) Unwrap() error {
	return e.Err
}

// NewGatewayError creates a new GatewayError.
func NewGatewayError(op, message string, params interface{}, err error) *GatewayError {
	return &GatewayError{
		Op:      op,
		Message: message,
		Params:  params,
		Err:     err,
	}
}
