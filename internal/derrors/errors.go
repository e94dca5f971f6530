// Package derrors provides coded error types for rlshell.
// Each error carries a stable code for programmatic handling and
// the piece of context (path, command, field, resource) it relates to.
package derrors

import (
	"errors"
	"fmt"
)

// Error codes
const (
	CodeConfiguration = "CONFIG_ERROR"
	CodeExecution     = "EXEC_ERROR"
	CodeValidation    = "VALIDATION_ERROR"
	CodeNotFound      = "NOT_FOUND"
)

// CodedError is implemented by every rlshell error
type CodedError interface {
	error
	// Code returns a unique error code for programmatic error handling
	Code() string
}

type baseError struct {
	code    string
	message string
	cause   error
}

func (e *baseError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	return e.message
}

func (e *baseError) Code() string {
	return e.code
}

func (e *baseError) Unwrap() error {
	return e.cause
}

// ConfigurationError reports an unusable configuration, either a config file
// or a programmatic one such as a completer built without matchers.
type ConfigurationError struct {
	baseError
	Path string
}

// NewConfigurationError creates a new configuration error
func NewConfigurationError(path string, message string, cause error) *ConfigurationError {
	return &ConfigurationError{
		baseError: baseError{code: CodeConfiguration, message: message, cause: cause},
		Path:      path,
	}
}

// ExecutionError reports a failed external command, e.g. the package lister
type ExecutionError struct {
	baseError
	Command string
}

// NewExecutionError creates a new execution error
func NewExecutionError(command string, message string, cause error) *ExecutionError {
	return &ExecutionError{
		baseError: baseError{code: CodeExecution, message: message, cause: cause},
		Command:   command,
	}
}

// ValidationError represents errors during validation
type ValidationError struct {
	baseError
	Field string
}

// NewValidationError creates a new validation error
func NewValidationError(field string, message string, cause error) *ValidationError {
	return &ValidationError{
		baseError: baseError{code: CodeValidation, message: message, cause: cause},
		Field:     field,
	}
}

// NotFoundError represents a missing resource such as an unknown module
type NotFoundError struct {
	baseError
	Resource string
}

// NewNotFoundError creates a new not found error
func NewNotFoundError(resource string, message string) *NotFoundError {
	return &NotFoundError{
		baseError: baseError{code: CodeNotFound, message: message},
		Resource:  resource,
	}
}

// HasCode reports whether any error in err's chain carries the given code
func HasCode(err error, code string) bool {
	for ; err != nil; err = errors.Unwrap(err) {
		if coded, ok := err.(CodedError); ok && coded.Code() == code {
			return true
		}
	}
	return false
}

// IsNotFound reports whether err is (or wraps) a NotFoundError
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
