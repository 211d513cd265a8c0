// Package errors provides standardized error handling for camroll.
// It defines the error kinds the organizer distinguishes between and helper
// functions for consistent creation, wrapping and checking.
package errors

import (
	"errors"
	"fmt"
)

// Standard errors package functions re-exported for convenience.
var (
	// Unwrap unwraps an error to access the underlying error
	Unwrap = errors.Unwrap
	// Is reports whether any error in err's chain matches target
	Is = errors.Is
	// As finds the first error in err's chain that matches target
	As = errors.As
)

// ErrorKind represents the kind of error
type ErrorKind int

// Error kinds
const (
	Unknown ErrorKind = iota
	// Metadata error kinds: per-file, the scan continues without the file.
	MetadataMissing
	MetadataUnparsable
	// UnrecognizedExtension marks a file outside every configured role set.
	UnrecognizedExtension
	// PlacementConflict marks a transfer whose destination already exists.
	PlacementConflict
	// DirectoryCreationFailure aborts the whole run.
	DirectoryCreationFailure
	// TransferFailure is per-file; the run continues.
	TransferFailure
	// Config error kinds
	InvalidConfig
	// FileNotFound covers missing source paths.
	FileNotFound
)

// OrganizeError is the base error type for all camroll errors.
type OrganizeError struct {
	msg  string
	err  error
	kind ErrorKind
}

// Error returns the error message
func (e *OrganizeError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.err)
	}
	return e.msg
}

// Unwrap returns the wrapped error
func (e *OrganizeError) Unwrap() error {
	return e.err
}

// Kind returns the kind of error
func (e *OrganizeError) Kind() ErrorKind {
	return e.kind
}

// FileError represents errors tied to a specific file or directory path.
type FileError struct {
	OrganizeError
	path string
}

// NewFileError creates a new file error
func NewFileError(msg string, path string, kind ErrorKind, err error) *FileError {
	return &FileError{
		OrganizeError: OrganizeError{
			msg:  msg,
			err:  err,
			kind: kind,
		},
		path: path,
	}
}

// Error returns the file error message
func (e *FileError) Error() string {
	if e.path != "" {
		if e.err != nil {
			return fmt.Sprintf("%s: %s: %v", e.msg, e.path, e.err)
		}
		return fmt.Sprintf("%s: %s", e.msg, e.path)
	}
	return e.OrganizeError.Error()
}

// Path returns the file path associated with the error
func (e *FileError) Path() string {
	return e.path
}

// ConfigError represents errors related to configuration
type ConfigError struct {
	OrganizeError
	param string
}

// NewConfigError creates a new configuration error
func NewConfigError(msg string, param string, err error) *ConfigError {
	return &ConfigError{
		OrganizeError: OrganizeError{
			msg:  msg,
			err:  err,
			kind: InvalidConfig,
		},
		param: param,
	}
}

// Error returns the config error message
func (e *ConfigError) Error() string {
	if e.param != "" {
		if e.err != nil {
			return fmt.Sprintf("%s: %s: %v", e.msg, e.param, e.err)
		}
		return fmt.Sprintf("%s: %s", e.msg, e.param)
	}
	return e.OrganizeError.Error()
}

// Param returns the configuration parameter associated with the error
func (e *ConfigError) Param() string {
	return e.param
}

// New creates a new error with a message
func New(msg string) error {
	return &OrganizeError{
		msg:  msg,
		kind: Unknown,
	}
}

// Newf creates a new error with a formatted message
func Newf(format string, args ...any) error {
	return &OrganizeError{
		msg:  fmt.Sprintf(format, args...),
		kind: Unknown,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return &OrganizeError{
		msg:  msg,
		err:  err,
		kind: Unknown,
	}
}

// Wrapf wraps an existing error with additional formatted context
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return &OrganizeError{
		msg:  fmt.Sprintf(format, args...),
		err:  err,
		kind: Unknown,
	}
}

// kindOf extracts the kind from any error in the chain.
func kindOf(err error) ErrorKind {
	var fileErr *FileError
	if errors.As(err, &fileErr) {
		return fileErr.Kind()
	}
	var cfgErr *ConfigError
	if errors.As(err, &cfgErr) {
		return cfgErr.Kind()
	}
	var orgErr *OrganizeError
	if errors.As(err, &orgErr) {
		return orgErr.Kind()
	}
	return Unknown
}

// IsMetadataMissing checks for an absent capture-date field.
func IsMetadataMissing(err error) bool {
	return kindOf(err) == MetadataMissing
}

// IsMetadataUnparsable checks for a capture-date field in an unexpected format.
func IsMetadataUnparsable(err error) bool {
	return kindOf(err) == MetadataUnparsable
}

// IsUnrecognizedExtension checks for a file outside every role set.
func IsUnrecognizedExtension(err error) bool {
	return kindOf(err) == UnrecognizedExtension
}

// IsPlacementConflict checks for a skipped would-overwrite transfer.
func IsPlacementConflict(err error) bool {
	return kindOf(err) == PlacementConflict
}

// IsDirectoryCreationFailure checks for the fatal mkdir case.
func IsDirectoryCreationFailure(err error) bool {
	return kindOf(err) == DirectoryCreationFailure
}

// IsTransferFailure checks for a non-fatal per-file transfer error.
func IsTransferFailure(err error) bool {
	return kindOf(err) == TransferFailure
}

// IsInvalidConfig checks if the error is an invalid configuration error
func IsInvalidConfig(err error) bool {
	return kindOf(err) == InvalidConfig
}

// IsFileNotFound checks if the error is a missing-source error
func IsFileNotFound(err error) bool {
	return kindOf(err) == FileNotFound
}
