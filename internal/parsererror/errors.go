// Package parsererror defines the typed failures a statement file can produce.
// File-level failures are returned as these types, never panicked across the
// parser boundary; per-row anomalies are handled by exclusion and do not
// appear here.
package parsererror

import (
	"errors"
	"fmt"
	"strings"
)

// Kind is a stable machine-readable failure code, carried on ParseOutcome so
// callers can react without string-matching error messages.
type Kind string

const (
	KindHeaderNotFound            Kind = "HEADER_NOT_FOUND"
	KindNoData                    Kind = "NO_DATA"
	KindUnrecognizedFormat        Kind = "UNRECOGNIZED_FORMAT"
	KindPasswordRequired          Kind = "PASSWORD_REQUIRED"
	KindWrongPassword             Kind = "WRONG_PASSWORD"
	KindClassificationUnavailable Kind = "CLASSIFICATION_UNAVAILABLE"
)

// HeaderNotFoundError indicates the source's required header keywords were not
// found within the scan window.
type HeaderNotFoundError struct {
	FilePath string
	Parser   string
	Keywords []string
	Window   int
}

func (e *HeaderNotFoundError) Error() string {
	return fmt.Sprintf("%s: header row with keywords [%s] not found in first %d rows of '%s'",
		e.Parser, strings.Join(e.Keywords, ", "), e.Window, e.FilePath)
}

// NoDataError indicates the header was located but no data row survived the
// exclusion rules.
type NoDataError struct {
	FilePath string
	Parser   string
}

func (e *NoDataError) Error() string {
	return fmt.Sprintf("%s: no transaction rows found in '%s'", e.Parser, e.FilePath)
}

// UnrecognizedFormatError indicates no registered parser accepted the file.
type UnrecognizedFormatError struct {
	FilePath string
}

func (e *UnrecognizedFormatError) Error() string {
	return fmt.Sprintf("no registered parser recognizes '%s'", e.FilePath)
}

// PasswordRequiredError indicates the workbook is encrypted and no password
// was supplied.
type PasswordRequiredError struct {
	FilePath string
}

func (e *PasswordRequiredError) Error() string {
	return fmt.Sprintf("workbook '%s' is encrypted and requires a password", e.FilePath)
}

// WrongPasswordError indicates decryption was attempted with an incorrect
// password.
type WrongPasswordError struct {
	FilePath string
	Err      error
}

func (e *WrongPasswordError) Error() string {
	return fmt.Sprintf("wrong password for workbook '%s': %v", e.FilePath, e.Err)
}

func (e *WrongPasswordError) Unwrap() error {
	return e.Err
}

// ClassificationUnavailableError indicates the external classification
// collaborator failed; the whole-file classification step aborts.
type ClassificationUnavailableError struct {
	Kind string
	Err  error
}

func (e *ClassificationUnavailableError) Error() string {
	return fmt.Sprintf("classification unavailable for %s partition: %v", e.Kind, e.Err)
}

func (e *ClassificationUnavailableError) Unwrap() error {
	return e.Err
}

// KindOf maps an error to its stable Kind, or "" for errors that have no
// assigned code.
func KindOf(err error) Kind {
	var headerNotFound *HeaderNotFoundError
	var noData *NoDataError
	var unrecognized *UnrecognizedFormatError
	var passwordRequired *PasswordRequiredError
	var wrongPassword *WrongPasswordError
	var classification *ClassificationUnavailableError

	switch {
	case errors.As(err, &headerNotFound):
		return KindHeaderNotFound
	case errors.As(err, &noData):
		return KindNoData
	case errors.As(err, &unrecognized):
		return KindUnrecognizedFormat
	case errors.As(err, &passwordRequired):
		return KindPasswordRequired
	case errors.As(err, &wrongPassword):
		return KindWrongPassword
	case errors.As(err, &classification):
		return KindClassificationUnavailable
	default:
		return ""
	}
}
