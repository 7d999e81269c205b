package errors

import (
	"errors"
)

// As reports whether err holds an *Error, storing it in target
func As(err error, target **Error) bool {
	return errors.As(err, target)
}

// Is is errors.Is; *Error targets match by code
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// GetCode returns the code of err. Nil is OK; plain errors are classified by cause.
func GetCode(err error) Code {
	if err == nil {
		return CodeOK
	}

	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return codeForCause(err)
}

// HasCode reports whether err carries code
func HasCode(err error, code Code) bool {
	return err != nil && GetCode(err) == code
}

// GetMeta returns the metadata of err, or nil
func GetMeta(err error) map[string]any {
	var e *Error
	if errors.As(err, &e) {
		return e.Meta
	}
	return nil
}

// GetMessage returns the client-facing message without the cause chain
func GetMessage(err error) string {
	if err == nil {
		return ""
	}

	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

func IsNotFound(err error) bool           { return HasCode(err, CodeNotFound) }
func IsInvalidArgument(err error) bool    { return HasCode(err, CodeInvalidArgument) }
func IsAlreadyExists(err error) bool      { return HasCode(err, CodeAlreadyExists) }
func IsPermissionDenied(err error) bool   { return HasCode(err, CodePermissionDenied) }
func IsFailedPrecondition(err error) bool { return HasCode(err, CodeFailedPrecondition) }
func IsInternal(err error) bool           { return HasCode(err, CodeInternal) }
