package blurwindow

import "errors"

// Code is the signed integer result vocabulary of the native engine.
// The values are part of the wire contract and must not be renumbered.
type Code int32

const (
	CodeOK               Code = 0
	CodeNotInitialized   Code = -1
	CodeInvalidHandle    Code = -2
	CodeInvalidParameter Code = -3
	CodeBackendFailed    Code = -4
	CodeCaptureFailed    Code = -5
	CodeUnknown          Code = -99
)

var (
	// ErrInitFailed implies blur_init returned a null system handle.
	ErrInitFailed = errors.New("failed to initialize blur system")

	// ErrCreateFailed implies blur_create_window returned a null window handle.
	ErrCreateFailed = errors.New("failed to create blur window")

	// ErrNotInitialized implies an operation was attempted against a closed or
	// never-initialized system.
	ErrNotInitialized = errors.New("blur system not initialized")

	// ErrInvalidHandle implies an operation was attempted against a destroyed
	// or invalid window.
	ErrInvalidHandle = errors.New("window handle is invalid or destroyed")

	// ErrInvalidParameter implies a value was rejected, either locally or by
	// the native layer.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrBackendFailed implies the native rendering backend reported a failure.
	ErrBackendFailed = errors.New("render backend operation failed")

	// ErrCaptureFailed implies the desktop capture subsystem reported a failure.
	ErrCaptureFailed = errors.New("desktop capture failed")

	// ErrUnknown implies the native layer returned a code outside the known
	// vocabulary.
	ErrUnknown = errors.New("unknown engine error")
)

// Err maps a native result code to its typed error. CodeOK maps to nil;
// unrecognized codes map to ErrUnknown.
func (c Code) Err() error {
	switch c {
	case CodeOK:
		return nil
	case CodeNotInitialized:
		return ErrNotInitialized
	case CodeInvalidHandle:
		return ErrInvalidHandle
	case CodeInvalidParameter:
		return ErrInvalidParameter
	case CodeBackendFailed:
		return ErrBackendFailed
	case CodeCaptureFailed:
		return ErrCaptureFailed
	default:
		return ErrUnknown
	}
}

// String returns a short name for the code, for logs.
func (c Code) String() string {
	switch c {
	case CodeOK:
		return "ok"
	case CodeNotInitialized:
		return "not_initialized"
	case CodeInvalidHandle:
		return "invalid_handle"
	case CodeInvalidParameter:
		return "invalid_parameter"
	case CodeBackendFailed:
		return "backend_failed"
	case CodeCaptureFailed:
		return "capture_failed"
	default:
		return "unknown"
	}
}
