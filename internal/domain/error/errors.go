package error

import (
	"errors"
	"fmt"
)

// Kind classifies every error surfaced by the lifecycle engine.
type Kind string

const (
	KindNotFound           Kind = "not_found"
	KindConflict           Kind = "conflict"
	KindInvalidArgument    Kind = "invalid_argument"
	KindPreconditionFailed Kind = "precondition_failed"
	KindForbidden          Kind = "forbidden"
	KindStorageUnavailable Kind = "storage_unavailable"
	KindInternal           Kind = "internal"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInvalidDuration       = 4001
	CodeInvalidPaymentStatus  = 4002
	CodeInvalidUserID         = 4003
	CodeInvalidAccessMethod   = 4004
	CodeInvalidLockerStatus   = 4005
	CodeInvalidPrice          = 4006
	CodeInvalidRequest        = 4007
	CodeUnauthorized          = 4010
	CodeSessionNotOwned       = 4030
	CodeForbidden             = 4031
	CodeLockerNotFound        = 4040
	CodeSessionNotFound       = 4041
	CodeLockerUnavailable     = 4090
	CodeSessionAlreadyActive  = 4091
	CodeLockerOccupied        = 4092
	CodePaymentAlreadySettled = 4093
	CodeSessionNotActive      = 4120
	CodeSessionStillActive    = 4121
	CodeTooManyRequests       = 4290

	// 5xxx - Server errors
	CodeInternalServer     = 5000
	CodeStorageUnavailable = 5030
)

// Base error types
var (
	// ErrLockerNotFound is returned when the requested locker doesn't exist
	ErrLockerNotFound = errors.New("locker not found")

	// ErrSessionNotFound is returned when the requested session doesn't exist
	ErrSessionNotFound = errors.New("session not found")

	// ErrLockerUnavailable is returned when a session is requested on a locker that is not available
	ErrLockerUnavailable = errors.New("locker is not available")

	// ErrSessionAlreadyActive is returned when the user already holds an active session
	ErrSessionAlreadyActive = errors.New("user already has an active session")

	// ErrLockerOccupied is returned when an administrative status change targets an occupied locker
	ErrLockerOccupied = errors.New("locker is occupied by an active session")

	// ErrPaymentAlreadySettled is returned when a paid session receives another payment outcome
	ErrPaymentAlreadySettled = errors.New("session payment already settled")

	// ErrInvalidDuration is returned when the planned duration is outside (0, 24] hours
	ErrInvalidDuration = errors.New("planned duration must be greater than 0 and at most 24 hours")

	// ErrInvalidPaymentStatus is returned for payment statuses outside none, paid, failed
	ErrInvalidPaymentStatus = errors.New("invalid payment status")

	// ErrInvalidAccessMethod is returned for unlock methods outside remote, rfid, fingerprint
	ErrInvalidAccessMethod = errors.New("invalid access method")

	// ErrInvalidLockerStatus is returned for unknown locker statuses
	ErrInvalidLockerStatus = errors.New("invalid locker status")

	// ErrInvalidPrice is returned when a locker price is negative or malformed
	ErrInvalidPrice = errors.New("price per hour must be a non-negative amount")

	// ErrInvalidUserID is returned when the user ID is not a positive integer
	ErrInvalidUserID = errors.New("user ID must be positive")

	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrSessionNotActive is returned when an operation requires an active session
	ErrSessionNotActive = errors.New("session is not active")

	// ErrSessionStillActive is returned when an operation requires a terminal session
	ErrSessionStillActive = errors.New("session is still active")

	// ErrSessionNotOwned is returned when a user acts on another user's session
	ErrSessionNotOwned = errors.New("session belongs to another user")

	// ErrForbidden is returned when the caller lacks the role an operation requires
	ErrForbidden = errors.New("insufficient permissions")

	// ErrUnauthorized is returned when the caller could not be authenticated
	ErrUnauthorized = errors.New("unauthorized")

	// ErrStorageUnavailable is returned when the backing store can't be reached or fails
	ErrStorageUnavailable = errors.New("storage unavailable")

	// ErrEntityLocked is returned when a lifecycle lock could not be acquired in time
	ErrEntityLocked = errors.New("entity is locked by another operation")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")
)

var kinds = []struct {
	err  error
	kind Kind
}{
	{ErrLockerNotFound, KindNotFound},
	{ErrSessionNotFound, KindNotFound},
	{ErrLockerUnavailable, KindConflict},
	{ErrSessionAlreadyActive, KindConflict},
	{ErrLockerOccupied, KindConflict},
	{ErrPaymentAlreadySettled, KindConflict},
	{ErrInvalidDuration, KindInvalidArgument},
	{ErrInvalidPaymentStatus, KindInvalidArgument},
	{ErrInvalidAccessMethod, KindInvalidArgument},
	{ErrInvalidLockerStatus, KindInvalidArgument},
	{ErrInvalidPrice, KindInvalidArgument},
	{ErrInvalidUserID, KindInvalidArgument},
	{ErrInvalidRequest, KindInvalidArgument},
	{ErrSessionNotActive, KindPreconditionFailed},
	{ErrSessionStillActive, KindPreconditionFailed},
	{ErrSessionNotOwned, KindForbidden},
	{ErrForbidden, KindForbidden},
	{ErrStorageUnavailable, KindStorageUnavailable},
	{ErrEntityLocked, KindStorageUnavailable},
}

// KindOf returns the kind of a (possibly wrapped) error.
func KindOf(err error) Kind {
	for _, k := range kinds {
		if errors.Is(err, k.err) {
			return k.kind
		}
	}
	return KindInternal
}

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInvalidDuration):
		return CodeInvalidDuration
	case errors.Is(err, ErrInvalidPaymentStatus):
		return CodeInvalidPaymentStatus
	case errors.Is(err, ErrInvalidUserID):
		return CodeInvalidUserID
	case errors.Is(err, ErrInvalidAccessMethod):
		return CodeInvalidAccessMethod
	case errors.Is(err, ErrInvalidLockerStatus):
		return CodeInvalidLockerStatus
	case errors.Is(err, ErrInvalidPrice):
		return CodeInvalidPrice
	case errors.Is(err, ErrInvalidRequest):
		return CodeInvalidRequest
	case errors.Is(err, ErrUnauthorized):
		return CodeUnauthorized
	case errors.Is(err, ErrSessionNotOwned):
		return CodeSessionNotOwned
	case errors.Is(err, ErrForbidden):
		return CodeForbidden
	case errors.Is(err, ErrLockerNotFound):
		return CodeLockerNotFound
	case errors.Is(err, ErrSessionNotFound):
		return CodeSessionNotFound
	case errors.Is(err, ErrLockerUnavailable):
		return CodeLockerUnavailable
	case errors.Is(err, ErrSessionAlreadyActive):
		return CodeSessionAlreadyActive
	case errors.Is(err, ErrLockerOccupied):
		return CodeLockerOccupied
	case errors.Is(err, ErrPaymentAlreadySettled):
		return CodePaymentAlreadySettled
	case errors.Is(err, ErrSessionNotActive):
		return CodeSessionNotActive
	case errors.Is(err, ErrSessionStillActive):
		return CodeSessionStillActive
	case errors.Is(err, ErrStorageUnavailable), errors.Is(err, ErrEntityLocked):
		return CodeStorageUnavailable
	default:
		return CodeInternalServer
	}
}

// LifecycleError carries the identifiers involved in a failed lifecycle operation
type LifecycleError struct {
	Op        string
	SessionID uint64
	LockerID  uint64
	UserID    uint64
	Err       error
}

// Error implements the error interface for LifecycleError
func (e *LifecycleError) Error() string {
	return fmt.Sprintf("%s failed (session: %d, locker: %d, user: %d): %v",
		e.Op, e.SessionID, e.LockerID, e.UserID, e.Err)
}

// Unwrap returns the underlying error
func (e *LifecycleError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *LifecycleError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "lifecycle_error",
		"operation":  e.Op,
		"session_id": e.SessionID,
		"locker_id":  e.LockerID,
		"user_id":    e.UserID,
		"error":      e.Err.Error(),
		"error_kind": string(KindOf(e.Err)),
		"error_code": ErrorCode(e.Err),
	}
}

// NewLifecycleError wraps err with the operation name and identifiers
func NewLifecycleError(op string, sessionID, lockerID, userID uint64, err error) error {
	return &LifecycleError{
		Op:        op,
		SessionID: sessionID,
		LockerID:  lockerID,
		UserID:    userID,
		Err:       err,
	}
}

// StorageError wraps a driver failure while keeping the storage kind
type StorageError struct {
	Operation string
	Cause     error
}

// Error implements the error interface
func (e *StorageError) Error() string {
	return fmt.Sprintf("storage failure during %s: %v", e.Operation, e.Cause)
}

// Is reports ErrStorageUnavailable so callers can match the kind
func (e *StorageError) Is(target error) bool {
	return target == ErrStorageUnavailable
}

// Unwrap returns the driver error
func (e *StorageError) Unwrap() error {
	return e.Cause
}

// LogFields returns a map of fields for structured logging
func (e *StorageError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "storage_error",
		"operation":  e.Operation,
		"error":      fmt.Sprint(e.Cause),
		"error_code": CodeStorageUnavailable,
	}
}

// NewStorageError creates a storage error for the given operation
func NewStorageError(operation string, cause error) error {
	return &StorageError{Operation: operation, Cause: cause}
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return KindOf(err) == KindNotFound
}

// IsConflictError checks if the error is a state conflict
func IsConflictError(err error) bool {
	return KindOf(err) == KindConflict
}

// IsStorageError checks if the error came from an unavailable backing store
func IsStorageError(err error) bool {
	return KindOf(err) == KindStorageUnavailable
}
