package storage

import "errors"

// Common client storage errors
var (
	// ErrAuthNotFound indicates that no authentication data exists
	ErrAuthNotFound = errors.New("authentication data not found")

	// ErrStorageClosed indicates that storage is closed
	ErrStorageClosed = errors.New("storage is closed")

	// ErrSerialization indicates that a value could not be encoded for storage
	ErrSerialization = errors.New("value serialization failed")

	// ErrQuotaExceeded indicates that the encoded value exceeds the storage quota
	ErrQuotaExceeded = errors.New("storage quota exceeded")

	// ErrNotAuthenticated indicates a remote write without a resolved user identity
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrUnknownKind indicates an adapter kind the factory cannot build
	ErrUnknownKind = errors.New("unknown storage adapter kind")
)
