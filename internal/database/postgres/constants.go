package postgres

import "time"

// PostgreSQL Error Codes
const (
	PgErrorCodeUniqueViolation      = "23505"
	PgErrorCodeForeignKeyViolation  = "23503"
	PgErrorCodeCheckViolation       = "23514"
	PgErrorCodeNotNullViolation     = "23502"
	PgErrorCodeSerializationFailure = "40001"
	PgErrorCodeDeadlockDetected     = "40P01"
	PgErrorCodeLockNotAvailable     = "55P03"
)

// Transaction retry
const (
	DefaultMaxRetries = 3

	// RetryBaseDelay doubles after every transient failure
	RetryBaseDelay = 50 * time.Millisecond
)

// Error Messages - Transaction Operations
const (
	ErrMsgFailedToBeginTransaction  = "failed to begin transaction"
	ErrMsgFailedToCommitTransaction = "failed to commit transaction"
	ErrMsgRetriesExhausted          = "gave up after %d attempts: %w"
	ErrMsgPing                      = "%w: %v"
)

// Error Messages - Statements
const (
	ErrMsgQueryFailed   = "%s: %w"
	ErrMsgEncodeFailed  = "failed to encode %s: %w"
	ErrMsgDecodeFailed  = "failed to decode %s: %w"
	ErrMsgNotFound      = "%w: %v"
	ErrMsgClassifiedErr = "%w: %w"
)

// Log Messages
const (
	LogMsgRollbackFailed   = "Failed to rollback transaction"
	LogMsgTransientRetry   = "Transient store failure, retrying transaction"
	LogMsgRetriesExhausted = "Transaction retries exhausted"
)
