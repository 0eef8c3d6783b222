package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Lookup errors
	ErrMsgItemNotFound      = "item not found"
	ErrMsgWeaponNotFound    = "weapon not found"
	ErrMsgRecipeNotFound    = "recipe not found"
	ErrMsgWorkbenchNotFound = "workbench not found"
	ErrMsgTierNotFound      = "workbench tier not found"
	ErrMsgUpgradeNotFound   = "upgrade not found"
	ErrMsgSyncNotFound      = "sync metadata not found"

	// Ingestion errors
	ErrMsgMalformedRecord   = "malformed record"
	ErrMsgStrictValidation  = "strict validation failed"
	ErrMsgInvalidConfig     = "invalid configuration"
	ErrMsgUnreadableSource  = "unreadable source file"
	ErrMsgInvalidStatTable  = "invalid stat mapping table"
	ErrMsgEmptyRecipeOutput = "recipe has no output"

	// Database/System errors
	ErrMsgTransientStore      = "transient store failure"
	ErrMsgConstraintViolation = "constraint violation"
	ErrMsgStoreUnavailable    = "store unavailable"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Lookup errors
	ErrItemNotFound      = errors.New(ErrMsgItemNotFound)
	ErrWeaponNotFound    = errors.New(ErrMsgWeaponNotFound)
	ErrRecipeNotFound    = errors.New(ErrMsgRecipeNotFound)
	ErrWorkbenchNotFound = errors.New(ErrMsgWorkbenchNotFound)
	ErrTierNotFound      = errors.New(ErrMsgTierNotFound)
	ErrUpgradeNotFound   = errors.New(ErrMsgUpgradeNotFound)
	ErrSyncNotFound      = errors.New(ErrMsgSyncNotFound)

	// Ingestion errors
	ErrMalformedRecord   = errors.New(ErrMsgMalformedRecord)
	ErrStrictValidation  = errors.New(ErrMsgStrictValidation)
	ErrInvalidConfig     = errors.New(ErrMsgInvalidConfig)
	ErrUnreadableSource  = errors.New(ErrMsgUnreadableSource)
	ErrInvalidStatTable  = errors.New(ErrMsgInvalidStatTable)
	ErrEmptyRecipeOutput = errors.New(ErrMsgEmptyRecipeOutput)

	// Database/System errors
	ErrTransient           = errors.New(ErrMsgTransientStore)
	ErrConstraintViolation = errors.New(ErrMsgConstraintViolation)
	ErrStoreUnavailable    = errors.New(ErrMsgStoreUnavailable)
)
