package workbench

// ==================== Field Defaults ====================

const (
	// DefaultIcon is used when a workbench record carries no icon
	DefaultIcon = "FileQuestion"
	// TierNameFormat names a tier that has no entry in tier_names
	TierNameFormat = "Tier %d"
)

// ==================== Error Messages ====================

const (
	ErrMsgLoadWorkbenchFailed   = "failed to load workbench '%s': %w"
	ErrMsgInsertWorkbenchFailed = "failed to insert workbench '%s': %w"
	ErrMsgUpdateWorkbenchFailed = "failed to update workbench '%s': %w"
	ErrMsgUpsertTierFailed      = "failed to upsert tier %s/%d: %w"
	ErrMsgReplaceReqsFailed     = "failed to replace requirements of tier %s/%d: %w"
	ErrMsgCheckItemsFailed      = "failed to check requirement items of %s/%d: %w"
)

// ==================== Log Messages ====================

const (
	LogMsgRequirementDropped = "Skip tier requirement: item not found"
	LogMsgCountOutOfRange    = "Skip tier requirement: count out of range"
	LogMsgWorkbenchUpserted  = "Workbench processed"
)
