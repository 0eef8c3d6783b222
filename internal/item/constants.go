package item

// ==================== Field Defaults ====================

const (
	// PlaceholderDescription replaces descriptions scraped from wiki file pages
	PlaceholderDescription = "?"
	// WikiFilePrefix marks a description that is really a wiki file reference
	WikiFilePrefix = "File:"
	// DefaultMaxStack is used when stack_size is missing
	DefaultMaxStack = 1
	// AugmentFieldPrefix prefixes the source field names reported by augment
	// validation
	AugmentFieldPrefix = "augment."
)

// ==================== Error Messages ====================

const (
	ErrMsgLoadExistingFailed = "failed to load item '%s': %w"
	ErrMsgInsertItemFailed   = "failed to insert item '%s': %w"
	ErrMsgUpdateItemFailed   = "failed to update item '%s': %w"
)

// ==================== Format Strings for Error Construction ====================

const (
	ErrFmtAugmentStatsMissing = "augment stats missing for %s: %s"
)

// ==================== Log Messages ====================

const (
	LogMsgInsertedItem    = "Inserted item"
	LogMsgUpdatedItem     = "Updated item"
	LogMsgUnmappedModStat = "Mod stat key has no canonical mapping"
)
