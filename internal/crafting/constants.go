package crafting

// ==================== Quantities ====================

// Quantity applied to the subject side of a recipe and to entries whose
// count is not a number
const (
	SubjectQuantity = 1
	DefaultQuantity = 1
)

// ==================== Error Messages ====================

const (
	ErrMsgExistenceCheckFailed = "failed to check items for recipe '%s': %w"
	ErrMsgLoadRecipeFailed     = "failed to load recipe '%s': %w"
	ErrMsgInsertRecipeFailed   = "failed to insert recipe '%s': %w"
	ErrMsgUpdateRecipeFailed   = "failed to update recipe '%s': %w"
	ErrMsgReplaceIOFailed      = "failed to replace io of recipe '%s': %w"
	ErrMsgReplaceLinksFailed   = "failed to replace workbench links of recipe '%s': %w"
	ErrMsgSetPointerFailed     = "failed to point item '%s' at recipe '%s': %w"
	ErrMsgLookupTierFailed     = "failed to look up tier %s/%d: %w"
	ErrMsgRebuildIndexFailed   = "failed to rebuild recycle index: %w"
	ErrFmtNoOutput             = "%w: %s"
)

// ==================== Log Messages ====================

const (
	LogMsgSubjectMissing     = "Skip recipe: subject item not found"
	LogMsgReferenceMissing   = "Skip recipe: referenced items not found"
	LogMsgQuantityOutOfRange = "Skip recipe: quantity out of range"
	LogMsgTierMissing        = "Skip workbench link: tier not found"
	LogMsgTierOutOfRange     = "Skip workbench link: tier out of range"
	LogMsgRecipeInserted     = "Inserted recipe"
	LogMsgRecipeUpdated      = "Updated recipe"
	LogMsgIndexRebuilt       = "Recycle index rebuilt"
)
