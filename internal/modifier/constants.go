package modifier

// Scope identifies which independently curated table a key was resolved
// against
type Scope string

const (
	ScopeWeaponStats  Scope = "weapon_stats"
	ScopeUpgradePerks Scope = "upgrade_perks"
	ScopeModStats     Scope = "mod_stats"
)

// Lookup path labels reported with unmapped keys
const (
	PathRaw       = "raw"
	PathSlug      = "slug"
	PathKnownName = "known_name"
	PathSuffix    = "suffix"
)

// Error messages
const (
	ErrMsgReadMetricsFailed   = "failed to read stat mapping file: %w"
	ErrMsgParseMetricsFailed  = "failed to parse stat mapping file: %w"
	ErrMsgSchemaInvalid       = "stat mapping schema validation failed for %s: %w"
	ErrFmtEntryMissingMetric  = "%w: %s entry %d (%q) has no normalized metric"
	ErrFmtEntryMissingKey     = "%w: %s entry %d has neither key_raw nor key_slug"
	ErrFmtEntryInvalidVariant = "%w: %s entry %d (%q) has invalid %s %q"
)

// Log messages
const (
	LogMsgStatTableLoaded = "Stat mapping tables loaded"
	LogMsgUnmappedKeys    = "Unmapped modifier keys"
)
