package source

// Default file names of the scraped data set
const (
	FileGeneralItems  = "arc_raiders_items_enriched.json"
	FileAugmentItems  = "augment_items_enriched.json"
	FileGrenadeItems  = "grenade_items_enriched.json"
	FileHealingItems  = "healing_items_enriched.json"
	FileQuickUseItems = "quick_use_items_enriched.json"
	FileTrapItems     = "trap_items_enriched.json"
	FileShields       = "shields.json"
	FileModItems      = "modification_items_enriched.json"
	FileWeaponItems   = "weapon_items_enriched.json"
	FileWorkbenches   = "workbenches.json"
	FileStatMetrics   = "stat_mapping_metrics.json"
)

// ManifestVersion is written into generated manifests
const ManifestVersion = "1.0"

// Error messages
const (
	ErrMsgReadFileFailed      = "failed to read source file %s: %w"
	ErrMsgParseFileFailed     = "failed to parse source file %s: %w"
	ErrMsgReadManifestFailed  = "failed to read manifest: %w"
	ErrMsgParseManifestFailed = "failed to parse manifest: %w"
	ErrMsgManifestSchema      = "manifest schema validation failed for %s: %w"
	ErrFmtManifestBadKind     = "%w: manifest entry %d (%s) has unknown kind %q"
	ErrFmtManifestNoFiles     = "%w: manifest lists no files"
	ErrFmtDecodeRecord        = "%w: record %d: %v"
)
