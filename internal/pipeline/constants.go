package pipeline

// Phase names one pass over the source files
type Phase string

const (
	PhaseItems        Phase = "items"
	PhaseWeapons      Phase = "weapons"
	PhaseWorkbenches  Phase = "workbenches"
	PhaseRecipes      Phase = "recipes"
	PhaseUpgrades     Phase = "upgrades"
	PhaseRecycleIndex Phase = "recycle_index"
)

// Phases lists the record phases in run order
var Phases = []Phase{PhaseItems, PhaseWeapons, PhaseWorkbenches, PhaseRecipes, PhaseUpgrades}

// FileStatus is what a phase did with one source file
type FileStatus string

const (
	FileDone      FileStatus = "done"
	FileUnchanged FileStatus = "unchanged"
	FileFailed    FileStatus = "failed"
	FileCancelled FileStatus = "cancelled"
)

// SyncNameFormat keys sync metadata by phase and manifest file name
const SyncNameFormat = "%s:%s"

// ============================================================================
// Error Messages
// ============================================================================

const (
	ErrMsgStoreUnreachable = "%w: %v"
	ErrMsgNoTables         = "%w: stat mapping tables are required"
	ErrMsgNoManifest       = "%w: manifest is required"
	ErrMsgLoadSyncFailed   = "failed to load sync metadata %s: %w"
	ErrMsgUpdateSyncFailed = "failed to update sync metadata %s: %w"
	ErrMsgCompatFailed     = "failed to apply compatible mods: %w"
)

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgRunStarted       = "Ingestion run started"
	LogMsgRunFinished      = "Ingestion run finished"
	LogMsgRunCancelled     = "Ingestion cancelled, no further files will be started"
	LogMsgPhaseStarted     = "Phase started"
	LogMsgPhaseFinished    = "Phase finished"
	LogMsgFileFailed       = "Source file skipped"
	LogMsgFileUnchanged    = "Source file unchanged since last sync, skipping"
	LogMsgSyncCheckFailed  = "Could not check sync metadata, ingesting file"
	LogMsgSyncUpdateFailed = "Could not record sync metadata"
	LogMsgRecordMalformed  = "Record without id or name skipped"
	LogMsgRecordUndecoded  = "Record could not be decoded, skipped"
	LogMsgRecordFailed     = "Record failed"
	LogMsgDuplicateID      = "Id appears in more than one file, last write wins"
	LogMsgCompatFailed     = "Applying compatible mods failed"
	LogMsgIndexFailed      = "Recycle index rebuild failed"
	LogMsgIndexRebuilt     = "Recycle index ready"
)
