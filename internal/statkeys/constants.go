package statkeys

// Output files written next to each other under the output directory
const (
	SummaryFile  = "stat_keys_summary.json"
	ScaffoldFile = "stats_mapping_scaffold.json"
	DefaultOut   = "_generated"

	// ModsSection is the stat mapping file key that sorting rewrites
	ModsSection = "mods"
)

const (
	// MaxSamples caps the example values and owner ids kept per key
	MaxSamples = 5

	PercentSuffix = "_pct"
	PlusSuffix    = "_plus"

	// KindUnknown marks an upgrade key whose suffix says nothing about its
	// kind or unit. The scaffold keeps it for a curator to fill in.
	KindUnknown = "unknown"
)

// Error messages
const (
	ErrMsgReadSourceFailed = "failed to read %s: %w"
	ErrMsgWriteFailed      = "failed to write %s: %w"
	ErrMsgEncodeFailed     = "failed to encode %s: %w"
)

// Log messages
const (
	LogMsgRecordSkipped = "Skipping undecodable record"
	LogMsgWrote         = "Wrote stat key file"
)
