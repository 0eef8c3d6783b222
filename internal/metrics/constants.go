package metrics

// Namespace prefixes every metric of the ingester
const Namespace = "raiddata"

// ============================================================================
// Metric Names
// ============================================================================

const (
	MetricNameRecordsTotal     = "records_total"
	MetricNameFilesTotal       = "files_total"
	MetricNamePhaseDuration    = "phase_duration_seconds"
	MetricNameUnmappedKeys     = "unmapped_keys"
	MetricNameLastRunTimestamp = "last_run_timestamp_seconds"
)

// ============================================================================
// Metric Help Text
// ============================================================================

const (
	HelpTextRecordsTotal     = "Records processed by outcome and entity type"
	HelpTextFilesTotal       = "Source file passes by phase and status"
	HelpTextPhaseDuration    = "Duration of an ingestion phase in seconds"
	HelpTextUnmappedKeys     = "Distinct modifier keys the resolution table could not map, per scope"
	HelpTextLastRunTimestamp = "Unix time the last ingestion run finished"
)

// ============================================================================
// Metric Label Names
// ============================================================================

const (
	LabelEntity  = "entity"
	LabelOutcome = "outcome"
	LabelPhase   = "phase"
	LabelStatus  = "status"
	LabelScope   = "scope"
)

// Outcome label values
const (
	OutcomeInserted  = "inserted"
	OutcomeUpdated   = "updated"
	OutcomeUnchanged = "unchanged"
	OutcomeSkipped   = "skipped"
	OutcomeFailed    = "failed"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// PhaseDurationBuckets ranges from 10ms for an empty phase to 10 minutes for
// a full data set over a slow link
var PhaseDurationBuckets = []float64{.01, .05, .1, .5, 1, 5, 10, 30, 60, 120, 300, 600}

// ============================================================================
// Error Messages
// ============================================================================

const (
	ErrMsgWriteTextfileFailed = "failed to write metrics textfile %s: %w"
)
