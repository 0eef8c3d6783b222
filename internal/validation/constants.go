package validation

// Schemas compiled into the binary
const (
	StatMappingSchema = "stat_mapping.schema.json"
	ManifestSchema    = "manifest.schema.json"
)

// EmbeddedSchemaDir is the directory of the schemas compiled into the binary.
// A schema name without a directory is looked up there before the disk.
const EmbeddedSchemaDir = "schemas"

const rootLocation = "(root)"

// Error messages
const (
	ErrMsgReadDataFailed      = "failed to read data file %s: %w"
	ErrMsgLoadSchemaFailed    = "failed to load schema %s: %w"
	ErrMsgParseDataFailed     = "failed to parse JSON data: %w"
	ErrMsgReadSchemaFailed    = "failed to read schema file: %w"
	ErrMsgParseSchemaFailed   = "failed to parse schema JSON: %w"
	ErrMsgAddSchemaFailed     = "failed to add schema resource: %w"
	ErrMsgCompileSchemaFailed = "failed to compile schema: %w"
	ErrMsgValidationFailed    = "schema validation failed:\n%s"
	ErrMsgViolation           = "  - at %s: %s: %s"
)
