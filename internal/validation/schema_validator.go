// Package validation checks the hand-curated JSON inputs of a run, the stat
// mapping file and the manifest, against JSON schemas before they are
// decoded.
package validation

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//go:embed schemas/*.json
var embeddedSchemas embed.FS

// SchemaValidator validates JSON data against JSON schemas
type SchemaValidator interface {
	ValidateFile(dataPath, schemaPath string) error
	ValidateBytes(data []byte, schemaPath string) error
}

type validator struct {
	mu       sync.Mutex
	compiler *jsonschema.Compiler
	schemas  map[string]*jsonschema.Schema
	printer  *message.Printer
}

// NewSchemaValidator returns a validator that compiles each schema once
func NewSchemaValidator() SchemaValidator {
	return &validator{
		compiler: jsonschema.NewCompiler(),
		schemas:  make(map[string]*jsonschema.Schema),
		printer:  message.NewPrinter(language.English),
	}
}

func (v *validator) ValidateFile(dataPath, schemaPath string) error {
	data, err := os.ReadFile(dataPath)
	if err != nil {
		return fmt.Errorf(ErrMsgReadDataFailed, dataPath, err)
	}
	return v.ValidateBytes(data, schemaPath)
}

// ValidateBytes validates data against the schema at schemaPath. A bare
// schema name refers to an embedded schema. Every violation is listed in
// the returned error.
func (v *validator) ValidateBytes(data []byte, schemaPath string) error {
	schema, err := v.schema(schemaPath)
	if err != nil {
		return fmt.Errorf(ErrMsgLoadSchemaFailed, schemaPath, err)
	}

	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf(ErrMsgParseDataFailed, err)
	}

	if err := schema.Validate(doc); err != nil {
		return v.describe(err)
	}
	return nil
}

func (v *validator) schema(schemaPath string) (*jsonschema.Schema, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if s, ok := v.schemas[schemaPath]; ok {
		return s, nil
	}

	raw, err := readSchema(schemaPath)
	if err != nil {
		return nil, err
	}
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf(ErrMsgParseSchemaFailed, err)
	}
	if err := v.compiler.AddResource(schemaPath, doc); err != nil {
		return nil, fmt.Errorf(ErrMsgAddSchemaFailed, err)
	}
	s, err := v.compiler.Compile(schemaPath)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgCompileSchemaFailed, err)
	}

	v.schemas[schemaPath] = s
	return s, nil
}

// describe flattens a validation error tree into one line per violation
func (v *validator) describe(err error) error {
	var verr *jsonschema.ValidationError
	if !errors.As(err, &verr) {
		return err
	}
	var lines []string
	v.collect(verr, &lines)
	return fmt.Errorf(ErrMsgValidationFailed, strings.Join(lines, "\n"))
}

// collect walks the causes depth first. Only leaves carry a concrete
// violation; inner nodes just group them.
func (v *validator) collect(err *jsonschema.ValidationError, lines *[]string) {
	if len(err.Causes) > 0 {
		for _, cause := range err.Causes {
			v.collect(cause, lines)
		}
		return
	}

	location := rootLocation
	if len(err.InstanceLocation) > 0 {
		location = "/" + strings.Join(err.InstanceLocation, "/")
	}
	keyword, detail := "", ""
	if err.ErrorKind != nil {
		keyword = strings.Join(err.ErrorKind.KeywordPath(), ".")
		detail = err.ErrorKind.LocalizedString(v.printer)
	}
	*lines = append(*lines, fmt.Sprintf(ErrMsgViolation, location, keyword, detail))
}

// readSchema serves bare names from the embedded schemas and reads anything
// else, or a bare name with no embedded match, from disk
func readSchema(schemaPath string) ([]byte, error) {
	if !strings.ContainsAny(schemaPath, `/\`) {
		data, err := embeddedSchemas.ReadFile(path.Join(EmbeddedSchemaDir, schemaPath))
		if err == nil {
			return data, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf(ErrMsgReadSchemaFailed, err)
		}
	}

	data, err := os.ReadFile(schemaPath)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadSchemaFailed, err)
	}
	return data, nil
}
