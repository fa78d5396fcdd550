package task

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schema.json
var defaultSchema string

// ValidationError represents a validation error with context.
type ValidationError struct {
	Path string // JSON path to the error location
	Err  error  // Underlying error
}

func (e *ValidationError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s", e.Path, e.Err)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// ValidationOptions controls validation behavior.
type ValidationOptions struct {
	// SchemaPath overrides the embedded task store schema.
	SchemaPath string
}

// ValidationResult contains validation results.
type ValidationResult struct {
	Valid      bool
	Errors     []error
	Warnings   []string
	UsedSchema bool // true if JSON Schema validation was performed
}

// Validate checks tasks against the store schema, falling back to
// minimal structural checks if the schema cannot be used. Duplicate IDs
// are reported in either mode.
func Validate(tasks []Task, opts ValidationOptions) *ValidationResult {
	result := &ValidationResult{
		Valid:    true,
		Errors:   make([]error, 0),
		Warnings: make([]string, 0),
	}

	schemaResult := validateWithSchema(tasks, opts.SchemaPath)
	result.UsedSchema = schemaResult.UsedSchema
	result.Warnings = append(result.Warnings, schemaResult.Warnings...)
	if schemaResult.UsedSchema {
		if !schemaResult.Valid {
			result.Valid = false
			result.Errors = append(result.Errors, schemaResult.Errors...)
		}
	} else {
		result.Warnings = append(result.Warnings, "JSON Schema validation not available, using minimal checks")
		validateMinimal(tasks, result)
	}

	checkDuplicateIDs(tasks, result)
	return result
}

// ValidateFile loads the store at path and validates it. Load
// recoveries are surfaced as validation errors so a corrupted file
// fails the check even though Load itself would default it.
func ValidateFile(path string, opts ValidationOptions) (*ValidationResult, error) {
	loaded, err := Load(path)
	if err != nil {
		return nil, err
	}

	result := Validate(loaded.Tasks, opts)
	for _, issue := range loaded.Issues {
		result.Valid = false
		result.Errors = append(result.Errors, &ValidationError{Err: fmt.Errorf("%s", issue)})
	}
	return result, nil
}

// validateMinimal performs structural checks without JSON Schema.
func validateMinimal(tasks []Task, result *ValidationResult) {
	for i, t := range tasks {
		path := fmt.Sprintf("[%d]", i)
		if err := validateTaskMinimal(&t, path); err != nil {
			result.Valid = false
			result.Errors = append(result.Errors, err)
		}
	}
}

func validateTaskMinimal(t *Task, path string) *ValidationError {
	if t.ID < 1 {
		return &ValidationError{
			Path: path + ".id",
			Err:  fmt.Errorf("must be a positive integer, got %d", t.ID),
		}
	}

	if t.Title == "" {
		return &ValidationError{
			Path: path + ".title",
			Err:  fmt.Errorf("missing required field"),
		}
	}

	switch t.Priority {
	case PriorityLow, PriorityMedium, PriorityHigh:
	default:
		return &ValidationError{
			Path: path + ".priority",
			Err:  fmt.Errorf("invalid priority %q, must be one of: Low, Medium, High", t.Priority),
		}
	}

	switch t.Category {
	case CategoryWork, CategoryPersonal, CategorySchool, CategoryOther:
	default:
		return &ValidationError{
			Path: path + ".category",
			Err:  fmt.Errorf("invalid category %q, must be one of: Work, Personal, School, Other", t.Category),
		}
	}

	switch t.Recurrence {
	case "", RecurrenceNone, RecurrenceDaily, RecurrenceWeekly, RecurrenceMonthly:
	default:
		return &ValidationError{
			Path: path + ".recurrence",
			Err:  fmt.Errorf("invalid recurrence %q, must be one of: none, daily, weekly, monthly", t.Recurrence),
		}
	}

	return nil
}

// checkDuplicateIDs reports IDs that appear more than once. The schema
// cannot express this invariant, so it runs in both modes.
func checkDuplicateIDs(tasks []Task, result *ValidationResult) {
	seen := make(map[int]int, len(tasks))
	for i, t := range tasks {
		if first, ok := seen[t.ID]; ok {
			result.Valid = false
			result.Errors = append(result.Errors, &ValidationError{
				Path: fmt.Sprintf("[%d].id", i),
				Err:  fmt.Errorf("duplicate id %d, first used at [%d]", t.ID, first),
			})
			continue
		}
		seen[t.ID] = i
	}
}

// validateWithSchema attempts JSON Schema validation.
func validateWithSchema(tasks []Task, schemaPath string) *ValidationResult {
	result := &ValidationResult{
		Valid:      true,
		Errors:     make([]error, 0),
		Warnings:   make([]string, 0),
		UsedSchema: false,
	}

	compiler := jsonschema.NewCompiler()
	compiler.AssertFormat = true

	var schema *jsonschema.Schema
	if schemaPath != "" {
		absPath, err := filepath.Abs(schemaPath)
		if err != nil {
			result.Warnings = append(result.Warnings, fmt.Sprintf("invalid schema path: %v", err))
			return result
		}
		if _, err := os.Stat(absPath); err != nil {
			result.Warnings = append(result.Warnings, fmt.Sprintf("schema file not usable: %v", err))
			return result
		}
		schema, err = compiler.Compile(absPath)
		if err != nil {
			result.Warnings = append(result.Warnings, fmt.Sprintf("invalid schema file: %v", err))
			return result
		}
	} else {
		if err := compiler.AddResource("tasks.schema.json", strings.NewReader(defaultSchema)); err != nil {
			result.Warnings = append(result.Warnings, fmt.Sprintf("embedded schema unusable: %v", err))
			return result
		}
		var err error
		schema, err = compiler.Compile("tasks.schema.json")
		if err != nil {
			result.Warnings = append(result.Warnings, fmt.Sprintf("embedded schema unusable: %v", err))
			return result
		}
	}

	result.UsedSchema = true

	// Marshal through the on-disk form so the schema sees what a reader
	// of the file would see.
	records := make([]record, 0, len(tasks))
	for _, t := range tasks {
		records = append(records, toRecord(t))
	}
	data, err := json.Marshal(records)
	if err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, &ValidationError{
			Err: fmt.Errorf("failed to marshal tasks for validation: %w", err),
		})
		return result
	}

	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, &ValidationError{
			Err: fmt.Errorf("failed to unmarshal tasks for validation: %w", err),
		})
		return result
	}

	if err := schema.Validate(doc); err != nil {
		result.Valid = false
		appendSchemaErrors(result, err)
	}

	return result
}

func appendSchemaErrors(result *ValidationResult, err error) {
	if err == nil {
		return
	}

	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		result.Errors = append(result.Errors, err)
		return
	}

	collectSchemaErrors(result, ve)
}

func collectSchemaErrors(result *ValidationResult, err *jsonschema.ValidationError) {
	if err == nil {
		return
	}

	if len(err.Causes) == 0 {
		result.Errors = append(result.Errors, &ValidationError{
			Path: jsonPointerToPath(err.InstanceLocation),
			Err:  fmt.Errorf("%s", err.Message),
		})
		return
	}

	for _, cause := range err.Causes {
		collectSchemaErrors(result, cause)
	}
}

func jsonPointerToPath(ptr string) string {
	if ptr == "" {
		return ""
	}
	ptr = strings.TrimPrefix(ptr, "#")
	ptr = strings.TrimPrefix(ptr, "/")
	if ptr == "" {
		return ""
	}

	parts := strings.Split(ptr, "/")
	path := ""
	for _, part := range parts {
		part = strings.ReplaceAll(part, "~1", "/")
		part = strings.ReplaceAll(part, "~0", "~")
		if part == "" {
			continue
		}
		if idx, err := strconv.Atoi(part); err == nil {
			path += fmt.Sprintf("[%d]", idx)
			continue
		}
		if path == "" {
			path = part
		} else {
			path += "." + part
		}
	}

	return path
}
