// Package logging provides a structured logging wrapper around charmbracelet/log.
package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldPaths      = "paths"
	FieldFiles      = "files"
	FieldOutput     = "output"
	FieldWorkingDir = "working_dir"

	// Configuration fields.
	FieldConfig   = "config"
	FieldJobs     = "jobs"
	FieldFormat   = "format"
	FieldEncoding = "encoding"
	FieldTags     = "tags"
	FieldPattern  = "pattern"

	// Per-file fields.
	FieldStatus = "status"
	FieldReason = "reason"

	// Statistics fields.
	FieldFilesDiscovered = "files_discovered"
	FieldFilesOK         = "files_ok"
	FieldFilesSkipped    = "files_skipped"
	FieldFilesFailed     = "files_failed"
	FieldConstructs      = "constructs"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
