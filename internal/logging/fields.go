package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldInput      = "input"
	FieldOutput     = "output"
	FieldWorkingDir = "working_dir"

	// Configuration fields.
	FieldFormat        = "format"
	FieldFlavor        = "flavor"
	FieldMaxLineLength = "max_line_length"
	FieldConfigFiles   = "config_files"

	// Document statistics fields.
	FieldTitle      = "title"
	FieldSections   = "sections"
	FieldHeaders    = "headers"
	FieldParagraphs = "paragraphs"
	FieldTables     = "tables"
	FieldTableRows  = "table_rows"
	FieldFigures    = "figures"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
