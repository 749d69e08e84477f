package logging

// Field names shared by every log line of a closing run.
const (
	FieldFile      = "file_path"
	FieldAccount   = "account"
	FieldParser    = "parser"
	FieldPeriod    = "period"
	FieldRunID     = "run_id"
	FieldCategory  = "category"
	FieldStrategy  = "strategy"
	FieldPattern   = "pattern"
	FieldColumn    = "column"
	FieldRow       = "row"
	FieldSheet     = "sheet"
	FieldCount     = "count"
	FieldDelimiter = "delimiter"
	FieldOutput    = "output_file"
)
