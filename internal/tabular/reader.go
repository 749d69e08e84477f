package tabular

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/CadoCordova/Tempero-Fechamento/internal/fileutils"
	"github.com/CadoCordova/Tempero-Fechamento/internal/logging"
	"github.com/CadoCordova/Tempero-Fechamento/internal/parsererror"
	"github.com/CadoCordova/Tempero-Fechamento/internal/textutils"

	"github.com/xuri/excelize/v2"
)

// DefaultDelimiter separates fields in the delimited exports.
const DefaultDelimiter = ';'

// SupportedExtensions lists the file extensions Reader accepts.
var SupportedExtensions = []string{".csv", ".txt", ".xlsx", ".xlsm"}

// spreadsheetDateLayout is used to render date serials found in xlsx files.
const spreadsheetDateLayout = "02/01/2006"

// Reader loads delimited text and spreadsheet statements.
type Reader struct {
	delimiter rune
	logger    logging.Logger
}

// NewReader creates a Reader. A zero delimiter selects DefaultDelimiter.
func NewReader(delimiter rune, logger logging.Logger) *Reader {
	if delimiter == 0 {
		delimiter = DefaultDelimiter
	}
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Reader{delimiter: delimiter, logger: logger}
}

// ReadFile opens filePath and dispatches on its extension.
func (r *Reader) ReadFile(filePath string) (*Table, error) {
	ext := fileutils.Extension(filePath)
	if !IsSupported(ext) {
		return nil, &parsererror.InvalidFormatError{
			FilePath:       filePath,
			ExpectedFormat: strings.Join(SupportedExtensions, ", "),
			Msg:            fmt.Sprintf("unsupported extension %q", ext),
		}
	}

	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("error opening %s: %w", filePath, err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			r.logger.WithError(err).Warn("Failed to close file", logging.F(logging.FieldFile, filePath))
		}
	}()

	table, err := r.Read(file, ext)
	if err != nil {
		var formatErr *parsererror.InvalidFormatError
		if errors.As(err, &formatErr) && formatErr.FilePath == "" {
			formatErr.FilePath = filePath
		}
		return nil, err
	}
	table.Source = filePath

	r.logger.Debug("Table loaded",
		logging.F(logging.FieldFile, filePath),
		logging.F(logging.FieldRow, table.HeaderRow),
		logging.F(logging.FieldCount, len(table.Rows)))
	return table, nil
}

// Read parses content according to ext (".csv", ".xlsx", ...).
func (r *Reader) Read(content io.Reader, ext string) (*Table, error) {
	switch strings.ToLower(ext) {
	case ".csv", ".txt":
		return r.ReadCSV(content)
	case ".xlsx", ".xlsm":
		return r.ReadSpreadsheet(content)
	default:
		return nil, &parsererror.InvalidFormatError{
			ExpectedFormat: strings.Join(SupportedExtensions, ", "),
			Msg:            fmt.Sprintf("unsupported extension %q", ext),
		}
	}
}

// IsSupported reports whether ext can be read.
func IsSupported(ext string) bool {
	ext = strings.ToLower(ext)
	for _, supported := range SupportedExtensions {
		if ext == supported {
			return true
		}
	}
	return false
}

// ReadCSV reads a delimited export whose first line is the header.
func (r *Reader) ReadCSV(content io.Reader) (*Table, error) {
	csvReader := csv.NewReader(bufio.NewReader(content))
	csvReader.Comma = r.delimiter
	csvReader.FieldsPerRecord = -1
	csvReader.LazyQuotes = true

	lines, err := csvReader.ReadAll()
	if err != nil {
		return nil, &parsererror.InvalidFormatError{
			ExpectedFormat: fmt.Sprintf("delimited text separated by %q", r.delimiter),
			Msg:            err.Error(),
		}
	}

	// Leading blank lines are not a header.
	start := 0
	for start < len(lines) && blankLine(lines[start]) {
		start++
	}
	table := buildTable(lines[start:], 0)
	table.HeaderRow += start
	return table, nil
}

// ReadSpreadsheet reads the first sheet of an xlsx workbook, locating the
// header row with DetectHeader. Date serials under DATA columns are
// rendered as dd/mm/yyyy.
func (r *Reader) ReadSpreadsheet(content io.Reader) (*Table, error) {
	workbook, err := excelize.OpenReader(content)
	if err != nil {
		return nil, &parsererror.InvalidFormatError{
			ExpectedFormat: "xlsx workbook",
			Msg:            err.Error(),
		}
	}
	defer func() {
		if err := workbook.Close(); err != nil {
			r.logger.WithError(err).Warn("Failed to close workbook")
		}
	}()

	sheets := workbook.GetSheetList()
	if len(sheets) == 0 {
		return &Table{Columns: []string{}, Rows: []Row{}}, nil
	}

	lines, err := workbook.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("error reading sheet %s: %w", sheets[0], err)
	}

	headerIdx := DetectHeader(lines)
	if headerIdx > 0 {
		r.logger.Debug("Header row found below letterhead",
			logging.F(logging.FieldSheet, sheets[0]),
			logging.F(logging.FieldRow, headerIdx+1))
	}

	table := buildTable(lines, headerIdx)
	renderDateSerials(table)
	return table, nil
}

func blankLine(cells []string) bool {
	for _, cell := range cells {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// renderDateSerials replaces numeric cells of date columns with a
// formatted date.
func renderDateSerials(table *Table) {
	for _, column := range table.Columns {
		if !strings.Contains(textutils.NormalizeText(column), headerDateToken) {
			continue
		}
		for _, row := range table.Rows {
			raw, ok := row.values[column]
			if !ok {
				continue
			}
			serial, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
			if err != nil || serial <= 0 {
				continue
			}
			date, err := excelize.ExcelDateToTime(serial, false)
			if err != nil {
				continue
			}
			row.values[column] = date.Format(spreadsheetDateLayout)
		}
	}
}
