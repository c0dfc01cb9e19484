package table

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/charmap"

	"mbticonsultant/domain/core"
	"mbticonsultant/domain/periodic"
	"mbticonsultant/internal"
	"mbticonsultant/internal/errors"
)

// Byte-order marks seen at the start of the first header. A UTF-8 BOM read
// as ISO-8859-1 turns into the three characters of bomLatin1.
const (
	bomUTF8   = "\ufeff"
	bomLatin1 = "\u00ef\u00bb\u00bf"
)

// RawRow is one data row keyed by normalised header
type RawRow map[string]string

// RawTable is the untyped content of a source
type RawTable struct {
	Headers []string
	Rows    []RawRow
}

// DataReader reads the personality table from a CSV or XLSX file
type DataReader struct {
	config   SourceConfig
	fileType string // "xlsx" or "csv"
	logger   *internal.Logger
}

// NewDataReader creates a reader; the file type follows the extension
func NewDataReader(config SourceConfig, logger *internal.Logger) (*DataReader, error) {
	encoding, err := normalizeEncoding(config.Encoding)
	if err != nil {
		return nil, errors.WithCode(errors.CodeConfigInvalid, err)
	}
	config.Encoding = encoding

	if logger == nil {
		logger = internal.DefaultLogger
	}

	fileType := "csv"
	if ext := strings.ToLower(filepath.Ext(config.FilePath)); ext == ".xlsx" {
		fileType = "xlsx"
	}
	return &DataReader{config: config, fileType: fileType, logger: logger}, nil
}

// Path returns the file the reader loads
func (r *DataReader) Path() string {
	return r.config.FilePath
}

// Load reads and parses the whole table. Every call goes back to the file.
func (r *DataReader) Load(ctx context.Context) (*periodic.Table, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	raw, err := r.ReadRaw()
	if err != nil {
		return nil, err
	}
	if err := checkColumns(raw.Headers); err != nil {
		return nil, errors.SourceError(r.config.FilePath, err)
	}

	rows := make([]periodic.Row, len(raw.Rows))
	for i, record := range raw.Rows {
		rows[i] = periodic.RowFromRecord(record)
	}
	return &periodic.Table{Source: r.config.FilePath, Rows: rows}, nil
}

// ReadRaw reads the file into header-keyed records
func (r *DataReader) ReadRaw() (*RawTable, error) {
	r.logger.Debug("[DataReader] Starting to read %s file: %s", r.fileType, r.config.FilePath)

	var (
		records [][]string
		err     error
	)
	readStart := time.Now()
	switch r.fileType {
	case "xlsx":
		records, err = r.readExcelRecords()
	default:
		records, err = r.readCSVRecords()
	}
	if err != nil {
		return nil, errors.SourceError(r.config.FilePath, err)
	}
	r.logger.Debug("[DataReader] %s read in %.2fms (%d rows)",
		r.config.FilePath, float64(time.Since(readStart).Nanoseconds())/1e6, len(records))

	if len(records) < 2 {
		return nil, errors.SourceError(r.config.FilePath,
			fmt.Errorf("%s file must have at least a header row and one data row", strings.ToUpper(r.fileType)))
	}

	return processRecords(records), nil
}

// readCSVRecords decodes the file with the configured encoding
func (r *DataReader) readCSVRecords() ([][]string, error) {
	file, err := os.Open(r.config.FilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()

	var src io.Reader = file
	if r.config.Encoding == EncodingLatin1 {
		src = charmap.ISO8859_1.NewDecoder().Reader(file)
	}

	reader := csv.NewReader(src)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV file: %w", err)
	}
	return records, nil
}

// readExcelRecords reads the configured sheet, or the first one
func (r *DataReader) readExcelRecords() ([][]string, error) {
	f, err := excelize.OpenFile(r.config.FilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	sheet := r.config.Sheet
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("workbook has no sheets")
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", sheet, err)
	}
	return rows, nil
}

// processRecords converts string records into a RawTable. Cells are kept
// verbatim; only coordinate keys are normalised later by RowFromRecord.
func processRecords(records [][]string) *RawTable {
	headerRow := records[0]
	headers := make([]string, len(headerRow))
	for i, header := range headerRow {
		headers[i] = NormalizeHeader(header)
	}

	dataRows := make([]RawRow, 0, len(records)-1)
	for _, record := range records[1:] {
		if isBlank(record) {
			continue
		}
		row := make(RawRow, len(headers))
		for j, cell := range record {
			if j < len(headers) {
				row[headers[j]] = cell
			}
		}
		dataRows = append(dataRows, row)
	}

	return &RawTable{Headers: headers, Rows: dataRows}
}

// NormalizeHeader strips byte-order-mark artifacts and case from a column name
func NormalizeHeader(header string) string {
	header = strings.TrimSpace(header)
	header = strings.TrimPrefix(header, bomUTF8)
	header = strings.TrimPrefix(header, bomLatin1)
	return strings.ToLower(strings.TrimSpace(header))
}

func checkColumns(headers []string) error {
	present := make(map[string]bool, len(headers))
	for _, header := range headers {
		present[header] = true
	}
	for _, column := range periodic.RequiredColumns {
		if !present[column] {
			return core.NewMissingColumnError(column)
		}
	}
	return nil
}

func isBlank(record []string) bool {
	for _, cell := range record {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
