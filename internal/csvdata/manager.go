package csvdata

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/csvision/csvision/internal/model"
)

// CSV format constants
const (
	// FieldDelimiter separates fields in telemetry logs
	FieldDelimiter = ';'

	// QuoteChar wraps fields that may contain the delimiter
	QuoteChar = '|'

	// CSVExtension is the only accepted file extension
	CSVExtension = ".csv"

	// DefaultHeaderPrefix is the vendor prefix stripped from header names
	DefaultHeaderPrefix = "Truma_n_"

	// GroupSeparator splits a stripped header into group and key
	GroupSeparator = "::"

	// TimeIndexHeader names the column carrying sample timestamps
	TimeIndexHeader = "time index"
)

// Sentinel parse errors
var (
	// ErrNoColumns signals an empty file with nothing to parse
	ErrNoColumns = errors.New("no columns to parse from file")

	// ErrInvalidFileType signals a file that is not a CSV
	ErrInvalidFileType = errors.New("invalid file type")
)

// Manager owns one parsed CSV file and answers all header, column, and
// series questions the UI asks. It is immutable after construction.
type Manager struct {
	path    string
	prefix  string
	headers []string
	rows    [][]string
}

// NewManager loads and parses the CSV file at path. The prefix is stripped
// from header names when building the header mapping; pass an empty string
// to keep names as-is.
func NewManager(path, prefix string) (*Manager, error) {
	if ext := filepath.Ext(path); !strings.EqualFold(ext, CSVExtension) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidFileType, ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("the file %s was not found: %w", path, err)
	}
	defer f.Close()

	return NewManagerFromReader(f, path, prefix)
}

// NewManagerFromReader parses CSV content from r. The path is kept for
// error messages only; extension checks are the caller's concern.
func NewManagerFromReader(r io.Reader, path, prefix string) (*Manager, error) {
	// The | quote character is translated to the standard quote so the csv
	// reader handles delimiters embedded in quoted fields.
	reader := csv.NewReader(&quoteTranslator{inner: r})
	reader.Comma = FieldDelimiter
	reader.LazyQuotes = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoColumns, path)
	}

	headers := trimFields(records[0])
	rows := make([][]string, 0, len(records)-1)
	for _, record := range records[1:] {
		rows = append(rows, trimFields(record))
	}

	return &Manager{
		path:    path,
		prefix:  prefix,
		headers: headers,
		rows:    rows,
	}, nil
}

// quoteTranslator substitutes the telemetry quote character with the
// standard CSV quote on the byte stream
type quoteTranslator struct {
	inner io.Reader
}

func (qt *quoteTranslator) Read(p []byte) (int, error) {
	n, err := qt.inner.Read(p)
	for i := 0; i < n; i++ {
		if p[i] == QuoteChar {
			p[i] = '"'
		}
	}
	return n, err
}

func trimFields(record []string) []string {
	fields := make([]string, len(record))
	for i, field := range record {
		fields[i] = strings.TrimSpace(field)
	}
	return fields
}

// Path returns the file the manager was loaded from
func (m *Manager) Path() string {
	return m.path
}

// Headers returns the raw header names in file order
func (m *Manager) Headers() []string {
	headers := make([]string, len(m.headers))
	copy(headers, m.headers)
	return headers
}

// Indices returns all column indices in file order
func (m *Manager) Indices() []int {
	indices := make([]int, len(m.headers))
	for i := range indices {
		indices[i] = i
	}
	return indices
}

// RowCount returns the number of data rows
func (m *Manager) RowCount() int {
	return len(m.rows)
}

// ColumnCount returns the number of columns
func (m *Manager) ColumnCount() int {
	return len(m.headers)
}

// HeaderAt returns the raw header name for a column index
func (m *Manager) HeaderAt(idx int) (string, error) {
	if err := m.validateIndex(idx); err != nil {
		return "", err
	}
	return m.headers[idx], nil
}

// IndexOf returns the column index of a raw header name
func (m *Manager) IndexOf(name string) (int, error) {
	for i, h := range m.headers {
		if h == name {
			return i, nil
		}
	}
	return 0, fmt.Errorf("header '%s' not found", name)
}

func (m *Manager) validateIndex(idx int) error {
	if idx < 0 || idx >= len(m.headers) {
		return fmt.Errorf("index '%d' out of range", idx)
	}
	return nil
}

// HeaderInfo returns the parsed descriptor for a column, including its
// group, key, and data kind
func (m *Manager) HeaderInfo(idx int) (model.Header, error) {
	if err := m.validateIndex(idx); err != nil {
		return model.Header{}, err
	}

	group, key := m.splitHeader(m.headers[idx])
	return model.Header{
		Name:  m.headers[idx],
		Group: group,
		Key:   key,
		Index: idx,
		Kind:  m.kindOf(idx),
	}, nil
}

// splitHeader strips the vendor prefix and splits on the group separator
func (m *Manager) splitHeader(name string) (group, key string) {
	stripped := name
	if m.prefix != "" {
		stripped = strings.ReplaceAll(stripped, m.prefix, "")
	}
	if strings.Contains(stripped, GroupSeparator) {
		parts := strings.SplitN(stripped, GroupSeparator, 2)
		return parts[0], parts[1]
	}
	return "", stripped
}

// HeaderMapping returns headers bucketed by group, groups ordered by first
// appearance in the file. Headers without a group land in the unnamed group.
func (m *Manager) HeaderMapping() []model.HeaderGroup {
	var groups []model.HeaderGroup
	position := make(map[string]int)

	for idx := range m.headers {
		header, _ := m.HeaderInfo(idx)
		pos, seen := position[header.Group]
		if !seen {
			pos = len(groups)
			position[header.Group] = pos
			groups = append(groups, model.HeaderGroup{Name: header.Group})
		}
		groups[pos].Headers = append(groups[pos].Headers, header)
	}

	return groups
}

// kindOf classifies a column without requiring numeric cells; constant
// detection compares raw fields, zero detection needs every cell numeric
func (m *Manager) kindOf(idx int) model.HeaderKind {
	if len(m.rows) == 0 {
		return model.KindConstant
	}

	constant := true
	zero := true
	first := m.cell(0, idx)
	for _, row := range m.rows {
		cell := ""
		if idx < len(row) {
			cell = row[idx]
		}
		if cell != first {
			constant = false
		}
		if zero {
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil || v != 0 {
				zero = false
			}
		}
		if !constant && !zero {
			break
		}
	}

	switch {
	case zero:
		return model.KindConstantZero
	case constant:
		return model.KindConstant
	default:
		return model.KindVarying
	}
}

func (m *Manager) cell(row, idx int) string {
	if idx < len(m.rows[row]) {
		return m.rows[row][idx]
	}
	return ""
}

// ConstantIndices returns the indices of columns repeating their first value
func (m *Manager) ConstantIndices() []int {
	var indices []int
	for idx := range m.headers {
		if kind := m.kindOf(idx); kind == model.KindConstant || kind == model.KindConstantZero {
			indices = append(indices, idx)
		}
	}
	return indices
}

// ConstantZeroIndices returns the indices of columns that are zero in every row
func (m *Manager) ConstantZeroIndices() []int {
	var indices []int
	for idx := range m.headers {
		if m.kindOf(idx) == model.KindConstantZero {
			indices = append(indices, idx)
		}
	}
	return indices
}

// VaryingIndices returns the indices of columns with at least two distinct values
func (m *Manager) VaryingIndices() []int {
	var indices []int
	for idx := range m.headers {
		if m.kindOf(idx) == model.KindVarying {
			indices = append(indices, idx)
		}
	}
	return indices
}

// Column returns the values of a column as floats
func (m *Manager) Column(idx int) ([]float64, error) {
	if err := m.validateIndex(idx); err != nil {
		return nil, err
	}

	values := make([]float64, 0, len(m.rows))
	for rowIdx := range m.rows {
		cell := m.cell(rowIdx, idx)
		v, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			return nil, fmt.Errorf("column %s row %d: cannot parse %q as number", m.headers[idx], rowIdx+1, cell)
		}
		values = append(values, v)
	}
	return values, nil
}

// ColumnByName returns the values of a column looked up by raw header name
func (m *Manager) ColumnByName(name string) ([]float64, error) {
	idx, err := m.IndexOf(name)
	if err != nil {
		return nil, err
	}
	return m.Column(idx)
}

// rawColumn returns the unparsed cells of a column
func (m *Manager) rawColumn(idx int) []string {
	cells := make([]string, len(m.rows))
	for rowIdx := range m.rows {
		cells[rowIdx] = m.cell(rowIdx, idx)
	}
	return cells
}

// Extrema returns the buffered (min, max) chart range for a column
func (m *Manager) Extrema(idx int) (float64, float64, error) {
	points, err := m.Column(idx)
	if err != nil {
		return 0, 0, err
	}
	s := model.Series{Points: points}
	minVal, maxVal := s.Range()
	return minVal, maxVal, nil
}

// SeriesFor assembles the chart series for a column: parsed points, the
// shared time axis, and a deterministic color
func (m *Manager) SeriesFor(idx int) (*model.Series, error) {
	header, err := m.HeaderInfo(idx)
	if err != nil {
		return nil, err
	}

	points, err := m.Column(idx)
	if err != nil {
		return nil, err
	}

	return &model.Series{
		ID:       uuid.New().String(),
		Header:   header,
		Label:    header.QualifiedName(),
		ColorHex: ColorForIndex(idx, len(m.headers)),
		Points:   points,
		Times:    m.TimeAxis(),
	}, nil
}
