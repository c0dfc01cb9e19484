package periodic

import (
	"strconv"
	"strings"
)

// TypeCode is a 4-letter Myers-Briggs type identifier such as "INTJ"
type TypeCode string

func (t TypeCode) String() string {
	return string(t)
}

// Column names expected in the source table
const (
	ColumnType         = "type"
	ColumnCategory     = "category"
	ColumnPersonality  = "personality"
	ColumnGroup        = "group"
	ColumnGroupName    = "groupname"
	ColumnPeriod       = "period"
	ColumnAtomicNumber = "atomicnumber"
	ColumnSymbol       = "symbol"
	ColumnElementName  = "elementname"
	ColumnExcerpt      = "excerpt"
	ColumnColor        = "color"
)

// RequiredColumns lists every column a source table must carry
var RequiredColumns = []string{
	ColumnType,
	ColumnCategory,
	ColumnPersonality,
	ColumnGroup,
	ColumnGroupName,
	ColumnPeriod,
	ColumnAtomicNumber,
	ColumnSymbol,
	ColumnElementName,
	ColumnExcerpt,
	ColumnColor,
}

// Row is one (personality type, element) pairing
type Row struct {
	TypeCode     TypeCode `json:"type"`
	Category     string   `json:"category"`
	Personality  string   `json:"personality"`
	Group        string   `json:"group"`
	GroupName    string   `json:"groupName"`
	Period       string   `json:"period"`
	AtomicNumber string   `json:"atomicNumber"`
	Symbol       string   `json:"symbol"`
	ElementName  string   `json:"elementName"`
	Excerpt      string   `json:"excerpt"`
	Color        string   `json:"color"`
}

// Table holds every row of the source in source order
type Table struct {
	Source string
	Rows   []Row
}

// Len returns the number of rows in the table
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Rows)
}

// RowFromRecord builds a Row from a header-keyed record. Coordinate keys are
// canonicalised so "3.0" and "3" address the same cell.
func RowFromRecord(record map[string]string) Row {
	return Row{
		TypeCode:     TypeCode(record[ColumnType]),
		Category:     record[ColumnCategory],
		Personality:  record[ColumnPersonality],
		Group:        CanonicalKey(record[ColumnGroup]),
		GroupName:    record[ColumnGroupName],
		Period:       CanonicalKey(record[ColumnPeriod]),
		AtomicNumber: CanonicalKey(record[ColumnAtomicNumber]),
		Symbol:       record[ColumnSymbol],
		ElementName:  record[ColumnElementName],
		Excerpt:      record[ColumnExcerpt],
		Color:        record[ColumnColor],
	}
}

// CanonicalKey trims a categorical value and rewrites integer-valued floats
// ("3.0") as plain integers ("3"). Anything else is returned trimmed.
func CanonicalKey(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return value
	}
	if _, err := strconv.ParseInt(value, 10, 64); err == nil {
		return value
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil || f != float64(int64(f)) {
		return value
	}
	return strconv.FormatInt(int64(f), 10)
}

// compareKeys orders categorical keys numerically when both parse as numbers,
// lexically otherwise. Numbers sort before text.
func compareKeys(a, b string) int {
	fa, errA := strconv.ParseFloat(a, 64)
	fb, errB := strconv.ParseFloat(b, 64)
	switch {
	case errA == nil && errB == nil:
		switch {
		case fa < fb:
			return -1
		case fa > fb:
			return 1
		}
		return strings.Compare(a, b)
	case errA == nil:
		return -1
	case errB == nil:
		return 1
	}
	return strings.Compare(a, b)
}
