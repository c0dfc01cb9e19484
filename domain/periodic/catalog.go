package periodic

import (
	"slices"
	"unicode/utf8"
)

// typeCodeLength is the only length accepted for a catalog entry
const typeCodeLength = 4

// IsValidTypeCode reports whether a raw type value belongs in the catalog.
// Only the length is checked; the letters themselves are not validated.
func IsValidTypeCode(code TypeCode) bool {
	return utf8.RuneCountInString(string(code)) == typeCodeLength
}

// BuildCatalog returns the distinct valid type codes present in rows, sorted
func BuildCatalog(rows []Row) []TypeCode {
	seen := make(map[TypeCode]struct{})
	for _, row := range rows {
		if IsValidTypeCode(row.TypeCode) {
			seen[row.TypeCode] = struct{}{}
		}
	}

	catalog := make([]TypeCode, 0, len(seen))
	for code := range seen {
		catalog = append(catalog, code)
	}
	slices.Sort(catalog)
	return catalog
}

// Contains reports whether code is one of the catalog entries
func Contains(catalog []TypeCode, code TypeCode) bool {
	return slices.Contains(catalog, code)
}

// Filter returns the rows whose type code equals code
func Filter(rows []Row, code TypeCode) []Row {
	var subset []Row
	for _, row := range rows {
		if row.TypeCode == code {
			subset = append(subset, row)
		}
	}
	return subset
}
