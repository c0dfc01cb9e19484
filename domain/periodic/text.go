package periodic

import "strings"

// escapedNewline is the two-character marker the source uses in place of a line break
const escapedNewline = `\n`

// Multiline replaces escaped newline markers with real line breaks
func Multiline(s string) string {
	return strings.ReplaceAll(s, escapedNewline, "\n")
}

// SingleLine replaces escaped newline markers with a plain space
func SingleLine(s string) string {
	return strings.ReplaceAll(s, escapedNewline, " ")
}

// AxisLabel breaks a group name onto one word per line for the label row
func AxisLabel(groupName string) string {
	return strings.ReplaceAll(groupName, " ", "\n")
}

// Lines splits display text on line breaks
func Lines(s string) []string {
	return strings.Split(s, "\n")
}

// NormalizeRow applies the display normalisation to a row's text fields
func NormalizeRow(row Row) Row {
	row.ElementName = Multiline(row.ElementName)
	row.Excerpt = Multiline(row.Excerpt)
	row.GroupName = SingleLine(row.GroupName)
	return row
}
