package periodic

// Tooltip field bindings
const (
	FieldColor        = "color"
	FieldSymbol       = "symbol"
	FieldGroupName    = "groupName"
	FieldAtomicNumber = "atomicNumber"
	FieldElementName  = "elementName"
	FieldExcerpt      = "excerpt"
	FieldGroup        = "group"
	FieldPeriod       = "period"
)

// TooltipFields lists every field the hover card binds
var TooltipFields = []string{
	FieldColor,
	FieldSymbol,
	FieldGroupName,
	FieldAtomicNumber,
	FieldElementName,
	FieldExcerpt,
	FieldGroup,
	FieldPeriod,
}

// tooltipSource is an html/template executed against TooltipData
const tooltipSource = `<div class="tooltip-card" style="width:300px; padding:10px; background-color: {{.color}};">
	<div><span style="font-size: 36px; font-weight: bold;">{{.symbol}}</span></div>
	<div><span style="font-size: 14px; font-weight: bold;">{{.groupName}}</span></div>
	<br>
	<div><span style="font-size: 20px; font-weight: bold; margin-bottom: 20px;">{{.atomicNumber}} - {{.elementName}}</span></div>
	<div><span style="font-size: 15px; white-space: pre-line;">{{.excerpt}}</span></div>
	<br>
	<div><span style="font-size: 10px;">({{.group}}, {{.period}})</span></div>
</div>`

// Tooltip describes the hover card shown over a tile
type Tooltip struct {
	Source string   `json:"source"`
	Fields []string `json:"fields"`
}

// DefaultTooltip returns the hover card template
func DefaultTooltip() Tooltip {
	fields := make([]string, len(TooltipFields))
	copy(fields, TooltipFields)
	return Tooltip{Source: tooltipSource, Fields: fields}
}

// TooltipData binds a tile's values to the tooltip fields
func TooltipData(row Row) map[string]string {
	return map[string]string{
		FieldColor:        row.Color,
		FieldSymbol:       row.Symbol,
		FieldGroupName:    row.GroupName,
		FieldAtomicNumber: row.AtomicNumber,
		FieldElementName:  row.ElementName,
		FieldExcerpt:      row.Excerpt,
		FieldGroup:        row.Group,
		FieldPeriod:       row.Period,
	}
}
