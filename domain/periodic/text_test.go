package periodic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMultiline(t *testing.T) {
	assert.Equal(t, "Long-term\nPlanning", Multiline(`Long-term\nPlanning`))
	assert.Equal(t, "plain", Multiline("plain"))
}

func TestSingleLine(t *testing.T) {
	assert.Equal(t, "Inner World", SingleLine(`Inner\nWorld`))
}

func TestNormalizationIsIdempotent(t *testing.T) {
	inputs := []string{`a\nb`, `a\n\nb`, "a\nb", `\n`, "", `tail\`}
	for _, in := range inputs {
		once := Multiline(in)
		assert.Equal(t, once, Multiline(once), "multiline %q", in)

		single := SingleLine(in)
		assert.Equal(t, single, SingleLine(single), "single line %q", in)
	}
}

func TestNormalizeRow(t *testing.T) {
	row := NormalizeRow(Row{
		ElementName: `Long-term\nPlanning`,
		Excerpt:     `one\ntwo`,
		GroupName:   `Inner\nWorld`,
		Symbol:      `S\nY`,
	})

	assert.Equal(t, "Long-term\nPlanning", row.ElementName)
	assert.Equal(t, "one\ntwo", row.Excerpt)
	assert.Equal(t, "Inner World", row.GroupName)
	assert.Equal(t, `S\nY`, row.Symbol, "symbol is not normalised")
}

func TestAxisLabel(t *testing.T) {
	assert.Equal(t, []string{"Inner", "World"}, Lines(AxisLabel("Inner World")))
}
