package ui

import (
	"bytes"
	"fmt"
	"html/template"

	"mbticonsultant/adapters/render"
	"mbticonsultant/domain/periodic"
)

// textLine is one positioned line of SVG text
type textLine struct {
	X, Y float64
	Text string
}

// tileView is a tile ready for the SVG template
type tileView struct {
	ID            string
	X, Y, W, H    float64
	Color         string
	Number        []textLine
	Symbol        []textLine
	ElementName   []textLine
	Tooltip       template.HTML
	AtomicNumber  string
	AccessibleTag string
}

// labelView is a group name on the bottom row
type labelView struct {
	Lines []textLine
}

// chartView is the SVG grid of one layout
type chartView struct {
	Width, Height int
	Font          string
	FontSizes     periodic.FontSizes
	Palette       periodic.Palette
	BorderWidth   int
	FillAlpha     float64
	Tiles         []tileView
	Labels        []labelView
}

// newChartView positions every tile, overlay and label of a layout
func newChartView(layout *periodic.Layout) (*chartView, error) {
	tooltip, err := template.New("tooltip").Parse(layout.Tooltip.Source)
	if err != nil {
		return nil, fmt.Errorf("failed to parse tooltip template: %w", err)
	}

	view := &chartView{
		Width:       layout.Width,
		Height:      layout.Height,
		Font:        layout.Style.Font,
		FontSizes:   layout.FontSizes,
		Palette:     layout.Palette,
		BorderWidth: layout.BorderWidth,
		FillAlpha:   layout.FillAlpha,
	}

	for i, tile := range layout.Tiles {
		x, y, w, h, ok := layout.TileBounds(tile)
		if !ok {
			continue
		}

		color := cssColor(tile.Color)
		var buf bytes.Buffer
		if err := tooltip.Execute(&buf, tooltipData(tile, color)); err != nil {
			return nil, fmt.Errorf("failed to render tooltip for %s: %w", tile.Symbol, err)
		}

		view.Tiles = append(view.Tiles, tileView{
			ID:            fmt.Sprintf("tile-%d", i),
			X:             x,
			Y:             y,
			W:             w,
			H:             h,
			Color:         string(color),
			Number:        positionLines(layout, tile, layout.Offsets.Number, []string{tile.AtomicNumber}, layout.FontSizes.Number),
			Symbol:        positionLines(layout, tile, layout.Offsets.Symbol, []string{tile.Symbol}, layout.FontSizes.Symbol),
			ElementName:   positionLines(layout, tile, layout.Offsets.ElementName, periodic.Lines(tile.ElementName), layout.FontSizes.ElementName),
			Tooltip:       template.HTML(buf.String()),
			AtomicNumber:  tile.AtomicNumber,
			AccessibleTag: fmt.Sprintf("%s %s", tile.Symbol, tile.GroupName),
		})
	}

	labelPx := periodic.PixelSize(layout.FontSizes.GroupName)
	for _, label := range layout.GroupLabels() {
		offsets := layout.LineOffsets(len(label.Lines), labelPx)
		lines := make([]textLine, len(label.Lines))
		for i, text := range label.Lines {
			lines[i] = textLine{X: label.X, Y: label.Y + offsets[i], Text: text}
		}
		view.Labels = append(view.Labels, labelView{Lines: lines})
	}

	return view, nil
}

func positionLines(layout *periodic.Layout, tile periodic.Row, off periodic.Offset, texts []string, size string) []textLine {
	x, y, ok := layout.Anchor(tile.Group, tile.Period, off)
	if !ok {
		return nil
	}
	offsets := layout.LineOffsets(len(texts), periodic.PixelSize(size))
	lines := make([]textLine, len(texts))
	for i, text := range texts {
		lines[i] = textLine{X: x, Y: y + offsets[i], Text: text}
	}
	return lines
}

// cssColor normalises a tile colour so html/template accepts it in a style
// attribute. Unparseable colours get the export fallback.
func cssColor(value string) template.CSS {
	return template.CSS(render.TileColor(value).String())
}

// tooltipData binds a tile to the tooltip fields with the colour pre-validated
func tooltipData(tile periodic.Row, color template.CSS) map[string]any {
	fields := periodic.TooltipData(tile)
	data := make(map[string]any, len(fields))
	for name, value := range fields {
		data[name] = value
	}
	data[periodic.FieldColor] = color
	return data
}
