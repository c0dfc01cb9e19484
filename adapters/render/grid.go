package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"mbticonsultant/domain/periodic"
	"mbticonsultant/internal/errors"
)

// Format selects the output encoding of an exported grid
type Format string

const (
	FormatPNG Format = "png"
	FormatSVG Format = "svg"
)

// ContentType returns the MIME type of the format
func (f Format) ContentType() string {
	if f == FormatSVG {
		return "image/svg+xml"
	}
	return "image/png"
}

// ParseFormat accepts "png" or "svg"
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatPNG, "":
		return FormatPNG, nil
	case FormatSVG:
		return FormatSVG, nil
	default:
		return "", errors.InvalidInput(fmt.Sprintf("unsupported export format %q", s))
	}
}

type align int

const (
	alignLeft align = iota
	alignCenter
)

// fallbackTileColor fills tiles whose colour cannot be parsed
var fallbackTileColor = drawing.ColorFromHex("D9D9D9")

// ParseColor reads a CSS colour: #rgb, #rrggbb, rgb(), rgba() or a basic
// colour name
func ParseColor(value string) (drawing.Color, bool) {
	value = strings.TrimSpace(value)
	// ColorFromHex slices the digits without checking their length
	if digits, ok := strings.CutPrefix(value, "#"); ok && !isHexDigits(digits) {
		return drawing.Color{}, false
	}
	c := drawing.ParseColor(value)
	if c.IsZero() {
		return drawing.Color{}, false
	}
	return c, true
}

// TileColor is the colour a tile is drawn with
func TileColor(value string) drawing.Color {
	if c, ok := ParseColor(value); ok {
		return c
	}
	return fallbackTileColor
}

func isHexDigits(s string) bool {
	if len(s) != 3 && len(s) != 6 {
		return false
	}
	_, err := strconv.ParseUint(s, 16, 32)
	return err == nil
}

// Grid draws a layout through the go-chart renderer and writes the encoded image.
// Raster output always uses go-chart's embedded font.
func Grid(w io.Writer, layout *periodic.Layout, format Format) error {
	if layout == nil || len(layout.Groups) == 0 || len(layout.Periods) == 0 {
		return errors.InvalidInput("cannot draw an empty layout")
	}

	provider := chart.PNG
	if format == FormatSVG {
		provider = chart.SVG
	}
	r, err := provider(layout.Width, layout.Height)
	if err != nil {
		return errors.Wrap(err, "failed to create renderer")
	}
	font, err := chart.GetDefaultFont()
	if err != nil {
		return errors.Wrap(err, "failed to load font")
	}
	r.SetFont(font)

	fillRect(r, 0, 0, float64(layout.Width), float64(layout.Height), drawing.ColorWhite, drawing.ColorWhite, 0)

	textColor, _ := ParseColor(layout.Palette.Text)
	for _, tile := range layout.Tiles {
		x, y, width, height, ok := layout.TileBounds(tile)
		if !ok {
			continue
		}
		stroke := TileColor(tile.Color)
		fill := stroke.WithAlpha(uint8(layout.FillAlpha * 255))
		fillRect(r, x, y, width, height, fill, stroke, float64(layout.BorderWidth))

		drawText(r, layout, tile, layout.Offsets.Number, []string{tile.AtomicNumber}, layout.FontSizes.Number, textColor, alignLeft)
		drawText(r, layout, tile, layout.Offsets.Symbol, []string{tile.Symbol}, layout.FontSizes.Symbol, textColor, alignLeft)
		drawText(r, layout, tile, layout.Offsets.ElementName, periodic.Lines(tile.ElementName), layout.FontSizes.ElementName, textColor, alignCenter)
	}

	labelColor, _ := ParseColor(layout.Palette.GroupName)
	labelPx := periodic.PixelSize(layout.FontSizes.GroupName)
	for _, label := range layout.GroupLabels() {
		writeLines(r, layout, label.X, label.Y, label.Lines, labelPx, labelColor, alignCenter)
	}

	if err := r.Save(w); err != nil {
		return errors.Wrap(err, "failed to encode chart")
	}
	return nil
}

func fillRect(r chart.Renderer, x, y, width, height float64, fill, stroke drawing.Color, strokeWidth float64) {
	x0, y0 := int(x), int(y)
	x1, y1 := int(x+width), int(y+height)

	r.SetFillColor(fill)
	r.SetStrokeColor(stroke)
	r.SetStrokeWidth(strokeWidth)
	r.MoveTo(x0, y0)
	r.LineTo(x1, y0)
	r.LineTo(x1, y1)
	r.LineTo(x0, y1)
	r.LineTo(x0, y0)
	r.Close()
	if strokeWidth > 0 {
		r.FillStroke()
	} else {
		r.Fill()
	}
}

func drawText(r chart.Renderer, layout *periodic.Layout, tile periodic.Row, off periodic.Offset, lines []string, size string, color drawing.Color, a align) {
	x, y, ok := layout.Anchor(tile.Group, tile.Period, off)
	if !ok {
		return
	}
	writeLines(r, layout, x, y, lines, periodic.PixelSize(size), color, a)
}

// writeLines draws a block of lines vertically centred on (x, y)
func writeLines(r chart.Renderer, layout *periodic.Layout, x, y float64, lines []string, px float64, color drawing.Color, a align) {
	if px <= 0 {
		return
	}
	r.SetFontColor(color)
	r.SetFontSize(px * 72 / r.GetDPI())

	offsets := layout.LineOffsets(len(lines), px)
	for i, line := range lines {
		if line == "" {
			continue
		}
		box := r.MeasureText(line)
		tx := x
		if a == alignCenter {
			tx -= float64(box.Width()) / 2
		}
		ty := y + offsets[i] + float64(box.Height())/2
		r.Text(line, int(tx), int(ty))
	}
}
