package periodic

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"mbticonsultant/domain/core"
)

const (
	// DefaultScale is the plot scale used when none is given
	DefaultScale = 1.0

	// cellPixels is the edge of one grid cell at scale 1
	cellPixels = 107

	// BorderWidth is the tile outline width and does not follow the scale
	BorderWidth = 2

	// TileSize is the fraction of a cell covered by its tile
	TileSize = 0.94

	// FillAlpha is the opacity of a tile's fill colour
	FillAlpha = 0.7
)

// Base font sizes in pixels at scale 1
const (
	baseTitleSize       = 48
	baseNumberSize      = 12
	baseSymbolSize      = 26
	baseElementNameSize = 11
	baseGroupNameSize   = 12
	baseTrademarkSize   = 12
)

// Fonts is the fixed list offered by the font selector; the first entry is the default
var Fonts = []string{"Helvetica", "Times", "Arial", "Century Gothic", "Bodoni MT"}

// DefaultFont returns the font used when none is selected
func DefaultFont() string {
	return Fonts[0]
}

// IsSupportedFont reports whether font is one of Fonts
func IsSupportedFont(font string) bool {
	return slices.Contains(Fonts, font)
}

// Style holds the user-controlled rendering parameters
type Style struct {
	Font  string  `json:"font"`
	Scale float64 `json:"scale"`
}

// DefaultStyle returns the default font at scale 1
func DefaultStyle() Style {
	return Style{Font: DefaultFont(), Scale: DefaultScale}
}

// Resolve fills unset fields with defaults and validates the rest. A zero
// Scale means unset; callers parsing user input must reject an explicit 0
// with ValidateScale.
func (s Style) Resolve() (Style, error) {
	if s.Font == "" {
		s.Font = DefaultFont()
	}
	if s.Scale == 0 {
		s.Scale = DefaultScale
	}
	if !IsSupportedFont(s.Font) {
		return s, fmt.Errorf("%w: %q", core.ErrUnknownFont, s.Font)
	}
	if err := ValidateScale(s.Scale); err != nil {
		return s, err
	}
	return s, nil
}

// ValidateScale rejects scales that cannot produce a positive plot size
func ValidateScale(scale float64) error {
	if math.IsNaN(scale) || math.IsInf(scale, 0) || scale <= 0 {
		return fmt.Errorf("%w: %v", core.ErrInvalidScale, scale)
	}
	return nil
}

// round matches the half-to-even rounding the sizing rules were written against
func round(v float64) int {
	return int(math.RoundToEven(v))
}

// PlotWidth is the pixel width of a grid with the given number of groups
func PlotWidth(groups int, scale float64) int {
	return round(float64(groups) * cellPixels * scale)
}

// PlotHeight is the pixel height of a grid with the given number of period rows,
// label row included
func PlotHeight(periods int, scale float64) int {
	return round(float64(periods) * cellPixels * scale)
}

// LineHeight is the multi-line text spacing for a scale
func LineHeight(scale float64) float64 {
	switch {
	case scale <= 0.9:
		return 0.6
	case scale <= 1.1:
		return 0.7
	case scale < 1.5:
		return 0.8
	default:
		return 0.9
	}
}

// FontSize scales a base pixel size and formats it as a CSS length
func FontSize(base int, scale float64) string {
	return fmt.Sprintf("%dpx", round(float64(base)*scale))
}

// FontSizes holds the CSS font sizes of every text element
type FontSizes struct {
	Title       string `json:"title"`
	Number      string `json:"number"`
	Symbol      string `json:"symbol"`
	ElementName string `json:"elementName"`
	GroupName   string `json:"groupName"`
	Trademark   string `json:"trademark"`
}

// FontSizesFor derives the font size table for a scale
func FontSizesFor(scale float64) FontSizes {
	return FontSizes{
		Title:       FontSize(baseTitleSize, scale),
		Number:      FontSize(baseNumberSize, scale),
		Symbol:      FontSize(baseSymbolSize, scale),
		ElementName: FontSize(baseElementNameSize, scale),
		GroupName:   FontSize(baseGroupNameSize, scale),
		Trademark:   FontSize(baseTrademarkSize, scale),
	}
}

// Offset is a displacement from a cell centre in category units, y pointing up
type Offset struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// TextOffsets positions the three text overlays of a tile
type TextOffsets struct {
	Number      Offset `json:"number"`
	Symbol      Offset `json:"symbol"`
	ElementName Offset `json:"elementName"`
}

// DefaultOffsets are the fixed overlay positions
var DefaultOffsets = TextOffsets{
	Number:      Offset{X: -0.4, Y: 0.3},
	Symbol:      Offset{X: -0.13, Y: 0.07},
	ElementName: Offset{X: 0, Y: -0.25},
}

// Palette holds the fixed text colours
type Palette struct {
	Title     string `json:"title"`
	Text      string `json:"text"`
	GroupName string `json:"groupName"`
	Trademark string `json:"trademark"`
}

// DefaultPalette is the colour scheme of the page and chart
var DefaultPalette = Palette{
	Title:     "#3B3838",
	Text:      "#3B3838",
	GroupName: "#757171",
	Trademark: "#757171",
}

// PixelSize parses a CSS pixel length such as "12px"
func PixelSize(size string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(size), "px"), 64)
	if err != nil {
		return 0
	}
	return v
}
