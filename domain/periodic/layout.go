package periodic

import (
	"fmt"
	"slices"
	"strconv"

	"mbticonsultant/domain/core"
)

// Layout is everything a grid renderer needs to draw one type's table
type Layout struct {
	TypeCode TypeCode `json:"type"`
	Subtitle string   `json:"subtitle"`
	Style    Style    `json:"style"`

	// Groups is the x-axis domain, GroupNames its parallel labels
	Groups     []string `json:"groups"`
	GroupNames []string `json:"groupNames"`

	// Periods lists the data periods top to bottom followed by BottomRow
	Periods   []string `json:"periods"`
	BottomRow string   `json:"bottomRow"`
	YRange    []string `json:"yRange"`

	Tiles []Row `json:"tiles"`

	Width       int         `json:"width"`
	Height      int         `json:"height"`
	FontSizes   FontSizes   `json:"fontSizes"`
	LineHeight  float64     `json:"lineHeight"`
	BorderWidth int         `json:"borderWidth"`
	TileSize    float64     `json:"tileSize"`
	FillAlpha   float64     `json:"fillAlpha"`
	Offsets     TextOffsets `json:"offsets"`
	Palette     Palette     `json:"palette"`
	Tooltip     Tooltip     `json:"tooltip"`
}

// Derive turns the rows of one selection into a layout. It fails rather than
// producing an empty or ill-formed grid.
func Derive(rows []Row, style Style) (*Layout, error) {
	style, err := style.Resolve()
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, core.ErrNoData
	}

	tiles := make([]Row, len(rows))
	for i, row := range rows {
		tiles[i] = NormalizeRow(row)
	}

	groups, groupNames, err := groupAxis(tiles)
	if err != nil {
		return nil, err
	}
	if len(groups) == 0 {
		return nil, core.NewEmptyAxisError("groups")
	}

	periods := distinctSorted(tiles, func(r Row) string { return r.Period })
	if len(periods) == 0 {
		return nil, core.NewEmptyAxisError("periods")
	}
	bottomRow := strconv.Itoa(len(periods) + 1)
	if slices.Contains(periods, bottomRow) {
		return nil, fmt.Errorf("%w: %s", core.ErrPeriodCollision, bottomRow)
	}
	periods = append(periods, bottomRow)

	if err := checkCells(tiles); err != nil {
		return nil, err
	}

	yRange := slices.Clone(periods)
	slices.Reverse(yRange)

	return &Layout{
		TypeCode:    tiles[0].TypeCode,
		Subtitle:    Subtitle(tiles[0]),
		Style:       style,
		Groups:      groups,
		GroupNames:  groupNames,
		Periods:     periods,
		BottomRow:   bottomRow,
		YRange:      yRange,
		Tiles:       tiles,
		Width:       PlotWidth(len(groups), style.Scale),
		Height:      PlotHeight(len(periods), style.Scale),
		FontSizes:   FontSizesFor(style.Scale),
		LineHeight:  LineHeight(style.Scale),
		BorderWidth: BorderWidth,
		TileSize:    TileSize,
		FillAlpha:   FillAlpha,
		Offsets:     DefaultOffsets,
		Palette:     DefaultPalette,
		Tooltip:     DefaultTooltip(),
	}, nil
}

// Subtitle is the "<category> - <personality>" heading of a type
func Subtitle(row Row) string {
	return fmt.Sprintf("%s - %s", row.Category, row.Personality)
}

// groupAxis collects distinct (group, groupName) pairs ordered by group key
func groupAxis(tiles []Row) ([]string, []string, error) {
	names := make(map[string]string)
	for _, tile := range tiles {
		if name, ok := names[tile.Group]; ok {
			if name != tile.GroupName {
				return nil, nil, core.NewConflictingGroupError(tile.Group, name, tile.GroupName)
			}
			continue
		}
		names[tile.Group] = tile.GroupName
	}

	groups := make([]string, 0, len(names))
	for group := range names {
		groups = append(groups, group)
	}
	slices.SortFunc(groups, compareKeys)

	groupNames := make([]string, len(groups))
	for i, group := range groups {
		groupNames[i] = names[group]
	}
	return groups, groupNames, nil
}

func distinctSorted(tiles []Row, key func(Row) string) []string {
	seen := make(map[string]struct{})
	var values []string
	for _, tile := range tiles {
		v := key(tile)
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		values = append(values, v)
	}
	slices.SortFunc(values, compareKeys)
	return values
}

func checkCells(tiles []Row) error {
	type cell struct{ group, period string }
	seen := make(map[cell]struct{}, len(tiles))
	for _, tile := range tiles {
		c := cell{tile.Group, tile.Period}
		if _, ok := seen[c]; ok {
			return core.NewDuplicateCellError(tile.Group, tile.Period)
		}
		seen[c] = struct{}{}
	}
	return nil
}

// CellSize returns the pixel size of one category cell
func (l *Layout) CellSize() (width, height float64) {
	return float64(l.Width) / float64(len(l.Groups)), float64(l.Height) / float64(len(l.Periods))
}

// CellCenter returns the pixel centre of a cell, origin top-left. Period "1"
// is the top row and BottomRow the last.
func (l *Layout) CellCenter(group, period string) (x, y float64, ok bool) {
	gi := slices.Index(l.Groups, group)
	pi := slices.Index(l.Periods, period)
	if gi < 0 || pi < 0 {
		return 0, 0, false
	}
	w, h := l.CellSize()
	return (float64(gi) + 0.5) * w, (float64(pi) + 0.5) * h, true
}

// Anchor returns the pixel position of an overlay offset from a cell centre
func (l *Layout) Anchor(group, period string, off Offset) (x, y float64, ok bool) {
	x, y, ok = l.CellCenter(group, period)
	if !ok {
		return 0, 0, false
	}
	w, h := l.CellSize()
	return x + off.X*w, y - off.Y*h, true
}

// TileBounds returns the top-left corner and size of a tile's rectangle
func (l *Layout) TileBounds(tile Row) (x, y, width, height float64, ok bool) {
	cx, cy, ok := l.CellCenter(tile.Group, tile.Period)
	if !ok {
		return 0, 0, 0, 0, false
	}
	w, h := l.CellSize()
	width, height = w*l.TileSize, h*l.TileSize
	return cx - width/2, cy - height/2, width, height, true
}

// GroupLabel pairs a label-row position with its text lines
type GroupLabel struct {
	Group string
	Lines []string
	X, Y  float64
}

// GroupLabels positions the group names on the bottom row
func (l *Layout) GroupLabels() []GroupLabel {
	labels := make([]GroupLabel, 0, len(l.Groups))
	for i, group := range l.Groups {
		x, y, _ := l.CellCenter(group, l.BottomRow)
		labels = append(labels, GroupLabel{
			Group: group,
			Lines: Lines(AxisLabel(l.GroupNames[i])),
			X:     x,
			Y:     y,
		})
	}
	return labels
}

// fontHeightEm is the full height of a line box (ascent, descent and leading)
// in ems. LineHeight is a fraction of it.
const fontHeightEm = 1.7

// LineAdvance is the vertical distance between consecutive lines of text
func (l *Layout) LineAdvance(fontPx float64) float64 {
	return fontPx * l.LineHeight * fontHeightEm
}

// LineOffsets returns the vertical offset of each of n lines so that the
// block is centred on its anchor
func (l *Layout) LineOffsets(n int, fontPx float64) []float64 {
	step := l.LineAdvance(fontPx)
	offsets := make([]float64, n)
	for i := range offsets {
		offsets[i] = (float64(i) - float64(n-1)/2) * step
	}
	return offsets
}
