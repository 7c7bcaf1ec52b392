package cards

import (
	"fmt"

	"github.com/ukaji3/rosterkit-go/pkg/rosterkit/models"
	"github.com/ukaji3/rosterkit-go/pkg/rosterkit/parser"
	"github.com/xuri/excelize/v2"
)

// Default template sheet names.
const (
	BatterTemplateSheet  = "Batter Card Template"
	PitcherTemplateSheet = "Pitcher Card Template"
)

// CardTemplate is the formatting of a card-sized region captured from a
// template sheet: one style per cell plus the sheet's merge ranges, relative
// to A1. It is read-only once loaded.
type CardTemplate struct {
	name   string
	height int
	width  int
	styles [][]*excelize.Style
	merges []models.Range
}

// LoadTemplate captures the top-left height x width cells of sheetName.
func LoadTemplate(f *excelize.File, sheetName string, height, width int) (*CardTemplate, error) {
	if idx, err := f.GetSheetIndex(sheetName); err != nil || idx < 0 {
		return nil, fmt.Errorf("template sheet %q not found", sheetName)
	}

	t := &CardTemplate{name: sheetName, height: height, width: width}
	t.styles = make([][]*excelize.Style, height)
	for r := 0; r < height; r++ {
		t.styles[r] = make([]*excelize.Style, width)
		for c := 0; c < width; c++ {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+1)
			styleID, err := f.GetCellStyle(sheetName, cell)
			if err != nil {
				continue
			}
			style, err := f.GetStyle(styleID)
			if err != nil {
				continue
			}
			t.styles[r][c] = style
		}
	}

	merges, err := parser.ExtractMergeRanges(f, sheetName)
	if err != nil {
		return nil, fmt.Errorf("template %q merges: %w", sheetName, err)
	}
	t.merges = merges

	return t, nil
}

// Name returns the template sheet name.
func (t *CardTemplate) Name() string {
	return t.name
}

// Merges returns the template merge ranges relative to A1.
func (t *CardTemplate) Merges() []models.Range {
	return append([]models.Range(nil), t.merges...)
}

// Bind converts the template styles into styles of the output workbook f.
// The returned report counts attributes that fell back to defaults.
func (t *CardTemplate) Bind(f *excelize.File) (*BoundTemplate, CloneReport, error) {
	var report CloneReport
	b := &BoundTemplate{template: t, styleIDs: make([][]int, t.height)}
	for r := range t.styles {
		b.styleIDs[r] = make([]int, t.width)
		for c, src := range t.styles[r] {
			style, rep := cloneStyle(src)
			id, err := createStyle(f.NewStyle, style, &rep)
			if err != nil {
				return nil, report, fmt.Errorf("template %q cell (%d,%d): %w", t.name, r+1, c+1, err)
			}
			report.Add(rep)
			b.styleIDs[r][c] = id
		}
	}
	return b, report, nil
}

// styleDegrade drops one attribute from a style the workbook rejected and
// records the loss. It reports false when the attribute is already absent.
type styleDegrade func(*excelize.Style, *CloneReport) bool

var styleDegrades = []styleDegrade{
	func(s *excelize.Style, rep *CloneReport) bool {
		if s.CustomNumFmt == nil && s.NumFmt == 0 && s.DecimalPlaces == nil {
			return false
		}
		s.CustomNumFmt, s.NumFmt, s.DecimalPlaces = nil, 0, nil
		rep.NumFmtSkips++
		return true
	},
	func(s *excelize.Style, rep *CloneReport) bool {
		if s.Font == nil {
			return false
		}
		s.Font = nil
		rep.FontSkips++
		return true
	},
	func(s *excelize.Style, rep *CloneReport) bool {
		if s.Fill.Type == "" && len(s.Fill.Color) == 0 {
			return false
		}
		s.Fill = excelize.Fill{}
		rep.FillSkips++
		return true
	},
	func(s *excelize.Style, rep *CloneReport) bool {
		if s.Alignment == nil {
			return false
		}
		s.Alignment = nil
		rep.AlignmentSkips++
		return true
	},
	func(s *excelize.Style, rep *CloneReport) bool {
		if len(s.Border) == 0 || isThinBorder(s.Border) {
			return false
		}
		s.Border = thinBorder()
		rep.BorderFallbacks++
		return true
	},
}

// createStyle registers style, dropping one attribute at a time after each
// rejection until create accepts it. Each dropped attribute is counted in rep.
func createStyle(create func(*excelize.Style) (int, error), style *excelize.Style, rep *CloneReport) (int, error) {
	id, err := create(style)
	for _, degrade := range styleDegrades {
		if err == nil {
			return id, nil
		}
		if degrade(style, rep) {
			id, err = create(style)
		}
	}
	return id, err
}

// BoundTemplate is a CardTemplate whose styles exist in an output workbook.
type BoundTemplate struct {
	template *CardTemplate
	styleIDs [][]int
}

// Template returns the source template.
func (b *BoundTemplate) Template() *CardTemplate {
	return b.template
}

// CloneTo applies the template formatting to the region anchored at
// (row, col) and replicates the template merges offset by (row-1, col-1).
func (b *BoundTemplate) CloneTo(s *Sheet, row, col int) error {
	for r, ids := range b.styleIDs {
		for c, id := range ids {
			if err := s.SetStyle(row+r, col+c, id); err != nil {
				return err
			}
		}
	}
	for _, m := range b.template.merges {
		if err := s.Merge(m.Offset(row-1, col-1)); err != nil {
			return err
		}
	}
	return nil
}
