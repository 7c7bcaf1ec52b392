package cards

import (
	"fmt"

	"github.com/ukaji3/rosterkit-go/pkg/rosterkit/models"
	"github.com/ukaji3/rosterkit-go/pkg/rosterkit/parser"
	"github.com/xuri/excelize/v2"
)

// Sheet writes to one worksheet while tracking its merged ranges, so values
// aimed at a non-anchor cell of a merge can be dropped. A cell that has been
// covered by a merge stays covered even when that merge is later replaced by
// an overlapping one.
type Sheet struct {
	f       *excelize.File
	name    string
	merges  []models.Range
	members map[cellKey]bool
	styles  map[alignKey]int
}

type cellKey struct {
	row, col int
}

type alignKey struct {
	base       int
	horizontal string
}

// OpenSheet wraps an existing worksheet, loading its current merges.
func OpenSheet(f *excelize.File, name string) (*Sheet, error) {
	merges, err := parser.ExtractMergeRanges(f, name)
	if err != nil {
		return nil, err
	}
	s := &Sheet{f: f, name: name, members: make(map[cellKey]bool), styles: make(map[alignKey]int)}
	for _, m := range merges {
		s.track(m)
	}
	return s, nil
}

// SheetOptions configures a freshly created card sheet.
type SheetOptions struct {
	// ColumnPixels is the width applied to each of the first Columns columns.
	ColumnPixels float64 `yaml:"column_pixels" json:"column_pixels"`
	// Columns is the number of leading columns to size.
	Columns int `yaml:"columns" json:"columns"`
	// ShowGridLines keeps sheet gridlines visible.
	ShowGridLines bool `yaml:"show_grid_lines" json:"show_grid_lines"`
}

// DefaultSheetOptions returns 29 pixel columns across the first 50 columns
// with gridlines off.
func DefaultSheetOptions() SheetOptions {
	return SheetOptions{ColumnPixels: 29, Columns: 50}
}

// NewSheet creates (or reuses) the named worksheet and applies the card sheet
// view settings.
func NewSheet(f *excelize.File, name string, opts SheetOptions) (*Sheet, error) {
	if _, err := f.NewSheet(name); err != nil {
		return nil, err
	}
	show := opts.ShowGridLines
	if err := f.SetSheetView(name, 0, &excelize.ViewOptions{ShowGridLines: &show}); err != nil {
		return nil, err
	}
	if opts.Columns > 0 {
		last, err := excelize.ColumnNumberToName(opts.Columns)
		if err != nil {
			return nil, err
		}
		if err := f.SetColWidth(name, "A", last, parser.PixelsToWidth(opts.ColumnPixels)); err != nil {
			return nil, err
		}
	}
	return OpenSheet(f, name)
}

// Name returns the worksheet name.
func (s *Sheet) Name() string {
	return s.name
}

// Merges returns a copy of the tracked merge ranges.
func (s *Sheet) Merges() []models.Range {
	return append([]models.Range(nil), s.merges...)
}

// IsMergeMember reports whether (row, col) has been covered by a merge
// without being its anchor.
func (s *Sheet) IsMergeMember(row, col int) bool {
	return s.members[cellKey{row, col}]
}

func (s *Sheet) track(m models.Range) {
	s.merges = append(s.merges, m)
	for r := m.R1; r <= m.R2; r++ {
		for c := m.C1; c <= m.C2; c++ {
			if !m.IsAnchor(r, c) {
				s.members[cellKey{r, c}] = true
			}
		}
	}
}

// SetValue writes value to (row, col). Writes to a non-anchor cell of a merge
// are skipped and reported as not written.
func (s *Sheet) SetValue(row, col int, value interface{}) (bool, error) {
	if s.IsMergeMember(row, col) {
		return false, nil
	}
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return false, err
	}
	if err := s.f.SetCellValue(s.name, cell, value); err != nil {
		return false, err
	}
	return true, nil
}

// Merge merges r. An identical existing merge is left as is; overlapping
// merges are replaced.
func (s *Sheet) Merge(r models.Range) error {
	if r.IsSingleCell() {
		return nil
	}
	var kept, overlapping []models.Range
	for _, m := range s.merges {
		if m == r {
			return nil
		}
		if m.Overlaps(r) {
			overlapping = append(overlapping, m)
		} else {
			kept = append(kept, m)
		}
	}
	for _, m := range overlapping {
		if err := s.f.UnmergeCell(s.name, m.TopLeft(), m.BottomRight()); err != nil {
			return fmt.Errorf("unmerge %s: %w", m.Ref(), err)
		}
	}
	if err := s.f.MergeCell(s.name, r.TopLeft(), r.BottomRight()); err != nil {
		return fmt.Errorf("merge %s: %w", r.Ref(), err)
	}
	s.merges = kept
	s.track(r)
	return nil
}

// SetStyle applies a style ID to a single cell.
func (s *Sheet) SetStyle(row, col, styleID int) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	return s.f.SetCellStyle(s.name, cell, cell, styleID)
}

// Align replaces the alignment of (row, col) with the given horizontal
// alignment and vertical centering, keeping the rest of its style.
func (s *Sheet) Align(row, col int, horizontal string) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	base, err := s.f.GetCellStyle(s.name, cell)
	if err != nil {
		return err
	}

	key := alignKey{base: base, horizontal: horizontal}
	id, ok := s.styles[key]
	if !ok {
		style, err := s.f.GetStyle(base)
		if err != nil {
			return err
		}
		style.Alignment = &excelize.Alignment{Horizontal: horizontal, Vertical: "center"}
		if id, err = s.f.NewStyle(style); err != nil {
			return err
		}
		s.styles[key] = id
	}
	return s.f.SetCellStyle(s.name, cell, cell, id)
}
