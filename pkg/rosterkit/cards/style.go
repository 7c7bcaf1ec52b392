package cards

import (
	"errors"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// CloneReport tallies style attributes that could not be copied verbatim.
type CloneReport struct {
	// BorderFallbacks counts cells given a thin border instead of the template's.
	BorderFallbacks int `json:"border_fallbacks"`
	// FillSkips counts cells whose fill was left at the default.
	FillSkips int `json:"fill_skips"`
	// FontSkips counts cells whose font was left at the default.
	FontSkips int `json:"font_skips"`
	// AlignmentSkips counts cells whose alignment was left at the default.
	AlignmentSkips int `json:"alignment_skips"`
	// NumFmtSkips counts cells whose number format was left at the default.
	NumFmtSkips int `json:"num_fmt_skips"`
}

// Add accumulates o into r.
func (r *CloneReport) Add(o CloneReport) {
	r.BorderFallbacks += o.BorderFallbacks
	r.FillSkips += o.FillSkips
	r.FontSkips += o.FontSkips
	r.AlignmentSkips += o.AlignmentSkips
	r.NumFmtSkips += o.NumFmtSkips
}

// Total returns the number of degraded attributes.
func (r CloneReport) Total() int {
	return r.BorderFallbacks + r.FillSkips + r.FontSkips + r.AlignmentSkips + r.NumFmtSkips
}

var errInvalidColor = errors.New("invalid color")

var (
	borderSides   = map[string]bool{"left": true, "right": true, "top": true, "bottom": true}
	horizontalSet = map[string]bool{
		"": true, "general": true, "left": true, "center": true, "right": true, "fill": true,
		"justify": true, "centerContinuous": true, "distributed": true,
	}
	verticalSet = map[string]bool{
		"": true, "top": true, "center": true, "bottom": true, "justify": true, "distributed": true,
	}
)

// cloneStyle copies font, alignment, border, fill and number format from src.
// Each attribute is copied on its own; a failed border becomes a thin border
// on all four sides and any other failed attribute is left unset.
func cloneStyle(src *excelize.Style) (*excelize.Style, CloneReport) {
	var report CloneReport
	dst := &excelize.Style{}
	if src == nil {
		return dst, report
	}

	if font, err := copyFont(src.Font); err == nil {
		dst.Font = font
	} else {
		report.FontSkips++
	}

	if alignment, err := copyAlignment(src.Alignment); err == nil {
		dst.Alignment = alignment
	} else {
		report.AlignmentSkips++
	}

	if border, err := copyBorder(src.Border); err == nil {
		dst.Border = border
	} else {
		dst.Border = thinBorder()
		report.BorderFallbacks++
	}

	if fill, err := copyFill(src.Fill); err == nil {
		dst.Fill = fill
	} else {
		report.FillSkips++
	}

	if err := copyNumFmt(src, dst); err != nil {
		report.NumFmtSkips++
	}

	return dst, report
}

func copyFont(src *excelize.Font) (*excelize.Font, error) {
	if src == nil {
		return nil, nil
	}
	if src.Size < 0 || src.Size > excelize.MaxFontSize {
		return nil, fmt.Errorf("font size %v out of range", src.Size)
	}
	if len(src.Family) > excelize.MaxFontFamilyLength {
		return nil, fmt.Errorf("font family %q too long", src.Family)
	}
	if err := checkColor(src.Color); err != nil {
		return nil, fmt.Errorf("font color: %w", err)
	}
	font := &excelize.Font{
		Family:       src.Family,
		Size:         src.Size,
		Bold:         src.Bold,
		Italic:       src.Italic,
		Color:        src.Color,
		ColorIndexed: src.ColorIndexed,
		ColorTint:    src.ColorTint,
	}
	if src.ColorTheme != nil {
		theme := *src.ColorTheme
		font.ColorTheme = &theme
	}
	return font, nil
}

func copyAlignment(src *excelize.Alignment) (*excelize.Alignment, error) {
	if src == nil {
		return nil, nil
	}
	if !horizontalSet[src.Horizontal] {
		return nil, fmt.Errorf("unknown horizontal alignment %q", src.Horizontal)
	}
	if !verticalSet[src.Vertical] {
		return nil, fmt.Errorf("unknown vertical alignment %q", src.Vertical)
	}
	if src.Indent < 0 {
		return nil, fmt.Errorf("negative indent %d", src.Indent)
	}
	return &excelize.Alignment{
		Horizontal:  src.Horizontal,
		Vertical:    src.Vertical,
		WrapText:    src.WrapText,
		ShrinkToFit: src.ShrinkToFit,
		Indent:      src.Indent,
	}, nil
}

// copyBorder keeps the four outer sides. Diagonal borders are dropped.
func copyBorder(src []excelize.Border) ([]excelize.Border, error) {
	var border []excelize.Border
	for _, b := range src {
		if strings.HasPrefix(b.Type, "diagonal") {
			continue
		}
		if !borderSides[b.Type] {
			return nil, fmt.Errorf("unknown border side %q", b.Type)
		}
		if b.Style < 0 || b.Style > 13 {
			return nil, fmt.Errorf("border style %d out of range", b.Style)
		}
		if err := checkColor(b.Color); err != nil {
			return nil, fmt.Errorf("border color: %w", err)
		}
		border = append(border, excelize.Border{Type: b.Type, Color: b.Color, Style: b.Style})
	}
	return border, nil
}

func thinBorder() []excelize.Border {
	return []excelize.Border{
		{Type: "left", Style: 1},
		{Type: "right", Style: 1},
		{Type: "top", Style: 1},
		{Type: "bottom", Style: 1},
	}
}

func isThinBorder(b []excelize.Border) bool {
	thin := thinBorder()
	if len(b) != len(thin) {
		return false
	}
	for i := range b {
		if b[i].Type != thin[i].Type || b[i].Style != thin[i].Style || b[i].Color != "" {
			return false
		}
	}
	return true
}

func copyFill(src excelize.Fill) (excelize.Fill, error) {
	switch src.Type {
	case "":
		return excelize.Fill{}, nil
	case "pattern":
		if src.Pattern < 0 || src.Pattern > 18 {
			return excelize.Fill{}, fmt.Errorf("fill pattern %d out of range", src.Pattern)
		}
	case "gradient":
		if src.Shading < 0 || src.Shading > 5 {
			return excelize.Fill{}, fmt.Errorf("fill shading %d out of range", src.Shading)
		}
	default:
		return excelize.Fill{}, fmt.Errorf("unknown fill type %q", src.Type)
	}
	for _, c := range src.Color {
		if err := checkColor(c); err != nil {
			return excelize.Fill{}, fmt.Errorf("fill color: %w", err)
		}
	}
	return excelize.Fill{
		Type:    src.Type,
		Pattern: src.Pattern,
		Shading: src.Shading,
		Color:   append([]string(nil), src.Color...),
	}, nil
}

func copyNumFmt(src, dst *excelize.Style) error {
	if src.CustomNumFmt != nil {
		if *src.CustomNumFmt == "" {
			return errors.New("empty custom number format")
		}
		custom := *src.CustomNumFmt
		dst.CustomNumFmt = &custom
		return nil
	}
	if src.NumFmt < 0 {
		return fmt.Errorf("number format %d out of range", src.NumFmt)
	}
	dst.NumFmt = src.NumFmt
	if src.DecimalPlaces != nil {
		places := *src.DecimalPlaces
		dst.DecimalPlaces = &places
	}
	return nil
}

// checkColor accepts "" or an RGB/ARGB hex string with an optional '#'.
func checkColor(c string) error {
	hex := strings.TrimPrefix(c, "#")
	if hex == "" {
		return nil
	}
	if len(hex) != 6 && len(hex) != 8 {
		return fmt.Errorf("%w %q", errInvalidColor, c)
	}
	for _, r := range hex {
		if !strings.ContainsRune("0123456789abcdefABCDEF", r) {
			return fmt.Errorf("%w %q", errInvalidColor, c)
		}
	}
	return nil
}
