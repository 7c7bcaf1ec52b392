// Package cards renders player cards: it allocates fixed-size card regions on
// a sheet, clones template formatting into them and fills in player fields.
package cards

import (
	"fmt"

	"github.com/ukaji3/rosterkit-go/pkg/rosterkit/models"
)

// Layout is the card grid geometry.
type Layout struct {
	// CardsPerRow is the number of cards placed side by side.
	CardsPerRow int `yaml:"cards_per_row" json:"cards_per_row"`
	// CardHeight is the card height in rows.
	CardHeight int `yaml:"card_height" json:"card_height"`
	// CardWidth is the card width in columns.
	CardWidth int `yaml:"card_width" json:"card_width"`
}

// DefaultLayout returns three 8x7 cards per row.
func DefaultLayout() Layout {
	return Layout{CardsPerRow: 3, CardHeight: 8, CardWidth: 7}
}

// Validate reports non-positive geometry.
func (l Layout) Validate() error {
	if l.CardsPerRow < 1 || l.CardHeight < 1 || l.CardWidth < 1 {
		return fmt.Errorf("invalid card layout %dx%d, %d per row", l.CardHeight, l.CardWidth, l.CardsPerRow)
	}
	return nil
}

// Position returns the 1-based top-left (row, col) of the card at index.
// Cards are packed densely, cardsPerRow to a row, in index order.
func Position(index, cardsPerRow, cardHeight, cardWidth int) (row, col int) {
	if index < 0 || cardsPerRow < 1 || cardHeight < 1 || cardWidth < 1 {
		panic(fmt.Sprintf("cards: invalid position request index=%d layout=%d/%d/%d", index, cardsPerRow, cardHeight, cardWidth))
	}
	row = (index/cardsPerRow)*cardHeight + 1
	col = (index%cardsPerRow)*cardWidth + 1
	return row, col
}

// Position returns the anchor of the card at index.
func (l Layout) Position(index int) (row, col int) {
	return Position(index, l.CardsPerRow, l.CardHeight, l.CardWidth)
}

// Area returns the full region of the card at index.
func (l Layout) Area(index int) models.Range {
	row, col := l.Position(index)
	return models.NewRange(row, col, l.CardHeight, l.CardWidth)
}
