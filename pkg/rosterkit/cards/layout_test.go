package cards

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
)

func TestPosition(t *testing.T) {
	tests := []struct {
		index    int
		row, col int
	}{
		{0, 1, 1},
		{1, 1, 8},
		{2, 1, 15},
		{3, 9, 1},
		{7, 17, 8},
	}

	for _, tt := range tests {
		row, col := Position(tt.index, 3, 8, 7)
		assert.Equal(t, tt.row, row, "row of card %d", tt.index)
		assert.Equal(t, tt.col, col, "col of card %d", tt.index)
	}
}

func TestPositionPanicsOnInvalidInput(t *testing.T) {
	assert.Panics(t, func() { Position(-1, 3, 8, 7) })
	assert.Panics(t, func() { Position(0, 0, 8, 7) })
}

func TestLayoutValidate(t *testing.T) {
	assert.NoError(t, DefaultLayout().Validate())
	assert.Error(t, Layout{CardsPerRow: 3, CardHeight: 0, CardWidth: 7}.Validate())
}

func TestLayoutProperties(t *testing.T) {
	layout := DefaultLayout()
	properties := gopter.NewProperties(nil)

	properties.Property("distinct indices never overlap", prop.ForAll(
		func(a, b int) bool {
			if a == b {
				return true
			}
			return !layout.Area(a).Overlaps(layout.Area(b))
		},
		gen.IntRange(0, 500),
		gen.IntRange(0, 500),
	))

	properties.Property("area spans exactly one card", prop.ForAll(
		func(i int) bool {
			area := layout.Area(i)
			return area.R2-area.R1+1 == layout.CardHeight && area.C2-area.C1+1 == layout.CardWidth
		},
		gen.IntRange(0, 10000),
	))

	properties.Property("next card starts right after or on the next band", prop.ForAll(
		func(i int) bool {
			cur, next := layout.Area(i), layout.Area(i+1)
			if (i+1)%layout.CardsPerRow == 0 {
				return next.R1 == cur.R2+1 && next.C1 == 1
			}
			return next.R1 == cur.R1 && next.C1 == cur.C2+1
		},
		gen.IntRange(0, 10000),
	))

	properties.TestingRun(t)
}
