package cards

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/rosterkit-go/pkg/rosterkit/models"
	"github.com/xuri/excelize/v2"
)

func cellValue(t *testing.T, f *excelize.File, sheet, cell string) string {
	t.Helper()
	v, err := f.GetCellValue(sheet, cell)
	require.NoError(t, err)
	return v
}

var testHeader = models.TeamHeader{Year: "1977", Team: "Chicago Cubs"}

var testPlayer = models.RosterRow{
	Row: 3, Player: "Rick Reuschel", Age: "28", Positions: "P", Defense: "2",
	BatterRating: "D", BatterHit: "3", Bats: "R", PitcherRating: "A",
	Control: "14", PitcherHit: "5", Throws: "R", Primary: "SP",
	Kinds: map[string]models.CellKind{
		"age": models.KindNumber, "defense": models.KindNumber, "batter_hit": models.KindNumber,
		"control": models.KindNumber, "pitcher_hit": models.KindNumber,
	},
}

func TestPopulateBatterCard(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	s, err := OpenSheet(f, "Sheet1")
	require.NoError(t, err)

	require.NoError(t, WriteLabels(s, models.CardBatter, 1, 8))
	require.NoError(t, Populate(s, models.CardBatter, 1, 8, testPlayer, testHeader))

	want := map[string]string{
		"H1": "Chicago Cubs",
		"H2": "Rick Reuschel",
		"M2": "SP",
		"H3": "Age:",
		"J3": "28",
		"K3": "Positions:",
		"M3": "P",
		"H4": "Bats:",
		"J4": "R",
		"K4": "Throws:",
		"M4": "R",
		"H5": "DEFENSE:",
		"K5": "2",
		"H6": "OFFENSE:",
		"K6": "D",
		"H7": "PROBABLE HIT:",
		"K7": "3",
		"N8": "1977",
		"H8": "",
		"K8": "",
	}
	for cell, v := range want {
		assert.Equal(t, v, cellValue(t, f, "Sheet1", cell), cell)
	}

	// Age is stored as a number, the year as text.
	ageType, err := f.GetCellType("Sheet1", "J3")
	require.NoError(t, err)
	assert.Contains(t, []excelize.CellType{excelize.CellTypeNumber, excelize.CellTypeUnset}, ageType)
	yearType, err := f.GetCellType("Sheet1", "N8")
	require.NoError(t, err)
	assert.NotContains(t, []excelize.CellType{excelize.CellTypeNumber, excelize.CellTypeUnset}, yearType)

	assert.Contains(t, s.Merges(), models.Range{R1: 1, C1: 8, R2: 1, C2: 14})
	assert.Contains(t, s.Merges(), models.Range{R1: 3, C1: 8, R2: 3, C2: 9})
	assert.Contains(t, s.Merges(), models.Range{R1: 5, C1: 11, R2: 5, C2: 14})

	id, err := f.GetCellStyle("Sheet1", "H3")
	require.NoError(t, err)
	style, err := f.GetStyle(id)
	require.NoError(t, err)
	require.NotNil(t, style.Alignment)
	assert.Equal(t, "right", style.Alignment.Horizontal)
}

func TestPopulatePitcherCard(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	s, err := OpenSheet(f, "Sheet1")
	require.NoError(t, err)

	require.NoError(t, WriteLabels(s, models.CardPitcher, 9, 1))
	require.NoError(t, Populate(s, models.CardPitcher, 9, 1, testPlayer, testHeader))

	want := map[string]string{
		"A14": "PITCHING:",
		"D14": "A",
		"A15": "CONTROL #:",
		"D15": "14",
		"A16": "PROBABLE HIT:",
		"D16": "5",
		"G16": "1977",
		"D13": "2",
	}
	for cell, v := range want {
		assert.Equal(t, v, cellValue(t, f, "Sheet1", cell), cell)
	}

	for _, cell := range []string{"D13", "D14", "D15", "D16"} {
		id, err := f.GetCellStyle("Sheet1", cell)
		require.NoError(t, err)
		style, err := f.GetStyle(id)
		require.NoError(t, err)
		require.NotNil(t, style.Alignment, cell)
		assert.Equal(t, "left", style.Alignment.Horizontal, cell)
	}
}

func TestPopulateKeepsTextValues(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	s, err := OpenSheet(f, "Sheet1")
	require.NoError(t, err)

	player := testPlayer
	player.Positions = "07"
	player.BatterHit = "1e3"
	player.Kinds = map[string]models.CellKind{"age": models.KindNumber}
	require.NoError(t, Populate(s, models.CardBatter, 1, 1, player, testHeader))

	assert.Equal(t, "07", cellValue(t, f, "Sheet1", "F3"))
	assert.Equal(t, "1e3", cellValue(t, f, "Sheet1", "D7"))
	for _, cell := range []string{"F3", "D7"} {
		typ, err := f.GetCellType("Sheet1", cell)
		require.NoError(t, err)
		assert.NotContains(t, []excelize.CellType{excelize.CellTypeNumber, excelize.CellTypeUnset}, typ, cell)
	}
}

func TestPopulateAlignsBlankPitcherFields(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	s, err := OpenSheet(f, "Sheet1")
	require.NoError(t, err)

	player := models.RosterRow{Row: 3, Player: "Blank Arm", PitcherRating: "C"}
	require.NoError(t, Populate(s, models.CardPitcher, 1, 1, player, testHeader))

	// Defense, control and probable hit are blank but still left aligned.
	for _, cell := range []string{"D5", "D6", "D7", "D8"} {
		id, err := f.GetCellStyle("Sheet1", cell)
		require.NoError(t, err)
		style, err := f.GetStyle(id)
		require.NoError(t, err)
		require.NotNil(t, style.Alignment, cell)
		assert.Equal(t, "left", style.Alignment.Horizontal, cell)
	}
	assert.Equal(t, "", cellValue(t, f, "Sheet1", "D7"))
}

func TestPopulateSkipsTemplateMergeMembers(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	s, err := OpenSheet(f, "Sheet1")
	require.NoError(t, err)

	// A template that merges the whole player row swallows the primary position.
	require.NoError(t, s.Merge(models.NewRange(2, 1, 1, 7)))
	require.NoError(t, Populate(s, models.CardBatter, 1, 1, testPlayer, testHeader))

	assert.Equal(t, "Rick Reuschel", cellValue(t, f, "Sheet1", "A2"))
	assert.Equal(t, "", cellValue(t, f, "Sheet1", "F2"))
}

func TestRenderTeam(t *testing.T) {
	tf := newTemplateBook(t)
	batter, err := LoadTemplate(tf, BatterTemplateSheet, 8, 7)
	require.NoError(t, err)
	pitcher, err := LoadTemplate(tf, PitcherTemplateSheet, 8, 7)
	require.NoError(t, err)

	out := excelize.NewFile()
	defer out.Close()
	bb, _, err := batter.Bind(out)
	require.NoError(t, err)
	pb, _, err := pitcher.Bind(out)
	require.NoError(t, err)

	s, err := NewSheet(out, "CHN", DefaultSheetOptions())
	require.NoError(t, err)

	r := &Renderer{Layout: DefaultLayout(), Batter: bb, Pitcher: pb, Logger: zerolog.Nop()}
	rows := []models.RosterRow{
		{Row: 3, Player: "Only Bat", BatterRating: "A"},
		{Row: 4, Player: "Two Way", BatterRating: "C", PitcherRating: "B"},
		{Row: 5, Player: "Only Arm", PitcherRating: "A"},
		{Row: 6, Player: "Nobody"},
	}
	summary, err := r.RenderTeam(s, testHeader, rows)
	require.NoError(t, err)

	assert.Equal(t, models.TeamCards{
		Sheet: "CHN", Header: testHeader,
		BattersOnly: 1, PitcherBatters: 1, Pitchers: 2, Cards: 4,
	}, summary)

	// Cards 0..2 fill the first band, card 3 starts the second.
	assert.Equal(t, "Only Bat", cellValue(t, out, "CHN", "A2"))
	assert.Equal(t, "Two Way", cellValue(t, out, "CHN", "H2"))
	assert.Equal(t, "OFFENSE:", cellValue(t, out, "CHN", "H6"))
	assert.Equal(t, "Two Way", cellValue(t, out, "CHN", "O2"))
	assert.Equal(t, "PITCHING:", cellValue(t, out, "CHN", "O6"))
	assert.Equal(t, "Only Arm", cellValue(t, out, "CHN", "A10"))
	assert.Equal(t, "", cellValue(t, out, "CHN", "H10"))
}
