package parser

import (
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/ukaji3/rosterkit-go/pkg/rosterkit/models"
	"github.com/xuri/excelize/v2"
)

func TestReadTable(t *testing.T) {
	// Create a temporary Excel file for testing
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	f.SetCellValue(sheetName, "A1", "1977 Chicago Cubs")
	f.SetCellValue(sheetName, "A2", "Team")
	f.SetCellValue(sheetName, "B2", "Player")
	f.SetCellValue(sheetName, "C2", "Age")
	f.SetCellValue(sheetName, "A3", "CHN")
	f.SetCellValue(sheetName, "B3", "Bill Buckner")
	f.SetCellValue(sheetName, "C3", 27)
	// Row 4 left blank on purpose
	f.SetCellValue(sheetName, "A5", "CHN")
	f.SetCellValue(sheetName, "B5", "Rick Reuschel")
	f.SetCellValue(sheetName, "C5", 28.5)

	tmpFile := filepath.Join(t.TempDir(), "test.xlsx")
	if err := f.SaveAs(tmpFile); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}

	f2, err := excelize.OpenFile(tmpFile)
	if err != nil {
		t.Fatalf("Failed to open test file: %v", err)
	}
	defer f2.Close()

	table, err := ReadTable(f2, sheetName, 2)
	if err != nil {
		t.Fatalf("ReadTable failed: %v", err)
	}

	if diff := cmp.Diff([]string{"Team", "Player", "Age"}, table.Columns); diff != "" {
		t.Errorf("columns mismatch (-want +got):\n%s", diff)
	}
	want := [][]string{
		{"CHN", "Bill Buckner", "27"},
		{"CHN", "Rick Reuschel", "28.5"},
	}
	if diff := cmp.Diff(want, table.Rows); diff != "" {
		t.Errorf("rows mismatch (-want +got):\n%s", diff)
	}
	if table.Sheet != sheetName {
		t.Errorf("Expected sheet %q, got %q", sheetName, table.Sheet)
	}
}

func TestReadTableKeepsCellKinds(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	f.SetSheetRow(sheetName, "A2", &[]interface{}{"Player", "Uniform", "Hit", "Age", "Active"})
	f.SetSheetRow(sheetName, "A3", &[]interface{}{"Bill Buckner", "07", "1e3", 27, true})

	table, err := ReadTable(f, sheetName, 2)
	if err != nil {
		t.Fatalf("ReadTable failed: %v", err)
	}

	want := [][]models.CellKind{{models.KindText, models.KindText, models.KindText, models.KindNumber, models.KindBool}}
	if diff := cmp.Diff(want, table.Kinds); diff != "" {
		t.Errorf("kinds mismatch (-want +got):\n%s", diff)
	}

	got := make([]interface{}, len(table.Rows[0]))
	for j, cell := range table.Rows[0] {
		got[j] = TypedValue(cell, table.Kind(0, j))
	}
	if diff := cmp.Diff([]interface{}{"Bill Buckner", "07", "1e3", int64(27), true}, got); diff != "" {
		t.Errorf("typed values mismatch (-want +got):\n%s", diff)
	}
}

func TestTypedValue(t *testing.T) {
	tests := []struct {
		raw      string
		kind     models.CellKind
		expected interface{}
	}{
		{"07", models.KindText, "07"},
		{"1e3", models.KindText, "1e3"},
		{"07", models.KindNumber, int64(7)},
		{"1E-3", models.KindNumber, 0.001},
		{"1", models.KindBool, true},
		{"0", models.KindBool, false},
		{"maybe", models.KindBool, "maybe"},
	}

	for _, tt := range tests {
		result := TypedValue(tt.raw, tt.kind)
		if result != tt.expected {
			t.Errorf("TypedValue(%q, %d) = %v (%T), expected %v (%T)", tt.raw, tt.kind, result, result, tt.expected, tt.expected)
		}
	}
}

func TestReadTableHeaderBeyondData(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	f.SetCellValue("Sheet1", "A1", "title only")

	table, err := ReadTable(f, "Sheet1", 2)
	if err != nil {
		t.Fatalf("ReadTable failed: %v", err)
	}
	if len(table.Columns) != 0 || len(table.Rows) != 0 {
		t.Errorf("Expected empty table, got %+v", table)
	}
}

func TestHeaderNames(t *testing.T) {
	tests := []struct {
		header   []string
		width    int
		expected []string
	}{
		{[]string{"A", "B"}, 2, []string{"A", "B"}},
		{[]string{"A", "", "C"}, 4, []string{"A", "Unnamed: 1", "C", "Unnamed: 3"}},
		{[]string{"POS", "POS", "POS"}, 3, []string{"POS", "POS.1", "POS.2"}},
		{[]string{"X", "X.1", "X"}, 3, []string{"X", "X.1", "X.2"}},
		{[]string{" Team "}, 1, []string{"Team"}},
	}

	for _, tt := range tests {
		got := headerNames(tt.header, tt.width)
		if diff := cmp.Diff(tt.expected, got); diff != "" {
			t.Errorf("headerNames(%q, %d) mismatch (-want +got):\n%s", tt.header, tt.width, diff)
		}
	}
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		input    string
		expected interface{}
	}{
		{"123", int64(123)},
		{"123.45", 123.45},
		{"-100", int64(-100)},
		{"hello", "hello"},
		{"", ""},
		{"NaN", "NaN"},
		{"inf", "inf"},
		{"1-5", "1-5"},
	}

	for _, tt := range tests {
		result := ParseValue(tt.input)
		if result != tt.expected {
			t.Errorf("ParseValue(%q) = %v (type: %T), expected %v (type: %T)",
				tt.input, result, result, tt.expected, tt.expected)
		}
	}
}
