package models

import "github.com/xuri/excelize/v2"

// CellKind is the stored type of a source cell. The zero value is text, so
// values without a recorded kind are written back unchanged.
type CellKind uint8

const (
	KindText CellKind = iota
	KindNumber
	KindBool
)

// KindOf maps an excelize cell type to a CellKind. Cells without a type
// attribute are numbers in the file format.
func KindOf(t excelize.CellType) CellKind {
	switch t {
	case excelize.CellTypeUnset, excelize.CellTypeNumber:
		return KindNumber
	case excelize.CellTypeBool:
		return KindBool
	}
	return KindText
}
