package rosterkit

import (
	"errors"
	"fmt"
	"os"

	"github.com/ukaji3/rosterkit-go/pkg/rosterkit/h2h"
)

// ErrFileNotFound indicates a required input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrTemplateMissing indicates the template workbook lacks a card template sheet.
var ErrTemplateMissing = errors.New("card template missing")

// ErrMissingColumn indicates the play-by-play table lacks a required column.
var ErrMissingColumn = h2h.ErrMissingColumn

// SheetError represents a failure while processing one sheet.
type SheetError struct {
	Sheet string
	Stage string // "read", "header", "roster", "render"
	Err   error
}

func (e *SheetError) Error() string {
	return fmt.Sprintf("sheet %q (%s): %v", e.Sheet, e.Stage, e.Err)
}

func (e *SheetError) Unwrap() error {
	return e.Err
}

// NewSheetError creates a new SheetError.
func NewSheetError(sheet, stage string, err error) *SheetError {
	return &SheetError{
		Sheet: sheet,
		Stage: stage,
		Err:   err,
	}
}

// requireFile returns ErrFileNotFound wrapped with path when path is absent.
func requireFile(path string) error {
	info, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}
	if err != nil {
		return err
	}
	if info.IsDir() {
		return fmt.Errorf("%w: %s is a directory", ErrFileNotFound, path)
	}
	return nil
}
