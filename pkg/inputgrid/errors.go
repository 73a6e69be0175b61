package inputgrid

import (
	"errors"
	"fmt"

	"github.com/ukaji3/inputgrid-go/pkg/inputgrid/mapper"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input file is not a readable xlsx workbook.
var ErrInvalidFormat = errors.New("invalid xlsx format")

// ErrSheetNotFound indicates the workbook has no sheet named by the layout.
var ErrSheetNotFound = errors.New("sheet not found")

// ErrSectionNotFound indicates a section title is absent from the grid.
var ErrSectionNotFound = errors.New("section not found")

// ErrNilInput indicates Encode was called without input.
var ErrNilInput = errors.New("nil input")

// ErrTypeMismatch indicates a cell that cannot be read as its column kind.
var ErrTypeMismatch = mapper.ErrTypeMismatch

// TypeMismatchError locates a cell that failed coercion.
type TypeMismatchError = mapper.TypeMismatchError

// SectionNotFoundError names the title that could not be located.
type SectionNotFoundError struct {
	Sheet string
	Title string
}

func (e *SectionNotFoundError) Error() string {
	return fmt.Sprintf("section %q not found in sheet %q", e.Title, e.Sheet)
}

// Is reports whether target is ErrSectionNotFound.
func (e *SectionNotFoundError) Is(target error) bool {
	return target == ErrSectionNotFound
}

// EncodeError reports a failed encode. Whatever was written before the
// failure is still saved, so the destination may hold an incomplete grid.
type EncodeError struct {
	Path string
	// Section is the section being written when the failure happened, or ""
	// when the failure happened while saving.
	Section string
	Err     error
	// Partial is true when a file was left at Path.
	Partial bool
}

func (e *EncodeError) Error() string {
	msg := fmt.Sprintf("encode %s", e.Path)
	if e.Section != "" {
		msg += fmt.Sprintf(" (section %q)", e.Section)
	}
	msg += fmt.Sprintf(": %v", e.Err)
	if e.Partial {
		msg += "; destination file may be incomplete"
	}
	return msg
}

func (e *EncodeError) Unwrap() error {
	return e.Err
}

// NewEncodeError creates a new EncodeError.
func NewEncodeError(path, section string, err error, partial bool) *EncodeError {
	return &EncodeError{
		Path:    path,
		Section: section,
		Err:     err,
		Partial: partial,
	}
}
