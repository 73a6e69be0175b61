package mapper

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/ukaji3/inputgrid-go/pkg/inputgrid/layout"
	"github.com/ukaji3/inputgrid-go/pkg/inputgrid/models"
)

// ErrTypeMismatch indicates a cell whose text cannot be coerced to the
// column kind.
var ErrTypeMismatch = errors.New("type mismatch")

// TypeMismatchError locates a failed coercion.
type TypeMismatchError struct {
	Section string
	Row     int
	Column  int
	Label   string
	Value   string
	Kind    layout.Kind
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("section %q row %d column %d (%s): cannot read %q as %s",
		e.Section, e.Row, e.Column, e.Label, e.Value, e.Kind)
}

// Is reports whether target is ErrTypeMismatch.
func (e *TypeMismatchError) Is(target error) bool {
	return target == ErrTypeMismatch
}

// CoerceOut converts a record value to the value written in the cell.
// Numbers are written as float64, nil leaves the cell blank, and sentinel
// columns write "-" for absent or zero values. Whitespace-only text is
// blank. Other text in a number column must parse as a number or be the
// sentinel.
func CoerceOut(c layout.Column, v any) (any, error) {
	if v == nil {
		if c.Sentinel {
			return Sentinel, nil
		}
		return nil, nil
	}
	switch t := v.(type) {
	case string:
		if strings.TrimSpace(t) == "" {
			return CoerceOut(c, nil)
		}
		if c.Kind != layout.KindNumber || t == Sentinel {
			return t, nil
		}
		n, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w: cannot write %q as %s", c.Field, ErrTypeMismatch, t, c.Kind)
		}
		return CoerceOut(c, n)
	case bool:
		return nil, fmt.Errorf("field %q: unsupported value %v", c.Field, t)
	}
	n, ok := models.Record{c.Field: v}.Number(c.Field)
	if !ok {
		return nil, fmt.Errorf("field %q: unsupported value type %T", c.Field, v)
	}
	if c.Sentinel && n == 0 {
		return Sentinel, nil
	}
	return n, nil
}

// CoerceIn converts raw cell text to a record value. Blank text becomes
// nil, and so does sentinel text outside text columns. Number columns parse the text; tolerant columns read
// unparsable text as 0, others fail with a *TypeMismatchError carrying only
// the label, value and kind (callers fill in the position).
func CoerceIn(c layout.Column, cell string) (any, error) {
	text := strings.TrimSpace(cell)
	if text == "" || (text == Sentinel && c.Kind != layout.KindText) {
		return nil, nil
	}
	switch c.Kind {
	case layout.KindText:
		return cell, nil
	case layout.KindNumber:
		n, err := strconv.ParseFloat(text, 64)
		if err == nil {
			return n, nil
		}
		if c.Tolerant {
			return 0.0, nil
		}
		return nil, &TypeMismatchError{Label: c.Label, Value: cell, Kind: c.Kind}
	}
	return parseValue(cell), nil
}

// parseValue returns float64 for numeric text and the original string
// otherwise.
func parseValue(s string) any {
	if f, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
		return f
	}
	return s
}
