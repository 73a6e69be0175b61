// Package layout describes where each section of an input grid lives.
//
// A Layout is a versioned, declarative descriptor: per section it names the
// title text, the header and data offsets relative to the title row, the
// column list, and the rule that ends a data run. Encoders and scanners
// consume it uniformly, so no row offset is implied by code order.
package layout

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tiendc/go-deepcopy"
)

// CurrentVersion is the layout version produced by Default.
const CurrentVersion = 1

// ErrInvalidLayout indicates a layout that cannot be encoded or scanned.
var ErrInvalidLayout = errors.New("invalid layout")

// Kind is the expected scalar kind of a column.
type Kind string

const (
	// KindText columns keep the cell text as-is.
	KindText Kind = "text"
	// KindNumber columns coerce cell text to float64.
	KindNumber Kind = "number"
	// KindAny columns keep numbers as float64 and anything else as text.
	KindAny Kind = "any"
)

// Stop is the rule that ends a data run.
type Stop string

const (
	// StopBlank ends the run at the first blank marker cell.
	StopBlank Stop = "blank"
	// StopBlankOrTitle also ends the run at a marker cell holding any
	// section title of the layout.
	StopBlankOrTitle Stop = "blank_or_title"
)

// Column maps one field identifier to its header label.
type Column struct {
	Field string `yaml:"field"`
	Label string `yaml:"label"`
	Kind  Kind   `yaml:"kind"`
	// Sentinel writes "-" for absent or zero values and reads "-" back as absent.
	Sentinel bool `yaml:"sentinel,omitempty"`
	// Tolerant reads non-numeric text as 0 instead of failing.
	Tolerant bool `yaml:"tolerant,omitempty"`
	// Default is written when the record does not carry the field.
	Default *float64 `yaml:"default,omitempty"`
}

// Section describes one titled block.
type Section struct {
	Key   string `yaml:"key"`
	Title string `yaml:"title"`
	// SpacingBefore is the number of blank rows between the previous block
	// and this title. Ignored for the first section.
	SpacingBefore int `yaml:"spacing_before"`
	// HeaderOffset is the distance from the title row to the header row.
	// Zero means the block has no header row.
	HeaderOffset int `yaml:"header_offset"`
	// DataOffset is the distance from the title row to the first data row.
	DataOffset int  `yaml:"data_offset"`
	Stop       Stop `yaml:"stop"`
	// Variable blocks have no header row; each row is a lead label followed
	// by a variable number of trailing labels.
	Variable bool     `yaml:"variable,omitempty"`
	Columns  []Column `yaml:"columns,omitempty"`
	// LeadLabel and TrailPrefix name the synthesized header of a variable
	// block: LeadLabel, TrailPrefix+"1", TrailPrefix+"2", ...
	LeadLabel   string `yaml:"lead_label,omitempty"`
	LeadField   string `yaml:"lead_field,omitempty"`
	TrailPrefix string `yaml:"trail_prefix,omitempty"`
	TrailField  string `yaml:"trail_field,omitempty"`
}

// Note is the free-text instruction cell written above the sections.
type Note struct {
	Row    int     `yaml:"row"`
	Text   string  `yaml:"text"`
	Height float64 `yaml:"height"`
}

// Layout is the full single-sheet descriptor. Sections are listed in the
// order they are written.
type Layout struct {
	Version int    `yaml:"version"`
	Sheet   string `yaml:"sheet"`
	// MarkerColumn is the 1-based column holding titles and data-run markers.
	MarkerColumn int `yaml:"marker_column"`
	// StartRow is the 1-based row of the first section title.
	StartRow int   `yaml:"start_row"`
	Note     *Note `yaml:"note,omitempty"`
	// ColumnWidth is applied to WidthSpan columns starting at the marker column.
	ColumnWidth float64   `yaml:"column_width"`
	WidthSpan   int       `yaml:"width_span"`
	Sections    []Section `yaml:"sections"`
}

// Section returns the section with the given key.
func (l *Layout) Section(key string) (*Section, bool) {
	for i := range l.Sections {
		if l.Sections[i].Key == key {
			return &l.Sections[i], true
		}
	}
	return nil, false
}

// Titles returns every section title in write order.
func (l *Layout) Titles() []string {
	titles := make([]string, len(l.Sections))
	for i, s := range l.Sections {
		titles[i] = s.Title
	}
	return titles
}

// Keys returns every section key in write order.
func (l *Layout) Keys() []string {
	keys := make([]string, len(l.Sections))
	for i, s := range l.Sections {
		keys[i] = s.Key
	}
	return keys
}

// Clone returns a deep copy of the layout.
func (l *Layout) Clone() (*Layout, error) {
	var out Layout
	if err := deepcopy.Copy(&out, *l); err != nil {
		return nil, fmt.Errorf("clone layout: %w", err)
	}
	return &out, nil
}

// Validate checks the layout invariants the codec relies on.
func (l *Layout) Validate() error {
	if l.Version != CurrentVersion {
		return invalid("unsupported version %d", l.Version)
	}
	if l.Sheet == "" {
		return invalid("sheet name is empty")
	}
	if l.MarkerColumn < 1 {
		return invalid("marker column %d must be >= 1", l.MarkerColumn)
	}
	if l.StartRow < 1 {
		return invalid("start row %d must be >= 1", l.StartRow)
	}
	if l.Note != nil && (l.Note.Row < 1 || l.Note.Row >= l.StartRow) {
		return invalid("note row %d must be above start row %d", l.Note.Row, l.StartRow)
	}
	if len(l.Sections) == 0 {
		return invalid("no sections")
	}

	keys := make(map[string]bool)
	titles := make(map[string]bool)
	for i := range l.Sections {
		s := &l.Sections[i]
		if s.Key == "" {
			return invalid("section %d has no key", i)
		}
		if keys[s.Key] {
			return invalid("duplicate section key %q", s.Key)
		}
		keys[s.Key] = true
		if s.Title == "" || strings.TrimSpace(s.Title) != s.Title {
			return invalid("section %q: title %q is empty or padded with whitespace", s.Key, s.Title)
		}
		if titles[s.Title] {
			return invalid("duplicate section title %q", s.Title)
		}
		titles[s.Title] = true
		if err := s.validate(); err != nil {
			return err
		}
	}
	return nil
}

func (s *Section) validate() error {
	if s.SpacingBefore < 0 {
		return invalid("section %q: negative spacing", s.Key)
	}
	switch s.Stop {
	case StopBlank, StopBlankOrTitle:
	default:
		return invalid("section %q: unknown stop rule %q", s.Key, s.Stop)
	}
	if s.Variable {
		if s.HeaderOffset != 0 {
			return invalid("section %q: variable blocks have no header row", s.Key)
		}
		if s.DataOffset < 1 {
			return invalid("section %q: data offset must be >= 1", s.Key)
		}
		if s.LeadLabel == "" || s.LeadField == "" || s.TrailPrefix == "" || s.TrailField == "" {
			return invalid("section %q: variable block needs lead and trail names", s.Key)
		}
		return nil
	}
	if s.HeaderOffset < 1 || s.DataOffset <= s.HeaderOffset {
		return invalid("section %q: need 1 <= header offset < data offset, got %d/%d",
			s.Key, s.HeaderOffset, s.DataOffset)
	}
	if len(s.Columns) == 0 {
		return invalid("section %q: no columns", s.Key)
	}
	fields := make(map[string]bool)
	labels := make(map[string]bool)
	for _, c := range s.Columns {
		if c.Field == "" || c.Label == "" {
			return invalid("section %q: column with empty field or label", s.Key)
		}
		if fields[c.Field] || labels[c.Label] {
			return invalid("section %q: duplicate column %q/%q", s.Key, c.Field, c.Label)
		}
		fields[c.Field] = true
		labels[c.Label] = true
		switch c.Kind {
		case KindText, KindNumber, KindAny:
		default:
			return invalid("section %q: column %q has unknown kind %q", s.Key, c.Field, c.Kind)
		}
	}
	return nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidLayout, fmt.Sprintf(format, args...))
}
