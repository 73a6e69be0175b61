// Package mapper maps record fields to the header labels shown in the grid
// and coerces values between records and cells.
package mapper

import (
	"strconv"
	"strings"

	"github.com/ukaji3/inputgrid-go/pkg/inputgrid/layout"
)

// Sentinel is the placeholder text for a not-applicable quantity.
const Sentinel = "-"

// Mapper is the field/label bijection of one section plus the coercion
// rules of its columns. Labels and fields it does not know pass through
// unchanged.
type Mapper struct {
	section  string
	columns  []layout.Column
	byField  map[string]int
	byLabel  map[string]int
	variable *layout.Section
}

// New builds the mapper of a section.
func New(s *layout.Section) *Mapper {
	m := &Mapper{
		section: s.Key,
		byField: make(map[string]int),
		byLabel: make(map[string]int),
	}
	if s.Variable {
		m.variable = s
		return m
	}
	m.columns = s.Columns
	for i, c := range s.Columns {
		m.byField[c.Field] = i
		m.byLabel[c.Label] = i
	}
	return m
}

// Section returns the key of the mapped section.
func (m *Mapper) Section() string {
	return m.section
}

// Columns returns the fixed column list in header order. Variable sections
// have none.
func (m *Mapper) Columns() []layout.Column {
	return m.columns
}

// ToDisplay returns the header label of a field.
func (m *Mapper) ToDisplay(field string) string {
	if m.variable != nil {
		if field == m.variable.LeadField {
			return m.variable.LeadLabel
		}
		if n, ok := trailIndex(field, m.variable.TrailField); ok {
			return m.variable.TrailPrefix + n
		}
		return field
	}
	if i, ok := m.byField[field]; ok {
		return m.columns[i].Label
	}
	return field
}

// ToField returns the field identifier of a header label.
func (m *Mapper) ToField(label string) string {
	if m.variable != nil {
		if label == m.variable.LeadLabel {
			return m.variable.LeadField
		}
		if n, ok := trailIndex(label, m.variable.TrailPrefix); ok {
			return m.variable.TrailField + n
		}
		return label
	}
	if i, ok := m.byLabel[label]; ok {
		return m.columns[i].Field
	}
	return label
}

// Column returns the column definition of a header label. Unknown labels
// get a pass-through column of KindAny.
func (m *Mapper) Column(label string) layout.Column {
	if i, ok := m.byLabel[label]; ok {
		return m.columns[i]
	}
	kind := layout.KindAny
	if m.variable != nil {
		kind = layout.KindText
	}
	return layout.Column{Field: m.ToField(label), Label: label, Kind: kind}
}

// Header synthesizes the variable-width header for rows of at most width
// cells: LeadLabel, TrailPrefix+"1" .. TrailPrefix+(width-1).
func (m *Mapper) Header(width int) []string {
	if m.variable == nil {
		labels := make([]string, len(m.columns))
		for i, c := range m.columns {
			labels[i] = c.Label
		}
		return labels
	}
	if width < 1 {
		return nil
	}
	labels := make([]string, width)
	labels[0] = m.variable.LeadLabel
	for i := 1; i < width; i++ {
		labels[i] = m.variable.TrailPrefix + strconv.Itoa(i)
	}
	return labels
}

// Fields returns the field identifiers matching Header(width).
func (m *Mapper) Fields(width int) []string {
	labels := m.Header(width)
	fields := make([]string, len(labels))
	for i, l := range labels {
		fields[i] = m.ToField(l)
	}
	return fields
}

// VariableField returns the field of the i-th cell (0-based) of a variable
// row: the lead field for 0, the trail field numbered i otherwise.
func (m *Mapper) VariableField(i int) string {
	if m.variable == nil {
		return ""
	}
	if i == 0 {
		return m.variable.LeadField
	}
	return m.variable.TrailField + strconv.Itoa(i)
}

// TrailPosition returns the 1-based position of a trailing field of a
// variable section.
func (m *Mapper) TrailPosition(field string) (int, bool) {
	if m.variable == nil {
		return 0, false
	}
	n, ok := trailIndex(field, m.variable.TrailField)
	if !ok {
		return 0, false
	}
	i, err := strconv.Atoi(n)
	return i, err == nil
}

// trailIndex reports whether s is prefix followed by a positive integer and
// returns the integer text.
func trailIndex(s, prefix string) (string, bool) {
	n, ok := strings.CutPrefix(s, prefix)
	if !ok || n == "" || n[0] == '0' {
		return "", false
	}
	for _, r := range n {
		if r < '0' || r > '9' {
			return "", false
		}
	}
	return n, true
}
