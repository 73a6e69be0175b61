package parser

import (
	"encoding/json"
	"errors"
	"fmt"
	"iter"

	"github.com/ukaji3/inputgrid-go/pkg/inputgrid/mapper"
	"github.com/ukaji3/inputgrid-go/pkg/inputgrid/models"
)

// Diagnostic records a data row that could not be decoded. The row is
// skipped; the rest of the section is still decoded.
type Diagnostic struct {
	Section string `json:"section"`
	Row     int    `json:"row"`
	Err     error  `json:"-"`
}

func (d Diagnostic) Error() string {
	return fmt.Sprintf("section %q row %d: %v", d.Section, d.Row, d.Err)
}

func (d Diagnostic) Unwrap() error {
	return d.Err
}

// MarshalJSON writes the error as its message.
func (d Diagnostic) MarshalJSON() ([]byte, error) {
	msg := ""
	if d.Err != nil {
		msg = d.Err.Error()
	}
	return json.Marshal(struct {
		Section string `json:"section"`
		Row     int    `json:"row"`
		Error   string `json:"error"`
	}{d.Section, d.Row, msg})
}

// Decoder turns the rows of a located block into records.
type Decoder struct {
	block     *Block
	mapper    *mapper.Mapper
	markerCol int
}

// NewDecoder returns a decoder for block b. markerCol is the 1-based column
// of the block's first cell, used to report failing positions.
func NewDecoder(b *Block, m *mapper.Mapper, markerCol int) *Decoder {
	return &Decoder{block: b, mapper: m, markerCol: markerCol}
}

// Rows yields one record per data row in sheet order. A row that fails
// coercion yields a nil record and a *mapper.TypeMismatchError. The
// sequence can be ranged over any number of times.
//
// Header labels the mapper does not know are kept as pass-through fields
// named after the label. Cells missing from a short row decode to nil.
func (d *Decoder) Rows() iter.Seq2[models.Record, error] {
	return func(yield func(models.Record, error) bool) {
		for i, cells := range d.block.Rows {
			rec, err := d.decodeRow(d.block.FirstRow+i, cells)
			if !yield(rec, err) {
				return
			}
		}
	}
}

func (d *Decoder) decodeRow(row int, cells []string) (models.Record, error) {
	rec := make(models.Record, len(d.block.Header))
	for j, label := range d.block.Header {
		c := d.mapper.Column(label)
		var cell string
		if j < len(cells) {
			cell = cells[j]
		}
		v, err := mapper.CoerceIn(c, cell)
		if err != nil {
			var mismatch *mapper.TypeMismatchError
			if errors.As(err, &mismatch) {
				mismatch.Section = d.block.Section
				mismatch.Row = row
				mismatch.Column = d.markerCol + j
			}
			return nil, err
		}
		rec[c.Field] = v
	}
	return rec, nil
}

// Decode collects every decodable row and one diagnostic per skipped row.
func (d *Decoder) Decode() ([]models.Record, []Diagnostic) {
	records := make([]models.Record, 0, len(d.block.Rows))
	var diags []Diagnostic
	i := 0
	for rec, err := range d.Rows() {
		if err != nil {
			diags = append(diags, Diagnostic{
				Section: d.block.Section,
				Row:     d.block.FirstRow + i,
				Err:     err,
			})
		} else {
			records = append(records, rec)
		}
		i++
	}
	return records, diags
}
