package inputgrid

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/ukaji3/inputgrid-go/pkg/inputgrid/grid"
	"github.com/ukaji3/inputgrid-go/pkg/inputgrid/layout"
	"github.com/ukaji3/inputgrid-go/pkg/inputgrid/mapper"
	"github.com/ukaji3/inputgrid-go/pkg/inputgrid/models"
	"github.com/ukaji3/inputgrid-go/pkg/inputgrid/parser"
	"github.com/ukaji3/inputgrid-go/pkg/inputgrid/writer"
	"github.com/xuri/excelize/v2"
)

// Codec writes and reads the sections of one layout, in layout order.
// A Codec holds no state between calls.
type Codec struct {
	layout *layout.Layout
	log    *slog.Logger
	strict bool
}

// New returns a codec configured by opts.
func New(opts Options) (*Codec, error) {
	l, err := opts.ResolvedLayout()
	if err != nil {
		return nil, err
	}
	return &Codec{layout: l, log: opts.ResolvedLogger(), strict: opts.IsStrict()}, nil
}

// Layout returns the codec's layout.
func (c *Codec) Layout() *layout.Layout {
	return c.layout
}

// Encode writes typed input to a new workbook at path.
func Encode(path string, in *models.Input, opts Options) error {
	if in == nil {
		return fmt.Errorf("encode %s: %w", path, ErrNilInput)
	}
	return EncodeRecords(path, in.Records(), opts)
}

// EncodeRecords writes a record set to a new workbook at path.
func EncodeRecords(path string, set models.RecordSet, opts Options) error {
	c, err := New(opts)
	if err != nil {
		return err
	}
	return c.EncodeRecords(path, set)
}

// Decode reads the workbook at path.
func Decode(path string, opts Options) (*Result, error) {
	c, err := New(opts)
	if err != nil {
		return nil, err
	}
	return c.Decode(path)
}

// DecodeReader reads a workbook from r.
func DecodeReader(r io.Reader, opts Options) (*Result, error) {
	c, err := New(opts)
	if err != nil {
		return nil, err
	}
	return c.DecodeReader(r)
}

// EncodeRecords writes set to a new workbook at path. The workbook is
// closed on every path. When writing fails part-way, what was written is
// still saved and an *EncodeError with Partial set is returned; nothing is
// rolled back.
func (c *Codec) EncodeRecords(path string, set models.RecordSet) (err error) {
	f := excelize.NewFile()
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	section, werr := c.encode(f, set)
	if werr != nil {
		saveErr := f.SaveAs(path)
		c.log.Error("input grid partially written", "path", path, "section", section, "error", werr)
		return NewEncodeError(path, section, werr, saveErr == nil)
	}
	if err := f.SaveAs(path); err != nil {
		return NewEncodeError(path, "", err, true)
	}
	c.log.Info("input grid written", "path", path, "sheet", c.layout.Sheet)
	return nil
}

// EncodeFile writes set into f, creating the layout's sheet if needed.
func (c *Codec) EncodeFile(f *excelize.File, set models.RecordSet) error {
	section, err := c.encode(f, set)
	if err != nil && section != "" {
		return fmt.Errorf("section %q: %w", section, err)
	}
	return err
}

// encode returns the key of the section being written when it fails.
func (c *Codec) encode(f *excelize.File, set models.RecordSet) (string, error) {
	for key := range set {
		if _, ok := c.layout.Section(key); !ok {
			c.log.Warn("records for unknown section ignored", "section", key)
		}
	}

	sheet, err := grid.NewSheet(f, c.layout.Sheet)
	if err != nil {
		return "", err
	}
	enc := writer.New(sheet, c.layout)
	if err := enc.WriteNote(); err != nil {
		return "", err
	}

	cur := grid.NewCursor(c.layout.StartRow)
	for i := range c.layout.Sections {
		s := &c.layout.Sections[i]
		if i > 0 {
			cur.Advance(s.SpacingBefore)
		}
		title := cur.Position()
		if err := enc.Write(cur, s, set[s.Key]); err != nil {
			return s.Key, err
		}
		c.log.Debug("section written", "section", s.Key, "title_row", title, "rows", len(set[s.Key]))
	}
	return "", enc.Finish()
}

// Decode opens the workbook at path and decodes it.
func (c *Codec) Decode(path string) (*Result, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	defer f.Close()
	return c.DecodeFile(f)
}

// DecodeReader decodes a workbook read from r.
func (c *Codec) DecodeReader(r io.Reader) (*Result, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	defer f.Close()
	return c.DecodeFile(f)
}

// DecodeFile decodes the layout's sheet of an open workbook.
func (c *Codec) DecodeFile(f *excelize.File) (*Result, error) {
	idx, err := f.GetSheetIndex(c.layout.Sheet)
	if err != nil {
		return nil, err
	}
	if idx < 0 {
		return nil, fmt.Errorf("%w: %q", ErrSheetNotFound, c.layout.Sheet)
	}
	raw, err := grid.ReadRaw(f, c.layout.Sheet)
	if err != nil {
		return nil, err
	}
	return c.DecodeGrid(raw)
}

// DecodeGrid decodes every section of a raw grid. Sections are found by
// title, so their order in the grid does not matter. A missing section is
// fatal. In strict mode the first row that fails coercion is returned as a
// *TypeMismatchError; in lenient mode it is skipped and reported.
func (c *Codec) DecodeGrid(raw *grid.Raw) (*Result, error) {
	res := &Result{
		Records:  make(models.RecordSet, len(c.layout.Sections)),
		Sections: c.layout.Keys(),
	}
	sc := parser.NewScanner(raw, c.layout)
	for i := range c.layout.Sections {
		s := &c.layout.Sections[i]
		b, ok := sc.Locate(s)
		if !ok {
			return nil, &SectionNotFoundError{Sheet: c.layout.Sheet, Title: s.Title}
		}

		records, diags := parser.NewDecoder(b, mapper.New(s), c.layout.MarkerColumn).Decode()
		if len(diags) > 0 && c.strict {
			return nil, diags[0].Err
		}
		for _, d := range diags {
			c.log.Warn("row skipped", "section", d.Section, "row", d.Row, "error", d.Err)
		}
		res.Records[s.Key] = records
		res.Diagnostics = append(res.Diagnostics, diags...)
		c.log.Debug("section decoded", "section", s.Key, "title_row", b.TitleRow, "rows", len(records))
	}
	return res, nil
}
