package sheet

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/unicode/norm"
)

// Decoder reads the first worksheet of an xlsx workbook.
type Decoder struct {
	unzipLimit int64
}

// DecoderOption configures a Decoder.
type DecoderOption func(*Decoder)

// WithUnzipSizeLimit caps the total uncompressed size of the workbook.
// Zero keeps the excelize default.
func WithUnzipSizeLimit(n int64) DecoderOption {
	return func(d *Decoder) {
		d.unzipLimit = n
	}
}

// NewDecoder builds a Decoder.
func NewDecoder(opts ...DecoderOption) *Decoder {
	d := &Decoder{}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Decode parses data as an xlsx workbook. The first row of the first sheet is
// the header; every following row is data, including blank ones.
func (d *Decoder) Decode(data []byte) (*Table, error) {
	if len(data) == 0 {
		return nil, newDecodeError(errors.New("file is empty"))
	}

	var opts excelize.Options
	if d.unzipLimit > 0 {
		opts.UnzipSizeLimit = d.unzipLimit
	}

	f, err := excelize.OpenReader(bytes.NewReader(data), opts)
	if err != nil {
		return nil, newDecodeError(err)
	}
	defer func() {
		_ = f.Close()
	}()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, newDecodeError(errors.New("workbook has no worksheets"))
	}

	rows, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, newDecodeError(fmt.Errorf("read sheet %q: %w", sheets[0], err))
	}

	date1904 := false
	if props, err := f.GetWorkbookProps(); err == nil && props.Date1904 != nil {
		date1904 = *props.Date1904
	}

	t := buildTable(rows, date1904)
	if err := markTextCells(f, sheets[0], t); err != nil {
		return nil, newDecodeError(err)
	}
	return t, nil
}

// markTextCells flags string cells whose content parses as a number, which
// the raw rows cannot tell apart from numeric cells.
func markTextCells(f *excelize.File, sheet string, t *Table) error {
	for i := range t.Rows {
		row := &t.Rows[i]
		for j, cell := range row.Cells {
			if cell == "" {
				continue
			}
			if _, err := strconv.ParseFloat(cell, 64); err != nil {
				continue
			}

			name, err := excelize.CoordinatesToCellName(j+1, row.Number)
			if err != nil {
				return err
			}
			typ, err := f.GetCellType(sheet, name)
			if err != nil {
				return fmt.Errorf("cell %s: %w", name, err)
			}

			switch typ {
			case excelize.CellTypeSharedString, excelize.CellTypeInlineString, excelize.CellTypeFormula:
				if row.TextCells == nil {
					row.TextCells = make([]bool, len(row.Cells))
				}
				row.TextCells[j] = true
			}
		}
	}
	return nil
}

func buildTable(rows [][]string, date1904 bool) *Table {
	t := &Table{Date1904: date1904}
	if len(rows) == 0 {
		return t
	}

	t.Columns = make([]string, len(rows[0]))
	for i, name := range rows[0] {
		t.Columns[i] = norm.NFC.String(strings.TrimSpace(name))
	}

	t.Rows = make([]Row, 0, len(rows)-1)
	for i, raw := range rows[1:] {
		cells := make([]string, len(t.Columns))
		for j := 0; j < len(cells) && j < len(raw); j++ {
			cells[j] = strings.TrimSpace(raw[j])
		}
		t.Rows = append(t.Rows, Row{Number: i + 2, Cells: cells})
	}

	return t
}
