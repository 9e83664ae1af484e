package sheet

import (
	"fmt"

	"github.com/shandysiswandi/healthsheet/internal/health/entity"
	"github.com/xuri/excelize/v2"
)

// ContentType is the media type of xlsx workbooks.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

const exportSheet = "Datos"

// Encode writes records into a new workbook: the health schema header on row 1
// and one row per record below it. Null numbers are left empty.
func Encode(records []entity.Record) ([]byte, error) {
	f := excelize.NewFile()
	defer func() {
		_ = f.Close()
	}()

	if err := f.SetSheetName(f.GetSheetName(0), exportSheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	cols := HealthSchema().Columns()
	header := make([]any, len(cols))
	for i, col := range cols {
		header[i] = col.Name
	}
	if err := f.SetSheetRow(exportSheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}

	for i, rec := range records {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}

		row := []any{rec.Date, intCell(rec.Systolic), intCell(rec.Diastolic), intCell(rec.Glucose), floatCell(rec.Weight)}
		if err := f.SetSheetRow(exportSheet, cell, &row); err != nil {
			return nil, fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	if err := f.SetColWidth(exportSheet, "A", "E", 18); err != nil {
		return nil, fmt.Errorf("set column width: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}

	return buf.Bytes(), nil
}

func intCell(v *int64) any {
	if v == nil {
		return nil
	}
	return *v
}

func floatCell(v *float64) any {
	if v == nil {
		return nil
	}
	return *v
}
