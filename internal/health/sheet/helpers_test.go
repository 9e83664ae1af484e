package sheet

import (
	"testing"

	"github.com/shandysiswandi/healthsheet/internal/health/entity"
	"github.com/xuri/excelize/v2"
)

//nolint:gochecknoglobals // test fixture
var header = []any{
	entity.ColumnDate,
	entity.ColumnSystolic,
	entity.ColumnDiastolic,
	entity.ColumnGlucose,
	entity.ColumnWeight,
}

// buildWorkbook writes rows starting at A1 of the first sheet. A nil row is
// left untouched so it reads back as a blank row.
func buildWorkbook(t *testing.T, rows ...[]any) []byte {
	t.Helper()

	f := excelize.NewFile()
	defer func() {
		_ = f.Close()
	}()

	for i, row := range rows {
		if row == nil {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("cell name: %v", err)
		}
		if err := f.SetSheetRow("Sheet1", cell, &row); err != nil {
			t.Fatalf("set row %d: %v", i+1, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("write workbook: %v", err)
	}
	return buf.Bytes()
}

func without(cols []any, name string) []any {
	out := make([]any, 0, len(cols))
	for _, c := range cols {
		if c != name {
			out = append(out, c)
		}
	}
	return out
}

func i64(v int64) *int64 {
	return &v
}

func f64(v float64) *float64 {
	return &v
}
