package sheet

import "github.com/shandysiswandi/healthsheet/internal/health/entity"

//nolint:gochecknoglobals // read-only
var recordSetters = map[string]func(rec *entity.Record, v Value){
	entity.ColumnDate: func(rec *entity.Record, v Value) {
		rec.Date = v.Text
	},
	entity.ColumnSystolic: func(rec *entity.Record, v Value) {
		rec.Systolic = intOrNil(v)
	},
	entity.ColumnDiastolic: func(rec *entity.Record, v Value) {
		rec.Diastolic = intOrNil(v)
	},
	entity.ColumnGlucose: func(rec *entity.Record, v Value) {
		rec.Glucose = intOrNil(v)
	},
	entity.ColumnWeight: func(rec *entity.Record, v Value) {
		rec.Weight = floatOrNil(v)
	},
}

// Exporter converts normalized tables into records.
type Exporter struct{}

// NewExporter builds an Exporter.
func NewExporter() *Exporter {
	return &Exporter{}
}

// Export returns one record per row, in row order. Columns without a record
// field are skipped.
func (e *Exporter) Export(t *TypedTable) []entity.Record {
	cols := t.Schema.Columns()
	records := make([]entity.Record, 0, len(t.Rows))

	for _, row := range t.Rows {
		var rec entity.Record
		for i, col := range cols {
			if set, ok := recordSetters[col.Name]; ok {
				set(&rec, row.Values[i])
			}
		}
		records = append(records, rec)
	}

	return records
}

func intOrNil(v Value) *int64 {
	if !v.Valid {
		return nil
	}
	n := v.Int
	return &n
}

func floatOrNil(v Value) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float
	return &f
}
