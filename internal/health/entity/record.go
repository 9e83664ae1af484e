package entity

// Column names of the health measurement sheet, in schema order.
const (
	ColumnDate      = "Fecha"
	ColumnSystolic  = "PA Sistólica"
	ColumnDiastolic = "PA Diastólica"
	ColumnGlucose   = "Glucosa (mg/dL)"
	ColumnWeight    = "Peso (kg)"
)

// Record is one normalized spreadsheet row. Nil numbers are cells left empty.
//
// Field order matches the column order so JSON keeps the sheet layout.
type Record struct {
	Date      string   `json:"Fecha"`
	Systolic  *int64   `json:"PA Sistólica"`
	Diastolic *int64   `json:"PA Diastólica"`
	Glucose   *int64   `json:"Glucosa (mg/dL)"`
	Weight    *float64 `json:"Peso (kg)"`
}

// Clone returns a deep copy so callers never share number pointers.
func (r Record) Clone() Record {
	return Record{
		Date:      r.Date,
		Systolic:  cloneInt(r.Systolic),
		Diastolic: cloneInt(r.Diastolic),
		Glucose:   cloneInt(r.Glucose),
		Weight:    cloneFloat(r.Weight),
	}
}

// CloneRecords deep-copies a record sequence, preserving order.
func CloneRecords(in []Record) []Record {
	if in == nil {
		return nil
	}

	out := make([]Record, len(in))
	for i, rec := range in {
		out[i] = rec.Clone()
	}
	return out
}

func cloneInt(v *int64) *int64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

func cloneFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
