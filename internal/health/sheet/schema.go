package sheet

import (
	"slices"

	"github.com/shandysiswandi/healthsheet/internal/health/entity"
)

// Kind is the value kind a column holds.
type Kind int

const (
	KindDate Kind = iota + 1
	KindInteger
	KindFloat
)

func (k Kind) String() string {
	switch k {
	case KindDate:
		return "date"
	case KindInteger:
		return "integer"
	case KindFloat:
		return "number"
	default:
		return "unknown"
	}
}

// Column declares one required column.
type Column struct {
	Name     string
	Kind     Kind
	Nullable bool
}

// Schema is an immutable, ordered set of required columns.
type Schema struct {
	columns []Column
}

// NewSchema copies cols into a new Schema.
func NewSchema(cols ...Column) Schema {
	return Schema{columns: slices.Clone(cols)}
}

// Columns returns a copy of the columns in declaration order.
func (s Schema) Columns() []Column {
	return slices.Clone(s.columns)
}

// Len is the number of columns.
func (s Schema) Len() int {
	return len(s.columns)
}

//nolint:gochecknoglobals // immutable, built once
var healthSchema = NewSchema(
	Column{Name: entity.ColumnDate, Kind: KindDate},
	Column{Name: entity.ColumnSystolic, Kind: KindInteger, Nullable: true},
	Column{Name: entity.ColumnDiastolic, Kind: KindInteger, Nullable: true},
	Column{Name: entity.ColumnGlucose, Kind: KindInteger, Nullable: true},
	Column{Name: entity.ColumnWeight, Kind: KindFloat, Nullable: true},
)

// HealthSchema is the fixed schema of the measurement sheet.
func HealthSchema() Schema {
	return healthSchema
}
