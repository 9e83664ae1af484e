package sheet

import (
	"errors"
	"math"
	"strconv"
)

// maxExactInt is the largest integer a float64 holds without rounding.
const maxExactInt = 1 << 53

// Value is a typed cell. Valid is false for null cells.
type Value struct {
	Valid bool
	Int   int64
	Float float64
	// Text holds the raw date text before normalization and YYYY-MM-DD after.
	Text string
	// FromText marks a date cell stored as a string that reads as a number.
	FromText bool
}

// TypedRow is a validated row; Values follow the schema column order.
type TypedRow struct {
	Number int
	Blank  bool
	Values []Value
}

// TypedTable is a table whose cells match the schema.
type TypedTable struct {
	Schema   Schema
	Rows     []TypedRow
	Date1904 bool
}

// Validator checks a Table against a Schema.
type Validator struct {
	schema Schema
}

// NewValidator builds a Validator for schema.
func NewValidator(schema Schema) *Validator {
	return &Validator{schema: schema}
}

// Validate requires every schema column to be present and every numeric cell
// to be null or of the declared kind. A table without data rows is valid.
func (v *Validator) Validate(t *Table) (*TypedTable, error) {
	cols := v.schema.Columns()

	index := make([]int, len(cols))
	var missing []string
	for i, col := range cols {
		index[i] = t.ColumnIndex(col.Name)
		if index[i] < 0 {
			missing = append(missing, col.Name)
		}
	}
	if len(missing) > 0 {
		return nil, newMissingColumnsError(missing)
	}

	out := &TypedTable{
		Schema:   v.schema,
		Rows:     make([]TypedRow, 0, len(t.Rows)),
		Date1904: t.Date1904,
	}

	for _, row := range t.Rows {
		typed := TypedRow{
			Number: row.Number,
			Blank:  row.Blank(),
			Values: make([]Value, len(cols)),
		}

		for i, col := range cols {
			raw := row.Cells[index[i]]
			if raw == "" {
				if !col.Nullable && !typed.Blank && col.Kind != KindDate {
					return nil, newMissingValueError(col.Name, row.Number)
				}
				continue
			}

			val, err := coerce(col.Kind, raw)
			if err != nil {
				return nil, newTypeMismatchError(col.Name, row.Number, raw, err)
			}
			if col.Kind == KindDate {
				val.FromText = row.IsText(index[i])
			}
			typed.Values[i] = val
		}

		out.Rows = append(out.Rows, typed)
	}

	return out, nil
}

func coerce(kind Kind, raw string) (Value, error) {
	switch kind {
	case KindDate:
		// checked by the normalizer
		return Value{Valid: true, Text: raw}, nil
	case KindInteger:
		n, err := parseInteger(raw)
		if err != nil {
			return Value{}, err
		}
		return Value{Valid: true, Int: n}, nil
	case KindFloat:
		f, err := parseFloat(raw)
		if err != nil {
			return Value{}, err
		}
		return Value{Valid: true, Float: f}, nil
	default:
		return Value{}, errors.New("unsupported column kind")
	}
}

var (
	errNotInteger = errors.New("expected an integer")
	errNotNumber  = errors.New("expected a number")
)

// parseInteger accepts integer text and whole-valued numbers such as "95.0".
func parseInteger(raw string) (int64, error) {
	if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return n, nil
	}

	f, err := parseFloat(raw)
	if err != nil || f != math.Trunc(f) || math.Abs(f) > maxExactInt {
		return 0, errNotInteger
	}
	return int64(f), nil
}

// parseFloat accepts finite decimal numbers only.
func parseFloat(raw string) (float64, error) {
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, errNotNumber
	}
	return f, nil
}
