package sheet

import (
	"errors"
	"reflect"
	"testing"

	"github.com/shandysiswandi/healthsheet/internal/health/entity"
)

func tableOf(cols []string, rows ...[]string) *Table {
	t := &Table{Columns: cols}
	for i, cells := range rows {
		t.Rows = append(t.Rows, Row{Number: i + 2, Cells: cells})
	}
	return t
}

//nolint:gochecknoglobals // test fixture
var healthColumns = []string{
	entity.ColumnDate, entity.ColumnSystolic, entity.ColumnDiastolic, entity.ColumnGlucose, entity.ColumnWeight,
}

func TestValidateMissingEachColumn(t *testing.T) {
	for _, col := range healthColumns {
		t.Run(col, func(t *testing.T) {
			var cols []string
			for _, c := range healthColumns {
				if c != col {
					cols = append(cols, c)
				}
			}

			_, err := NewValidator(HealthSchema()).Validate(tableOf(cols))
			if !errors.Is(err, ErrSchema) {
				t.Fatalf("expected ErrSchema, got %v", err)
			}

			var serr *Error
			if !errors.As(err, &serr) {
				t.Fatalf("expected *Error, got %T", err)
			}
			if !reflect.DeepEqual(serr.Missing, []string{col}) {
				t.Fatalf("expected missing %q, got %q", col, serr.Missing)
			}
			if serr.Reason != "missing required columns" {
				t.Fatalf("unexpected reason: %q", serr.Reason)
			}
		})
	}
}

func TestValidateNamesAllMissingColumns(t *testing.T) {
	_, err := NewValidator(HealthSchema()).Validate(tableOf([]string{entity.ColumnDate, "Notas"}))

	var serr *Error
	if !errors.As(err, &serr) {
		t.Fatalf("expected *Error, got %v", err)
	}
	want := []string{entity.ColumnSystolic, entity.ColumnDiastolic, entity.ColumnGlucose, entity.ColumnWeight}
	if !reflect.DeepEqual(serr.Missing, want) {
		t.Fatalf("unexpected missing: %q", serr.Missing)
	}

	msg := "missing required columns: PA Sistólica, PA Diastólica, Glucosa (mg/dL), Peso (kg)"
	if err.Error() != msg {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}

func TestValidateTypeMismatch(t *testing.T) {
	tests := []struct {
		name   string
		row    []string
		column string
	}{
		{"text in integer", []string{"2024-03-01", "120", "80", "high", "70.5"}, entity.ColumnGlucose},
		{"fraction in integer", []string{"2024-03-01", "120.5", "80", "95", "70.5"}, entity.ColumnSystolic},
		{"text in float", []string{"2024-03-01", "120", "80", "95", "setenta"}, entity.ColumnWeight},
		{"nan in float", []string{"2024-03-01", "120", "80", "95", "NaN"}, entity.ColumnWeight},
		{"inf in integer", []string{"2024-03-01", "120", "Inf", "95", "70"}, entity.ColumnDiastolic},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := tableOf(healthColumns,
				[]string{"2024-02-29", "110", "70", "90", "71"},
				tt.row,
			)

			_, err := NewValidator(HealthSchema()).Validate(table)
			if !errors.Is(err, ErrSchema) {
				t.Fatalf("expected ErrSchema, got %v", err)
			}

			var serr *Error
			if !errors.As(err, &serr) {
				t.Fatalf("expected *Error, got %T", err)
			}
			if serr.Column != tt.column || serr.Row != 3 || serr.Reason != "type mismatch" {
				t.Fatalf("unexpected error detail: %+v", serr)
			}
		})
	}
}

func TestValidateCoercesValues(t *testing.T) {
	table := tableOf(append(healthColumns, "Notas"),
		[]string{"45352", "120", "80.0", "", "70.5", "x"},
		[]string{"", "", "", "", "", ""},
	)

	typed, err := NewValidator(HealthSchema()).Validate(table)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if len(typed.Rows) != 2 {
		t.Fatalf("expected both rows kept, got %d", len(typed.Rows))
	}

	want := []Value{
		{Valid: true, Text: "45352"},
		{Valid: true, Int: 120},
		{Valid: true, Int: 80},
		{},
		{Valid: true, Float: 70.5},
	}
	if !reflect.DeepEqual(typed.Rows[0].Values, want) {
		t.Fatalf("unexpected values:\n got %+v\nwant %+v", typed.Rows[0].Values, want)
	}
	if typed.Rows[0].Blank || !typed.Rows[1].Blank {
		t.Fatalf("unexpected blank flags")
	}
}

func TestValidateEmptyTableIsValid(t *testing.T) {
	typed, err := NewValidator(HealthSchema()).Validate(tableOf(healthColumns))
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if len(typed.Rows) != 0 {
		t.Fatalf("expected no rows")
	}
}

func TestValidateNonNullableNumber(t *testing.T) {
	schema := NewSchema(
		Column{Name: "Fecha", Kind: KindDate},
		Column{Name: "Pasos", Kind: KindInteger},
	)

	_, err := NewValidator(schema).Validate(tableOf([]string{"Fecha", "Pasos"},
		[]string{"2024-03-01", ""},
	))

	var serr *Error
	if !errors.As(err, &serr) || serr.Reason != "missing value" || serr.Column != "Pasos" {
		t.Fatalf("expected missing value error, got %v", err)
	}
}

func TestParseInteger(t *testing.T) {
	tests := []struct {
		in   string
		want int64
		ok   bool
	}{
		{"95", 95, true},
		{"-3", -3, true},
		{"95.0", 95, true},
		{"1e2", 100, true},
		{"95.5", 0, false},
		{"abc", 0, false},
		{"1e300", 0, false},
	}

	for _, tt := range tests {
		got, err := parseInteger(tt.in)
		if (err == nil) != tt.ok || got != tt.want {
			t.Fatalf("parseInteger(%q) = %d, %v", tt.in, got, err)
		}
	}
}

func TestSchemaIsImmutable(t *testing.T) {
	cols := HealthSchema().Columns()
	cols[0].Name = "changed"

	if HealthSchema().Columns()[0].Name != entity.ColumnDate {
		t.Fatalf("schema was mutated through Columns()")
	}
	if HealthSchema().Len() != 5 {
		t.Fatalf("expected five columns")
	}
}
