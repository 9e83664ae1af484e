package sheet

import (
	"errors"
	"math"
	"strconv"
	"time"

	"github.com/xuri/excelize/v2"
)

// DateLayout is the canonical date format of exported records.
const DateLayout = "2006-01-02"

//nolint:gochecknoglobals // read-only
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04:05.999999999",
	time.RFC3339Nano,
	"2006/1/2",
	"2006/1/2 15:04",
	"2006/1/2 15:04:05",
	"1/2/2006",
	"1/2/2006 15:04",
	"1/2/2006 15:04:05",
}

var (
	errMissingDate = errors.New("date is required")
	errBadDate     = errors.New("not a recognised date")
)

// Normalizer drops blank rows and canonicalizes date cells.
type Normalizer struct{}

// NewNormalizer builds a Normalizer.
func NewNormalizer() *Normalizer {
	return &Normalizer{}
}

// Normalize returns a new table without fully blank rows and with every date
// rendered as YYYY-MM-DD. The input is left untouched.
func (n *Normalizer) Normalize(t *TypedTable) (*TypedTable, error) {
	cols := t.Schema.Columns()
	out := &TypedTable{
		Schema:   t.Schema,
		Rows:     make([]TypedRow, 0, len(t.Rows)),
		Date1904: t.Date1904,
	}

	for _, row := range t.Rows {
		if row.Blank {
			continue
		}

		values := make([]Value, len(row.Values))
		copy(values, row.Values)

		for i, col := range cols {
			if col.Kind != KindDate {
				continue
			}

			raw := values[i]
			if !raw.Valid {
				return nil, newDateFormatError(col.Name, row.Number, "", errMissingDate)
			}

			day, err := parseDateValue(raw, t.Date1904)
			if err != nil {
				return nil, newDateFormatError(col.Name, row.Number, raw.Text, err)
			}
			values[i] = Value{Valid: true, Text: day.Format(DateLayout)}
		}

		out.Rows = append(out.Rows, TypedRow{Number: row.Number, Values: values})
	}

	if len(out.Rows) == 0 {
		return nil, newEmptyDataError()
	}

	return out, nil
}

// parseDateValue reads text cells only as textual dates, so "2024" typed as
// text is not mistaken for a serial.
func parseDateValue(v Value, date1904 bool) (time.Time, error) {
	if v.FromText {
		return parseDateText(v.Text)
	}
	return ParseDate(v.Text, date1904)
}

const (
	// maxDateSerial is one past the 1900-system serial of 9999-12-31.
	maxDateSerial = 2958466
	// date1904Offset is the day difference between the 1900 and 1904 date systems.
	date1904Offset = 1462
)

// ParseDate reads an Excel serial date or a textual date. Serials lose their
// fraction so only the day remains; textual dates keep any time of day.
func ParseDate(raw string, date1904 bool) (time.Time, error) {
	if serial, err := strconv.ParseFloat(raw, 64); err == nil {
		return parseSerial(serial, date1904)
	}
	return parseDateText(raw)
}

// parseSerial rejects time-only values (below one day) and serials past 9999-12-31.
func parseSerial(serial float64, date1904 bool) (time.Time, error) {
	limit := float64(maxDateSerial)
	if date1904 {
		limit -= date1904Offset
	}
	if math.IsNaN(serial) || serial < 1 || serial >= limit {
		return time.Time{}, errBadDate
	}

	t, err := excelize.ExcelDateToTime(math.Floor(serial), date1904)
	if err != nil {
		return time.Time{}, errBadDate
	}
	return t, nil
}

func parseDateText(raw string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}

	return time.Time{}, errBadDate
}
