package sheet

import (
	"errors"
	"fmt"
	"strings"
)

// Error kinds. Match with errors.Is.
var (
	ErrFilename   = errors.New("invalid filename")
	ErrDecode     = errors.New("invalid spreadsheet")
	ErrSchema     = errors.New("schema violation")
	ErrEmptyData  = errors.New("no valid data")
	ErrDateFormat = errors.New("invalid date")
	ErrUnexpected = errors.New("unexpected error")
)

// Error is a classified failure of the upload pipeline.
type Error struct {
	Kind    error
	Reason  string
	Column  string
	Row     int // 1-based worksheet row, 0 when the failure is not tied to a row
	Value   string
	Missing []string
	Err     error
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Reason)

	if len(e.Missing) > 0 {
		b.WriteString(": ")
		b.WriteString(strings.Join(e.Missing, ", "))
	}
	if e.Column != "" {
		fmt.Fprintf(&b, " in column %q", e.Column)
	}
	if e.Row > 0 {
		fmt.Fprintf(&b, " at row %d", e.Row)
	}
	if e.Value != "" {
		fmt.Fprintf(&b, ": %q", e.Value)
	}
	if e.Err != nil {
		if e.Kind == ErrSchema || e.Kind == ErrDateFormat {
			fmt.Fprintf(&b, " (%v)", e.Err)
		} else {
			fmt.Fprintf(&b, ": %v", e.Err)
		}
	}

	return b.String()
}

// Is reports whether target is the kind of e.
func (e *Error) Is(target error) bool {
	return target == e.Kind
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindName is a stable, lower-case name of the kind for transport.
func (e *Error) KindName() string {
	switch e.Kind {
	case ErrFilename:
		return "filename"
	case ErrDecode:
		return "decode"
	case ErrSchema:
		return "schema"
	case ErrEmptyData:
		return "empty_data"
	case ErrDateFormat:
		return "date_format"
	default:
		return "unexpected"
	}
}

func newFilenameError(name string) *Error {
	return &Error{Kind: ErrFilename, Reason: "file must be an Excel workbook (.xlsx)", Value: name}
}

func newDecodeError(err error) *Error {
	return &Error{Kind: ErrDecode, Reason: "cannot read spreadsheet", Err: err}
}

func newMissingColumnsError(missing []string) *Error {
	return &Error{Kind: ErrSchema, Reason: "missing required columns", Missing: missing}
}

func newTypeMismatchError(column string, row int, value string, err error) *Error {
	return &Error{Kind: ErrSchema, Reason: "type mismatch", Column: column, Row: row, Value: value, Err: err}
}

func newMissingValueError(column string, row int) *Error {
	return &Error{Kind: ErrSchema, Reason: "missing value", Column: column, Row: row}
}

func newEmptyDataError() *Error {
	return &Error{Kind: ErrEmptyData, Reason: "no valid data: the sheet has no non-blank rows"}
}

func newDateFormatError(column string, row int, value string, err error) *Error {
	return &Error{Kind: ErrDateFormat, Reason: "invalid date", Column: column, Row: row, Value: value, Err: err}
}

// NewUnexpectedError classifies err as a failure nothing else anticipated.
func NewUnexpectedError(err error) *Error {
	return &Error{Kind: ErrUnexpected, Reason: "unexpected error", Err: err}
}
