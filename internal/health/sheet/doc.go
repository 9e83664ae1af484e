// Package sheet turns an uploaded health measurement workbook into normalized records.
//
// The pipeline runs four stages and stops at the first problem:
//   - Decoder: bytes to a Table of trimmed cell text (structure only).
//   - Validator: required columns present, numeric cells coerce to their kind.
//   - Normalizer: drops fully blank rows, rewrites dates to YYYY-MM-DD.
//   - Exporter: one entity.Record per surviving row, in sheet order.
//
// Every failure is an *Error whose Kind is one of the Err* sentinels, so callers
// can classify it with errors.Is.
package sheet
