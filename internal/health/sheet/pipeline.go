package sheet

import (
	"fmt"
	"path"
	"strings"

	"github.com/shandysiswandi/healthsheet/internal/health/entity"
)

// Extension is the only accepted upload file extension.
const Extension = ".xlsx"

// CheckFilename rejects names that do not end in .xlsx (any case).
func CheckFilename(name string) error {
	if !strings.EqualFold(path.Ext(strings.TrimSpace(name)), Extension) {
		return newFilenameError(name)
	}
	return nil
}

// Pipeline chains decode, validate, normalize and export.
type Pipeline struct {
	decoder    *Decoder
	validator  *Validator
	normalizer *Normalizer
	exporter   *Exporter
}

// NewPipeline builds a pipeline for schema.
func NewPipeline(schema Schema, opts ...DecoderOption) *Pipeline {
	return &Pipeline{
		decoder:    NewDecoder(opts...),
		validator:  NewValidator(schema),
		normalizer: NewNormalizer(),
		exporter:   NewExporter(),
	}
}

// Run processes an uploaded workbook. The first failing stage aborts the run
// with an *Error.
func (p *Pipeline) Run(data []byte) (records []entity.Record, err error) {
	defer func() {
		if rvr := recover(); rvr != nil {
			records = nil
			err = NewUnexpectedError(fmt.Errorf("panic: %v", rvr))
		}
	}()

	table, err := p.decoder.Decode(data)
	if err != nil {
		return nil, err
	}

	typed, err := p.validator.Validate(table)
	if err != nil {
		return nil, err
	}

	normalized, err := p.normalizer.Normalize(typed)
	if err != nil {
		return nil, err
	}

	return p.exporter.Export(normalized), nil
}
