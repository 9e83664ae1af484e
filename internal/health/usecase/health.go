package usecase

import (
	"context"
	"errors"
	"log/slog"
	"path"
	"strings"

	"github.com/shandysiswandi/healthsheet/internal/health/entity"
	"github.com/shandysiswandi/healthsheet/internal/health/sheet"
	"github.com/shandysiswandi/healthsheet/internal/pkg/pkgerror"
)

// Upload runs the sheet pipeline on an uploaded workbook and, on success,
// replaces the user's dataset with the result.
func (u *Usecase) Upload(ctx context.Context, in UploadInput) (UploadResult, error) {
	if u.records == nil || u.id == nil {
		return UploadResult{}, pkgerror.NewServer(errors.New("missing dependency"))
	}

	if err := sheet.CheckFilename(in.Filename); err != nil {
		return UploadResult{}, mapSheetErr(err)
	}

	records, err := u.pipeline.Run(in.Data)
	if err != nil {
		slog.WarnContext(ctx, "upload rejected", "username", in.Username, "filename", in.Filename, "error", err)
		return UploadResult{}, mapSheetErr(err)
	}

	meta := entity.UploadMeta{
		ID:          u.id.Generate(),
		Filename:    path.Base(in.Filename),
		RecordCount: len(records),
		UploadedAt:  u.clock.Now(),
	}

	previous, err := u.records.Replace(ctx, in.Username, entity.Dataset{Meta: meta, Records: records})
	if err != nil {
		return UploadResult{}, normalizeErr(err)
	}

	u.publishReplaced(ctx, in.Username, meta, previous)

	return UploadResult{Meta: meta, Records: records}, nil
}

func (u *Usecase) publishReplaced(ctx context.Context, username string, meta entity.UploadMeta, previous entity.Dataset) {
	if u.events == nil || u.runner == nil {
		return
	}

	event := entity.DatasetReplacedEvent{
		EventID:     u.id.Generate(),
		Username:    username,
		UploadID:    meta.ID,
		Filename:    meta.Filename,
		RecordCount: meta.RecordCount,
		Previous:    previous.Meta.RecordCount,
		OccurredAt:  meta.UploadedAt,
	}

	scheduled := u.runner.Go(u.rootCtx, func(ctx context.Context) error {
		if err := u.events.Publish(ctx, event); err != nil {
			slog.WarnContext(ctx, "failed to publish event", "upload_id", event.UploadID, "event_id", event.EventID, "error", err)
		}
		return nil
	})
	if !scheduled {
		slog.WarnContext(ctx, "event not scheduled", "upload_id", event.UploadID, "event_id", event.EventID)
	}
}

// Data returns the latest dataset of username; Records is empty, not nil, when
// nothing was uploaded.
func (u *Usecase) Data(ctx context.Context, username string) (DataResult, error) {
	dataset, err := u.records.Fetch(ctx, username)
	if err != nil {
		return DataResult{}, normalizeErr(err)
	}

	records := dataset.Records
	if records == nil {
		records = []entity.Record{}
	}

	return DataResult{Meta: dataset.Meta, Records: records}, nil
}

// Export encodes the latest dataset of username back into a workbook.
func (u *Usecase) Export(ctx context.Context, username string) (ExportResult, error) {
	dataset, err := u.records.Fetch(ctx, username)
	if err != nil {
		return ExportResult{}, normalizeErr(err)
	}

	if dataset.Empty() {
		return ExportResult{}, pkgerror.NewBusiness("no data uploaded yet", pkgerror.CodeNotFound)
	}

	data, err := sheet.Encode(dataset.Records)
	if err != nil {
		return ExportResult{}, pkgerror.NewServer(err)
	}

	return ExportResult{
		Filename:    exportFilename(dataset.Meta.Filename),
		ContentType: sheet.ContentType,
		Data:        data,
	}, nil
}

func exportFilename(uploaded string) string {
	stem := strings.TrimSuffix(uploaded, path.Ext(uploaded))
	if stem == "" {
		stem = "datos"
	}
	return stem + "_normalizado" + sheet.Extension
}
