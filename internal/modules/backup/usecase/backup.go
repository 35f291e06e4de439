package usecase

import (
	"context"

	"trainlog/internal/modules/backup/dto"
	"trainlog/internal/modules/backup/service"
)

type Interactor struct {
	svc *service.BackupService
}

func NewInteractor(svc *service.BackupService) *Interactor {
	return &Interactor{svc: svc}
}

func (i *Interactor) Export(ctx context.Context) (dto.ExportOutput, error) {
	snapshot, data, err := i.svc.Export(ctx)
	if err != nil {
		return dto.ExportOutput{}, err
	}
	return dto.ExportOutput{
		Data:          data,
		ExportDate:    snapshot.ExportDate,
		SettingsCount: len(snapshot.LocalStorage),
		ActivityCount: len(snapshot.Activities),
	}, nil
}

func (i *Interactor) Import(ctx context.Context, data []byte) (dto.ImportOutput, error) {
	snapshot, err := i.svc.Import(ctx, data)
	if err != nil {
		return dto.ImportOutput{}, err
	}
	return dto.ImportOutput{
		ExportDate:    snapshot.ExportDate,
		SettingsCount: len(snapshot.LocalStorage),
		ActivityCount: len(snapshot.Activities),
	}, nil
}

func (i *Interactor) Reset(ctx context.Context) error {
	return i.svc.Reset(ctx)
}
