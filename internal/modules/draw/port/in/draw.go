package in

import (
	"context"

	"numdraw/internal/modules/draw/dto"
)

type Usecase interface {
	Draw(ctx context.Context, input dto.DrawInput) (dto.DrawOutput, error)
	Clear(ctx context.Context) error
	Export(ctx context.Context, input dto.ExportInput) (dto.ExportOutput, error)
	Status(ctx context.Context) (dto.StatusOutput, error)
}
