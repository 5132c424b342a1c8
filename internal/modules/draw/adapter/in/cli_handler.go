package in

import (
	"context"

	drawdto "numdraw/internal/modules/draw/dto"
	drawin "numdraw/internal/modules/draw/port/in"
)

type CLIHandler struct {
	usecase drawin.Usecase
}

func NewCLIHandler(usecase drawin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Draw(ctx context.Context, count string) (drawdto.DrawOutput, error) {
	return h.usecase.Draw(ctx, drawdto.DrawInput{Count: count})
}

func (h CLIHandler) Clear(ctx context.Context) error {
	return h.usecase.Clear(ctx)
}

func (h CLIHandler) Export(ctx context.Context, target string) (drawdto.ExportOutput, error) {
	return h.usecase.Export(ctx, drawdto.ExportInput{Target: target})
}

func (h CLIHandler) Status(ctx context.Context) (drawdto.StatusOutput, error) {
	return h.usecase.Status(ctx)
}
