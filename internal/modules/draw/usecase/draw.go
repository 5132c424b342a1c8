package usecase

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"numdraw/internal/modules/draw/domain"
	drawdto "numdraw/internal/modules/draw/dto"
	drawin "numdraw/internal/modules/draw/port/in"
	drawout "numdraw/internal/modules/draw/port/out"
	"numdraw/internal/modules/draw/service"
	"numdraw/internal/platform/id"
)

type Interactor struct {
	svc       *service.DrawService
	sink      drawout.Sink
	delivery  map[string]drawout.Delivery
	batchIDs  id.Generator
	sessionID string
	log       logrus.FieldLogger
}

func NewInteractor(svc *service.DrawService, sink drawout.Sink, delivery map[string]drawout.Delivery, sessionIDs, batchIDs id.Generator, log logrus.FieldLogger) drawin.Usecase {
	sessionID := sessionIDs.New()
	return &Interactor{
		svc:       svc,
		sink:      sink,
		delivery:  delivery,
		batchIDs:  batchIDs,
		sessionID: sessionID,
		log:       log.WithField("session", sessionID),
	}
}

func (i *Interactor) Draw(ctx context.Context, input drawdto.DrawInput) (drawdto.DrawOutput, error) {
	count, err := domain.ParseCount(input.Count)
	if err != nil {
		return drawdto.DrawOutput{}, err
	}
	batch, err := i.svc.Draw(ctx, count)
	if err != nil {
		return drawdto.DrawOutput{}, err
	}

	balls := make([]drawdto.BallOutput, len(batch))
	for idx, ball := range batch {
		if i.sink != nil {
			i.sink.Append(ball.Value, ball.Stagger)
		}
		balls[idx] = drawdto.BallOutput{Value: ball.Value, Stagger: ball.Stagger}
	}

	values, remaining, err := i.svc.Snapshot(ctx)
	if err != nil {
		return drawdto.DrawOutput{}, err
	}
	out := drawdto.DrawOutput{
		BatchID:   i.batchIDs.New(),
		Balls:     balls,
		Drawn:     len(values),
		Remaining: remaining,
	}
	i.log.WithFields(logrus.Fields{
		"batch":     out.BatchID,
		"numbers":   batch.Values(),
		"remaining": remaining,
	}).Debug("draw")
	return out, nil
}

func (i *Interactor) Clear(ctx context.Context) error {
	if err := i.svc.Clear(ctx); err != nil {
		return err
	}
	if i.sink != nil {
		i.sink.Reset()
	}
	i.log.Debug("clear")
	return nil
}

func (i *Interactor) Export(ctx context.Context, input drawdto.ExportInput) (drawdto.ExportOutput, error) {
	target := input.Target
	if target == "" {
		target = drawdto.TargetFile
	}
	file, err := i.svc.Export(ctx)
	if err != nil {
		return drawdto.ExportOutput{}, err
	}
	delivery, ok := i.delivery[target]
	if !ok || delivery == nil {
		return drawdto.ExportOutput{}, fmt.Errorf("export target %q is not configured", target)
	}
	location, err := delivery.Deliver(ctx, file)
	if err != nil {
		return drawdto.ExportOutput{}, fmt.Errorf("deliver %s: %w", file.Name, err)
	}
	i.log.WithFields(logrus.Fields{"file": file.Name, "target": target, "location": location}).Info("export")
	return drawdto.ExportOutput{
		Name:     file.Name,
		MIMEType: file.MIMEType,
		Content:  file.Content,
		Location: location,
	}, nil
}

func (i *Interactor) Status(ctx context.Context) (drawdto.StatusOutput, error) {
	values, remaining, err := i.svc.Snapshot(ctx)
	if err != nil {
		return drawdto.StatusOutput{}, err
	}
	return drawdto.StatusOutput{
		SessionID: i.sessionID,
		Values:    values,
		Drawn:     len(values),
		Remaining: remaining,
	}, nil
}
