package out

import (
	"context"
	"fmt"
	"io"

	"github.com/aymanbagabas/go-osc52/v2"

	"numdraw/internal/modules/draw/domain"
	drawout "numdraw/internal/modules/draw/port/out"
)

// ClipboardDelivery copies the export content to the terminal clipboard
// with an OSC 52 escape sequence.
type ClipboardDelivery struct {
	term io.Writer
}

func NewClipboardDelivery(term io.Writer) drawout.Delivery {
	return &ClipboardDelivery{term: term}
}

func (d *ClipboardDelivery) Deliver(_ context.Context, file domain.ExportedFile) (string, error) {
	if _, err := osc52.New(file.Content).WriteTo(d.term); err != nil {
		return "", fmt.Errorf("write clipboard sequence: %w", err)
	}
	return "clipboard:" + file.Name, nil
}
