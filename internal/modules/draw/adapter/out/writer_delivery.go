package out

import (
	"context"
	"fmt"
	"io"

	"numdraw/internal/modules/draw/domain"
	drawout "numdraw/internal/modules/draw/port/out"
)

// WriterDelivery streams the export content to w, newline terminated.
type WriterDelivery struct {
	w     io.Writer
	label string
}

func NewWriterDelivery(w io.Writer, label string) drawout.Delivery {
	return &WriterDelivery{w: w, label: label}
}

func (d *WriterDelivery) Deliver(_ context.Context, file domain.ExportedFile) (string, error) {
	if _, err := fmt.Fprintln(d.w, file.Content); err != nil {
		return "", fmt.Errorf("write export content: %w", err)
	}
	return d.label, nil
}
