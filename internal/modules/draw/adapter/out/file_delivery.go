package out

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"numdraw/internal/modules/draw/domain"
	drawout "numdraw/internal/modules/draw/port/out"
)

type FileDelivery struct {
	dir string
}

func NewFileDelivery(dir string) drawout.Delivery {
	return &FileDelivery{dir: dir}
}

func (d *FileDelivery) Deliver(_ context.Context, file domain.ExportedFile) (string, error) {
	if err := os.MkdirAll(d.dir, 0o755); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}
	path := filepath.Join(d.dir, file.Name)
	if err := os.WriteFile(path, []byte(file.Content), 0o644); err != nil {
		return "", fmt.Errorf("write export file: %w", err)
	}
	return path, nil
}
