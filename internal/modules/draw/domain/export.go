package domain

import (
	"slices"
	"strconv"
	"strings"
	"time"
)

const (
	ExportMIMEType = "text/csv;charset=utf-8"
	exportLayout   = "20060102150405"
)

// ExportedFile is the payload handed to a delivery adapter.
type ExportedFile struct {
	Name     string
	MIMEType string
	Content  string
}

// ExportName derives the file name from the wall clock of t.
func ExportName(t time.Time) string {
	return t.Format(exportLayout) + ".csv"
}

// FormatCSV renders values ascending, comma separated, without header or
// trailing newline.
func FormatCSV(values []int) string {
	sorted := slices.Clone(values)
	slices.Sort(sorted)
	parts := make([]string, len(sorted))
	for i, v := range sorted {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}

func NewExportedFile(values []int, at time.Time) ExportedFile {
	return ExportedFile{
		Name:     ExportName(at),
		MIMEType: ExportMIMEType,
		Content:  FormatCSV(values),
	}
}
