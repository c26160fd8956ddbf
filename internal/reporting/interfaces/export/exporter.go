package export

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	reportapp "zes-stations/internal/reporting/application"
	stations "zes-stations/internal/stations/domain"
)

const (
	FormatXLSX = "xlsx"
	FormatPDF  = "pdf"
)

// ErrEmptyPath is returned when an exporter has no destination.
var ErrEmptyPath = errors.New("export: empty path")

type buildFunc func(stations.Run, reportapp.Summary) ([]byte, error)

// FileExporter renders a run report and writes it to a file.
type FileExporter struct {
	format string
	path   string
	opts   reportapp.Options
	build  buildFunc
}

// NewXLSXExporter writes the XLSX report to path.
func NewXLSXExporter(path string, opts reportapp.Options) (*FileExporter, error) {
	return newFileExporter(FormatXLSX, path, opts, BuildRunXLSX)
}

// NewPDFExporter writes the PDF report to path.
func NewPDFExporter(path string, opts reportapp.Options) (*FileExporter, error) {
	return newFileExporter(FormatPDF, path, opts, BuildRunPDF)
}

func newFileExporter(format, path string, opts reportapp.Options, build buildFunc) (*FileExporter, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}
	return &FileExporter{format: format, path: path, opts: opts, build: build}, nil
}

// Format returns the report format.
func (e *FileExporter) Format() string {
	return e.format
}

// Path returns the destination file.
func (e *FileExporter) Path() string {
	return e.path
}

// Export renders and writes the report.
func (e *FileExporter) Export(ctx context.Context, run stations.Run) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := e.build(run, reportapp.Summarize(run, e.opts))
	if err != nil {
		return fmt.Errorf("export %s: %w", e.format, err)
	}
	if dir := filepath.Dir(e.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("export %s: %w", e.format, err)
		}
	}
	if err := os.WriteFile(e.path, data, 0o644); err != nil {
		return fmt.Errorf("export %s: %w", e.format, err)
	}
	return nil
}
