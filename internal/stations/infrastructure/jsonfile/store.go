package jsonfile

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	stations "zes-stations/internal/stations/domain"
)

const indent = "  "

// Store reads and writes the station dataset as a pretty-printed JSON array.
type Store struct{}

// NewStore constructs a store.
func NewStore() *Store {
	return &Store{}
}

// WriteStations writes records to path, creating parent directories as needed.
// Non-ASCII text is written verbatim.
func (s *Store) WriteStations(ctx context.Context, path string, records []stations.Station) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if records == nil {
		records = []stations.Station{}
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("jsonfile: create dir: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("jsonfile: create %s: %w", path, err)
	}
	buf := bufio.NewWriter(file)
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", indent)
	if err := enc.Encode(records); err != nil {
		_ = file.Close()
		return fmt.Errorf("jsonfile: encode: %w", err)
	}
	if err := buf.Flush(); err != nil {
		_ = file.Close()
		return fmt.Errorf("jsonfile: flush: %w", err)
	}
	return file.Close()
}

// ReadStations loads a dataset previously written by WriteStations.
func (s *Store) ReadStations(ctx context.Context, path string) ([]stations.Station, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("jsonfile: read %s: %w", path, err)
	}
	var records []stations.Station
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("jsonfile: decode %s: %w", path, err)
	}
	return records, nil
}
