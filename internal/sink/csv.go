// Package sink persists the standardized corpus. The pipeline core only
// builds the in-memory dataset; what happens to it afterwards lives here.
package sink

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/plainsdata/licenseprep/internal/frame"
)

// WriteCSV writes the corpus to path as comma-separated text with a header
// row, creating parent directories as needed. The file is written through
// a temp file and renamed into place so a failed run never leaves a
// truncated corpus behind.
func WriteCSV(path string, corpus *frame.Frame) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating output directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temp output file: %w", err)
	}
	defer os.Remove(tmp.Name())

	w := csv.NewWriter(tmp)
	if err := w.Write(corpus.Columns()); err != nil {
		tmp.Close()
		return fmt.Errorf("writing header: %w", err)
	}
	for i := 0; i < corpus.Len(); i++ {
		if err := w.Write(corpus.Row(i)); err != nil {
			tmp.Close()
			return fmt.Errorf("writing row %d: %w", i+1, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		tmp.Close()
		return fmt.Errorf("flushing output: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing output: %w", err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("moving output into place: %w", err)
	}
	return nil
}
