package disk

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/couchcryptid/usgs-quake-query/internal/domain"
)

// FileMode is the permission of every persisted result. Temp files start at
// 0600, so the mode is set explicitly before the rename.
const FileMode os.FileMode = 0o644

// Writer persists raw result bodies. A file only appears at its final path
// once it has been fully written and synced.
type Writer struct {
	fs     afero.Fs
	logger *slog.Logger
}

// NewWriter creates a Writer on fs. Pass afero.NewOsFs() for the real disk.
func NewWriter(fs afero.Fs, logger *slog.Logger) *Writer {
	return &Writer{fs: fs, logger: logger}
}

// Write stores body at path. On failure nothing is left at path and the
// error is a *domain.FileWriteError.
func (w *Writer) Write(path string, body []byte) error {
	if err := w.write(path, body); err != nil {
		return &domain.FileWriteError{Path: path, Err: err}
	}
	return nil
}

func (w *Writer) write(path string, body []byte) error {
	tmp, err := afero.TempFile(w.fs, filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	committed := false
	defer func() {
		if committed {
			return
		}
		if rmErr := w.fs.Remove(tmpName); rmErr != nil {
			w.logger.Warn("remove temp file failed", "path", tmpName, "error", rmErr)
		}
	}()

	if _, err := tmp.Write(body); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("sync: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close: %w", err)
	}
	if err := w.fs.Chmod(tmpName, FileMode); err != nil {
		return fmt.Errorf("chmod: %w", err)
	}
	if err := w.fs.Rename(tmpName, path); err != nil {
		return fmt.Errorf("rename: %w", err)
	}

	committed = true
	return nil
}
