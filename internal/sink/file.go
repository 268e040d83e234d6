package sink

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/imamik/stepform/internal/form"
)

// File writes each submission as its own YAML file in a directory.
type File struct {
	dir string
	stamp
}

// NewFile creates a sink writing into dir. The directory is created on
// first use.
func NewFile(dir string) *File {
	return &File{dir: dir, stamp: defaultStamp()}
}

// Name implements Namer.
func (f *File) Name() string { return "file" }

// Submit implements wizard.Sink. Existing files are never overwritten.
func (f *File) Submit(ctx context.Context, p form.State) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	rec := f.record(p)
	data, err := rec.Marshal()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(f.dir, 0o700); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", f.dir, err)
	}

	path := filepath.Join(f.dir, rec.FileName())
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	if _, err := file.Write(data); err != nil {
		_ = file.Close()
		return fmt.Errorf("failed to write file: %w", err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}
