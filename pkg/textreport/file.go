package textreport

import (
	"bufio"
	"context"
	"fmt"

	"github.com/yaklabco/textreport/pkg/fsutil"
	"github.com/yaklabco/textreport/pkg/report"
)

// FileWriter is a TextWriter that owns a file sink.
//
// Output is staged in a temp file next to the target and only replaces the
// target on Close. Call Abort instead of Close to discard a failed render.
type FileWriter struct {
	*TextWriter

	bw   *bufio.Writer
	file *fsutil.AtomicFile
}

// Create opens a FileWriter for path.
func Create(ctx context.Context, path string, opts Options) (*FileWriter, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	file, err := fsutil.CreateAtomic(ctx, path, 0)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", path, err)
	}

	bw := bufio.NewWriterSize(file, bufWriterSize)
	tw, err := New(bw, opts)
	if err != nil {
		_ = file.Abort()
		return nil, err
	}

	return &FileWriter{TextWriter: tw, bw: bw, file: file}, nil
}

// Path returns the target file path.
func (f *FileWriter) Path() string {
	return f.file.Name()
}

// Close flushes buffered output and commits the file.
func (f *FileWriter) Close() error {
	if err := f.bw.Flush(); err != nil {
		_ = f.file.Abort()
		return fmt.Errorf("flush %s: %w", f.Path(), err)
	}
	if err := f.file.Close(); err != nil {
		return fmt.Errorf("commit %s: %w", f.Path(), err)
	}
	return nil
}

// Abort discards everything written so far. The target file is untouched.
func (f *FileWriter) Abort() error {
	return f.file.Abort()
}

// RenderFile renders r into the file at path. The file is replaced only if
// rendering and committing both succeed; on any error it is left untouched.
func RenderFile(ctx context.Context, path string, r *report.Report, style *report.Style, opts Options) (err error) {
	fw, err := Create(ctx, path, opts)
	if err != nil {
		return err
	}

	defer func() {
		if err != nil {
			_ = fw.Abort()
			return
		}
		err = fw.Close()
	}()

	return fw.WriteReport(r, style)
}
