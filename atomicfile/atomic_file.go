package atomicfile

import (
	"errors"
	"io"
	"os"
	"path/filepath"
)

// ErrCancelled is returned by calls made after Cancel()
var ErrCancelled = errors.New("cancelled")

var _ io.WriteCloser = &File{}

// File writes to a temporary file and renames it over the destination
// on Close. The first error encountered is remembered and returned by
// every subsequent call.
type File struct {
	dstPath string
	dir     string
	tmpFile *os.File
	tmpPath string
	err     error
}

// New creates a File that will become path on a successful Close.
// The temporary file is created in the same directory as path so that
// the final rename stays on one file system and is atomic.
func New(path string) (*File, error) {
	dir, name := filepath.Split(path)
	dir, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}
	if name == "" {
		return nil, &os.PathError{Op: "open", Path: path, Err: os.ErrInvalid}
	}

	tmpFile, err := os.CreateTemp(dir, name+".*.tmp")
	if err != nil {
		return nil, err
	}

	return &File{
		dstPath: path,
		dir:     dir,
		tmpFile: tmpFile,
		tmpPath: tmpFile.Name(),
	}, nil
}

// remember the first error and delete the temporary file
func (f *File) fail(err error) error {
	if err == nil {
		return nil
	}
	if f.err == nil {
		f.err = err
	}
	_ = f.Close()
	return err
}

// Write writes data to the temporary file
func (f *File) Write(d []byte) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	n, err := f.tmpFile.Write(d)
	return n, f.fail(err)
}

// WriteString writes s to the temporary file
func (f *File) WriteString(s string) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	n, err := f.tmpFile.WriteString(s)
	return n, f.fail(err)
}

// Cancel abandons the write: the destination is not touched and the
// temporary file is removed. Cancel after Close is a no-op, so it can
// be deferred unconditionally.
func (f *File) Cancel() {
	if f == nil || f.tmpFile == nil {
		return
	}
	f.err = ErrCancelled
	_ = f.Close()
}

// Close syncs and closes the temporary file and renames it over the
// destination. Can be called multiple times; later calls return the
// first error encountered.
func (f *File) Close() error {
	if f.tmpFile == nil {
		return f.err
	}
	tmpFile := f.tmpFile
	f.tmpFile = nil

	// https://www.joeshaw.org/dont-defer-close-on-writable-files/
	errSync := tmpFile.Sync()
	errClose := tmpFile.Close()

	didRename := false
	defer func() {
		if !didRename {
			_ = os.Remove(f.tmpPath)
		}
	}()

	// an earlier Write failed, keep that error
	if f.err != nil {
		return f.err
	}

	err := errSync
	if err == nil {
		err = errClose
	}
	if err == nil {
		// this over-writes dstPath if it exists
		err = os.Rename(f.tmpPath, f.dstPath)
		didRename = err == nil
		// sync the directory so the rename survives a crash
		if fdir, errDir := os.Open(f.dir); errDir == nil {
			_ = fdir.Sync()
			_ = fdir.Close()
		}
	}

	f.err = err
	return f.err
}
