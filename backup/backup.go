// Package backup snapshots a store file to a (possibly compressed)
// copy and restores it back. Compression is chosen by file extension.
package backup

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/zstd"

	"github.com/snowstopxt/taskstore/atomicfile"
	"github.com/snowstopxt/taskstore/store"
)

// Snapshot copies the file at src to dst. The content is compressed
// based on dst's extension: ".gz", ".zst" and ".br" select gzip, zstd
// and brotli; any other extension copies the bytes as-is. dst is
// written atomically and its directory is created if missing.
func Snapshot(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return err
	}
	out, err := atomicfile.New(dst)
	if err != nil {
		return err
	}
	defer out.Cancel()

	w, closeCompressor, err := compressor(out, dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(w, in); err != nil {
		return err
	}
	if err := closeCompressor(); err != nil {
		return err
	}
	return out.Close()
}

// Restore writes the content of snapshot src to dst, decompressing
// by src's extension. dst is written atomically.
func Restore(src, dst string) error {
	in, err := openMaybeCompressed(src)
	if err != nil {
		return err
	}
	defer in.Close()

	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return err
	}
	out, err := atomicfile.New(dst)
	if err != nil {
		return err
	}
	defer out.Cancel()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Close()
}

// SnapshotName returns a date-stamped snapshot name for a store file,
// e.g. SnapshotName("tasks.txt", t, ".zst") => "tasks-2026-08-29.txt.zst"
func SnapshotName(fileName string, t time.Time, compressExt string) string {
	ext := filepath.Ext(fileName)
	base := strings.TrimSuffix(fileName, ext)
	return fmt.Sprintf("%s-%s%s%s", base, t.UTC().Format("2006-01-02"), ext, compressExt)
}

// SnapshotStore writes a date-stamped snapshot of the store file into
// dir and returns the snapshot path. compressExt picks compression as
// in Snapshot, "" for none.
func SnapshotStore(s *store.Store, dir string, compressExt string) (string, error) {
	name := SnapshotName(s.FileName, time.Now(), compressExt)
	dst := filepath.Join(dir, name)
	if err := Snapshot(s.Path(), dst); err != nil {
		return "", err
	}
	return dst, nil
}

// compressor wraps w in a compressing writer chosen by path's
// extension. The returned close func flushes the compressor; it does
// not close w.
func compressor(w io.Writer, path string) (io.Writer, func() error, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz":
		gw := gzip.NewWriter(w)
		return gw, gw.Close, nil
	case ".zst":
		zw, err := zstd.NewWriter(w)
		if err != nil {
			return nil, nil, err
		}
		return zw, zw.Close, nil
	case ".br":
		bw := brotli.NewWriter(w)
		return bw, bw.Close, nil
	}
	return w, func() error { return nil }, nil
}

// implement io.ReadCloser over os.File wrapped with a decompressing
// reader. io.Closer goes to os.File, io.Reader to the wrapping reader
type readerWrappedFile struct {
	f *os.File
	r io.Reader
	// releases decompressor resources, e.g. the zstd decoder's
	// worker goroutines
	cleanup func()
}

func (rc *readerWrappedFile) Close() error {
	if rc.cleanup != nil {
		rc.cleanup()
	}
	return rc.f.Close()
}

func (rc *readerWrappedFile) Read(p []byte) (int, error) {
	return rc.r.Read(p)
}

// openMaybeCompressed opens a file that might be compressed with gzip
// or zstd or brotli, based on the file extension
func openMaybeCompressed(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz":
		r, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, err
		}
		return &readerWrappedFile{f: f, r: r}, nil
	case ".zst":
		r, err := zstd.NewReader(f)
		if err != nil {
			f.Close()
			return nil, err
		}
		return &readerWrappedFile{f: f, r: r, cleanup: r.Close}, nil
	case ".br":
		return &readerWrappedFile{f: f, r: brotli.NewReader(f)}, nil
	}
	return f, nil
}
