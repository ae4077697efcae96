package store

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/snowstopxt/taskstore/atomicfile"
)

// ErrEmbeddedNewline is returned when a serialized task contains a
// newline, which would corrupt the one-task-per-line format.
var ErrEmbeddedNewline = errors.New("serialized task contains a newline")

// maxLineSize is the longest line rewrite and LoadAll can read back.
// Append accepts any newline-free line, so this must stay well above
// anything a serialized task can plausibly be.
const maxLineSize = 16 * 1024 * 1024

func newLineScanner(r io.Reader) *bufio.Scanner {
	scanner := bufio.NewScanner(r)
	// the default bufio.Scanner token limit is 64KB, which is smaller
	// than lines Append accepts
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	return scanner
}

// Task is the store's only view of a task: its serialized single-line
// form. Delete matches lines by exact string equality of that form.
type Task interface {
	MarshalLine() string
}

type Store struct {
	// directory holding the store file, created by Open if missing
	DataDir string
	// name of the store file inside DataDir, default "tasks.txt"
	FileName string

	// Logger is used for advisory messages, e.g. lines skipped during
	// LoadAll. If nil, logrus.StandardLogger() is used.
	Logger logrus.FieldLogger

	filePath string
}

// Open prepares the store for use: it creates DataDir (and missing
// parents) and an empty store file if one doesn't exist. An existing
// file is kept as-is; use Clear to truncate. Re-opening an already
// opened store is allowed and doesn't touch the content.
func Open(s *Store) error {
	if s.DataDir == "" {
		return fmt.Errorf("data directory is not set. For current directory, use '.'")
	}
	if s.FileName == "" {
		s.FileName = "tasks.txt"
	}

	var err error
	s.filePath = filepath.Join(s.DataDir, s.FileName)
	s.filePath, err = filepath.Abs(s.filePath)
	if err != nil {
		return fmt.Errorf("failed to get absolute path for store file: %w", err)
	}

	err = os.MkdirAll(s.DataDir, 0755)
	if err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}
	if _, err := os.Stat(s.filePath); os.IsNotExist(err) {
		file, err := os.Create(s.filePath)
		if err != nil {
			return fmt.Errorf("failed to create store file: %w", err)
		}
		file.Close()
	}
	return nil
}

// Path returns the absolute path of the store file
func (s *Store) Path() string {
	return s.filePath
}

func (s *Store) logger() logrus.FieldLogger {
	if s.Logger != nil {
		return s.Logger
	}
	return logrus.StandardLogger()
}

// Append writes the serialized form of t followed by a newline at the
// end of the store file. Existing content is never read or rewritten.
func (s *Store) Append(t Task) error {
	line := t.MarshalLine()
	if strings.Contains(line, "\n") {
		return ErrEmbeddedNewline
	}

	file, err := os.OpenFile(s.filePath, os.O_APPEND|os.O_WRONLY|os.O_CREATE, 0644)
	if err != nil {
		return fmt.Errorf("failed to open store file for append: %w", err)
	}
	_, err = file.WriteString(line + "\n")
	if err != nil {
		file.Close()
		return fmt.Errorf("failed to append to store file: %w", err)
	}
	err = file.Sync()
	if err != nil {
		file.Close()
		return fmt.Errorf("failed to sync store file: %w", err)
	}
	err = file.Close()
	if err != nil {
		return fmt.Errorf("failed to close store file: %w", err)
	}
	return nil
}

// rewrite streams every line of the store file through transform and
// writes the result to a staging file which atomically replaces the
// original. transform returns the replacement line, or false to drop
// the line. On any failure the original file is left untouched.
func (s *Store) rewrite(transform func(line string) (string, bool)) error {
	src, err := os.Open(s.filePath)
	if err != nil {
		return fmt.Errorf("failed to open store file: %w", err)
	}
	defer src.Close()

	dst, err := atomicfile.New(s.filePath)
	if err != nil {
		return fmt.Errorf("failed to create staging file: %w", err)
	}
	defer dst.Cancel()

	scanner := newLineScanner(src)
	for scanner.Scan() {
		out, keep := transform(scanner.Text())
		if !keep {
			continue
		}
		if _, err := dst.WriteString(out + "\n"); err != nil {
			return fmt.Errorf("failed to write staging file: %w", err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read store file: %w", err)
	}

	src.Close()
	if err := dst.Close(); err != nil {
		return fmt.Errorf("failed to replace store file: %w", err)
	}
	return nil
}

// Delete removes every line that is exactly equal to the serialized
// form of t. This is full-line equality, not substring matching, and
// it removes all matches, not just the first. Relative order and text
// of the remaining lines are preserved. Returns the number of lines
// removed; 0 with a nil error means nothing matched.
func (s *Store) Delete(t Task) (int, error) {
	target := t.MarshalLine()
	n := 0
	err := s.rewrite(func(line string) (string, bool) {
		if line == target {
			n++
			return "", false
		}
		return line, true
	})
	if err != nil {
		return 0, err
	}
	return n, nil
}

// Edit replaces every line exactly equal to before with after, leaving
// all other lines unchanged. Like Delete it rewrites all matches.
// Returns the number of lines rewritten.
func (s *Store) Edit(before, after string) (int, error) {
	if strings.Contains(after, "\n") {
		return 0, ErrEmbeddedNewline
	}
	n := 0
	err := s.rewrite(func(line string) (string, bool) {
		if line == before {
			n++
			return after, true
		}
		return line, true
	})
	if err != nil {
		return 0, err
	}
	return n, nil
}

// LoadAll reads the store file line by line, in file order, and calls
// fn for each line. If fn returns an error that line is skipped, the
// error is logged and loading continues; the returned count is the
// number of lines skipped this way. A single bad line never aborts
// the whole load. Empty lines are skipped silently. An error is
// returned only when the file itself cannot be read.
func (s *Store) LoadAll(fn func(line string) error) (int, error) {
	file, err := os.Open(s.filePath)
	if err != nil {
		return 0, fmt.Errorf("failed to open store file: %w", err)
	}
	defer file.Close()

	skipped := 0
	lineNo := 0
	scanner := newLineScanner(file)
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if line == "" {
			continue
		}
		if err := fn(line); err != nil {
			skipped++
			s.logger().WithFields(logrus.Fields{
				"file":  s.filePath,
				"line":  lineNo,
				"error": err,
			}).Warn("skipping task line that could not be decoded")
		}
	}
	if err := scanner.Err(); err != nil {
		return skipped, fmt.Errorf("failed to read store file: %w", err)
	}
	return skipped, nil
}

// Clear replaces the store file's content with nothing. The file
// itself is kept in place.
func (s *Store) Clear() error {
	file, err := os.OpenFile(s.filePath, os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("failed to truncate store file: %w", err)
	}
	err = file.Close()
	if err != nil {
		return fmt.Errorf("failed to close store file: %w", err)
	}
	return nil
}
