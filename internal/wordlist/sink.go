package wordlist

import (
	"bufio"
	"os"
	"sync"

	"github.com/XenorInspire/worgenx/internal/werrors"
)

// Sink is the shared, mutex-guarded output file that every Worker
// flushes its buffered batch of records into. The file is created (and
// truncated if it already exists) once, up front; each Flush call holds
// the mutex only for the duration of the write, so workers interleave
// batches rather than serializing their whole run.
type Sink struct {
	mu  sync.Mutex
	w   *bufio.Writer
	f   *os.File
	err error
}

// NewSink creates (truncating if necessary) the file at path and wraps
// it in a buffered, mutex-guarded writer.
func NewSink(path string) (*Sink, error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, &werrors.FileError{Op: "create", Path: path, Err: err}
	}

	return &Sink{f: f, w: bufio.NewWriterSize(f, 1<<20)}, nil
}

// Flush appends records to the file, one per line, newline-terminated.
// Safe for concurrent use; a failed Flush is sticky and is returned by
// every subsequent call.
func (s *Sink) Flush(records []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.err != nil {
		return s.err
	}

	for _, r := range records {
		if _, err := s.w.WriteString(r); err != nil {
			s.err = &werrors.FileError{Op: "write", Path: s.f.Name(), Err: err}
			return s.err
		}

		if err := s.w.WriteByte('\n'); err != nil {
			s.err = &werrors.FileError{Op: "write", Path: s.f.Name(), Err: err}
			return s.err
		}
	}

	return nil
}

// Close flushes the buffer, syncs, and closes the underlying file.
func (s *Sink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.w.Flush(); err != nil {
		_ = s.f.Close()
		return &werrors.FileError{Op: "write", Path: s.f.Name(), Err: err}
	}

	if err := s.f.Sync(); err != nil {
		_ = s.f.Close()
		return &werrors.FileError{Op: "sync", Path: s.f.Name(), Err: err}
	}

	if err := s.f.Close(); err != nil {
		return &werrors.FileError{Op: "sync", Path: s.f.Name(), Err: err}
	}

	return nil
}
