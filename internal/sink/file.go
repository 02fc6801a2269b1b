package sink

import (
	"bufio"
	"fmt"
	"os"
	"sync"

	"github.com/gofrs/flock"
	"github.com/langproc/langproc/internal/errors"
	"github.com/mitchellh/go-homedir"
)

const outputFileMode = 0o644

// OutputFileLockedError is returned when another process holds the lock on the output file.
type OutputFileLockedError struct {
	Path string
}

func (err OutputFileLockedError) Error() string {
	return fmt.Sprintf("output file %s is locked by another process", err.Path)
}

// File writes one word per line to a file. The file is truncated when opened and
// exclusively locked until Close, so two runs never write into the same file.
type File struct {
	file   *os.File
	writer *bufio.Writer
	lock   *flock.Flock
	path   string
	mu     sync.Mutex
}

// OpenFile creates or truncates the file at path. A leading ~ is expanded to the home directory.
func OpenFile(path string) (*File, error) {
	expandedPath, err := homedir.Expand(path)
	if err != nil {
		return nil, errors.New(err)
	}

	lock := flock.New(expandedPath)

	locked, err := lock.TryLock()
	if err != nil {
		return nil, errors.New(err)
	}

	if !locked {
		return nil, errors.New(OutputFileLockedError{Path: expandedPath})
	}

	file, err := os.OpenFile(expandedPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, outputFileMode)
	if err != nil {
		lock.Unlock() //nolint:errcheck
		return nil, errors.New(err)
	}

	return &File{
		file:   file,
		writer: bufio.NewWriter(file),
		lock:   lock,
		path:   expandedPath,
	}, nil
}

// Path returns the expanded path of the file.
func (sink *File) Path() string {
	return sink.path
}

// Emit implements Sink.
func (sink *File) Emit(word string) error {
	sink.mu.Lock()
	defer sink.mu.Unlock()

	if _, err := sink.writer.WriteString(word + "\n"); err != nil {
		return errors.New(err)
	}

	return nil
}

// Close implements Sink. It flushes the buffered words, closes the file and releases the lock.
func (sink *File) Close() error {
	sink.mu.Lock()
	defer sink.mu.Unlock()

	var errs *errors.MultiError

	if err := sink.writer.Flush(); err != nil {
		errs = errs.Append(errors.New(err))
	}

	if err := sink.file.Close(); err != nil {
		errs = errs.Append(errors.New(err))
	}

	if err := sink.lock.Unlock(); err != nil {
		errs = errs.Append(errors.New(err))
	}

	return errs.ErrorOrNil()
}
