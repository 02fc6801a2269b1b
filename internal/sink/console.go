package sink

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/langproc/langproc/internal/errors"
	"github.com/mgutz/ansi"
)

const statusStyle = "black+h"

// Console prints one word per line. It can also keep a status line at the bottom of
// the output: each word is printed over the status line, which is then redrawn, so
// a word never interleaves with a status update.
type Console struct {
	writer   io.Writer
	status   string
	mu       sync.Mutex
	colorize bool
}

// NewConsole returns a console sink writing to writer. With colorize the status line is dark gray.
func NewConsole(writer io.Writer, colorize bool) *Console {
	return &Console{writer: writer, colorize: colorize}
}

// Emit implements Sink.
func (console *Console) Emit(word string) error {
	console.mu.Lock()
	defer console.mu.Unlock()

	if console.status == "" {
		_, err := fmt.Fprintln(console.writer, word)
		return errors.WithStackTrace(err)
	}

	padding := max(utf8.RuneCountInString(console.status)-utf8.RuneCountInString(word), 0)

	if _, err := fmt.Fprintln(console.writer, word+strings.Repeat(" ", padding)); err != nil {
		return errors.New(err)
	}

	return console.drawStatus()
}

// SetStatus replaces the status line.
func (console *Console) SetStatus(status string) error {
	console.mu.Lock()
	defer console.mu.Unlock()

	if err := console.eraseStatus(); err != nil {
		return err
	}

	console.status = status

	return console.drawStatus()
}

// ClearStatus removes the status line.
func (console *Console) ClearStatus() error {
	console.mu.Lock()
	defer console.mu.Unlock()

	if err := console.eraseStatus(); err != nil {
		return err
	}

	console.status = ""

	return nil
}

// Printf writes a formatted message, keeping the status line below it.
func (console *Console) Printf(format string, args ...any) error {
	console.mu.Lock()
	defer console.mu.Unlock()

	if err := console.eraseStatus(); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(console.writer, format, args...); err != nil {
		return errors.New(err)
	}

	return console.drawStatus()
}

// Close implements Sink.
func (console *Console) Close() error {
	return console.ClearStatus()
}

func (console *Console) drawStatus() error {
	if console.status == "" {
		return nil
	}

	status := console.status
	if console.colorize {
		status = ansi.Color(status, statusStyle)
	}

	_, err := fmt.Fprint(console.writer, status+"\r")

	return errors.WithStackTrace(err)
}

func (console *Console) eraseStatus() error {
	if console.status == "" {
		return nil
	}

	_, err := fmt.Fprint(console.writer, strings.Repeat(" ", utf8.RuneCountInString(console.status))+"\r")

	return errors.WithStackTrace(err)
}
