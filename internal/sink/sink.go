// Package sink delivers derived words to their destinations: the console, an output
// file, or several of them at once. Every sink is safe for concurrent use, since words
// arrive from all workers of a concurrent derivation.
package sink

import (
	"sync"
	"sync/atomic"

	"github.com/langproc/langproc/internal/errors"
)

// Sink receives derived words.
type Sink interface {
	// Emit delivers a single word.
	Emit(word string) error
	// Close flushes buffered words and releases resources.
	Close() error
}

// Multi fans every word out to several sinks.
type Multi []Sink

// Emit implements Sink. All sinks receive the word even if one of them fails.
func (sinks Multi) Emit(word string) error {
	var errs *errors.MultiError

	for _, sink := range sinks {
		if err := sink.Emit(word); err != nil {
			errs = errs.Append(err)
		}
	}

	return errs.ErrorOrNil()
}

// Close implements Sink.
func (sinks Multi) Close() error {
	var errs *errors.MultiError

	for _, sink := range sinks {
		if err := sink.Close(); err != nil {
			errs = errs.Append(err)
		}
	}

	return errs.ErrorOrNil()
}

// Discard drops every word.
type Discard struct{}

func (Discard) Emit(string) error { return nil }
func (Discard) Close() error      { return nil }

// Counter counts the words passed on to the wrapped sink.
type Counter struct {
	Sink
	count atomic.Int64
}

// NewCounter wraps sink.
func NewCounter(sink Sink) *Counter {
	return &Counter{Sink: sink}
}

// Emit implements Sink.
func (counter *Counter) Emit(word string) error {
	counter.count.Add(1)
	return counter.Sink.Emit(word)
}

// Count returns the number of words emitted so far.
func (counter *Counter) Count() int64 {
	return counter.count.Load()
}

// Recorder adapts a Sink to a word callback that cannot return an error.
// The first failure is kept and every later word is dropped.
type Recorder struct {
	sink Sink
	err  error
	mu   sync.Mutex
}

// NewRecorder wraps sink.
func NewRecorder(sink Sink) *Recorder {
	return &Recorder{sink: sink}
}

// OnWord emits word, recording the first error.
func (recorder *Recorder) OnWord(word string) {
	recorder.mu.Lock()
	failed := recorder.err != nil
	recorder.mu.Unlock()

	if failed {
		return
	}

	if err := recorder.sink.Emit(word); err != nil {
		recorder.mu.Lock()
		if recorder.err == nil {
			recorder.err = err
		}
		recorder.mu.Unlock()
	}
}

// Err returns the first error the sink reported.
func (recorder *Recorder) Err() error {
	recorder.mu.Lock()
	defer recorder.mu.Unlock()

	return recorder.err
}
