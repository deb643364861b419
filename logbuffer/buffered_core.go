package logbuffer

import (
	"sync"
	"time"

	"go.uber.org/atomic"
	"go.uber.org/zap/zapcore"

	"github.com/flowkit/corekit/pkg/config"
	"github.com/flowkit/corekit/utils/ringbuffer"
)

const defaultFlushInterval = 100 * time.Millisecond

// bufferedEntry keeps the target core alongside the entry, so cores
// derived through With flush to the right field context.
type bufferedEntry struct {
	core   zapcore.Core
	entry  zapcore.Entry
	fields []zapcore.Field
}

// state is shared between a BufferedCore and every core derived from it
// through With: one pending ring buffer, one flusher.
type state struct {
	mu      sync.Mutex
	pending *ringbuffer.RingBuffer[bufferedEntry]

	notify  chan struct{}
	stop    chan struct{}
	flushed sync.WaitGroup

	interval time.Duration
	dropped  atomic.Int64
}

// BufferedCore is a zapcore.Core that parks entries in a bounded ring
// buffer instead of writing them synchronously. A background flusher
// drains the buffer on wakeup and on a timer. When the buffer is full
// the oldest pending entry is dropped and counted, so a stalled sink
// back-pressures into data loss rather than into the caller.
type BufferedCore struct {
	inner zapcore.Core
	state *state
}

// NewBufferedCore wraps inner. pendingEntries bounds the buffer (the
// configured default when non-positive); flushInterval is the timer
// period of the flusher (a library default when non-positive).
func NewBufferedCore(inner zapcore.Core, pendingEntries int, flushInterval time.Duration) *BufferedCore {
	if pendingEntries <= 0 {
		pendingEntries = config.DefaultPendingEntries
	}
	if flushInterval <= 0 {
		flushInterval = defaultFlushInterval
	}
	c := &BufferedCore{
		inner: inner,
		state: &state{
			pending:  ringbuffer.NewRingBuffer[bufferedEntry](pendingEntries),
			notify:   make(chan struct{}, 1),
			stop:     make(chan struct{}),
			interval: flushInterval,
		},
	}
	c.state.flushed.Add(1)
	go c.flusher()
	return c
}

func (c *BufferedCore) Enabled(level zapcore.Level) bool {
	return c.inner.Enabled(level)
}

func (c *BufferedCore) With(fields []zapcore.Field) zapcore.Core {
	return &BufferedCore{
		inner: c.inner.With(fields),
		state: c.state,
	}
}

func (c *BufferedCore) Check(entry zapcore.Entry, checked *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(entry.Level) {
		return checked.AddCore(entry, c)
	}
	return checked
}

func (c *BufferedCore) Write(entry zapcore.Entry, fields []zapcore.Field) error {
	s := c.state
	s.mu.Lock()
	if s.pending.IsFull() {
		s.dropped.Inc()
	}
	s.pending.PushBack(bufferedEntry{core: c.inner, entry: entry, fields: fields})
	s.mu.Unlock()

	select {
	case s.notify <- struct{}{}:
	default:
	}
	return nil
}

// Sync flushes the pending buffer and the wrapped core.
func (c *BufferedCore) Sync() error {
	c.Flush()
	return c.inner.Sync()
}

// Flush synchronously drains every pending entry into its target core.
func (c *BufferedCore) Flush() {
	c.state.drain()
}

// Stop terminates the flusher after a final drain. The core still
// accepts writes afterwards, but nothing drains them until Flush is
// called by hand.
func (c *BufferedCore) Stop() {
	close(c.state.stop)
	c.state.flushed.Wait()
}

// DroppedEntries reports how many pending entries were discarded by
// buffer overflow.
func (c *BufferedCore) DroppedEntries() int64 {
	return c.state.dropped.Load()
}

func (c *BufferedCore) flusher() {
	s := c.state
	defer s.flushed.Done()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.notify:
			s.drain()
		case <-ticker.C:
			s.drain()
		case <-s.stop:
			s.drain()
			return
		}
	}
}

func (s *state) drain() {
	for {
		s.mu.Lock()
		entry, ok := s.pending.PopFront()
		s.mu.Unlock()
		if !ok {
			return
		}
		// An entry that fails to write is already out of the buffer;
		// there is nobody left to report to.
		_ = entry.core.Write(entry.entry, entry.fields)
	}
}
