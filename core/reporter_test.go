package core

import (
	"errors"
	"sync"
	"testing"
	"time"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Unix(1700000000, 0)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type recordingSink struct {
	mu     sync.Mutex
	events []StatusEvent
	err    error
}

func (s *recordingSink) Send(ev StatusEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.events = append(s.events, ev)
	return nil
}

func (s *recordingSink) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.events)
}

func (s *recordingSink) last() StatusEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.events[len(s.events)-1]
}

func newTestReporter(sink Sink, clock Clock) *Reporter {
	return NewReporter(sink, func(o *ReporterOptions) {
		o.Interval = time.Second
		o.Clock = clock
		o.RunID = "run-1"
	})
}

func TestReporter_EventFields(t *testing.T) {
	sink := &recordingSink{}
	clock := newFakeClock()
	rep := newTestReporter(sink, clock)

	rep.Progress("working")

	if sink.count() != 1 {
		t.Fatalf("expected 1 event, got %d", sink.count())
	}
	ev := sink.last()
	if ev.ID == "" {
		t.Error("event should carry an id")
	}
	if ev.RunID != "run-1" {
		t.Errorf("unexpected run id %q", ev.RunID)
	}
	if ev.Level != StatusLevelInfo || ev.Description != "working" || ev.Done {
		t.Errorf("unexpected event: %+v", ev)
	}
	if !ev.Timestamp.Equal(clock.Now()) {
		t.Errorf("timestamp should come from the clock, got %v", ev.Timestamp)
	}
}

func TestReporter_ThrottlesWithinInterval(t *testing.T) {
	sink := &recordingSink{}
	clock := newFakeClock()
	rep := newTestReporter(sink, clock)

	rep.Progress("one")
	clock.Advance(500 * time.Millisecond)
	rep.Progress("suppressed")
	if sink.count() != 1 {
		t.Fatalf("event within the interval should be suppressed, got %d", sink.count())
	}

	clock.Advance(500 * time.Millisecond)
	rep.Progress("two")
	if sink.count() != 2 {
		t.Fatalf("event at the interval boundary should pass, got %d", sink.count())
	}
}

func TestReporter_TerminalBypassesThrottle(t *testing.T) {
	sink := &recordingSink{}
	clock := newFakeClock()
	rep := newTestReporter(sink, clock)

	rep.Progress("one")
	rep.Failed("boom")

	if sink.count() != 2 {
		t.Fatalf("terminal event must always pass, got %d events", sink.count())
	}
	ev := sink.last()
	if !ev.Done || ev.Level != StatusLevelError {
		t.Errorf("unexpected terminal event: %+v", ev)
	}
}

func TestReporter_TerminalAdvancesThrottle(t *testing.T) {
	sink := &recordingSink{}
	clock := newFakeClock()
	rep := newTestReporter(sink, clock)

	rep.Completed("done")
	clock.Advance(500 * time.Millisecond)
	rep.Progress("late")

	if sink.count() != 1 {
		t.Fatalf("emission after a terminal event should still be throttled, got %d", sink.count())
	}
}

func TestReporter_DisabledDropsEverything(t *testing.T) {
	sink := &recordingSink{}
	rep := NewReporter(sink, func(o *ReporterOptions) {
		o.Enabled = false
		o.Clock = newFakeClock()
	})

	rep.Progress("one")
	rep.Failed("terminal")

	if sink.count() != 0 {
		t.Fatalf("disabled reporter must drop terminal events too, got %d", sink.count())
	}
}

func TestReporter_NilSink(t *testing.T) {
	rep := NewReporter(nil)
	rep.Progress("one")
	rep.Completed("done")
}

func TestReporter_SinkErrorSwallowed(t *testing.T) {
	sink := &recordingSink{err: errors.New("sink closed")}
	rep := newTestReporter(sink, newFakeClock())

	rep.Failed("boom")
}

func TestReporter_ConcurrentEmit(t *testing.T) {
	sink := &recordingSink{}
	clock := newFakeClock()
	rep := newTestReporter(sink, clock)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rep.Progress("tick")
		}()
	}
	wg.Wait()

	if sink.count() != 1 {
		t.Fatalf("same-instant emissions should collapse to one, got %d", sink.count())
	}
}
