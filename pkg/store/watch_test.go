package store

import (
	"context"
	"sync"
	"testing"
	"time"

	"tableflip.dev/cal/pkg/event"
)

func TestDiskvWatchEmitsChanges(t *testing.T) {
	p, err := NewDiskv(t.TempDir())
	if err != nil {
		t.Fatalf("open diskv: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := p.Watch(ctx)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}

	// Allow watcher goroutine to subscribe before storing.
	time.Sleep(50 * time.Millisecond)

	start := time.Date(2024, 1, 10, 9, 0, 0, 0, time.Local)
	e := event.New("1", event.Draft{Title: "Standup", Start: start, End: start.Add(30 * time.Minute)})
	if err := p.Save(ctx, []*event.Event{e}); err != nil {
		t.Fatalf("save: %v", err)
	}

	select {
	case c := <-ch:
		if c.Key != Key {
			t.Fatalf("expected key %q, got %q", Key, c.Key)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for change")
	}
}

func TestDiskvWatchClosesOnCancel(t *testing.T) {
	p, err := NewDiskv(t.TempDir())
	if err != nil {
		t.Fatalf("open diskv: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	ch, err := p.Watch(ctx)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}
	cancel()

	deadline := time.After(2 * time.Second)
	for {
		select {
		case _, ok := <-ch:
			if !ok {
				return
			}
		case <-deadline:
			t.Fatal("channel not closed after cancel")
		}
	}
}

func TestChangeThrottleCoalesces(t *testing.T) {
	th := newChangeThrottle(20 * time.Millisecond)
	defer th.Stop()

	var mu sync.Mutex
	var got []Change
	send := func(c Change) {
		mu.Lock()
		got = append(got, c)
		mu.Unlock()
	}
	for i := 0; i < 10; i++ {
		th.Enqueue(Change{Key: Key}, send)
	}
	time.Sleep(100 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	if len(got) != 1 {
		t.Fatalf("expected one coalesced change, got %d", len(got))
	}
}

func TestChangeThrottleStop(t *testing.T) {
	th := newChangeThrottle(20 * time.Millisecond)
	sent := make(chan Change, 1)
	th.Enqueue(Change{Key: Key}, func(c Change) { sent <- c })
	th.Stop()
	select {
	case <-sent:
		t.Fatal("change sent after stop")
	case <-time.After(60 * time.Millisecond):
	}
}
