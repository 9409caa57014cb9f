package app

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"tableflip.dev/cal/pkg/event"
	"tableflip.dev/cal/pkg/store"
)

type memoryPersistence struct {
	mu      sync.Mutex
	saved   []*event.Event
	hasData bool
	loadErr error
	saveErr error
	saves   int
}

func newMemoryPersistence(events ...*event.Event) *memoryPersistence {
	mp := &memoryPersistence{}
	if events != nil {
		mp.saved = cloneAll(events)
		mp.hasData = true
	}
	return mp
}

func (m *memoryPersistence) Load(_ context.Context) ([]*event.Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	if !m.hasData {
		return nil, store.ErrNoData
	}
	return cloneAll(m.saved), nil
}

func (m *memoryPersistence) Save(_ context.Context, events []*event.Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saves++
	m.saved = cloneAll(events)
	m.hasData = true
	return nil
}

func (m *memoryPersistence) Close() error { return nil }

func (m *memoryPersistence) snapshot() []*event.Event {
	m.mu.Lock()
	defer m.mu.Unlock()
	return cloneAll(m.saved)
}

func counter() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

func standup() event.Draft {
	start := time.Date(2024, 1, 10, 9, 0, 0, 0, time.Local)
	return event.Draft{
		Title: "Standup",
		Start: start,
		End:   start.Add(30 * time.Minute),
		Type:  event.Meeting,
	}
}

func newService(t *testing.T, mp *memoryPersistence) *Service {
	t.Helper()
	svc, err := New(context.Background(), mp, WithIDs(counter()))
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc
}

func TestNewSeedsMissingStore(t *testing.T) {
	mp := newMemoryPersistence()
	now := time.Date(2024, 1, 10, 8, 0, 0, 0, time.Local)
	svc, err := New(context.Background(), mp, WithClock(func() time.Time { return now }))
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	list := svc.List()
	if len(list) != 3 || list[0].ID != "1" || list[1].ID != "2" || list[2].ID != "3" {
		t.Fatalf("expected seed events, got %d", len(list))
	}
	if !list[0].Start.Equal(time.Date(2024, 1, 10, 10, 0, 0, 0, time.Local)) {
		t.Fatalf("seed not placed relative to clock: %s", list[0].Start)
	}
	if len(mp.snapshot()) != 3 {
		t.Fatalf("seed events should be persisted immediately")
	}
}

func TestNewSeedsCorruptStoreInMemoryOnly(t *testing.T) {
	mp := newMemoryPersistence()
	mp.loadErr = &store.PersistenceError{Op: "decode", Err: errors.New("bad json")}

	svc := newService(t, mp)
	if len(svc.List()) != 3 {
		t.Fatalf("expected seed fallback, got %d events", len(svc.List()))
	}
	if mp.saves != 0 {
		t.Fatalf("corrupt store must not be overwritten on load")
	}
}

func TestNewKeepsEmptyStore(t *testing.T) {
	mp := newMemoryPersistence([]*event.Event{}...)
	mp.hasData = true
	svc := newService(t, mp)
	if n := len(svc.List()); n != 0 {
		t.Fatalf("saved empty list should stay empty, got %d", n)
	}
}

func TestCRUDRoundTrip(t *testing.T) {
	ctx := context.Background()
	mp := newMemoryPersistence()
	mp.hasData = true
	svc := newService(t, mp)

	created, err := svc.Add(ctx, standup())
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if created.ID != "id-1" {
		t.Fatalf("id = %q", created.ID)
	}
	if created.Color != event.Green {
		t.Fatalf("meeting should default to green, got %q", created.Color)
	}

	list := svc.List()
	if len(list) != 1 || !list[0].Equal(created) {
		t.Fatalf("list after add = %v", list)
	}
	if saved := mp.snapshot(); len(saved) != 1 || !saved[0].Equal(created) {
		t.Fatalf("add not persisted")
	}

	title := "Retro"
	updated, err := svc.Update(ctx, created.ID, event.Patch{Title: &title})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Title != "Retro" || !updated.Start.Equal(created.Start) {
		t.Fatalf("update merged wrong: %+v", updated)
	}
	if got, _ := svc.Get(created.ID); got.Title != "Retro" {
		t.Fatalf("get after update = %+v", got)
	}
	if mp.snapshot()[0].Title != "Retro" {
		t.Fatalf("update not persisted")
	}

	if err := svc.Delete(ctx, created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if len(svc.List()) != 0 || len(mp.snapshot()) != 0 {
		t.Fatalf("delete left events behind")
	}
	if err := svc.Delete(ctx, created.ID); err != nil {
		t.Fatalf("second delete should be a no-op, got %v", err)
	}
}

func TestAddKeepsInsertionOrder(t *testing.T) {
	ctx := context.Background()
	mp := newMemoryPersistence([]*event.Event{}...)
	mp.hasData = true
	svc := newService(t, mp)

	late := standup()
	late.Start = late.Start.Add(5 * time.Hour)
	late.End = late.End.Add(5 * time.Hour)
	if _, err := svc.Add(ctx, late); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := svc.Add(ctx, standup()); err != nil {
		t.Fatalf("add: %v", err)
	}
	list := svc.List()
	if list[0].ID != "id-1" || list[1].ID != "id-2" {
		t.Fatalf("order = %s, %s", list[0].ID, list[1].ID)
	}
}

func TestUpdateUnknownID(t *testing.T) {
	mp := newMemoryPersistence()
	svc := newService(t, mp)
	saves := mp.saves

	title := "x"
	if _, err := svc.Update(context.Background(), "missing", event.Patch{Title: &title}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := svc.Get("missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound from Get, got %v", err)
	}
	if mp.saves != saves {
		t.Fatalf("unknown id must not persist")
	}
}

func TestSaveFailureRollsBack(t *testing.T) {
	ctx := context.Background()
	mp := newMemoryPersistence()
	svc := newService(t, mp)
	before := svc.List()

	mp.saveErr = errors.New("disk full")

	if _, err := svc.Add(ctx, standup()); err == nil {
		t.Fatalf("expected add to fail")
	} else {
		var perr *store.PersistenceError
		if !errors.As(err, &perr) {
			t.Fatalf("expected PersistenceError, got %T", err)
		}
	}
	title := "changed"
	if _, err := svc.Update(ctx, "1", event.Patch{Title: &title}); err == nil {
		t.Fatalf("expected update to fail")
	}
	if err := svc.Delete(ctx, "2"); err == nil {
		t.Fatalf("expected delete to fail")
	}

	after := svc.List()
	if len(after) != len(before) {
		t.Fatalf("memory diverged: %d events, want %d", len(after), len(before))
	}
	for i := range before {
		if !after[i].Equal(before[i]) {
			t.Fatalf("event %d changed after failed save", i)
		}
	}

	mp.saveErr = nil
	if _, err := svc.Add(ctx, standup()); err != nil {
		t.Fatalf("add after recovery: %v", err)
	}
}

func TestListReturnsCopies(t *testing.T) {
	svc := newService(t, newMemoryPersistence())
	list := svc.List()
	list[0].Title = "mutated"
	list = append(list[:0], list[1:]...)
	_ = list

	if got := svc.List(); got[0].Title == "mutated" || len(got) != 3 {
		t.Fatalf("List leaked internal state")
	}
}

func TestReloadPicksUpExternalWrites(t *testing.T) {
	ctx := context.Background()
	mp := newMemoryPersistence()
	svc := newService(t, mp)

	if err := mp.Save(ctx, nil); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := svc.Reload(ctx); err != nil {
		t.Fatalf("reload: %v", err)
	}
	if n := len(svc.List()); n != 0 {
		t.Fatalf("reload kept %d stale events", n)
	}
}

func TestWithRealStore(t *testing.T) {
	ctx := context.Background()
	p := store.NewMemory()
	svc, err := New(ctx, p)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	created, err := svc.Add(ctx, standup())
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if len(created.ID) != 36 {
		t.Fatalf("expected uuid id, got %q", created.ID)
	}

	again, err := New(ctx, p)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if got, err := again.Get(created.ID); err != nil || !got.Equal(created) {
		t.Fatalf("event not persisted: %v", err)
	}
}

func TestAgenda(t *testing.T) {
	mp := newMemoryPersistence([]*event.Event{}...)
	mp.hasData = true
	svc := newService(t, mp)
	ctx := context.Background()

	base := time.Date(2024, 1, 10, 0, 0, 0, 0, time.Local)
	for _, offset := range []time.Duration{50 * time.Hour, 9 * time.Hour, 30 * time.Hour, 8 * 24 * time.Hour, 10 * time.Hour} {
		d := event.Draft{Title: offset.String(), Start: base.Add(offset), End: base.Add(offset + time.Hour)}
		if _, err := svc.Add(ctx, d); err != nil {
			t.Fatalf("add: %v", err)
		}
	}

	got := svc.Agenda(base.AddDate(0, 0, 7), base)
	if got.Total != 4 {
		t.Fatalf("total = %d, want 4", got.Total)
	}
	if len(got.Days) != 3 {
		t.Fatalf("days = %d, want 3", len(got.Days))
	}
	first := got.Days[0]
	if !first.Day.Equal(base) || len(first.Events) != 2 {
		t.Fatalf("first day = %s with %d events", first.Day, len(first.Events))
	}
	if !first.Events[0].Start.Before(first.Events[1].Start) {
		t.Fatalf("agenda not sorted by start")
	}
}
