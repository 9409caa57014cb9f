package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"tableflip.dev/cal/pkg/event"
)

// Key is the single key the event list is stored under.
const Key = "calendar-events"

// ErrNoData is returned by Load when nothing was ever saved.
var ErrNoData = errors.New("store: no data")

// PersistenceError wraps a failure of the storage medium.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("store: %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// Persistence defines the persistence contract for the event list.
type Persistence interface {
	// Load returns the saved events, ErrNoData when nothing was saved, or a
	// *PersistenceError when the medium or its content is unusable.
	Load(ctx context.Context) ([]*event.Event, error)
	// Save replaces the stored list with events.
	Save(ctx context.Context, events []*event.Event) error
	// Close releases the backend.
	Close() error
}

// Watcher is implemented by backends that can report writes made by other
// processes.
type Watcher interface {
	Watch(ctx context.Context) (<-chan Change, error)
}

// Change is emitted by Watch when the stored list was rewritten.
type Change struct {
	Key string
}

// Config selects and locates a backend.
type Config interface {
	BasePath() string
	BackendName() string
}

// Backend names understood by Open.
const (
	BackendDiskv  = "diskv"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// Open creates the Persistence described by cfg.
func Open(ctx context.Context, cfg Config) (Persistence, error) {
	switch name := strings.ToLower(cfg.BackendName()); name {
	case "", BackendDiskv:
		return NewDiskv(cfg.BasePath())
	case BackendSQLite:
		return NewSQLite(ctx, cfg.BasePath()+".sqlite")
	case BackendMemory:
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("store: unknown backend %q", name)
	}
}

// Encode renders events in the stored JSON form.
func Encode(events []*event.Event) ([]byte, error) {
	if events == nil {
		events = []*event.Event{}
	}
	return json.Marshal(events)
}

// Decode parses the stored JSON form.
func Decode(data []byte) ([]*event.Event, error) {
	var events []*event.Event
	if err := json.Unmarshal(data, &events); err != nil {
		return nil, err
	}
	out := events[:0]
	for _, e := range events {
		if e != nil {
			out = append(out, e)
		}
	}
	return out, nil
}

// kv is the raw medium below the event codec.
type kv interface {
	read(ctx context.Context, key string) ([]byte, error)
	write(ctx context.Context, key string, value []byte) error
}

type codec struct {
	kv kv
}

func (c codec) Load(ctx context.Context) ([]*event.Event, error) {
	data, err := c.kv.read(ctx, Key)
	if err != nil {
		if errors.Is(err, ErrNoData) {
			return nil, ErrNoData
		}
		return nil, &PersistenceError{Op: "read", Err: err}
	}
	events, err := Decode(data)
	if err != nil {
		return nil, &PersistenceError{Op: "decode", Err: err}
	}
	return events, nil
}

func (c codec) Save(ctx context.Context, events []*event.Event) error {
	data, err := Encode(events)
	if err != nil {
		return &PersistenceError{Op: "encode", Err: err}
	}
	if err := c.kv.write(ctx, Key, data); err != nil {
		return &PersistenceError{Op: "write", Err: err}
	}
	return nil
}
