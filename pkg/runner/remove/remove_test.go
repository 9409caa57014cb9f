package remove

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/cal/pkg/app"
	"tableflip.dev/cal/pkg/store"
)

func init() {
	color.NoColor = true
}

func TestRemove(t *testing.T) {
	now := time.Date(2024, time.January, 10, 8, 0, 0, 0, time.Local)
	svc, err := app.New(context.Background(), store.NewMemory(),
		app.WithClock(func() time.Time { return now }))
	if err != nil {
		t.Fatalf("app.New: %v", err)
	}

	var buf bytes.Buffer
	r := &Remove{Service: svc, IDs: []string{"2", "missing"}, Out: &buf}
	if err := r.Do(context.Background()); err != nil {
		t.Fatalf("Do: %v", err)
	}
	if len(svc.List()) != 2 {
		t.Fatalf("expected 2 events left, got %d", len(svc.List()))
	}
	out := buf.String()
	if !strings.Contains(out, "deleted 2 Project Deadline") || !strings.Contains(out, "missing not found") {
		t.Fatalf("output:\n%s", out)
	}
}
