package agenda

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

func TestAgenda(t *testing.T) {
	now := time.Date(2024, time.January, 10, 8, 0, 0, 0, time.Local)
	clock := func() time.Time { return now }
	svc, err := app.New(context.Background(), store.NewMemory(), app.WithClock(clock))
	if err != nil {
		t.Fatalf("app.New: %v", err)
	}

	var buf bytes.Buffer
	a := &Agenda{Service: svc, Window: "3d", Out: &buf, Now: clock}
	if err := a.Do(context.Background()); err != nil {
		t.Fatalf("Do: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "Next 3d - 2 events") {
		t.Fatalf("title:\n%s", out)
	}
	if !strings.Contains(out, "Team Meeting") || !strings.Contains(out, "Project Deadline") || strings.Contains(out, "Client Call") {
		t.Fatalf("window not applied:\n%s", out)
	}

	a.Window = "fortnight"
	if err := a.Do(context.Background()); err == nil {
		t.Fatalf("bad window should fail")
	}
}
