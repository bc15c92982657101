package export

import (
	"errors"
	"testing"
	"time"
)

type stubSurface struct {
	title    string
	printErr error
	printed  int
	titles   []string
}

func (s *stubSurface) Title() string { return s.title }

func (s *stubSurface) SetTitle(title string) {
	s.title = title
	s.titles = append(s.titles, title)
}

func (s *stubSurface) Print() error {
	s.printed++
	return s.printErr
}

// immediateAction wires the deferred restore to run synchronously so tests
// observe the full sequence without sleeping.
func immediateAction(surface Surface) *Action {
	action := New(surface, time.Millisecond)
	action.after = func(_ time.Duration, fn func()) *time.Timer {
		fn()
		return nil
	}
	return action
}

func TestRunRenamesPrintsAndRestores(t *testing.T) {
	t.Parallel()

	surface := &stubSurface{title: "Show Advance Sheet"}
	if err := immediateAction(surface).Run("Show-Advance_Gala_2025-04-12"); err != nil {
		t.Fatalf("Run: %v", err)
	}

	if surface.printed != 1 {
		t.Fatalf("print invoked %d times, want 1", surface.printed)
	}
	want := []string{"Show-Advance_Gala_2025-04-12", "Show Advance Sheet"}
	if len(surface.titles) != 2 || surface.titles[0] != want[0] || surface.titles[1] != want[1] {
		t.Fatalf("title sequence = %v, want %v", surface.titles, want)
	}
	if surface.title != "Show Advance Sheet" {
		t.Fatalf("final title = %q, want the original restored", surface.title)
	}
}

func TestRunRestoresTitleAfterPrintFailure(t *testing.T) {
	t.Parallel()

	surface := &stubSurface{title: "Original", printErr: errors.New("dialog dismissed")}
	err := immediateAction(surface).Run("Show-Advance_Event_2025-01-01")
	if err == nil {
		t.Fatalf("expected print error to propagate")
	}
	if surface.title != "Original" {
		t.Fatalf("title after failed print = %q, want restore", surface.title)
	}
}

func TestRunDeferredRestoreUsesConfiguredDelay(t *testing.T) {
	t.Parallel()

	surface := &stubSurface{title: "Original"}
	action := New(surface, 25*time.Millisecond)

	var gotDelay time.Duration
	action.after = func(d time.Duration, fn func()) *time.Timer {
		gotDelay = d
		fn()
		return nil
	}
	if err := action.Run("Doc"); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if gotDelay != 25*time.Millisecond {
		t.Fatalf("restore delay = %v, want 25ms", gotDelay)
	}
}

func TestNewDefaultsDelay(t *testing.T) {
	t.Parallel()

	action := New(&stubSurface{}, 0)
	if action.delay != DefaultSettleDelay {
		t.Fatalf("delay = %v, want default", action.delay)
	}
}

func TestRunRequiresSurface(t *testing.T) {
	t.Parallel()

	if err := New(nil, 0).Run("Doc"); err == nil {
		t.Fatalf("expected error for nil surface")
	}
}
