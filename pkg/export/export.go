// Package export models the print/export action as three discrete steps:
// compute the document name, invoke the platform print primitive, and
// restore the previous window title after a fixed settle delay. The
// platform side is an injected capability so the sequence can be exercised
// headlessly.
package export

import (
	"fmt"
	"time"
)

// Surface is the platform capability the action drives. Implementations
// wrap whatever hosts the document: a browser shell, a desktop webview, or
// a test stub.
type Surface interface {
	Title() string
	SetTitle(title string)
	Print() error
}

// DefaultSettleDelay keeps the restored title out of the print dialog's
// snapshot. The dialog captures the title asynchronously, so restoring too
// early races it.
const DefaultSettleDelay = 150 * time.Millisecond

// Action runs the export sequence against a surface.
type Action struct {
	surface Surface
	delay   time.Duration

	// after schedules the deferred restore; replaced in tests.
	after func(time.Duration, func()) *time.Timer
}

// New constructs an Action. A non-positive delay falls back to the default.
func New(surface Surface, delay time.Duration) *Action {
	if delay <= 0 {
		delay = DefaultSettleDelay
	}
	return &Action{surface: surface, delay: delay, after: time.AfterFunc}
}

// Run temporarily renames the surface to the document base name, triggers
// the print primitive, and schedules the title restore as a fire-and-forget
// deferred step. The restore is scheduled even when printing fails so the
// surface never keeps the document name.
func (a *Action) Run(baseName string) error {
	if a.surface == nil {
		return fmt.Errorf("export: surface is required")
	}

	previous := a.surface.Title()
	a.surface.SetTitle(baseName)

	err := a.surface.Print()
	a.after(a.delay, func() {
		a.surface.SetTitle(previous)
	})
	if err != nil {
		return fmt.Errorf("export: print: %w", err)
	}
	return nil
}
