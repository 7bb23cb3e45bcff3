package testing

import (
	"fmt"
	"sync"
	"time"

	"github.com/go-drift/hovertip/pkg/config"
	"github.com/go-drift/hovertip/pkg/schedule"
)

// ViewEvent is one mutation recorded by a RecordingView.
type ViewEvent struct {
	// At is the time since the view was created.
	At time.Duration
	// Op is "text" or "visible".
	Op      string
	Text    string
	Visible bool
}

func (e ViewEvent) String() string {
	if e.Op == "text" {
		return fmt.Sprintf("%v text=%q", e.At, e.Text)
	}
	return fmt.Sprintf("%v visible=%v", e.At, e.Visible)
}

// RecordingView is a tooltip view that records every mutation. All methods
// are safe for concurrent use.
type RecordingView struct {
	mu      sync.Mutex
	watch   *Stopwatch
	text    string
	visible bool
	events  []ViewEvent

	// Delays, when non-zero, is reported by ConfiguredDelays.
	Delays config.Delays
}

// NewRecordingView returns a hidden view timestamping events on clock.
func NewRecordingView(clock schedule.Clock) *RecordingView {
	return &RecordingView{watch: NewStopwatch(clock)}
}

// SetText records the text.
func (v *RecordingView) SetText(text string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.text = text
	v.events = append(v.events, ViewEvent{At: v.watch.Elapsed(), Op: "text", Text: text})
}

// SetVisible records the visibility.
func (v *RecordingView) SetVisible(visible bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.visible = visible
	v.events = append(v.events, ViewEvent{At: v.watch.Elapsed(), Op: "visible", Visible: visible})
}

// ConfiguredDelays reports the platform delays configured on the view.
func (v *RecordingView) ConfiguredDelays() config.Delays {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.Delays
}

// Text returns the last text set.
func (v *RecordingView) Text() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.text
}

// Visible returns the last visibility set.
func (v *RecordingView) Visible() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.visible
}

// Events returns a copy of the recorded mutations.
func (v *RecordingView) Events() []ViewEvent {
	v.mu.Lock()
	defer v.mu.Unlock()
	out := make([]ViewEvent, len(v.events))
	copy(out, v.events)
	return out
}

// Shown returns the times the view became visible, each paired with the
// text it was showing.
func (v *RecordingView) Shown() []ViewEvent {
	var shown []ViewEvent
	text := ""
	for _, e := range v.Events() {
		switch {
		case e.Op == "text":
			text = e.Text
		case e.Visible:
			e.Text = text
			shown = append(shown, e)
		}
	}
	return shown
}

// Reset drops the recorded events.
func (v *RecordingView) Reset() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.events = nil
}
