package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// stepSpinner animates one status line while a strip is rendered. The
// render runs as a fixed number of steps (layout, then one per format) and
// the line reads "⠋ [2/3] Rendering png".
type stepSpinner struct {
	w      io.Writer
	ctx    context.Context
	cancel context.CancelFunc

	mu    sync.Mutex
	label string
	step  int
	total int
	frame int
	width int // widest line drawn so far

	started  bool
	done     chan struct{}
	stopped  chan struct{}
	stopOnce sync.Once
}

// newStepSpinner returns a spinner for total steps that draws on w and
// stops when ctx is cancelled.
func newStepSpinner(ctx context.Context, w io.Writer, total int) *stepSpinner {
	sctx, cancel := context.WithCancel(ctx)
	return &stepSpinner{
		w:       w,
		ctx:     sctx,
		cancel:  cancel,
		total:   max(1, total),
		done:    make(chan struct{}),
		stopped: make(chan struct{}),
	}
}

// Start begins the animation.
func (s *stepSpinner) Start() {
	s.mu.Lock()
	s.started = true
	s.mu.Unlock()

	go func() {
		defer close(s.stopped)
		ticker := time.NewTicker(80 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-s.ctx.Done():
				return
			case <-s.done:
				return
			case <-ticker.C:
				s.mu.Lock()
				s.frame++
				s.drawLocked()
				s.mu.Unlock()
			}
		}
	}()
}

// Step moves to the next step and redraws the line. Steps past the total
// keep the last counter.
func (s *stepSpinner) Step(format string, args ...any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.step < s.total {
		s.step++
	}
	s.label = fmt.Sprintf(format, args...)
	if s.started {
		s.drawLocked()
	}
}

// status is the line without the animation frame.
func (s *stepSpinner) status() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.statusLocked()
}

func (s *stepSpinner) statusLocked() string {
	return fmt.Sprintf("[%d/%d] %s", s.step, s.total, s.label)
}

func (s *stepSpinner) drawLocked() {
	line := s.statusLocked()
	s.width = max(s.width, len(line)+2)
	glyph := spinnerFrames[s.frame%len(spinnerFrames)]
	fmt.Fprintf(s.w, "\r%s %s", styleIconSpinner.Render(glyph), StyleDim.Render(line))
}

// Stop ends the animation and clears the line. It is safe to call more
// than once.
func (s *stepSpinner) Stop() {
	s.stopOnce.Do(func() {
		s.cancel()
		close(s.done)
		s.mu.Lock()
		started := s.started
		s.mu.Unlock()
		if started {
			<-s.stopped
		}
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.width > 0 {
			fmt.Fprintf(s.w, "\r%s\r", strings.Repeat(" ", s.width+2))
		}
	})
}

// Fail stops the spinner and reports which step failed.
func (s *stepSpinner) Fail(err error) {
	step := s.status()
	s.Stop()
	printError("%s: %v", step, err)
}

// Cancelled reports whether the context ended the spinner.
func (s *stepSpinner) Cancelled() bool {
	select {
	case <-s.done:
		return false
	default:
	}
	return s.ctx.Err() != nil
}
