// Package chatview holds the state of a single prompt/response exchange and
// reveals the response one character at a time.
//
// A View moves Idle -> Submitting -> Revealing -> Idle. A failed submission
// goes straight back to Idle with an error message set. Only the latest
// exchange is kept.
package chatview

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/yoockh/htmlchat/internal/sanitize"
)

const (
	DefaultDelay = 30 * time.Millisecond

	EmptyPromptMessage = "Please enter a message."
	FallbackMessage    = "Something went wrong"
)

var (
	ErrEmptyPrompt = errors.New("chatview: empty prompt")
	ErrBusy        = errors.New("chatview: reveal in progress")
	ErrClosed      = errors.New("chatview: view closed")
)

// Generator sends a prompt to the proxy endpoint and returns its HTML text.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// State is a snapshot of what the view shows.
type State struct {
	Prompt    string
	Displayed string
	Err       string
	Animating bool
}

type Option func(*View)

func WithDelay(d time.Duration) Option {
	return func(v *View) {
		if d > 0 {
			v.delay = d
		}
	}
}

func WithScheduler(s Scheduler) Option {
	return func(v *View) {
		if s != nil {
			v.sched = s
		}
	}
}

// WithOnChange registers fn to receive every new state. fn runs without the
// view lock held and may call back into the view.
func WithOnChange(fn func(State)) Option {
	return func(v *View) { v.onChange = fn }
}

type View struct {
	gen      Generator
	delay    time.Duration
	sched    Scheduler
	onChange func(State)

	mu     sync.Mutex
	state  State
	task   Task   // pending reveal step, nil when idle
	seq    uint64 // bumped whenever a reveal starts or is cancelled
	closed bool
}

func New(gen Generator, opts ...Option) *View {
	v := &View{
		gen:   gen,
		delay: DefaultDelay,
		sched: TimerScheduler{},
	}
	for _, o := range opts {
		o(v)
	}
	return v
}

func (v *View) State() State {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state
}

func (v *View) SetPrompt(s string) {
	v.mu.Lock()
	v.state.Prompt = s
	v.mu.Unlock()
}

// Submit sends the trimmed prompt and, on success, starts revealing the
// sanitized plain text. It blocks for the network call.
func (v *View) Submit(ctx context.Context) error {
	v.mu.Lock()
	if v.closed {
		v.mu.Unlock()
		return ErrClosed
	}
	if v.state.Animating {
		v.mu.Unlock()
		return ErrBusy
	}
	prompt := strings.TrimSpace(v.state.Prompt)
	if prompt == "" {
		v.state.Err = EmptyPromptMessage
		v.commitLocked()
		return ErrEmptyPrompt
	}
	v.cancelLocked()
	v.state.Err = ""
	v.state.Displayed = ""
	v.state.Animating = true
	v.commitLocked()

	text, err := v.gen.Generate(ctx, prompt)

	v.mu.Lock()
	if v.closed {
		v.mu.Unlock()
		return ErrClosed
	}
	if err != nil {
		v.state.Err = err.Error()
		if v.state.Err == "" {
			v.state.Err = FallbackMessage
		}
		v.state.Animating = false
		v.commitLocked()
		return err
	}
	v.mu.Unlock()

	v.Reveal(sanitize.PlainText(sanitize.HTML(text)))
	return nil
}

// Reveal shows text one character at a time, replacing any reveal already
// running. The first character appears at once; each later one after the
// view's delay.
func (v *View) Reveal(text string) {
	v.mu.Lock()
	if v.closed {
		v.mu.Unlock()
		return
	}
	v.cancelLocked()
	seq := v.seq
	v.state.Displayed = ""
	v.state.Animating = true
	v.mu.Unlock()

	v.step(seq, []rune(text), 0)
}

// Close cancels any pending reveal step. Callbacks and network results that
// arrive afterwards are ignored.
func (v *View) Close() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.cancelLocked()
	v.closed = true
}

func (v *View) step(seq uint64, text []rune, i int) {
	v.mu.Lock()
	if v.closed || seq != v.seq {
		v.mu.Unlock()
		return
	}
	done := i >= len(text)
	if done {
		v.state.Animating = false
		v.task = nil
	} else {
		v.state.Displayed = string(text[:i+1])
	}
	v.commitLocked()

	if done {
		return
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	if v.closed || seq != v.seq {
		return
	}
	v.task = v.sched.AfterFunc(v.delay, func() { v.step(seq, text, i+1) })
}

// cancelLocked stops the pending step and invalidates callbacks already in
// flight.
func (v *View) cancelLocked() {
	if v.task != nil {
		v.task.Stop()
		v.task = nil
	}
	v.seq++
}

// commitLocked releases the lock and publishes the current state.
func (v *View) commitLocked() {
	snap := v.state
	v.mu.Unlock()
	if v.onChange != nil {
		v.onChange(snap)
	}
}
