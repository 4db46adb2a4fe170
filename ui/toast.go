// Package ui renders transient user feedback: toasts and confirm dialogs.
// Both write to an io.Writer so callers decide where feedback surfaces.
package ui

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

type Level string

const (
	Success Level = "success"
	Error   Level = "error"
	Warning Level = "warning"
	Info    Level = "info"
)

const (
	// DefaultDuration is the standard toast lifetime, applied by the
	// Notify helpers.
	DefaultDuration = 4 * time.Second

	// exitDelay is how long a dismissed element lingers before it is
	// detached, leaving room for an exit transition.
	exitDelay = 220 * time.Millisecond
)

var levelStyles = map[Level]string{
	Success: "\033[32m",
	Error:   "\033[31m",
	Warning: "\033[33m",
	Info:    "\033[34m",
}

// Action is a labelled button on a toast. Triggering it invokes OnClick and
// then dismisses the toast.
type Action struct {
	Label   string
	Variant string
	OnClick func()
}

// Options control a single toast. A zero Duration disables auto-dismissal;
// the Notify helpers fill in DefaultDuration and Dismissible for callers
// that want the standard behavior.
type Options struct {
	Title       string
	Message     string
	Type        Level
	Duration    time.Duration
	Dismissible bool
	Actions     []Action
}

// NotificationCenter is the single host for all toasts. Construct one at
// application start and pass it by reference.
type NotificationCenter struct {
	out io.Writer

	mu     sync.Mutex
	active map[string]*Toast
}

func NewNotificationCenter(out io.Writer) *NotificationCenter {
	if out == nil {
		out = os.Stdout
	}
	return &NotificationCenter{out: out, active: make(map[string]*Toast)}
}

// Toast is the handle returned by Show. Close dismisses it manually.
type Toast struct {
	id     string
	center *NotificationCenter
	opts   Options

	mu      sync.Mutex
	visible bool
	once    sync.Once
}

// Show creates an independent toast and returns its handle. Toasts coexist
// and dismiss on their own schedules.
func (nc *NotificationCenter) Show(opts Options) *Toast {
	if _, ok := levelStyles[opts.Type]; !ok {
		opts.Type = Info
	}

	t := &Toast{id: uuid.NewString(), center: nc, opts: opts, visible: true}

	nc.mu.Lock()
	nc.active[t.id] = t
	nc.mu.Unlock()

	nc.render(t)

	if opts.Duration > 0 {
		time.AfterFunc(opts.Duration, t.Close)
	}
	return t
}

func (nc *NotificationCenter) render(t *Toast) {
	var b strings.Builder
	fmt.Fprintf(&b, "%s[%s]%s", levelStyles[t.opts.Type], strings.ToUpper(string(t.opts.Type)), "\033[0m")
	if t.opts.Title != "" {
		fmt.Fprintf(&b, " %s:", t.opts.Title)
	}
	if t.opts.Message != "" {
		fmt.Fprintf(&b, " %s", t.opts.Message)
	}
	if len(t.opts.Actions) > 0 {
		labels := make([]string, 0, len(t.opts.Actions))
		for _, a := range t.opts.Actions {
			labels = append(labels, a.Label)
		}
		fmt.Fprintf(&b, " [%s]", strings.Join(labels, " | "))
	}
	if t.opts.Dismissible {
		b.WriteString(" (x)")
	}
	b.WriteByte('\n')

	nc.mu.Lock()
	defer nc.mu.Unlock()
	io.WriteString(nc.out, b.String())
}

// Close hides the toast immediately and detaches it after the exit delay.
// Safe to call more than once; only the first call has effect.
func (t *Toast) Close() {
	t.once.Do(func() {
		t.mu.Lock()
		t.visible = false
		t.mu.Unlock()

		time.AfterFunc(exitDelay, func() {
			t.center.mu.Lock()
			delete(t.center.active, t.id)
			t.center.mu.Unlock()
		})
	})
}

// Visible reports whether the toast is still shown.
func (t *Toast) Visible() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.visible
}

// Trigger activates the action with the given label: its callback runs,
// then the toast dismisses. Returns false when no such action exists.
func (t *Toast) Trigger(label string) bool {
	for _, a := range t.opts.Actions {
		if a.Label == label {
			if a.OnClick != nil {
				a.OnClick()
			}
			t.Close()
			return true
		}
	}
	return false
}

// ActiveCount reports how many toasts are still attached to the host.
func (nc *NotificationCenter) ActiveCount() int {
	nc.mu.Lock()
	defer nc.mu.Unlock()
	return len(nc.active)
}

// Notify shows a plain toast with the standard lifetime.
func (nc *NotificationCenter) Notify(message string) *Toast {
	return nc.Show(Options{Message: message, Duration: DefaultDuration, Dismissible: true})
}

func (nc *NotificationCenter) NotifySuccess(message string) *Toast {
	return nc.Show(Options{Message: message, Type: Success, Duration: DefaultDuration, Dismissible: true})
}

func (nc *NotificationCenter) NotifyError(message string) *Toast {
	return nc.Show(Options{Message: message, Type: Error, Duration: DefaultDuration, Dismissible: true})
}

func (nc *NotificationCenter) NotifyWarning(message string) *Toast {
	return nc.Show(Options{Message: message, Type: Warning, Duration: DefaultDuration, Dismissible: true})
}

func (nc *NotificationCenter) NotifyInfo(message string) *Toast {
	return nc.Show(Options{Message: message, Type: Info, Duration: DefaultDuration, Dismissible: true})
}
