package ui

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"
)

// dialogExitDelay matches the overlay's exit transition.
const dialogExitDelay = 200 * time.Millisecond

type ConfirmOptions struct {
	Title       string
	Message     string
	ConfirmText string
	CancelText  string
	Tone        string // affects styling only
}

// Dialog is a pending confirmation. It resolves exactly once, to true via
// Confirm or to false via Cancel or DismissOverlay, and detaches shortly
// after resolution regardless of the path taken.
type Dialog struct {
	opts   ConfirmOptions
	result chan bool

	mu       sync.Mutex
	once     sync.Once
	attached bool
}

// ConfirmDialog presents a blocking confirmation and returns the pending
// dialog. The confirm control holds initial focus. Read the outcome from
// Result, or drive it interactively with Await.
func ConfirmDialog(out io.Writer, opts ConfirmOptions) *Dialog {
	if opts.Title == "" {
		opts.Title = "Please confirm"
	}
	if opts.Message == "" {
		opts.Message = "Are you sure?"
	}
	if opts.ConfirmText == "" {
		opts.ConfirmText = "Confirm"
	}
	if opts.CancelText == "" {
		opts.CancelText = "Cancel"
	}
	if opts.Tone == "" {
		opts.Tone = "warning"
	}

	d := &Dialog{opts: opts, result: make(chan bool, 1), attached: true}
	if out != nil {
		fmt.Fprintf(out, "%s\n%s\n[%s] / %s\n", opts.Title, opts.Message, opts.ConfirmText, opts.CancelText)
	}
	return d
}

func (d *Dialog) resolve(value bool) {
	d.once.Do(func() {
		d.result <- value
		time.AfterFunc(dialogExitDelay, func() {
			d.mu.Lock()
			d.attached = false
			d.mu.Unlock()
		})
	})
}

// Confirm activates the confirm control.
func (d *Dialog) Confirm() { d.resolve(true) }

// Cancel activates the cancel control.
func (d *Dialog) Cancel() { d.resolve(false) }

// DismissOverlay is a click on the overlay background, outside the dialog
// body. It resolves false.
func (d *Dialog) DismissOverlay() { d.resolve(false) }

// Result yields the resolved boolean. It delivers exactly one value.
func (d *Dialog) Result() <-chan bool {
	return d.result
}

// Attached reports whether the overlay is still present.
func (d *Dialog) Attached() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.attached
}

// Await reads one line and resolves the dialog from it. An empty line
// confirms, matching the confirm control's initial focus; "y", "yes" and
// the confirm label confirm as well. Anything else cancels. A read failure
// counts as dismissing the overlay.
func (d *Dialog) Await(in io.Reader) bool {
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && line == "" {
		d.DismissOverlay()
		return <-d.result
	}
	switch answer := strings.ToLower(strings.TrimSpace(line)); answer {
	case "", "y", "yes", strings.ToLower(d.opts.ConfirmText):
		d.Confirm()
	default:
		d.Cancel()
	}
	return <-d.result
}
