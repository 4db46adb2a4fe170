package utils

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

const (
	colorReset  = "\033[0m"
	colorGreen  = "\033[32m"
	colorRed    = "\033[31m"
	colorYellow = "\033[33m"
	colorBlue   = "\033[34m"
)

// Logger prints tagged, leveled messages. Extra arguments are rendered as
// key=value pairs. Safe for concurrent use.
type Logger struct {
	mu  sync.Mutex
	out io.Writer
	tag string
}

func NewLogger(out io.Writer, tag string) *Logger {
	if out == nil {
		out = os.Stdout
	}
	return &Logger{out: out, tag: tag}
}

func (l *Logger) Success(msg string, kv ...any) { l.print(colorGreen, "SUCCESS", msg, kv) }
func (l *Logger) Error(msg string, kv ...any)   { l.print(colorRed, "ERROR", msg, kv) }
func (l *Logger) Info(msg string, kv ...any)    { l.print(colorBlue, "INFO", msg, kv) }
func (l *Logger) Warn(msg string, kv ...any)    { l.print(colorYellow, "WARNING", msg, kv) }

func (l *Logger) print(color, level, msg string, kv []any) {
	var b strings.Builder
	fmt.Fprintf(&b, "%s[%s]%s", color, level, colorReset)
	if l.tag != "" {
		fmt.Fprintf(&b, " %s:", l.tag)
	}
	b.WriteByte(' ')
	b.WriteString(msg)
	for i := 0; i+1 < len(kv); i += 2 {
		fmt.Fprintf(&b, " %v=%v", kv[i], kv[i+1])
	}
	if len(kv)%2 == 1 {
		fmt.Fprintf(&b, " %v", kv[len(kv)-1])
	}
	b.WriteByte('\n')

	l.mu.Lock()
	defer l.mu.Unlock()
	io.WriteString(l.out, b.String())
}
