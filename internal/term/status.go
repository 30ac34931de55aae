package term

import (
	"strings"
	"sync"

	"github.com/juju/loggo"
)

// statusWriter is a loggo.Writer that keeps the latest log message for the
// status line. Writing to stderr would corrupt the screen.
type statusWriter struct {
	mu   sync.Mutex
	last string
}

var _ loggo.Writer = (*statusWriter)(nil)

func (w *statusWriter) Write(entry loggo.Entry) {
	msg := strings.ReplaceAll(entry.Message, "\n", " / ")
	if entry.Level >= loggo.WARNING {
		msg = entry.Level.String() + " " + msg
	}
	w.mu.Lock()
	w.last = msg
	w.mu.Unlock()
}

func (w *statusWriter) Last() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.last
}
