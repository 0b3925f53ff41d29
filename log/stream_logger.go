package log

import (
	"fmt"
	"io"
	"os"
	"time"
)

// StreamLogger prints diagnostics to a stream, standard error when W is nil.
type StreamLogger struct {
	W io.Writer
}

// Log writes a single line made up of the time, the level prefix and the formatted message.
func (s StreamLogger) Log(level Level, format string, args ...any) {
	w := s.W
	if w == nil {
		w = os.Stderr
	}

	fmt.Fprintln(w, time.Now().Format(time.RFC3339Nano)+" "+level.String()+": "+fmt.Sprintf(format, args...))
}
