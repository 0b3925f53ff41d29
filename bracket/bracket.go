// Package bracket prints values to standard output surrounded by a visual separator, which makes ad-hoc debug output
// easy to spot in busy terminals.
package bracket

import (
	"fmt"
	"io"
	"os"

	"github.com/bracketlog/tools/log"
)

// separator is a blank line, the marker and another blank line.
const separator = "\n---\n\n"

// stdout is where Log writes to.
var stdout io.Writer = os.Stdout

// Log writes a separator block, the given values and a second separator block to standard output.
//
// The values are formatted as by fmt.Println so multiple values are joined by a single space. Write failures are not
// returned, they're reported to the diagnostics logger (see 'log.SetLogger').
func Log(values ...any) {
	if err := fprint(stdout, values...); err != nil {
		log.Errorf("(Bracket) Failed to write to stdout: %v", err)
	}
}

// fprint performs the three writes which make up a single call to Log, stopping at the first failure.
func fprint(w io.Writer, values ...any) error {
	if _, err := io.WriteString(w, separator); err != nil {
		return fmt.Errorf("failed to write opening separator: %w", err)
	}

	if _, err := fmt.Fprintln(w, values...); err != nil {
		return fmt.Errorf("failed to write payload: %w", err)
	}

	if _, err := io.WriteString(w, separator); err != nil {
		return fmt.Errorf("failed to write closing separator: %w", err)
	}

	return nil
}
