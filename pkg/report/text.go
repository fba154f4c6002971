package report

import (
	"fmt"
	"io"
)

func init() {
	register(FormatText, func(w io.Writer, _ Result) Writer {
		return &textWriter{w: w}
	})
}

type textWriter struct {
	w         io.Writer
	processed bool
}

func (t *textWriter) Processed(items []string) error {
	t.processed = true
	_, err := fmt.Fprintf(t.w, "Processed: %s\n", FormatSequence(items))
	return err
}

func (t *textWriter) Total(total float64) error {
	_, err := fmt.Fprintf(t.w, "Total: %s\n", FormatTotal(total))
	return err
}

// Fail completes the pair of result lines once Processed has been written.
// The command still reports err on stderr.
func (t *textWriter) Fail(err error) error {
	if !t.processed || err == nil {
		return nil
	}
	_, werr := fmt.Fprintf(t.w, "Total: error: %v\n", err)
	return werr
}

func (t *textWriter) Flush() error { return nil }
