// Package report renders the results of a run.
//
// The text format writes each line as soon as it is known, so a run that fails
// while summing has still printed its Processed line. Structured formats
// collect the result and emit a single document on Flush.
package report

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/context-maximiser/sampleproc/pkg/models"
)

// Format names an output encoding
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Result is what a run produced. Total is nil until the sum succeeds.
type Result struct {
	Scenario  string   `yaml:"scenario,omitempty"`
	Policy    string   `yaml:"policy,omitempty"`
	Processed []string `yaml:"processed"`
	Total     *float64 `yaml:"total,omitempty"`
	Error     string   `yaml:"error,omitempty"`
}

// Writer receives results as they become available
type Writer interface {
	Processed(items []string) error
	Total(total float64) error
	Fail(err error) error
	Flush() error
}

var writers = map[Format]func(w io.Writer, base Result) Writer{}

func register(format Format, fn func(io.Writer, Result) Writer) {
	writers[format] = fn
}

// Formats lists the registered output formats
func Formats() []string {
	names := make([]string, 0, len(writers))
	for f := range writers {
		names = append(names, string(f))
	}
	sort.Strings(names)
	return names
}

// NewWriter returns a writer for the named format. base carries metadata
// (scenario name, policy) that structured formats include.
func NewWriter(format string, w io.Writer, base Result) (Writer, error) {
	f := Format(strings.ToLower(strings.TrimSpace(format)))
	if f == "" {
		f = FormatText
	}
	fn, ok := writers[f]
	if !ok {
		return nil, fmt.Errorf("unknown output format %q (want one of %s)", format, strings.Join(Formats(), ", "))
	}
	return fn(w, base), nil
}

// FormatSequence renders items as ["A", "B"]
func FormatSequence(items []string) string {
	quoted := make([]string, len(items))
	for i, s := range items {
		quoted[i] = strconv.Quote(s)
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}

// FormatTotal renders a total without a trailing fraction for whole numbers
func FormatTotal(total float64) string {
	return models.FormatNumber(total)
}
