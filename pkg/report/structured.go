package report

import (
	"fmt"
	"io"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
	"gopkg.in/yaml.v3"
)

func init() {
	register(FormatJSON, func(w io.Writer, base Result) Writer {
		return &documentWriter{w: w, result: base, encode: encodeJSON}
	})
	register(FormatYAML, func(w io.Writer, base Result) Writer {
		return &documentWriter{w: w, result: base, encode: encodeYAML}
	})
}

// documentWriter collects a Result and encodes it once on Flush
type documentWriter struct {
	w      io.Writer
	result Result
	encode func(Result) ([]byte, error)
}

func (d *documentWriter) Processed(items []string) error {
	d.result.Processed = items
	return nil
}

func (d *documentWriter) Total(total float64) error {
	d.result.Total = &total
	return nil
}

func (d *documentWriter) Fail(err error) error {
	if err != nil {
		d.result.Error = err.Error()
	}
	return nil
}

func (d *documentWriter) Flush() error {
	data, err := d.encode(d.result)
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	_, err = d.w.Write(data)
	return err
}

func encodeJSON(r Result) ([]byte, error) {
	processed := make([]any, len(r.Processed))
	for i, s := range r.Processed {
		processed[i] = s
	}

	fields := map[string]any{
		"processed": processed,
	}
	if r.Scenario != "" {
		fields["scenario"] = r.Scenario
	}
	if r.Policy != "" {
		fields["policy"] = r.Policy
	}
	if r.Total != nil {
		fields["total"] = *r.Total
	}
	if r.Error != "" {
		fields["error"] = r.Error
	}

	doc, err := structpb.NewStruct(fields)
	if err != nil {
		return nil, err
	}
	data, err := protojson.MarshalOptions{Multiline: true, Indent: "  "}.Marshal(doc)
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

func encodeYAML(r Result) ([]byte, error) {
	if r.Processed == nil {
		r.Processed = []string{}
	}
	return yaml.Marshal(r)
}
