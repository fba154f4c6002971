// Package scenario provides the literal inputs the driver runs against, either
// the built-in reference scenario or one loaded from a YAML or JSON file.
package scenario

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/context-maximiser/sampleproc/pkg/models"
)

// Scenario holds the two input sequences for a single run
type Scenario struct {
	Name   string
	Items  []models.Value
	Prices []models.Value
}

// Format identifies a scenario file encoding
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// Default returns the reference scenario. The textual "30" among the prices
// is intentional.
func Default() *Scenario {
	return &Scenario{
		Name:   "reference",
		Items:  models.Values("apple", "banana", nil, "cherry"),
		Prices: models.Values(10, 20, "30", 40),
	}
}

// FormatFromPath infers the encoding from the file extension
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unsupported scenario file extension %q", filepath.Ext(path))
	}
}

// Load reads a scenario file. When the file has no name field the base file
// name is used.
func Load(path string) (*Scenario, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario: %w", err)
	}

	sc, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("failed to parse scenario %s: %w", path, err)
	}
	if sc.Name == "" {
		sc.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return sc, nil
}

// Parse decodes a scenario document in the given format
func Parse(data []byte, format Format) (*Scenario, error) {
	switch format {
	case FormatYAML:
		return parseYAML(data)
	case FormatJSON:
		return parseJSON(data)
	default:
		return nil, fmt.Errorf("unsupported scenario format %q", format)
	}
}
