package scenario

import (
	"fmt"
	"math"

	"github.com/context-maximiser/sampleproc/pkg/models"
	"gopkg.in/yaml.v3"
)

type yamlScenario struct {
	Name   string    `yaml:"name"`
	Items  yaml.Node `yaml:"items"`
	Prices yaml.Node `yaml:"prices"`
}

func parseYAML(data []byte) (*Scenario, error) {
	var raw yamlScenario
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("invalid yaml: %w", err)
	}

	items, err := yamlSequence("items", &raw.Items)
	if err != nil {
		return nil, err
	}
	prices, err := yamlSequence("prices", &raw.Prices)
	if err != nil {
		return nil, err
	}

	return &Scenario{Name: raw.Name, Items: items, Prices: prices}, nil
}

// yamlSequence keeps the scalar tags so that a quoted "30" stays text while
// an unquoted 30 becomes a number.
func yamlSequence(field string, node *yaml.Node) ([]models.Value, error) {
	if node.Kind == 0 {
		return []models.Value{}, nil
	}
	if node.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("%s: expected a sequence at line %d", field, node.Line)
	}

	values := make([]models.Value, 0, len(node.Content))
	for i, elem := range node.Content {
		if elem.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("%s[%d]: expected a scalar at line %d", field, i, elem.Line)
		}

		switch elem.ShortTag() {
		case "!!null":
			values = append(values, models.Absent())
		case "!!str":
			values = append(values, models.Text(elem.Value))
		case "!!int", "!!float":
			var n float64
			if err := elem.Decode(&n); err != nil {
				return nil, fmt.Errorf("%s[%d]: %w", field, i, err)
			}
			if math.IsNaN(n) || math.IsInf(n, 0) {
				return nil, fmt.Errorf("%s[%d]: %s is not a finite number at line %d", field, i, elem.Value, elem.Line)
			}
			values = append(values, models.Number(n))
		default:
			return nil, fmt.Errorf("%s[%d]: unsupported value %q (%s)", field, i, elem.Value, elem.ShortTag())
		}
	}
	return values, nil
}
