package transform

import (
	"fmt"
	"math"
	"strings"

	"github.com/context-maximiser/sampleproc/pkg/models"
	"github.com/spf13/cast"
)

// Policy decides what the aggregator does with non-numeric elements
type Policy string

const (
	// PolicyFailFast rejects the first element that is not a number
	PolicyFailFast Policy = "fail-fast"
	// PolicyCoerce parses textual numerals and rejects what cannot be parsed
	PolicyCoerce Policy = "coerce"
)

// DefaultPolicy is used when no policy is configured
const DefaultPolicy = PolicyFailFast

// ParsePolicy converts a configured name into a Policy
func ParsePolicy(name string) (Policy, error) {
	switch Policy(strings.ToLower(strings.TrimSpace(name))) {
	case "":
		return DefaultPolicy, nil
	case PolicyFailFast:
		return PolicyFailFast, nil
	case PolicyCoerce:
		return PolicyCoerce, nil
	default:
		return "", fmt.Errorf("unknown sum policy %q (want %q or %q)", name, PolicyFailFast, PolicyCoerce)
	}
}

// Aggregator sums sequences under a fixed policy
type Aggregator struct {
	policy Policy
}

// NewAggregator creates an aggregator. An empty policy means DefaultPolicy.
func NewAggregator(policy Policy) *Aggregator {
	if policy == "" {
		policy = DefaultPolicy
	}
	return &Aggregator{policy: policy}
}

// Policy returns the policy the aggregator enforces
func (a *Aggregator) Policy() Policy {
	return a.policy
}

// Sum adds every element to a running total that starts at zero
func (a *Aggregator) Sum(in []models.Value) (float64, error) {
	total := 0.0
	for i, v := range in {
		n, err := a.number(i, v)
		if err != nil {
			return 0, err
		}
		total += n
	}
	return total, nil
}

func (a *Aggregator) number(i int, v models.Value) (float64, error) {
	switch {
	case v.Kind == models.KindNumber:
		return v.Num, nil
	case v.Kind == models.KindText && a.policy == PolicyCoerce:
		n, err := coerce(v.Str)
		if err != nil {
			return 0, &TypeMismatchError{Op: "sum", Index: i, Value: v, Want: models.KindNumber, Err: err}
		}
		return n, nil
	default:
		return 0, &TypeMismatchError{Op: "sum", Index: i, Value: v, Want: models.KindNumber}
	}
}

func coerce(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty text is not a number")
	}
	n, err := cast.ToFloat64E(s)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, fmt.Errorf("%s is not a finite number", s)
	}
	return n, nil
}

// Sum is shorthand for NewAggregator(policy).Sum(in)
func Sum(in []models.Value, policy Policy) (float64, error) {
	return NewAggregator(policy).Sum(in)
}
