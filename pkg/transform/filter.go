package transform

import (
	"strings"

	"github.com/context-maximiser/sampleproc/pkg/models"
)

// UppercaseFilter drops absent elements and uppercases the rest, keeping
// their relative order. Numeric elements are rejected rather than converted
// to text.
func UppercaseFilter(in []models.Value) ([]string, error) {
	result := make([]string, 0, models.CountPresent(in))
	for i, v := range in {
		switch v.Kind {
		case models.KindAbsent:
			continue
		case models.KindText:
			result = append(result, strings.ToUpper(v.Str))
		default:
			return nil, &TypeMismatchError{Op: "uppercase", Index: i, Value: v, Want: models.KindText}
		}
	}
	return result, nil
}
