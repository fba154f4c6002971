package scenario

import (
	"fmt"

	"github.com/context-maximiser/sampleproc/pkg/models"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
)

func parseJSON(data []byte) (*Scenario, error) {
	var doc structpb.Struct
	if err := protojson.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("invalid json: %w", err)
	}

	fields := doc.GetFields()
	sc := &Scenario{}

	if name, ok := fields["name"]; ok {
		s, ok := name.GetKind().(*structpb.Value_StringValue)
		if !ok {
			return nil, fmt.Errorf("name: expected a string")
		}
		sc.Name = s.StringValue
	}

	var err error
	if sc.Items, err = jsonSequence("items", fields["items"]); err != nil {
		return nil, err
	}
	if sc.Prices, err = jsonSequence("prices", fields["prices"]); err != nil {
		return nil, err
	}
	return sc, nil
}

func jsonSequence(field string, v *structpb.Value) ([]models.Value, error) {
	if v == nil {
		return []models.Value{}, nil
	}
	list, ok := v.GetKind().(*structpb.Value_ListValue)
	if !ok {
		return nil, fmt.Errorf("%s: expected an array", field)
	}

	values := make([]models.Value, 0, len(list.ListValue.GetValues()))
	for i, elem := range list.ListValue.GetValues() {
		switch k := elem.GetKind().(type) {
		case *structpb.Value_NullValue:
			values = append(values, models.Absent())
		case *structpb.Value_NumberValue:
			values = append(values, models.Number(k.NumberValue))
		case *structpb.Value_StringValue:
			values = append(values, models.Text(k.StringValue))
		default:
			return nil, fmt.Errorf("%s[%d]: unsupported value %s", field, i, protojson.Format(elem))
		}
	}
	return values, nil
}
