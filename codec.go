package localstore

import (
	"encoding/json"
	"fmt"
)

// wrappedValue is the persisted envelope for a single logical value. The
// envelope is what lets a stored null round-trip: "no entry" is the medium's
// absent-key signal, while a stored nil decodes to {"value":null}.
type wrappedValue struct {
	Value interface{} `json:"value"`
}

// encodeValue serializes a logical value into its persisted envelope form.
func encodeValue(value interface{}) (string, error) {
	b, err := json.Marshal(wrappedValue{Value: value})
	if err != nil {
		return "", fmt.Errorf("localstore: encode value: %w", err)
	}
	return string(b), nil
}

// decodeValue extracts the logical value from persisted envelope text.
// Text that does not parse as an envelope reports ErrBadData.
func decodeValue(text string) (interface{}, error) {
	var w wrappedValue
	if err := json.Unmarshal([]byte(text), &w); err != nil {
		return nil, fmt.Errorf("%w: value: %v", ErrBadData, err)
	}
	return w.Value, nil
}

// cloneValue deep-copies a value by running it through the same codec used
// for persistence. The copy therefore has exactly the shape a medium
// round-trip would produce, and shares no mutable state with the input.
func cloneValue(value interface{}) (interface{}, error) {
	if value == nil {
		return nil, nil
	}
	b, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("localstore: clone value: %w", err)
	}
	var out interface{}
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, fmt.Errorf("localstore: clone value: %w", err)
	}
	return out, nil
}
