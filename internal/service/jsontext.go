package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// JSONText converts a request value into what a TEXT column keeps for it.
// Strings are stored unquoted, numbers in their shortest decimal form and
// booleans as 1 or 0. Objects and arrays are stored as compact JSON.
// An absent or null value returns nil.
func JSONText(raw json.RawMessage) (*string, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, nil
	}

	var value any
	err := json.Unmarshal(trimmed, &value)
	if err != nil {
		return nil, fmt.Errorf("invalid value: %w", err)
	}

	var text string
	switch v := value.(type) {
	case nil:
		return nil, nil
	case string:
		text = v
	case float64:
		text = strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		text = "0"
		if v {
			text = "1"
		}
	default:
		var buf bytes.Buffer
		err = json.Compact(&buf, trimmed)
		if err != nil {
			return nil, fmt.Errorf("invalid value: %w", err)
		}
		text = buf.String()
	}

	return &text, nil
}

func isFalsyJSON(raw json.RawMessage) (bool, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return true, nil
	}

	var value any
	err := json.Unmarshal(trimmed, &value)
	if err != nil {
		return false, err
	}
	return isFalsy(value), nil
}
