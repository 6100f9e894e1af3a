package mapfile

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// ParseValue reads a YAML scalar or flow literal: "12" is an int, "true" a
// bool, "[a, b]" a list. Text that does not parse is kept as a string.
func ParseValue(text string) any {
	if strings.TrimSpace(text) == "" {
		return text
	}
	var v any
	if err := yaml.Unmarshal([]byte(text), &v); err != nil {
		return text
	}
	if v == nil {
		switch strings.TrimSpace(text) {
		case "null", "~":
			return nil
		}
		return text
	}
	return v
}

// FormatValue renders a value on one line. Composite values are shown as
// compact JSON.
func FormatValue(value any) string {
	switch typed := value.(type) {
	case nil:
		return "null"
	case string:
		return typed
	case json.Number:
		return typed.String()
	case map[string]any, []any:
		encoded, err := marshalJSON(plainValue(typed), "", "")
		if err != nil {
			return fmt.Sprintf("%v", typed)
		}
		return string(encoded)
	default:
		return fmt.Sprintf("%v", typed)
	}
}
