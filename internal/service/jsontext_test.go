package service

import (
	"encoding/json"
	"testing"
)

func TestJSONText(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want *string
	}{
		{"absent", "", nil},
		{"null", "null", nil},
		{"string", `"2024-01-01"`, strPtr("2024-01-01")},
		{"empty string", `""`, strPtr("")},
		{"integer", "5", strPtr("5")},
		{"float", "1.50", strPtr("1.5")},
		{"true", "true", strPtr("1")},
		{"false", "false", strPtr("0")},
		{"object", `{ "a": [1, 2] }`, strPtr(`{"a":[1,2]}`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := JSONText(json.RawMessage(tt.raw))
			if err != nil {
				t.Fatalf("JSONText() failed: %v", err)
			}
			switch {
			case tt.want == nil && got != nil:
				t.Errorf("JSONText() = %q, want nil", *got)
			case tt.want != nil && got == nil:
				t.Errorf("JSONText() = nil, want %q", *tt.want)
			case tt.want != nil && *got != *tt.want:
				t.Errorf("JSONText() = %q, want %q", *got, *tt.want)
			}
		})
	}
}

func strPtr(s string) *string { return &s }
