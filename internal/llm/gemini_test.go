package llm

import (
	"testing"
)

func TestGeminiModelMapping(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"gemini-flash", "gemini-2.0-flash"},
		{"gemini-pro", "gemini-2.0-pro"},
		{"gemini-2.0-flash", "gemini-2.0-flash"}, // Pass-through
	}
	for _, tt := range tests {
		got := resolveModel(tt.input, geminiModels)
		if got != tt.expected {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestBuildGeminiSchema(t *testing.T) {
	def := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"strengths": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"question":      map[string]any{"type": "string"},
						"sample_answer": map[string]any{"type": "string"},
					},
					"required": []any{"question", "sample_answer"},
				},
				"minItems": 5,
				"maxItems": 5,
			},
			"category": map[string]any{
				"type": "string",
				"enum": []any{"strengths", "weaknesses"},
			},
		},
		"required": []any{"strengths"},
	}

	schema := buildGeminiSchema(def)

	if schema.Type != "OBJECT" {
		t.Fatalf("expected OBJECT type, got %s", schema.Type)
	}
	if len(schema.Properties) != 2 {
		t.Fatalf("expected 2 properties, got %d", len(schema.Properties))
	}

	list := schema.Properties["strengths"]
	if list.Type != "ARRAY" {
		t.Fatalf("expected ARRAY for strengths, got %s", list.Type)
	}
	if list.MinItems == nil || *list.MinItems != 5 {
		t.Fatal("minItems bound not carried over")
	}
	if list.MaxItems == nil || *list.MaxItems != 5 {
		t.Fatal("maxItems bound not carried over")
	}
	if list.Items.Type != "OBJECT" {
		t.Fatalf("expected OBJECT items, got %s", list.Items.Type)
	}
	if list.Items.Properties["question"].Type != "STRING" {
		t.Fatalf("expected STRING for question, got %s", list.Items.Properties["question"].Type)
	}
	if len(list.Items.Required) != 2 {
		t.Fatalf("expected 2 required item fields, got %d", len(list.Items.Required))
	}

	if len(schema.Properties["category"].Enum) != 2 {
		t.Fatalf("expected 2 enum values, got %d", len(schema.Properties["category"].Enum))
	}
	if len(schema.Required) != 1 {
		t.Fatalf("expected 1 required field, got %d", len(schema.Required))
	}
}
