package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func testSchema() *Schema {
	return &Schema{
		Name: "test-learner",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"name":  map[string]any{"type": "string"},
				"age":   map[string]any{"type": "integer", "minimum": 0},
				"grade": map[string]any{"type": "string", "enum": []any{"A", "B", "C"}},
				"tags": map[string]any{
					"type":     "array",
					"items":    map[string]any{"type": "string"},
					"maxItems": 2,
				},
			},
			"required": []any{"name", "age"},
		},
	}
}

func TestValidateResponse(t *testing.T) {
	schema := testSchema()
	tests := []struct {
		name  string
		raw   string
		valid bool
	}{
		{"complete", `{"name":"Alice","age":10,"grade":"A"}`, true},
		{"optional omitted", `{"name":"Bob","age":8}`, true},
		{"missing required", `{"name":"Charlie"}`, false},
		{"wrong type", `{"name":"Dave","age":"ten"}`, false},
		{"below minimum", `{"name":"Dave","age":-1}`, false},
		{"enum miss", `{"name":"Eve","age":9,"grade":"D"}`, false},
		{"too many items", `{"name":"Eve","age":9,"tags":["a","b","c"]}`, false},
		{"not json", `{not json}`, false},
		{"empty", ``, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateResponse(schema, json.RawMessage(tt.raw))
			if tt.valid {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			var inv *ErrInvalidResponse
			if !errors.As(err, &inv) {
				t.Fatalf("want ErrInvalidResponse, got %T: %v", err, err)
			}
			if string(inv.Content) != tt.raw {
				t.Errorf("Content = %q, want the raw answer", inv.Content)
			}
		})
	}
}

func TestValidateResponse_NilSchemaAcceptsAnything(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`not even json`)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateResponse_CompilesOnce(t *testing.T) {
	schema := testSchema()
	for i := 0; i < 3; i++ {
		if err := validateResponse(schema, json.RawMessage(`{"name":"A","age":1}`)); err != nil {
			t.Fatal(err)
		}
	}
	first, _ := compiledSchemas.Load(schema)
	if first == nil {
		t.Fatal("schema not cached")
	}
	validateResponse(schema, json.RawMessage(`{}`))
	if again, _ := compiledSchemas.Load(schema); again != first {
		t.Error("schema recompiled")
	}
}

func TestNewResponse(t *testing.T) {
	req := Request{Schema: testSchema()}

	resp, err := newResponse(req, json.RawMessage(`{"name":"A","age":1}`), Usage{InputTokens: 3, OutputTokens: 4}, "m", StopEnd)
	if err != nil {
		t.Fatal(err)
	}
	if resp.Usage.TotalTokens != 7 {
		t.Errorf("TotalTokens = %d, want 7", resp.Usage.TotalTokens)
	}

	_, err = newResponse(req, json.RawMessage(`{"name":"A"}`), Usage{}, "m", StopEnd)
	var inv *ErrInvalidResponse
	if !errors.As(err, &inv) {
		t.Errorf("want ErrInvalidResponse, got %T", err)
	}

	_, err = newResponse(req, json.RawMessage(`{"name":"A`), Usage{}, "m", StopMaxTokens)
	var maxTok *ErrMaxTokensExceeded
	if !errors.As(err, &maxTok) {
		t.Errorf("want ErrMaxTokensExceeded, got %T", err)
	}
}
