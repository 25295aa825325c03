package llm

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// compiledSchemas holds one compiled validator per Schema pointer. Schemas
// are package-level values in practice, so the map stays small.
var compiledSchemas sync.Map // *Schema -> *jsonschema.Schema

// validateResponse checks raw against schema. A nil schema accepts anything.
// Every failure is an *ErrInvalidResponse carrying raw.
func validateResponse(schema *Schema, raw json.RawMessage) error {
	if schema == nil {
		return nil
	}
	invalid := func(format string, args ...any) error {
		return &ErrInvalidResponse{Content: raw, Err: fmt.Errorf(format, args...)}
	}

	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return invalid("response is not JSON: %w", err)
	}
	v, err := compile(schema)
	if err != nil {
		return invalid("schema %q: %w", schema.Name, err)
	}
	if err := v.Validate(doc); err != nil {
		return invalid("response does not match %q: %w", schema.Name, err)
	}
	return nil
}

func compile(schema *Schema) (*jsonschema.Schema, error) {
	if v, ok := compiledSchemas.Load(schema); ok {
		return v.(*jsonschema.Schema), nil
	}

	// Round-trip through JSON so Go numeric and slice types in Definition
	// become the float64/[]any shapes the compiler expects.
	buf, err := json.Marshal(schema.Definition)
	if err != nil {
		return nil, err
	}
	def, err := jsonschema.UnmarshalJSON(bytes.NewReader(buf))
	if err != nil {
		return nil, err
	}

	url := "mem://schemas/" + schema.Name + ".json"
	c := jsonschema.NewCompiler()
	if err := c.AddResource(url, def); err != nil {
		return nil, err
	}
	v, err := c.Compile(url)
	if err != nil {
		return nil, err
	}
	actual, _ := compiledSchemas.LoadOrStore(schema, v)
	return actual.(*jsonschema.Schema), nil
}

// newResponse validates content for req and assembles the Response. A
// schema failure on a truncated answer is reported as ErrMaxTokensExceeded,
// since retrying with the same limit would fail the same way.
func newResponse(req Request, content json.RawMessage, usage Usage, model, stop string) (*Response, error) {
	if err := validateResponse(req.Schema, content); err != nil {
		if stop == StopMaxTokens {
			return nil, &ErrMaxTokensExceeded{Content: content}
		}
		return nil, err
	}
	if usage.TotalTokens == 0 {
		usage.TotalTokens = usage.InputTokens + usage.OutputTokens
	}
	return &Response{Content: content, Usage: usage, Model: model, StopReason: stop}, nil
}
