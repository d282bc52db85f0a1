package cloudtools

import (
	"context"
	"encoding/json"
	"fmt"
)

// Tool represents one Browser Use Cloud operation callable over MCP.
// Arguments arrive as the decoded JSON object from the protocol layer;
// results are serialized back to JSON by the server.
type Tool interface {
	// Name returns the unique identifier for this tool (e.g., "bu_task_create")
	Name() string

	// Description returns a human-readable description of what this tool does
	Description() string

	// Schema returns the JSON schema for this tool's input parameters
	Schema() map[string]interface{}

	// Hints returns behavior annotations surfaced to calling agents
	Hints() Hints

	// Execute runs the tool. The returned value is marshaled to JSON for
	// the caller. An error means the arguments were unusable; upstream
	// failures are reported inside the result instead.
	Execute(ctx context.Context, args map[string]any) (any, error)
}

// Hints describe tool behavior for the calling agent. They map onto MCP
// tool annotations at registration time.
type Hints struct {
	// ReadOnly indicates the tool does not modify upstream state
	ReadOnly bool

	// Destructive indicates the tool deletes upstream resources
	Destructive bool

	// Idempotent indicates repeated calls with the same arguments are safe
	Idempotent bool
}

// BaseToolSchema creates a common JSON schema structure for a tool
// with the given properties and required fields.
func BaseToolSchema(properties map[string]interface{}, required []string) map[string]interface{} {
	schema := map[string]interface{}{
		"type":       "object",
		"properties": properties,
	}
	if len(required) > 0 {
		schema["required"] = required
	}
	return schema
}

// decodeArgs unmarshals a JSON argument object into a typed input struct.
// Absent fields keep whatever defaults the caller pre-set on v.
func decodeArgs(args map[string]any, v any) error {
	data, err := json.Marshal(args)
	if err != nil {
		return fmt.Errorf("invalid arguments: %w", err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("invalid arguments: %w", err)
	}
	return nil
}

// stringProp builds a string property schema.
func stringProp(description string) map[string]interface{} {
	return map[string]interface{}{"type": "string", "description": description}
}

// intProp builds an integer property schema.
func intProp(description string) map[string]interface{} {
	return map[string]interface{}{"type": "integer", "description": description}
}

// boolProp builds a boolean property schema.
func boolProp(description string) map[string]interface{} {
	return map[string]interface{}{"type": "boolean", "description": description}
}

// enumProp builds a string property schema restricted to allowed values.
func enumProp(description string, allowed []string) map[string]interface{} {
	return map[string]interface{}{"type": "string", "description": description, "enum": allowed}
}

// stringMapProp builds an object property schema with string values.
func stringMapProp(description string) map[string]interface{} {
	return map[string]interface{}{
		"type":                 "object",
		"description":          description,
		"additionalProperties": map[string]interface{}{"type": "string"},
	}
}

// stringListProp builds an array-of-strings property schema.
func stringListProp(description string) map[string]interface{} {
	return map[string]interface{}{
		"type":        "array",
		"description": description,
		"items":       map[string]interface{}{"type": "string"},
	}
}
