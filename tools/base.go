package tools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
)

// Tool represents an MCP tool interface
type Tool interface {
	// Name returns the tool name
	Name() string

	// Description returns the tool description for the agent
	Description() string

	// InputSchema returns the JSON schema for the tool input
	InputSchema() map[string]interface{}

	// Execute runs the tool with the given input
	Execute(ctx context.Context, input json.RawMessage) (json.RawMessage, error)
}

// ToolRegistry holds all available tools
type ToolRegistry struct {
	tools map[string]Tool
}

// NewToolRegistry creates a new tool registry
func NewToolRegistry(tools ...Tool) *ToolRegistry {
	r := &ToolRegistry{
		tools: make(map[string]Tool),
	}
	for _, tool := range tools {
		r.Register(tool)
	}
	return r
}

// Register adds a tool to the registry. A tool with the same name is replaced.
func (r *ToolRegistry) Register(tool Tool) {
	r.tools[tool.Name()] = tool
}

// Get retrieves a tool by name
func (r *ToolRegistry) Get(name string) (Tool, bool) {
	tool, ok := r.tools[name]
	return tool, ok
}

// List returns all registered tools sorted by name
func (r *ToolRegistry) List() []Tool {
	tools := make([]Tool, 0, len(r.tools))
	for _, tool := range r.tools {
		tools = append(tools, tool)
	}
	sort.Slice(tools, func(i, j int) bool {
		return tools[i].Name() < tools[j].Name()
	})
	return tools
}

// Definition describes a tool for listing endpoints and MCP clients
type Definition struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// Definitions returns tool definitions sorted by name
func (r *ToolRegistry) Definitions() []Definition {
	tools := r.List()
	definitions := make([]Definition, 0, len(tools))
	for _, tool := range tools {
		definitions = append(definitions, Definition{
			Name:        tool.Name(),
			Description: tool.Description(),
			InputSchema: tool.InputSchema(),
		})
	}
	return definitions
}

// ToolResult represents the result of a tool execution
type ToolResult struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   string          `json:"error,omitempty"`
}

// NewSuccessResult creates a successful tool result
func NewSuccessResult(data interface{}) (json.RawMessage, error) {
	result := ToolResult{Success: true}
	dataBytes, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	result.Data = dataBytes
	return json.Marshal(result)
}

// NewErrorResult creates an error tool result
func NewErrorResult(errMsg string) (json.RawMessage, error) {
	result := ToolResult{
		Success: false,
		Error:   errMsg,
	}
	return json.Marshal(result)
}

// DecodeResult unwraps a ToolResult envelope into out. A failed result
// becomes an error carrying the tool's message.
func DecodeResult(raw json.RawMessage, out interface{}) error {
	var result ToolResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return fmt.Errorf("invalid tool result: %w", err)
	}
	if !result.Success {
		return errors.New(result.Error)
	}
	if out == nil || len(result.Data) == 0 {
		return nil
	}
	return json.Unmarshal(result.Data, out)
}

// stringArraySchema is the JSON schema for a list of strings
func stringArraySchema(description string) map[string]interface{} {
	return map[string]interface{}{
		"type":        "array",
		"items":       map[string]interface{}{"type": "string"},
		"description": description,
	}
}

// filtersSchema is the JSON schema for models.MatchFilters
func filtersSchema() map[string]interface{} {
	return map[string]interface{}{
		"type":        "object",
		"description": "Optional job filters",
		"properties": map[string]interface{}{
			"locations":       stringArraySchema("Preferred locations; 'remote' matches remote jobs, 'any' disables the filter"),
			"locationTypes":   stringArraySchema("On-site, Hybrid, Remote"),
			"employmentTypes": stringArraySchema("Full-time, Part-time, Contract, Internship, Freelance"),
			"desiredPay": map[string]interface{}{
				"type":        "string",
				"description": "Free text salary expectation, e.g. '$120k'",
			},
			"minSalary": map[string]interface{}{
				"type":        "integer",
				"description": "Minimum salary; takes precedence over desiredPay",
			},
		},
	}
}
