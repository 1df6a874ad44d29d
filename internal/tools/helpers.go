// Package tools implements the MCP tool handlers that expose Linear
// operations to an automated assistant.
//
// Each file holds one tool. A tool is a struct that receives its
// dependencies via constructor and exposes a Definition for
// registration plus a Handle compatible with mcp-go's CallToolRequest
// signature. Tools depend on narrow service interfaces (see
// services.go), satisfied by *linear.Client, not on the concrete
// client.
package tools

import (
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// jsonResult marshals v as indented JSON for the tool result. The
// output records are flat and fully json-tagged, so a marshal failure
// is a bug; it still comes back as a tool error rather than a panic.
func jsonResult(v any) *mcp.CallToolResult {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to encode result: %v", err))
	}
	return mcp.NewToolResultText(string(data))
}

// errResult turns an operation failure into a tool error result. The
// linear package already produces actionable messages, so they pass
// through unchanged.
func errResult(err error) *mcp.CallToolResult {
	return mcp.NewToolResultError(err.Error())
}
