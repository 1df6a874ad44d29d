package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

// CycleMetricsTool handles the linear_cycle_metrics MCP tool.
type CycleMetricsTool struct {
	cycles CycleService
}

// NewCycleMetricsTool creates a CycleMetricsTool backed by the given service.
func NewCycleMetricsTool(cycles CycleService) *CycleMetricsTool {
	return &CycleMetricsTool{cycles: cycles}
}

// Definition returns the MCP tool definition for registration.
func (t *CycleMetricsTool) Definition() mcp.Tool {
	return mcp.NewTool("linear_cycle_metrics",
		mcp.WithDescription(
			"Get burndown metrics for the active cycle: scope and completion "+
				"time series plus a burndown status ('on track', 'behind "+
				"schedule', 'ahead of schedule'). Without a team, uses the "+
				"first active cycle in the workspace.",
		),
		mcp.WithString("team",
			mcp.Description("Team key whose active cycle to analyze"),
		),
	)
}

// Handle processes the linear_cycle_metrics tool call.
func (t *CycleMetricsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	metrics, err := t.cycles.GetCycleMetrics(ctx, req.GetString("team", ""))
	if err != nil {
		return errResult(err), nil
	}
	return jsonResult(metrics), nil
}
