package mcp

import (
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// NewServer builds the MCP server with the training and recovery tools. It
// is mounted on the backend at /mcp and served over stdio by cmd/training_mcp.
func NewServer(service contextService, loc *time.Location) *mcp.Server {
	h := NewHandler(service, loc)
	s := mcp.NewServer(&mcp.Implementation{
		Name:    "fitdash",
		Version: "1.0.0",
	}, nil)

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_schema",
		Description: "Returns the DB schema of the analytics tables (sleep, activities, strength sets and scores, step log). Use when you need to know what data is stored.",
	}, h.GetSchemaTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_readiness",
		Description: "Returns the recovery picture for one day: ln rMSSD, resting HR, rolling baselines, SWC bands, z-scores and the train/rest recommendation. Arg: date (YYYY-MM-DD), defaults to today.",
	}, h.GetReadinessTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_baseline",
		Description: "Returns the most recent N days of the HRV and HR baseline. Arg: days (default 30). Use when looking at recovery trends.",
	}, h.GetBaselineTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_step_log",
		Description: "Returns the daily workout recommendations (step code, description, completed flag, rationale) in a date range. Args: from_date, to_date (YYYY-MM-DD).",
	}, h.GetStepLogTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_fitness",
		Description: "Returns daily training stress with chronic load (CTL), acute load (ATL) and form (TSB) in a date range. Args: from_date, to_date (YYYY-MM-DD).",
	}, h.GetFitnessTool())

	return s
}
