package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/2beens/fitdash/internal/recovery"
	"github.com/2beens/fitdash/pkg"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	defaultBaselineDays = 30
	maxBaselineDays     = 365
)

// Handler turns tool input into service calls and formats the MCP result.
type Handler struct {
	service contextService
	loc     *time.Location
	now     func() time.Time
}

func NewHandler(service contextService, loc *time.Location) *Handler {
	return &Handler{
		service: service,
		loc:     loc,
		now:     time.Now,
	}
}

func errorResult(msg string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: msg}},
		IsError: true,
	}
}

func jsonResult(v any) *mcp.CallToolResult {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errorResult("Error encoding response: " + err.Error())
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(raw)}},
	}
}

func (h *Handler) GetSchemaTool() func(context.Context, *mcp.CallToolRequest, any) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ any) (*mcp.CallToolResult, any, error) {
		text, err := h.service.GetSchema(ctx)
		if err != nil {
			return errorResult("Error fetching schema: " + err.Error()), nil, nil
		}
		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: text}},
		}, nil, nil
	}
}

type ReadinessInput struct {
	Date string `json:"date,omitempty" jsonschema:"Day to look up (YYYY-MM-DD), defaults to today"`
}

func (h *Handler) GetReadinessTool() func(context.Context, *mcp.CallToolRequest, ReadinessInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in ReadinessInput) (*mcp.CallToolResult, any, error) {
		date := pkg.Day(h.now().In(h.loc))
		if in.Date != "" {
			d, err := pkg.ParseDay(in.Date, h.loc)
			if err != nil {
				return errorResult("Invalid date: use YYYY-MM-DD"), nil, nil
			}
			date = d
		}

		day, err := h.service.Readiness(ctx, date)
		if err != nil {
			if errors.Is(err, recovery.ErrNoData) {
				return errorResult("No readiness data for " + date.Format(pkg.DayLayout)), nil, nil
			}
			return errorResult("Error fetching readiness: " + err.Error()), nil, nil
		}
		return jsonResult(day), nil, nil
	}
}

type BaselineInput struct {
	Days int `json:"days,omitempty" jsonschema:"Number of most recent days to return (default 30, max 365)"`
}

func (h *Handler) GetBaselineTool() func(context.Context, *mcp.CallToolRequest, BaselineInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in BaselineInput) (*mcp.CallToolResult, any, error) {
		days := in.Days
		switch {
		case days < 0:
			return errorResult("Invalid days: must be positive"), nil, nil
		case days == 0:
			days = defaultBaselineDays
		case days > maxBaselineDays:
			days = maxBaselineDays
		}

		list, err := h.service.Baseline(ctx, days)
		if err != nil {
			return errorResult("Error computing baseline: " + err.Error()), nil, nil
		}
		return jsonResult(list), nil, nil
	}
}

type DateRangeInput struct {
	FromDate string `json:"from_date" jsonschema:"Start date (YYYY-MM-DD)"`
	ToDate   string `json:"to_date" jsonschema:"End date (YYYY-MM-DD), inclusive"`
}

func (h *Handler) parseRange(in DateRangeInput) (time.Time, time.Time, *mcp.CallToolResult) {
	from, err := pkg.ParseDay(in.FromDate, h.loc)
	if err != nil {
		return time.Time{}, time.Time{}, errorResult("Invalid from_date: use YYYY-MM-DD")
	}
	to, err := pkg.ParseDay(in.ToDate, h.loc)
	if err != nil {
		return time.Time{}, time.Time{}, errorResult("Invalid to_date: use YYYY-MM-DD")
	}
	if to.Before(from) {
		return time.Time{}, time.Time{}, errorResult("to_date is before from_date")
	}
	return from, to, nil
}

func (h *Handler) GetStepLogTool() func(context.Context, *mcp.CallToolRequest, DateRangeInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in DateRangeInput) (*mcp.CallToolResult, any, error) {
		from, to, res := h.parseRange(in)
		if res != nil {
			return res, nil, nil
		}
		steps, err := h.service.StepLog(ctx, from, to)
		if err != nil {
			return errorResult("Error listing steps: " + err.Error()), nil, nil
		}
		return jsonResult(steps), nil, nil
	}
}

func (h *Handler) GetFitnessTool() func(context.Context, *mcp.CallToolRequest, DateRangeInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in DateRangeInput) (*mcp.CallToolResult, any, error) {
		from, to, res := h.parseRange(in)
		if res != nil {
			return res, nil, nil
		}
		days, err := h.service.Fitness(ctx, from, to)
		if err != nil {
			return errorResult("Error computing fitness: " + err.Error()), nil, nil
		}
		return jsonResult(days), nil, nil
	}
}
