package mcp

import (
	"context"

	"github.com/alexanderramin/xpcalc/internal/contract"
	"github.com/alexanderramin/xpcalc/internal/domain"
	sdk "github.com/modelcontextprotocol/go-sdk/mcp"
)

type calculateInput struct {
	Counts       map[string]int64 `json:"counts,omitempty" jsonschema:"activity counts keyed by activity name, e.g. {\"normal_catches\": 100}"`
	LuckyEgg     bool             `json:"lucky_egg,omitempty" jsonschema:"apply the Lucky Egg double-XP booster (friendship is never boosted here)"`
	CurrentLevel int              `json:"current_level,omitempty" jsonschema:"trainer level 1-50, defaults to 1"`
	CurrentXP    int64            `json:"current_xp,omitempty" jsonschema:"XP earned past the current level threshold"`
	TargetLevel  int              `json:"target_level,omitempty" jsonschema:"goal level 1-50, defaults to 50"`
	UseTimeline  *bool            `json:"use_timeline,omitempty" jsonschema:"compute the deadline requirement, defaults to true"`
	TargetMode   string           `json:"target_mode,omitempty" jsonschema:"deadline mode: date or days"`
	TargetDate   string           `json:"target_date,omitempty" jsonschema:"deadline as YYYY-MM-DD, defaults to 31 December"`
	TargetDays   int64            `json:"target_days,omitempty" jsonschema:"deadline as a number of days from today"`
}

type categoryInput struct {
	Category string           `json:"category" jsonschema:"one of catching, evolution, hatching, raids, max_battle, max_moves, friendship"`
	Counts   map[string]int64 `json:"counts,omitempty" jsonschema:"activity counts keyed by activity name"`
	LuckyEgg bool             `json:"lucky_egg,omitempty" jsonschema:"apply the Lucky Egg double-XP booster"`
}

type emptyInput struct{}

func (s *Server) registerTools() {
	sdk.AddTool(s.server, &sdk.Tool{
		Name: "calculate_xp",
		Description: "Aggregate daily XP across every activity category, resolve the level that XP reaches " +
			"and, optionally, the XP per day needed to hit the target level by a deadline.",
	}, s.handleCalculate)

	sdk.AddTool(s.server, &sdk.Tool{
		Name:        "calculate_category_xp",
		Description: "XP earned from the activities of a single category, with per-activity lines.",
	}, s.handleCategory)

	sdk.AddTool(s.server, &sdk.Tool{
		Name:        "level_table",
		Description: "Cumulative XP required for each trainer level.",
	}, s.handleLevels)

	sdk.AddTool(s.server, &sdk.Tool{
		Name:        "rate_table",
		Description: "XP awarded per activity, grouped by category, with input caps.",
	}, s.handleRates)
}

func (s *Server) handleCalculate(ctx context.Context, _ *sdk.CallToolRequest, in calculateInput) (*sdk.CallToolResult, any, error) {
	counts, err := contract.ResolveCounts(in.Counts)
	if err != nil {
		return s.toolError("calculate_xp", err)
	}

	req := contract.NewCalculateRequest()
	req.Counts = counts
	req.LuckyEgg = in.LuckyEgg
	req.CurrentLevel = in.CurrentLevel
	req.CurrentXP = in.CurrentXP
	req.TargetLevel = in.TargetLevel
	req.UseTimeline = domain.BoolFromPtrWithDefault(true, in.UseTimeline)
	req.TargetMode = domain.TargetMode(domain.CoalesceStr(in.TargetMode, string(domain.TargetByDate)))
	req.TargetDate = in.TargetDate
	req.TargetDays = in.TargetDays

	resp, err := s.calc.Calculate(ctx, req)
	if err != nil {
		return s.toolError("calculate_xp", err)
	}
	return jsonResult(resp)
}

func (s *Server) handleCategory(ctx context.Context, _ *sdk.CallToolRequest, in categoryInput) (*sdk.CallToolResult, any, error) {
	cat, err := contract.ResolveCategory(in.Category)
	if err != nil {
		return s.toolError("calculate_category_xp", err)
	}
	counts, err := contract.ResolveCounts(in.Counts)
	if err != nil {
		return s.toolError("calculate_category_xp", err)
	}

	resp, err := s.calc.CalculateCategory(ctx, contract.CategoryRequest{
		Category: cat,
		Counts:   counts,
		LuckyEgg: in.LuckyEgg,
	})
	if err != nil {
		return s.toolError("calculate_category_xp", err)
	}
	return jsonResult(resp)
}

func (s *Server) handleLevels(ctx context.Context, _ *sdk.CallToolRequest, _ emptyInput) (*sdk.CallToolResult, any, error) {
	return jsonResult(s.calc.Levels(ctx))
}

func (s *Server) handleRates(ctx context.Context, _ *sdk.CallToolRequest, _ emptyInput) (*sdk.CallToolResult, any, error) {
	return jsonResult(s.calc.Rates(ctx))
}

// toolError logs err and returns it so the SDK reports it as a tool error
// (IsError set, message in the content) rather than a protocol failure.
func (s *Server) toolError(tool string, err error) (*sdk.CallToolResult, any, error) {
	s.logger.Warn().Err(err).Str("tool", tool).Msg("tool call rejected")
	return nil, nil, err
}
