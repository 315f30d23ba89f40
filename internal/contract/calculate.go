package contract

import (
	"time"

	"github.com/alexanderramin/xpcalc/internal/domain"
	"github.com/alexanderramin/xpcalc/internal/engine"
)

type CalculateRequest struct {
	Counts   domain.ActivityCounts
	LuckyEgg bool
	// Zero levels mean "not given": current defaults to 1 and target to 50.
	CurrentLevel int
	CurrentXP    int64
	TargetLevel  int
	UseTimeline  bool
	TargetMode   domain.TargetMode
	// TargetDate is YYYY-MM-DD. Empty selects DefaultTargetDate.
	TargetDate string
	TargetDays int64
	Now        *time.Time
}

func NewCalculateRequest() CalculateRequest {
	return CalculateRequest{
		Counts:      domain.ActivityCounts{},
		UseTimeline: true,
		TargetMode:  domain.TargetByDate,
	}
}

type CategoryLine struct {
	Category domain.Category `json:"category"`
	Label    string          `json:"label"`
	XP       int64           `json:"xp"`
	Daily    bool            `json:"daily"`
}

type TimelineResult struct {
	Enabled    bool              `json:"enabled"`
	Mode       domain.TargetMode `json:"mode"`
	TargetDate string            `json:"target_date,omitempty"`
	TargetDays int64             `json:"target_days,omitempty"`
	// DaysToTarget is the projection at the entered daily pace.
	DaysToTarget engine.Days `json:"days_to_target"`
	engine.Requirement
}

type CalculateResponse struct {
	GeneratedAt  time.Time               `json:"generated_at"`
	Counts       domain.ActivityCounts   `json:"counts"`
	LuckyEgg     bool                    `json:"lucky_egg"`
	CurrentLevel int                     `json:"current_level"`
	CurrentXP    int64                   `json:"current_xp"`
	TargetLevel  int                     `json:"target_level"`
	Categories   []CategoryLine          `json:"categories"`
	XP           engine.CategoryXPResult `json:"xp"`
	Progress     engine.ProgressResult   `json:"progress"`
	Timeline     TimelineResult          `json:"timeline"`
	Warnings     []string                `json:"warnings,omitempty"`
}
