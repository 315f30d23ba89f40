package contract

import (
	"github.com/alexanderramin/xpcalc/internal/domain"
)

type CategoryRequest struct {
	Category domain.Category
	Counts   domain.ActivityCounts
	LuckyEgg bool
}

type ActivityLine struct {
	Activity domain.Activity `json:"activity"`
	Label    string          `json:"label"`
	Count    int64           `json:"count"`
	Rate     int64           `json:"rate"`
	XP       int64           `json:"xp"`
}

type CategoryResponse struct {
	Category domain.Category `json:"category"`
	Label    string          `json:"label"`
	LuckyEgg bool            `json:"lucky_egg"`
	Lines    []ActivityLine  `json:"lines"`
	// BaseXP is the subtotal before the booster.
	BaseXP   int64    `json:"base_xp"`
	XP       int64    `json:"xp"`
	Warnings []string `json:"warnings,omitempty"`
}

type LevelRow struct {
	Level      int   `json:"level"`
	TotalXP    int64 `json:"total_xp"`
	FromPrevXP int64 `json:"from_previous_xp"`
}

type RateRow struct {
	Activity domain.Activity `json:"activity"`
	Category domain.Category `json:"category"`
	Label    string          `json:"label"`
	XP       int64           `json:"xp"`
	Cap      int64           `json:"cap"`
}
