package service

import (
	"context"

	"github.com/alexanderramin/xpcalc/internal/contract"
)

type CalculatorService interface {
	// Calculate runs the detailed calculator: every category, the level
	// resolver and the timeline solver.
	Calculate(ctx context.Context, req contract.CalculateRequest) (*contract.CalculateResponse, error)
	CalculateCategory(ctx context.Context, req contract.CategoryRequest) (*contract.CategoryResponse, error)
	Levels(ctx context.Context) []contract.LevelRow
	Rates(ctx context.Context) []contract.RateRow
}
