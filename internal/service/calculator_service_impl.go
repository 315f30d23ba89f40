package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/xpcalc/internal/contract"
	"github.com/alexanderramin/xpcalc/internal/domain"
	"github.com/alexanderramin/xpcalc/internal/engine"
	"github.com/alexanderramin/xpcalc/internal/gamedata"
)

type calculatorService struct {
	rates      gamedata.RateTable
	thresholds gamedata.ThresholdTable
	observer   UseCaseObserver
	now        func() time.Time
}

// NewCalculatorService builds the calculator over the given tables. Both
// tables are copied; later changes by the caller are not observed.
func NewCalculatorService(
	rates gamedata.RateTable,
	thresholds gamedata.ThresholdTable,
	observers ...UseCaseObserver,
) CalculatorService {
	owned := make(gamedata.RateTable, len(rates))
	for k, v := range rates {
		owned[k] = v
	}
	return &calculatorService{
		rates:      owned,
		thresholds: thresholds,
		observer:   useCaseObserverOrNoop(observers),
		now:        time.Now,
	}
}

func (s *calculatorService) Calculate(ctx context.Context, req contract.CalculateRequest) (resp *contract.CalculateResponse, err error) {
	startedAt := time.Now()
	fields := map[string]any{
		"lucky_egg":   req.LuckyEgg,
		"target_mode": string(req.TargetMode),
	}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "calculate",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	mode := req.TargetMode
	if mode == "" {
		mode = domain.TargetByDate
	}
	if !domain.ValidTargetModes[mode] {
		return nil, contract.NewCalcError(contract.ErrCodeInvalidArgument,
			fmt.Sprintf("target mode must be %q or %q, got %q", domain.TargetByDate, domain.TargetByDays, mode))
	}

	now := s.now()
	if req.Now != nil {
		now = *req.Now
	}

	counts := domain.Normalize(req.Counts)
	warnings := normalizationWarnings(req.Counts, counts)

	currentLevel := domain.ClampLevel(req.CurrentLevel, domain.MinLevel)
	targetLevel := domain.ClampLevel(req.TargetLevel, domain.MaxLevel)
	if req.CurrentLevel != 0 && currentLevel != req.CurrentLevel {
		warnings = append(warnings, fmt.Sprintf("current level %d clamped to %d", req.CurrentLevel, currentLevel))
	}
	if req.TargetLevel != 0 && targetLevel != req.TargetLevel {
		warnings = append(warnings, fmt.Sprintf("target level %d clamped to %d", req.TargetLevel, targetLevel))
	}
	currentXP := domain.ClampCurrentXP(req.CurrentXP)
	if currentXP != req.CurrentXP {
		warnings = append(warnings, fmt.Sprintf("current xp %d clamped to %d", req.CurrentXP, currentXP))
	}

	xp := engine.Aggregate(counts, req.LuckyEgg, s.rates)
	progress := engine.Resolve(engine.ProgressInput{
		CurrentLevel:  currentLevel,
		CurrentXP:     currentXP,
		TargetLevel:   targetLevel,
		CategoryTotal: xp.Total,
	}, s.thresholds)

	timeline, timelineWarnings := s.solveTimeline(req, mode, now, progress, xp.DailyXP)
	warnings = append(warnings, timelineWarnings...)

	fields["total_xp"] = xp.Total
	fields["reached_level"] = progress.ReachedLevel
	fields["warnings"] = len(warnings)

	return &contract.CalculateResponse{
		GeneratedAt:  now,
		Counts:       counts,
		LuckyEgg:     req.LuckyEgg,
		CurrentLevel: currentLevel,
		CurrentXP:    currentXP,
		TargetLevel:  targetLevel,
		Categories:   categoryLines(xp),
		XP:           xp,
		Progress:     progress,
		Timeline:     timeline,
		Warnings:     warnings,
	}, nil
}

func (s *calculatorService) solveTimeline(
	req contract.CalculateRequest,
	mode domain.TargetMode,
	now time.Time,
	progress engine.ProgressResult,
	dailyXP int64,
) (contract.TimelineResult, []string) {
	timeline := contract.TimelineResult{
		Enabled:      req.UseTimeline,
		Mode:         mode,
		DaysToTarget: engine.ProjectPace(progress, dailyXP),
	}
	if !req.UseTimeline {
		return timeline, nil
	}

	var warnings []string
	deadline := engine.DeadlineInput{
		Enabled: true,
		Mode:    mode,
		Today:   now,
	}

	switch mode {
	case domain.TargetByDays:
		timeline.TargetDays = req.TargetDays
		deadline.Days = req.TargetDays
		if req.TargetDays <= 0 {
			warnings = append(warnings, "target days must be positive; daily requirement not computed")
		}
	default:
		target := contract.DefaultTargetDate(now)
		if req.TargetDate != "" {
			parsed, err := contract.ParseTargetDate(req.TargetDate, now.Location())
			if err != nil {
				warnings = append(warnings, fmt.Sprintf("target date %q is not YYYY-MM-DD; daily requirement not computed", req.TargetDate))
				timeline.TargetDate = req.TargetDate
				return timeline, warnings
			}
			target = parsed
		}
		timeline.TargetDate = target.Format(contract.DateLayout)
		deadline.TargetDate = &target
		if !progress.TargetReached && engine.CalendarDaysUntil(now, target) <= 0 {
			warnings = append(warnings, fmt.Sprintf("target date %s is not in the future", timeline.TargetDate))
		}
	}

	timeline.Requirement = engine.RequiredDaily(deadline, progress)
	return timeline, warnings
}

func (s *calculatorService) CalculateCategory(ctx context.Context, req contract.CategoryRequest) (resp *contract.CategoryResponse, err error) {
	startedAt := time.Now()
	fields := map[string]any{
		"category":  string(req.Category),
		"lucky_egg": req.LuckyEgg,
	}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "calculate-category",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	if !req.Category.Valid() {
		return nil, contract.NewCalcError(contract.ErrCodeUnknownCategory,
			fmt.Sprintf("no category named %q", req.Category))
	}

	counts := domain.Normalize(req.Counts)
	warnings := normalizationWarnings(req.Counts, counts)
	for _, def := range domain.Catalog {
		if def.Category != req.Category && counts.Get(def.Key) > 0 {
			warnings = append(warnings, fmt.Sprintf("%s is not a %s activity and was ignored", def.Key, req.Category))
		}
	}
	counts = counts.InCategory(req.Category)

	lines := make([]contract.ActivityLine, 0)
	for _, def := range domain.ActivitiesIn(req.Category) {
		n := counts.Get(def.Key)
		if n == 0 {
			continue
		}
		rate := s.rates.Rate(def.Key)
		lines = append(lines, contract.ActivityLine{
			Activity: def.Key,
			Label:    def.Label,
			Count:    n,
			Rate:     rate,
			XP:       n * rate,
		})
	}

	xp := engine.CategoryXP(req.Category, counts, req.LuckyEgg, s.rates)
	fields["xp"] = xp

	return &contract.CategoryResponse{
		Category: req.Category,
		Label:    req.Category.Label(),
		LuckyEgg: req.LuckyEgg,
		Lines:    lines,
		BaseXP:   engine.CategoryXP(req.Category, counts, false, s.rates),
		XP:       xp,
		Warnings: warnings,
	}, nil
}

func (s *calculatorService) Levels(ctx context.Context) []contract.LevelRow {
	rows := make([]contract.LevelRow, 0, domain.MaxLevel)
	for level := domain.MinLevel; level <= domain.MaxLevel; level++ {
		row := contract.LevelRow{Level: level, TotalXP: s.thresholds.At(level)}
		if level > domain.MinLevel {
			row.FromPrevXP = row.TotalXP - s.thresholds.At(level-1)
		}
		rows = append(rows, row)
	}
	return rows
}

func (s *calculatorService) Rates(ctx context.Context) []contract.RateRow {
	rows := make([]contract.RateRow, 0, len(domain.Catalog))
	for _, def := range domain.Catalog {
		rows = append(rows, contract.RateRow{
			Activity: def.Key,
			Category: def.Category,
			Label:    def.Label,
			XP:       s.rates.Rate(def.Key),
			Cap:      def.Cap,
		})
	}
	return rows
}
