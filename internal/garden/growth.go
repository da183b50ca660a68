package garden

import (
	"math"
	"time"

	"github.com/osse101/HealingGarden_Go/internal/catalog"
	"github.com/osse101/HealingGarden_Go/internal/domain"
	"github.com/osse101/HealingGarden_Go/internal/utils"
)

// EffectiveGrowthMinutes is the total growth time after watering bonuses,
// never below MinGrowthFactor of the base time
func EffectiveGrowthMinutes(p domain.Plant, cfg catalog.PlantConfig) float64 {
	floor := cfg.GrowthMinutes * MinGrowthFactor
	reduced := cfg.GrowthMinutes - float64(p.WaterCount)*cfg.WaterBonusMinutes
	return math.Max(floor, reduced)
}

// GrowthStage derives the plant's stage from elapsed time. Stages are never stored.
func GrowthStage(p domain.Plant, cfg catalog.PlantConfig, now time.Time) int {
	elapsed := now.Sub(p.PlantedAt).Minutes()
	if elapsed <= 0 {
		return domain.StageSeed
	}
	perStage := EffectiveGrowthMinutes(p, cfg) / StageCount
	if perStage <= 0 {
		return domain.StageRipe
	}
	stage := int(math.Floor(elapsed / perStage))
	return utils.ClampInt(stage, domain.StageSeed, domain.StageRipe)
}

// IsRipe reports whether the plant has reached the final stage
func IsRipe(p domain.Plant, cfg catalog.PlantConfig, now time.Time) bool {
	return GrowthStage(p, cfg, now) == domain.StageRipe
}

// TimeUntilRipe is the remaining time before the plant reaches the final stage,
// zero once it is ripe
func TimeUntilRipe(p domain.Plant, cfg catalog.PlantConfig, now time.Time) time.Duration {
	ripeAfter := EffectiveGrowthMinutes(p, cfg) / StageCount * domain.StageRipe
	ripeAt := p.PlantedAt.Add(time.Duration(ripeAfter * float64(time.Minute)))
	if remaining := ripeAt.Sub(now); remaining > 0 {
		return remaining
	}
	return 0
}
