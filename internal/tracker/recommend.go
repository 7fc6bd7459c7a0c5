package tracker

import (
	"context"

	"github.com/fdg312/hydrolog/internal/store"
)

// Порция воды, больше которой за раз не советуем.
const maxWaterSipMl = 500

// Recommendation — данные для совета пользователю.
type Recommendation struct {
	// WaterSipMl — сколько мл выпить сейчас (0 — норма уже выполнена).
	WaterSipMl int
	// CaloriesLeft — остаток до цели калорий; OverGoal — цель превышена.
	CaloriesLeft float64
	OverGoal     bool
}

// Recommend готовит рекомендацию по остаткам дня.
func (s *Service) Recommend(ctx context.Context, u *store.UserRecord) Recommendation {
	p := s.Progress(ctx, u)

	sip := p.WaterLeftMl
	if sip > maxWaterSipMl {
		sip = maxWaterSipMl
	}

	return Recommendation{
		WaterSipMl:   sip,
		CaloriesLeft: p.CaloriesLeft,
		OverGoal:     p.CaloriesLeft <= 0,
	}
}
