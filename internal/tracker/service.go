// Package tracker реализует операции над дневным журналом:
// логирование воды, еды и тренировок, прогресс, рекомендации и
// подготовку временных рядов для графика. Методы возвращают
// типизированные результаты; форматирует сообщения диспетчер.
package tracker

import (
	"context"
	"strings"
	"time"

	"github.com/fdg312/hydrolog/internal/goals"
	"github.com/fdg312/hydrolog/internal/store"
	"github.com/fdg312/hydrolog/internal/weather"
)

// Расход ккал в минуту по типу тренировки; неизвестный тип — 6.
var workoutKcalPerMin = map[string]int{
	"бег":       10,
	"ходьба":    4,
	"велосипед": 7,
	"плавание":  8,
	"силовая":   6,
	"йога":      3,
}

const defaultWorkoutKcalPerMin = 6

// Каждые полные 30 минут тренировки добавляют 200 мл к рекомендации.
const extraWaterPerBlockMl = 200

// Service — операции трекинга. Все методы ожидают запись пользователя
// под замком (внутри Store.With).
type Service struct {
	weather *weather.Service
}

// NewService создаёт сервис трекинга.
func NewService(w *weather.Service) *Service {
	return &Service{weather: w}
}

// WaterLog — результат записи воды.
type WaterLog struct {
	AmountMl    int
	RemainingMl int
}

// LogWater накапливает воду и возвращает остаток до дневной нормы
// (не меньше нуля).
func (s *Service) LogWater(ctx context.Context, u *store.UserRecord, amountMl int) WaterLog {
	u.Ledger.AddWater(amountMl, u.Now)

	temp := s.weather.Temperature(ctx, u)
	goal := goals.Water(u.Profile.WeightKg, u.Profile.Activity(), temp)
	remaining := goal - u.Ledger.LoggedWaterMl
	if remaining < 0 {
		remaining = 0
	}
	return WaterLog{AmountMl: amountMl, RemainingMl: remaining}
}

// WorkoutLog — результат записи тренировки.
type WorkoutLog struct {
	Type         string
	Minutes      int
	BurnedKcal   int
	ExtraWaterMl int
}

// LogWorkout накапливает сожжённые калории и советует дополнительную
// воду: 200 мл за каждые полные 30 минут.
func (s *Service) LogWorkout(u *store.UserRecord, workoutType string, minutes int) WorkoutLog {
	kcalPerMin, ok := workoutKcalPerMin[strings.ToLower(strings.TrimSpace(workoutType))]
	if !ok {
		kcalPerMin = defaultWorkoutKcalPerMin
	}
	burned := kcalPerMin * minutes
	u.Ledger.AddWorkout(burned, u.Now)

	return WorkoutLog{
		Type:         workoutType,
		Minutes:      minutes,
		BurnedKcal:   burned,
		ExtraWaterMl: minutes / 30 * extraWaterPerBlockMl,
	}
}

// Progress — срез дня против норм.
type Progress struct {
	TempC          *float64
	WaterGoalMl    int
	LoggedWaterMl  int
	WaterLeftMl    int
	CalorieGoal    int
	LoggedCalories float64
	BurnedCalories int
	Balance        float64
	CaloriesLeft   float64
}

// Progress вычисляет текущий прогресс по воде и калориям.
func (s *Service) Progress(ctx context.Context, u *store.UserRecord) Progress {
	temp := s.weather.Temperature(ctx, u)
	waterGoal := goals.Water(u.Profile.WeightKg, u.Profile.Activity(), temp)
	calorieGoal := s.CalorieGoal(u.Profile)

	waterLeft := float64(waterGoal - u.Ledger.LoggedWaterMl)
	if waterLeft < 0 {
		waterLeft = 0
	}
	caloriesLeft := float64(calorieGoal) - u.Ledger.LoggedCalories
	if caloriesLeft < 0 {
		caloriesLeft = 0
	}

	return Progress{
		TempC:          temp,
		WaterGoalMl:    waterGoal,
		LoggedWaterMl:  u.Ledger.LoggedWaterMl,
		WaterLeftMl:    int(waterLeft),
		CalorieGoal:    calorieGoal,
		LoggedCalories: u.Ledger.LoggedCalories,
		BurnedCalories: u.Ledger.BurnedCalories,
		Balance:        u.Ledger.LoggedCalories - float64(u.Ledger.BurnedCalories),
		CaloriesLeft:   caloriesLeft,
	}
}

// CalorieGoal — ручная цель, если задана, иначе расчётная.
func (s *Service) CalorieGoal(p store.UserProfile) int {
	if p.ManualCalorieGoal > 0 {
		return p.ManualCalorieGoal
	}
	return goals.Calories(p.WeightKg, p.HeightCm, p.AgeYears, p.Sex, p.Activity())
}

// ResetDay безусловно обнуляет накопители и историю — явный сброс по
// команде, в отличие от автоматического переката даты.
func (s *Service) ResetDay(u *store.UserRecord) {
	u.Ledger.Reset(u.Now.Format("2006-01-02"))
}

// Series строит кумулятивные ряды дня в хронологическом порядке:
// вода прибавляет к водному ряду; еда прибавляет к калорийному балансу,
// тренировка вычитает из него.
func (s *Service) Series(u *store.UserRecord) (times []time.Time, waterMl []float64, calories []float64) {
	var waterTotal, calorieTotal float64
	for _, ev := range u.Ledger.History {
		switch ev.Kind {
		case store.EventWater:
			waterTotal += ev.Amount
		case store.EventFood:
			calorieTotal += ev.Amount
		case store.EventWorkout:
			calorieTotal -= ev.Amount
		}
		times = append(times, ev.Timestamp)
		waterMl = append(waterMl, waterTotal)
		calories = append(calories, calorieTotal)
	}
	return times, waterMl, calories
}
