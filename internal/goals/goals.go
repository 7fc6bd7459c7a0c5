// Package goals содержит чистые функции расчёта дневных норм
// воды и калорий из биометрии, активности и температуры.
package goals

import "github.com/fdg312/hydrolog/internal/store"

// Water возвращает дневную норму воды в мл:
// вес × 30 + 500 за каждые полные 30 минут активности + бонус за жару
// (1000 при t > 30°C, 500 при t > 25°C). Без температуры бонуса нет.
func Water(weightKg float64, activityMinutes int, tempC *float64) int {
	if weightKg <= 0 {
		return 0
	}
	base := weightKg * 30
	activityBonus := float64(activityMinutes/30) * 500
	heatBonus := 0.0
	if tempC != nil {
		switch {
		case *tempC > 30:
			heatBonus = 1000
		case *tempC > 25:
			heatBonus = 500
		}
	}
	return int(base + activityBonus + heatBonus)
}

// Calories возвращает дневную норму калорий по формуле
// Миффлина-Сан Жеора плюс 100 ккал за каждые полные 30 минут
// активности. Если вес, рост или возраст не заданы — 0.
func Calories(weightKg float64, heightCm, ageYears int, sex store.Sex, activityMinutes int) int {
	if weightKg <= 0 || heightCm <= 0 || ageYears <= 0 {
		return 0
	}
	sexTerm := 0.0
	switch sex {
	case store.SexMale:
		sexTerm = 5
	case store.SexFemale:
		sexTerm = -161
	}
	bmr := 10*weightKg + 6.25*float64(heightCm) - 5*float64(ageYears) + sexTerm
	activityBonus := float64(activityMinutes/30) * 100
	return int(bmr + activityBonus)
}
