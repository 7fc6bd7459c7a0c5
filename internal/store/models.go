package store

import (
	"time"

	"github.com/google/uuid"
)

// Sex — пол пользователя для формулы Миффлина-Сан Жеора.
type Sex string

const (
	SexUnspecified Sex = ""
	SexMale        Sex = "male"
	SexFemale      Sex = "female"
)

// UserProfile — биометрия и настройки пользователя.
// Заполняется только диалогом /set_profile.
type UserProfile struct {
	WeightKg        float64
	HeightCm        int
	AgeYears        int
	Sex             Sex
	ActivityMinutes *int
	City            string
	ManualCalorieGoal int // 0 — цель не задана вручную
}

// Complete reports whether the profile allows logging commands:
// вес, рост, возраст и активность должны быть заданы (пол и город — нет).
func (p UserProfile) Complete() bool {
	return p.WeightKg > 0 && p.HeightCm > 0 && p.AgeYears > 0 && p.ActivityMinutes != nil
}

// Activity возвращает минуты активности (0, если не заданы).
func (p UserProfile) Activity() int {
	if p.ActivityMinutes == nil {
		return 0
	}
	return *p.ActivityMinutes
}

// EventKind — вид записи в дневной истории.
type EventKind string

const (
	EventWater   EventKind = "water"
	EventFood    EventKind = "food"
	EventWorkout EventKind = "workout"
)

// Event — одна запись дневной истории (append-only в пределах дня).
type Event struct {
	ID        uuid.UUID
	Timestamp time.Time
	Kind      EventKind
	Amount    float64
}

// DailyLedger — дневные накопители и история пользователя.
type DailyLedger struct {
	LoggedWaterMl  int
	LoggedCalories float64
	BurnedCalories int
	History        []Event
	LastResetDate  string // "2006-01-02", UTC
}

// AddWater накапливает воду и дописывает событие в историю.
func (l *DailyLedger) AddWater(amountMl int, ts time.Time) {
	l.LoggedWaterMl += amountMl
	l.append(EventWater, float64(amountMl), ts)
}

// AddFood накапливает потреблённые калории и дописывает событие в историю.
func (l *DailyLedger) AddFood(kcal float64, ts time.Time) {
	l.LoggedCalories += kcal
	l.append(EventFood, kcal, ts)
}

// AddWorkout накапливает сожжённые калории и дописывает событие в историю.
func (l *DailyLedger) AddWorkout(kcalBurned int, ts time.Time) {
	l.BurnedCalories += kcalBurned
	l.append(EventWorkout, float64(kcalBurned), ts)
}

// Reset zeroes all accumulators and the history together.
func (l *DailyLedger) Reset(date string) {
	l.LoggedWaterMl = 0
	l.LoggedCalories = 0
	l.BurnedCalories = 0
	l.History = nil
	l.LastResetDate = date
}

func (l *DailyLedger) append(kind EventKind, amount float64, ts time.Time) {
	l.History = append(l.History, Event{
		ID:        uuid.New(),
		Timestamp: ts,
		Kind:      kind,
		Amount:    amount,
	})
}

// TempCacheEntry — последняя полученная температура и момент запроса.
// Значение валидно, только пока now − FetchedAt меньше TTL кэша.
type TempCacheEntry struct {
	TempC     *float64
	FetchedAt time.Time
}

// Flow — активный диалог пользователя.
type Flow string

const (
	FlowNone    Flow = ""
	FlowProfile Flow = "profile"
	FlowFood    Flow = "food"
)

// State — текущий шаг внутри диалога.
type State int

const (
	StateNone State = iota

	// Профиль
	StateAwaitWeight
	StateAwaitHeight
	StateAwaitAge
	StateAwaitSex
	StateAwaitActivity
	StateAwaitCity
	StateAwaitManualChoice
	StateAwaitManualCalorieValue

	// Еда
	StateAwaitFoodName
	StateAwaitManualKcal
	StateAwaitGrams
)

// Session — состояние активного диалога. Ровно одна на пользователя;
// уничтожается при завершении, отмене или входе в новый диалог.
type Session struct {
	Flow            Flow
	State           State
	FoodName        string
	FoodKcalPer100g float64
}
