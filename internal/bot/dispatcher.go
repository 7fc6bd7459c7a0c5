// Package bot маршрутизирует входящие события: распознанные команды
// исполняются сразу, обычный текст продвигает активный диалог, всё
// остальное игнорируется. Транспорт пакету неизвестен.
package bot

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/fdg312/hydrolog/internal/chart"
	"github.com/fdg312/hydrolog/internal/config"
	"github.com/fdg312/hydrolog/internal/conversation"
	"github.com/fdg312/hydrolog/internal/store"
	"github.com/fdg312/hydrolog/internal/tracker"
)

// Dispatcher превращает событие в ответы. Вся мутация состояния
// пользователя происходит внутри одного Store.With на событие, поэтому
// события одного пользователя строго сериализованы.
type Dispatcher struct {
	store   *store.Store
	tracker *tracker.Service
	engine  *conversation.Engine
	limiter *userLimiter
}

// NewDispatcher создаёт диспетчер.
func NewDispatcher(st *store.Store, tr *tracker.Service, eng *conversation.Engine, cfg *config.Config) *Dispatcher {
	return &Dispatcher{
		store:   st,
		tracker: tr,
		engine:  eng,
		limiter: newUserLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst),
	}
}

// Handle обрабатывает одно входящее событие.
func (d *Dispatcher) Handle(ctx context.Context, ev Event) []Reply {
	if d.limiter != nil && !d.limiter.allow(ev.UserID) {
		return textReply(msgRateLimited)
	}

	switch ev.Command {
	case "start":
		return textReply(msgStart)
	case "help":
		return textReply(msgHelp)
	case "set_profile":
		return d.withUser(ev.UserID, func(u *store.UserRecord) []Reply {
			return textReply(d.engine.StartProfile(u)...)
		})
	case "cancel":
		return d.withUser(ev.UserID, func(u *store.UserRecord) []Reply {
			return textReply(d.engine.Cancel(u)...)
		})
	case "profile":
		return d.withUser(ev.UserID, func(u *store.UserRecord) []Reply {
			return d.showProfile(ctx, u)
		})
	case "log_water":
		return d.withUser(ev.UserID, func(u *store.UserRecord) []Reply {
			return d.logWater(ctx, u, ev.Args)
		})
	case "log_food":
		return d.withUser(ev.UserID, func(u *store.UserRecord) []Reply {
			if !u.Profile.Complete() {
				return textReply(msgNeedProfile)
			}
			return textReply(d.engine.StartFood(ctx, u, strings.Join(ev.Args, " "))...)
		})
	case "log_workout":
		return d.withUser(ev.UserID, func(u *store.UserRecord) []Reply {
			return d.logWorkout(u, ev.Args)
		})
	case "check_progress":
		return d.withUser(ev.UserID, func(u *store.UserRecord) []Reply {
			return d.checkProgress(ctx, u)
		})
	case "plot":
		return d.withUser(ev.UserID, func(u *store.UserRecord) []Reply {
			return d.plot(ctx, u)
		})
	case "recommend":
		return d.withUser(ev.UserID, func(u *store.UserRecord) []Reply {
			return d.recommend(ctx, u)
		})
	case "reset_day":
		return d.withUser(ev.UserID, func(u *store.UserRecord) []Reply {
			d.tracker.ResetDay(u)
			return textReply(msgDayReset)
		})
	case "":
		// Обычный текст действует только внутри активного диалога;
		// запись для неизвестного пользователя он не создаёт.
		return d.withExistingUser(ev.UserID, func(u *store.UserRecord) []Reply {
			return textReply(d.engine.Advance(ctx, u, ev.Text)...)
		})
	}

	// Неизвестные команды игнорируются.
	return nil
}

func (d *Dispatcher) withUser(userID int64, fn func(u *store.UserRecord) []Reply) []Reply {
	var replies []Reply
	d.store.With(userID, func(u *store.UserRecord) {
		replies = fn(u)
	})
	return replies
}

func (d *Dispatcher) withExistingUser(userID int64, fn func(u *store.UserRecord) []Reply) []Reply {
	var replies []Reply
	d.store.WithExisting(userID, func(u *store.UserRecord) {
		replies = fn(u)
	})
	return replies
}

func (d *Dispatcher) showProfile(ctx context.Context, u *store.UserRecord) []Reply {
	if !u.Profile.Complete() {
		return textReply(msgProfileEmpty)
	}
	p := d.tracker.Progress(ctx, u)
	return textReply(fmt.Sprintf(
		"Ваш профиль:\n"+
			"Вес: %g кг\n"+
			"Рост: %d см\n"+
			"Возраст: %d\n"+
			"Активность: %d мин/день\n"+
			"Город: %s\n"+
			"Норма воды: %d мл\n"+
			"Норма калорий: %d ккал",
		u.Profile.WeightKg,
		u.Profile.HeightCm,
		u.Profile.AgeYears,
		u.Profile.Activity(),
		u.Profile.City,
		p.WaterGoalMl,
		p.CalorieGoal,
	))
}

func (d *Dispatcher) logWater(ctx context.Context, u *store.UserRecord, args []string) []Reply {
	if !u.Profile.Complete() {
		return textReply(msgNeedProfile)
	}
	if len(args) == 0 {
		return textReply(msgWaterUsage)
	}
	amount := conversation.ParseInt(args[0])
	if amount == nil || *amount <= 0 {
		return textReply(msgWaterBadAmount)
	}

	res := d.tracker.LogWater(ctx, u, *amount)
	return textReply(fmt.Sprintf("Записано: %d мл. Осталось до нормы: %d мл.", res.AmountMl, res.RemainingMl))
}

func (d *Dispatcher) logWorkout(u *store.UserRecord, args []string) []Reply {
	if !u.Profile.Complete() {
		return textReply(msgNeedProfile)
	}
	if len(args) < 2 {
		return textReply(msgWorkoutUsage)
	}
	workoutType := strings.ToLower(strings.Join(args[:len(args)-1], " "))
	minutes := conversation.ParseInt(args[len(args)-1])
	if minutes == nil || *minutes <= 0 {
		return textReply(msgWorkoutBadMin)
	}

	res := d.tracker.LogWorkout(u, workoutType, *minutes)
	text := fmt.Sprintf("🏃 %s %d мин — %d ккал.", res.Type, res.Minutes, res.BurnedKcal)
	if res.ExtraWaterMl > 0 {
		text += fmt.Sprintf(" Дополнительно: выпейте %d мл воды.", res.ExtraWaterMl)
	}
	return textReply(text)
}

func (d *Dispatcher) checkProgress(ctx context.Context, u *store.UserRecord) []Reply {
	if !u.Profile.Complete() {
		return textReply(msgNeedProfile)
	}
	p := d.tracker.Progress(ctx, u)

	tempNote := ""
	if p.TempC != nil {
		tempNote = fmt.Sprintf("Температура: %.1f°C\n", *p.TempC)
	}

	return textReply(fmt.Sprintf(
		"📊 Прогресс:\n"+
			"%s"+
			"Вода:\n"+
			"- Выпито: %d мл из %d мл.\n"+
			"- Осталось: %d мл.\n\n"+
			"Калории:\n"+
			"- Потреблено: %d ккал из %d ккал.\n"+
			"- Сожжено: %d ккал.\n"+
			"- Баланс: %d ккал.\n"+
			"- Осталось: %d ккал.",
		tempNote,
		p.LoggedWaterMl,
		p.WaterGoalMl,
		p.WaterLeftMl,
		int(p.LoggedCalories),
		p.CalorieGoal,
		p.BurnedCalories,
		int(p.Balance),
		int(p.CaloriesLeft),
	))
}

func (d *Dispatcher) plot(ctx context.Context, u *store.UserRecord) []Reply {
	if !u.Profile.Complete() {
		return textReply(msgNeedProfile)
	}
	times, water, calories := d.tracker.Series(u)
	if len(times) == 0 {
		return textReply(msgPlotEmpty)
	}

	p := d.tracker.Progress(ctx, u)
	img, err := chart.Render(times, water, p.WaterGoalMl, calories, p.CalorieGoal)
	if err != nil {
		log.Printf("chart render failed: user=%d err=%v", u.UserID, err)
		return textReply(msgPlotFailed)
	}
	return []Reply{{Photo: img, Caption: msgPlotCaption}}
}

var lowCalorieFoods = []string{
	"огурец (15 ккал/100г)",
	"помидор (18 ккал/100г)",
	"яблоко (52 ккал/100г)",
	"кефир 1% (40 ккал/100г)",
	"куриная грудка (165 ккал/100г)",
}

var workoutIdeas = []string{
	"ходьба 30 мин (≈120 ккал)",
	"бег 20 мин (≈200 ккал)",
	"йога 40 мин (≈120 ккал)",
	"велосипед 30 мин (≈210 ккал)",
}

func (d *Dispatcher) recommend(ctx context.Context, u *store.UserRecord) []Reply {
	if !u.Profile.Complete() {
		return textReply(msgNeedProfile)
	}
	rec := d.tracker.Recommend(ctx, u)

	lines := []string{"Рекомендации:"}
	if rec.WaterSipMl > 0 {
		lines = append(lines, fmt.Sprintf("- Выпейте ещё ~%d мл воды.", rec.WaterSipMl))
	}
	if rec.OverGoal {
		lines = append(lines, "- Вы превысили цель по калориям: добавьте активность.")
	} else {
		lines = append(lines, fmt.Sprintf("- Осталось %d ккал: выбирайте лёгкие продукты.", int(rec.CaloriesLeft)))
	}
	lines = append(lines, "- Идеи продуктов: "+strings.Join(lowCalorieFoods, ", "))
	lines = append(lines, "- Идеи тренировок: "+strings.Join(workoutIdeas, ", "))

	return textReply(strings.Join(lines, "\n"))
}
