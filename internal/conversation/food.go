package conversation

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/fdg312/hydrolog/internal/food"
	"github.com/fdg312/hydrolog/internal/store"
)

// StartFood начинает диалог логирования еды. Непустое name — аргумент
// команды: поиск калорийности выполняется сразу, и диалог перескакивает
// на вопрос о граммах либо на ручной ввод ккал.
func (e *Engine) StartFood(ctx context.Context, u *store.UserRecord, name string) []string {
	name = strings.TrimSpace(name)
	if name == "" {
		u.Session = &store.Session{Flow: store.FlowFood, State: store.StateAwaitFoodName}
		return []string{msgAskFoodName}
	}
	u.Session = &store.Session{Flow: store.FlowFood, FoodName: name}
	return e.lookupFood(ctx, u, name)
}

func (e *Engine) advanceFood(ctx context.Context, u *store.UserRecord, text string) []string {
	switch u.Session.State {
	case store.StateAwaitFoodName:
		if text == "" {
			return []string{msgAskFoodName}
		}
		u.Session.FoodName = text
		return e.lookupFood(ctx, u, text)

	case store.StateAwaitManualKcal:
		kcal := ParseFloat(text)
		if kcal == nil || *kcal <= 0 {
			return []string{msgBadFoodKcal}
		}
		u.Session.FoodKcalPer100g = *kcal
		u.Session.State = store.StateAwaitGrams
		return []string{msgAskGrams}

	case store.StateAwaitGrams:
		grams := ParseFloat(text)
		if grams == nil || *grams <= 0 {
			return []string{msgBadGrams}
		}
		kcalPer100g := u.Session.FoodKcalPer100g
		name := u.Session.FoodName
		if kcalPer100g <= 0 {
			u.Session = nil
			return []string{msgFoodLost}
		}

		consumed := kcalPer100g * *grams / 100.0
		u.Ledger.AddFood(consumed, u.Now)
		u.Session = nil
		return []string{fmt.Sprintf("Записано: %s — %.1f ккал.", name, consumed)}
	}

	return nil
}

// lookupFood запрашивает калорийность у коллаборатора. Успех ведёт к
// вопросу о граммах; «не найдено» и транспортные ошибки деградируют
// одинаково — к ручному вводу ккал на 100 г.
func (e *Engine) lookupFood(ctx context.Context, u *store.UserRecord, name string) []string {
	product, err := e.food.Search(ctx, name)
	if err != nil {
		if !errors.Is(err, food.ErrNotFound) {
			log.Printf("food lookup failed: user=%d query=%q err=%v", u.UserID, name, err)
		}
		u.Session.State = store.StateAwaitManualKcal
		return []string{msgFoodNotFound}
	}

	u.Session.FoodKcalPer100g = product.KcalPer100g
	u.Session.State = store.StateAwaitGrams
	return []string{fmt.Sprintf("%s — %.1f ккал на 100 г. %s", product.Name, product.KcalPer100g, msgAskGrams)}
}
