// Package conversation реализует пошаговые диалоги бота:
// настройку профиля и логирование еды. Каждый диалог — явная машина
// состояний над записью пользователя; переход потребляет одно входящее
// сообщение и возвращает ответы.
package conversation

import (
	"context"
	"strings"

	"github.com/fdg312/hydrolog/internal/food"
	"github.com/fdg312/hydrolog/internal/store"
)

// FoodLookup — коллаборатор поиска калорийности продукта.
type FoodLookup interface {
	Search(ctx context.Context, name string) (food.Product, error)
}

// Engine продвигает активный диалог пользователя. Все методы ожидают,
// что запись пользователя уже под замком (внутри Store.With).
type Engine struct {
	food FoodLookup
}

// NewEngine создаёт движок диалогов.
func NewEngine(food FoodLookup) *Engine {
	return &Engine{food: food}
}

// Active reports whether the user has an unfinished flow.
func (e *Engine) Active(u *store.UserRecord) bool {
	return u.Session != nil
}

// Advance скармливает активному диалогу одно текстовое сообщение.
// Без активного диалога обычный текст игнорируется (nil).
func (e *Engine) Advance(ctx context.Context, u *store.UserRecord, text string) []string {
	if u.Session == nil {
		return nil
	}
	text = strings.TrimSpace(text)
	switch u.Session.Flow {
	case store.FlowProfile:
		return e.advanceProfile(u, text)
	case store.FlowFood:
		return e.advanceFood(ctx, u, text)
	}
	return nil
}

// Cancel завершает активный диалог из любого состояния.
func (e *Engine) Cancel(u *store.UserRecord) []string {
	if u.Session == nil {
		return nil
	}
	flow := u.Session.Flow
	u.Session = nil
	if flow == store.FlowFood {
		return []string{msgFoodCancelled}
	}
	return []string{msgProfileCancelled}
}
