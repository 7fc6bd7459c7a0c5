package conversation

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/fdg312/hydrolog/internal/food"
	"github.com/fdg312/hydrolog/internal/store"
)

func TestFoodFlow(t *testing.T) {
	ctx := context.Background()

	t.Run("InlineNameLookupSuccess", func(t *testing.T) {
		lookup := &stubLookup{product: food.Product{Name: "Banana", KcalPer100g: 89}}
		e := NewEngine(lookup)
		u := &store.UserRecord{UserID: 1}

		got := e.StartFood(ctx, u, "банан")
		if len(got) != 1 || !strings.Contains(got[0], "Banana — 89.0 ккал на 100 г") {
			t.Fatalf("StartFood = %v, want lookup summary", got)
		}
		if lookup.lastQ != "банан" {
			t.Errorf("lookup query = %q, want банан", lookup.lastQ)
		}
		if u.Session.State != store.StateAwaitGrams {
			t.Fatalf("state = %v, want StateAwaitGrams", u.Session.State)
		}

		got = e.Advance(ctx, u, "150")
		if len(got) != 1 || got[0] != "Записано: банан — 133.5 ккал." {
			t.Fatalf("Advance(150) = %v", got)
		}
		if u.Session != nil {
			t.Error("session must be cleared after logging")
		}
		if u.Ledger.LoggedCalories != 133.5 {
			t.Errorf("LoggedCalories = %v, want 133.5", u.Ledger.LoggedCalories)
		}
		if len(u.Ledger.History) != 1 || u.Ledger.History[0].Kind != store.EventFood {
			t.Errorf("history = %+v, want one food event", u.Ledger.History)
		}
	})

	t.Run("NoArgsAsksForName", func(t *testing.T) {
		lookup := &stubLookup{product: food.Product{Name: "Apple", KcalPer100g: 52}}
		e := NewEngine(lookup)
		u := &store.UserRecord{UserID: 1}

		if got := e.StartFood(ctx, u, ""); got[0] != msgAskFoodName {
			t.Fatalf("StartFood = %q, want %q", got[0], msgAskFoodName)
		}
		if got := e.Advance(ctx, u, ""); got[0] != msgAskFoodName {
			t.Fatalf("empty name = %q, want re-prompt", got[0])
		}
		if got := e.Advance(ctx, u, "яблоко"); !strings.Contains(got[0], "Apple") {
			t.Fatalf("Advance(яблоко) = %v, want lookup summary", got)
		}
	})

	t.Run("NotFoundDegradesToManualKcal", func(t *testing.T) {
		e := NewEngine(&stubLookup{err: food.ErrNotFound})
		u := &store.UserRecord{UserID: 1}

		if got := e.StartFood(ctx, u, "нечто"); got[0] != msgFoodNotFound {
			t.Fatalf("StartFood = %q, want %q", got[0], msgFoodNotFound)
		}
		if u.Session.State != store.StateAwaitManualKcal {
			t.Fatalf("state = %v, want StateAwaitManualKcal", u.Session.State)
		}

		if got := e.Advance(ctx, u, "abc"); got[0] != msgBadFoodKcal {
			t.Fatalf("bad kcal = %q, want re-prompt", got[0])
		}
		if got := e.Advance(ctx, u, "250"); got[0] != msgAskGrams {
			t.Fatalf("manual kcal = %q, want %q", got[0], msgAskGrams)
		}
		got := e.Advance(ctx, u, "150")
		if got[0] != "Записано: нечто — 375.0 ккал." {
			t.Fatalf("Advance(150) = %q", got[0])
		}
		if u.Ledger.LoggedCalories != 375 {
			t.Errorf("LoggedCalories = %v, want 375", u.Ledger.LoggedCalories)
		}
	})

	t.Run("TransportErrorDegradesTheSameWay", func(t *testing.T) {
		e := NewEngine(&stubLookup{err: errors.New("connection refused")})
		u := &store.UserRecord{UserID: 1}

		if got := e.StartFood(ctx, u, "банан"); got[0] != msgFoodNotFound {
			t.Fatalf("StartFood = %q, want %q", got[0], msgFoodNotFound)
		}
		if u.Session.State != store.StateAwaitManualKcal {
			t.Errorf("state = %v, want StateAwaitManualKcal", u.Session.State)
		}
	})

	t.Run("ZeroGramsRePrompts", func(t *testing.T) {
		e := NewEngine(&stubLookup{product: food.Product{Name: "Apple", KcalPer100g: 52}})
		u := &store.UserRecord{UserID: 1}

		e.StartFood(ctx, u, "яблоко")
		if got := e.Advance(ctx, u, "0"); got[0] != msgBadGrams {
			t.Fatalf("Advance(0) = %q, want %q", got[0], msgBadGrams)
		}
		if u.Session.State != store.StateAwaitGrams {
			t.Errorf("state advanced on invalid grams: %v", u.Session.State)
		}
	})

	t.Run("CancelClearsSession", func(t *testing.T) {
		e := NewEngine(&stubLookup{err: food.ErrNotFound})
		u := &store.UserRecord{UserID: 1}

		e.StartFood(ctx, u, "нечто")
		if got := e.Cancel(u); got[0] != msgFoodCancelled {
			t.Fatalf("Cancel = %q, want %q", got[0], msgFoodCancelled)
		}
		if u.Session != nil {
			t.Error("session must be nil after cancel")
		}
		if u.Ledger.LoggedCalories != 0 {
			t.Errorf("cancel must not log calories, got %v", u.Ledger.LoggedCalories)
		}
	})

	t.Run("PlainTextWithoutFlowIgnored", func(t *testing.T) {
		e := newTestEngine()
		u := &store.UserRecord{UserID: 1}

		if got := e.Advance(ctx, u, "привет"); got != nil {
			t.Errorf("Advance without session = %v, want nil", got)
		}
		if e.Active(u) {
			t.Error("Active = true for a user without session")
		}
	})
}
