package store

import (
	"sync"
	"testing"
	"time"
)

func TestWithCreatesRecord(t *testing.T) {
	s := New()

	s.With(42, func(u *UserRecord) {
		if u.UserID != 42 {
			t.Errorf("UserID = %d, want 42", u.UserID)
		}
		if u.Ledger.LastResetDate == "" {
			t.Error("expected LastResetDate to be initialized")
		}
		if u.Profile.Complete() {
			t.Error("fresh record must not have a complete profile")
		}
	})

	if got := s.Len(); got != 1 {
		t.Errorf("Len = %d, want 1", got)
	}

	// Повторный вызов возвращает ту же запись.
	s.With(42, func(u *UserRecord) {
		u.Ledger.AddWater(300, time.Now())
	})
	s.With(42, func(u *UserRecord) {
		if u.Ledger.LoggedWaterMl != 300 {
			t.Errorf("LoggedWaterMl = %d, want 300", u.Ledger.LoggedWaterMl)
		}
	})
	if got := s.Len(); got != 1 {
		t.Errorf("Len = %d, want 1", got)
	}
}

func TestWithRollover(t *testing.T) {
	s := New()
	fixed := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return fixed }

	s.With(1, func(u *UserRecord) {
		u.Ledger.AddWater(500, fixed)
		u.Ledger.AddFood(320, fixed)
		u.Ledger.AddWorkout(200, fixed)
	})

	t.Run("SameDayKeepsLedger", func(t *testing.T) {
		s.With(1, func(u *UserRecord) {
			if u.Ledger.LoggedWaterMl != 500 || len(u.Ledger.History) != 3 {
				t.Errorf("ledger changed within the same day: %+v", u.Ledger)
			}
		})
	})

	t.Run("NewDayResets", func(t *testing.T) {
		s.now = func() time.Time { return fixed.Add(24 * time.Hour) }
		s.With(1, func(u *UserRecord) {
			if u.Ledger.LoggedWaterMl != 0 {
				t.Errorf("LoggedWaterMl = %d, want 0", u.Ledger.LoggedWaterMl)
			}
			if u.Ledger.LoggedCalories != 0 {
				t.Errorf("LoggedCalories = %v, want 0", u.Ledger.LoggedCalories)
			}
			if u.Ledger.BurnedCalories != 0 {
				t.Errorf("BurnedCalories = %d, want 0", u.Ledger.BurnedCalories)
			}
			if len(u.Ledger.History) != 0 {
				t.Errorf("History length = %d, want 0", len(u.Ledger.History))
			}
			if u.Ledger.LastResetDate != "2025-06-11" {
				t.Errorf("LastResetDate = %q, want 2025-06-11", u.Ledger.LastResetDate)
			}
		})
	})

	t.Run("ProfileSurvivesRollover", func(t *testing.T) {
		act := 30
		s.With(1, func(u *UserRecord) {
			u.Profile = UserProfile{WeightKg: 70, HeightCm: 175, AgeYears: 30, ActivityMinutes: &act}
		})
		s.now = func() time.Time { return fixed.Add(48 * time.Hour) }
		s.With(1, func(u *UserRecord) {
			if !u.Profile.Complete() {
				t.Error("profile must survive the daily reset")
			}
		})
	})
}

func TestWithExisting(t *testing.T) {
	s := New()

	t.Run("UnknownUserNotCreated", func(t *testing.T) {
		called := false
		s.WithExisting(99, func(u *UserRecord) { called = true })
		if called {
			t.Error("fn must not run for an unknown user")
		}
		if got := s.Len(); got != 0 {
			t.Errorf("Len = %d, want 0", got)
		}
	})

	t.Run("ExistingUserRunsWithRollover", func(t *testing.T) {
		fixed := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
		s.now = func() time.Time { return fixed }

		s.With(1, func(u *UserRecord) {
			u.Ledger.AddWater(500, u.Now)
		})

		s.now = func() time.Time { return fixed.Add(24 * time.Hour) }
		s.WithExisting(1, func(u *UserRecord) {
			if u.Ledger.LoggedWaterMl != 0 {
				t.Errorf("LoggedWaterMl = %d, want 0 after rollover", u.Ledger.LoggedWaterMl)
			}
			if u.Ledger.LastResetDate != "2025-06-11" {
				t.Errorf("LastResetDate = %q, want 2025-06-11", u.Ledger.LastResetDate)
			}
		})
	})
}

func TestWithStampsEventTime(t *testing.T) {
	s := New()
	fixed := time.Date(2025, 6, 10, 23, 59, 30, 0, time.UTC)
	s.now = func() time.Time { return fixed }

	s.With(1, func(u *UserRecord) {
		if !u.Now.Equal(fixed) {
			t.Errorf("Now = %v, want %v", u.Now, fixed)
		}
		u.Ledger.AddWater(200, u.Now)
	})

	// Метка события и дата журнала взяты одними часами: событие,
	// записанное до переката, не может нести дату нового дня.
	s.With(1, func(u *UserRecord) {
		if got := u.Ledger.History[0].Timestamp.Format("2006-01-02"); got != u.Ledger.LastResetDate {
			t.Errorf("event date %q != ledger date %q", got, u.Ledger.LastResetDate)
		}
	})
}

func TestWithConcurrent(t *testing.T) {
	s := New()

	const goroutines = 20
	const perGoroutine = 50

	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perGoroutine; j++ {
				s.With(7, func(u *UserRecord) {
					u.Ledger.AddWater(10, time.Now())
				})
			}
		}()
	}
	wg.Wait()

	s.With(7, func(u *UserRecord) {
		want := goroutines * perGoroutine * 10
		if u.Ledger.LoggedWaterMl != want {
			t.Errorf("LoggedWaterMl = %d, want %d", u.Ledger.LoggedWaterMl, want)
		}
		if len(u.Ledger.History) != goroutines*perGoroutine {
			t.Errorf("History length = %d, want %d", len(u.Ledger.History), goroutines*perGoroutine)
		}
	})
}

func TestLedgerAddHelpers(t *testing.T) {
	var l DailyLedger
	ts := time.Date(2025, 6, 10, 9, 30, 0, 0, time.UTC)

	l.AddWater(250, ts)
	l.AddFood(123.4, ts.Add(time.Minute))
	l.AddWorkout(300, ts.Add(2*time.Minute))

	if l.LoggedWaterMl != 250 {
		t.Errorf("LoggedWaterMl = %d, want 250", l.LoggedWaterMl)
	}
	if l.LoggedCalories != 123.4 {
		t.Errorf("LoggedCalories = %v, want 123.4", l.LoggedCalories)
	}
	if l.BurnedCalories != 300 {
		t.Errorf("BurnedCalories = %d, want 300", l.BurnedCalories)
	}

	if len(l.History) != 3 {
		t.Fatalf("History length = %d, want 3", len(l.History))
	}
	wantKinds := []EventKind{EventWater, EventFood, EventWorkout}
	for i, ev := range l.History {
		if ev.Kind != wantKinds[i] {
			t.Errorf("History[%d].Kind = %q, want %q", i, ev.Kind, wantKinds[i])
		}
		if ev.ID.String() == "00000000-0000-0000-0000-000000000000" {
			t.Errorf("History[%d].ID is zero", i)
		}
	}
}

func TestProfileComplete(t *testing.T) {
	act := 0
	cases := []struct {
		name    string
		profile UserProfile
		want    bool
	}{
		{"Empty", UserProfile{}, false},
		{"NoActivity", UserProfile{WeightKg: 70, HeightCm: 175, AgeYears: 30}, false},
		{"ZeroActivitySet", UserProfile{WeightKg: 70, HeightCm: 175, AgeYears: 30, ActivityMinutes: &act}, true},
		{"NoSexNoCity", UserProfile{WeightKg: 70, HeightCm: 175, AgeYears: 30, ActivityMinutes: &act}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.profile.Complete(); got != tc.want {
				t.Errorf("Complete() = %v, want %v", got, tc.want)
			}
		})
	}
}
