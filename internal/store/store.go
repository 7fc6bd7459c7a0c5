package store

import (
	"sync"
	"time"
)

const dateLayout = "2006-01-02"

// UserRecord — всё состояние одного пользователя: профиль, дневной
// журнал, кэш температуры и активный диалог. Мутируется только под
// замком через Store.With.
type UserRecord struct {
	mu sync.Mutex

	UserID  int64
	Profile UserProfile
	Ledger  DailyLedger
	Weather TempCacheEntry
	Session *Session

	// Now — момент текущего события, UTC. Выставляется Store.With теми
	// же часами, что и перекат даты, поэтому метка времени события не
	// может пересечь границу дня относительно журнала.
	Now time.Time
}

// Store — in-memory реестр пользователей, единственный источник истины.
// Доступ к записи возможен только через With, который выполняет ленивый
// сброс журнала при смене даты, поэтому накопители никогда не
// переносятся в новый день незаметно.
type Store struct {
	mu    sync.Mutex
	users map[int64]*UserRecord
	now   func() time.Time
}

// New создаёт пустой Store.
func New() *Store {
	return &Store{
		users: make(map[int64]*UserRecord),
		now:   time.Now,
	}
}

// With resolves the user's record (creating a zero-valued one if needed),
// locks it, applies the daily rollover and runs fn. Mutation of a record
// happens only inside fn; different users proceed concurrently.
func (s *Store) With(userID int64, fn func(u *UserRecord)) {
	s.mu.Lock()
	u, ok := s.users[userID]
	if !ok {
		u = &UserRecord{
			UserID: userID,
			Ledger: DailyLedger{LastResetDate: s.today()},
		}
		s.users[userID] = u
	}
	s.mu.Unlock()

	s.run(u, fn)
}

// WithExisting запускает fn, только если запись пользователя уже есть.
// Неизвестный пользователь записи не получает; для существующей перекат
// даты применяется так же, как в With.
func (s *Store) WithExisting(userID int64, fn func(u *UserRecord)) {
	s.mu.Lock()
	u, ok := s.users[userID]
	s.mu.Unlock()
	if !ok {
		return
	}

	s.run(u, fn)
}

func (s *Store) run(u *UserRecord, fn func(u *UserRecord)) {
	u.mu.Lock()
	defer u.mu.Unlock()

	now := s.now().UTC()
	u.Now = now
	if today := now.Format(dateLayout); u.Ledger.LastResetDate != today {
		u.Ledger.Reset(today)
	}

	fn(u)
}

// Len возвращает число известных пользователей.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.users)
}

func (s *Store) today() string {
	return s.now().UTC().Format(dateLayout)
}
