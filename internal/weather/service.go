package weather

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/fdg312/hydrolog/internal/store"
)

// Service оборачивает клиент погоды кэшем температуры с окном TTL.
// Запись кэша живёт в UserRecord, поэтому вызывать Temperature можно
// только держа запись под замком (внутри Store.With).
type Service struct {
	client *Client
	ttl    time.Duration
	now    func() time.Time
}

// NewService создаёт сервис с окном кэша ttl.
func NewService(client *Client, ttl time.Duration) *Service {
	return &Service{
		client: client,
		ttl:    ttl,
		now:    time.Now,
	}
}

// Temperature возвращает температуру для города пользователя или nil.
// Без города или без API-ключа сеть не трогается. Валидная запись кэша
// переиспользуется без запроса; по истечении окна выполняется повторный
// запрос, и его неудача даёт nil — протухшее значение не возвращается
// и его окно не продлевается.
func (s *Service) Temperature(ctx context.Context, u *store.UserRecord) *float64 {
	if s == nil || !s.client.Configured() {
		return nil
	}
	city := strings.TrimSpace(u.Profile.City)
	if city == "" {
		return nil
	}

	now := s.now()
	if u.Weather.TempC != nil && now.Sub(u.Weather.FetchedAt) < s.ttl {
		return u.Weather.TempC
	}

	temp, err := s.client.Fetch(ctx, city)
	if err != nil {
		log.Printf("weather fetch failed: user=%d city=%q err=%v", u.UserID, city, err)
		return nil
	}

	u.Weather = store.TempCacheEntry{TempC: &temp, FetchedAt: now}
	return &temp
}
