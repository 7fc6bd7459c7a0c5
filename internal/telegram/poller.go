// Package telegram адаптирует Telegram-транспорт к диспетчеру:
// long polling входящих сообщений и отправка текстов/фото.
package telegram

import (
	"context"
	"fmt"
	"log"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/fdg312/hydrolog/internal/bot"
	"github.com/fdg312/hydrolog/internal/config"
)

// Handler обрабатывает входящее событие и возвращает ответы.
type Handler interface {
	Handle(ctx context.Context, ev bot.Event) []bot.Reply
}

// Poller читает обновления long polling'ом и раздаёт их обработчику
// через ограниченный пул воркеров. События одного пользователя
// сериализует Store, поэтому воркеры независимы.
type Poller struct {
	api         *tgbotapi.BotAPI
	handler     Handler
	workers     chan struct{}
	pollTimeout int
}

// NewPoller создаёт поллер и проверяет токен запросом getMe.
func NewPoller(token string, handler Handler, cfg *config.Config) (*Poller, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("telegram authorize: %w", err)
	}
	return &Poller{
		api:         api,
		handler:     handler,
		workers:     make(chan struct{}, cfg.Workers),
		pollTimeout: cfg.PollTimeoutSeconds,
	}, nil
}

// Run крутит цикл обновлений до отмены контекста.
func (p *Poller) Run(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = p.pollTimeout
	updates := p.api.GetUpdatesChan(u)

	log.Printf("telegram: polling as @%s", p.api.Self.UserName)

	for {
		select {
		case <-ctx.Done():
			p.api.StopReceivingUpdates()
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			msg := update.Message
			if msg == nil || msg.From == nil {
				continue
			}
			p.workers <- struct{}{}
			go func(m *tgbotapi.Message) {
				defer func() { <-p.workers }()
				p.handle(ctx, m)
			}(msg)
		}
	}
}

func (p *Poller) handle(ctx context.Context, m *tgbotapi.Message) {
	ev := bot.Event{UserID: m.From.ID, Text: m.Text}
	if m.IsCommand() {
		ev.Command = m.Command()
		if args := strings.TrimSpace(m.CommandArguments()); args != "" {
			ev.Args = strings.Fields(args)
		}
	}

	log.Printf("user %d: %s", m.From.ID, m.Text)

	for _, reply := range p.handler.Handle(ctx, ev) {
		if err := p.send(m.Chat.ID, reply); err != nil {
			log.Printf("telegram: send failed: chat=%d err=%v", m.Chat.ID, err)
		}
	}
}

func (p *Poller) send(chatID int64, reply bot.Reply) error {
	if len(reply.Photo) > 0 {
		photo := tgbotapi.NewPhoto(chatID, tgbotapi.FileBytes{Name: "progress.png", Bytes: reply.Photo})
		photo.Caption = reply.Caption
		_, err := p.api.Send(photo)
		return err
	}
	if reply.Text == "" {
		return nil
	}
	_, err := p.api.Send(tgbotapi.NewMessage(chatID, reply.Text))
	return err
}
