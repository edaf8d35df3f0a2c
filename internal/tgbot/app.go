// Package tgbot is a read-only Telegram companion to the portal: it shows
// the team ranking, award winners and protocol summaries.
package tgbot

import (
	"context"
	"log/slog"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"flounder-swim/internal/config"
	"flounder-swim/internal/portal"
)

// Source is what the bot reads; *portal.App satisfies it.
type Source interface {
	Snapshot() portal.Snapshot
}

type App struct {
	cfg    config.Config
	bot    *tgbotapi.BotAPI
	src    Source
	logger *slog.Logger
}

func New(cfg config.Config, src Source, logger *slog.Logger) (*App, error) {
	b, err := tgbotapi.NewBotAPI(cfg.TelegramToken)
	if err != nil {
		return nil, err
	}
	b.Debug = cfg.TelegramDebug
	return &App{
		cfg:    cfg,
		bot:    b,
		src:    src,
		logger: logger,
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := a.bot.GetUpdatesChan(u)
	defer a.bot.StopReceivingUpdates()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case upd := <-updates:
			if upd.Message != nil {
				if err := a.handleMessage(upd.Message); err != nil {
					a.logger.Error("handle message", "error", err)
				}
			} else if upd.CallbackQuery != nil {
				if err := a.handleCallback(upd.CallbackQuery); err != nil {
					a.logger.Error("handle callback", "error", err)
				}
			}
		}
	}
}

func (a *App) SendText(chatID int64, text string) error {
	msg := tgbotapi.NewMessage(chatID, text)
	_, err := a.bot.Send(msg)
	return err
}

func (a *App) isAdmin(tgID int64) bool {
	return a.cfg.AdminTGIDs[tgID]
}

// ---------- Message handling ----------

func (a *App) handleMessage(m *tgbotapi.Message) error {
	if m.From == nil {
		return nil
	}
	tgID := m.From.ID
	txt := strings.TrimSpace(m.Text)

	if strings.HasPrefix(txt, "/admin") {
		if !a.isAdmin(tgID) {
			return a.SendText(tgID, "Доступ запрещён.")
		}
		return a.SendText(tgID, PortalLinkText(a.cfg))
	}
	return a.showMenu(tgID)
}

func (a *App) showMenu(tgID int64) error {
	msg := tgbotapi.NewMessage(tgID, "🏊 Flounder Swimming\nВыбери раздел:")
	msg.ReplyMarkup = MenuKeyboard()
	_, err := a.bot.Send(msg)
	return err
}

// ---------- Callback handling ----------

func (a *App) handleCallback(q *tgbotapi.CallbackQuery) error {
	tgID := q.From.ID
	data := q.Data

	// ack
	cb := tgbotapi.NewCallback(q.ID, "")
	_, _ = a.bot.Request(cb)

	switch data {
	case "u:menu":
		return a.showMenu(tgID)
	case "u:teams":
		return a.SendText(tgID, TeamsText(a.src.Snapshot().Teams))
	case "u:awards":
		return a.SendText(tgID, AwardsText(a.src.Snapshot().Awards))
	case "u:protocols":
		return a.showProtocols(tgID)
	case "u:download":
		return a.SendText(tgID, portal.DownloadNotice)
	}

	if strings.HasPrefix(data, "u:protocol:") {
		id := strings.TrimPrefix(data, "u:protocol:")
		for _, p := range a.src.Snapshot().Protocols {
			if p.ID == id {
				return a.SendText(tgID, ProtocolText(p))
			}
		}
		return a.SendText(tgID, "Протокол не найден.")
	}
	return nil
}

func (a *App) showProtocols(tgID int64) error {
	protocols := a.src.Snapshot().Protocols
	if len(protocols) == 0 {
		return a.SendText(tgID, "Протоколов пока нет.")
	}
	msg := tgbotapi.NewMessage(tgID, "Выбери протокол:")
	msg.ReplyMarkup = ProtocolsKeyboard(protocols)
	_, err := a.bot.Send(msg)
	return err
}
