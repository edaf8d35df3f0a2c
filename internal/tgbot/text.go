package tgbot

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"flounder-swim/internal/config"
	"flounder-swim/internal/models"
	"flounder-swim/internal/portal"
)

func MenuKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🏆 Рейтинг команд", "u:teams"),
			tgbotapi.NewInlineKeyboardButtonData("🥇 Награждение", "u:awards"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📋 Протоколы", "u:protocols"),
			tgbotapi.NewInlineKeyboardButtonData("📥 Скачать протокол", "u:download"),
		),
	)
}

func ProtocolsKeyboard(ps []models.Protocol) tgbotapi.InlineKeyboardMarkup {
	rows := [][]tgbotapi.InlineKeyboardButton{}
	for _, p := range ps {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(p.Title, "u:protocol:"+p.ID),
		))
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("🏠 В меню", "u:menu"),
	))
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// TeamsText expects teams already ranked.
func TeamsText(teams []models.Team) string {
	if len(teams) == 0 {
		return "Команд пока нет."
	}
	b := strings.Builder{}
	b.WriteString("🏆 Рейтинг команд\n")
	for i, t := range teams {
		fmt.Fprintf(&b, "\n%d. %s: %d очков", i+1, t.Name, t.TotalPoints)
		if t.Coach != "" {
			fmt.Fprintf(&b, " (тренер %s)", t.Coach)
		}
	}
	return b.String()
}

func AwardsText(results []models.DistanceResults) string {
	if len(results) == 0 {
		return "Результатов награждения пока нет."
	}
	medals := map[int]string{1: "🥇", 2: "🥈", 3: "🥉"}
	b := strings.Builder{}
	b.WriteString("Награждение")
	for _, r := range results {
		fmt.Fprintf(&b, "\n\n%s", r.Distance)
		for _, g := range portal.GroupByAgeCategory(r.Winners) {
			fmt.Fprintf(&b, "\n%s:", g.AgeCategory)
			for _, place := range [][]models.Winner{g.Gold, g.Silver, g.Bronze} {
				for _, w := range place {
					fmt.Fprintf(&b, "\n%s %s, %s, %s", medals[w.Place], w.Name, w.Team, w.Time)
				}
			}
		}
	}
	return b.String()
}

func ProtocolText(p models.Protocol) string {
	b := strings.Builder{}
	fmt.Fprintf(&b, "📋 %s\n%s · %s · %s", p.Title, p.CompetitionName, p.CompetitionType.Label(), p.Date)
	for _, d := range p.Distances {
		fmt.Fprintf(&b, "\n\n%s (%s)", d.Name, d.Gender.Label())
		for _, h := range d.Heats {
			fmt.Fprintf(&b, "\n%s", h.Name)
			for _, l := range h.Lanes {
				if l.FullName == "" {
					continue
				}
				fmt.Fprintf(&b, "\n  %d. %s, %s, %s", l.LaneNumber, l.FullName, l.Organization, l.Time)
			}
		}
	}
	return b.String()
}

// PortalLinkText points admins at the web portal, where editing happens.
func PortalLinkText(cfg config.Config) string {
	url := cfg.BasePublicURL
	if url == "" {
		url = "http://localhost" + cfg.HTTPAddr
	}
	return "🛠 Редактирование доступно в портале: " + url
}
