package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"golang.org/x/text/language"

	"flounder-swim/internal/collection"
	"flounder-swim/internal/util"
)

type Config struct {
	HTTPAddr      string
	BasePublicURL string

	FixturesPath string
	// NewRecordMode decides whether a created record is stored before it is
	// first saved.
	NewRecordMode collection.CreateMode
	Locale        language.Tag

	TelegramToken string
	TelegramDebug bool
	AdminTGIDs    map[int64]bool

	SpreadsheetID            string
	GoogleServiceAccountJSON string
}

// SheetsEnabled reports whether the seed should be read from Google Sheets.
func (c Config) SheetsEnabled() bool {
	return c.SpreadsheetID != "" && c.GoogleServiceAccountJSON != ""
}

func (c Config) BotEnabled() bool { return c.TelegramToken != "" }

func FromEnv() (Config, error) {
	var c Config
	c.HTTPAddr = strings.TrimSpace(os.Getenv("HTTP_ADDR"))
	if c.HTTPAddr == "" {
		c.HTTPAddr = ":8080"
	}
	c.BasePublicURL = strings.TrimRight(strings.TrimSpace(os.Getenv("BASE_PUBLIC_URL")), "/")
	c.FixturesPath = strings.TrimSpace(os.Getenv("FIXTURES_PATH"))

	mode := strings.TrimSpace(os.Getenv("NEW_RECORD_MODE"))
	switch collection.CreateMode(mode) {
	case "", collection.CreateAppend, collection.CreateStaged:
		c.NewRecordMode = collection.ParseCreateMode(mode)
	default:
		return c, fmt.Errorf("NEW_RECORD_MODE must be append or staged, got %q", mode)
	}

	locale := strings.TrimSpace(os.Getenv("COLLATION_LOCALE"))
	if locale == "" {
		locale = "ru"
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return c, fmt.Errorf("COLLATION_LOCALE: %w", err)
	}
	c.Locale = tag

	c.TelegramToken = strings.TrimSpace(os.Getenv("TELEGRAM_BOT_TOKEN"))
	c.TelegramDebug = util.NormalizeBoolRU(os.Getenv("TELEGRAM_DEBUG"))
	c.AdminTGIDs = parseAdminIDs(os.Getenv("ADMIN_TG_IDS"))

	c.SpreadsheetID = strings.TrimSpace(os.Getenv("GOOGLE_SHEETS_SPREADSHEET_ID"))
	c.GoogleServiceAccountJSON = strings.TrimSpace(os.Getenv("GOOGLE_SERVICE_ACCOUNT_JSON"))
	if (c.SpreadsheetID == "") != (c.GoogleServiceAccountJSON == "") {
		return c, fmt.Errorf("GOOGLE_SHEETS_SPREADSHEET_ID and GOOGLE_SERVICE_ACCOUNT_JSON must be set together")
	}

	return c, nil
}

func parseAdminIDs(raw string) map[int64]bool {
	m := map[int64]bool{}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return m
	}
	parts := strings.Split(raw, ",")
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		v, err := strconv.ParseInt(p, 10, 64)
		if err != nil {
			continue
		}
		m[v] = true
	}
	return m
}
