package config

import (
	"testing"

	"golang.org/x/text/language"

	"flounder-swim/internal/collection"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"HTTP_ADDR", "BASE_PUBLIC_URL", "FIXTURES_PATH", "NEW_RECORD_MODE",
		"COLLATION_LOCALE", "TELEGRAM_BOT_TOKEN", "TELEGRAM_DEBUG", "ADMIN_TG_IDS",
		"GOOGLE_SHEETS_SPREADSHEET_ID", "GOOGLE_SERVICE_ACCOUNT_JSON",
	} {
		t.Setenv(k, "")
	}
}

func TestFromEnvDefaults(t *testing.T) {
	clearEnv(t)
	c, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}
	if c.HTTPAddr != ":8080" || c.NewRecordMode != collection.CreateAppend || c.Locale != language.Russian {
		t.Fatalf("defaults = %+v", c)
	}
	if c.BotEnabled() || c.SheetsEnabled() {
		t.Fatalf("optional integrations enabled without credentials")
	}
}

func TestFromEnvValues(t *testing.T) {
	clearEnv(t)
	t.Setenv("NEW_RECORD_MODE", "staged")
	t.Setenv("BASE_PUBLIC_URL", "https://flounder.example/ ")
	t.Setenv("TELEGRAM_BOT_TOKEN", "123:abc")
	t.Setenv("TELEGRAM_DEBUG", "Да")
	t.Setenv("ADMIN_TG_IDS", "42, 7,bad,,")

	c, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}
	if c.NewRecordMode != collection.CreateStaged {
		t.Fatalf("mode = %q", c.NewRecordMode)
	}
	if c.BasePublicURL != "https://flounder.example" {
		t.Fatalf("base url = %q", c.BasePublicURL)
	}
	if !c.BotEnabled() || !c.TelegramDebug {
		t.Fatalf("bot settings = %+v", c)
	}
	if len(c.AdminTGIDs) != 2 || !c.AdminTGIDs[42] || !c.AdminTGIDs[7] {
		t.Fatalf("admins = %v", c.AdminTGIDs)
	}
}

func TestFromEnvRejects(t *testing.T) {
	cases := map[string]map[string]string{
		"mode":   {"NEW_RECORD_MODE": "later"},
		"locale": {"COLLATION_LOCALE": "not a tag!"},
		"sheets": {"GOOGLE_SHEETS_SPREADSHEET_ID": "sheet"},
	}
	for name, env := range cases {
		t.Run(name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range env {
				t.Setenv(k, v)
			}
			if _, err := FromEnv(); err == nil {
				t.Fatalf("expected error for %v", env)
			}
		})
	}
}
