// Package locale provides the user-facing messages in every supported language.
package locale

import (
	"embed"
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/tartampluch/go-contacts/internal/config"
	"golang.org/x/text/language"
)

//go:embed locales/*.json
var localeFS embed.FS

const (
	localeDir    = "locales"
	localePrefix = "active."
	localeSuffix = ".json"
)

// Translator resolves message keys for one language.
type Translator struct {
	// Lang is the language actually in use after fallback.
	Lang string

	// Available lists the languages found in the embedded locale files.
	Available []string

	localizer *i18n.Localizer
}

// New loads the embedded locale files and selects lang.
// An unknown or malformed lang falls back to config.DefaultLanguage.
func New(lang string) *Translator {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)

	t := &Translator{Available: loadLocales(bundle)}

	if matched, ok := matchLanguage(lang, t.Available); ok {
		t.Lang = matched
	} else {
		t.Lang = config.DefaultLanguage
		slog.Warn(config.MsgLangFallback,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyLang, lang,
			config.LogKeyValue, t.Lang,
		)
	}

	t.localizer = i18n.NewLocalizer(bundle, t.Lang)
	return t
}

// matchLanguage resolves lang (a tag such as "uk" or "en-US") to one of the
// available base languages.
func matchLanguage(lang string, available []string) (string, bool) {
	tag, err := language.Parse(lang)
	if err != nil {
		return "", false
	}
	base, _ := tag.Base()
	for _, l := range available {
		if l == base.String() {
			return l, true
		}
	}
	return "", false
}

// loadLocales registers every active.<lang>.json file and returns the languages found.
func loadLocales(bundle *i18n.Bundle) []string {
	entries, err := localeFS.ReadDir(localeDir)
	if err != nil {
		slog.Error(config.ErrLocalesAccess,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyError, err,
		)
		return nil
	}

	var detected []string
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, localePrefix) || !strings.HasSuffix(name, localeSuffix) {
			slog.Debug(config.MsgLocaleSkip,
				config.LogKeyComponent, config.CompI18n,
				config.LogKeyFile, name,
			)
			continue
		}

		langCode := strings.TrimSuffix(strings.TrimPrefix(name, localePrefix), localeSuffix)
		if _, err := bundle.LoadMessageFileFS(localeFS, localeDir+"/"+name); err != nil {
			slog.Error(config.ErrLocaleLoad,
				config.LogKeyComponent, config.CompI18n,
				config.LogKeyFile, name,
				config.LogKeyError, err,
			)
			continue
		}
		detected = append(detected, langCode)
		slog.Debug(config.MsgLocaleLoaded,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyLang, langCode,
		)
	}
	return detected
}

// Msg translates key. A missing key is returned as is.
func (t *Translator) Msg(key string) string {
	return t.Msgf(key, nil)
}

// Msgf translates key, filling template fields from data.
func (t *Translator) Msgf(key string, data map[string]any) string {
	if t == nil || t.localizer == nil {
		return key
	}
	msg, err := t.localizer.Localize(&i18n.LocalizeConfig{MessageID: key, TemplateData: data})
	if err != nil {
		slog.Debug(config.MsgTransMissing,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyKey, key,
			config.LogKeyError, err,
		)
		return key
	}
	return msg
}

// EventSummary titles a calendar event; age 0 is the birth itself.
func (t *Translator) EventSummary(name string, age int) string {
	if age > 0 {
		return t.Msgf(config.TKeyEvtSummaryAge, map[string]any{"Name": name, "Age": age})
	}
	return t.Msgf(config.TKeyEvtSummary, map[string]any{"Name": name})
}
