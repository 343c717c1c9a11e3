package locale

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-contacts/internal/config"
)

// TestLocaleIntegrity ensures that every translation key defined in config.go
// exists in every embedded locale file.
func TestLocaleIntegrity(t *testing.T) {
	entries, err := localeFS.ReadDir(localeDir)
	require.NoError(t, err)
	require.NotEmpty(t, entries)

	defined := make(map[string]bool, len(config.MessageKeys))
	for _, k := range config.MessageKeys {
		defined[k] = true
	}

	for _, entry := range entries {
		t.Run(entry.Name(), func(t *testing.T) {
			content, err := localeFS.ReadFile(localeDir + "/" + entry.Name())
			require.NoError(t, err)

			var jsonMap map[string]any
			require.NoError(t, json.Unmarshal(content, &jsonMap), "JSON must be valid")

			for key := range defined {
				_, exists := jsonMap[key]
				assert.Truef(t, exists, "Key '%s' defined in config.go is missing in %s", key, entry.Name())
			}
			for key := range jsonMap {
				if strings.HasPrefix(key, "_") {
					continue
				}
				assert.Truef(t, defined[key], "Key '%s' in %s is not listed in config.MessageKeys", key, entry.Name())
			}
		})
	}
}

func TestNew_DetectsLanguages(t *testing.T) {
	tr := New("uk")
	assert.ElementsMatch(t, config.SupportedLanguages, tr.Available)
	assert.Equal(t, "uk", tr.Lang)
}

func TestNew_FallsBackToDefault(t *testing.T) {
	for _, lang := range []string{"", "xx", "not a tag"} {
		tr := New(lang)
		assert.Equal(t, config.DefaultLanguage, tr.Lang, "lang %q", lang)
	}
}

func TestNew_RegionalTagUsesBaseLanguage(t *testing.T) {
	assert.Equal(t, "uk", New("uk-UA").Lang)
}

// captureLogs routes the default logger into a buffer for the duration of the test.
func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return &buf
}

func TestNew_FallbackWarning(t *testing.T) {
	tests := []struct {
		lang string
		warn bool
	}{
		{"en", false},
		{"en-US", false},
		{"uk-UA", false},
		{"xx", true},
		{"not a tag", true},
	}

	for _, tt := range tests {
		t.Run(tt.lang, func(t *testing.T) {
			logs := captureLogs(t)
			New(tt.lang)

			if tt.warn {
				assert.Contains(t, logs.String(), config.MsgLangFallback)
			} else {
				assert.NotContains(t, logs.String(), config.MsgLangFallback)
			}
			assert.NotContains(t, logs.String(), config.MsgTransMissing)
		})
	}
}

func TestMsg(t *testing.T) {
	en := New("en")
	assert.Equal(t, "How can I help you?", en.Msg(config.TKeyHello))
	assert.Equal(t, "no_such_key", en.Msg("no_such_key"), "Missing keys fall back to the key")

	uk := New("uk")
	assert.Equal(t, "Контакт додано.", uk.Msg(config.TKeyContactAdded))
}

func TestMsgf_Template(t *testing.T) {
	en := New("en")
	got := en.Msgf(config.TKeyExported, map[string]any{"Count": 3, "Path": "out.vcf"})
	assert.Equal(t, "Exported 3 contacts to out.vcf.", got)
}

func TestEventSummary(t *testing.T) {
	en := New("en")
	assert.Equal(t, "Birthday: John (30)", en.EventSummary("John", 30))
	assert.Equal(t, "Birthday: Baby", en.EventSummary("Baby", 0))
}

func TestNilTranslator(t *testing.T) {
	var tr *Translator
	assert.Equal(t, config.TKeyHello, tr.Msg(config.TKeyHello))
}
