// Package i18n holds the bilingual user-facing strings. Each locale file
// maps message keys to text; the keys double as the format strings handed
// to the x/text catalog.
package i18n

import (
	"embed"
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"

	"azmedical/internal/domain/model"
)

//go:embed locales/*.yaml
var localeFS embed.FS

var tags = map[model.Language]language.Tag{
	model.LanguageAZ: language.Azerbaijani,
	model.LanguageEN: language.English,
}

func init() {
	for lang, tag := range tags {
		raw, err := localeFS.ReadFile(fmt.Sprintf("locales/%s.yaml", lang))
		if err != nil {
			panic(fmt.Sprintf("i18n: missing locale %s: %v", lang, err))
		}

		var entries map[string]string
		if err := yaml.Unmarshal(raw, &entries); err != nil {
			panic(fmt.Sprintf("i18n: bad locale %s: %v", lang, err))
		}

		for key, text := range entries {
			if err := message.SetString(tag, key, text); err != nil {
				panic(fmt.Sprintf("i18n: bad entry %s in %s: %v", key, lang, err))
			}
		}
	}
}

// Printer returns a message printer for the active display language.
// Unknown languages fall back to Azerbaijani, the site default.
func Printer(lang model.Language) *message.Printer {
	tag, ok := tags[lang]
	if !ok {
		tag = tags[model.LanguageAZ]
	}
	return message.NewPrinter(tag)
}
