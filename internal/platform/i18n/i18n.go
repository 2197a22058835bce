// Package i18n resolves page languages and localized chrome strings.
//
// View copy is fixed; only layout chrome (page titles, the html lang
// attribute) follows the negotiated language.
package i18n

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Message keys for layout chrome.
const (
	KeyTitleHome      = "page.title.home"
	KeyTitleDashboard = "page.title.dashboard"
	KeyTitleNotFound  = "page.title.not_found"
	KeyTitleError     = "page.title.error"
)

var supported = []language.Tag{
	language.AmericanEnglish,
	language.BrazilianPortuguese,
}

var matcher = language.NewMatcher(supported)

func init() {
	register(language.AmericanEnglish, map[string]string{
		KeyTitleHome:      "Home",
		KeyTitleDashboard: "Dashboard",
		KeyTitleNotFound:  "Page not found",
		KeyTitleError:     "Something went wrong",
	})
	register(language.BrazilianPortuguese, map[string]string{
		KeyTitleHome:      "Início",
		KeyTitleDashboard: "Painel",
		KeyTitleNotFound:  "Página não encontrada",
		KeyTitleError:     "Algo deu errado",
	})
}

func register(tag language.Tag, messages map[string]string) {
	for key, value := range messages {
		if err := message.SetString(tag, key, value); err != nil {
			panic(err)
		}
	}
}

// DefaultTag returns the fallback language.
func DefaultTag() language.Tag {
	return supported[0]
}

// ParseTag parses value and reports whether it matches a supported language.
func ParseTag(value string) (language.Tag, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return DefaultTag(), false
	}
	tag, err := language.Parse(value)
	if err != nil {
		return DefaultTag(), false
	}
	_, index, confidence := matcher.Match(tag)
	if confidence == language.No {
		return DefaultTag(), false
	}
	return supported[index], true
}

// MatchTags returns the best supported language for the preferred tags.
func MatchTags(tags []language.Tag) language.Tag {
	if len(tags) == 0 {
		return DefaultTag()
	}
	_, index, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return DefaultTag()
	}
	return supported[index]
}

// T returns the localized string for key in tag.
func T(tag language.Tag, key string) string {
	return message.NewPrinter(tag).Sprintf(key)
}
