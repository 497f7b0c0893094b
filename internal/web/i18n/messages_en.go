package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	for key, text := range map[string]string{
		"layout.home":    "Home",
		"layout.about":   "About",
		"shell.tagline":  "Plan your roadmaps together.",
		"shell.settings": "Settings",
	} {
		if err := message.SetString(language.AmericanEnglish, key, text); err != nil {
			panic(err)
		}
	}
	for key, text := range map[string]string{
		"layout.home":    "Início",
		"layout.about":   "Sobre",
		"shell.tagline":  "Planeje seus roteiros em conjunto.",
		"shell.settings": "Configurações",
	} {
		if err := message.SetString(language.BrazilianPortuguese, key, text); err != nil {
			panic(err)
		}
	}
}
