package i18n

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var supportedTags = []language.Tag{
	language.English,
	language.MustParse("pt-BR"),
}

var tagMatcher = language.NewMatcher(supportedTags)

// Console labels with translations. English output uses the keys directly.
var translations = map[string]map[string]string{
	"pt-BR": {
		"Error: %s":                          "Erro: %s",
		"Hint: %s":                           "Dica: %s",
		"Loading %s...":                      "Carregando %s...",
		"No %s found.":                       "Nenhum registro de %s encontrado.",
		"Are you sure you want to %s? [y/N] ": "Tem certeza de que deseja %s? [s/N] ",
		"Page %d":                            "Página %d",
		"Refreshing every %s, press Ctrl+C to stop.": "Atualizando a cada %s, pressione Ctrl+C para parar.",
	},
}

func init() {
	for lang, entries := range translations {
		tag := language.MustParse(lang)
		for key, msg := range entries {
			_ = message.SetString(tag, key, msg)
		}
	}
}

// Supported returns the list of supported language tags.
func Supported() []language.Tag {
	tags := make([]language.Tag, len(supportedTags))
	copy(tags, supportedTags)
	return tags
}

// Default returns the default language tag.
func Default() language.Tag {
	return language.English
}

// Printer returns a message printer for the supplied tag.
func Printer(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag)
}

// ResolveTag picks the best supported tag from the candidates in order,
// skipping empty or unparsable values. POSIX locale suffixes such as
// ".UTF-8" are ignored.
func ResolveTag(candidates ...string) language.Tag {
	for _, candidate := range candidates {
		value := normalizeLocale(candidate)
		if value == "" {
			continue
		}
		parsed, err := language.Parse(value)
		if err != nil {
			continue
		}
		_, index, confidence := tagMatcher.Match(parsed)
		if confidence == language.No {
			continue
		}
		return supportedTags[index]
	}
	return Default()
}

// Confirms reports whether answer is an affirmative reply in tag's language.
func Confirms(tag language.Tag, answer string) bool {
	answer = strings.ToLower(strings.TrimSpace(answer))
	switch answer {
	case "y", "yes":
		return true
	}
	base, _ := tag.Base()
	if base.String() == "pt" {
		return answer == "s" || answer == "sim"
	}
	return false
}

func normalizeLocale(value string) string {
	value = strings.TrimSpace(value)
	if idx := strings.IndexAny(value, ".@"); idx >= 0 {
		value = value[:idx]
	}
	if value == "C" || value == "POSIX" {
		return ""
	}
	return strings.ReplaceAll(value, "_", "-")
}
