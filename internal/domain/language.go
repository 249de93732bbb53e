package domain

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// languageOverrides covers codes used by questionnaire publishers that are not
// the ISO 639-1 code for the language they mean.
var languageOverrides = map[string]string{
	"CN": "Chinese",
	"EE": "Estonian",
	"SI": "Slovenian",
}

var englishNames = display.English.Languages()

// LanguageName resolves a language code to its English display name.
// Unknown codes are returned unchanged.
func LanguageName(code string) string {
	key := strings.ToUpper(strings.TrimSpace(code))
	if name, ok := languageOverrides[key]; ok {
		return name
	}
	if key == "" {
		return code
	}

	tag, err := language.Parse(key)
	if err != nil {
		return code
	}
	name := englishNames.Name(tag)
	if name == "" {
		return code
	}
	return name
}

// LanguageNames resolves each code with LanguageName, keeping order
func LanguageNames(codes []string) []string {
	names := make([]string, len(codes))
	for i, c := range codes {
		names[i] = LanguageName(c)
	}
	return names
}

// LanguageOption pairs a code with its resolved display name
type LanguageOption struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// Label renders the option as "German (DE)"
func (o LanguageOption) Label() string {
	if o.Name == o.Code {
		return o.Code
	}
	return o.Name + " (" + o.Code + ")"
}
