package portal

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type Stringable struct {
	value string
}

func MakeStringable(value string) *Stringable {
	return &Stringable{
		value: strings.TrimSpace(value),
	}
}

func (s Stringable) ToLower() string {
	caser := cases.Lower(language.English)

	return strings.TrimSpace(caser.String(s.value))
}

// ToTitle folds the value into title case ("technology" -> "Technology").
func (s Stringable) ToTitle() string {
	caser := cases.Title(language.English)

	return strings.TrimSpace(caser.String(s.value))
}

func (s Stringable) ToSnakeCase() string {
	var result strings.Builder

	for i, r := range s.value {
		if unicode.IsUpper(r) {
			if i > 0 {
				result.WriteByte('_')
			}
			result.WriteRune(unicode.ToLower(r))
		} else {
			result.WriteRune(r)
		}
	}

	return result.String()
}

func (s Stringable) String() string {
	return s.value
}
