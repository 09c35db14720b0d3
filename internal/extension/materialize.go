package extension

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var separatorPattern = regexp.MustCompile(`[_-]+`)

// CamelCase converts a snake_case or kebab-case identifier to camelCase.
// Only the first rune of each segment is forced to upper case; spaces or
// punctuation inside a segment do not start a new word. Input that is
// already camelCase comes back unchanged.
func CamelCase(id string) (string, error) {
	title := cases.Title(language.Und, cases.NoLower)

	var b strings.Builder
	for _, segment := range separatorPattern.Split(id, -1) {
		if segment == "" {
			continue
		}
		_, n := utf8.DecodeRuneInString(segment)
		b.WriteString(title.String(segment[:n]))
		b.WriteString(segment[n:])
	}

	joined := b.String()
	if joined == "" {
		return "", &EmptyIdentifierError{Input: id}
	}

	_, size := utf8.DecodeRuneInString(joined)
	return cases.Lower(language.Und).String(joined[:size]) + joined[size:], nil
}

// Materialize fills the placeholders of tmpl. The class name receives the
// camelCase form of id, the id field the raw id, and the name field name.
// Every occurrence is replaced, in that order.
func Materialize(tmpl, name, id string) (string, error) {
	flavor := DetectFlavor(tmpl)
	if !flavor.Known() {
		return "", &UnknownTemplateError{Flavor: flavor}
	}

	className, err := CamelCase(id)
	if err != nil {
		return "", fmt.Errorf("deriving class name: %w", err)
	}

	out := strings.ReplaceAll(tmpl, PlaceholderClassName, className)
	out = strings.ReplaceAll(out, PlaceholderID, id)
	out = strings.ReplaceAll(out, PlaceholderName, name)
	return out, nil
}
